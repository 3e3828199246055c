package models

import (
	"strings"

	"arksave/ark"
)

// Item is the projection of an inventory item object, or an UploadedItem
// entry from cloud-inventory data (spec §4.9, §6).
type Item struct {
	ClassName       string
	CustomName      string
	Quantity        int
	Quality         int
	CryopodCreature *CryopodCreature
}

// QualityName maps the integer quality tier to its display name
// (SPEC_FULL §12, original_source data_models.py UploadedItem.quality_name
// equivalent).
var qualityNames = []string{"Primitive", "Ramshackle", "Apprentice", "Journeyman", "Mastercraft", "Ascendant"}

// QualityName returns i.Quality's display name, clamped into range.
func (i Item) QualityName() string {
	q := i.Quality
	if q < 0 {
		q = 0
	}
	if q >= len(qualityNames) {
		q = len(qualityNames) - 1
	}
	return qualityNames[q]
}

// cryopodMarkers are the blueprint substrings that mark an item class as
// a creature container (SPEC_FULL §12).
var cryopodMarkers = []string{"Cryopod", "SoulTrap", "Vivarium", "DinoBall"}

// IsCryopod reports whether className names a creature-container item.
func IsCryopod(className string) bool {
	for _, m := range cryopodMarkers {
		if strings.Contains(className, m) {
			return true
		}
	}
	return false
}

// NewItem builds an Item from a decoded item object. When the item is a
// recognized cryopod and carries byte-array custom data, the embedded
// mini-save is decoded into CryopodCreature (spec §4.9).
func NewItem(obj *ark.GameObject) *Item {
	it := &Item{
		ClassName:  obj.ClassName,
		CustomName: stringValue(obj.Properties, "CustomItemName", ""),
		Quantity:   int(intValue(obj.Properties, "ItemQuantity", 1)),
		Quality:    int(intValue(obj.Properties, "ItemQualityIndex", 0)),
	}
	if !IsCryopod(obj.ClassName) {
		return it
	}
	if len(obj.ExtraData) > 0 {
		if cc, err := DecodeCryopodFromBytes(obj.ExtraData); err == nil {
			it.CryopodCreature = cc
		}
	}
	if p, ok := findProp(obj.Properties, "MyItemCustomData"); ok {
		if sv, ok := p.Value.(ark.StructValue); ok {
			if props, ok := sv.Value.([]ark.Property); ok {
				if cc, err := DecodeCryopodFromCustomData(props); err == nil {
					it.CryopodCreature = cc
				}
			}
		}
	}
	return it
}
