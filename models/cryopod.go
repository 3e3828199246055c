package models

import (
	"regexp"
	"strconv"

	"arksave/ark"
	"arksave/memory"
	"arksave/ue"
)

// CryopodCreature is the creature projected out of a cryopod item's
// embedded payload, independent of which on-disk shape produced it (spec
// §4.9, GLOSSARY "Cryopod").
type CryopodCreature struct {
	Species   string
	Level     int
	Stats     DinoStats
	Imprint   float64
	Mutations int64
	TamerName string
}

var uploadedDisplayNameRE = regexp.MustCompile(`^(.*) - Lvl (\d+) \((.+)\)$`)

// parseDisplayName parses the "TameName - Lvl N (Species)" shape used for
// both UploadedCreature entries and cryopod display names
// (SPEC_FULL §12, original_source data_models.py equivalents).
func parseDisplayName(s string) (tameName string, level int, species string, ok bool) {
	m := uploadedDisplayNameRE.FindStringSubmatch(s)
	if m == nil {
		return "", 0, "", false
	}
	lvl, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, "", false
	}
	return m[1], lvl, m[3], true
}

// DecodeCryopodFromBytes decodes the ASE byte-array mini-save shape: a
// GUID, class name, is-item flag, name list, data-file bookkeeping, an
// optional location block, and a property-list offset, which is itself
// decoded with the shared property system and its own inline name table
// (spec §4.9, §9 "Cryopod nested save → recursive decoder reuse" — the
// only intentional recursion). Empty input yields (nil, nil), matching
// the "empty custom data is not an error" boundary case (spec §8).
func DecodeCryopodFromBytes(data []byte) (*CryopodCreature, error) {
	if len(data) == 0 {
		return nil, nil
	}
	r := memory.NewReader(data)

	if _, err := ue.ReadGuid(r); err != nil {
		return nil, err
	}
	className, err := ue.ReadFString(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadBool32(); err != nil { // is_item
		return nil, err
	}
	nameCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < nameCount; i++ {
		if _, err := ue.ReadFString(r); err != nil {
			return nil, err
		}
	}
	if _, err := r.ReadBool32(); err != nil { // from_data_file
		return nil, err
	}
	if _, err := r.ReadI32(); err != nil { // data_file_index
		return nil, err
	}
	hasLocation, err := r.ReadBool32()
	if err != nil {
		return nil, err
	}
	if hasLocation {
		if _, err := r.ReadBytes(24); err != nil {
			return nil, err
		}
	}
	propsOffset, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadU32(); err != nil { // unused trailing field
		return nil, err
	}

	if err := r.Seek(int64(propsOffset)); err != nil {
		return nil, err
	}
	ctx := ark.NewContext(ark.FormatASE, ark.NewInlineNameTable(), nil)
	props, err := ark.ReadPropertyList(r, ctx)
	if err != nil {
		return nil, err
	}

	return creatureFromFlatProperties(className, props), nil
}

// creatureFromFlatProperties builds a CryopodCreature from a mini-save
// that has no separate status component — stats, level and ancestry
// properties live directly on the single decoded object.
func creatureFromFlatProperties(className string, props []ark.Property) *CryopodCreature {
	base := int(intValue(props, "BaseCharacterLevel", 0))
	extra := int(intValue(props, "ExtraCharacterLevel", 0))
	cc := &CryopodCreature{
		Species:   SpeciesFromClassName(className),
		Level:     1 + base + extra,
		Mutations: intValue(props, "RandomMutationsFemale", 0) + intValue(props, "RandomMutationsMale", 0),
		TamerName: stringValue(props, "TamerString", ""),
	}
	copy(cc.Stats.Base[:], sumByIndex(props, "NumberOfLevelUpPointsApplied", 12))
	copy(cc.Stats.Tamed[:], sumByIndex(props, "NumberOfLevelUpPointsAppliedTamed", 12))
	v := floatValue(props, "DinoImprintingQuality", 0)
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	cc.Imprint = v
	return cc
}

// ASA's native cryopod shape packs the same information into flat
// CustomDataFloats/CustomDataNames arrays instead of an embedded
// mini-save; the two formats were observed with different layouts
// (SPEC_FULL §12).
const (
	aseCustomFloatStatOffset = 12
	asaCustomFloatStatOffset = 11
)

// DecodeCryopodFromCustomData decodes the ASA-native
// CustomDataStrings/CustomDataFloats/CustomDataNames struct-property shape
// (SPEC_FULL §12, original_source data_models.py
// from_asa_cryopod_data equivalent). props is the decoded body of the
// item's custom-data struct property.
func DecodeCryopodFromCustomData(props []ark.Property) (*CryopodCreature, error) {
	strings := arrayOfStrings(props, "CustomDataStrings")
	floats := arrayOfFloats(props, "CustomDataFloats")
	names := arrayOfStrings(props, "CustomDataNames")

	cc := &CryopodCreature{}
	if len(strings) > 0 {
		if _, level, species, ok := parseDisplayName(strings[0]); ok {
			cc.Level = level
			cc.Species = species
		}
	}
	if len(names) > 0 {
		cc.TamerName = names[0]
	}

	offset := asaCustomFloatStatOffset
	if len(floats) < offset+24 {
		offset = aseCustomFloatStatOffset
	}
	if len(floats) >= offset+12 {
		copy(cc.Stats.Base[:], floats[offset:offset+12])
	}
	if len(floats) >= offset+24 {
		copy(cc.Stats.Tamed[:], floats[offset+12:offset+24])
	}
	if len(floats) > offset+24 {
		imp := floats[offset+24]
		if imp < 0 {
			imp = 0
		} else if imp > 1 {
			imp = 1
		}
		cc.Imprint = imp
	}
	return cc, nil
}

func arrayOfStrings(props []ark.Property, name string) []string {
	p, ok := findProp(props, name)
	if !ok {
		return nil
	}
	av, ok := p.Value.(ark.ArrayValue)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(av.Items))
	for _, it := range av.Items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func arrayOfFloats(props []ark.Property, name string) []float64 {
	p, ok := findProp(props, name)
	if !ok {
		return nil
	}
	av, ok := p.Value.(ark.ArrayValue)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(av.Items))
	for _, it := range av.Items {
		if f, ok := toFloat64(it); ok {
			out = append(out, f)
		}
	}
	return out
}
