package ark

import (
	"strings"

	"arksave/ue"
)

// LocationData is a decoded actor transform (spec §3).
type LocationData struct {
	X, Y, Z          float64
	Pitch, Yaw, Roll float64
}

// GameObject is one decoded save actor (spec §3). Names holds the full
// component-chain: Names[0] is the object's own logical name, and any
// further entries identify the parent object's own name, one link at a
// time, for the relationship pass in the container (spec §4.8).
type GameObject struct {
	ID         int
	GUID       ue.FGuid
	ClassName  string
	Names      []string
	IsItem     bool
	Location   *LocationData
	Properties []Property
	ExtraData  []byte

	Parent     *GameObject
	Components map[string]*GameObject
}

// HasComponents reports whether any object has registered itself as a
// component of this one.
func (o *GameObject) HasComponents() bool {
	return len(o.Components) > 0
}

// StatusComponent returns the per-creature sub-object carrying stats,
// level and ancestry, if one is linked (spec GLOSSARY "Status component").
func (o *GameObject) StatusComponent() (*GameObject, bool) {
	if c, ok := o.Components["DinoCharacterStatusComponent"]; ok {
		return c, true
	}
	for _, c := range o.Components {
		if strings.Contains(c.ClassName, "DinoCharacterStatusComponent") {
			return c, true
		}
	}
	return nil, false
}

// FindComponent returns the first linked component whose class name
// contains substr.
func (o *GameObject) FindComponent(substr string) (*GameObject, bool) {
	if c, ok := o.Components[substr]; ok {
		return c, true
	}
	for _, c := range o.Components {
		if strings.Contains(c.ClassName, substr) {
			return c, true
		}
	}
	return nil, false
}
