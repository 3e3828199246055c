package ark

import (
	"strings"

	"arksave/ue"
)

// Container is the indexed, insertion-ordered store of decoded objects
// (spec §4.8). It is built once per load and is immutable except for the
// relationship-building pass, which is idempotent (spec §3 invariant 5).
type Container struct {
	objects []*GameObject

	byID   map[int]*GameObject
	byGUID map[ue.FGuid]*GameObject
	byName map[string][]*GameObject
}

// NewContainer indexes objects and runs the relationship-building pass.
func NewContainer(objects []*GameObject) *Container {
	c := &Container{
		objects: objects,
		byID:    make(map[int]*GameObject, len(objects)),
		byGUID:  make(map[ue.FGuid]*GameObject, len(objects)),
		byName:  make(map[string][]*GameObject, len(objects)),
	}
	for _, o := range objects {
		c.byID[o.ID] = o
		if !o.GUID.IsZero() {
			c.byGUID[o.GUID] = o
		}
		if len(o.Names) > 0 {
			c.byName[o.Names[0]] = append(c.byName[o.Names[0]], o)
		}
	}
	c.buildRelationships()
	return c
}

// buildRelationships pairs each object A whose Names has more than one
// entry with the object Q where Q.Names[0] == A.Names[1], recording A
// under Q.Components keyed by A.ClassName (spec §4.8). It is safe to call
// more than once: each pass rebuilds the component maps from scratch, so
// repeated runs converge to the same referentially-closed result.
func (c *Container) buildRelationships() {
	for _, o := range c.objects {
		o.Parent = nil
		o.Components = nil
	}
	for _, a := range c.objects {
		if len(a.Names) < 2 {
			continue
		}
		parentName := a.Names[1]
		candidates := c.byName[parentName]
		if len(candidates) == 0 {
			continue
		}
		parent := candidates[0]
		a.Parent = parent
		if parent.Components == nil {
			parent.Components = make(map[string]*GameObject)
		}
		parent.Components[a.ClassName] = a
	}
}

// All returns every decoded object in on-disk order.
func (c *Container) All() []*GameObject {
	return c.objects
}

// ByID looks up an object by its container-assigned id.
func (c *Container) ByID(id int) (*GameObject, bool) {
	o, ok := c.byID[id]
	return o, ok
}

// ByGUID looks up an object by its ASA GUID.
func (c *Container) ByGUID(guid ue.FGuid) (*GameObject, bool) {
	o, ok := c.byGUID[guid]
	return o, ok
}

// ByName returns every object whose primary name matches.
func (c *Container) ByName(name string) []*GameObject {
	return c.byName[name]
}

// ByClassSubstring scans for objects whose ClassName contains substr.
func (c *Container) ByClassSubstring(substr string) []*GameObject {
	var out []*GameObject
	for _, o := range c.objects {
		if strings.Contains(o.ClassName, substr) {
			out = append(out, o)
		}
	}
	return out
}

// Creatures returns objects recognized as creature actors: class names
// containing "_Character_" but excluding corpses and status components
// (spec §4.8 query table).
func (c *Container) Creatures() []*GameObject {
	var out []*GameObject
	for _, o := range c.objects {
		if !strings.Contains(o.ClassName, "_Character_") {
			continue
		}
		if strings.Contains(o.ClassName, "Corpse") || strings.Contains(o.ClassName, "DinoCharacterStatusComponent") {
			continue
		}
		out = append(out, o)
	}
	return out
}

// statusComponentTamerString reports whether a creature's status
// component carries a non-empty TamerString property.
func statusComponentTamerString(o *GameObject) (string, bool) {
	status, ok := o.StatusComponent()
	if !ok {
		return "", false
	}
	for _, p := range status.Properties {
		if p.Name.Name == "TamerString" {
			if s, ok := p.Value.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// Tamed returns creatures whose status component carries a TamerString.
func (c *Container) Tamed() []*GameObject {
	var out []*GameObject
	for _, o := range c.Creatures() {
		if _, ok := statusComponentTamerString(o); ok {
			out = append(out, o)
		}
	}
	return out
}

// Wild returns creatures without a tamer string.
func (c *Container) Wild() []*GameObject {
	var out []*GameObject
	for _, o := range c.Creatures() {
		if _, ok := statusComponentTamerString(o); !ok {
			out = append(out, o)
		}
	}
	return out
}

// Structures returns objects recognized as placed structures, excluding
// their inventory components.
func (c *Container) Structures() []*GameObject {
	var out []*GameObject
	for _, o := range c.objects {
		if !strings.Contains(o.ClassName, "Structure") {
			continue
		}
		if strings.Contains(o.ClassName, "Inventory") {
			continue
		}
		out = append(out, o)
	}
	return out
}

// PlayerPawns returns player-controlled pawn actors.
func (c *Container) PlayerPawns() []*GameObject {
	return c.ByClassSubstring("PlayerPawnTest_")
}

// Items returns every object flagged as an item.
func (c *Container) Items() []*GameObject {
	var out []*GameObject
	for _, o := range c.objects {
		if o.IsItem {
			out = append(out, o)
		}
	}
	return out
}
