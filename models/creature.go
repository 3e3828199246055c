package models

import (
	"strings"

	"arksave/ark"
)

// Creature is the common projection shared by tamed and wild dinos (spec
// §4.9).
type Creature struct {
	ClassName string
	Species   string
	Names     []string
	Location  *ark.LocationData

	Level     int
	Stats     DinoStats
	Mutations int64
	Imprint   float64

	AncestorDinoID1 uint64
	AncestorDinoID2 uint64
	DinoID          uint64
}

// DinoID64 composes the 64-bit ancestry identity from the two 32-bit
// halves ARK stores separately (spec §4.9 parent linkage).
func DinoID64(id1, id2 uint32) uint64 {
	return uint64(id1)<<32 | uint64(id2)
}

// TamedCreature adds the ownership and taming fields present only once a
// dino has a tamer.
type TamedCreature struct {
	Creature
	TamerName    string
	TribeID      int64
	ExtraLevel   int
	ParentDinoID uint64
	HasParent    bool
}

// WildCreature is an untamed dino.
type WildCreature struct {
	Creature
}

func baseStats(status *ark.GameObject) DinoStats {
	var s DinoStats
	base := sumByIndex(status.Properties, "NumberOfLevelUpPointsApplied", 12)
	tamed := sumByIndex(status.Properties, "NumberOfLevelUpPointsAppliedTamed", 12)
	copy(s.Base[:], base)
	copy(s.Tamed[:], tamed)
	return s
}

func mutationCount(props []ark.Property) int64 {
	return intValue(props, "RandomMutationsFemale", 0) + intValue(props, "RandomMutationsMale", 0)
}

func imprintQuality(status *ark.GameObject) float64 {
	v := floatValue(status.Properties, "DinoImprintingQuality", 0)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func ancestorIDs(props []ark.Property) (id1, id2 uint32) {
	return uint32(intValue(props, "AncestorsDinoID1", 0)), uint32(intValue(props, "AncestorsDinoID2", 0))
}

func selfIDs(props []ark.Property) (id1, id2 uint32) {
	return uint32(intValue(props, "DinoID1", 0)), uint32(intValue(props, "DinoID2", 0))
}

// SpeciesFromClassName strips the blueprint-suffix noise ARK class paths
// carry (`_Character_BP_C`, trailing `_C`) and turns the remaining
// underscores into spaces to approximate a
// display species name when no explicit species string is present
// (SPEC_FULL §12, original_source data_models.py species heuristics).
func SpeciesFromClassName(className string) string {
	s := className
	s = strings.TrimSuffix(s, "_C")
	s = strings.Replace(s, "_Character_BP", "", 1)
	s = strings.Replace(s, "_Character", "", 1)
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(s)
}

func newCreatureBase(obj *ark.GameObject, status *ark.GameObject) Creature {
	c := Creature{
		ClassName: obj.ClassName,
		Species:   SpeciesFromClassName(obj.ClassName),
		Names:     obj.Names,
		Location:  obj.Location,
	}
	c.Mutations = mutationCount(obj.Properties)
	sid1, sid2 := selfIDs(obj.Properties)
	c.DinoID = DinoID64(sid1, sid2)
	if status != nil {
		c.Stats = baseStats(status)
		c.Imprint = imprintQuality(status)
		id1, id2 := ancestorIDs(status.Properties)
		c.AncestorDinoID1, c.AncestorDinoID2 = uint64(id1), uint64(id2)
	}
	return c
}

// NewWild builds a WildCreature from a creature actor and its (optional)
// status component. Level is 1 + base_level (spec §4.9).
func NewWild(obj *ark.GameObject, status *ark.GameObject) *WildCreature {
	w := &WildCreature{Creature: newCreatureBase(obj, status)}
	base := 0
	if status != nil {
		base = int(intValue(status.Properties, "BaseCharacterLevel", 0))
	}
	w.Level = 1 + base
	return w
}

// NewTamed builds a TamedCreature. Level is
// 1 + base_level + extra_level (spec §4.9).
func NewTamed(obj *ark.GameObject, status *ark.GameObject) *TamedCreature {
	t := &TamedCreature{Creature: newCreatureBase(obj, status)}
	t.TribeID = intValue(obj.Properties, "TargetingTeam", 0)
	if status == nil {
		t.Level = 1
		return t
	}
	base := int(intValue(status.Properties, "BaseCharacterLevel", 0))
	extra := int(intValue(status.Properties, "ExtraCharacterLevel", 0))
	t.ExtraLevel = extra
	t.Level = 1 + base + extra
	t.TamerName = stringValue(status.Properties, "TamerString", "")
	if t.AncestorDinoID1 != 0 || t.AncestorDinoID2 != 0 {
		t.HasParent = true
		t.ParentDinoID = t.AncestorDinoID1<<32 | t.AncestorDinoID2
	}
	return t
}

// FindParent looks up a tamed creature's parent among a set of candidate
// creatures by 64-bit dinoId equality (spec §4.9).
func (t *TamedCreature) FindParent(candidates []*TamedCreature) (*TamedCreature, bool) {
	if !t.HasParent {
		return nil, false
	}
	for _, c := range candidates {
		if c.DinoID == t.ParentDinoID {
			return c, true
		}
	}
	return nil, false
}
