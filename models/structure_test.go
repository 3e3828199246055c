package models

import (
	"testing"

	"arksave/ark"
)

func TestNewStructureDecayTimer(t *testing.T) {
	obj := &ark.GameObject{
		ClassName: "Wooden_Wall_Structure",
		Properties: []ark.Property{
			prop("TargetingTeam", 0, int32(9)),
			prop("Health", 0, float32(100)),
			prop("MaxHealth", 0, float32(200)),
			prop("LastInAllyRangeTimeSerialized", 0, float32(50)),
		},
	}
	s := NewStructure(obj, 150)
	if s.TribeID != 9 || s.Health != 100 || s.MaxHealth != 200 {
		t.Fatalf("got %+v", s)
	}
	if s.DecayTimer != 100 {
		t.Fatalf("got decay timer %v, want 100 (150 - 50)", s.DecayTimer)
	}
}

func TestNewStructureDecayTimerDefaultsToZeroWithoutTimestamp(t *testing.T) {
	obj := &ark.GameObject{ClassName: "Metal_Wall_Structure"}
	s := NewStructure(obj, 150)
	if s.DecayTimer != 0 {
		t.Fatalf("got decay timer %v, want 0 when no timestamp present", s.DecayTimer)
	}
}
