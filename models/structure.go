package models

import "arksave/ark"

// Structure is the projection of a placed structure actor (spec §4.9).
type Structure struct {
	ClassName  string
	Location   *ark.LocationData
	TribeID    int64
	Health     float64
	MaxHealth  float64
	DecayTimer float64
}

// NewStructure builds a Structure. decayTimer is gameTime minus the
// object's LastInAllyRangeTimeSerialized property (spec §4.9).
func NewStructure(obj *ark.GameObject, gameTime float64) *Structure {
	s := &Structure{
		ClassName: obj.ClassName,
		Location:  obj.Location,
		TribeID:   intValue(obj.Properties, "TargetingTeam", 0),
		Health:    floatValue(obj.Properties, "Health", 0),
		MaxHealth: floatValue(obj.Properties, "MaxHealth", 0),
	}
	lastInRange := floatValue(obj.Properties, "LastInAllyRangeTimeSerialized", gameTime)
	s.DecayTimer = gameTime - lastInRange
	return s
}
