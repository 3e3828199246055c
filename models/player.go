package models

import "arksave/ark"

// Player is the projection of a `.arkprofile` root object (spec §6).
type Player struct {
	PlayerName   string
	PlayerDataID int64
	TribeID      int64
	Level        int
	Stats        DinoStats
	Engrams      []string
}

// NewPlayer builds a Player from a decoded PrimalPlayerData object (spec
// §8 scenario 1).
func NewPlayer(obj *ark.GameObject) *Player {
	p := &Player{
		PlayerName:   stringValue(obj.Properties, "PlayerName", ""),
		PlayerDataID: intValue(obj.Properties, "PlayerDataID", 0),
		TribeID:      intValue(obj.Properties, "TribeID", 0),
	}
	base := int(intValue(obj.Properties, "CharacterStatusComponent_ExtraCharacterLevel", 0))
	p.Level = 1 + base
	p.Engrams = engramBlueprints(obj.Properties)

	base12 := sumByIndex(obj.Properties, "NumberOfLevelUpPointsApplied", 12)
	copy(p.Stats.Base[:], base12)

	return p
}

func engramBlueprints(props []ark.Property) []string {
	p, ok := findProp(props, "EngramBlueprints")
	if !ok {
		return nil
	}
	arr, ok := p.Value.(ark.ArrayValue)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr.Items))
	for _, item := range arr.Items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
