// Package export renders decoded models into the third-party-compatible
// JSON shape (spec §1 "JSON export layer", §6 "JSON export keys").
package export

import (
	"encoding/json"

	"arksave/models"
)

// Result is the top-level ASV-compatible export document (spec §6).
type Result struct {
	Tamed         []tamedDTO     `json:"ASV_Tamed"`
	Wild          []wildDTO      `json:"ASV_Wild"`
	Players       []playerDTO    `json:"ASV_Players"`
	Tribes        []tribeDTO     `json:"ASV_Tribes"`
	Structures    []structureDTO `json:"ASV_Structures"`
	MapStructures []structureDTO `json:"ASV_MapStructures"`
	TribeLogs     []logDTO       `json:"ASV_TribeLogs"`
	Summary       Summary        `json:"ASV_Summary"`
}

// Summary is a small load-health digest, gated on ParseErrorCount per the
// §7 "callers inspect parse_error_count" guidance.
type Summary struct {
	ObjectCount     int `json:"object_count"`
	ParseErrorCount int `json:"parse_error_count"`
}

type statsDTO struct {
	Base  [12]float64 `json:"base"`
	Tamed [12]float64 `json:"tamed"`
}

func dtoStats(s models.DinoStats) statsDTO {
	return statsDTO{Base: s.Base, Tamed: s.Tamed}
}

type tamedDTO struct {
	Species   string   `json:"species"`
	ClassName string   `json:"class_name"`
	Level     int      `json:"level"`
	TamerName string   `json:"tamer_name"`
	TribeID   int64    `json:"tribe_id"`
	Stats     statsDTO `json:"stats"`
	Mutations int64    `json:"mutations"`
	Imprint   float64  `json:"imprint_quality"`
}

func dtoTamed(t *models.TamedCreature) tamedDTO {
	return tamedDTO{
		Species:   t.Species,
		ClassName: t.ClassName,
		Level:     t.Level,
		TamerName: t.TamerName,
		TribeID:   t.TribeID,
		Stats:     dtoStats(t.Stats),
		Mutations: t.Mutations,
		Imprint:   t.Imprint,
	}
}

type wildDTO struct {
	Species   string   `json:"species"`
	ClassName string   `json:"class_name"`
	Level     int      `json:"level"`
	Stats     statsDTO `json:"stats"`
}

func dtoWild(w *models.WildCreature) wildDTO {
	return wildDTO{Species: w.Species, ClassName: w.ClassName, Level: w.Level, Stats: dtoStats(w.Stats)}
}

type playerDTO struct {
	PlayerName   string   `json:"player_name"`
	PlayerDataID int64    `json:"player_data_id"`
	TribeID      int64    `json:"tribe_id"`
	Level        int      `json:"level"`
	Engrams      []string `json:"engram_blueprints"`
}

func dtoPlayer(p *models.Player) playerDTO {
	return playerDTO{
		PlayerName:   p.PlayerName,
		PlayerDataID: p.PlayerDataID,
		TribeID:      p.TribeID,
		Level:        p.Level,
		Engrams:      p.Engrams,
	}
}

type logDTO struct {
	Day          int    `json:"day"`
	Time         string `json:"time"`
	CleanMessage string `json:"clean_message"`
}

func dtoLog(l models.TribeLogEntry) logDTO {
	return logDTO{Day: l.Day, Time: l.Time, CleanMessage: l.CleanMessage}
}

type tribeDTO struct {
	TribeName string   `json:"tribe_name"`
	TribeID   int64    `json:"tribe_id"`
	Members   []string `json:"members"`
	Logs      []logDTO `json:"logs"`
}

func dtoTribe(t *models.Tribe) tribeDTO {
	names := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		names = append(names, m.PlayerName)
	}
	logs := make([]logDTO, 0, len(t.Logs))
	for _, l := range t.Logs {
		logs = append(logs, dtoLog(l))
	}
	return tribeDTO{TribeName: t.TribeName, TribeID: t.TribeID, Members: names, Logs: logs}
}

type structureDTO struct {
	ClassName  string  `json:"class_name"`
	TribeID    int64   `json:"tribe_id"`
	Health     float64 `json:"health"`
	MaxHealth  float64 `json:"max_health"`
	DecayTimer float64 `json:"decay_timer"`
}

func dtoStructure(s *models.Structure) structureDTO {
	return structureDTO{ClassName: s.ClassName, TribeID: s.TribeID, Health: s.Health, MaxHealth: s.MaxHealth, DecayTimer: s.DecayTimer}
}

// ExportTamed maps tamed creatures to their JSON DTOs.
func ExportTamed(in []*models.TamedCreature) []tamedDTO {
	out := make([]tamedDTO, 0, len(in))
	for _, t := range in {
		out = append(out, dtoTamed(t))
	}
	return out
}

// ExportWild maps wild creatures to their JSON DTOs.
func ExportWild(in []*models.WildCreature) []wildDTO {
	out := make([]wildDTO, 0, len(in))
	for _, w := range in {
		out = append(out, dtoWild(w))
	}
	return out
}

// ExportPlayers maps players to their JSON DTOs.
func ExportPlayers(in []*models.Player) []playerDTO {
	out := make([]playerDTO, 0, len(in))
	for _, p := range in {
		out = append(out, dtoPlayer(p))
	}
	return out
}

// ExportTribes maps tribes to their JSON DTOs.
func ExportTribes(in []*models.Tribe) []tribeDTO {
	out := make([]tribeDTO, 0, len(in))
	for _, t := range in {
		out = append(out, dtoTribe(t))
	}
	return out
}

// ExportStructures maps structures to their JSON DTOs.
func ExportStructures(in []*models.Structure) []structureDTO {
	out := make([]structureDTO, 0, len(in))
	for _, s := range in {
		out = append(out, dtoStructure(s))
	}
	return out
}

// ExportMapStructures is identical to ExportStructures but keyed
// separately in the export document for map-visualization consumers
// (SPEC_FULL §12).
func ExportMapStructures(in []*models.Structure) []structureDTO {
	return ExportStructures(in)
}

// ExportTribeLogs flattens every tribe's log into one list.
func ExportTribeLogs(in []*models.Tribe) []logDTO {
	out := make([]logDTO, 0)
	for _, t := range in {
		for _, l := range t.Logs {
			out = append(out, dtoLog(l))
		}
	}
	return out
}

// Input bundles the model collections ExportAll needs. Each field is
// independently optional; nil slices export as empty arrays.
type Input struct {
	Tamed           []*models.TamedCreature
	Wild            []*models.WildCreature
	Players         []*models.Player
	Tribes          []*models.Tribe
	Structures      []*models.Structure
	ObjectCount     int
	ParseErrorCount int
}

// ExportAll builds the complete ASV-compatible document. It is a pure
// function of in — calling it twice on the same input yields identical,
// order-stable output (spec §8 "export round-trip").
func ExportAll(in Input) Result {
	return Result{
		Tamed:         ExportTamed(in.Tamed),
		Wild:          ExportWild(in.Wild),
		Players:       ExportPlayers(in.Players),
		Tribes:        ExportTribes(in.Tribes),
		Structures:    ExportStructures(in.Structures),
		MapStructures: ExportMapStructures(in.Structures),
		TribeLogs:     ExportTribeLogs(in.Tribes),
		Summary:       Summary{ObjectCount: in.ObjectCount, ParseErrorCount: in.ParseErrorCount},
	}
}

// MarshalJSON renders r as the ASV-compatible document (a thin wrapper so
// callers don't need to import encoding/json themselves).
func MarshalJSON(r Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
