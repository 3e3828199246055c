package models

import "testing"

func TestDinoStatsTotal(t *testing.T) {
	var s DinoStats
	s.Base[StatHealth] = 100
	s.Tamed[StatHealth] = 40
	if got := s.Total(StatHealth); got != 140 {
		t.Fatalf("got %v, want 140", got)
	}
}

func TestStatsFromDisplayStringsBasic(t *testing.T) {
	lines := []string{
		"Health: 365.0 / 404.0",
		"Melee Damage: 369.6 %",
		"Not a stat line at all",
	}
	stats := StatsFromDisplayStrings(lines)
	if stats.Base[StatHealth] != 365.0 {
		t.Fatalf("Health = %v, want 365.0", stats.Base[StatHealth])
	}
	if stats.Base[StatMelee] != 369.6 {
		t.Fatalf("Melee = %v, want 369.6", stats.Base[StatMelee])
	}
}

func TestStatIndexByNameCaseInsensitive(t *testing.T) {
	if statIndexByName("health") != int(StatHealth) {
		t.Fatalf("expected case-insensitive match")
	}
	if statIndexByName("nonexistent") != -1 {
		t.Fatalf("expected -1 for unknown name")
	}
}

func TestNormalizeStatNameStripsSuffixes(t *testing.T) {
	if got := normalizeStatName("Melee Damage"); got != "Melee" {
		t.Fatalf("got %q", got)
	}
	if got := normalizeStatName("Weight Points"); got != "Weight" {
		t.Fatalf("got %q", got)
	}
}
