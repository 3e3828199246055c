package models

import (
	"testing"

	"arksave/ark"
)

func TestParseDisplayName(t *testing.T) {
	name, level, species, ok := parseDisplayName("Rexy - Lvl 150 (Rex)")
	if !ok {
		t.Fatalf("expected match")
	}
	if name != "Rexy" || level != 150 || species != "Rex" {
		t.Fatalf("got %q %d %q", name, level, species)
	}
}

func TestParseDisplayNameRejectsUnmatchedFormat(t *testing.T) {
	if _, _, _, ok := parseDisplayName("not a display name"); ok {
		t.Fatalf("expected no match")
	}
}

func TestDecodeCryopodFromBytesEmptyIsNotAnError(t *testing.T) {
	cc, err := DecodeCryopodFromBytes(nil)
	if err != nil {
		t.Fatalf("expected no error for empty input, got %v", err)
	}
	if cc != nil {
		t.Fatalf("expected nil creature for empty input, got %+v", cc)
	}
}

func TestDecodeCryopodFromCustomDataBasic(t *testing.T) {
	floats := make([]any, asaCustomFloatStatOffset+25)
	for i := range floats {
		floats[i] = float32(0)
	}
	baseStart := asaCustomFloatStatOffset
	for i := 0; i < 12; i++ {
		floats[baseStart+i] = float32(10 + i)
	}
	for i := 0; i < 12; i++ {
		floats[baseStart+12+i] = float32(i)
	}
	floats[baseStart+24] = float32(0.75)

	props := []ark.Property{
		prop("CustomDataStrings", 0, ark.ArrayValue{Items: []any{"Rexy - Lvl 150 (Rex)"}}),
		prop("CustomDataNames", 0, ark.ArrayValue{Items: []any{"TamerBob"}}),
		prop("CustomDataFloats", 0, ark.ArrayValue{Items: floats}),
	}
	cc, err := DecodeCryopodFromCustomData(props)
	if err != nil {
		t.Fatalf("DecodeCryopodFromCustomData: %v", err)
	}
	if cc.Level != 150 || cc.Species != "Rex" {
		t.Fatalf("got %+v", cc)
	}
	if cc.TamerName != "TamerBob" {
		t.Fatalf("got tamer %q", cc.TamerName)
	}
	if cc.Stats.Base[0] != 10 {
		t.Fatalf("got base stat 0 = %v, want 10", cc.Stats.Base[0])
	}
	if cc.Imprint != 0.75 {
		t.Fatalf("got imprint %v, want 0.75", cc.Imprint)
	}
}

func TestDecodeCryopodFromCustomDataEmptyArrays(t *testing.T) {
	cc, err := DecodeCryopodFromCustomData(nil)
	if err != nil {
		t.Fatalf("DecodeCryopodFromCustomData: %v", err)
	}
	if cc.Level != 0 || cc.Species != "" {
		t.Fatalf("got %+v, want zero value", cc)
	}
}
