package models

import (
	"testing"

	"arksave/ark"
)

func TestNewTribeMembers(t *testing.T) {
	obj := &ark.GameObject{Properties: []ark.Property{
		prop("TribeName", 0, "The Wanderers"),
		prop("TribeID", 0, int32(42)),
		prop("MembersPlayerName", 0, ark.ArrayValue{Items: []any{"Alice", "Bob"}}),
		prop("MembersPlayerDataID", 0, ark.ArrayValue{Items: []any{int64(1), int64(2)}}),
	}}
	tribe := NewTribe(obj)
	if tribe.TribeName != "The Wanderers" || tribe.TribeID != 42 {
		t.Fatalf("got %+v", tribe)
	}
	if len(tribe.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(tribe.Members))
	}
	if tribe.Members[0].PlayerName != "Alice" || tribe.Members[0].PlayerDataID != 1 {
		t.Fatalf("got %+v", tribe.Members[0])
	}
}

func TestParseTribeLogLineStripsRichColorTags(t *testing.T) {
	line := "Day 12, 03:14:07: <RichColor Color=\"1,1,1,1\">Tester</> was killed!"
	entry, ok := ParseTribeLogLine(line)
	if !ok {
		t.Fatalf("expected line to parse")
	}
	if entry.Day != 12 || entry.Time != "03:14:07" {
		t.Fatalf("got %+v", entry)
	}
	if entry.CleanMessage != "Tester was killed!" {
		t.Fatalf("got clean message %q", entry.CleanMessage)
	}
	if entry.RawMessage == entry.CleanMessage {
		t.Fatalf("expected raw message to retain the tag")
	}
}

func TestParseTribeLogLineRejectsUnmatchedFormat(t *testing.T) {
	if _, ok := ParseTribeLogLine("not a log line"); ok {
		t.Fatalf("expected no match")
	}
}

func TestTribeLogsSkipsUnparseableEntries(t *testing.T) {
	props := []ark.Property{
		prop("TribeLogs", 0, ark.ArrayValue{Items: []any{
			"Day 1, 00:00:01: Something happened",
			"garbage",
		}}),
	}
	logs := tribeLogs(props)
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
}
