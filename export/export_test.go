package export

import (
	"encoding/json"
	"reflect"
	"testing"

	"arksave/models"
)

func TestExportAllIsPureAndDeterministic(t *testing.T) {
	in := Input{
		Tamed:   []*models.TamedCreature{{Creature: models.Creature{ClassName: "Rex_Character_BP_C"}, TamerName: "Bob"}},
		Players: []*models.Player{{PlayerName: "Surv", Level: 10}},
		ObjectCount:     5,
		ParseErrorCount: 1,
	}
	first := ExportAll(in)
	second := ExportAll(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ExportAll is not deterministic: %+v vs %+v", first, second)
	}
}

func TestExportAllEmptyInputYieldsEmptySlices(t *testing.T) {
	result := ExportAll(Input{})
	if len(result.Tamed) != 0 || len(result.Wild) != 0 || len(result.Players) != 0 {
		t.Fatalf("got %+v, want empty slices", result)
	}
	if result.Summary.ObjectCount != 0 || result.Summary.ParseErrorCount != 0 {
		t.Fatalf("got %+v", result.Summary)
	}
}

func TestExportMapStructuresMirrorsStructures(t *testing.T) {
	structures := []*models.Structure{{ClassName: "Wooden_Wall", Health: 100}}
	result := ExportAll(Input{Structures: structures})
	if !reflect.DeepEqual(result.Structures, result.MapStructures) {
		t.Fatalf("MapStructures diverged from Structures: %+v vs %+v", result.MapStructures, result.Structures)
	}
}

func TestExportTribeLogsFlattensAcrossTribes(t *testing.T) {
	tribes := []*models.Tribe{
		{TribeName: "A", Logs: []models.TribeLogEntry{{Day: 1, CleanMessage: "one"}}},
		{TribeName: "B", Logs: []models.TribeLogEntry{{Day: 2, CleanMessage: "two"}}},
	}
	result := ExportAll(Input{Tribes: tribes})
	if len(result.TribeLogs) != 2 {
		t.Fatalf("got %d logs, want 2", len(result.TribeLogs))
	}
}

func TestMarshalJSONProducesExpectedKeys(t *testing.T) {
	result := ExportAll(Input{})
	data, err := MarshalJSON(result)
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"ASV_Tamed", "ASV_Wild", "ASV_Players", "ASV_Tribes", "ASV_Structures", "ASV_MapStructures", "ASV_TribeLogs", "ASV_Summary"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("missing key %q in export document", key)
		}
	}
}
