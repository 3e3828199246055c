package ark

import "testing"

func TestDetectASASQLite(t *testing.T) {
	header := append([]byte("SQLite format 3\x00"), []byte("junk PrimalTribeData junk")...)
	format, kind, version := Detect(header)
	if format != FormatASA {
		t.Fatalf("format = %v, want ASA", format)
	}
	if kind != KindTribe {
		t.Fatalf("kind = %v, want KindTribe", kind)
	}
	if version != 0 {
		t.Fatalf("version = %d, want 0 for ASA", version)
	}
}

func TestDetectASEVersionAndKind(t *testing.T) {
	header := append(u32le(9), []byte("junk PrimalPlayerData junk")...)
	format, kind, version := Detect(header)
	if format != FormatASE {
		t.Fatalf("format = %v, want ASE", format)
	}
	if version != 9 {
		t.Fatalf("version = %d, want 9", version)
	}
	if kind != KindProfile {
		t.Fatalf("kind = %v, want KindProfile", kind)
	}
}

func TestDetectUnrecognizedVersionLeavesZero(t *testing.T) {
	header := append(u32le(999), []byte("no markers here")...)
	_, kind, version := Detect(header)
	if version != 0 {
		t.Fatalf("version = %d, want 0 for unrecognized version", version)
	}
	if kind != KindWorld {
		t.Fatalf("kind = %v, want KindWorld fallback", kind)
	}
}

func TestDetectASASchemaByTableNames(t *testing.T) {
	if DetectASASchema([]string{"actor", "tribe", "custom"}) != KindTribe {
		t.Fatalf("expected KindTribe")
	}
	if DetectASASchema([]string{"actor", "custom"}) != KindWorld {
		t.Fatalf("expected KindWorld fallback")
	}
}
