package asa

import (
	"testing"

	"arksave/ark"
	"arksave/ue"
)

func TestTryParseNameTableBlob(t *testing.T) {
	var blob []byte
	blob = append(blob, ue.EncodeFString("None", false)...)
	blob = append(blob, ue.EncodeFString("Health", false)...)

	names := tryParseNameTableBlob(blob)
	if len(names) != 2 || names[0] != "None" || names[1] != "Health" {
		t.Fatalf("got %v", names)
	}
}

func TestTryParseNameTableBlobRejectsGarbage(t *testing.T) {
	if names := tryParseNameTableBlob([]byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0}); names != nil {
		t.Fatalf("expected nil for unparseable blob, got %v", names)
	}
}

func TestClassNameFromProperties(t *testing.T) {
	props := []ark.Property{
		{Name: ark.NameRef{Name: "SomeOther"}, Value: int32(1)},
		{Name: ark.NameRef{Name: "ClassName"}, Value: "Rex_Character_BP_C"},
	}
	if got := classNameFromProperties(props); got != "Rex_Character_BP_C" {
		t.Fatalf("got %q", got)
	}
}

func TestClassNameFromPropertiesFallsBackEmpty(t *testing.T) {
	if got := classNameFromProperties(nil); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestLooksLikeBlobColumn(t *testing.T) {
	if !looksLikeBlobColumn("CustomDataValue") {
		t.Fatalf("expected CustomDataValue to look like a blob column")
	}
	if looksLikeBlobColumn("id") {
		t.Fatalf("did not expect id to look like a blob column")
	}
}
