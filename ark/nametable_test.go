package ark

import (
	"testing"

	"arksave/memory"
	"arksave/ue"
)

func u32le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func fstringASCII(s string) []byte {
	return ue.EncodeFString(s, false)
}

func TestLoadTrailingNameTableRestoresCursor(t *testing.T) {
	var buf []byte
	buf = append(buf, make([]byte, 8)...) // leading bytes before the table
	tableStart := len(buf)
	buf = append(buf, u32le(2)...)
	buf = append(buf, fstringASCII("None")...)
	buf = append(buf, fstringASCII("Hello")...)

	r := memory.NewReader(buf)
	if err := r.Seek(4); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	nt, err := LoadTrailingNameTable(r, int64(tableStart))
	if err != nil {
		t.Fatalf("LoadTrailingNameTable: %v", err)
	}
	if r.Tell() != 4 {
		t.Fatalf("cursor not restored: got %d, want 4", r.Tell())
	}
	// Wire indices are 1-based: "None" is index 1, "Hello" is index 2.
	name, err := nt.Resolve(2)
	if err != nil || name != "Hello" {
		t.Fatalf("Resolve(2) = %q, %v", name, err)
	}
}

func TestNameTableResolveOutOfRange(t *testing.T) {
	nt := NewTrailingNameTable([]string{"A", "B"})
	if _, err := nt.Resolve(5); err == nil {
		t.Fatalf("expected error for out-of-range index")
	} else if _, ok := err.(*CorruptError); !ok {
		t.Fatalf("expected *CorruptError, got %T", err)
	}
	// Index 0 is below the 1-based wire range and must also be rejected.
	if _, err := nt.Resolve(0); err == nil {
		t.Fatalf("expected error for index 0")
	}
}

func TestNameRefStringWithSuffix(t *testing.T) {
	// Wire instance 4 renders as suffix 3 (display_suffix = instance - 1).
	n := NameRef{Name: "Dino", Number: 4}
	if n.String() != "Dino_3" {
		t.Fatalf("got %q", n.String())
	}
	zero := NameRef{Name: "Dino"}
	if zero.String() != "Dino" {
		t.Fatalf("got %q", zero.String())
	}
}

func TestNameRefIsNone(t *testing.T) {
	if !(NameRef{Name: "None"}).IsNone() {
		t.Fatalf("expected IsNone true")
	}
	if (NameRef{Name: "Other"}).IsNone() {
		t.Fatalf("expected IsNone false")
	}
}

func TestReadNameRefInlineStrategy(t *testing.T) {
	nt := NewInlineNameTable()
	r := memory.NewReader(fstringASCII("Foo"))
	n, err := ReadNameRef(r, nt)
	if err != nil {
		t.Fatalf("ReadNameRef: %v", err)
	}
	if n.Name != "Foo" {
		t.Fatalf("got %q", n.Name)
	}
}

func TestReadNameRefTrailingStrategy(t *testing.T) {
	nt := NewTrailingNameTable([]string{"Zero", "One"})
	// Wire index 2 resolves to the second (1-based) table entry, "One".
	buf := append(u32le(2), []byte{7, 0, 0, 0}...) // index=2, number=7
	r := memory.NewReader(buf)
	n, err := ReadNameRef(r, nt)
	if err != nil {
		t.Fatalf("ReadNameRef: %v", err)
	}
	if n.Name != "One" || n.Number != 7 {
		t.Fatalf("got %+v", n)
	}
}
