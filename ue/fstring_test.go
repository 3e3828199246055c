package ue

import (
	"testing"

	"arksave/memory"
)

func TestFStringASCIIRoundTrip(t *testing.T) {
	encoded := EncodeFString("hello", false)
	r := memory.NewReader(encoded)
	s, err := ReadFString(r)
	if err != nil {
		t.Fatalf("ReadFString: %v", err)
	}
	if s != "hello" {
		t.Fatalf("got %q, want %q", s, "hello")
	}
}

func TestFStringWideRoundTrip(t *testing.T) {
	encoded := EncodeFString("héllo", true)
	r := memory.NewReader(encoded)
	s, err := ReadFString(r)
	if err != nil {
		t.Fatalf("ReadFString: %v", err)
	}
	if s != "héllo" {
		t.Fatalf("got %q, want %q", s, "héllo")
	}
}

func TestFStringEmptyRoundTrip(t *testing.T) {
	encoded := EncodeFString("", false)
	r := memory.NewReader(encoded)
	s, err := ReadFString(r)
	if err != nil {
		t.Fatalf("ReadFString: %v", err)
	}
	if s != "" {
		t.Fatalf("got %q, want empty", s)
	}
}

func TestFStringWideNegativeOneBoundary(t *testing.T) {
	// N == -1: exactly one wide NUL code unit, decodes to "".
	buf := []byte{0xff, 0xff, 0xff, 0xff, 0, 0}
	r := memory.NewReader(buf)
	s, err := ReadFString(r)
	if err != nil {
		t.Fatalf("ReadFString: %v", err)
	}
	if s != "" {
		t.Fatalf("N=-1 got %q, want empty", s)
	}
}
