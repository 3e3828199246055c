package ue

import (
	"bytes"
	"math"
	"testing"

	"arksave/memory"
)

func f32le(v float32) []byte {
	bits := math.Float32bits(v)
	return []byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

func TestFVectorNarrow(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(f32le(1))
	buf.Write(f32le(2))
	buf.Write(f32le(3))
	v, err := ReadFVector(memory.NewReader(buf.Bytes()), false)
	if err != nil {
		t.Fatalf("ReadFVector: %v", err)
	}
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Fatalf("got %+v", v)
	}
}

func TestFVectorWideUsesDoubles(t *testing.T) {
	buf := make([]byte, 24)
	r := memory.NewReader(buf)
	v, err := ReadFVector(r, true)
	if err != nil {
		t.Fatalf("ReadFVector wide: %v", err)
	}
	if v.X != 0 || v.Y != 0 || v.Z != 0 {
		t.Fatalf("got %+v", v)
	}
}

func TestGuidZeroIsSentinel(t *testing.T) {
	var g FGuid
	if !g.IsZero() {
		t.Fatalf("zero FGuid should report IsZero")
	}
	g[0] = 1
	if g.IsZero() {
		t.Fatalf("non-zero FGuid reported IsZero")
	}
}

func TestReadGuid(t *testing.T) {
	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = byte(i)
	}
	g, err := ReadGuid(memory.NewReader(buf))
	if err != nil {
		t.Fatalf("ReadGuid: %v", err)
	}
	if g[0] != 0 || g[15] != 15 {
		t.Fatalf("got %v", g)
	}
}

func TestReadFUniqueNetIdReplInvalid(t *testing.T) {
	buf := []byte{0, 0, 0, 0} // valid=false
	id, err := ReadFUniqueNetIdRepl(memory.NewReader(buf))
	if err != nil {
		t.Fatalf("ReadFUniqueNetIdRepl: %v", err)
	}
	if id.Valid {
		t.Fatalf("expected Valid=false")
	}
}
