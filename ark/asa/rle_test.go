package asa

import (
	"bytes"
	"testing"
)

func chunkLiteral(b []byte) []byte {
	n := int32(len(b))
	header := []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	return append(header, b...)
}

func chunkZeroRun(n int32) []byte {
	neg := -n
	return []byte{byte(neg), byte(neg >> 8), byte(neg >> 16), byte(neg >> 24)}
}

func TestDecodeRLELiteralChunk(t *testing.T) {
	src := chunkLiteral([]byte{1, 2, 3})
	out, err := decodeRLE(src, 3)
	if err != nil {
		t.Fatalf("decodeRLE: %v", err)
	}
	if !bytes.Equal(out, []byte{1, 2, 3}) {
		t.Fatalf("got %v", out)
	}
}

func TestDecodeRLEZeroRunChunk(t *testing.T) {
	src := chunkZeroRun(4)
	out, err := decodeRLE(src, 4)
	if err != nil {
		t.Fatalf("decodeRLE: %v", err)
	}
	if !bytes.Equal(out, []byte{0, 0, 0, 0}) {
		t.Fatalf("got %v", out)
	}
}

func TestDecodeRLEMixedChunks(t *testing.T) {
	var src []byte
	src = append(src, chunkLiteral([]byte{9, 9})...)
	src = append(src, chunkZeroRun(2)...)
	src = append(src, chunkLiteral([]byte{5})...)

	out, err := decodeRLE(src, 5)
	if err != nil {
		t.Fatalf("decodeRLE: %v", err)
	}
	want := []byte{9, 9, 0, 0, 5}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestDecodeRLETruncatedHeaderErrors(t *testing.T) {
	src := []byte{1, 2}
	if _, err := decodeRLE(src, 10); err == nil {
		t.Fatalf("expected error for truncated chunk header")
	}
}

func TestDecodeRLETruncatedLiteralErrors(t *testing.T) {
	src := chunkLiteral([]byte{1})[:4] // header says 1 byte but none follow
	if _, err := decodeRLE(src, 5); err == nil {
		t.Fatalf("expected error for truncated literal chunk")
	}
}
