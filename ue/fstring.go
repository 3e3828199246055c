// Package ue decodes the fixed-schema Unreal-Engine primitives and structs
// that appear inside ARK property trees: strings, names, GUIDs, vectors,
// transforms and the handful of other registered struct types (spec §4.3).
package ue

import (
	"bytes"

	"arksave/memory"

	"golang.org/x/text/encoding/unicode"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// DecodeUTF16LE decodes a UTF-16LE byte run (no BOM) to a Go string.
func DecodeUTF16LE(b []byte) (string, error) {
	out, err := utf16LE.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadFString decodes the FString wire encoding (spec §4.1) from r.
func ReadFString(r *memory.Reader) (string, error) {
	return r.ReadFString(DecodeUTF16LE)
}

// EncodeFString re-encodes s using the FString wire format, for round-trip
// tests (spec §8). wide selects the UTF-16LE branch (N < 0); otherwise the
// ASCII/UTF-8 branch (N > 0) is used unless s is empty, which always
// encodes as N == 0.
func EncodeFString(s string, wide bool) []byte {
	if s == "" {
		return []byte{0, 0, 0, 0}
	}
	var buf bytes.Buffer
	if !wide {
		n := int32(len(s) + 1)
		writeI32(&buf, n)
		buf.WriteString(s)
		buf.WriteByte(0)
		return buf.Bytes()
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	wideBytes, _ := enc.Bytes([]byte(s))
	wideBytes = append(wideBytes, 0, 0) // trailing wide NUL
	units := int32(len(wideBytes) / 2)
	writeI32(&buf, -units)
	buf.Write(wideBytes)
	return buf.Bytes()
}

func writeI32(buf *bytes.Buffer, v int32) {
	buf.WriteByte(byte(v))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 24))
}
