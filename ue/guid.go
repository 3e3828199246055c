package ue

import (
	"arksave/memory"

	"github.com/google/uuid"
)

// FGuid is a 16-byte Unreal/ARK object GUID. The zero value is the sentinel
// "no GUID" used throughout ASE (where object identity is index-based) and
// as the null-object-reference marker in ASA (spec §4.4, ObjectProperty).
type FGuid [16]byte

// IsZero reports whether g is the all-zero sentinel GUID.
func (g FGuid) IsZero() bool {
	return g == FGuid{}
}

// String renders the GUID using the standard UUID hyphenated form. The byte
// layout is treated as opaque identity, not a conformant RFC 4122 UUID; this
// only borrows the formatting.
func (g FGuid) String() string {
	return uuid.UUID(g).String()
}

// ReadGuid decodes a 16-byte GUID.
func ReadGuid(r *memory.Reader) (FGuid, error) {
	b, err := r.ReadBytes(16)
	if err != nil {
		return FGuid{}, err
	}
	var g FGuid
	copy(g[:], b)
	return g, nil
}
