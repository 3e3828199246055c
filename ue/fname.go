package ue

import "arksave/memory"

// FName is the raw wire form of an interned name reference: an index into
// the active name table plus an optional numeric suffix (spec §3 NameRef).
// A Number of 0 means no suffix was present.
type FName struct {
	Index  int32
	Number int32
}

// ReadFName decodes the trailing-table wire form of a name reference: a
// table index followed by its suffix number.
func ReadFName(r *memory.Reader) (FName, error) {
	index, err := r.ReadI32()
	if err != nil {
		return FName{}, err
	}
	number, err := r.ReadI32()
	if err != nil {
		return FName{}, err
	}
	return FName{Index: index, Number: number}, nil
}
