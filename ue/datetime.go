package ue

import "arksave/memory"

// FDateTime is a tick count (100ns units since year 1) as serialized by
// Unreal's FDateTime::Serialize.
type FDateTime int64

// ReadFDateTime decodes an FDateTime.
func ReadFDateTime(r *memory.Reader) (FDateTime, error) {
	v, err := r.ReadI64()
	return FDateTime(v), err
}

// FTimespan is a duration in the same 100ns tick units as FDateTime.
type FTimespan int64

// ReadFTimespan decodes an FTimespan.
func ReadFTimespan(r *memory.Reader) (FTimespan, error) {
	v, err := r.ReadI64()
	return FTimespan(v), err
}
