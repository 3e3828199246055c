package ue

import "arksave/memory"

// FRotator is a pitch/yaw/roll orientation, same width convention as
// FVector (spec §3).
type FRotator struct {
	Pitch, Yaw, Roll float64
}

// ReadFRotator decodes an FRotator.
func ReadFRotator(r *memory.Reader, wide bool) (FRotator, error) {
	p, y, rl, err := read3(r, wide)
	if err != nil {
		return FRotator{}, err
	}
	return FRotator{Pitch: p, Yaw: y, Roll: rl}, nil
}
