package ue

import "arksave/memory"

// FVector is a 3-component position/direction. ASA save data stores these
// as doubles; ASE stores them as singles (spec §3, LocationData).
type FVector struct {
	X, Y, Z float64
}

// ReadFVector decodes an FVector using f64 components when wide is true,
// f32 components otherwise.
func ReadFVector(r *memory.Reader, wide bool) (FVector, error) {
	x, y, z, err := read3(r, wide)
	if err != nil {
		return FVector{}, err
	}
	return FVector{X: x, Y: y, Z: z}, nil
}

func read3(r *memory.Reader, wide bool) (a, b, c float64, err error) {
	readOne := r.ReadF32
	if wide {
		readOne64 := r.ReadF64
		a64, err := readOne64()
		if err != nil {
			return 0, 0, 0, err
		}
		b64, err := readOne64()
		if err != nil {
			return 0, 0, 0, err
		}
		c64, err := readOne64()
		if err != nil {
			return 0, 0, 0, err
		}
		return a64, b64, c64, nil
	}
	af, err := readOne()
	if err != nil {
		return 0, 0, 0, err
	}
	bf, err := readOne()
	if err != nil {
		return 0, 0, 0, err
	}
	cf, err := readOne()
	if err != nil {
		return 0, 0, 0, err
	}
	return float64(af), float64(bf), float64(cf), nil
}
