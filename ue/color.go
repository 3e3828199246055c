package ue

import "arksave/memory"

// FColor is a packed 8-bit-per-channel BGRA color.
type FColor struct {
	B, G, R, A uint8
}

// ReadFColor decodes an FColor.
func ReadFColor(r *memory.Reader) (FColor, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return FColor{}, err
	}
	return FColor{B: b[0], G: b[1], R: b[2], A: b[3]}, nil
}

// FLinearColor is a floating-point RGBA color in linear space.
type FLinearColor struct {
	R, G, B, A float32
}

// ReadFLinearColor decodes an FLinearColor.
func ReadFLinearColor(r *memory.Reader) (FLinearColor, error) {
	vals := [4]float32{}
	for i := range vals {
		v, err := r.ReadF32()
		if err != nil {
			return FLinearColor{}, err
		}
		vals[i] = v
	}
	return FLinearColor{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}
