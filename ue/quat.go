package ue

import "arksave/memory"

// FQuat is a rotation quaternion. Registered-struct quaternions in ARK
// property data are always single precision regardless of ASE/ASA.
type FQuat struct {
	X, Y, Z, W float32
}

// ReadFQuat decodes an FQuat.
func ReadFQuat(r *memory.Reader) (FQuat, error) {
	x, err := r.ReadF32()
	if err != nil {
		return FQuat{}, err
	}
	y, err := r.ReadF32()
	if err != nil {
		return FQuat{}, err
	}
	z, err := r.ReadF32()
	if err != nil {
		return FQuat{}, err
	}
	w, err := r.ReadF32()
	if err != nil {
		return FQuat{}, err
	}
	return FQuat{X: x, Y: y, Z: z, W: w}, nil
}
