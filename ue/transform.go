package ue

import "arksave/memory"

// FTransform is a rotation/translation/scale triple, as used for the
// "Transform" registered struct in ARK property data (spec §4.3).
type FTransform struct {
	Rotation    FQuat
	Translation FVector
	Scale       FVector
}

// ReadFTransform decodes an FTransform. Translation and scale use single
// precision; ARK's "Transform" struct property never carries the ASA
// double-precision variant seen in LocationData.
func ReadFTransform(r *memory.Reader) (FTransform, error) {
	rot, err := ReadFQuat(r)
	if err != nil {
		return FTransform{}, err
	}
	trans, err := ReadFVector(r, false)
	if err != nil {
		return FTransform{}, err
	}
	scale, err := ReadFVector(r, false)
	if err != nil {
		return FTransform{}, err
	}
	return FTransform{Rotation: rot, Translation: trans, Scale: scale}, nil
}
