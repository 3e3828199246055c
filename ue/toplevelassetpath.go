package ue

import "arksave/memory"

// FTopLevelAssetPath is a package/asset path pair, serialized as two
// consecutive FStrings. It is not in the ark registered-struct table.
type FTopLevelAssetPath struct {
	PackageName string
	AssetName   string
}

// ReadFTopLevelAssetPath decodes an FTopLevelAssetPath.
func ReadFTopLevelAssetPath(r *memory.Reader) (FTopLevelAssetPath, error) {
	pkg, err := ReadFString(r)
	if err != nil {
		return FTopLevelAssetPath{}, err
	}
	asset, err := ReadFString(r)
	if err != nil {
		return FTopLevelAssetPath{}, err
	}
	return FTopLevelAssetPath{PackageName: pkg, AssetName: asset}, nil
}
