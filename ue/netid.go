package ue

import "arksave/memory"

// FUniqueNetIdRepl is a platform-tagged player identity: an "has value"
// flag, the platform type string, then the opaque net-id string.
type FUniqueNetIdRepl struct {
	Valid    bool
	Platform string
	NetID    string
}

// ReadFUniqueNetIdRepl decodes an FUniqueNetIdRepl.
func ReadFUniqueNetIdRepl(r *memory.Reader) (FUniqueNetIdRepl, error) {
	valid, err := r.ReadBool32()
	if err != nil {
		return FUniqueNetIdRepl{}, err
	}
	if !valid {
		return FUniqueNetIdRepl{}, nil
	}
	platform, err := ReadFString(r)
	if err != nil {
		return FUniqueNetIdRepl{}, err
	}
	netID, err := ReadFString(r)
	if err != nil {
		return FUniqueNetIdRepl{}, err
	}
	return FUniqueNetIdRepl{Valid: true, Platform: platform, NetID: netID}, nil
}
