package ark

import "bytes"

// Kind identifies the logical file kind a save blob was written as,
// independent of its on-disk format (spec §4.5, §6).
type Kind int

const (
	KindUnknown Kind = iota
	KindProfile
	KindTribe
	KindCloudInventory
	KindWorld
)

var sqliteMagic = []byte("SQLite format 3\x00")

// validASEVersions are the version ints observed in circulation (spec §9
// open question: the exact set may be incomplete; gate on explicit
// membership rather than a range so an unrecognized version fails loudly
// instead of silently misparsing).
var validASEVersions = map[int32]bool{5: true, 6: true, 9: true, 10: true, 11: true}

var kindMarkers = []struct {
	marker string
	kind   Kind
}{
	{"PrimalPlayerData", KindProfile},
	{"PrimalTribeData", KindTribe},
	{"ArkCloudInventoryData", KindCloudInventory},
}

// Detect sniffs format, file kind, and (for ASE) version from the first
// bytes of a save file (spec §4.5). It only inspects the given byte slice;
// the kind markers are searched for anywhere in it.
func Detect(header []byte) (format Format, kind Kind, version int32) {
	if len(header) >= len(sqliteMagic) && bytes.Equal(header[:len(sqliteMagic)], sqliteMagic) {
		return FormatASA, detectKindFromBytes(header), 0
	}

	format = FormatASE
	if len(header) >= 4 {
		v := int32(header[0]) | int32(header[1])<<8 | int32(header[2])<<16 | int32(header[3])<<24
		if validASEVersions[v] {
			version = v
		}
	}
	kind = detectKindFromBytes(header)
	return format, kind, version
}

func detectKindFromBytes(header []byte) Kind {
	for _, m := range kindMarkers {
		if bytes.Contains(header, []byte(m.marker)) {
			return m.kind
		}
	}
	return KindWorld
}

// DetectASASchema infers the file kind for an ASA container from the set
// of table names present, since column names may drift across game
// patches (spec §9 open question). tables should be lowercased.
func DetectASASchema(tables []string) Kind {
	has := func(name string) bool {
		for _, t := range tables {
			if t == name {
				return true
			}
		}
		return false
	}
	switch {
	case has("profile") || has("player"):
		return KindProfile
	case has("tribe"):
		return KindTribe
	case has("cloudinventory"):
		return KindCloudInventory
	default:
		return KindWorld
	}
}
