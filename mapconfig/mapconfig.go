// Package mapconfig converts in-game world coordinates to the GPS
// lat/lon pairs third-party map tools expect, via a per-map affine
// transform (spec §1 "GPS coordinate mapping", §8 scenario 6).
package mapconfig

// Map is a single map's coordinate transform: origin is the world
// position that maps to (0, 0) GPS, and scale converts world units to
// GPS degrees.
type Map struct {
	Name    string
	OriginX float64
	OriginY float64
	ScaleX  float64
	ScaleY  float64
}

// ToGPS converts a world-space (x, y) into (lat, lon) using m's affine
// transform: lat/lon = (world - origin) / scale (spec §8 scenario 6).
func (m Map) ToGPS(worldX, worldY float64) (lat, lon float64) {
	lat = (worldX - m.OriginX) / m.ScaleX
	lon = (worldY - m.OriginY) / m.ScaleY
	return lat, lon
}

// TheIsland is the default map's transform, carried as a built-in
// example; real deployments load additional maps from a config table
// keyed by level name.
var TheIsland = Map{
	Name:    "TheIsland",
	OriginX: -400000,
	OriginY: -400000,
	ScaleX:  800000.0 / 100.0,
	ScaleY:  800000.0 / 100.0,
}

// Registry resolves a level name to its Map.
type Registry map[string]Map

// NewRegistry returns a Registry seeded with the known built-in maps.
func NewRegistry() Registry {
	return Registry{
		TheIsland.Name: TheIsland,
	}
}

// Lookup returns the Map registered under name.
func (r Registry) Lookup(name string) (Map, bool) {
	m, ok := r[name]
	return m, ok
}
