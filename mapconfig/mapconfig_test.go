package mapconfig

import "testing"

func TestTheIslandOriginMapsToFifty(t *testing.T) {
	lat, lon := TheIsland.ToGPS(0, 0)
	if lat != 50 || lon != 50 {
		t.Fatalf("got (%v, %v), want (50, 50)", lat, lon)
	}
}

func TestToGPSAtOrigin(t *testing.T) {
	m := Map{OriginX: -100, OriginY: -100, ScaleX: 10, ScaleY: 10}
	lat, lon := m.ToGPS(-100, -100)
	if lat != 0 || lon != 0 {
		t.Fatalf("got (%v, %v), want (0, 0)", lat, lon)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	m, ok := r.Lookup("TheIsland")
	if !ok || m.Name != "TheIsland" {
		t.Fatalf("got %+v, %v", m, ok)
	}
	if _, ok := r.Lookup("Nonexistent"); ok {
		t.Fatalf("expected no match for unregistered map")
	}
}
