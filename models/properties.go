// Package models projects raw decoded GameObjects into the typed entities
// a caller actually wants: players, tribes, creatures, structures, items,
// cryopod payloads and tribe log entries (spec §4.9, C9).
package models

import "arksave/ark"

// findProp returns the first property with the given name, regardless of
// index.
func findProp(props []ark.Property, name string) (*ark.Property, bool) {
	for i := range props {
		if props[i].Name.Name == name {
			return &props[i], true
		}
	}
	return nil, false
}

func stringValue(props []ark.Property, name string, def string) string {
	p, ok := findProp(props, name)
	if !ok {
		return def
	}
	if s, ok := p.Value.(string); ok {
		return s
	}
	return def
}

func boolValue(props []ark.Property, name string, def bool) bool {
	p, ok := findProp(props, name)
	if !ok {
		return def
	}
	if b, ok := p.Value.(bool); ok {
		return b
	}
	return def
}

// toFloat64 widens any scalar numeric property value the decoder can
// produce to float64; other kinds (struct/array/map/string/bool) report
// false.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func floatValue(props []ark.Property, name string, def float64) float64 {
	p, ok := findProp(props, name)
	if !ok {
		return def
	}
	if f, ok := toFloat64(p.Value); ok {
		return f
	}
	return def
}

func intValue(props []ark.Property, name string, def int64) int64 {
	p, ok := findProp(props, name)
	if !ok {
		return def
	}
	if f, ok := toFloat64(p.Value); ok {
		return int64(f)
	}
	return def
}

// sumByIndex sums the values of every property named propName, bucketed
// by its Index field (spec §4.9 stats: "each stat is the sum of
// same-name properties over the respective index field" — duplicate
// (name, index) pairs, noted in spec §3 invariant 4, are added together
// rather than overwritten).
func sumByIndex(props []ark.Property, propName string, slots int) []float64 {
	out := make([]float64, slots)
	for _, p := range props {
		if p.Name.Name != propName {
			continue
		}
		if int(p.Index) >= slots {
			continue
		}
		if f, ok := toFloat64(p.Value); ok {
			out[p.Index] += f
		}
	}
	return out
}
