package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is an insertion-ordered mapping from element name to value.
// Setting an existing key replaces its value and keeps its position.
//
// Values held in a Mapping, and extracted values in general, are one of:
// string, *Mapping, []any or nil.
type Mapping = orderedmap.OrderedMap[string, any]

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return orderedmap.New[string, any]()
}

// Keys returns the keys of m in insertion order.
func Keys(m *Mapping) []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// ToPlain converts an extracted value into plain Go maps and slices.
// Key order is lost; use it for comparisons, not for serialisation.
func ToPlain(v any) any {
	switch val := v.(type) {
	case *Mapping:
		if val == nil {
			return nil
		}
		out := make(map[string]any, val.Len())
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = ToPlain(pair.Value)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ToPlain(item)
		}
		return out
	default:
		return v
	}
}
