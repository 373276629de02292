package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns a map's keys in ascending order, so iteration over a map
// can produce deterministic output.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
