package utils

import (
	"cmp"
	"slices"
)

// GetKeys returns the keys of a map, in no particular order
func GetKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetSortedKeys returns the keys of a map in ascending order
func GetSortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}
