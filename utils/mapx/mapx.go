// File: mapx.go
// Title: Map Utility Functions
// Description: Implements generic map operations used across the gmxtop
//              library for managing preprocessor definition maps, merging
//              configured defines with parser options, and producing
//              deterministic key listings.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with map utilities

package mapx

import (
	"cmp"
	"slices"
)

// Keys returns the keys of the map in unspecified order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of the map in ascending order. Deterministic
// listings matter wherever map contents reach rendered output or logs.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Values returns the values of the map in unspecified order
func Values[K comparable, V any](m map[K]V) []V {
	if m == nil {
		return nil
	}

	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Clone returns a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Merge combines multiple maps into a new one. Later maps win on key
// collisions.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	result := make(map[K]V, size)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// HasKey returns true if the map contains the key
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, exists := m[key]
	return exists
}

// GetOrDefault returns the value for key, or defaultValue if the key is
// absent
func GetOrDefault[K comparable, V any](m map[K]V, key K, defaultValue V) V {
	if v, exists := m[key]; exists {
		return v
	}
	return defaultValue
}

// Filter returns a new map containing only entries matching the predicate
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	if m == nil || predicate == nil {
		return nil
	}

	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// Equal returns true if both maps hold the same key-value pairs
func Equal[K, V comparable](m1, m2 map[K]V) bool {
	if len(m1) != len(m2) {
		return false
	}
	for k, v1 := range m1 {
		if v2, exists := m2[k]; !exists || v1 != v2 {
			return false
		}
	}
	return true
}

// IsEmpty returns true if the map has no entries
func IsEmpty[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}
