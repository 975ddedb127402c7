// File: slicex.go
// Title: Slice Utility Functions
// Description: Implements generic slice operations used across the gmxtop
//              library for node filtering, name collection, duplicate
//              detection, and grouping of topology entries.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with slice utilities

package slicex

// ===============================
// Core Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Unique returns a new slice with duplicate elements removed (preserves order)
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]bool)
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// ===============================
// Search Functions
// ===============================

// Contains returns true if the slice contains the element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// ContainsBy returns true if any element matches the predicate
func ContainsBy[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}
	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// IndexOfBy returns the index of the first element matching the predicate,
// or -1 if none matches
func IndexOfBy[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}
	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// Find returns the first element matching the predicate
func Find[T any](slice []T, predicate func(T) bool) (T, bool) {
	var zero T
	if predicate == nil {
		return zero, false
	}
	for _, item := range slice {
		if predicate(item) {
			return item, true
		}
	}
	return zero, false
}

// FindLast returns the last element matching the predicate
func FindLast[T any](slice []T, predicate func(T) bool) (T, bool) {
	var zero T
	if predicate == nil {
		return zero, false
	}
	for i := len(slice) - 1; i >= 0; i-- {
		if predicate(slice[i]) {
			return slice[i], true
		}
	}
	return zero, false
}

// Count returns the number of elements matching the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return 0
	}
	count := 0
	for _, item := range slice {
		if predicate(item) {
			count++
		}
	}
	return count
}

// ===============================
// Aggregation Functions
// ===============================

// GroupBy groups elements by the key produced by keyFunc, preserving the
// relative order of elements within each group
func GroupBy[T any, K comparable](slice []T, keyFunc func(T) K) map[K][]T {
	if slice == nil || keyFunc == nil {
		return nil
	}

	groups := make(map[K][]T)
	for _, item := range slice {
		key := keyFunc(item)
		groups[key] = append(groups[key], item)
	}
	return groups
}

// ===============================
// Utility Functions
// ===============================

// Clone returns a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Equal returns true if the two slices have equal length and elements
func Equal[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := range slice1 {
		if slice1[i] != slice2[i] {
			return false
		}
	}
	return true
}

// IsEmpty returns true if the slice has no elements
func IsEmpty[T any](slice []T) bool {
	return len(slice) == 0
}
