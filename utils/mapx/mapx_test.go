// File: mapx_test.go
// Title: Map Utility Tests
// Description: Tests for generic map operations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package mapx

import (
	"reflect"
	"testing"
)

func TestKeys(t *testing.T) {
	m := map[string]string{"FLEXIBLE": "1", "POSRES": "1"}
	keys := Keys(m)

	if len(keys) != 2 {
		t.Errorf("Keys() returned %d keys, want 2", len(keys))
	}

	if Keys[string, string](nil) != nil {
		t.Error("Keys(nil) should return nil")
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 1, "a": 2, "b": 3}
	got := SortedKeys(m)
	want := []string{"a", "b", "c"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys() = %v, want %v", got, want)
	}
}

func TestClone(t *testing.T) {
	original := map[string]string{"POSRES": "1"}
	clone := Clone(original)

	clone["POSRES"] = "changed"
	clone["NEW"] = "added"

	if original["POSRES"] != "1" {
		t.Error("Clone() should create an independent copy")
	}

	if len(original) != 1 {
		t.Error("Clone() should not grow the source map")
	}

	if Clone[string, string](nil) != nil {
		t.Error("Clone(nil) should return nil")
	}
}

func TestMerge(t *testing.T) {
	base := map[string]string{"A": "1", "B": "2"}
	override := map[string]string{"B": "3", "C": "4"}

	merged := Merge(base, override)

	want := map[string]string{"A": "1", "B": "3", "C": "4"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("Merge() = %v, want %v", merged, want)
	}

	// Sources unchanged
	if base["B"] != "2" {
		t.Error("Merge() should not modify source maps")
	}
}

func TestHasKey(t *testing.T) {
	m := map[string]string{"POSRES": "1"}

	if !HasKey(m, "POSRES") {
		t.Error("HasKey() = false for existing key")
	}

	if HasKey(m, "FLEXIBLE") {
		t.Error("HasKey() = true for missing key")
	}
}

func TestGetOrDefault(t *testing.T) {
	m := map[string]int{"depth": 5}

	if got := GetOrDefault(m, "depth", 10); got != 5 {
		t.Errorf("GetOrDefault() = %d, want 5", got)
	}

	if got := GetOrDefault(m, "missing", 10); got != 10 {
		t.Errorf("GetOrDefault() = %d, want 10", got)
	}
}

func TestFilter(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	got := Filter(m, func(k string, v int) bool { return v > 1 })

	want := map[string]int{"b": 2, "c": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestEqual(t *testing.T) {
	a := map[string]string{"x": "1"}
	b := map[string]string{"x": "1"}
	c := map[string]string{"x": "2"}

	if !Equal(a, b) {
		t.Error("Equal() = false for equal maps")
	}

	if Equal(a, c) {
		t.Error("Equal() = true for different values")
	}

	if Equal(a, map[string]string{}) {
		t.Error("Equal() = true for different sizes")
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty(map[string]int{}) {
		t.Error("IsEmpty() = false for empty map")
	}

	if IsEmpty(map[string]int{"a": 1}) {
		t.Error("IsEmpty() = true for non-empty map")
	}
}
