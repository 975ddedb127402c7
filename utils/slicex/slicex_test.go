// File: slicex_test.go
// Title: Slice Utility Tests
// Description: Tests for generic slice operations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package slicex

import (
	"reflect"
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	input := []string{"atoms", "bonds", "angles", "dihedrals"}
	got := Filter(input, func(s string) bool { return strings.HasPrefix(s, "a") })
	want := []string{"atoms", "angles"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}

	if Filter[string](nil, func(string) bool { return true }) != nil {
		t.Error("Filter(nil) should return nil")
	}
}

func TestMap(t *testing.T) {
	input := []string{"SOL", "NA", "CL"}
	got := Map(input, strings.ToLower)
	want := []string{"sol", "na", "cl"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestUnique(t *testing.T) {
	input := []string{"SOL", "NA", "SOL", "CL", "NA"}
	got := Unique(input)
	want := []string{"SOL", "NA", "CL"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unique() = %v, want %v", got, want)
	}
}

func TestContains(t *testing.T) {
	input := []string{"atoms", "bonds"}

	if !Contains(input, "atoms") {
		t.Error("Contains() = false, want true")
	}

	if Contains(input, "angles") {
		t.Error("Contains() = true, want false")
	}
}

func TestContainsBy(t *testing.T) {
	input := []int{1, 3, 5}

	if !ContainsBy(input, func(n int) bool { return n > 4 }) {
		t.Error("ContainsBy() = false, want true")
	}

	if ContainsBy(input, func(n int) bool { return n > 10 }) {
		t.Error("ContainsBy() = true, want false")
	}
}

func TestFind(t *testing.T) {
	input := []string{"first", "second", "third"}

	got, ok := Find(input, func(s string) bool { return strings.HasPrefix(s, "s") })
	if !ok || got != "second" {
		t.Errorf("Find() = %q, %v, want second, true", got, ok)
	}

	_, ok = Find(input, func(s string) bool { return s == "missing" })
	if ok {
		t.Error("Find() ok = true for missing element")
	}
}

func TestFindLast(t *testing.T) {
	input := []string{"sa", "sb", "x"}

	got, ok := FindLast(input, func(s string) bool { return strings.HasPrefix(s, "s") })
	if !ok || got != "sb" {
		t.Errorf("FindLast() = %q, %v, want sb, true", got, ok)
	}
}

func TestIndexOfBy(t *testing.T) {
	input := []int{10, 20, 30}

	if got := IndexOfBy(input, func(n int) bool { return n == 20 }); got != 1 {
		t.Errorf("IndexOfBy() = %d, want 1", got)
	}

	if got := IndexOfBy(input, func(n int) bool { return n == 99 }); got != -1 {
		t.Errorf("IndexOfBy() = %d, want -1", got)
	}
}

func TestCount(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	if got := Count(input, func(n int) bool { return n%2 == 0 }); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestGroupBy(t *testing.T) {
	input := []string{"SOL", "NA", "SOL", "CL"}
	groups := GroupBy(input, func(s string) string { return s })

	if len(groups["SOL"]) != 2 {
		t.Errorf("GroupBy()[SOL] has %d entries, want 2", len(groups["SOL"]))
	}

	if len(groups["NA"]) != 1 {
		t.Errorf("GroupBy()[NA] has %d entries, want 1", len(groups["NA"]))
	}
}

func TestClone(t *testing.T) {
	input := []string{"a", "b"}
	clone := Clone(input)

	clone[0] = "changed"

	if input[0] != "a" {
		t.Error("Clone() should create an independent copy")
	}

	if Clone[string](nil) != nil {
		t.Error("Clone(nil) should return nil")
	}
}

func TestEqual(t *testing.T) {
	if !Equal([]int{1, 2}, []int{1, 2}) {
		t.Error("Equal() = false for equal slices")
	}

	if Equal([]int{1, 2}, []int{2, 1}) {
		t.Error("Equal() = true for differently ordered slices")
	}

	if Equal([]int{1}, []int{1, 2}) {
		t.Error("Equal() = true for different lengths")
	}
}
