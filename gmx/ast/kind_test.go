// File: kind_test.go
// Title: Section Kind Unit Tests
// Description: Tests for the section kind enumeration covering name
//              resolution, case-insensitive matching, subsection
//              classification and canonical naming.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial test suite

package ast

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind SectionKind
		want string
	}{
		{KindDefaults, "defaults"},
		{KindAtomtypes, "atomtypes"},
		{KindNonbondedParams, "nonbonded_params"},
		{KindMoleculetype, "moleculetype"},
		{KindAtoms, "atoms"},
		{KindPairsNB, "pairs_nb"},
		{KindVirtualSitesN, "virtual_sitesn"},
		{KindPositionRestraints, "position_restraints"},
		{KindAngleRestraintsZ, "angle_restraints_z"},
		{KindSystem, "system"},
		{KindMolecules, "molecules"},
		{KindUnknown, "unknown"},
		{SectionKind(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("SectionKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindFromName(t *testing.T) {
	tests := []struct {
		name string
		want SectionKind
	}{
		{"atoms", KindAtoms},
		{"Atoms", KindAtoms},
		{"ATOMS", KindAtoms},
		{"  atoms  ", KindAtoms},
		{"moleculetype", KindMoleculetype},
		{"position_restraints", KindPositionRestraints},
		{"nonbonded_params", KindNonbondedParams},
		{"Defaults", KindDefaults},
		{"stub", KindUnknown},
		{"", KindUnknown},
		{"atom", KindUnknown},
	}

	for _, tt := range tests {
		if got := KindFromName(tt.name); got != tt.want {
			t.Errorf("KindFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKindSubsection(t *testing.T) {
	subsections := []SectionKind{
		KindAtoms, KindBonds, KindPairs, KindPairsNB, KindAngles,
		KindDihedrals, KindExclusions, KindConstraints, KindSettles,
		KindVirtualSites2, KindVirtualSites3, KindVirtualSites4,
		KindVirtualSitesN, KindPositionRestraints, KindDistanceRestraints,
		KindDihedralRestraints, KindOrientationRestraints,
		KindAngleRestraints, KindAngleRestraintsZ,
	}
	for _, kind := range subsections {
		if !kind.Subsection() {
			t.Errorf("%v.Subsection() = false, want true", kind)
		}
	}

	sections := []SectionKind{
		KindUnknown, KindDefaults, KindAtomtypes, KindBondtypes,
		KindMoleculetype, KindSystem, KindMolecules,
	}
	for _, kind := range sections {
		if kind.Subsection() {
			t.Errorf("%v.Subsection() = true, want false", kind)
		}
	}
}

func TestKindKnown(t *testing.T) {
	if KindUnknown.Known() {
		t.Error("KindUnknown.Known() = true, want false")
	}
	if !KindAtoms.Known() {
		t.Error("KindAtoms.Known() = false, want true")
	}
}

func TestAllKinds(t *testing.T) {
	kinds := AllKinds()

	if len(kinds) != len(kindNames) {
		t.Errorf("AllKinds() returned %d kinds, want %d", len(kinds), len(kindNames))
	}

	for _, kind := range kinds {
		if kind == KindUnknown {
			t.Error("AllKinds() should not contain KindUnknown")
		}
	}

	// Every kind round-trips through its canonical name.
	for _, kind := range kinds {
		if got := KindFromName(kind.String()); got != kind {
			t.Errorf("KindFromName(%q) = %v, want %v", kind.String(), got, kind)
		}
	}
}
