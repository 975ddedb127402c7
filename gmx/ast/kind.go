// File: kind.go
// Title: Section Kind Enumeration
// Description: Defines the fixed enumeration of known topology section
//              names together with name resolution and classification
//              helpers. Section names outside the enumeration classify
//              as KindUnknown and keep their body lines verbatim.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial section kind enumeration

package ast

import (
	"strings"
)

// SectionKind identifies a known section of the topology format. The zero
// value is KindUnknown, assigned to section names outside the fixed set.
type SectionKind int

const (
	KindUnknown SectionKind = iota

	// Parameter-level sections
	KindDefaults
	KindAtomtypes
	KindBondtypes
	KindPairtypes
	KindAngletypes
	KindDihedraltypes
	KindConstrainttypes
	KindNonbondedParams

	// Molecule-level sections
	KindMoleculetype
	KindAtoms
	KindBonds
	KindPairs
	KindPairsNB
	KindAngles
	KindDihedrals
	KindExclusions
	KindConstraints
	KindSettles
	KindVirtualSites2
	KindVirtualSites3
	KindVirtualSites4
	KindVirtualSitesN
	KindPositionRestraints
	KindDistanceRestraints
	KindDihedralRestraints
	KindOrientationRestraints
	KindAngleRestraints
	KindAngleRestraintsZ

	// System-level sections
	KindSystem
	KindMolecules
)

// kindNames maps each kind to its canonical section name as written
// between brackets in topology files.
var kindNames = map[SectionKind]string{
	KindDefaults:              "defaults",
	KindAtomtypes:             "atomtypes",
	KindBondtypes:             "bondtypes",
	KindPairtypes:             "pairtypes",
	KindAngletypes:            "angletypes",
	KindDihedraltypes:         "dihedraltypes",
	KindConstrainttypes:       "constrainttypes",
	KindNonbondedParams:       "nonbonded_params",
	KindMoleculetype:          "moleculetype",
	KindAtoms:                 "atoms",
	KindBonds:                 "bonds",
	KindPairs:                 "pairs",
	KindPairsNB:               "pairs_nb",
	KindAngles:                "angles",
	KindDihedrals:             "dihedrals",
	KindExclusions:            "exclusions",
	KindConstraints:           "constraints",
	KindSettles:               "settles",
	KindVirtualSites2:         "virtual_sites2",
	KindVirtualSites3:         "virtual_sites3",
	KindVirtualSites4:         "virtual_sites4",
	KindVirtualSitesN:         "virtual_sitesn",
	KindPositionRestraints:    "position_restraints",
	KindDistanceRestraints:    "distance_restraints",
	KindDihedralRestraints:    "dihedral_restraints",
	KindOrientationRestraints: "orientation_restraints",
	KindAngleRestraints:       "angle_restraints",
	KindAngleRestraintsZ:      "angle_restraints_z",
	KindSystem:                "system",
	KindMolecules:             "molecules",
}

// nameKinds is the reverse lookup, keyed by lower-cased section name.
var nameKinds = func() map[string]SectionKind {
	m := make(map[string]SectionKind, len(kindNames))
	for kind, name := range kindNames {
		m[name] = kind
	}
	return m
}()

// String returns the canonical section name for the kind, or "unknown"
// for KindUnknown and values outside the enumeration.
func (k SectionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Known returns true for every kind except KindUnknown.
func (k SectionKind) Known() bool {
	return k != KindUnknown
}

// Subsection returns true for section kinds that appear inside a
// moleculetype block and scope their atom indices to it.
func (k SectionKind) Subsection() bool {
	switch k {
	case KindAtoms, KindBonds, KindPairs, KindPairsNB, KindAngles,
		KindDihedrals, KindExclusions, KindConstraints, KindSettles,
		KindVirtualSites2, KindVirtualSites3, KindVirtualSites4,
		KindVirtualSitesN, KindPositionRestraints, KindDistanceRestraints,
		KindDihedralRestraints, KindOrientationRestraints,
		KindAngleRestraints, KindAngleRestraintsZ:
		return true
	default:
		return false
	}
}

// KindFromName resolves a section name to its kind. Matching is
// case-insensitive; unrecognized names resolve to KindUnknown.
func KindFromName(name string) SectionKind {
	if kind, ok := nameKinds[strings.ToLower(strings.TrimSpace(name))]; ok {
		return kind
	}
	return KindUnknown
}

// AllKinds returns every known section kind in declaration order,
// excluding KindUnknown.
func AllKinds() []SectionKind {
	kinds := make([]SectionKind, 0, len(kindNames))
	for k := KindDefaults; k <= KindMolecules; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
