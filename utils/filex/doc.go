// Package filex implements file operation utilities for topology processing.
//
// Package: filex
// Title: Topology File Operations
// Description: This package provides the file and path utilities used
//              throughout the gmxtop library: existence checks, line-oriented
//              reading suited to force field files, canonical path handling
//              for include cycle detection, trailing-component path matching
//              for include exclusion lists, and discovery of shared GROMACS
//              data directories from the environment.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with topology file utilities
//
// # Trailing-Component Matching
//
// Include exclusion lists name files by their trailing path components.
// MatchTrailing implements this comparison:
//
//   filex.MatchTrailing("/usr/share/gromacs/top/amber99sb-ildn/forcefield.itp", "forcefield.itp")
//   // true
//
//   filex.MatchTrailing("/usr/share/gromacs/top/amber99sb-ildn/forcefield.itp", "amber99sb-ildn")
//   // false: a bare directory name does not match files inside it
//
//   filex.MatchTrailing("/usr/share/gromacs/top/amber99sb-ildn/forcefield.itp", "amber99sb-ildn/forcefield.itp")
//   // true
//
// # Shared Data Directories
//
// DataDirs inspects GMXDATA and GMXLIB to locate the GROMACS share/top
// directory holding force field files distributed with an installation.
package filex
