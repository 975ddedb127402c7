// Package stringx implements string utilities for topology text processing.
//
// Package: stringx
// Title: Extended String Operations
// Description: This package extends the Go standard library with the string
//              operations the gmxtop library needs: interning of repeated
//              tokens, whitespace classification for blank-line detection,
//              Unicode-safe truncation, column padding for fixed-width entry
//              rendering, and case-insensitive comparison for section names.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with core utilities
//
// Usage:
//   import "github.com/msto63/gmxtop/utils/stringx"
//
//   stringx.IsBlank("   ")                        // true
//   stringx.EqualsIgnoreCase("Atoms", "atoms")    // true
//   stringx.PadLeft("42", 7, ' ')                 // "     42"
//   stringx.Intern("bonds")                       // canonical instance
package stringx
