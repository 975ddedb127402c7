// Package slicex implements generic slice utilities for the gmxtop library.
//
// Package: slicex
// Title: Generic Slice Operations
// Description: This package provides the slice operations used across the
//              gmxtop library: filtering and mapping of node collections,
//              duplicate detection for moleculetype names, predicate search
//              for section lookup, and grouping of topology entries.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with slice utilities
package slicex
