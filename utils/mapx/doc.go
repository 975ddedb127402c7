// Package mapx implements generic map utilities for the gmxtop library.
//
// Package: mapx
// Title: Generic Map Operations
// Description: This package provides the map operations used across the
//              gmxtop library: cloning and merging of preprocessor
//              definition maps, deterministic sorted key listings, and
//              existence checks with defaults.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with map utilities
package mapx
