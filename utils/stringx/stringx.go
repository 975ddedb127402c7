// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements string operations that extend the Go standard
//              library for topology text processing. Covers interning of
//              frequently repeated tokens such as section names, whitespace
//              classification, column padding for fixed-width rendering,
//              and case-insensitive comparison.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	gterror "github.com/msto63/gmxtop/core/error"
)

// String interning for commonly used strings to reduce memory allocations
var (
	internCache = make(map[string]string)
	internMu    sync.RWMutex
)

// Intern returns the canonical representation of a string to reduce memory
// usage. Section names and atom types repeat across thousands of entries,
// which makes them good interning candidates.
func Intern(s string) string {
	if s == "" {
		return ""
	}

	internMu.RLock()
	if interned, exists := internCache[s]; exists {
		internMu.RUnlock()
		return interned
	}
	internMu.RUnlock()

	internMu.Lock()
	// Double-check after acquiring write lock
	if interned, exists := internCache[s]; exists {
		internMu.Unlock()
		return interned
	}

	// Limit cache size to prevent memory leaks
	if len(internCache) >= 1000 {
		for k := range internCache {
			delete(internCache, k)
			if len(internCache) <= 500 {
				break
			}
		}
	}

	// Create a copy to ensure we own the memory
	interned := string([]byte(s))
	internCache[s] = interned
	internMu.Unlock()

	return interned
}

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string is not empty and contains
// non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to the specified length, adding an ellipsis if
// truncated. This function is Unicode-aware and will not break multi-byte
// characters. If the string is shorter than maxLen, it returns the original
// string.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// EqualsIgnoreCase returns true if the two strings are equal under Unicode
// case folding. Section names compare this way.
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ContainsIgnoreCase returns true if substr is within s, ignoring case.
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}

// isASCIIRune checks if a rune is ASCII
func isASCIIRune(r rune) bool {
	return r < 128
}

// PadLeft pads the string s to the specified width with the given pad
// character. If the string is already longer than width, it returns the
// original string. Used for right-aligned numeric columns.
func PadLeft(s string, width int, pad rune) string {
	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		padCount := width - len(s)

		for i := 0; i < padCount; i++ {
			result[i] = byte(pad)
		}
		copy(result[padCount:], s)

		return string(result)
	}

	// Unicode fallback path
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(width * 4)

	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)

	return builder.String()
}

// PadRight pads the string s to the specified width with the given pad
// character. If the string is already longer than width, it returns the
// original string. Used for left-aligned name columns.
func PadRight(s string, width int, pad rune) string {
	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		copy(result, s)
		for i := len(s); i < width; i++ {
			result[i] = byte(pad)
		}

		return string(result)
	}

	// Unicode fallback path
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(width * 4)

	builder.WriteString(s)
	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}

	return builder.String()
}

// SplitLines splits a string into lines, handling different line ending
// conventions. It properly handles \n, \r\n, and \r line endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Split(s, "\n")
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
func FirstNonEmpty(strings ...string) string {
	for _, s := range strings {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(strings ...string) string {
	for _, s := range strings {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// ===============================
// Validation Helpers
// ===============================

// ValidateRequired validates that a string is not empty
func ValidateRequired(name, s string) error {
	if IsEmpty(s) {
		return gterror.New(name + " must not be empty").
			WithCode(gterror.CodeRequiredField).
			WithDetail("value", s)
	}
	return nil
}

// ValidateNotBlank validates that a string contains non-whitespace content
func ValidateNotBlank(name, s string) error {
	if IsBlank(s) {
		return gterror.New(name + " must not be blank").
			WithCode(gterror.CodeRequiredField).
			WithDetail("value", s)
	}
	return nil
}

// FromDefault returns the string if not empty, otherwise the default value
func FromDefault(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// FromBlankDefault returns the string if not blank, otherwise the default value
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}
