// File: filex.go
// Title: Topology File Utilities
// Description: Implements file operation utilities for topology processing
//              including existence checks, line-oriented reading, canonical
//              path handling for include cycle detection, trailing-component
//              path matching for include exclusion, and discovery of shared
//              GROMACS data directories.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with topology file utilities

package filex

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsReadable checks if the file can be opened for reading
func IsReadable(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()
	return true
}

// Size returns the size of a file in bytes
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to get size of %s: %w", path, err)
	}
	return info.Size(), nil
}

// IsEmpty checks if a file is empty (0 bytes)
func IsEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	return info.Size() == 0, nil
}

// ===============================
// File Reading Operations
// ===============================

// ReadFile reads the entire file and returns its contents
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadLines reads the file and returns its contents as a slice of lines
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	// Force field files can carry long parameter lines
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lines from %s: %w", path, err)
	}

	return lines, nil
}

// LineCount counts the number of lines in a text file
func LineCount(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		count++
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("error counting lines in %s: %w", path, err)
	}

	return count, nil
}

// ===============================
// File Writing Operations
// ===============================

// WriteFile writes data to a file, creating it if necessary
func WriteFile(path string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(path, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// WriteString writes a string to a file
func WriteString(path, content string, perm os.FileMode) error {
	return WriteFile(path, []byte(content), perm)
}

// ===============================
// Path Manipulation
// ===============================

// AbsPath returns the absolute path of a file
func AbsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", path, err)
	}
	return absPath, nil
}

// Canonical returns the cleaned absolute form of a path. Symlinks are
// resolved when possible so that the same file always maps to the same
// string, which is what include cycle detection relies on.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize %s: %w", path, err)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}

	return filepath.Clean(abs), nil
}

// Dir returns the directory containing the file
func Dir(path string) string {
	return filepath.Dir(path)
}

// Base returns the last element of the path
func Base(path string) string {
	return filepath.Base(path)
}

// Ext returns the file extension
func Ext(path string) string {
	return filepath.Ext(path)
}

// Join joins path elements with the appropriate separator
func Join(elements ...string) string {
	return filepath.Join(elements...)
}

// Clean cleans the path, removing redundant separators and up-level references
func Clean(path string) string {
	return filepath.Clean(path)
}

// Components splits a path into its individual components
func Components(path string) []string {
	cleaned := filepath.Clean(path)
	if cleaned == "." || cleaned == "" {
		return nil
	}

	parts := strings.Split(cleaned, string(filepath.Separator))
	components := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			components = append(components, part)
		}
	}
	return components
}

// ===============================
// Trailing-Component Matching
// ===============================

// MatchTrailing reports whether the trailing components of path equal the
// components of pattern. A pattern "forcefield.itp" matches
// "amber99sb-ildn/forcefield.itp" but the pattern "amber99sb-ildn" does not
// match files inside that directory.
func MatchTrailing(path, pattern string) bool {
	pathParts := Components(path)
	patternParts := Components(pattern)

	if len(patternParts) == 0 || len(patternParts) > len(pathParts) {
		return false
	}

	offset := len(pathParts) - len(patternParts)
	for i, part := range patternParts {
		if pathParts[offset+i] != part {
			return false
		}
	}

	return true
}

// MatchAnyTrailing reports whether path matches any of the given patterns
// by trailing components
func MatchAnyTrailing(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchTrailing(path, pattern) {
			return true
		}
	}
	return false
}

// ===============================
// Shared Data Directory Discovery
// ===============================

// DataDirs returns candidate directories holding shared GROMACS topology
// files. The GMXDATA and GMXLIB environment variables are consulted, with
// the conventional share/gromacs/top layout appended for installation
// prefixes. Only directories that actually exist are returned.
func DataDirs() []string {
	var dirs []string

	appendIfDir := func(path string) {
		if path != "" && IsDir(path) {
			dirs = append(dirs, path)
		}
	}

	if gmxData := os.Getenv("GMXDATA"); gmxData != "" {
		appendIfDir(filepath.Join(gmxData, "top"))
		appendIfDir(filepath.Join(gmxData, "share", "gromacs", "top"))
		appendIfDir(gmxData)
	}

	if gmxLib := os.Getenv("GMXLIB"); gmxLib != "" {
		for _, entry := range filepath.SplitList(gmxLib) {
			appendIfDir(entry)
		}
	}

	return dirs
}
