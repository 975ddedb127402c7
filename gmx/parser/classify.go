// File: classify.go
// Title: Topology Line Classification
// Description: Classifies raw topology lines into comments, blanks,
//              section headers, preprocessor directives and section
//              entries, and splits off inline comments. Also joins
//              physical lines continued with a trailing backslash into
//              one logical line before classification.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial line classification implementation

package parser

import (
	"strings"
)

// lineClass is the coarse category of a logical line.
type lineClass int

const (
	classBlank lineClass = iota
	classComment
	classSection
	classDirective
	classEntry
)

// classifyLine categorizes a logical line by its first non-blank rune.
// A '*' introduces full-line comments only; ';' also splits inline
// comments, which splitInline handles separately.
func classifyLine(line string) lineClass {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return classBlank
	case trimmed[0] == ';' || trimmed[0] == '*':
		return classComment
	case trimmed[0] == '[':
		return classSection
	case trimmed[0] == '#':
		return classDirective
	default:
		return classEntry
	}
}

// splitInline separates the code part of a line from its trailing
// inline comment at the first semicolon. The code part keeps its
// original spacing; the comment text is returned without the ';'.
func splitInline(line string) (code, comment string, hasComment bool) {
	idx := strings.IndexByte(line, ';')
	if idx < 0 {
		return line, "", false
	}
	return line[:idx], strings.TrimSpace(line[idx+1:]), true
}

// sectionName extracts the name from a '[ name ]' header line. The
// returned ok is false when the brackets are malformed or empty.
func sectionName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || trimmed[0] != '[' {
		return "", false
	}
	end := strings.IndexByte(trimmed, ']')
	if end < 0 || strings.TrimSpace(trimmed[end+1:]) != "" {
		return "", false
	}
	name := strings.TrimSpace(trimmed[1:end])
	if name == "" || strings.ContainsAny(name, "[] \t") {
		return "", false
	}
	return name, true
}

// splitDirective splits a '#directive args...' line into the directive
// keyword (with the leading '#') and its whitespace-separated arguments.
func splitDirective(line string) (keyword string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// joinContinuations joins physical lines ending in a backslash into one
// logical line starting at index start. It returns the logical line,
// the verbatim physical text (lines joined with newlines) and the
// number of physical lines consumed.
func joinContinuations(lines []string, start int) (logical, physical string, consumed int) {
	logical = lines[start]
	physical = lines[start]
	consumed = 1
	for {
		trimmed := strings.TrimRight(logical, " \t")
		if !strings.HasSuffix(trimmed, `\`) || start+consumed >= len(lines) {
			return logical, physical, consumed
		}
		next := lines[start+consumed]
		physical += "\n" + next
		logical = strings.TrimSuffix(trimmed, `\`) + " " + next
		consumed++
	}
}

// unquoteIncludePath strips the quoting around an #include target.
// Both "path" and <path> forms are accepted.
func unquoteIncludePath(arg string) string {
	if len(arg) >= 2 {
		first, last := arg[0], arg[len(arg)-1]
		if (first == '"' && last == '"') || (first == '<' && last == '>') {
			return arg[1 : len(arg)-1]
		}
	}
	return arg
}
