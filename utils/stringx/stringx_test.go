// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for string utilities including interning, whitespace
//              classification, padding, and case-insensitive comparison.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation

package stringx

import (
	"reflect"
	"testing"

	gterror "github.com/msto63/gmxtop/core/error"
)

func TestIntern(t *testing.T) {
	a := Intern("bonds")
	b := Intern("bonds")

	if a != b {
		t.Error("Intern() should return equal strings")
	}

	if Intern("") != "" {
		t.Error("Intern(\"\") should return empty string")
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{" ", false},
		{"atoms", false},
	}

	for _, tt := range tests {
		if got := IsEmpty(tt.input); got != tt.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{" ", true},
		{"\t\n  ", true},
		{"atoms", false},
		{"  x  ", false},
		{" ", true}, // Non-breaking space is whitespace
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"short string unchanged", "abc", 10, "...", "abc"},
		{"exact length unchanged", "abcde", 5, "...", "abcde"},
		{"truncated with ellipsis", "abcdefghij", 6, "...", "abc..."},
		{"zero length", "abc", 0, "...", ""},
		{"unicode safe", "äöüäöü", 4, "…", "äöü…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqualsIgnoreCase(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"atoms", "ATOMS", true},
		{"Moleculetype", "moleculetype", true},
		{"bonds", "angles", false},
		{"", "", true},
	}

	for _, tt := range tests {
		if got := EqualsIgnoreCase(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualsIgnoreCase(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		input string
		width int
		pad   rune
		want  string
	}{
		{"42", 5, ' ', "   42"},
		{"12345", 3, ' ', "12345"},
		{"", 3, '0', "000"},
		{"ab", 4, '-', "--ab"},
	}

	for _, tt := range tests {
		if got := PadLeft(tt.input, tt.width, tt.pad); got != tt.want {
			t.Errorf("PadLeft(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.pad, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		pad   rune
		want  string
	}{
		{"OW", 5, ' ', "OW   "},
		{"12345", 3, ' ', "12345"},
		{"", 2, 'x', "xx"},
	}

	for _, tt := range tests {
		if got := PadRight(tt.input, tt.width, tt.pad); got != tt.want {
			t.Errorf("PadRight(%q, %d, %q) = %q, want %q", tt.input, tt.width, tt.pad, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"unix endings", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows endings", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mac endings", "a\rb\rc", []string{"a", "b", "c"}},
		{"trailing newline", "a\n", []string{"a", ""}},
		{"empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "x", "y"); got != "x" {
		t.Errorf("FirstNonBlank() = %q, want x", got)
	}

	if got := FirstNonBlank("", "  "); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("name", "SOL"); err != nil {
		t.Errorf("ValidateRequired() error = %v, want nil", err)
	}

	err := ValidateRequired("name", "")
	if err == nil {
		t.Fatal("ValidateRequired() should fail for empty string")
	}

	if !gterror.HasCode(err, gterror.CodeRequiredField) {
		t.Errorf("error code = %v, want %v", gterror.GetCode(err), gterror.CodeRequiredField)
	}
}

func TestValidateNotBlank(t *testing.T) {
	if err := ValidateNotBlank("section", "atoms"); err != nil {
		t.Errorf("ValidateNotBlank() error = %v, want nil", err)
	}

	if err := ValidateNotBlank("section", "   "); err == nil {
		t.Error("ValidateNotBlank() should fail for blank string")
	}
}

func TestFromDefault(t *testing.T) {
	if got := FromDefault("", "fallback"); got != "fallback" {
		t.Errorf("FromDefault() = %q, want fallback", got)
	}

	if got := FromDefault("value", "fallback"); got != "value" {
		t.Errorf("FromDefault() = %q, want value", got)
	}

	if got := FromBlankDefault("  ", "fallback"); got != "fallback" {
		t.Errorf("FromBlankDefault() = %q, want fallback", got)
	}
}
