// File: nodes_test.go
// Title: Structural Node Unit Tests
// Description: Tests for the structural node types covering canonical
//              rendering, verbatim raw-line retention, inline comment
//              handling and node validation.
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

func TestCommentString(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		want    string
	}{
		{
			name:    "semicolon comment",
			comment: &Comment{Char: ";", Text: "force field parameters"},
			want:    "; force field parameters",
		},
		{
			name:    "asterisk comment",
			comment: &Comment{Char: "*", Text: "generated header"},
			want:    "* generated header",
		},
		{
			name:    "default introducer",
			comment: &Comment{Text: "water model"},
			want:    "; water model",
		},
		{
			name:    "empty text",
			comment: &Comment{Char: ";"},
			want:    ";",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.comment.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawRetention(t *testing.T) {
	// Nodes parsed from text must reproduce the source line exactly,
	// whatever their canonical format would be.
	c := &Comment{Char: ";", Text: "odd   spacing"}
	c.SetRaw(";odd   spacing")

	if got := c.String(); got != ";odd   spacing" {
		t.Errorf("String() = %q, want raw line back", got)
	}

	c.ClearRaw()
	if got := c.String(); got != "; odd   spacing" {
		t.Errorf("String() after ClearRaw() = %q, want canonical form", got)
	}
}

func TestBlankString(t *testing.T) {
	b := &Blank{}
	if got := b.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}

	b.SetRaw("   ")
	if got := b.String(); got != "   " {
		t.Errorf("String() = %q, want whitespace preserved", got)
	}
}

func TestIncludeString(t *testing.T) {
	inc := &Include{Path: "tip3p.itp"}
	if got := inc.String(); got != `#include "tip3p.itp"` {
		t.Errorf("String() = %q, want %q", got, `#include "tip3p.itp"`)
	}

	inc.Inline = "water model"
	if got := inc.String(); got != `#include "tip3p.itp" ; water model` {
		t.Errorf("String() with inline comment = %q", got)
	}

	inc.SetRaw(`#include  "tip3p.itp"`)
	if got := inc.String(); got != `#include  "tip3p.itp"` {
		t.Errorf("String() = %q, want raw line back", got)
	}
}

func TestIncludeValidate(t *testing.T) {
	if err := (&Include{Path: "ions.itp"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (&Include{}).Validate(); err == nil {
		t.Error("Validate() with empty path should fail")
	}
}

func TestCondKindString(t *testing.T) {
	tests := []struct {
		kind      CondKind
		want      string
		directive string
	}{
		{CondIfdef, "ifdef", "#ifdef"},
		{CondIfndef, "ifndef", "#ifndef"},
		{CondElse, "else", "#else"},
		{CondEndif, "endif", "#endif"},
		{CondKind(42), "unknown", "#unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("CondKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
		if got := tt.kind.Directive(); got != tt.directive {
			t.Errorf("CondKind(%d).Directive() = %q, want %q", tt.kind, got, tt.directive)
		}
	}
}

func TestConditionalString(t *testing.T) {
	tests := []struct {
		name string
		cond *Conditional
		want string
	}{
		{
			name: "ifdef",
			cond: &Conditional{Kind: CondIfdef, Symbol: "POSRES"},
			want: "#ifdef POSRES",
		},
		{
			name: "ifndef",
			cond: &Conditional{Kind: CondIfndef, Symbol: "FLEXIBLE"},
			want: "#ifndef FLEXIBLE",
		},
		{
			name: "else",
			cond: &Conditional{Kind: CondElse},
			want: "#else",
		},
		{
			name: "endif",
			cond: &Conditional{Kind: CondEndif},
			want: "#endif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConditionalValidate(t *testing.T) {
	if err := (&Conditional{Kind: CondIfdef, Symbol: "POSRES"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (&Conditional{Kind: CondIfdef}).Validate(); err == nil {
		t.Error("Validate() for ifdef without symbol should fail")
	}
	if err := (&Conditional{Kind: CondEndif}).Validate(); err != nil {
		t.Errorf("Validate() for endif = %v, want nil", err)
	}
}

func TestDefineString(t *testing.T) {
	bare := &Define{Name: "POSRES"}
	if got := bare.String(); got != "#define POSRES" {
		t.Errorf("String() = %q, want %q", got, "#define POSRES")
	}

	valued := &Define{Name: "FLEX_SPC", Value: "1000 1000"}
	if got := valued.String(); got != "#define FLEX_SPC 1000 1000" {
		t.Errorf("String() = %q, want %q", got, "#define FLEX_SPC 1000 1000")
	}
}

func TestDefineValidate(t *testing.T) {
	if err := (&Define{Name: "POSRES"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (&Define{}).Validate(); err == nil {
		t.Error("Validate() with empty name should fail")
	}
	if err := (&Define{Name: "BAD NAME"}).Validate(); err == nil {
		t.Error("Validate() with whitespace in name should fail")
	}
}

func TestUndefString(t *testing.T) {
	u := &Undef{Name: "POSRES"}
	if got := u.String(); got != "#undef POSRES" {
		t.Errorf("String() = %q, want %q", got, "#undef POSRES")
	}
	if err := (&Undef{}).Validate(); err == nil {
		t.Error("Validate() with empty name should fail")
	}
}

func TestSectionHeaderString(t *testing.T) {
	h := NewSectionHeader("atoms")
	if h.Kind != KindAtoms {
		t.Errorf("Kind = %v, want KindAtoms", h.Kind)
	}
	if got := h.String(); got != "[ atoms ]" {
		t.Errorf("String() = %q, want %q", got, "[ atoms ]")
	}

	// Source spelling survives in canonical rendering and the raw line
	// wins when present.
	h = NewSectionHeader("Atoms")
	if h.Kind != KindAtoms {
		t.Errorf("Kind = %v, want KindAtoms for mixed case", h.Kind)
	}
	if got := h.String(); got != "[ Atoms ]" {
		t.Errorf("String() = %q, want %q", got, "[ Atoms ]")
	}
	h.SetRaw("[atoms]")
	if got := h.String(); got != "[atoms]" {
		t.Errorf("String() = %q, want raw line back", got)
	}
}

func TestSectionHeaderUnknown(t *testing.T) {
	h := NewSectionHeader("stub")
	if h.Kind != KindUnknown {
		t.Errorf("Kind = %v, want KindUnknown", h.Kind)
	}
	if got := h.String(); got != "[ stub ]" {
		t.Errorf("String() = %q, want %q", got, "[ stub ]")
	}
	if h.Subsection() {
		t.Error("Subsection() = true for unknown section, want false")
	}
}

func TestSectionHeaderValidate(t *testing.T) {
	if err := NewSectionHeader("bonds").Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if err := (&SectionHeader{}).Validate(); err == nil {
		t.Error("Validate() without name or kind should fail")
	}
	// A kind without a stored name still renders canonically.
	h := &SectionHeader{Kind: KindBonds}
	if err := h.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for known kind", err)
	}
	if got := h.String(); got != "[ bonds ]" {
		t.Errorf("String() = %q, want %q", got, "[ bonds ]")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Source: "topol.top", Line: 42}
	if got := p.String(); got != "topol.top:42" {
		t.Errorf("String() = %q, want %q", got, "topol.top:42")
	}

	p = Position{Line: 7}
	if got := p.String(); got != "line 7" {
		t.Errorf("String() = %q, want %q", got, "line 7")
	}
}
