// File: nodes.go
// Title: Topology AST Node Definitions
// Description: Defines the NodeValue interface and the structural node
//              types of a topology document: comments, blank lines,
//              include and define directives, conditional markers and
//              section headers. Each node retains its verbatim source
//              line for byte-exact re-rendering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial node definitions

package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/gmxtop/utils/stringx"
)

// Position locates a node in its source.
type Position struct {
	Source string // source name, usually a file path
	Line   int    // line number (1-based), 0 for programmatic nodes
}

// String returns the position in "source:line" form.
func (p Position) String() string {
	if p.Source == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}

// NodeValue represents the base interface for all topology nodes
type NodeValue interface {
	// String returns the node content formatted for a topology file
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error

	// Raw returns the verbatim source line, empty for programmatic nodes;
	// SetRaw and ClearRaw manage it. SetInline attaches an inline comment
	// and SetPosition records the source location. Parsers call the
	// setters once per node; editors call ClearRaw after changing fields.
	Raw() string
	SetRaw(line string)
	ClearRaw()
	SetInline(comment string)
	SetPosition(pos Position)
}

// base carries what every node shares: the verbatim source line for
// round-trip rendering, an attached inline comment and the source
// position. Types embed it and consult raw in their String methods.
type base struct {
	raw    string
	Inline string   // inline comment text, without the leading ';'
	Pos    Position // source location
}

// Raw returns the verbatim source line the node was parsed from. It is
// empty for programmatically constructed nodes.
func (b *base) Raw() string {
	return b.raw
}

// SetRaw records the verbatim source line used for rendering. Parsers
// call this once per node.
func (b *base) SetRaw(line string) {
	b.raw = line
}

// ClearRaw drops the verbatim source line. Callers that edit node fields
// call this so the next render is rebuilt from the fields.
func (b *base) ClearRaw() {
	b.raw = ""
}

// SetInline attaches an inline comment, without the leading ';'.
func (b *base) SetInline(comment string) {
	b.Inline = comment
}

// SetPosition records the source location of the node.
func (b *base) SetPosition(pos Position) {
	b.Pos = pos
}

// Position returns the source position of the node.
func (b *base) Position() Position {
	return b.Pos
}

// finish appends the inline comment and trims trailing column padding.
func (b *base) finish(s string) string {
	if b.Inline != "" {
		s += " ; " + b.Inline
	}
	return strings.TrimRight(s, " ")
}

// Comment is a standalone full-line comment.
type Comment struct {
	base
	Char string // comment introducer, ";" or "*"
	Text string
}

func (c *Comment) String() string {
	if c.raw != "" {
		return c.raw
	}
	char := c.Char
	if char == "" {
		char = ";"
	}
	if c.Text == "" {
		return char
	}
	return fmt.Sprintf("%s %s", char, c.Text)
}

func (c *Comment) Accept(visitor Visitor) interface{} {
	return visitor.VisitComment(c)
}

func (c *Comment) Validate() error {
	if c.Char != "" && c.Char != ";" && c.Char != "*" {
		return fmt.Errorf("comment introducer must be \";\" or \"*\", got %q", c.Char)
	}
	return nil
}

// Blank is an empty or whitespace-only line, preserved for round-trips.
type Blank struct {
	base
}

func (b *Blank) String() string {
	return b.raw
}

func (b *Blank) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlank(b)
}

func (b *Blank) Validate() error {
	return nil
}

// Include is an unresolved #include directive. Resolved is set only on
// nodes the include resolver has replaced by their target's content;
// nodes remaining in a document always carry Resolved=false.
type Include struct {
	base
	Path     string // referenced path without surrounding quotes
	Resolved bool
}

func (i *Include) String() string {
	if i.raw != "" {
		return i.raw
	}
	return i.finish(fmt.Sprintf("#include %q", i.Path))
}

func (i *Include) Accept(visitor Visitor) interface{} {
	return visitor.VisitInclude(i)
}

func (i *Include) Validate() error {
	if stringx.IsBlank(i.Path) {
		return fmt.Errorf("include path is required")
	}
	return nil
}

// CondKind identifies a conditional preprocessor directive.
type CondKind int

const (
	CondIfdef CondKind = iota
	CondIfndef
	CondElse
	CondEndif
)

// String returns the directive name without the leading '#'.
func (k CondKind) String() string {
	switch k {
	case CondIfdef:
		return "ifdef"
	case CondIfndef:
		return "ifndef"
	case CondElse:
		return "else"
	case CondEndif:
		return "endif"
	default:
		return "unknown"
	}
}

// Directive returns the directive as written in topology files.
func (k CondKind) Directive() string {
	return "#" + k.String()
}

// Conditional is a retained conditional directive. Documents parsed with
// conditional resolution enabled contain no Conditional nodes; the
// selected branch content survives and the markers are dropped.
type Conditional struct {
	base
	Kind   CondKind
	Symbol string // condition symbol, empty for else and endif
}

func (c *Conditional) String() string {
	if c.raw != "" {
		return c.raw
	}
	switch c.Kind {
	case CondIfdef, CondIfndef:
		return c.finish(fmt.Sprintf("%s %s", c.Kind.Directive(), c.Symbol))
	default:
		return c.finish(c.Kind.Directive())
	}
}

func (c *Conditional) Accept(visitor Visitor) interface{} {
	return visitor.VisitConditional(c)
}

func (c *Conditional) Validate() error {
	switch c.Kind {
	case CondIfdef, CondIfndef:
		if stringx.IsBlank(c.Symbol) {
			return fmt.Errorf("%s requires a symbol", c.Kind.Directive())
		}
	case CondElse, CondEndif:
		// No symbol expected; tolerate one for round-trip safety.
	default:
		return fmt.Errorf("unknown conditional kind %d", c.Kind)
	}
	return nil
}

// Define is a #define directive. A bare define carries an empty Value
// and marks the symbol as set; a valued define carries replacement text.
type Define struct {
	base
	Name  string
	Value string
}

func (d *Define) String() string {
	if d.raw != "" {
		return d.raw
	}
	if d.Value == "" {
		return d.finish(fmt.Sprintf("#define %s", d.Name))
	}
	return d.finish(fmt.Sprintf("#define %s %s", d.Name, d.Value))
}

func (d *Define) Accept(visitor Visitor) interface{} {
	return visitor.VisitDefine(d)
}

func (d *Define) Validate() error {
	if stringx.IsBlank(d.Name) {
		return fmt.Errorf("define name is required")
	}
	if strings.ContainsAny(d.Name, " \t") {
		return fmt.Errorf("define name must not contain whitespace, got %q", d.Name)
	}
	return nil
}

// Undef is a #undef directive removing a symbol from the define set.
type Undef struct {
	base
	Name string
}

func (u *Undef) String() string {
	if u.raw != "" {
		return u.raw
	}
	return u.finish(fmt.Sprintf("#undef %s", u.Name))
}

func (u *Undef) Accept(visitor Visitor) interface{} {
	return visitor.VisitUndef(u)
}

func (u *Undef) Validate() error {
	if stringx.IsBlank(u.Name) {
		return fmt.Errorf("undef name is required")
	}
	return nil
}

// SectionHeader is a bracketed "[ name ]" line opening a section. Name
// keeps the spelling found in the source; Kind is the resolved member of
// the fixed enumeration, KindUnknown for unregistered names.
type SectionHeader struct {
	base
	Name string
	Kind SectionKind
}

// NewSectionHeader builds a header for name with the kind resolved
// case-insensitively against the known section set.
func NewSectionHeader(name string) *SectionHeader {
	return &SectionHeader{
		Name: name,
		Kind: KindFromName(name),
	}
}

func (h *SectionHeader) String() string {
	if h.raw != "" {
		return h.raw
	}
	name := h.Name
	if name == "" {
		name = h.Kind.String()
	}
	return h.finish(fmt.Sprintf("[ %s ]", name))
}

func (h *SectionHeader) Accept(visitor Visitor) interface{} {
	return visitor.VisitSectionHeader(h)
}

func (h *SectionHeader) Validate() error {
	if stringx.IsBlank(h.Name) && !h.Kind.Known() {
		return fmt.Errorf("section header requires a name")
	}
	return nil
}

// Subsection reports whether the header opens a moleculetype subsection.
func (h *SectionHeader) Subsection() bool {
	return h.Kind.Subsection()
}
