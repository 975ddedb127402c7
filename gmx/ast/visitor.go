// File: visitor.go
// Title: Topology AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing topology
//              node values. Provides the base visitor with no-op
//              defaults plus collector and validation visitors for
//              analysis passes over node sequences.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
)

// Visitor interface for traversing topology nodes using the visitor
// pattern. Section records of every kind dispatch through VisitEntry.
type Visitor interface {
	VisitComment(c *Comment) interface{}
	VisitBlank(b *Blank) interface{}
	VisitInclude(i *Include) interface{}
	VisitConditional(c *Conditional) interface{}
	VisitDefine(d *Define) interface{}
	VisitUndef(u *Undef) interface{}
	VisitSectionHeader(h *SectionHeader) interface{}
	VisitEntry(e Entry) interface{}
}

// BaseVisitor provides no-op implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitComment(c *Comment) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitBlank(b *Blank) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitInclude(i *Include) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitConditional(c *Conditional) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitDefine(d *Define) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitUndef(u *Undef) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitSectionHeader(h *SectionHeader) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitEntry(e Entry) interface{} {
	return nil
}

// CollectorVisitor gathers nodes by family while traversing a sequence.
type CollectorVisitor struct {
	BaseVisitor
	Comments     []*Comment
	Includes     []*Include
	Conditionals []*Conditional
	Defines      []*Define
	Undefs       []*Undef
	Headers      []*SectionHeader
	Entries      []Entry
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Comments = cv.Comments[:0]
	cv.Includes = cv.Includes[:0]
	cv.Conditionals = cv.Conditionals[:0]
	cv.Defines = cv.Defines[:0]
	cv.Undefs = cv.Undefs[:0]
	cv.Headers = cv.Headers[:0]
	cv.Entries = cv.Entries[:0]
}

// EntriesOf returns the collected entries belonging to one section kind.
func (cv *CollectorVisitor) EntriesOf(kind SectionKind) []Entry {
	var entries []Entry
	for _, e := range cv.Entries {
		if e.Kind() == kind {
			entries = append(entries, e)
		}
	}
	return entries
}

func (cv *CollectorVisitor) VisitComment(c *Comment) interface{} {
	cv.Comments = append(cv.Comments, c)
	return nil
}

func (cv *CollectorVisitor) VisitInclude(i *Include) interface{} {
	cv.Includes = append(cv.Includes, i)
	return nil
}

func (cv *CollectorVisitor) VisitConditional(c *Conditional) interface{} {
	cv.Conditionals = append(cv.Conditionals, c)
	return nil
}

func (cv *CollectorVisitor) VisitDefine(d *Define) interface{} {
	cv.Defines = append(cv.Defines, d)
	return nil
}

func (cv *CollectorVisitor) VisitUndef(u *Undef) interface{} {
	cv.Undefs = append(cv.Undefs, u)
	return nil
}

func (cv *CollectorVisitor) VisitSectionHeader(h *SectionHeader) interface{} {
	cv.Headers = append(cv.Headers, h)
	return nil
}

func (cv *CollectorVisitor) VisitEntry(e Entry) interface{} {
	cv.Entries = append(cv.Entries, e)
	return nil
}

// ValidationVisitor validates visited nodes and collects failures with
// their source positions.
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) check(n NodeValue) interface{} {
	if err := n.Validate(); err != nil {
		if line := n.Position().Line; line > 0 {
			err = fmt.Errorf("line %d: %w", line, err)
		}
		vv.errors = append(vv.errors, err)
	}
	return nil
}

func (vv *ValidationVisitor) VisitComment(c *Comment) interface{} {
	return vv.check(c)
}

func (vv *ValidationVisitor) VisitInclude(i *Include) interface{} {
	return vv.check(i)
}

func (vv *ValidationVisitor) VisitConditional(c *Conditional) interface{} {
	return vv.check(c)
}

func (vv *ValidationVisitor) VisitDefine(d *Define) interface{} {
	return vv.check(d)
}

func (vv *ValidationVisitor) VisitUndef(u *Undef) interface{} {
	return vv.check(u)
}

func (vv *ValidationVisitor) VisitSectionHeader(h *SectionHeader) interface{} {
	return vv.check(h)
}

func (vv *ValidationVisitor) VisitEntry(e Entry) interface{} {
	return vv.check(e)
}

// Utility functions for working with visitors

// CollectValues collects the given node values by family.
func CollectValues(values ...NodeValue) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	for _, v := range values {
		v.Accept(visitor)
	}
	return visitor
}

// ValidateValues validates the given node values and returns all
// failures in visit order.
func ValidateValues(values ...NodeValue) []error {
	visitor := NewValidationVisitor()
	for _, v := range values {
		v.Accept(visitor)
	}
	return visitor.Errors()
}
