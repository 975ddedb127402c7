// File: query.go
// Title: Topology Search and Structural Helpers
// Description: Implements predicate search, per-kind lookups and the
//              moleculetype-scoped helpers over a topology document,
//              plus the molecules-row merge operation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial search helpers implementation

package topology

import (
	"fmt"
	"iter"

	gterror "github.com/msto63/gmxtop/core/error"
	"github.com/msto63/gmxtop/gmx/ast"
	"github.com/msto63/gmxtop/utils/slicex"
)

// Find returns a lazy, restartable iterator over the nodes matching
// pred, in document order.
func (t *Topology) Find(pred func(*Node) bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := t.head; n != nil; {
			next := n.next
			if pred(n) && !yield(n) {
				return
			}
			n = next
		}
	}
}

// FindKind returns the nodes belonging to a section kind: its headers
// and its records.
func (t *Topology) FindKind(kind ast.SectionKind) iter.Seq[*Node] {
	return t.Find(func(n *Node) bool {
		switch v := n.value.(type) {
		case *ast.SectionHeader:
			return v.Kind == kind
		case ast.Entry:
			return v.Kind() == kind
		default:
			return false
		}
	})
}

// EntriesOf returns the records of a section kind in document order.
func (t *Topology) EntriesOf(kind ast.SectionKind) iter.Seq[ast.Entry] {
	return func(yield func(ast.Entry) bool) {
		for n := t.head; n != nil; n = n.next {
			if e, ok := n.value.(ast.Entry); ok && e.Kind() == kind {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// LastEntry returns the last record of a section kind, false when the
// document has none.
func (t *Topology) LastEntry(kind ast.SectionKind) (ast.Entry, bool) {
	for n := t.tail; n != nil; n = n.prev {
		if e, ok := n.value.(ast.Entry); ok && e.Kind() == kind {
			return e, true
		}
	}
	return nil, false
}

// Moleculetypes returns the defined moleculetype names in document
// order.
func (t *Topology) Moleculetypes() []string {
	var names []string
	for e := range t.EntriesOf(ast.KindMoleculetype) {
		if mt, ok := e.(*ast.MoleculetypeEntry); ok {
			names = append(names, mt.Name)
		}
	}
	return names
}

// moleculetypeStart finds the [ moleculetype ] header node whose first
// record names the given moleculetype.
func (t *Topology) moleculetypeStart(name string) *Node {
	var header *Node
	for n := t.head; n != nil; n = n.next {
		switch v := n.value.(type) {
		case *ast.SectionHeader:
			if v.Kind == ast.KindMoleculetype {
				header = n
			}
		case *ast.MoleculetypeEntry:
			if v.Name == name {
				return header
			}
		}
	}
	return nil
}

// Moleculetype returns the nodes of the named moleculetype block, from
// its [ moleculetype ] header up to the next section that leaves the
// block. The iterator is empty for undefined names.
func (t *Topology) Moleculetype(name string) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		start := t.moleculetypeStart(name)
		if start == nil {
			return
		}
		if !yield(start) {
			return
		}
		for n := start.next; n != nil; n = n.next {
			if h, ok := n.value.(*ast.SectionHeader); ok {
				// The block ends at the next moleculetype or at any
				// section that is not one of its subsections.
				if h.Kind == ast.KindMoleculetype || (h.Kind.Known() && !h.Kind.Subsection()) {
					return
				}
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Subsections returns the subsection kinds present in the named
// moleculetype block, in first-appearance order.
func (t *Topology) Subsections(name string) []ast.SectionKind {
	var kinds []ast.SectionKind
	for n := range t.Moleculetype(name) {
		if h, ok := n.value.(*ast.SectionHeader); ok && h.Kind.Subsection() {
			if !slicex.Contains(kinds, h.Kind) {
				kinds = append(kinds, h.Kind)
			}
		}
	}
	return kinds
}

// MergeMolecules collapses all [ molecules ] rows naming the given
// moleculetype into the first such row, summing their counts. Merging a
// name with a single row is a no-op.
func (t *Topology) MergeMolecules(name string) error {
	var rows []*Node
	for n := range t.FindKind(ast.KindMolecules) {
		if m, ok := n.value.(*ast.MoleculesEntry); ok && m.Name == name {
			rows = append(rows, n)
		}
	}

	if len(rows) == 0 {
		return gterror.New(fmt.Sprintf("no molecules row names %s", name)).
			WithCode(gterror.CodeNotFound).
			WithOperation("topology.MergeMolecules").
			WithDetail("moleculeName", name)
	}
	if len(rows) == 1 {
		return nil
	}

	total := 0
	for _, n := range rows {
		total += n.value.(*ast.MoleculesEntry).Count
	}

	first := rows[0].value.(*ast.MoleculesEntry)
	first.Count = total
	first.ClearRaw()

	for _, n := range rows[1:] {
		if _, err := t.Remove(n); err != nil {
			return err
		}
	}
	return nil
}
