// File: topology.go
// Title: Topology Document and Node List
// Description: Implements the order-preserving, editable node list a
//              parsed topology file becomes. Nodes form a doubly-linked
//              chain owned by their Topology; all mutations are O(1)
//              and identity is positional. References to removed nodes
//              or to nodes of another list fail with coded errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial node list implementation

// Package topology implements the editable document model of a parsed
// topology file: a doubly-linked list of nodes, its serializer, search
// helpers and the consistency checker.
package topology

import (
	"fmt"
	"iter"

	gterror "github.com/msto63/gmxtop/core/error"
	"github.com/msto63/gmxtop/gmx/ast"
)

// Node is one element of a Topology. A node belongs to exactly one list
// at a time; after removal it is detached and every positional
// operation on it fails.
type Node struct {
	value ast.NodeValue
	prev  *Node
	next  *Node
	owner *Topology
}

// Value returns the node's value.
func (n *Node) Value() ast.NodeValue {
	return n.value
}

// SetValue replaces the node's value in place.
func (n *Node) SetValue(v ast.NodeValue) {
	n.value = v
}

// Next returns the following node, nil at the tail or when detached.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the preceding node, nil at the head or when detached.
func (n *Node) Prev() *Node {
	return n.prev
}

// Detached reports whether the node has been removed from its list.
func (n *Node) Detached() bool {
	return n.owner == nil
}

// Topology is an ordered, editable topology document. The zero value is
// not usable; construct with New. A single Topology is not safe for
// concurrent mutation; independent Topologies share nothing.
type Topology struct {
	head   *Node
	tail   *Node
	length int

	// Source names where the document came from, usually a file path.
	Source string

	// IncludesResolved and ConditionalsResolved record which resolution
	// passes produced this document.
	IncludesResolved     bool
	ConditionalsResolved bool
}

// New creates an empty topology document.
func New() *Topology {
	return &Topology{}
}

// checkMember verifies that ref is a live member of this list.
func (t *Topology) checkMember(op string, ref *Node) error {
	if ref == nil {
		return gterror.New("reference node cannot be nil").
			WithCode(gterror.CodeInvalidInput).
			WithOperation(op)
	}
	if ref.owner == nil {
		return gterror.New("reference node has been removed from its list").
			WithCode(gterror.CodeStaleReference).
			WithOperation(op)
	}
	if ref.owner != t {
		return gterror.New("reference node belongs to a different list").
			WithCode(gterror.CodeForeignNode).
			WithOperation(op)
	}
	return nil
}

// Len returns the number of nodes.
func (t *Topology) Len() int {
	return t.length
}

// First returns the head node, nil for an empty document.
func (t *Topology) First() *Node {
	return t.head
}

// Last returns the tail node, nil for an empty document.
func (t *Topology) Last() *Node {
	return t.tail
}

// Append adds a value at the end and returns its node.
func (t *Topology) Append(v ast.NodeValue) *Node {
	node := &Node{value: v, owner: t}
	if t.tail == nil {
		t.head = node
		t.tail = node
	} else {
		node.prev = t.tail
		t.tail.next = node
		t.tail = node
	}
	t.length++
	return node
}

// InsertAfter inserts a value directly after ref.
func (t *Topology) InsertAfter(ref *Node, v ast.NodeValue) (*Node, error) {
	if err := t.checkMember("topology.InsertAfter", ref); err != nil {
		return nil, err
	}
	node := &Node{value: v, owner: t, prev: ref, next: ref.next}
	if ref.next != nil {
		ref.next.prev = node
	} else {
		t.tail = node
	}
	ref.next = node
	t.length++
	return node, nil
}

// InsertBefore inserts a value directly before ref.
func (t *Topology) InsertBefore(ref *Node, v ast.NodeValue) (*Node, error) {
	if err := t.checkMember("topology.InsertBefore", ref); err != nil {
		return nil, err
	}
	node := &Node{value: v, owner: t, prev: ref.prev, next: ref}
	if ref.prev != nil {
		ref.prev.next = node
	} else {
		t.head = node
	}
	ref.prev = node
	t.length++
	return node, nil
}

// Remove detaches ref from the list and returns its value. The node is
// marked stale; reusing it in a positional operation fails.
func (t *Topology) Remove(ref *Node) (ast.NodeValue, error) {
	if err := t.checkMember("topology.Remove", ref); err != nil {
		return nil, err
	}
	if ref.prev != nil {
		ref.prev.next = ref.next
	} else {
		t.head = ref.next
	}
	if ref.next != nil {
		ref.next.prev = ref.prev
	} else {
		t.tail = ref.prev
	}
	ref.prev = nil
	ref.next = nil
	ref.owner = nil
	t.length--
	return ref.value, nil
}

// Replace swaps the value at ref's position for v, reusing the node.
func (t *Topology) Replace(ref *Node, v ast.NodeValue) (*Node, error) {
	if err := t.checkMember("topology.Replace", ref); err != nil {
		return nil, err
	}
	ref.value = v
	return ref, nil
}

// SpliceAfter transplants all of other's nodes directly after ref,
// preserving their order. The operation is O(1); other is left empty.
func (t *Topology) SpliceAfter(ref *Node, other *Topology) error {
	if err := t.checkMember("topology.SpliceAfter", ref); err != nil {
		return err
	}
	if other == nil || other.head == nil {
		return nil
	}
	if other == t {
		return gterror.New("cannot splice a list into itself").
			WithCode(gterror.CodeInvalidOperation).
			WithOperation("topology.SpliceAfter")
	}

	for n := other.head; n != nil; n = n.next {
		n.owner = t
	}

	other.tail.next = ref.next
	if ref.next != nil {
		ref.next.prev = other.tail
	} else {
		t.tail = other.tail
	}
	other.head.prev = ref
	ref.next = other.head

	t.length += other.length
	other.head = nil
	other.tail = nil
	other.length = 0
	return nil
}

// At returns the node at position i, counting from zero.
func (t *Topology) At(i int) (*Node, error) {
	if i < 0 || i >= t.length {
		return nil, gterror.New(fmt.Sprintf("index %d out of range [0, %d)", i, t.length)).
			WithCode(gterror.CodeValueOutOfRange).
			WithOperation("topology.At").
			WithDetail("index", i).
			WithDetail("length", t.length)
	}
	node := t.head
	for ; i > 0; i-- {
		node = node.next
	}
	return node, nil
}

// Index returns the position of ref in the list.
func (t *Topology) Index(ref *Node) (int, error) {
	if err := t.checkMember("topology.Index", ref); err != nil {
		return -1, err
	}
	i := 0
	for n := t.head; n != nil; n = n.next {
		if n == ref {
			return i, nil
		}
		i++
	}
	// Unreachable while the ownership invariant holds.
	return -1, gterror.New("node not found in its owning list").
		WithCode(gterror.CodeInternal).
		WithOperation("topology.Index")
}

// Nodes returns a lazy, restartable iterator over the nodes in order.
// Removing the node currently yielded is safe; other concurrent
// mutation during iteration is not.
func (t *Topology) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := t.head; n != nil; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// NodesReverse returns a lazy iterator over the nodes in reverse order.
func (t *Topology) NodesReverse() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := t.tail; n != nil; {
			prev := n.prev
			if !yield(n) {
				return
			}
			n = prev
		}
	}
}

// Values returns an iterator over the node values in order.
func (t *Topology) Values() iter.Seq[ast.NodeValue] {
	return func(yield func(ast.NodeValue) bool) {
		for n := t.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Merge concatenates b onto the end of a and returns a. No indices are
// rewritten; the operation is purely structural. b is consumed and left
// empty.
func Merge(a, b *Topology) *Topology {
	if b == nil || b.head == nil {
		return a
	}
	if a.tail == nil {
		a.head = b.head
		a.tail = b.tail
		a.length = b.length
		for n := a.head; n != nil; n = n.next {
			n.owner = a
		}
		b.head = nil
		b.tail = nil
		b.length = 0
		return a
	}
	// Tail membership always holds, so SpliceAfter cannot fail here.
	_ = a.SpliceAfter(a.tail, b)
	return a
}
