// File: serialize.go
// Title: Topology Serializer
// Description: Renders a topology document back to text, one line per
//              node. Nodes parsed from text and never modified emit
//              their verbatim source bytes, which makes parse and
//              render round-trip byte-exactly.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial serializer implementation

package topology

import (
	"bufio"
	"io"
	"strings"

	gterror "github.com/msto63/gmxtop/core/error"
)

// Render writes the document to w, newline-terminating every node.
func (t *Topology) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for n := t.head; n != nil; n = n.next {
		if _, err := bw.WriteString(n.value.String()); err != nil {
			return gterror.Wrap(err, "failed to write node").
				WithCode(gterror.CodeIOError).
				WithOperation("topology.Render")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return gterror.Wrap(err, "failed to write newline").
				WithCode(gterror.CodeIOError).
				WithOperation("topology.Render")
		}
	}
	if err := bw.Flush(); err != nil {
		return gterror.Wrap(err, "failed to flush output").
			WithCode(gterror.CodeIOError).
			WithOperation("topology.Render")
	}
	return nil
}

// String renders the document to a string.
func (t *Topology) String() string {
	var sb strings.Builder
	for n := t.head; n != nil; n = n.next {
		sb.WriteString(n.value.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
