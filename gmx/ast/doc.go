// File: doc.go
// Title: Topology AST Package Documentation
// Description: Defines the node values that make up a parsed topology
//              document, including directives, section headers and typed
//              section records. Provides visitor patterns and validation
//              utilities for working with node sequences.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial AST implementation

/*
Package ast defines the node values of a parsed GROMACS topology document.

Every line of a topology file maps to exactly one NodeValue: comments,
blank lines, preprocessor directives (#include, #define, #undef, #ifdef,
#ifndef, #else, #endif), bracketed section headers and the typed records
that follow them. Nodes parsed from text retain their verbatim source
line, so rendering an unmodified document reproduces the input
byte-for-byte. Programmatically built or field-edited nodes render in
canonical column formats instead.

The package provides:
  • A closed set of node value types with String, Validate and Position
  • SectionKind, the fixed enumeration of known section names
  • Typed records per section family with schema-checked fields
  • Visitor and BaseVisitor for traversal, plus collector and
    validation visitors

Usage:

	entry := &ast.AtomsEntry{
		Nr: 1, Type: "Na", Resnr: 1, Residue: "NA",
		Atom: "NA", Cgnr: 1, Charge: 1.0, Mass: 22.98977,
	}
	fmt.Println(entry.String())

	header := ast.NewSectionHeader("atoms")
	fmt.Println(header.Kind) // ast.KindAtoms
*/
package ast
