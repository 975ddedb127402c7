// File: doc.go
// Title: Topology Parser Package Documentation
// Description: Implements the single-pass parser for GROMACS topology
//              files, including line classification, preprocessor
//              conditional resolution and recursive include splicing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial parser implementation

/*
Package parser converts GROMACS topology text into editable node
documents.

The parser makes a single pass over its input, classifying each logical
line and appending a typed node to the resulting document. It includes:

  - Line classification for comments, blanks, section headers,
    preprocessor directives and section records
  - Continuation joining for lines ending in a backslash
  - Conditional resolution (#ifdef/#ifndef/#else/#endif) against a
    define table, with strict nesting validation even in dead branches
  - Recursive #include splicing through pluggable sources, with
    trailing-component exclusion patterns, cycle detection and a depth
    limit
  - Verbatim source retention on every node for byte-exact round-trips

Input arrives through the Source interface. FileSource reads from disk
and resolves include targets against the including file's directory,
the configured search paths and the shared GROMACS data directories;
StringSource and TreeSource serve in-memory content.

	source, err := parser.NewFileSource("system.top")
	if err != nil {
		return err
	}
	p, err := parser.New(parser.Options{
		Source:              source,
		ResolveIncludes:     true,
		ResolveConditionals: true,
		Defines:             []string{"FLEXIBLE"},
	})
	if err != nil {
		return err
	}
	doc, err := p.Parse(ctx)
*/
package parser
