// File: doc.go
// Title: GMX Package Documentation
// Description: High-level facade over the topology parser, document
//              model, schema registry and consistency checks.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial facade implementation

/*
Package gmx is the high-level entry point for working with GROMACS
topology files.

An Engine bundles a section schema registry, a structured logger and
parse options, and exposes the common operations:

	engine, err := gmx.NewEngine(gmx.Options{
		ResolveIncludes:     true,
		ResolveConditionals: true,
		Defines:             []string{"POSRES"},
	})
	if err != nil {
		return err
	}

	doc, err := engine.ParseFile(ctx, "system.top")
	if err != nil {
		return err
	}

	for _, v := range engine.Check(doc) {
		fmt.Println(v.Message)
	}

	if err := engine.WriteFile(doc, "system.out.top"); err != nil {
		return err
	}

For one-off work the package-level Parse and ParseFile run on a shared
default engine that keeps documents fully lossless: includes and
conditionals stay as nodes and every line renders back byte-exact.

Engine options can also be loaded from a configuration file through
OptionsFromConfig, which reads the [parser] table of a core/config
configuration.
*/
package gmx
