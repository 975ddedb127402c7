// File: config.go
// Title: Engine Configuration Mapping
// Description: Maps the [parser] table of a loaded configuration onto
//              engine options, so parse behavior can be driven from
//              TOML/YAML files and environment overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial configuration mapping

package gmx

import (
	"github.com/msto63/gmxtop/core/config"
)

// OptionsFromConfig builds engine options from the [parser] table of a
// configuration. Missing keys fall back to the zero defaults, so an
// empty configuration yields a lossless non-resolving engine.
//
// Recognized keys:
//
//	[parser]
//	resolve_includes     = true
//	resolve_conditionals = true
//	defines              = ["POSRES", "FC=1000"]
//	include_paths        = ["/opt/gromacs/top"]
//	exclusions           = ["forcefield.itp"]
//	ignore_comments      = false
//	max_include_depth    = 32
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		ResolveIncludes:     cfg.GetBool("parser.resolve_includes"),
		ResolveConditionals: cfg.GetBool("parser.resolve_conditionals"),
		Defines:             cfg.GetStringSlice("parser.defines"),
		IncludePaths:        cfg.GetStringSlice("parser.include_paths"),
		IncludeExclusions:   cfg.GetStringSlice("parser.exclusions"),
		IgnoreComments:      cfg.GetBool("parser.ignore_comments"),
		MaxIncludeDepth:     cfg.GetInt("parser.max_include_depth"),
	}
}
