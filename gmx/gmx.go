// File: gmx.go
// Title: Topology Engine Facade
// Description: Provides a high-level interface to the topology system
//              that wires the parser, schema registry and consistency
//              checker behind a small API. Covers parsing from text and
//              files, rendering, writing and checking, with package
//              level convenience functions on a shared default engine.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial engine facade implementation

package gmx

import (
	"context"
	"sync"

	gterror "github.com/msto63/gmxtop/core/error"
	"github.com/msto63/gmxtop/core/log"
	"github.com/msto63/gmxtop/gmx/parser"
	"github.com/msto63/gmxtop/gmx/schema"
	"github.com/msto63/gmxtop/gmx/topology"
	"github.com/msto63/gmxtop/utils/filex"
	"github.com/msto63/gmxtop/utils/stringx"
)

// Options configures the topology engine
type Options struct {
	Logger              *log.Logger
	Registry            *schema.Registry
	ResolveIncludes     bool
	IncludeExclusions   []string
	ResolveConditionals bool
	Defines             []string
	IncludePaths        []string
	IgnoreComments      bool
	MaxIncludeDepth     int
}

// Engine provides a simplified interface to the topology system
type Engine struct {
	registry *schema.Registry
	logger   *log.Logger
	options  Options
}

// NewEngine creates a new topology engine
func NewEngine(opts Options) (*Engine, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	logger := opts.Logger.WithField("component", "gmx-engine")

	// Create registry if not provided
	if opts.Registry == nil {
		reg, err := schema.New(schema.Options{Logger: logger})
		if err != nil {
			return nil, gterror.Wrap(err, "failed to initialize section registry").
				WithCode(gterror.CodeInternal).
				WithOperation("gmx.NewEngine")
		}
		opts.Registry = reg
	}

	engine := &Engine{
		registry: opts.Registry,
		logger:   logger,
		options:  opts,
	}

	logger.Info("Topology engine initialized", log.Fields{
		"resolveIncludes":     opts.ResolveIncludes,
		"resolveConditionals": opts.ResolveConditionals,
		"defines":             len(opts.Defines),
		"includePaths":        len(opts.IncludePaths),
		"sections":            opts.Registry.Len(),
	})

	return engine, nil
}

// parserOptions builds parser options for one source from the engine
// configuration.
func (e *Engine) parserOptions(source parser.Source) parser.Options {
	return parser.Options{
		Logger:              e.logger,
		Registry:            e.registry,
		Source:              source,
		ResolveIncludes:     e.options.ResolveIncludes,
		IncludeExclusions:   e.options.IncludeExclusions,
		ResolveConditionals: e.options.ResolveConditionals,
		Defines:             e.options.Defines,
		IncludePaths:        e.options.IncludePaths,
		IgnoreComments:      e.options.IgnoreComments,
		MaxIncludeDepth:     e.options.MaxIncludeDepth,
	}
}

// Parse parses topology text held in memory. Includes can only be
// resolved when the engine's include paths locate the targets on disk.
func (e *Engine) Parse(ctx context.Context, text string) (*topology.Topology, error) {
	p, err := parser.New(e.parserOptions(parser.NewStringSource("<string>", text)))
	if err != nil {
		return nil, err
	}
	return p.Parse(ctx)
}

// ParseFile parses a topology file from disk.
func (e *Engine) ParseFile(ctx context.Context, path string) (*topology.Topology, error) {
	source, err := parser.NewFileSource(path, e.options.IncludePaths...)
	if err != nil {
		return nil, err
	}
	p, err := parser.New(e.parserOptions(source))
	if err != nil {
		return nil, err
	}
	return p.Parse(ctx)
}

// ParseFiles parses independent topology files concurrently.
func (e *Engine) ParseFiles(ctx context.Context, paths ...string) ([]*topology.Topology, error) {
	return parser.ParseFiles(ctx, e.parserOptions(nil), paths...)
}

// Render serializes a document back to topology text.
func (e *Engine) Render(doc *topology.Topology) (string, error) {
	if doc == nil {
		return "", gterror.New("document cannot be nil").
			WithCode(gterror.CodeInvalidInput).
			WithOperation("gmx.Engine.Render")
	}
	return doc.String(), nil
}

// WriteFile serializes a document and writes it to disk.
func (e *Engine) WriteFile(doc *topology.Topology, path string) error {
	if doc == nil {
		return gterror.New("document cannot be nil").
			WithCode(gterror.CodeInvalidInput).
			WithOperation("gmx.Engine.WriteFile")
	}
	if stringx.IsBlank(path) {
		return gterror.New("target path cannot be empty").
			WithCode(gterror.CodeInvalidInput).
			WithOperation("gmx.Engine.WriteFile")
	}

	timer := e.logger.StartTimer("write-topology")
	if err := filex.WriteString(path, doc.String(), 0o644); err != nil {
		timer.StopWithError(err)
		return gterror.Wrap(err, "failed to write topology file").
			WithCode(gterror.CodeIOError).
			WithOperation("gmx.Engine.WriteFile").
			WithDetail("path", path)
	}
	timer.Stop()

	e.logger.Debug("Topology written", log.Fields{
		"path":  path,
		"nodes": doc.Len(),
	})
	return nil
}

// Check runs the consistency checks and returns all findings.
func (e *Engine) Check(doc *topology.Topology) []topology.Violation {
	if doc == nil {
		return nil
	}
	timer := e.logger.StartTimer("check-topology")
	violations := doc.Check()
	timer.Checkpoint("collected", log.Fields{"violations": len(violations)})
	timer.Stop()
	return violations
}

// Registry returns the section schema registry.
func (e *Engine) Registry() *schema.Registry {
	return e.registry
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the shared default engine. It parses with include and
// conditional resolution disabled, which keeps documents lossless.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		engine, err := NewEngine(Options{})
		if err != nil {
			// NewEngine without options cannot fail unless builtin
			// registration is broken, which is a programming error.
			panic(err)
		}
		defaultEngine = engine
	})
	return defaultEngine
}

// Parse parses topology text using the default engine.
func Parse(ctx context.Context, text string) (*topology.Topology, error) {
	return Default().Parse(ctx, text)
}

// ParseFile parses a topology file using the default engine.
func ParseFile(ctx context.Context, path string) (*topology.Topology, error) {
	return Default().ParseFile(ctx, path)
}
