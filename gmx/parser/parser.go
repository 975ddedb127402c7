// File: parser.go
// Title: Topology File Parser
// Description: Single-pass parser for GROMACS topology files. Builds an
//              order-preserving node document from classified lines,
//              resolves #ifdef conditionals against a define table and
//              splices #include targets in place through recursive
//              sub-parses with cycle and depth protection. Every node
//              retains its verbatim source text for lossless
//              serialization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial topology parser implementation

package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	gterror "github.com/msto63/gmxtop/core/error"
	"github.com/msto63/gmxtop/core/log"
	"github.com/msto63/gmxtop/gmx/ast"
	"github.com/msto63/gmxtop/gmx/schema"
	"github.com/msto63/gmxtop/gmx/topology"
	"github.com/msto63/gmxtop/utils/filex"
	"github.com/msto63/gmxtop/utils/slicex"
)

// DefaultMaxIncludeDepth bounds include nesting when the caller does
// not configure a limit.
const DefaultMaxIncludeDepth = 32

// Options configures parser behavior
type Options struct {
	Logger              *log.Logger
	Registry            *schema.Registry
	Source              Source
	ResolveIncludes     bool
	IncludeExclusions   []string // trailing path components to keep as Include nodes
	ResolveConditionals bool
	Defines             []string // preprocessor symbols, NAME or NAME=VALUE
	IncludePaths        []string
	IgnoreComments      bool
	MaxIncludeDepth     int
}

// Parser turns topology sources into node documents
type Parser struct {
	logger   *log.Logger
	registry *schema.Registry
	options  Options
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message string
	Source  string
	Line    int
	Err     error
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s:%d: %s", pe.Source, pe.Line, pe.Message)
}

func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// New creates a new topology parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.Registry == nil {
		opts.Registry = schema.MustNew()
	}
	if opts.MaxIncludeDepth <= 0 {
		opts.MaxIncludeDepth = DefaultMaxIncludeDepth
	}
	if opts.Source == nil {
		return nil, gterror.New("parser requires a source").
			WithCode(gterror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	return &Parser{
		logger:   opts.Logger.WithField("component", "topology-parser"),
		registry: opts.Registry,
		options:  opts,
	}, nil
}

// Parse runs the single-pass loop over the configured source and
// returns the resulting document. Includes and conditionals are
// resolved according to the options; the returned topology records
// which of the two resolutions were applied.
func (p *Parser) Parse(ctx context.Context) (*topology.Topology, error) {
	sessionID := uuid.NewString()
	logger := p.logger.WithSessionID(sessionID)

	timer := logger.StartTimer("parse-topology")

	state := &parseState{
		parser:  p,
		logger:  logger,
		defines: make(map[string]string),
	}
	for _, def := range p.options.Defines {
		name, value, _ := strings.Cut(def, "=")
		if name = strings.TrimSpace(name); name != "" {
			state.defines[name] = strings.TrimSpace(value)
		}
	}

	logger.Debug("Starting topology parse", log.Fields{
		"source":              p.options.Source.Name(),
		"resolveIncludes":     p.options.ResolveIncludes,
		"resolveConditionals": p.options.ResolveConditionals,
		"defines":             len(state.defines),
	})

	doc, err := state.parseSource(ctx, p.options.Source, 0)
	if err != nil {
		timer.StopWithError(err)
		logger.Warn("Topology parse failed", log.Fields{
			"source": p.options.Source.Name(),
			"error":  err.Error(),
		})
		return nil, err
	}

	doc.Source = p.options.Source.Name()
	doc.IncludesResolved = p.options.ResolveIncludes
	doc.ConditionalsResolved = p.options.ResolveConditionals

	timer.Stop()
	logger.Debug("Topology parse completed", log.Fields{
		"source": doc.Source,
		"nodes":  doc.Len(),
	})

	return doc, nil
}

// ParseFiles parses independent topology files concurrently, one parser
// per file. The documents are returned in input order. Any source in
// the options is ignored; each path becomes its own FileSource.
func ParseFiles(ctx context.Context, opts Options, paths ...string) ([]*topology.Topology, error) {
	docs := make([]*topology.Topology, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			source, err := NewFileSource(path, opts.IncludePaths...)
			if err != nil {
				return err
			}
			fileOpts := opts
			fileOpts.Source = source

			parser, err := New(fileOpts)
			if err != nil {
				return err
			}
			doc, err := parser.Parse(ctx)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// condFrame is one open conditional block. active is the effective
// state including enclosing frames; taken records whether any branch of
// the block has been active, which decides what #else switches to.
type condFrame struct {
	parentActive bool
	taken        bool
	active       bool
	elseSeen     bool
	symbol       string
	kind         ast.CondKind
	line         int
}

// parseState carries the mutable state of one parse session. The define
// table and the include resolution stack are shared across nested
// sources, so a #define in a parent affects conditionals in children
// and include cycles are detected across the whole chain.
type parseState struct {
	parser  *Parser
	logger  *log.Logger
	defines map[string]string
	stack   []string // canonical names of sources on the resolution stack
}

// sourceState is the per-source part: the conditional stack and the
// section context never cross include boundaries.
type sourceState struct {
	source     Source
	conds      []condFrame
	definition *schema.Definition // nil in unknown sections or before the first header
	section    string
	entryCount int
}

// active reports whether the current line is inside active branches of
// every open conditional.
func (ss *sourceState) active() bool {
	for _, frame := range ss.conds {
		if !frame.active {
			return false
		}
	}
	return true
}

func (st *parseState) parseSource(ctx context.Context, src Source, depth int) (*topology.Topology, error) {
	opts := &st.parser.options
	name := src.Name()

	if depth > opts.MaxIncludeDepth {
		return nil, &ParseError{
			Message: fmt.Sprintf("include nesting exceeds limit of %d", opts.MaxIncludeDepth),
			Source:  name,
			Err: gterror.New("include nesting too deep").
				WithCode(gterror.CodeIncludeDepth).
				WithOperation("parser.parseSource").
				WithDetail("source", name).
				WithDetail("maxDepth", opts.MaxIncludeDepth),
		}
	}
	if slicex.Contains(st.stack, name) {
		cycle := strings.Join(append(append([]string{}, st.stack...), name), " -> ")
		return nil, &ParseError{
			Message: fmt.Sprintf("circular include: %s", cycle),
			Source:  name,
			Err: gterror.New("circular include detected").
				WithCode(gterror.CodeCircularInclude).
				WithOperation("parser.parseSource").
				WithDetail("cycle", cycle),
		}
	}
	st.stack = append(st.stack, name)
	defer func() { st.stack = st.stack[:len(st.stack)-1] }()

	lines, err := src.Lines()
	if err != nil {
		return nil, err
	}

	doc := topology.New()
	ss := &sourceState{source: src}

	for i := 0; i < len(lines); i++ {
		if err := ctx.Err(); err != nil {
			return nil, gterror.Wrap(err, "parse cancelled").
				WithCode(gterror.CodeInternal).
				WithOperation("parser.parseSource").
				WithDetail("source", name)
		}

		logical, physical, consumed := joinContinuations(lines, i)
		lineNo := i + 1
		i += consumed - 1

		if err := st.processLine(ctx, doc, ss, depth, logical, physical, lineNo); err != nil {
			return nil, err
		}
	}

	if len(ss.conds) > 0 {
		top := ss.conds[len(ss.conds)-1]
		return nil, &ParseError{
			Message: fmt.Sprintf("unterminated %s %s", top.kind.Directive(), top.symbol),
			Source:  name,
			Line:    top.line,
			Err: gterror.New("unbalanced conditional block").
				WithCode(gterror.CodeUnbalancedConditional).
				WithOperation("parser.parseSource").
				WithDetail("source", name).
				WithDetail("symbol", top.symbol).
				WithDetail("openedAt", top.line),
		}
	}

	return doc, nil
}

// finishNode attaches the verbatim source, position and inline comment
// to a freshly parsed node. With IgnoreComments set, the retained raw
// text is the code part only, so dropped comments do not come back on
// render.
func (st *parseState) finishNode(value ast.NodeValue, physical, code, inline string, pos ast.Position) {
	raw := physical
	if st.parser.options.IgnoreComments && inline != "" {
		raw = strings.TrimRight(code, " \t")
	}
	value.SetRaw(raw)
	value.SetPosition(pos)
	if inline != "" && !st.parser.options.IgnoreComments {
		value.SetInline(inline)
	}
}

// processLine classifies one logical line and appends the resulting
// node, if any, to the document.
func (st *parseState) processLine(ctx context.Context, doc *topology.Topology, ss *sourceState, depth int, logical, physical string, lineNo int) error {
	opts := &st.parser.options
	active := ss.active()
	pos := ast.Position{Source: ss.source.Name(), Line: lineNo}

	emit := func(value ast.NodeValue, code, inline string) {
		st.finishNode(value, physical, code, inline, pos)
		doc.Append(value)
	}

	switch classifyLine(logical) {
	case classBlank:
		if !active && opts.ResolveConditionals {
			return nil
		}
		emit(&ast.Blank{}, logical, "")
		return nil

	case classComment:
		if opts.IgnoreComments {
			return nil
		}
		if !active && opts.ResolveConditionals {
			return nil
		}
		trimmed := strings.TrimSpace(logical)
		emit(&ast.Comment{
			Char: string(trimmed[0]),
			Text: strings.TrimSpace(trimmed[1:]),
		}, logical, "")
		return nil

	case classDirective:
		code, inline, _ := splitInline(logical)
		return st.processDirective(ctx, doc, ss, depth, code, inline, physical, lineNo)

	case classSection:
		code, inline, _ := splitInline(logical)
		if !active && opts.ResolveConditionals {
			return nil
		}
		name, ok := sectionName(code)
		if !ok {
			return st.malformed(ss, lineNo, logical, "malformed section header")
		}
		header := ast.NewSectionHeader(name)
		emit(header, code, inline)
		ss.definition, _ = st.parser.registry.Lookup(name)
		ss.section = name
		ss.entryCount = 0
		return nil

	default: // classEntry
		code, inline, _ := splitInline(logical)
		if !active && opts.ResolveConditionals {
			return nil
		}
		if ss.definition == nil {
			emit(&ast.RawEntry{Text: strings.TrimSpace(code)}, code, inline)
			return nil
		}
		entry, err := ss.definition.Parse(strings.Fields(code))
		if err != nil {
			return st.malformedCause(ss, lineNo, logical, err)
		}
		ss.entryCount++
		if ss.definition.Once && ss.entryCount > 1 {
			return st.malformed(ss, lineNo, logical,
				fmt.Sprintf("section [ %s ] allows a single entry", ss.section))
		}
		emit(entry, code, inline)
		return nil
	}
}

// processDirective handles preprocessor lines. Conditional directives
// are always evaluated so nesting stays validated even inside dead
// branches; the other directives act only in active regions.
func (st *parseState) processDirective(ctx context.Context, doc *topology.Topology, ss *sourceState, depth int, code, inline, physical string, lineNo int) error {
	opts := &st.parser.options
	pos := ast.Position{Source: ss.source.Name(), Line: lineNo}

	emit := func(value ast.NodeValue) {
		st.finishNode(value, physical, code, inline, pos)
		doc.Append(value)
	}
	retained := ss.active() || !opts.ResolveConditionals

	keyword, args := splitDirective(code)
	switch keyword {
	case "#ifdef", "#ifndef":
		if len(args) != 1 {
			return st.malformed(ss, lineNo, code, keyword+" requires exactly one symbol")
		}
		kind := ast.CondIfdef
		_, defined := st.defines[args[0]]
		if keyword == "#ifndef" {
			kind = ast.CondIfndef
			defined = !defined
		}
		parentActive := ss.active()
		ss.conds = append(ss.conds, condFrame{
			parentActive: parentActive,
			taken:        defined,
			active:       parentActive && defined,
			symbol:       args[0],
			kind:         kind,
			line:         lineNo,
		})
		if !opts.ResolveConditionals {
			emit(&ast.Conditional{Kind: kind, Symbol: args[0]})
		}
		return nil

	case "#else":
		if len(ss.conds) == 0 {
			return st.unbalanced(ss, lineNo, "#else without open conditional")
		}
		top := &ss.conds[len(ss.conds)-1]
		if top.elseSeen {
			return st.unbalanced(ss, lineNo,
				fmt.Sprintf("second #else in conditional opened at line %d", top.line))
		}
		top.elseSeen = true
		top.active = top.parentActive && !top.taken
		top.taken = true
		if !opts.ResolveConditionals {
			emit(&ast.Conditional{Kind: ast.CondElse})
		}
		return nil

	case "#endif":
		if len(ss.conds) == 0 {
			return st.unbalanced(ss, lineNo, "#endif without open conditional")
		}
		ss.conds = ss.conds[:len(ss.conds)-1]
		if !opts.ResolveConditionals {
			emit(&ast.Conditional{Kind: ast.CondEndif})
		}
		return nil

	case "#define":
		if !retained {
			return nil
		}
		if len(args) == 0 {
			return st.malformed(ss, lineNo, code, "#define requires a symbol")
		}
		value := strings.Join(args[1:], " ")
		if ss.active() {
			st.defines[args[0]] = value
		}
		emit(&ast.Define{Name: args[0], Value: value})
		return nil

	case "#undef":
		if !retained {
			return nil
		}
		if len(args) != 1 {
			return st.malformed(ss, lineNo, code, "#undef requires exactly one symbol")
		}
		if ss.active() {
			delete(st.defines, args[0])
		}
		emit(&ast.Undef{Name: args[0]})
		return nil

	case "#include":
		if !retained {
			return nil
		}
		if len(args) != 1 {
			return st.malformed(ss, lineNo, code, "#include requires exactly one path")
		}
		path := unquoteIncludePath(args[0])
		if path == "" {
			return st.malformed(ss, lineNo, code, "#include path is empty")
		}

		resolve := ss.active() && opts.ResolveIncludes &&
			!filex.MatchAnyTrailing(path, opts.IncludeExclusions)
		if !resolve {
			emit(&ast.Include{Path: path})
			return nil
		}

		target, err := ss.source.Open(path)
		if err != nil {
			return &ParseError{
				Message: fmt.Sprintf("cannot resolve include %q", path),
				Source:  ss.source.Name(),
				Line:    lineNo,
				Err:     err,
			}
		}
		st.logger.Debug("Resolving include", log.Fields{
			"from":  ss.source.Name(),
			"line":  lineNo,
			"path":  path,
			"depth": depth + 1,
		})
		sub, err := st.parseSource(ctx, target, depth+1)
		if err != nil {
			return err
		}
		topology.Merge(doc, sub)
		return nil

	default:
		return st.malformed(ss, lineNo, code,
			fmt.Sprintf("unknown directive %s", keyword))
	}
}

func (st *parseState) malformed(ss *sourceState, lineNo int, line, message string) error {
	return &ParseError{
		Message: message,
		Source:  ss.source.Name(),
		Line:    lineNo,
		Err: gterror.New(message).
			WithCode(gterror.CodeMalformedEntry).
			WithOperation("parser.processLine").
			WithDetail("source", ss.source.Name()).
			WithDetail("line", lineNo).
			WithDetail("section", ss.section).
			WithDetail("text", strings.TrimSpace(line)),
	}
}

func (st *parseState) malformedCause(ss *sourceState, lineNo int, line string, cause error) error {
	return &ParseError{
		Message: fmt.Sprintf("invalid [ %s ] entry: %v", ss.section, cause),
		Source:  ss.source.Name(),
		Line:    lineNo,
		Err: gterror.Wrap(cause, fmt.Sprintf("invalid [ %s ] entry", ss.section)).
			WithCode(gterror.CodeMalformedEntry).
			WithOperation("parser.processLine").
			WithDetail("source", ss.source.Name()).
			WithDetail("line", lineNo).
			WithDetail("section", ss.section).
			WithDetail("text", strings.TrimSpace(line)),
	}
}

func (st *parseState) unbalanced(ss *sourceState, lineNo int, message string) error {
	return &ParseError{
		Message: message,
		Source:  ss.source.Name(),
		Line:    lineNo,
		Err: gterror.New(message).
			WithCode(gterror.CodeUnbalancedConditional).
			WithOperation("parser.processDirective").
			WithDetail("source", ss.source.Name()).
			WithDetail("line", lineNo),
	}
}
