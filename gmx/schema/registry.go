// File: registry.go
// Title: Section Schema Registry
// Description: Maps section names to their field schemas and record
//              factories. The parser resolves every bracketed header
//              against a registry and parses body lines through the
//              matching definition's factory. Unregistered names fall
//              back to verbatim handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial schema registry implementation

// Package schema defines the section schema registry mapping topology
// section names to field layouts and typed record factories.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/msto63/gmxtop/core/log"
	"github.com/msto63/gmxtop/gmx/ast"
	"github.com/msto63/gmxtop/utils/stringx"
)

// FieldType describes how a schema column is tokenized and checked.
type FieldType int

const (
	// FieldInt is a decimal integer column.
	FieldInt FieldType = iota

	// FieldFloat is a numeric column.
	FieldFloat

	// FieldIdent is a bare identifier column (atom type, molecule name).
	FieldIdent

	// FieldTail absorbs all remaining tokens on the line.
	FieldTail
)

// String returns the field type name.
func (t FieldType) String() string {
	switch t {
	case FieldInt:
		return "int"
	case FieldFloat:
		return "float"
	case FieldIdent:
		return "ident"
	case FieldTail:
		return "tail"
	default:
		return "unknown"
	}
}

// Field is one column of a section schema.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// MakeFunc builds a typed record from the whitespace-split tokens of a
// body line. Token counts have already been checked against the schema
// bounds when the factory runs.
type MakeFunc func(tokens []string) (ast.Entry, error)

// Definition describes one registered section: its canonical name, the
// resolved kind, whether it is a moleculetype subsection, whether it
// takes a single record, its column layout and its record factory.
type Definition struct {
	Name        string
	Description string
	Kind        ast.SectionKind
	Subsection  bool
	Once        bool
	Fields      []Field
	Make        MakeFunc
}

// minFields returns the number of required columns.
func (d *Definition) minFields() int {
	n := 0
	for _, f := range d.Fields {
		if f.Required && f.Type != FieldTail {
			n++
		}
	}
	return n
}

// maxFields returns the number of accepted columns, -1 when the schema
// ends in a tail column.
func (d *Definition) maxFields() int {
	n := 0
	for _, f := range d.Fields {
		if f.Type == FieldTail {
			return -1
		}
		n++
	}
	return n
}

// Parse checks the token count against the schema bounds and runs the
// record factory.
func (d *Definition) Parse(tokens []string) (ast.Entry, error) {
	min := d.minFields()
	max := d.maxFields()
	if len(tokens) < min {
		return nil, fmt.Errorf("section %s requires at least %d fields, got %d", d.Name, min, len(tokens))
	}
	if max >= 0 && len(tokens) > max {
		return nil, fmt.Errorf("section %s accepts at most %d fields, got %d", d.Name, max, len(tokens))
	}
	return d.Make(tokens)
}

// Options configure a registry.
type Options struct {
	Logger *log.Logger
}

// Registry maps canonical lower-cased section names to definitions. A
// registry may be shared by concurrent parses; all access is guarded.
type Registry struct {
	definitions map[string]*Definition
	logger      *log.Logger
	mutex       sync.RWMutex
}

// New creates a registry populated with the built-in section
// definitions. Callers may register additional custom sections.
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	registry := &Registry{
		definitions: make(map[string]*Definition),
		logger:      opts.Logger.WithField("component", "schema-registry"),
	}

	if err := registry.registerBuiltins(); err != nil {
		return nil, fmt.Errorf("failed to register builtin sections: %w", err)
	}

	registry.logger.Debug("schema registry initialized", log.Fields{
		"sectionCount": len(registry.definitions),
	})

	return registry, nil
}

// MustNew creates a registry with the built-in definitions and panics on
// failure. Builtin registration only fails on a programming error.
func MustNew() *Registry {
	registry, err := New(Options{})
	if err != nil {
		panic(err)
	}
	return registry
}

// Register adds a section definition to the registry.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return errors.New("section definition cannot be nil")
	}

	if stringx.IsBlank(def.Name) {
		return errors.New("section name cannot be empty")
	}

	if def.Make == nil {
		return fmt.Errorf("section %s has no record factory", def.Name)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	name := strings.ToLower(strings.TrimSpace(def.Name))
	def.Name = name

	if _, exists := r.definitions[name]; exists {
		return fmt.Errorf("section %s already registered", name)
	}

	r.definitions[name] = def

	r.logger.Debug("section registered", log.Fields{
		"sectionName": name,
		"subsection":  def.Subsection,
		"fieldCount":  len(def.Fields),
	})

	return nil
}

// Lookup resolves a section name case-insensitively.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, exists := r.definitions[strings.ToLower(strings.TrimSpace(name))]
	return def, exists
}

// Has checks whether a section name is registered.
func (r *Registry) Has(name string) bool {
	_, exists := r.Lookup(name)
	return exists
}

// IsSubsection reports whether the named section is a moleculetype
// subsection. Unregistered names are not subsections.
func (r *Registry) IsSubsection(name string) bool {
	def, exists := r.Lookup(name)
	return exists && def.Subsection
}

// Names returns all registered section names, sorted.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Len returns the number of registered sections.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.definitions)
}

// Token parsing helpers shared by the builtin factories.

func atoi(name, tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, tok)
	}
	return v, nil
}

func atof(name, tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric, got %q", name, tok)
	}
	return v, nil
}

func isInt(tok string) bool {
	_, err := strconv.Atoi(tok)
	return err == nil
}

// indexFields builds the schema columns for n atom index columns
// followed by an optional function type and a parameter tail.
func indexFields(n int) []Field {
	fields := make([]Field, 0, n+2)
	for i := 0; i < n; i++ {
		fields = append(fields, Field{Name: fmt.Sprintf("a%d", i+1), Type: FieldInt, Required: true})
	}
	fields = append(fields,
		Field{Name: "funct", Type: FieldInt},
		Field{Name: "params", Type: FieldTail},
	)
	return fields
}

// identFields builds the schema columns for n atom type identifier
// columns followed by an optional function type and a parameter tail.
func identFields(n int) []Field {
	fields := make([]Field, 0, n+2)
	for i := 0; i < n; i++ {
		fields = append(fields, Field{Name: fmt.Sprintf("t%d", i+1), Type: FieldIdent, Required: true})
	}
	fields = append(fields,
		Field{Name: "funct", Type: FieldInt},
		Field{Name: "params", Type: FieldTail},
	)
	return fields
}

// makeInteraction builds the factory for a bonded subsection with n
// leading atom index columns.
func makeInteraction(kind ast.SectionKind, n int) MakeFunc {
	return func(tokens []string) (ast.Entry, error) {
		atoms := make([]int, n)
		for i := 0; i < n; i++ {
			v, err := atoi(fmt.Sprintf("atom index %d", i+1), tokens[i])
			if err != nil {
				return nil, err
			}
			atoms[i] = v
		}
		funct := ""
		var params []string
		if len(tokens) > n {
			if _, err := atoi("function type", tokens[n]); err != nil {
				return nil, err
			}
			funct = tokens[n]
			params = tokens[n+1:]
		}
		return ast.NewInteractionEntry(kind, atoms, funct, params...), nil
	}
}

// makeParamTypes builds the factory for a parameter-level *types
// section with n leading identifier columns.
func makeParamTypes(kind ast.SectionKind, n int) MakeFunc {
	return func(tokens []string) (ast.Entry, error) {
		for i := 0; i < n; i++ {
			if stringx.IsBlank(tokens[i]) {
				return nil, fmt.Errorf("atom type column %d must not be blank", i+1)
			}
		}
		types := tokens[:n:n]
		funct := ""
		var params []string
		if len(tokens) > n {
			if _, err := atoi("function type", tokens[n]); err != nil {
				return nil, err
			}
			funct = tokens[n]
			params = tokens[n+1:]
		}
		return ast.NewParamTypesEntry(kind, types, funct, params...), nil
	}
}

func makeDefaults(tokens []string) (ast.Entry, error) {
	nbfunc, err := atoi("nbfunc", tokens[0])
	if err != nil {
		return nil, err
	}
	combRule, err := atoi("comb-rule", tokens[1])
	if err != nil {
		return nil, err
	}
	entry := &ast.DefaultsEntry{Nbfunc: nbfunc, CombRule: combRule}
	if len(tokens) > 2 {
		entry.GenPairs = tokens[2]
	}
	if len(tokens) > 3 {
		if _, err := atof("fudgeLJ", tokens[3]); err != nil {
			return nil, err
		}
		entry.FudgeLJ = tokens[3]
	}
	if len(tokens) > 4 {
		if _, err := atof("fudgeQQ", tokens[4]); err != nil {
			return nil, err
		}
		entry.FudgeQQ = tokens[4]
	}
	if len(tokens) > 5 {
		if _, err := atoi("n", tokens[5]); err != nil {
			return nil, err
		}
		entry.N = tokens[5]
	}
	return entry, nil
}

// makeAtomtypes handles the dual arity of force-field atom type
// records. The bonded-type column is present exactly when the second
// token is not the numeric atomic number.
func makeAtomtypes(tokens []string) (ast.Entry, error) {
	entry := &ast.AtomtypesEntry{Name: tokens[0]}

	rest := tokens[1:]
	if !isInt(rest[0]) {
		if len(rest) < 7 {
			return nil, fmt.Errorf("atomtypes with bonded type requires 8 fields, got %d", len(tokens))
		}
		entry.BondType = rest[0]
		rest = rest[1:]
	}
	if len(rest) < 6 {
		return nil, fmt.Errorf("atomtypes requires at least 7 fields, got %d", len(tokens))
	}

	var err error
	if entry.AtNum, err = atoi("atomic number", rest[0]); err != nil {
		return nil, err
	}
	if entry.Mass, err = atof("mass", rest[1]); err != nil {
		return nil, err
	}
	if entry.Charge, err = atof("charge", rest[2]); err != nil {
		return nil, err
	}
	entry.Ptype = rest[3]
	if entry.Sigma, err = atof("sigma", rest[4]); err != nil {
		return nil, err
	}
	if entry.Epsilon, err = atof("epsilon", rest[5]); err != nil {
		return nil, err
	}
	entry.Tail = rest[6:]
	return entry, nil
}

func makeMoleculetype(tokens []string) (ast.Entry, error) {
	nrexcl, err := atoi("nrexcl", tokens[1])
	if err != nil {
		return nil, err
	}
	return &ast.MoleculetypeEntry{Name: tokens[0], Nrexcl: nrexcl}, nil
}

func makeAtoms(tokens []string) (ast.Entry, error) {
	entry := &ast.AtomsEntry{Type: tokens[1], Residue: tokens[3], Atom: tokens[4]}

	var err error
	if entry.Nr, err = atoi("atom number", tokens[0]); err != nil {
		return nil, err
	}
	if entry.Resnr, err = atoi("residue number", tokens[2]); err != nil {
		return nil, err
	}
	if entry.Cgnr, err = atoi("charge group", tokens[5]); err != nil {
		return nil, err
	}
	if entry.Charge, err = atof("charge", tokens[6]); err != nil {
		return nil, err
	}
	if entry.Mass, err = atof("mass", tokens[7]); err != nil {
		return nil, err
	}
	if len(tokens) > 8 {
		entry.TypeB = tokens[8]
	}
	if len(tokens) > 9 {
		if _, err := atof("chargeB", tokens[9]); err != nil {
			return nil, err
		}
		entry.ChargeB = tokens[9]
	}
	if len(tokens) > 10 {
		if _, err := atof("massB", tokens[10]); err != nil {
			return nil, err
		}
		entry.MassB = tokens[10]
	}
	return entry, nil
}

func makeBonds(tokens []string) (ast.Entry, error) {
	ai, err := atoi("atom index 1", tokens[0])
	if err != nil {
		return nil, err
	}
	aj, err := atoi("atom index 2", tokens[1])
	if err != nil {
		return nil, err
	}
	entry := &ast.BondsEntry{AI: ai, AJ: aj}
	if len(tokens) > 2 {
		if _, err := atoi("function type", tokens[2]); err != nil {
			return nil, err
		}
		entry.Funct = tokens[2]
		entry.Params = tokens[3:]
	}
	return entry, nil
}

func makeExclusions(tokens []string) (ast.Entry, error) {
	ai, err := atoi("atom index", tokens[0])
	if err != nil {
		return nil, err
	}
	partners := make([]int, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		p, err := atoi("exclusion partner", tok)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return &ast.ExclusionsEntry{AI: ai, Partners: partners}, nil
}

func makeSystem(tokens []string) (ast.Entry, error) {
	return &ast.SystemEntry{Name: strings.Join(tokens, " ")}, nil
}

func makeMolecules(tokens []string) (ast.Entry, error) {
	count, err := atoi("molecule count", tokens[1])
	if err != nil {
		return nil, err
	}
	return &ast.MoleculesEntry{Name: tokens[0], Count: count}, nil
}

// registerBuiltins installs the definitions for every known section.
func (r *Registry) registerBuiltins() error {
	builtins := []*Definition{
		{
			Name:        "defaults",
			Description: "Global non-bonded defaults",
			Kind:        ast.KindDefaults,
			Once:        true,
			Fields: []Field{
				{Name: "nbfunc", Type: FieldInt, Required: true},
				{Name: "comb-rule", Type: FieldInt, Required: true},
				{Name: "gen-pairs", Type: FieldIdent},
				{Name: "fudgeLJ", Type: FieldFloat},
				{Name: "fudgeQQ", Type: FieldFloat},
				{Name: "n", Type: FieldInt},
			},
			Make: makeDefaults,
		},
		{
			Name:        "atomtypes",
			Description: "Force-field atom type parameters",
			Kind:        ast.KindAtomtypes,
			Fields: []Field{
				{Name: "name", Type: FieldIdent, Required: true},
				{Name: "at.num", Type: FieldInt, Required: true},
				{Name: "mass", Type: FieldFloat, Required: true},
				{Name: "charge", Type: FieldFloat, Required: true},
				{Name: "ptype", Type: FieldIdent, Required: true},
				{Name: "sigma", Type: FieldFloat, Required: true},
				{Name: "epsilon", Type: FieldFloat, Required: true},
				{Name: "tail", Type: FieldTail},
			},
			Make: makeAtomtypes,
		},
		{
			Name:        "moleculetype",
			Description: "Molecule definition header",
			Kind:        ast.KindMoleculetype,
			Once:        true,
			Fields: []Field{
				{Name: "name", Type: FieldIdent, Required: true},
				{Name: "nrexcl", Type: FieldInt, Required: true},
			},
			Make: makeMoleculetype,
		},
		{
			Name:        "atoms",
			Description: "Atom rows of a moleculetype",
			Kind:        ast.KindAtoms,
			Subsection:  true,
			Fields: []Field{
				{Name: "nr", Type: FieldInt, Required: true},
				{Name: "type", Type: FieldIdent, Required: true},
				{Name: "resnr", Type: FieldInt, Required: true},
				{Name: "residue", Type: FieldIdent, Required: true},
				{Name: "atom", Type: FieldIdent, Required: true},
				{Name: "cgnr", Type: FieldInt, Required: true},
				{Name: "charge", Type: FieldFloat, Required: true},
				{Name: "mass", Type: FieldFloat, Required: true},
				{Name: "typeB", Type: FieldIdent},
				{Name: "chargeB", Type: FieldFloat},
				{Name: "massB", Type: FieldFloat},
			},
			Make: makeAtoms,
		},
		{
			Name:        "bonds",
			Description: "Bonded interactions between atom pairs",
			Kind:        ast.KindBonds,
			Subsection:  true,
			Fields:      indexFields(2),
			Make:        makeBonds,
		},
		{
			Name:        "exclusions",
			Description: "Non-bonded exclusion partners per atom",
			Kind:        ast.KindExclusions,
			Subsection:  true,
			Fields: []Field{
				{Name: "ai", Type: FieldInt, Required: true},
				{Name: "partners", Type: FieldTail},
			},
			Make: makeExclusions,
		},
		{
			Name:        "system",
			Description: "Free-text system title",
			Kind:        ast.KindSystem,
			Once:        true,
			Fields: []Field{
				{Name: "name", Type: FieldIdent, Required: true},
				{Name: "rest", Type: FieldTail},
			},
			Make: makeSystem,
		},
		{
			Name:        "molecules",
			Description: "Molecule counts of the simulated system",
			Kind:        ast.KindMolecules,
			Fields: []Field{
				{Name: "name", Type: FieldIdent, Required: true},
				{Name: "count", Type: FieldInt, Required: true},
			},
			Make: makeMolecules,
		},
	}

	// Bonded subsections with a fixed index count and a parameter tail.
	interactions := []struct {
		kind    ast.SectionKind
		indices int
	}{
		{ast.KindPairs, 2},
		{ast.KindPairsNB, 2},
		{ast.KindAngles, 3},
		{ast.KindDihedrals, 4},
		{ast.KindConstraints, 2},
		{ast.KindSettles, 1},
		{ast.KindVirtualSites2, 3},
		{ast.KindVirtualSites3, 4},
		{ast.KindVirtualSites4, 5},
		{ast.KindVirtualSitesN, 1},
		{ast.KindPositionRestraints, 1},
		{ast.KindDistanceRestraints, 2},
		{ast.KindDihedralRestraints, 4},
		{ast.KindOrientationRestraints, 2},
		{ast.KindAngleRestraints, 4},
		{ast.KindAngleRestraintsZ, 2},
	}
	for _, it := range interactions {
		builtins = append(builtins, &Definition{
			Name:        it.kind.String(),
			Description: fmt.Sprintf("Bonded section with %d atom indices", it.indices),
			Kind:        it.kind,
			Subsection:  true,
			Fields:      indexFields(it.indices),
			Make:        makeInteraction(it.kind, it.indices),
		})
	}

	// Parameter-level *types sections keyed by atom type identifiers.
	paramTypes := []struct {
		kind   ast.SectionKind
		idents int
	}{
		{ast.KindBondtypes, 2},
		{ast.KindPairtypes, 2},
		{ast.KindAngletypes, 3},
		{ast.KindDihedraltypes, 4},
		{ast.KindConstrainttypes, 2},
		{ast.KindNonbondedParams, 2},
	}
	for _, pt := range paramTypes {
		builtins = append(builtins, &Definition{
			Name:        pt.kind.String(),
			Description: fmt.Sprintf("Parameter section with %d atom type columns", pt.idents),
			Kind:        pt.kind,
			Fields:      identFields(pt.idents),
			Make:        makeParamTypes(pt.kind, pt.idents),
		})
	}

	for _, def := range builtins {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("failed to register section %s: %w", def.Name, err)
		}
	}

	return nil
}
