// File: entries.go
// Title: Section Record Node Definitions
// Description: Defines the typed records that populate topology sections.
//              Records parsed from text keep their verbatim line; records
//              built or edited programmatically render in fixed column
//              formats. Optional trailing columns are stored as raw
//              tokens where the empty string means "not present", keeping
//              absent distinct from zero.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial record definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/gmxtop/utils/stringx"
)

// Entry is implemented by every section record node.
type Entry interface {
	NodeValue

	// Kind reports the section kind the record belongs to.
	Kind() SectionKind
}

// AtomIndexer is implemented by records that reference atoms by their
// 1-based index within the enclosing moleculetype.
type AtomIndexer interface {
	AtomIndices() []int
}

// ftoa renders a float the shortest way that survives re-parsing.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// intToken checks that an optional column token parses as an integer.
func intToken(name, tok string) error {
	if _, err := strconv.Atoi(tok); err != nil {
		return fmt.Errorf("%s must be an integer, got %q", name, tok)
	}
	return nil
}

// floatToken checks that an optional column token parses as a number.
func floatToken(name, tok string) error {
	if _, err := strconv.ParseFloat(tok, 64); err != nil {
		return fmt.Errorf("%s must be numeric, got %q", name, tok)
	}
	return nil
}

// RawEntry is the verbatim body line of an unknown section. The text is
// never tokenized and renders back unchanged.
type RawEntry struct {
	base
	Text string
}

func (e *RawEntry) Kind() SectionKind {
	return KindUnknown
}

func (e *RawEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	return e.Text
}

func (e *RawEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *RawEntry) Validate() error {
	return nil
}

// DefaultsEntry is the single record of the [ defaults ] section. The
/// four trailing columns are positional: a later column requires every
// earlier one to be present.
type DefaultsEntry struct {
	base
	Nbfunc   int
	CombRule int
	GenPairs string // "yes" or "no", empty when not present
	FudgeLJ  string
	FudgeQQ  string
	N        string
}

func (e *DefaultsEntry) Kind() SectionKind {
	return KindDefaults
}

func (e *DefaultsEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-15d %-15d", e.Nbfunc, e.CombRule)
	if e.GenPairs != "" {
		fmt.Fprintf(&sb, " %-15s", e.GenPairs)
	}
	if e.FudgeLJ != "" {
		fmt.Fprintf(&sb, " %-7s", e.FudgeLJ)
	}
	if e.FudgeQQ != "" {
		fmt.Fprintf(&sb, " %-7s", e.FudgeQQ)
	}
	if e.N != "" {
		fmt.Fprintf(&sb, " %-7s", e.N)
	}
	return e.finish(sb.String())
}

func (e *DefaultsEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *DefaultsEntry) Validate() error {
	if e.Nbfunc < 1 {
		return fmt.Errorf("nbfunc must be positive, got %d", e.Nbfunc)
	}
	if e.CombRule < 1 {
		return fmt.Errorf("comb-rule must be positive, got %d", e.CombRule)
	}
	if e.FudgeLJ != "" && e.GenPairs == "" {
		return fmt.Errorf("fudgeLJ requires gen-pairs to be present")
	}
	if e.FudgeQQ != "" && e.FudgeLJ == "" {
		return fmt.Errorf("fudgeQQ requires fudgeLJ to be present")
	}
	if e.N != "" && e.FudgeQQ == "" {
		return fmt.Errorf("n requires fudgeQQ to be present")
	}
	if e.FudgeLJ != "" {
		if err := floatToken("fudgeLJ", e.FudgeLJ); err != nil {
			return err
		}
	}
	if e.FudgeQQ != "" {
		if err := floatToken("fudgeQQ", e.FudgeQQ); err != nil {
			return err
		}
	}
	if e.N != "" {
		if err := intToken("n", e.N); err != nil {
			return err
		}
	}
	return nil
}

// AtomtypesEntry is a force-field atom type record. Real force fields
// write it in two arities: with or without the bonded-type column. Extra
// trailing columns are kept verbatim in Tail.
type AtomtypesEntry struct {
	base
	Name     string
	BondType string // empty in the seven-column form
	AtNum    int
	Mass     float64
	Charge   float64
	Ptype    string
	Sigma    float64
	Epsilon  float64
	Tail     []string
}

func (e *AtomtypesEntry) Kind() SectionKind {
	return KindAtomtypes
}

func (e *AtomtypesEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-9s", e.Name)
	if e.BondType != "" {
		fmt.Fprintf(&sb, " %-4s", e.BondType)
	}
	fmt.Fprintf(&sb, " %-3d %-8s %-6s %-1s %.5e  %.5e",
		e.AtNum, ftoa(e.Mass), ftoa(e.Charge), e.Ptype, e.Sigma, e.Epsilon)
	for _, tok := range e.Tail {
		sb.WriteString(" ")
		sb.WriteString(tok)
	}
	return e.finish(sb.String())
}

func (e *AtomtypesEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *AtomtypesEntry) Validate() error {
	if stringx.IsBlank(e.Name) {
		return fmt.Errorf("atom type name is required")
	}
	if stringx.IsBlank(e.Ptype) {
		return fmt.Errorf("particle type is required")
	}
	if e.AtNum < 0 {
		return fmt.Errorf("atomic number must not be negative, got %d", e.AtNum)
	}
	if e.Mass < 0 {
		return fmt.Errorf("mass must not be negative, got %s", ftoa(e.Mass))
	}
	return nil
}

// MoleculetypeEntry names a molecule definition and its exclusion range.
// The first record after a [ moleculetype ] header supplies the name
// every following subsection is scoped to.
type MoleculetypeEntry struct {
	base
	Name   string
	Nrexcl int
}

func (e *MoleculetypeEntry) Kind() SectionKind {
	return KindMoleculetype
}

func (e *MoleculetypeEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	return e.finish(fmt.Sprintf("%s    %d", e.Name, e.Nrexcl))
}

func (e *MoleculetypeEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *MoleculetypeEntry) Validate() error {
	if stringx.IsBlank(e.Name) {
		return fmt.Errorf("moleculetype name is required")
	}
	if e.Nrexcl < 0 {
		return fmt.Errorf("nrexcl must not be negative, got %d", e.Nrexcl)
	}
	return nil
}

// AtomsEntry is one atom row of a moleculetype. The first eight columns
// are required; the three B-state columns are optional raw tokens.
type AtomsEntry struct {
	base
	Nr      int
	Type    string
	Resnr   int
	Residue string
	Atom    string
	Cgnr    int
	Charge  float64
	Mass    float64
	TypeB   string
	ChargeB string
	MassB   string
}

func (e *AtomsEntry) Kind() SectionKind {
	return KindAtoms
}

func (e *AtomsEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-5d %-5s %-5d %-5s %-5s %-5d %-6s %-6s",
		e.Nr, e.Type, e.Resnr, e.Residue, e.Atom, e.Cgnr,
		ftoa(e.Charge), ftoa(e.Mass))
	if e.TypeB != "" {
		fmt.Fprintf(&sb, " %-5s", e.TypeB)
	}
	if e.ChargeB != "" {
		fmt.Fprintf(&sb, " %-6s", e.ChargeB)
	}
	if e.MassB != "" {
		fmt.Fprintf(&sb, " %-6s", e.MassB)
	}
	return e.finish(sb.String())
}

func (e *AtomsEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *AtomsEntry) Validate() error {
	if e.Nr < 1 {
		return fmt.Errorf("atom number must be positive, got %d", e.Nr)
	}
	if stringx.IsBlank(e.Type) {
		return fmt.Errorf("atom type is required")
	}
	if e.Resnr < 1 {
		return fmt.Errorf("residue number must be positive, got %d", e.Resnr)
	}
	if stringx.IsBlank(e.Residue) {
		return fmt.Errorf("residue name is required")
	}
	if stringx.IsBlank(e.Atom) {
		return fmt.Errorf("atom name is required")
	}
	if e.Cgnr < 1 {
		return fmt.Errorf("charge group must be positive, got %d", e.Cgnr)
	}
	if e.ChargeB != "" && e.TypeB == "" {
		return fmt.Errorf("chargeB requires typeB to be present")
	}
	if e.MassB != "" && e.ChargeB == "" {
		return fmt.Errorf("massB requires chargeB to be present")
	}
	if e.ChargeB != "" {
		if err := floatToken("chargeB", e.ChargeB); err != nil {
			return err
		}
	}
	if e.MassB != "" {
		if err := floatToken("massB", e.MassB); err != nil {
			return err
		}
	}
	return nil
}

// BondsEntry is a bonded interaction between two atoms. The function
// type and the parameter tail are optional raw tokens.
type BondsEntry struct {
	base
	AI     int
	AJ     int
	Funct  string
	Params []string
}

func (e *BondsEntry) Kind() SectionKind {
	return KindBonds
}

// AtomIndices returns the referenced atom indices.
func (e *BondsEntry) AtomIndices() []int {
	return []int{e.AI, e.AJ}
}

func (e *BondsEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%5d %5d", e.AI, e.AJ)
	if e.Funct != "" {
		fmt.Fprintf(&sb, " %5s", e.Funct)
	}
	for _, p := range e.Params {
		sb.WriteString(" ")
		sb.WriteString(p)
	}
	return e.finish(sb.String())
}

func (e *BondsEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *BondsEntry) Validate() error {
	if e.AI < 1 || e.AJ < 1 {
		return fmt.Errorf("atom indices must be positive, got %d and %d", e.AI, e.AJ)
	}
	if e.Funct != "" {
		if err := intToken("function type", e.Funct); err != nil {
			return err
		}
	}
	for _, p := range e.Params {
		if err := floatToken("parameter", p); err != nil {
			return err
		}
	}
	return nil
}

// ExclusionsEntry lists non-bonded exclusion partners for one atom.
type ExclusionsEntry struct {
	base
	AI       int
	Partners []int
}

func (e *ExclusionsEntry) Kind() SectionKind {
	return KindExclusions
}

// AtomIndices returns the atom followed by its exclusion partners.
func (e *ExclusionsEntry) AtomIndices() []int {
	indices := make([]int, 0, len(e.Partners)+1)
	indices = append(indices, e.AI)
	return append(indices, e.Partners...)
}

func (e *ExclusionsEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%5d", e.AI)
	for _, p := range e.Partners {
		fmt.Fprintf(&sb, " %5d", p)
	}
	return e.finish(sb.String())
}

func (e *ExclusionsEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *ExclusionsEntry) Validate() error {
	if e.AI < 1 {
		return fmt.Errorf("atom index must be positive, got %d", e.AI)
	}
	if len(e.Partners) == 0 {
		return fmt.Errorf("at least one exclusion partner is required")
	}
	for _, p := range e.Partners {
		if p < 1 {
			return fmt.Errorf("exclusion partner index must be positive, got %d", p)
		}
	}
	return nil
}

// SystemEntry is the free-text system description line.
type SystemEntry struct {
	base
	Name string
}

func (e *SystemEntry) Kind() SectionKind {
	return KindSystem
}

func (e *SystemEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	return e.finish(e.Name)
}

func (e *SystemEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *SystemEntry) Validate() error {
	if stringx.IsBlank(e.Name) {
		return fmt.Errorf("system name is required")
	}
	return nil
}

// MoleculesEntry is one row of the [ molecules ] section, pairing a
// moleculetype name with the number of copies in the system.
type MoleculesEntry struct {
	base
	Name  string
	Count int
}

func (e *MoleculesEntry) Kind() SectionKind {
	return KindMolecules
}

func (e *MoleculesEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	return e.finish(fmt.Sprintf("%s    %d", e.Name, e.Count))
}

func (e *MoleculesEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *MoleculesEntry) Validate() error {
	if stringx.IsBlank(e.Name) {
		return fmt.Errorf("molecule name is required")
	}
	if e.Count < 0 {
		return fmt.Errorf("molecule count must not be negative, got %d", e.Count)
	}
	return nil
}

// InteractionEntry is the generic bonded record shared by moleculetype
// subsections that carry a fixed number of atom indices, an optional
// function type and trailing interaction parameters. The schema of the
// owning section determines how many indices a line must provide.
type InteractionEntry struct {
	base
	kind   SectionKind
	Atoms  []int
	Funct  string
	Params []string
}

// NewInteractionEntry builds a bonded record for the given section kind.
func NewInteractionEntry(kind SectionKind, atoms []int, funct string, params ...string) *InteractionEntry {
	return &InteractionEntry{
		kind:   kind,
		Atoms:  atoms,
		Funct:  funct,
		Params: params,
	}
}

func (e *InteractionEntry) Kind() SectionKind {
	return e.kind
}

// AtomIndices returns the referenced atom indices.
func (e *InteractionEntry) AtomIndices() []int {
	return e.Atoms
}

func (e *InteractionEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	var sb strings.Builder
	for i, a := range e.Atoms {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%5d", a)
	}
	if e.Funct != "" {
		fmt.Fprintf(&sb, " %5s", e.Funct)
	}
	for _, p := range e.Params {
		sb.WriteString(" ")
		sb.WriteString(p)
	}
	return e.finish(sb.String())
}

func (e *InteractionEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *InteractionEntry) Validate() error {
	if len(e.Atoms) == 0 {
		return fmt.Errorf("at least one atom index is required")
	}
	for _, a := range e.Atoms {
		if a < 1 {
			return fmt.Errorf("atom index must be positive, got %d", a)
		}
	}
	if e.Funct != "" {
		if err := intToken("function type", e.Funct); err != nil {
			return err
		}
	}
	for _, p := range e.Params {
		if err := floatToken("parameter", p); err != nil {
			return err
		}
	}
	return nil
}

// ParamTypesEntry is the generic force-field parameter record used by
// the *types sections: atom-type identifier columns, an optional
// function type and a numeric parameter tail. "X" is the conventional
// wildcard identifier.
type ParamTypesEntry struct {
	base
	kind   SectionKind
	Types  []string
	Funct  string
	Params []string
}

// NewParamTypesEntry builds a parameter record for the given section kind.
func NewParamTypesEntry(kind SectionKind, types []string, funct string, params ...string) *ParamTypesEntry {
	return &ParamTypesEntry{
		kind:   kind,
		Types:  types,
		Funct:  funct,
		Params: params,
	}
}

func (e *ParamTypesEntry) Kind() SectionKind {
	return e.kind
}

func (e *ParamTypesEntry) String() string {
	if e.raw != "" {
		return e.raw
	}
	var sb strings.Builder
	for i, t := range e.Types {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%-5s", t)
	}
	if e.Funct != "" {
		fmt.Fprintf(&sb, " %5s", e.Funct)
	}
	for _, p := range e.Params {
		sb.WriteString(" ")
		sb.WriteString(p)
	}
	return e.finish(sb.String())
}

func (e *ParamTypesEntry) Accept(visitor Visitor) interface{} {
	return visitor.VisitEntry(e)
}

func (e *ParamTypesEntry) Validate() error {
	if len(e.Types) == 0 {
		return fmt.Errorf("at least one atom type column is required")
	}
	for _, t := range e.Types {
		if stringx.IsBlank(t) {
			return fmt.Errorf("atom type column must not be blank")
		}
	}
	if e.Funct != "" {
		if err := intToken("function type", e.Funct); err != nil {
			return err
		}
	}
	for _, p := range e.Params {
		if err := floatToken("parameter", p); err != nil {
			return err
		}
	}
	return nil
}
