// File: check.go
// Title: Topology Consistency Checker
// Description: Walks a document and collects structural consistency
//              findings: duplicate moleculetype names, bonded atom
//              indices outside their moleculetype's atom range and
//              molecules rows naming undefined moleculetypes. Findings
//              are reported as data and never raised; the document is
//              not mutated.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial consistency checker implementation

package topology

import (
	"fmt"

	"github.com/msto63/gmxtop/core/validation"
	"github.com/msto63/gmxtop/gmx/ast"
)

// Violation is one consistency finding of Check.
type Violation = validation.ValidationError

// indexedEntry is a bonded record remembered with its moleculetype.
type indexedEntry struct {
	entry    ast.Entry
	indices  []int
	molecule string
}

// checkModel is the structural summary Check validates against.
type checkModel struct {
	// definitions holds every moleculetype definition in document
	// order, including repeated names.
	definitions []*ast.MoleculetypeEntry

	// atomCount maps a moleculetype name to its number of atom rows.
	atomCount map[string]int

	// bonded collects the records referencing atoms by index, scoped to
	// their moleculetype.
	bonded []indexedEntry

	// molecules holds the [ molecules ] rows in document order.
	molecules []*ast.MoleculesEntry
}

// buildCheckModel walks the document once, tracking the enclosing
// moleculetype the way the parser does: the name comes from the first
// record after a [ moleculetype ] header.
func (t *Topology) buildCheckModel() *checkModel {
	model := &checkModel{atomCount: make(map[string]int)}

	molecule := ""
	for n := t.head; n != nil; n = n.next {
		switch v := n.value.(type) {
		case *ast.SectionHeader:
			if v.Kind == ast.KindMoleculetype || (v.Kind.Known() && !v.Kind.Subsection()) {
				// Leaving the current moleculetype block.
				if v.Kind != ast.KindMoleculetype {
					molecule = ""
				}
			}
		case *ast.MoleculetypeEntry:
			molecule = v.Name
			model.definitions = append(model.definitions, v)
		case *ast.AtomsEntry:
			if molecule != "" {
				model.atomCount[molecule]++
			}
		case *ast.MoleculesEntry:
			model.molecules = append(model.molecules, v)
		default:
			if indexer, ok := n.value.(ast.AtomIndexer); ok && molecule != "" {
				model.bonded = append(model.bonded, indexedEntry{
					entry:    n.value.(ast.Entry),
					indices:  indexer.AtomIndices(),
					molecule: molecule,
				})
			}
		}
	}
	return model
}

// checkDuplicateNames reports every moleculetype redefining an earlier
// name.
func checkDuplicateNames(value interface{}) validation.ValidationResult {
	model := value.(*checkModel)
	result := validation.NewValidationResult()

	seen := make(map[string]bool)
	for _, def := range model.definitions {
		if seen[def.Name] {
			result.Valid = false
			result.Errors = append(result.Errors, Violation{
				Code:    validation.CodeDuplicateName,
				Field:   "moleculetype",
				Message: fmt.Sprintf("moleculetype %s is defined more than once", def.Name),
				Value:   def.Name,
				Context: positionContext(def.Position()),
			})
			continue
		}
		seen[def.Name] = true
	}
	return result
}

// checkAtomIndices reports bonded records whose atom indices fall
// outside the enclosing moleculetype's atom range.
func checkAtomIndices(value interface{}) validation.ValidationResult {
	model := value.(*checkModel)
	result := validation.NewValidationResult()

	for _, be := range model.bonded {
		max := model.atomCount[be.molecule]
		for _, idx := range be.indices {
			if idx < 1 || idx > max {
				ctx := positionContext(be.entry.Position())
				ctx["moleculetype"] = be.molecule
				result.Valid = false
				result.Errors = append(result.Errors, Violation{
					Code:  validation.CodeIndexOutOfRange,
					Field: be.entry.Kind().String(),
					Message: fmt.Sprintf("atom index %d in [ %s ] of moleculetype %s is outside [1, %d]",
						idx, be.entry.Kind(), be.molecule, max),
					Value:    idx,
					Expected: fmt.Sprintf("[1, %d]", max),
					Context:  ctx,
				})
			}
		}
	}
	return result
}

// checkMoleculeReferences reports [ molecules ] rows naming
// moleculetypes the document never defines.
func checkMoleculeReferences(value interface{}) validation.ValidationResult {
	model := value.(*checkModel)
	result := validation.NewValidationResult()

	defined := make(map[string]bool, len(model.definitions))
	for _, def := range model.definitions {
		defined[def.Name] = true
	}

	for _, row := range model.molecules {
		if !defined[row.Name] {
			result.Valid = false
			result.Errors = append(result.Errors, Violation{
				Code:    validation.CodeUndefinedReference,
				Field:   "molecules",
				Message: fmt.Sprintf("molecules row names undefined moleculetype %s", row.Name),
				Value:   row.Name,
				Context: positionContext(row.Position()),
			})
		}
	}
	return result
}

// positionContext builds the shared location context of a finding.
func positionContext(pos ast.Position) map[string]interface{} {
	ctx := make(map[string]interface{}, 2)
	if pos.Source != "" {
		ctx["source"] = pos.Source
	}
	if pos.Line > 0 {
		ctx["line"] = pos.Line
	}
	return ctx
}

// Check runs every consistency pass and returns the complete list of
// findings. An empty result means the document is consistent. Check
// never mutates the document and never fails.
func (t *Topology) Check() []Violation {
	model := t.buildCheckModel()

	chain := validation.NewValidatorChain("topology-consistency").
		AddFunc(checkDuplicateNames).
		AddFunc(checkAtomIndices).
		AddFunc(checkMoleculeReferences)

	result := chain.Validate(model)
	return result.Errors
}

// ValidateNodes runs every node's own field validation and returns the
// failures in document order. Unlike Check it looks at single nodes in
// isolation; cross-entry consistency stays with Check.
func (t *Topology) ValidateNodes() []error {
	visitor := ast.NewValidationVisitor()
	for n := t.head; n != nil; n = n.next {
		n.value.Accept(visitor)
	}
	return visitor.Errors()
}
