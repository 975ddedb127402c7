// File: chain.go
// Title: Validator Chain Implementation
// Description: Provides composable validator chains that allow combining
//              multiple validation passes into a single validator. The
//              topology consistency checker runs its structural passes
//              through a chain so every finding is collected before the
//              combined result is returned.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial validator chain implementation

package validation

import (
	"context"
	"fmt"
)

// ValidatorChain represents a chain of validators executed sequentially
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
	context          map[string]interface{}
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}

	return &ValidatorChain{
		validators:       make([]Validator, 0),
		name:             chainName,
		stopOnFirstError: false,
		context:          make(map[string]interface{}),
	}
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first validation error
// By default, chains collect all validation errors
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// WithContext adds context information carried into the combined result
func (c *ValidatorChain) WithContext(key string, value interface{}) *ValidatorChain {
	c.context[key] = value
	return c
}

// WithName sets or updates the chain name for better error reporting
func (c *ValidatorChain) WithName(name string) *ValidatorChain {
	c.name = name
	return c
}

// Validate executes all validators in the chain and returns combined results
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes all validators with context support
func (c *ValidatorChain) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	var allResults []ValidationResult

	// Execute each validator in sequence
	for _, validator := range c.validators {
		result := validator.ValidateWithContext(ctx, value)
		allResults = append(allResults, result)

		// Stop on first error if configured
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}

	// Combine all results
	combined := Combine(allResults...)

	// Add chain-level context
	if c.name != "" {
		combined.WithContext("validatorChain", c.name)
	}
	for key, val := range c.context {
		combined.WithContext(key, val)
	}

	return combined
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}

// ConditionalValidator allows conditional execution of a validator based
// on a predicate over the validated value.
type ConditionalValidator struct {
	condition func(interface{}) bool
	validator Validator
	name      string
}

// NewConditionalValidator creates a validator that only executes if the condition is true
func NewConditionalValidator(condition func(interface{}) bool, validator Validator, name ...string) *ConditionalValidator {
	condName := ""
	if len(name) > 0 {
		condName = name[0]
	}

	return &ConditionalValidator{
		condition: condition,
		validator: validator,
		name:      condName,
	}
}

// Validate executes the validator only if the condition is met
func (c *ConditionalValidator) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes conditional validation with context
func (c *ConditionalValidator) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	// Check condition
	if !c.condition(value) {
		// Condition not met, validation passes
		result := NewValidationResult()
		return result
	}

	return c.validator.ValidateWithContext(ctx, value)
}

// String returns a string representation of the conditional validator
func (c *ConditionalValidator) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ConditionalValidator{name: %s}", name)
}
