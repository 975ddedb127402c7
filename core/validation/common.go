// File: common.go
// Title: Common Structural Validators
// Description: Ready-made validator constructors for the value shapes that
//              occur in topology records: required identifiers, integer and
//              numeric tokens, and 1-based atom indices bounded by a
//              moleculetype's atom count.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial structural validators

package validation

import (
	"fmt"
	"strconv"

	"github.com/msto63/gmxtop/utils/stringx"
)

// Required validates that a string value is present and not blank.
func Required(field string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		s, ok := value.(string)
		if !ok || stringx.IsBlank(s) {
			return NewValidationErrorWithField(CodeRequired, field,
				fmt.Sprintf("%s is required", field), value)
		}
		return NewValidationResult()
	}
}

// IntToken validates that a string token parses as an integer.
func IntToken(field string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		s, ok := value.(string)
		if !ok {
			return NewValidationErrorWithField(CodeType, field,
				fmt.Sprintf("%s must be a string token", field), value)
		}
		if _, err := strconv.Atoi(s); err != nil {
			return NewValidationErrorWithField(CodeType, field,
				fmt.Sprintf("%s must be an integer, got %q", field, s), s)
		}
		return NewValidationResult()
	}
}

// FloatToken validates that a string token parses as a number.
func FloatToken(field string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		s, ok := value.(string)
		if !ok {
			return NewValidationErrorWithField(CodeType, field,
				fmt.Sprintf("%s must be a string token", field), value)
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return NewValidationErrorWithField(CodeType, field,
				fmt.Sprintf("%s must be numeric, got %q", field, s), s)
		}
		return NewValidationResult()
	}
}

// PositiveIndex validates that an int value is a positive 1-based index.
func PositiveIndex(field string) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		i, ok := value.(int)
		if !ok {
			return NewValidationErrorWithField(CodeType, field,
				fmt.Sprintf("%s must be an integer", field), value)
		}
		if i < 1 {
			return NewValidationErrorWithField(CodeRange, field,
				fmt.Sprintf("%s must be positive, got %d", field, i), i)
		}
		return NewValidationResult()
	}
}

// IndexInRange validates that an int value is a 1-based index within
// [1, max]. A max of zero disables the upper bound check, used when the
// enclosing moleculetype declares no atoms.
func IndexInRange(field string, max int) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		i, ok := value.(int)
		if !ok {
			return NewValidationErrorWithField(CodeType, field,
				fmt.Sprintf("%s must be an integer", field), value)
		}
		if i < 1 || (max > 0 && i > max) {
			result := NewValidationErrorWithField(CodeIndexOutOfRange, field,
				fmt.Sprintf("%s index %d outside range [1, %d]", field, i, max), i)
			result.Errors[0].Expected = fmt.Sprintf("[1, %d]", max)
			return result
		}
		return NewValidationResult()
	}
}
