// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines standard interfaces, types, and constants for unified
//              validation across gmxtop. Consistency findings are collected
//              as ValidationError values and reported as data, never raised,
//              so a caller always receives the complete list.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial validation interfaces implementation

package validation

import (
	"context"
	"fmt"
	"strings"

	gterror "github.com/msto63/gmxtop/core/error"
)

// Standard validation error codes used across the library
const (
	// Core validation failures
	CodeRequired = "VALIDATION_REQUIRED" // Field is required but missing
	CodeFormat   = "VALIDATION_FORMAT"   // Invalid field format
	CodeLength   = "VALIDATION_LENGTH"   // String/slice length validation
	CodeRange    = "VALIDATION_RANGE"    // Numeric range validation
	CodeType     = "VALIDATION_TYPE"     // Type validation (int, float, ident)
	CodeCustom   = "VALIDATION_CUSTOM"   // Custom validation rules

	// Structural consistency findings
	CodeDuplicateName      = "VALIDATION_DUPLICATE_NAME"      // Name collides with an earlier definition
	CodeUndefinedReference = "VALIDATION_UNDEFINED_REFERENCE" // Reference to a name with no definition
	CodeIndexOutOfRange    = "VALIDATION_INDEX_OUT_OF_RANGE"  // Atom index outside the moleculetype range
	CodeSectionOrder       = "VALIDATION_SECTION_ORDER"       // Entry or subsection outside a governing section
	CodeOccurrence         = "VALIDATION_OCCURRENCE"          // Section appears more often than allowed
)

// Validator defines the interface for all validation functions
type Validator interface {
	// Validate performs validation on a value and returns a structured result
	Validate(value interface{}) ValidationResult

	// ValidateWithContext performs validation with context for cancellation
	ValidateWithContext(ctx context.Context, value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidateWithContext implements context-aware validation for ValidatorFunc
func (f ValidatorFunc) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	if ctx != nil {
		select {
		case <-ctx.Done():
			return NewValidationError(CodeCustom, ctx.Err().Error())
		default:
		}
	}
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid   bool                   `json:"valid"`             // Whether validation passed
	Errors  []ValidationError      `json:"errors,omitempty"`  // Detailed error information
	Context map[string]interface{} `json:"context,omitempty"` // Additional context data
}

// ValidationError represents a single validation finding with rich context
type ValidationError struct {
	Code     string                 `json:"code"`               // Standardized error code
	Field    string                 `json:"field,omitempty"`    // Field name being validated
	Message  string                 `json:"message"`            // Human-readable error message
	Value    interface{}            `json:"value,omitempty"`    // Actual value that failed validation
	Context  map[string]interface{} `json:"context,omitempty"`  // Additional error context
	Expected interface{}            `json:"expected,omitempty"` // Expected value or format
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{
		Valid:   true,
		Errors:  nil,
		Context: nil,
	}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Message: message,
			},
		},
	}
}

// NewValidationErrorWithField creates a validation error for a specific field
func NewValidationErrorWithField(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{
				Code:    code,
				Field:   field,
				Message: message,
				Value:   value,
			},
		},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Message: message,
	})
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages as a slice of strings
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// ErrorCodes returns all error codes as a slice of strings
func (r ValidationResult) ErrorCodes() []string {
	codes := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		codes[i] = err.Code
	}
	return codes
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the validation result to a standard error
// Returns nil if validation passed, or an error with detailed information
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	if len(r.Errors) == 0 {
		return gterror.New("validation failed").
			WithCode(gterror.CodeValidationFailed)
	}

	firstError := r.Errors[0]
	err := gterror.New(firstError.Message).
		WithCode(gterror.CodeValidationFailed).
		WithDetail("validationCode", firstError.Code)

	// Add field information if available
	if firstError.Field != "" {
		err = err.WithDetail("field", firstError.Field)
	}

	// Add actual value if available
	if firstError.Value != nil {
		err = err.WithDetail("value", firstError.Value)
	}

	// Add expected value if available
	if firstError.Expected != nil {
		err = err.WithDetail("expected", firstError.Expected)
	}

	// Add context information
	for key, value := range firstError.Context {
		err = err.WithDetail(key, value)
	}

	// If multiple errors, add them as details
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
		err = err.WithDetail("allMessages", r.ErrorMessages())
	}

	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	var parts []string
	parts = append(parts, "ValidationResult{valid: false")

	if len(r.Errors) > 0 {
		parts = append(parts, fmt.Sprintf("errors: %d", len(r.Errors)))

		// Add first error details
		firstError := r.Errors[0]
		parts = append(parts, fmt.Sprintf("first: %s", firstError.Message))
		if firstError.Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", firstError.Field))
		}
	}

	parts = append(parts, "}")
	return strings.Join(parts, ", ")
}

// String returns a human-readable representation of a validation error
func (e ValidationError) String() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field:%s", e.Field))
	}

	parts = append(parts, fmt.Sprintf("code:%s", e.Code))
	parts = append(parts, fmt.Sprintf("message:%s", e.Message))

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value:%v", e.Value))
	}

	if e.Expected != nil {
		parts = append(parts, fmt.Sprintf("expected:%v", e.Expected))
	}

	return fmt.Sprintf("ValidationError{%s}", strings.Join(parts, ", "))
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()

	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}

		// Merge context information
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}

	return combined
}
