// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across gmxtop. These codes enable structured error handling, precise
//              failure reporting for parse pipelines, and error monitoring.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for gmxtop
const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeTimeout          Code = "TIMEOUT"

	// Parsing
	CodeSyntax                Code = "SYNTAX"
	CodeMalformedEntry        Code = "MALFORMED_ENTRY"
	CodeUnbalancedConditional Code = "UNBALANCED_CONDITIONAL"

	// Include resolution
	CodeCircularInclude   Code = "CIRCULAR_INCLUDE"
	CodeIncludeResolution Code = "INCLUDE_RESOLUTION"
	CodeIncludeDepth      Code = "INCLUDE_DEPTH"

	// Node list structure
	CodeStaleReference Code = "STALE_REFERENCE"
	CodeForeignNode    Code = "FOREIGN_NODE"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation and consistency
	CodeValidationFailed   Code = "VALIDATION_FAILED"
	CodeRequiredField      Code = "REQUIRED_FIELD"
	CodeInvalidFormat      Code = "INVALID_FORMAT"
	CodeValueOutOfRange    Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength      Code = "INVALID_LENGTH"
	CodeDuplicateName      Code = "DUPLICATE_NAME"
	CodeUndefinedReference Code = "UNDEFINED_REFERENCE"

	// File access
	CodeIOError Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidOperation, CodeTimeout,
		CodeSyntax, CodeMalformedEntry, CodeUnbalancedConditional,
		CodeCircularInclude, CodeIncludeResolution, CodeIncludeDepth,
		CodeStaleReference, CodeForeignNode, CodeDuplicateEntry,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeDuplicateName, CodeUndefinedReference,
		CodeIOError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeMalformedEntry, CodeUnbalancedConditional:
		return "parsing"
	case CodeCircularInclude, CodeIncludeResolution, CodeIncludeDepth:
		return "include"
	case CodeStaleReference, CodeForeignNode, CodeDuplicateEntry:
		return "structure"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange,
		CodeInvalidLength, CodeDuplicateName, CodeUndefinedReference:
		return "validation"
	case CodeIOError:
		return "io"
	default:
		return "generic"
	}
}
