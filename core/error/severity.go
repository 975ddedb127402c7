// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization,
//              monitoring, and alerting. Severity levels distinguish user-input
//              problems in topology files from structural misuse of the library
//              and from unrecoverable environment failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed entry lines, validation findings, unknown section names
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable include targets, invalid configuration values
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: include cycles, stale node references, internal invariant failures
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: broken runtime environment, unusable data directories
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// ShouldLog returns true if this severity level should be logged
func (s Severity) ShouldLog() bool {
	return true // All severities should be logged
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical system errors
	case CodeEnvironmentError:
		return SeverityCritical

	// High severity errors
	case CodeCircularInclude, CodeIncludeDepth, CodeStaleReference, CodeForeignNode,
		CodeInternal:
		return SeverityHigh

	// Medium severity errors
	case CodeIncludeResolution, CodeIOError, CodeTimeout, CodeInvalidOperation,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeSyntax, CodeMalformedEntry, CodeUnbalancedConditional,
		CodeDuplicateEntry, CodeDuplicateName, CodeUndefinedReference:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
