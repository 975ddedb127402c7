// Package error provides comprehensive error handling capabilities for gmxtop.
//
// Package: error
// Title: gmxtop Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, stack traces, and integration
//              with the logging system. It provides the foundation for consistent
//              error handling across all gmxtop packages, from low-level parsing
//              failures to structural integrity violations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Integration with the structured logging system
// - Error severity levels and categorization
// - Source file and parse session context for multi-file parse trees
//
// Usage:
//   import "github.com/msto63/gmxtop/core/error"
//
//   // Create a new error with context
//   err := error.New("unterminated conditional block").
//     WithCode(error.CodeUnbalancedConditional).
//     WithDetail("symbol", "POSRES").
//     WithSource("topol.top")
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "failed to parse topology").
//     WithCode(error.CodeSyntax).
//     WithOperation("parse")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeCircularInclude) {
//     // Handle include cycles specifically
//   }
package error
