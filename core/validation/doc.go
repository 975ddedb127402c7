// Package validation provides the violation-report plumbing for gmxtop.
//
// Package: validation
// Title: Structural Validation Framework
// Description: Defines the Validator interface, the ValidationResult and
//              ValidationError types used to report consistency findings
//              without raising errors, and composable validator chains.
//              The topology consistency checker builds its violation
//              reports on these types; parse-time failures use the coded
//              errors of core/error instead.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial validation framework
//
// Usage:
//   import "github.com/msto63/gmxtop/core/validation"
//
//   result := validation.NewValidationResult()
//   result.AddFieldError(validation.CodeRange, "ai", "atom index out of range", 9)
//   if !result.Valid {
//       for _, e := range result.Errors {
//           fmt.Println(e)
//       }
//   }
package validation
