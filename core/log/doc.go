// Package log provides structured logging capabilities for the gmxtop library.
//
// Package: log
// Title: gmxtop Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels, and
//              tight integration with the gmxtop error handling system. It
//              supports performance timing for parse operations and carries
//              parse session and source file context through all log entries.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with parse session IDs, source files, and custom fields
// - Integration with gmxtop error system for automatic error logging
// - Performance metrics and timing measurements for parse phases
// - Audit trail capabilities for structural topology mutations
// - Multiple output destinations via io.Writer
// - Optional asynchronous logging for high-volume scenarios
//
// Usage:
//   import "github.com/msto63/gmxtop/core/log"
//
//   // Create a logger with context
//   logger := log.New().
//     WithLevel(log.LevelInfo).
//     WithFormat(log.FormatJSON).
//     WithField("component", "parser").
//     WithSource("topol.top")
//
//   // Log messages with different levels
//   logger.Info("Topology parsed", log.Field("nodes", 412))
//   logger.Error("Include resolution failed", log.Err(err))
//   logger.Debug("Classifying line", log.Fields{
//     "line":    17,
//     "section": "bonds",
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("parse_topology")
//   // ... parse the file
//   timer.Stop()
//
//   // Audit logging for structural mutations
//   logger.Audit("Molecule section removed", log.Fields{
//     "moleculetype": "SOL",
//     "nodes":        129,
//   })
package log
