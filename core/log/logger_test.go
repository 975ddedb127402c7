// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the main logger functionality including configuration,
//              context management, and integration with formatters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with comprehensive logger tests

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	gterror "github.com/msto63/gmxtop/core/error"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	config := Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	}

	logger := NewWithConfig(config)

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}

	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}

	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}

	// Original logger should be unchanged
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerWithSessionAndSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	}).WithSessionID("session-42").WithSource("topol.top")

	logger.Info("parsing started")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["session_id"] != "session-42" {
		t.Errorf("session_id = %v, want session-42", decoded["session_id"])
	}

	if decoded["source"] != "topol.top" {
		t.Errorf("source = %v, want topol.top", decoded["source"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("should be filtered")
	logger.Info("should be filtered too")

	if buf.Len() != 0 {
		t.Errorf("filtered levels produced output: %s", buf.String())
	}

	logger.Warn("should appear")

	if !strings.Contains(buf.String(), "should appear") {
		t.Error("warn message missing from output")
	}
}

func TestLoggerAuditAlwaysLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelFatal,
		Format: FormatText,
		Output: &buf,
	})

	logger.Audit("molecule removed")

	if !strings.Contains(buf.String(), "molecule removed") {
		t.Error("audit message should bypass level filtering")
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	}).WithField("component", "parser").WithFields(Fields{"pass": 2})

	logger.Info("test")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["component"] != "parser" {
		t.Errorf("component = %v, want parser", decoded["component"])
	}

	if decoded["pass"] != 2.0 {
		t.Errorf("pass = %v, want 2", decoded["pass"])
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		severity  gterror.Severity
		wantLevel string
	}{
		{"low severity logs info", gterror.SeverityLow, "info"},
		{"medium severity logs warn", gterror.SeverityMedium, "warn"},
		{"high severity logs error", gterror.SeverityHigh, "error"},
		{"critical severity logs error", gterror.SeverityCritical, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{
				Level:  LevelTrace,
				Format: FormatJSON,
				Output: &buf,
			})

			err := gterror.New("something went wrong").
				WithSeverity(tt.severity).
				WithOperation("parse")
			logger.LogError(err)

			var decoded map[string]interface{}
			if jsonErr := json.Unmarshal(buf.Bytes(), &decoded); jsonErr != nil {
				t.Fatalf("output is not valid JSON: %v", jsonErr)
			}

			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}

			if decoded["error_operation"] != "parse" {
				t.Errorf("error_operation = %v, want parse", decoded["error_operation"])
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelTrace,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.LogError(nil)

	if buf.Len() != 0 {
		t.Error("LogError(nil) should not produce output")
	}
}

func TestLoggerClone(t *testing.T) {
	base := New().WithField("shared", "yes")
	derived := base.WithField("extra", "also")

	if _, ok := base.contextFields["extra"]; ok {
		t.Error("derived field leaked into base logger")
	}

	if derived.contextFields["shared"] != "yes" {
		t.Error("derived logger should inherit base fields")
	}
}

func TestIsLevelEnabled(t *testing.T) {
	logger := New().WithLevel(LevelWarn)

	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}

	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	custom := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatText,
		Output: &buf,
	})
	SetDefault(custom)

	Info("via default logger")

	if !strings.Contains(buf.String(), "via default logger") {
		t.Error("global Info() should use the default logger")
	}
}
