// File: error_test.go
// Title: Error Module Tests
// Description: Comprehensive tests for the error module covering all functionality
//              including error creation, wrapping, codes, severity, and metadata.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with comprehensive test coverage

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap gmxtop error",
			err:     New("original parse error").WithCode(CodeMalformedEntry),
			message: "wrapper message",
			wantMsg: "wrapper message: original parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			// Test that gmxtop error properties are preserved
			if gtErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != gtErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), gtErr.Code())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	// Test error messages
	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	// Test unwrapping
	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	// Test root cause
	rootCause := top.RootCause()
	if rootCause != original {
		t.Errorf("RootCause() = %v, want %v", rootCause, original)
	}
}

func TestWrapPreservesSourceContext(t *testing.T) {
	inner := New("missing include target").
		WithCode(CodeIncludeResolution).
		WithSource("tip3p.itp").
		WithSession("session-1")

	wrapped := Wrap(inner, "failed to resolve includes")

	if wrapped.Source() != "tip3p.itp" {
		t.Errorf("Source() = %q, want %q", wrapped.Source(), "tip3p.itp")
	}

	if wrapped.Session() != "session-1" {
		t.Errorf("Session() = %q, want %q", wrapped.Session(), "session-1")
	}
}

func TestWithCode(t *testing.T) {
	err := New("test error").WithCode(CodeCircularInclude)

	if err.Code() != CodeCircularInclude {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeCircularInclude)
	}

	// Should auto-set severity based on code
	expectedSeverity := GetSeverityFromCode(CodeCircularInclude)
	if err.Severity() != expectedSeverity {
		t.Errorf("Severity() = %v, want %v", err.Severity(), expectedSeverity)
	}
}

func TestWithSeverity(t *testing.T) {
	err := New("test error").WithSeverity(SeverityCritical)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}

	// Explicit severity should survive a later WithCode
	err = New("test error").WithSeverity(SeverityCritical).WithCode(CodeMalformedEntry)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() after WithCode = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetails(t *testing.T) {
	err := New("test error").
		WithDetail("line", 42).
		WithDetails(map[string]interface{}{
			"section": "bonds",
			"fields":  3,
		})

	details := err.Details()

	if details["line"] != 42 {
		t.Errorf("Details()[line] = %v, want 42", details["line"])
	}

	if details["section"] != "bonds" {
		t.Errorf("Details()[section] = %v, want bonds", details["section"])
	}

	if details["fields"] != 3 {
		t.Errorf("Details()[fields] = %v, want 3", details["fields"])
	}

	// Returned map must be a copy
	details["line"] = 99
	if err.Details()["line"] != 42 {
		t.Error("Details() should return a copy, not the internal map")
	}
}

func TestWithOperationAndContext(t *testing.T) {
	err := New("test error").
		WithOperation("parse").
		WithContext("topology reading").
		WithSource("topol.top").
		WithSession("abc-123")

	if err.Operation() != "parse" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "parse")
	}

	if err.Context() != "topology reading" {
		t.Errorf("Context() = %q, want %q", err.Context(), "topology reading")
	}

	if err.Source() != "topol.top" {
		t.Errorf("Source() = %q, want %q", err.Source(), "topol.top")
	}

	if err.Session() != "abc-123" {
		t.Errorf("Session() = %q, want %q", err.Session(), "abc-123")
	}
}

func TestErrorString(t *testing.T) {
	err := New("parse failed").
		WithCode(CodeMalformedEntry).
		WithOperation("classify").
		WithSource("ion.top")

	str := err.String()

	for _, want := range []string{
		"Error: parse failed",
		"Code: MALFORMED_ENTRY",
		"Operation: classify",
		"Source: ion.top",
	} {
		if !strings.Contains(str, want) {
			t.Errorf("String() missing %q in:\n%s", want, str)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("include not found").
		WithCode(CodeIncludeResolution).
		WithDetail("path", "tip3p.itp").
		WithSource("topol.top")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("MarshalJSON() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal() error = %v", jsonErr)
	}

	if decoded["message"] != "include not found" {
		t.Errorf("message = %v, want %q", decoded["message"], "include not found")
	}

	if decoded["code"] != "INCLUDE_RESOLUTION" {
		t.Errorf("code = %v, want INCLUDE_RESOLUTION", decoded["code"])
	}

	if decoded["source"] != "topol.top" {
		t.Errorf("source = %v, want topol.top", decoded["source"])
	}
}

func TestChainDepthLimit(t *testing.T) {
	err := error(errors.New("root"))
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, "layer")
	}

	gtErr, ok := err.(*Error)
	if !ok {
		t.Fatal("expected *Error")
	}

	// Chain must have been truncated, not grown unbounded
	if depth := getErrorChainDepth(gtErr); depth > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", depth, MaxErrorChainDepth+1)
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New("test").WithCode(CodeStaleReference),
			code: CodeStaleReference,
			want: true,
		},
		{
			name: "non-matching code",
			err:  New("test").WithCode(CodeStaleReference),
			code: CodeCircularInclude,
			want: false,
		},
		{
			name: "standard error",
			err:  errors.New("test"),
			code: CodeUnknown,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	gtErr := New("test").WithCode(CodeUnbalancedConditional)

	if got := GetCode(gtErr); got != CodeUnbalancedConditional {
		t.Errorf("GetCode() = %v, want %v", got, CodeUnbalancedConditional)
	}

	if got := GetCode(errors.New("std")); got != CodeUnknown {
		t.Errorf("GetCode(std) = %v, want %v", got, CodeUnknown)
	}

	if got := GetSeverity(gtErr); got != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityLow)
	}

	if got := GetSeverity(errors.New("std")); got != SeverityMedium {
		t.Errorf("GetSeverity(std) = %v, want %v", got, SeverityMedium)
	}
}
