// File: entry_test.go
// Title: Log Entry Tests
// Description: Tests for log entry creation, field helpers, and entry
//              manipulation methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with comprehensive entry tests

package log

import (
	"errors"
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry(LevelInfo, "test message")

	if entry == nil {
		t.Fatal("NewEntry() returned nil")
	}

	if entry.Level != LevelInfo {
		t.Errorf("Level = %v, want %v", entry.Level, LevelInfo)
	}

	if entry.Message != "test message" {
		t.Errorf("Message = %q, want %q", entry.Message, "test message")
	}

	if entry.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}

	if entry.Fields == nil {
		t.Error("Fields should be initialized")
	}
}

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		key    string
		want   interface{}
	}{
		{"Field", Field("key", "value"), "key", "value"},
		{"Int", Int("count", 42), "count", 42},
		{"Int64", Int64("big", int64(1 << 40)), "big", int64(1 << 40)},
		{"Float64", Float64("ratio", 0.5), "ratio", 0.5},
		{"String", String("name", "water"), "name", "water"},
		{"Bool", Bool("resolved", true), "resolved", true},
		{"Any", Any("data", []int{1, 2}), "data", nil}, // Existence only
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.fields[tt.key]
			if !ok {
				t.Fatalf("field %q missing", tt.key)
			}
			if tt.want != nil && v != tt.want {
				t.Errorf("field %q = %v, want %v", tt.key, v, tt.want)
			}
		})
	}
}

func TestErrField(t *testing.T) {
	err := errors.New("boom")
	fields := Err(err)

	if fields["error"] != err {
		t.Errorf("Err() field = %v, want %v", fields["error"], err)
	}
}

func TestFieldsMerge(t *testing.T) {
	a := Fields{"x": 1, "y": 2}
	b := Fields{"y": 3, "z": 4}

	merged := a.Merge(b)

	if merged["x"] != 1 {
		t.Errorf("merged[x] = %v, want 1", merged["x"])
	}
	if merged["y"] != 3 {
		t.Errorf("merged[y] = %v, want 3 (other wins)", merged["y"])
	}
	if merged["z"] != 4 {
		t.Errorf("merged[z] = %v, want 4", merged["z"])
	}

	// Originals unchanged
	if a["y"] != 2 {
		t.Error("Merge() should not modify the receiver")
	}
}

func TestFieldsClone(t *testing.T) {
	original := Fields{"key": "value"}
	clone := original.Clone()

	clone["key"] = "changed"

	if original["key"] != "value" {
		t.Error("Clone() should create an independent copy")
	}

	var nilFields Fields
	if nilFields.Clone() != nil {
		t.Error("Clone() of nil Fields should be nil")
	}
}

func TestEntryBuilders(t *testing.T) {
	err := errors.New("test error")
	entry := NewEntry(LevelWarn, "message").
		WithField("a", 1).
		WithFields(Fields{"b": 2}).
		WithError(err).
		WithDuration(time.Second).
		WithSessionID("session-1").
		WithSource("topol.top").
		WithLogger("parser").
		WithCaller("parseLine", "scanner.go", 42)

	if entry.Fields["a"] != 1 || entry.Fields["b"] != 2 {
		t.Error("WithField/WithFields did not set fields")
	}

	if entry.Error != err {
		t.Errorf("Error = %v, want %v", entry.Error, err)
	}

	if entry.Duration != time.Second {
		t.Errorf("Duration = %v, want 1s", entry.Duration)
	}

	if entry.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want session-1", entry.SessionID)
	}

	if entry.Source != "topol.top" {
		t.Errorf("Source = %q, want topol.top", entry.Source)
	}

	if entry.Logger != "parser" {
		t.Errorf("Logger = %q, want parser", entry.Logger)
	}

	if entry.Caller == nil || entry.Caller.Line != 42 {
		t.Error("WithCaller did not set caller info")
	}
}

func TestEntryClone(t *testing.T) {
	original := NewEntry(LevelInfo, "message").
		WithField("key", "value").
		WithSessionID("session-1").
		WithCaller("fn", "file.go", 7)

	clone := original.Clone()

	if clone == original {
		t.Fatal("Clone() should return a new instance")
	}

	clone.Fields["key"] = "changed"
	clone.Caller.Line = 99

	if original.Fields["key"] != "value" {
		t.Error("Clone() fields should be independent")
	}

	if original.Caller.Line != 7 {
		t.Error("Clone() caller should be independent")
	}

	var nilEntry *Entry
	if nilEntry.Clone() != nil {
		t.Error("Clone() of nil entry should be nil")
	}
}
