// File: level_test.go
// Title: Log Level Tests
// Description: Tests for log level functionality including string representation,
//              parsing, priority, and filtering logic.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial implementation with comprehensive level tests

package log

import (
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{LevelAudit, "audit"},
		{Level(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShortString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRC"},
		{LevelDebug, "DBG"},
		{LevelInfo, "INF"},
		{LevelWarn, "WRN"},
		{LevelError, "ERR"},
		{LevelFatal, "FTL"},
		{LevelAudit, "AUD"},
		{Level(999), "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.ShortString(); got != tt.want {
				t.Errorf("Level.ShortString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		minLevel Level
		want     bool
	}{
		{"same level", LevelInfo, LevelInfo, true},
		{"higher level", LevelError, LevelInfo, true},
		{"lower level", LevelDebug, LevelInfo, false},
		{"trace below debug", LevelTrace, LevelDebug, false},
		{"audit always logged", LevelAudit, LevelFatal, true},
		{"fatal above error", LevelFatal, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ShouldLog(tt.minLevel); got != tt.want {
				t.Errorf("ShouldLog(%v) = %v, want %v", tt.minLevel, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"audit", LevelAudit, false},
		{"INFO", LevelInfo, false},    // Case insensitive
		{"  dbg  ", LevelDebug, false}, // Short form with trimming
		{"invalid", LevelInfo, true},  // Returns default with error
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()

	if len(levels) != 7 {
		t.Errorf("AllLevels() returned %d levels, want 7", len(levels))
	}

	// Verify ordering from most to least verbose
	for i := 1; i < len(levels); i++ {
		if levels[i].Priority() <= levels[i-1].Priority() {
			t.Errorf("AllLevels()[%d] priority %d not greater than previous %d",
				i, levels[i].Priority(), levels[i-1].Priority())
		}
	}
}

func TestDefaultLevels(t *testing.T) {
	if DefaultLevel() != LevelInfo {
		t.Errorf("DefaultLevel() = %v, want %v", DefaultLevel(), LevelInfo)
	}

	if DevelopmentLevel() != LevelDebug {
		t.Errorf("DevelopmentLevel() = %v, want %v", DevelopmentLevel(), LevelDebug)
	}
}
