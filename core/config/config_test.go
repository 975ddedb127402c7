// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for the config module covering TOML/YAML parsing,
//              environment variable injection, validation, struct binding,
//              and configuration discovery.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-11-08
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-08 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "gmxtop.toml")
		configContent := `
[parser]
resolve_includes = true
resolve_conditionals = false
max_include_depth = 32
defines = ["FLEXIBLE", "POSRES"]

[output]
timeout = "30s"
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if !cfg.GetBool("parser.resolve_includes") {
			t.Error("Expected resolve_includes true")
		}

		if cfg.GetBool("parser.resolve_conditionals", true) {
			t.Error("Expected resolve_conditionals false")
		}

		if depth := cfg.GetInt("parser.max_include_depth"); depth != 32 {
			t.Errorf("Expected max_include_depth 32, got %d", depth)
		}

		if timeout := cfg.GetDuration("output.timeout"); timeout != 30*time.Second {
			t.Errorf("Expected timeout 30s, got %v", timeout)
		}

		defines := cfg.GetStringSlice("parser.defines")
		expectedDefines := []string{"FLEXIBLE", "POSRES"}
		if len(defines) != len(expectedDefines) {
			t.Fatalf("Expected %d defines, got %d", len(expectedDefines), len(defines))
		}
		for i, define := range defines {
			if define != expectedDefines[i] {
				t.Errorf("Expected define '%s', got '%s'", expectedDefines[i], define)
			}
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "gmxtop.yaml")
		configContent := `
parser:
  resolve_includes: true
  max_include_depth: 32
  defines:
    - FLEXIBLE
    - POSRES
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if !cfg.GetBool("parser.resolve_includes") {
			t.Error("Expected resolve_includes true")
		}

		if depth := cfg.GetInt("parser.max_include_depth"); depth != 32 {
			t.Errorf("Expected max_include_depth 32, got %d", depth)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load("nonexistent.toml")
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("empty file path", func(t *testing.T) {
		_, err := Load("")
		if err == nil {
			t.Error("Expected error for empty file path")
		}
	})

	t.Run("invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "broken.toml")
		if err := os.WriteFile(configPath, []byte("[parser\nbroken"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		_, err := Load(configPath)
		if err == nil {
			t.Error("Expected error for invalid TOML")
		}
	})
}

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		wantErr bool
	}{
		{
			name:    "valid TOML",
			content: "[parser]\nignore_comments = true\n",
			format:  FormatTOML,
			wantErr: false,
		},
		{
			name:    "valid YAML",
			content: "parser:\n  ignore_comments: true\n",
			format:  FormatYAML,
			wantErr: false,
		},
		{
			name:    "auto defaults to TOML",
			content: "[parser]\nignore_comments = true\n",
			format:  FormatAuto,
			wantErr: false,
		},
		{
			name:    "invalid content",
			content: "[parser\n=broken",
			format:  FormatTOML,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !cfg.GetBool("parser.ignore_comments") {
				t.Error("Expected ignore_comments true")
			}
		})
	}
}

func TestLoadWithOptions(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("defaults applied", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "partial.toml")
		if err := os.WriteFile(configPath, []byte("[parser]\nresolve_includes = false\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadWithOptions(configPath, LoadOptions{
			Format: FormatAuto,
			Defaults: map[string]interface{}{
				"parser.max_include_depth": 32,
			},
		})
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		// Explicit value wins over default
		if cfg.GetBool("parser.resolve_includes", true) {
			t.Error("Expected resolve_includes false")
		}

		// Default fills the gap
		if depth := cfg.GetInt("parser.max_include_depth"); depth != 32 {
			t.Errorf("Expected default max_include_depth 32, got %d", depth)
		}
	})

	t.Run("environment override", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "env.toml")
		if err := os.WriteFile(configPath, []byte("[parser]\nresolve_includes = false\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		os.Setenv("GMXTESTENV_PARSER_RESOLVE_INCLUDES", "true")
		defer os.Unsetenv("GMXTESTENV_PARSER_RESOLVE_INCLUDES")

		cfg, err := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: "GMXTESTENV",
		})
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if !cfg.GetBool("parser.resolve_includes") {
			t.Error("Expected environment variable to override file value")
		}
	})
}

func TestConfigAccessors(t *testing.T) {
	cfg, err := LoadFromString(`
[parser]
max_include_depth = 16
strict = false
defines = ["HEAVY_H"]

[render]
float_width = 10.5
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	t.Run("defaults for missing keys", func(t *testing.T) {
		if got := cfg.GetString("parser.missing", "fallback"); got != "fallback" {
			t.Errorf("Expected 'fallback', got '%s'", got)
		}
		if got := cfg.GetInt("parser.missing", 7); got != 7 {
			t.Errorf("Expected 7, got %d", got)
		}
		if got := cfg.GetBool("parser.missing", true); !got {
			t.Error("Expected true")
		}
		if got := cfg.GetFloat("parser.missing", 1.5); got != 1.5 {
			t.Errorf("Expected 1.5, got %g", got)
		}
	})

	t.Run("float access", func(t *testing.T) {
		if got := cfg.GetFloat("render.float_width"); got != 10.5 {
			t.Errorf("Expected 10.5, got %g", got)
		}
	})

	t.Run("short aliases", func(t *testing.T) {
		if cfg.I("parser.max_include_depth") != cfg.GetInt("parser.max_include_depth") {
			t.Error("I alias should match GetInt")
		}
		if cfg.B("parser.strict") != cfg.GetBool("parser.strict") {
			t.Error("B alias should match GetBool")
		}
		if len(cfg.SS("parser.defines")) != 1 {
			t.Error("SS alias should return one define")
		}
	})

	t.Run("has and set", func(t *testing.T) {
		if !cfg.Has("parser.max_include_depth") {
			t.Error("Expected parser.max_include_depth to exist")
		}
		if cfg.Has("parser.nonexistent") {
			t.Error("Expected parser.nonexistent to be missing")
		}

		cfg.Set("parser.runtime_value", 42)
		if got := cfg.GetInt("parser.runtime_value"); got != 42 {
			t.Errorf("Expected 42, got %d", got)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		cfg, err := LoadFromString(`
[parser]
max_include_depth = 32
source = "file"
`, FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		rules := ValidationRules{
			"parser.max_include_depth": {
				Required: true,
				Type:     "int",
				Min:      int64(1),
				Max:      int64(1024),
			},
			"parser.source": {
				Type:    "string",
				Pattern: "^(file|string|tree)$",
			},
		}

		result := cfg.Validate(rules)
		if !result.Valid {
			t.Errorf("Expected valid config, got errors: %v", result.Errors)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		cfg, err := LoadFromString("[parser]\n", FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		rules := ValidationRules{
			"parser.max_include_depth": {Required: true, Type: "int"},
		}

		result := cfg.Validate(rules)
		if result.Valid {
			t.Error("Expected invalid config for missing required field")
		}
	})

	t.Run("default applied for missing field", func(t *testing.T) {
		cfg, err := LoadFromString("[parser]\n", FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		rules := ValidationRules{
			"parser.max_include_depth": {Type: "int", Default: 32},
		}

		result := cfg.Validate(rules)
		if !result.Valid {
			t.Errorf("Expected valid config, got errors: %v", result.Errors)
		}
		if got := cfg.GetInt("parser.max_include_depth"); got != 32 {
			t.Errorf("Expected default 32, got %d", got)
		}
	})

	t.Run("value out of range", func(t *testing.T) {
		cfg, err := LoadFromString("[parser]\nmax_include_depth = 5000\n", FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		rules := ValidationRules{
			"parser.max_include_depth": {
				Type: "int",
				Max:  int64(1024),
			},
		}

		result := cfg.Validate(rules)
		if result.Valid {
			t.Error("Expected invalid config for out-of-range value")
		}
	})

	t.Run("pattern mismatch", func(t *testing.T) {
		cfg, err := LoadFromString(`[parser]`+"\n"+`source = "socket"`+"\n", FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		rules := ValidationRules{
			"parser.source": {
				Type:    "string",
				Pattern: "^(file|string|tree)$",
			},
		}

		result := cfg.Validate(rules)
		if result.Valid {
			t.Error("Expected invalid config for pattern mismatch")
		}
	})
}

func TestBindToStruct(t *testing.T) {
	type parserConfig struct {
		ResolveIncludes     bool     `config:"resolve_includes"`
		ResolveConditionals bool     `config:"resolve_conditionals"`
		MaxIncludeDepth     int      `config:"max_include_depth"`
		Defines             []string `config:"defines"`
		Unused              string   `config:"-"`
	}

	cfg, err := LoadFromString(`
[parser]
resolve_includes = true
resolve_conditionals = false
max_include_depth = 16
defines = ["FLEXIBLE"]
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	var pc parserConfig
	if err := cfg.BindToStruct("parser", &pc); err != nil {
		t.Fatalf("BindToStruct failed: %v", err)
	}

	if !pc.ResolveIncludes {
		t.Error("Expected ResolveIncludes true")
	}
	if pc.MaxIncludeDepth != 16 {
		t.Errorf("Expected MaxIncludeDepth 16, got %d", pc.MaxIncludeDepth)
	}
	if len(pc.Defines) != 1 || pc.Defines[0] != "FLEXIBLE" {
		t.Errorf("Expected defines [FLEXIBLE], got %v", pc.Defines)
	}

	t.Run("not a pointer", func(t *testing.T) {
		if err := cfg.BindToStruct("parser", parserConfig{}); err == nil {
			t.Error("Expected error for non-pointer target")
		}
	})

	t.Run("missing section", func(t *testing.T) {
		var pc parserConfig
		if err := cfg.BindToStruct("missing", &pc); err == nil {
			t.Error("Expected error for missing section")
		}
	})
}

func TestDiscovery(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("discover via environment variable", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "discovered.toml")
		if err := os.WriteFile(configPath, []byte("[parser]\nresolve_includes = true\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		os.Setenv("GMXTESTDISC_CONFIG", configPath)
		defer os.Unsetenv("GMXTESTDISC_CONFIG")

		options := DefaultDiscoveryOptions()
		options.EnvPrefix = "GMXTESTDISC"

		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if cfg == nil {
			t.Fatal("Expected discovered config, got nil")
		}
		if !cfg.GetBool("parser.resolve_includes") {
			t.Error("Expected resolve_includes true")
		}
	})

	t.Run("no config found is not an error when optional", func(t *testing.T) {
		options := DefaultDiscoveryOptions()
		options.Paths = []string{filepath.Join(tempDir, "empty")}
		options.EnvPrefix = "GMXNOSUCH"
		options.Required = false

		cfg, err := Discover(options)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg == nil {
			t.Fatal("Expected empty config, got nil")
		}
	})

	t.Run("required config missing is an error", func(t *testing.T) {
		options := DefaultDiscoveryOptions()
		options.Paths = []string{filepath.Join(tempDir, "empty")}
		options.EnvPrefix = "GMXNOSUCH"
		options.Required = true

		if _, err := Discover(options); err == nil {
			t.Error("Expected error for missing required config")
		}
	})
}

func TestWatch(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "gmxtop.toml")

	if err := os.WriteFile(configPath, []byte("[parser]\nmax_include_depth = 16\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadWithWatch(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	defer cfg.StopWatching()

	if !cfg.IsWatching() {
		t.Fatal("Expected watching to be active")
	}

	changed := make(chan *Config, 1)
	cfg.OnChange(func(oldConfig, newConfig *Config) {
		changed <- newConfig
	})

	if err := os.WriteFile(configPath, []byte("[parser]\nmax_include_depth = 64\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite test config: %v", err)
	}

	// Drive the reload directly instead of waiting for the poll ticker.
	if err := cfg.reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	select {
	case newConfig := <-changed:
		if depth := newConfig.GetInt("parser.max_include_depth"); depth != 64 {
			t.Errorf("Expected reloaded max_include_depth 64, got %d", depth)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Change handler was not called")
	}

	if depth := cfg.GetInt("parser.max_include_depth"); depth != 64 {
		t.Errorf("Expected updated max_include_depth 64, got %d", depth)
	}

	cfg.StopWatching()
	if cfg.IsWatching() {
		t.Error("Expected watching to be stopped")
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatAuto, "auto"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.expected)
		}
	}
}
