// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests TOML/YAML parsing, dot-notation access, environment
//              overrides, defaults and typed settings resolution.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	sherror "github.com/msto63/stringhandler/core/error"
	"github.com/msto63/stringhandler/core/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, "strhandler.toml", `
[translit]
language = "de"
tables = ["a.yaml", "b.toml"]

[random]
length = 24
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v", cfg.Format())
		}
		if got := cfg.GetString("translit.language"); got != "de" {
			t.Errorf("translit.language = %q", got)
		}
		if got := cfg.GetInt("random.length"); got != 24 {
			t.Errorf("random.length = %d", got)
		}
		if got := cfg.GetStringSlice("translit.tables"); !reflect.DeepEqual(got, []string{"a.yaml", "b.toml"}) {
			t.Errorf("translit.tables = %v", got)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, "strhandler.yml", "translit:\n  language: da\nlog:\n  verbose: true\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v", cfg.Format())
		}
		if got := cfg.GetString("translit.language"); got != "da" {
			t.Errorf("translit.language = %q", got)
		}
		if !cfg.GetBool("log.verbose") {
			t.Error("log.verbose should be true")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !sherror.HasCode(err, sherror.CodeNotFound) {
			t.Errorf("expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !sherror.HasCode(err, sherror.CodeMissingConfig) {
			t.Errorf("expected MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[translit\nlanguage = ")
		_, err := Load(path)
		if !sherror.HasCode(err, sherror.CodeInvalidConfig) {
			t.Errorf("expected INVALID_CONFIG, got %v", err)
		}
	})
}

func TestDefaultsAndSet(t *testing.T) {
	cfg, err := LoadFromString(`[translit]
language = "sv"
`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	cfg.applyDefaults(map[string]interface{}{"translit.language": "en", "random.length": 8})

	if got := cfg.GetString("translit.language"); got != "sv" {
		t.Errorf("default overwrote file value: %q", got)
	}
	if got := cfg.GetInt("random.length"); got != 8 {
		t.Errorf("random.length = %d, want default 8", got)
	}

	cfg.Set("log.level", "debug")
	if !cfg.Has("log.level") || cfg.GetString("log.level") != "debug" {
		t.Error("Set() value not readable")
	}

	all := cfg.GetAll()
	all["translit"].(map[string]interface{})["language"] = "xx"
	if cfg.GetString("translit.language") != "sv" {
		t.Error("GetAll() returned shared data")
	}

	if cfg.GetString("does.not.exist", "fallback") != "fallback" {
		t.Error("missing key should use the default")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("STRHANDLER_TRANSLIT_LANGUAGE", "nb")
	t.Setenv("STRHANDLER_TRANSLIT_TABLES", "x.yaml, y.yaml")
	t.Setenv("STRHANDLER_RANDOM_LENGTH", "40")

	cfg := Empty(LoadOptions{EnvPrefix: EnvPrefix, Defaults: Defaults()})

	if got := cfg.GetString(KeyLanguage); got != "nb" {
		t.Errorf("language = %q, want nb", got)
	}
	if got := cfg.GetStringSlice(KeyTables); !reflect.DeepEqual(got, []string{"x.yaml", "y.yaml"}) {
		t.Errorf("tables = %v", got)
	}
	if got := cfg.GetInt(KeyRandomLength); got != 40 {
		t.Errorf("random.length = %d", got)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadSettings("")
		if err != nil {
			t.Fatalf("LoadSettings() error = %v", err)
		}
		want := &Settings{Language: "en", RandomLength: 16, LogLevel: log.LevelInfo, LogFormat: log.FormatText}
		if !reflect.DeepEqual(s, want) {
			t.Errorf("LoadSettings() = %+v, want %+v", s, want)
		}
	})

	t.Run("from file", func(t *testing.T) {
		path := writeFile(t, "s.yaml", "translit:\n  language: de\n  tables: [custom.yaml]\nlog:\n  level: debug\n  format: logfmt\n")
		s, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings() error = %v", err)
		}
		if s.Language != "de" || s.LogLevel != log.LevelDebug || s.LogFormat != log.FormatLogfmt {
			t.Errorf("unexpected settings %+v", s)
		}
		if !reflect.DeepEqual(s.TablePaths, []string{"custom.yaml"}) {
			t.Errorf("TablePaths = %v", s.TablePaths)
		}
	})

	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad format", "[log]\nformat = \"xml\"\n"},
		{"negative length", "[random]\nlength = -3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "s.toml", tt.content)
			_, err := LoadSettings(path)
			if !sherror.HasCode(err, sherror.CodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", err)
			}
		})
	}
}
