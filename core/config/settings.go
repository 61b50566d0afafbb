// File: settings.go
// Title: Typed stringhandler Settings
// Description: Resolves the typed settings used by the CLI and the
//              transliteration table from a Config, applying defaults and
//              validating values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	sherror "github.com/msto63/stringhandler/core/error"
	"github.com/msto63/stringhandler/core/errors"
	"github.com/msto63/stringhandler/core/log"
)

// EnvPrefix is the prefix of environment overrides (STRHANDLER_LOG_LEVEL, ...)
const EnvPrefix = "STRHANDLER"

// Configuration keys
const (
	KeyLanguage     = "translit.language"
	KeyTables       = "translit.tables"
	KeyRandomLength = "random.length"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

// Settings holds the resolved, validated settings
type Settings struct {
	Language     string
	TablePaths   []string
	RandomLength int
	LogLevel     log.Level
	LogFormat    log.Format
}

// Defaults returns the default values keyed by configuration key
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyLanguage:     "en",
		KeyRandomLength: 16,
		KeyLogLevel:     "info",
		KeyLogFormat:    "text",
	}
}

// LoadSettings loads path (empty means defaults and environment only) and
// resolves the typed settings
func LoadSettings(path string) (*Settings, error) {
	options := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  Defaults(),
	}

	var cfg *Config
	if path == "" {
		cfg = Empty(options)
	} else {
		var err error
		if cfg, err = LoadWithOptions(path, options); err != nil {
			return nil, err
		}
	}

	return FromConfig(cfg)
}

// FromConfig resolves the typed settings from cfg
func FromConfig(cfg *Config) (*Settings, error) {
	s := &Settings{
		Language:     cfg.GetString(KeyLanguage, "en"),
		TablePaths:   cfg.GetStringSlice(KeyTables),
		RandomLength: cfg.GetInt(KeyRandomLength, 16),
	}

	if s.Language == "" {
		return nil, invalid(KeyLanguage, s.Language, "a BCP 47 language tag")
	}

	if s.RandomLength < 0 {
		return nil, invalid(KeyRandomLength, s.RandomLength, "a non-negative integer")
	}

	level, err := log.ParseLevel(cfg.GetString(KeyLogLevel, "info"))
	if err != nil {
		return nil, invalid(KeyLogLevel, cfg.GetString(KeyLogLevel), "trace, debug, info, warn, error or audit")
	}
	s.LogLevel = level

	format, err := log.ParseFormat(cfg.GetString(KeyLogFormat, "text"))
	if err != nil {
		return nil, invalid(KeyLogFormat, cfg.GetString(KeyLogFormat), "json, text, console or logfmt")
	}
	s.LogFormat = format

	return s, nil
}

func invalid(key string, value interface{}, expected string) *sherror.Error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("FromConfig").
		Code(sherror.CodeInvalidConfig).
		Messagef("invalid value for %s: expected %s", key, expected).
		Detail("key", key).
		Detail("value", value).
		Build()
}
