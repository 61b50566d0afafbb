// Package config provides configuration loading for stringhandler tools.
//
// Package: config
// Title: Configuration Management
// Description: Reads TOML or YAML configuration, resolves dot-notation keys
//              and applies environment overrides, then maps the result onto the
//              typed Settings consumed by the CLI and the transliteration table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Example configuration (TOML):
//
//	[translit]
//	language = "de"
//	tables   = ["./tables/custom.yaml"]
//
//	[random]
//	length = 24
//
//	[log]
//	level  = "debug"
//	format = "logfmt"
//
// Every key can be overridden from the environment, for example
// STRHANDLER_TRANSLIT_LANGUAGE=da or STRHANDLER_LOG_LEVEL=warn.
package config
