// Package log provides structured logging for stringhandler tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logger with JSON, text, console and logfmt
//              output. Loggers are immutable: every With* call returns a copy,
//              so a configured logger can be shared between goroutines.
//              The string utilities themselves never log; the transliteration
//              table and the CLI do.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//	    WithName("translit")
//	logger.Debug("table loaded", log.Fields{"language": "de", "entries": 7})
package log
