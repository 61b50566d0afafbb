// File: logger_test.go
// Title: Unit Tests for the Logger
// Description: Tests level filtering, immutable cloning, the formatters and
//              severity based error logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	sherror "github.com/msto63/stringhandler/core/error"
)

func newTestLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(FormatText, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")
	logger.Audit("shown audit")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below warn were written:\n%s", out)
	}
	for _, want := range []string{"[WRN] shown warn", "[ERR] shown error", "[AUD] shown audit"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWithIsImmutable(t *testing.T) {
	base, buf := newTestLogger(FormatLogfmt, LevelInfo)
	derived := base.WithName("translit").WithField("language", "de").WithCorrelationID("cid-1")

	base.Info("from base")
	derived.Info("from derived")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if strings.Contains(lines[0], "translit") || strings.Contains(lines[0], "language") {
		t.Errorf("base logger picked up derived context: %s", lines[0])
	}
	for _, want := range []string{"logger=translit", `language="de"`, "correlation_id=cid-1"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("derived line missing %q: %s", want, lines[1])
		}
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON, LevelDebug)
	logger.WithName("cli").Debug("table loaded", Fields{"entries": 7})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["level"] != "debug" || decoded["message"] != "table loaded" || decoded["logger"] != "cli" {
		t.Errorf("unexpected entry: %v", decoded)
	}
	if decoded["entries"] != float64(7) {
		t.Errorf("entries = %v", decoded["entries"])
	}
}

func TestLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", sherror.New("bad tag").WithCode(sherror.CodeLookup), "info"},
		{"medium severity", sherror.New("fallback"), "warn"},
		{"high severity", sherror.New("config").WithCode(sherror.CodeConfigError), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(FormatJSON, LevelTrace)
			logger.LogError(tt.err)

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorFields(t *testing.T) {
	logger, buf := newTestLogger(FormatLogfmt, LevelTrace)
	err := sherror.New("no table").
		WithCode(sherror.CodeLookup).
		WithOperation("translit.Transliterate").
		WithDetail("language", "ja")

	logger.LogError(err)
	logger.LogError(nil)

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("LogError(nil) should not write, got %q", out)
	}
	for _, want := range []string{`error_code="LOOKUP_ERROR"`, `error_language="ja"`, `error_operation="translit.Transliterate"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestTextFormatterDeterministicFields(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "msg")
	entry.Fields = Fields{"b": 2, "a": 1, "c": 3}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[INF] msg [a=1 b=2 c=3]\n" {
		t.Errorf("Format() = %q", out)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	f.TextFormatter.DisableTimestamp = true
	entry := &Entry{Timestamp: time.Now(), Level: LevelError, Message: "boom"}

	out, _ := f.Format(entry)
	if string(out) != "\033[31m[ERR] boom\033[0m\n" {
		t.Errorf("Format() = %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(entry)
	if string(out) != "[ERR] boom\n" {
		t.Errorf("Format() without colors = %q", out)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{"trace": LevelTrace, "DBG": LevelDebug, " warning ": LevelWarn, "err": LevelError}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}

	formats := map[string]Format{"json": FormatJSON, "Text": FormatText, "console": FormatConsole, "logfmt": FormatLogfmt}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil || err.Error() != "invalid format: xml" {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}

func TestConcurrentLogging(t *testing.T) {
	logger, buf := newTestLogger(FormatLogfmt, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.WithField("worker", i).Info("tick")
		}(i)
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 20 {
		t.Errorf("expected 20 lines, got %d", got)
	}
}

func TestNopAndDefault(t *testing.T) {
	nop := Nop()
	if nop.IsLevelEnabled(LevelError) {
		t.Error("Nop logger should not enable error level")
	}

	prev := GetDefault()
	defer SetDefault(prev)

	logger, _ := newTestLogger(FormatText, LevelDebug)
	SetDefault(logger)
	if GetDefault() != logger {
		t.Error("SetDefault did not replace the default logger")
	}
}
