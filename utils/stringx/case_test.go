// File: case_test.go
// Title: Unit Tests for Case Conversion
// Description: Tests full Unicode case mapping, language specific rules
//              and first code point upper casing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package stringx

import (
	"sync"
	"testing"

	"github.com/msto63/stringhandler/core/errors"
)

func TestLowerUpper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lower string
		upper string
	}{
		{"ascii", "Hello World", "hello world", "HELLO WORLD"},
		{"umlauts", "ÄÖÜ äöü", "äöü äöü", "ÄÖÜ ÄÖÜ"},
		{"sharp s expands", "straße", "straße", "STRASSE"},
		{"greek", "Αθήνα", "αθήνα", "ΑΘΉΝΑ"},
		{"cyrillic", "Москва", "москва", "МОСКВА"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lower(tt.input); got != tt.lower {
				t.Errorf("Lower(%q) = %q; want %q", tt.input, got, tt.lower)
			}
			if got := Upper(tt.input); got != tt.upper {
				t.Errorf("Upper(%q) = %q; want %q", tt.input, got, tt.upper)
			}
		})
	}
}

func TestLowerInUpperIn(t *testing.T) {
	got, err := UpperIn("istanbul", "tr")
	if err != nil || got != "İSTANBUL" {
		t.Errorf("UpperIn(tr) = %q, %v", got, err)
	}

	got, err = LowerIn("DIŞ", "tr")
	if err != nil || got != "dış" {
		t.Errorf("LowerIn(tr) = %q, %v", got, err)
	}

	got, err = UpperIn("istanbul", "en-US")
	if err != nil || got != "ISTANBUL" {
		t.Errorf("UpperIn(en-US) = %q, %v", got, err)
	}

	got, err = LowerIn("ABC", "not a tag!")
	if !errors.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
	if got != "ABC" {
		t.Errorf("LowerIn() on bad tag = %q; want input", got)
	}
}

func TestUcfirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii", "hello World", "Hello World"},
		{"multibyte first", "ärger", "Ärger"},
		{"already upper", "Über", "Über"},
		{"sharp s expands", "ßtest", "SStest"},
		{"single rune", "é", "É"},
		{"rest untouched", "aBC déf", "ABC déf"},
		{"digit first", "1st", "1st"},
		{"empty", "", ""},
		{"invalid first byte", "\xffabc", "\xffabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ucfirst(tt.input); got != tt.expected {
				t.Errorf("Ucfirst(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCaseConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Upper("straße"); got != "STRASSE" {
				errs <- got
			}
			if !IcIn("STRASSE", "straße") {
				errs <- "IcIn"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent case mapping returned %q", e)
	}
}
