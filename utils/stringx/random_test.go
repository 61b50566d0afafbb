// File: random_test.go
// Title: Unit Tests for Secure Random Tokens
// Description: Tests token length, alphabet, distribution, the filtering
//              loop and entropy failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package stringx

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	sherror "github.com/msto63/stringhandler/core/error"
	"github.com/msto63/stringhandler/core/errors"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(alphanumeric, r) {
			return false
		}
	}
	return true
}

func withRandReader(t *testing.T, r io.Reader) {
	t.Helper()
	prev := randReader
	randReader = r
	t.Cleanup(func() { randReader = prev })
}

func TestRandomLength(t *testing.T) {
	tests := []struct {
		name     string
		length   []int
		expected int
	}{
		{"default", nil, 16},
		{"sixteen", []int{16}, 16},
		{"thirty-two", []int{32}, 32},
		{"one", []int{1}, 1},
		{"zero", []int{0}, 0},
		{"long", []int{1000}, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Random(tt.length...)
			if err != nil {
				t.Fatalf("Random() error = %v", err)
			}
			if len(got) != tt.expected {
				t.Errorf("len(Random()) = %d; want %d", len(got), tt.expected)
			}
			if !isAlphanumeric(got) {
				t.Errorf("Random() = %q contains non alphanumeric characters", got)
			}
		})
	}
}

func TestRandomUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s, err := Random()
		if err != nil {
			t.Fatal(err)
		}
		if seen[s] {
			t.Fatalf("duplicate token %q", s)
		}
		seen[s] = true
	}
}

func TestRandomDistribution(t *testing.T) {
	const perSymbol = 2000
	s, err := Random(len(alphanumeric) * perSymbol)
	if err != nil {
		t.Fatal(err)
	}

	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	if len(counts) != len(alphanumeric) {
		t.Fatalf("expected %d distinct symbols, got %d", len(alphanumeric), len(counts))
	}
	for r, n := range counts {
		if n < perSymbol*7/10 || n > perSymbol*13/10 {
			t.Errorf("symbol %q drawn %d times; want about %d", r, n, perSymbol)
		}
	}
}

func TestRandomDropsPlusAndSlash(t *testing.T) {
	// 0xfb 0xef 0xbe encodes to "++++", zero bytes to "AAAA"
	src := append(bytes.Repeat([]byte{0xfb, 0xef, 0xbe}, 10), make([]byte, 64)...)
	withRandReader(t, bytes.NewReader(src))

	got, err := Random(4)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if got != "AAAA" {
		t.Errorf("Random() = %q; want AAAA", got)
	}
}

func TestRandomErrors(t *testing.T) {
	t.Run("negative length", func(t *testing.T) {
		_, err := Random(-1)
		if !errors.IsInvalidArgument(err) {
			t.Errorf("expected InvalidArgument, got %v", err)
		}
	})

	t.Run("entropy failure", func(t *testing.T) {
		cause := stderrors.New("no entropy")
		withRandReader(t, io.MultiReader(bytes.NewReader([]byte{1}), errReader{cause}))

		got, err := Random(8)
		if !sherror.HasCode(err, sherror.CodeEntropy) {
			t.Fatalf("expected ENTROPY_UNAVAILABLE, got %v", err)
		}
		if got != "" {
			t.Errorf("Random() = %q on failure; want empty", got)
		}
		if sherror.GetSeverity(err) != sherror.SeverityCritical {
			t.Errorf("severity = %v; want critical", sherror.GetSeverity(err))
		}
	})
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
