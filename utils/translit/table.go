// File: table.go
// Title: Transliteration Table Implementation
// Description: Implements the Table type: lazily built, read-only language
//              tables with a shared generic fallback and combining mark
//              stripping for characters without an explicit mapping.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Segment-wise conversion; unconvertible characters kept

package translit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/msto63/stringhandler/core/errors"
	"github.com/msto63/stringhandler/core/log"
)

// Transliterator converts text to ASCII for a language tag
type Transliterator interface {
	Transliterate(value, language string) (string, error)
}

// Table is a set of per-language transliteration tables. The zero value is
// not usable; create one with New or use Default.
type Table struct {
	logger *log.Logger
	files  []string
	extra  map[string]map[string]string

	once    sync.Once
	generic map[rune]string
	langs   map[string]map[rune]string
	loadErr error
}

// Option configures a Table
type Option func(*Table)

// WithLogger sets the logger used while building the table
func WithLogger(logger *log.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithOverrides adds mappings for lang. Keys must be single characters.
// An unknown lang registers a new language.
func WithOverrides(lang string, mapping map[string]string) Option {
	return func(t *Table) {
		if t.extra[lang] == nil {
			t.extra[lang] = make(map[string]string, len(mapping))
		}
		for k, v := range mapping {
			t.extra[lang][k] = v
		}
	}
}

// WithFiles adds YAML or TOML table files, merged in order on first use
func WithFiles(paths ...string) Option {
	return func(t *Table) {
		t.files = append(t.files, paths...)
	}
}

// New creates a table. Nothing is built until the first lookup.
func New(opts ...Option) *Table {
	t := &Table{
		logger: log.Nop(),
		extra:  make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the shared table holding the built-in languages
func Default() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = New()
	})
	return defaultTable
}

// Transliterate converts value using the shared table
func Transliterate(value, language string) (string, error) {
	return Default().Transliterate(value, language)
}

// Languages lists the languages of the shared table
func Languages() []string {
	return Default().Languages()
}

// Transliterate replaces every non-ASCII character of value with its
// mapping for language. On error value is returned unchanged.
func (t *Table) Transliterate(value, language string) (string, error) {
	t.once.Do(t.build)
	if t.loadErr != nil {
		return value, errors.LookupError(errors.ModuleTranslit, "Transliterate", language, t.loadErr)
	}

	base, err := baseLanguage(language)
	if err != nil {
		return value, errors.LookupError(errors.ModuleTranslit, "Transliterate", language, err)
	}
	override, ok := t.langs[base]
	if !ok {
		return value, errors.LookupError(errors.ModuleTranslit, "Transliterate", language, nil)
	}

	if isASCII(value) {
		return value, nil
	}

	var (
		b     strings.Builder
		strip transform.Transformer
	)
	b.Grow(len(value))

	for rest := value; rest != ""; {
		n := norm.NFC.NextBoundaryInString(rest, true)
		if n <= 0 {
			n = len(rest)
		}
		segment := rest[:n]
		rest = rest[n:]

		if isASCII(segment) {
			b.WriteString(segment)
			continue
		}
		if strip == nil {
			strip = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
		}
		if repl, ok := t.convertSegment(override, strip, segment); ok {
			b.WriteString(repl)
			continue
		}
		// no complete ASCII form: keep the code points, invalid bytes become U+FFFD
		for _, r := range segment {
			b.WriteRune(r)
		}
	}

	return b.String(), nil
}

// convertSegment maps one normalization segment (a starter and its
// combining marks). It reports false when a character has neither a
// mapping nor an ASCII decomposition.
func (t *Table) convertSegment(override map[rune]string, strip transform.Transformer, segment string) (string, bool) {
	var b strings.Builder
	for _, r := range norm.NFC.String(segment) {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if repl, ok := t.lookup(override, r); ok {
			b.WriteString(repl)
			continue
		}

		decomposed, _, err := transform.String(strip, string(r))
		if err != nil {
			return "", false
		}
		for _, d := range decomposed {
			if d < utf8.RuneSelf {
				b.WriteRune(d)
			} else if repl, ok := t.lookup(override, d); ok {
				b.WriteString(repl)
			} else {
				return "", false
			}
		}
	}

	return b.String(), true
}

// Languages returns the registered language codes in sorted order
func (t *Table) Languages() []string {
	t.once.Do(t.build)

	result := make([]string, 0, len(t.langs))
	for lang := range t.langs {
		result = append(result, lang)
	}
	sort.Strings(result)
	return result
}

func (t *Table) lookup(override map[rune]string, r rune) (string, bool) {
	if repl, ok := override[r]; ok {
		return repl, true
	}
	repl, ok := t.generic[r]
	return repl, ok
}

// build assembles the tables; it runs exactly once per Table
func (t *Table) build() {
	t.generic = genericTable()
	t.langs = make(map[string]map[rune]string, len(overrides)+len(t.extra))

	for lang, src := range overrides {
		table := make(map[rune]string, 2*len(src))
		addCased(table, src)
		t.langs[lang] = table
	}

	for _, path := range t.files {
		entries, err := loadFile(path)
		if err != nil {
			t.loadErr = err
			t.logger.WarnWithErr("transliteration table file rejected", err, log.Fields{"path": path})
			return
		}
		if err := t.merge(entries); err != nil {
			t.loadErr = err
			t.logger.WarnWithErr("transliteration table file rejected", err, log.Fields{"path": path})
			return
		}
		t.logger.Debug("transliteration table file loaded", log.Fields{"path": path, "languages": len(entries)})
	}

	if err := t.merge(t.extra); err != nil {
		t.loadErr = err
		t.logger.WarnWithErr("transliteration overrides rejected", err)
		return
	}

	t.logger.Debug("transliteration tables built", log.Fields{
		"languages": len(t.langs),
		"generic":   len(t.generic),
		"files":     len(t.files),
	})
}

// merge adds string keyed entries to the language tables
func (t *Table) merge(entries map[string]map[string]string) error {
	for lang, mapping := range entries {
		base, err := baseLanguage(lang)
		if err != nil {
			return invalidEntry("language", lang, "a BCP 47 language tag", err)
		}

		table, ok := t.langs[base]
		if !ok {
			table = make(map[rune]string, len(mapping))
			t.langs[base] = table
		}

		for key, repl := range mapping {
			r, size := utf8.DecodeRuneInString(key)
			if r == utf8.RuneError || size != len(key) {
				return invalidEntry("character", key, "exactly one character", nil)
			}
			table[r] = repl
		}
	}
	return nil
}

// baseLanguage returns the base language subtag of tag ("de-AT" -> "de").
// Tags without an explicit language ("und", "und-Cyrl") are rejected: a
// guessed language would silently pick the wrong table.
func baseLanguage(tag string) (string, error) {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", err
	}
	base, confidence := parsed.Base()
	if confidence != language.Exact {
		return "", fmt.Errorf("language tag %q has no explicit language subtag", tag)
	}
	return base.String(), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
