// File: case.go
// Title: Unicode Case Conversion
// Description: Implements full Unicode lower and upper case mapping, the
//              language specific variants and first code point upper
//              casing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/stringhandler/core/errors"
)

// A cases.Caser keeps state between calls and is not safe for concurrent
// use, so every call creates its own.

// Lower converts value to lower case using language independent full
// case mapping
func Lower(value string) string {
	return cases.Lower(language.Und).String(value)
}

// Upper converts value to upper case using language independent full case
// mapping, so "ß" becomes "SS"
func Upper(value string) string {
	return cases.Upper(language.Und).String(value)
}

// LowerIn converts value to lower case with the rules of lang, for example
// Turkish dotted and dotless i. A malformed tag returns value unchanged
// and an InvalidArgument error.
func LowerIn(value, lang string) (string, error) {
	tag, err := parseTag("LowerIn", lang)
	if err != nil {
		return value, err
	}
	return cases.Lower(tag).String(value), nil
}

// UpperIn converts value to upper case with the rules of lang
func UpperIn(value, lang string) (string, error) {
	tag, err := parseTag("UpperIn", lang)
	if err != nil {
		return value, err
	}
	return cases.Upper(tag).String(value), nil
}

// Ucfirst upper cases the first code point of value and leaves the rest
// untouched. A leading invalid byte is left as is.
func Ucfirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return value
	}
	return Upper(value[:size]) + value[size:]
}

func parseTag(operation, lang string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return language.Und, errors.InvalidArgument(errors.ModuleStringx, operation, "language", lang,
			"a BCP 47 language tag")
	}
	return tag, nil
}
