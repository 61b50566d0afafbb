// File: ascii.go
// Title: ASCII Transliteration and Detection
// Description: Implements transliteration to ASCII through the language
//              tables of package translit and the 7-bit ASCII check.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"unicode/utf8"

	"github.com/msto63/stringhandler/utils/translit"
)

// DefaultLanguage is the language used by Ascii when none is given
const DefaultLanguage = "en"

// Ascii transliterates value to ASCII using the table for language
// (default "en"). Characters without a mapping pass through unchanged.
// When the language has no table, value is returned unchanged; use
// Transliterate to get the error instead.
func Ascii(value string, language ...string) string {
	lang := DefaultLanguage
	if len(language) > 0 && language[0] != "" {
		lang = language[0]
	}

	result, err := translit.Transliterate(value, lang)
	if err != nil {
		return value
	}
	return result
}

// Transliterate is Ascii with the lookup failure reported. On error the
// unchanged value is returned together with a LookupError.
func Transliterate(value, language string) (string, error) {
	return TransliterateWith(translit.Default(), value, language)
}

// TransliterateWith transliterates value with a caller supplied table
func TransliterateWith(t translit.Transliterator, value, language string) (string, error) {
	return t.Transliterate(value, language)
}

// IsAscii reports whether value consists of 7-bit ASCII bytes only
func IsAscii(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
