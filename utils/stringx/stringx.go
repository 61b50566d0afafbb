// File: stringx.go
// Title: Affix, Wrapping, Joining and Replacement Functions
// Description: Implements suffix and prefix checks, capping with a single
//              affix, wrapping and quoting, joining with empty piece
//              elision and first/last occurrence replacement.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Join blanks limited to ASCII control whitespace

package stringx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// EndsWith returns true if haystack ends with at least one of needles.
// An empty needle always matches.
func EndsWith(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.HasSuffix(haystack, needle) {
			return true
		}
	}
	return false
}

// StartsWith returns true if haystack starts with at least one of needles.
// An empty needle never matches.
func StartsWith(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if needle != "" && strings.HasPrefix(haystack, needle) {
			return true
		}
	}
	return false
}

// Finish caps value with a single instance of suffix, removing any run of
// trailing repeats first.
//
//	Finish("/full/path/to//", "/") == "/full/path/to/"
func Finish(value, suffix string) string {
	if suffix == "" {
		return value
	}
	for strings.HasSuffix(value, suffix) {
		value = value[:len(value)-len(suffix)]
	}
	return value + suffix
}

// Start begins value with a single instance of prefix, removing any run
// of leading repeats first.
func Start(value, prefix string) string {
	if prefix == "" {
		return value
	}
	for strings.HasPrefix(value, prefix) {
		value = value[len(prefix):]
	}
	return prefix + value
}

// Wrap surrounds text with wrapper. Unless force is set, the wrapper is
// only prepended when text does not already start with it and only
// appended when text does not already end with it.
func Wrap(text, wrapper string, force bool) string {
	var b strings.Builder
	b.Grow(len(text) + 2*len(wrapper))

	if force || !StartsWith(text, wrapper) {
		b.WriteString(wrapper)
	}
	b.WriteString(text)
	if force || !EndsWith(text, wrapper) {
		b.WriteString(wrapper)
	}

	return b.String()
}

// Quoted wraps text in single quotes
func Quoted(text string, force bool) string {
	return Wrap(text, "'", force)
}

// Quoted2 wraps text in double quotes
func Quoted2(text string, force bool) string {
	return Wrap(text, `"`, force)
}

// blank is the set of bytes Join treats as blank: ASCII space, tab, line
// feed, carriage return, NUL and vertical tab. Unicode spaces such as
// U+00A0 are content.
const blank = " \t\n\r\x00\x0b"

// Join concatenates pieces with glue. Pieces that are empty or consist
// only of blank bytes are skipped, so glue never appears twice in a row.
// Kept pieces are written untrimmed.
func Join(glue string, pieces ...string) string {
	var b strings.Builder
	for _, piece := range pieces {
		if strings.Trim(piece, blank) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(glue)
		}
		b.WriteString(piece)
	}
	return b.String()
}

// JoinAny is Join for values of any type. nil values and nil pointers are
// skipped; everything else is rendered with cast.ToString, falling back
// to fmt formatting for types cast does not know.
func JoinAny(glue string, pieces ...any) string {
	strs := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if isNil(piece) {
			continue
		}
		strs = append(strs, toString(piece))
	}
	return Join(glue, strs...)
}

// ReplaceFirst replaces the first occurrence of search in subject. An empty
// search leaves subject unchanged.
func ReplaceFirst(search, replace, subject string) string {
	if search == "" {
		return subject
	}
	pos := strings.Index(subject, search)
	if pos < 0 {
		return subject
	}
	return subject[:pos] + replace + subject[pos+len(search):]
}

// ReplaceLast replaces the last occurrence of search in subject. An empty
// search matches at the end of subject, so replace is appended.
func ReplaceLast(search, replace, subject string) string {
	pos := strings.LastIndex(subject, search)
	if pos < 0 {
		return subject
	}
	return subject[:pos] + replace + subject[pos+len(search):]
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func toString(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
