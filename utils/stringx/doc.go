// Package stringx provides UTF-8 aware string operations.
//
// Package: stringx
// Title: String Utilities
// Description: Free functions for transliteration to ASCII, prefix and
//              suffix checks, wrapping and quoting, capping, case
//              conversion, code point based substrings, secure random
//              tokens and membership tests against candidate lists.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Overview
//
// All lengths and indexes are counted in code points (runes), never in
// bytes and never in grapheme clusters. Every function is safe for
// concurrent use; the only shared state is the transliteration table of
// package translit, which is built once and read-only afterwards.
//
// Blank pieces
//
// Join skips pieces made only of ASCII space, tab, line feed, carriage
// return, NUL or vertical tab. Unicode spaces such as U+00A0 count as
// content, so a piece holding a no-break space is kept.
//
// Empty needles
//
// EndsWith and StartsWith treat an empty needle differently, and callers
// may depend on either behavior:
//
//	stringx.EndsWith("abc", "")   // true: an empty suffix always matches
//	stringx.StartsWith("abc", "") // false: an empty prefix never matches
//
// Invalid UTF-8
//
// The plain functions degrade gracefully: every invalid byte counts as one
// code point, Substr keeps the raw bytes, and case mapping and
// transliteration emit U+FFFD for them. Strict checking is explicit:
// Validate and LengthIn return an EncodingError, and LowerIn, UpperIn and
// Transliterate report bad language tags.
//
// Usage Examples
//
//	stringx.Ascii("äãèëíïõöûü")                 // "aaeeiioouu"
//	stringx.Finish("/full/path/to", "/")         // "/full/path/to/"
//	stringx.Wrap("::orange", "::", true)         // "::::orange::"
//	stringx.Substr("Orange, ÄãÈëÍïÕöÛü, Juice", 20) // "Juice"
//	token, err := stringx.Random(32)
package stringx
