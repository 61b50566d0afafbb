// Package translit maps non-ASCII text to ASCII approximations per language.
//
// Package: translit
// Title: Transliteration Tables
// Description: Language keyed transliteration tables. Every registered
//              language shares a generic table (Latin specials, Cyrillic,
//              Greek) and may add its own overrides, for example German
//              ä -> ae or Danish å -> aa. Characters found in neither table
//              are decomposed and stripped of combining marks; a character
//              without a complete ASCII form passes through unchanged.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Unconvertible characters kept; explicit language required
//
// Input is processed per normalization segment, a base character plus its
// combining marks, so "u\u0308" and "ü" map alike. Lookup order per
// character of the composed segment:
//
//  1. the language override table
//  2. the generic table
//  3. NFD decomposition with nonspacing marks removed, each remaining
//     character looked up again in 1 and 2
//
// If any character of a segment has no ASCII result, the segment is written
// with its original code points: Hangul syllables, CJK compatibility
// ideographs and emoji are never rewritten into other non-ASCII forms.
//
// Language tags are parsed as BCP 47 tags; the base language selects the
// table, so "de-AT" and "de" share one. The tag must name a language
// explicitly: "und" and script-only tags like "und-Cyrl" are rejected
// rather than resolved to a guessed language. A malformed tag or a base
// language without a table yields a LookupError and the input unchanged.
//
// A Table is built once, on first use, and is safe for concurrent use
// afterwards. Extra tables can be supplied as YAML or TOML files shaped
// like
//
//	de:
//	  "ẞ": "SS"
//	ja:
//	  "ー": "-"
//
// Usage:
//
//	out, err := translit.Transliterate("Grüße", "de") // "Gruesse"
//
//	table := translit.New(translit.WithFiles("tables.yaml"), translit.WithLogger(logger))
//	out, err = table.Transliterate("Ærø", "da") // "Aeroe"
package translit
