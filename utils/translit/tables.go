// File: tables.go
// Title: Built-in Transliteration Tables
// Description: The generic table shared by every language and the per
//              language override tables. Tables are declared lower case;
//              the upper case entries are derived when a Table is built.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package translit

import (
	"unicode"
	"unicode/utf8"
)

// latin holds letters that do not decompose into a base letter and marks
var latin = map[rune]string{
	'ß': "ss", 'æ': "ae", 'ø': "o", 'œ': "oe", 'ł': "l", 'đ': "d",
	'ð': "d", 'þ': "th", 'ı': "i", 'ħ': "h", 'ŋ': "ng", 'ĸ': "k",
	'ŀ': "l", 'ſ': "s", 'ŧ': "t", 'ĳ': "ij", 'ƒ': "f",
}

// cyrillic follows common Russian romanization
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e",
	'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k",
	'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
	'і': "i", 'ї': "yi", 'є': "ye", 'ґ': "g", 'ў': "u",
	'ђ': "dj", 'ј': "j", 'љ': "lj", 'њ': "nj", 'ћ': "c", 'џ': "dz",
	'ѓ': "gj", 'ќ': "kj", 'ѕ': "dz",
}

var greek = map[rune]string{
	'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z",
	'η': "i", 'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m",
	'ν': "n", 'ξ': "x", 'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s",
	'ς': "s", 'τ': "t", 'υ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps",
	'ω': "o",
}

// symbols have no case; they are copied as is
var symbols = map[rune]string{
	'ẞ': "SS",
	'‘': "'", '’': "'", '‚': ",", '‹': "<", '›': ">",
	'“': "\"", '”': "\"", '„': "\"", '«': "<<", '»': ">>",
	'–': "-", '—': "-", '‐': "-", '…': "...", '•': "*",
	'\u00a0': " ", '×': "x", '÷': "/", '¡': "!", '¿': "?",
	'€': "EUR", '©': "(c)", '®': "(r)", '™': "TM",
}

// overrides holds the language specific tables. Languages with an empty
// table use the generic table only.
var overrides = map[string]map[rune]string{
	"en": {},
	"de": {'ä': "ae", 'ö': "oe", 'ü': "ue"},
	"da": {'æ': "ae", 'ø': "oe", 'å': "aa"},
	"nb": {'æ': "ae", 'ø': "oe", 'å': "aa"},
	"nn": {'æ': "ae", 'ø': "oe", 'å': "aa"},
	"no": {'æ': "ae", 'ø': "oe", 'å': "aa"},
	"sv": {},
	"fi": {},
	"is": {},
	"fr": {},
	"es": {},
	"it": {},
	"pt": {},
	"nl": {},
	"pl": {},
	"cs": {},
	"sk": {},
	"sl": {},
	"hr": {},
	"hu": {},
	"ro": {},
	"tr": {},
	"ru": {},
	"uk": {'г': "h", 'и': "y", 'і': "i", 'ї': "yi", 'є': "ye"},
	"bg": {'щ': "sht", 'ъ': "a", 'х': "h"},
	"sr": {},
	"mk": {},
	"el": {},
}

// genericTable merges the built-in generic tables, upper case included
func genericTable() map[rune]string {
	table := make(map[rune]string, 2*(len(latin)+len(cyrillic)+len(greek))+len(symbols))
	for _, src := range []map[rune]string{latin, cyrillic, greek} {
		addCased(table, src)
	}
	for r, repl := range symbols {
		table[r] = repl
	}
	return table
}

// addCased copies src into dst and derives the upper case entries:
// 'щ': "shch" also yields 'Щ': "Shch". Upper case forms that are ASCII
// or equal to the lower case rune are skipped.
func addCased(dst, src map[rune]string) {
	for r, repl := range src {
		dst[r] = repl

		upper := unicode.ToUpper(r)
		if upper == r || upper < utf8.RuneSelf {
			continue
		}
		dst[upper] = capitalize(repl)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
