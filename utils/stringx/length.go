// File: length.go
// Title: Code Point Length, Substring and Validation
// Description: Implements code point counting (optionally from a named
//              encoding), mb_substr style substrings and strict UTF-8
//              validation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: LengthIn accepts U+FFFD present in the source

package stringx

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/msto63/stringhandler/core/errors"
)

// Length returns the number of code points in value. Each invalid byte
// counts as one code point.
func Length(value string) int {
	return utf8.RuneCountInString(value)
}

// LengthIn decodes value from the named encoding (an IANA name or alias
// such as "UTF-8", "ISO-8859-1", "Shift_JIS") and returns the number of
// code points. Unknown encodings yield an InvalidArgument error, input
// that is not valid in the encoding an EncodingError.
func LengthIn(value []byte, encoding string) (int, error) {
	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil || enc == nil {
		return 0, errors.InvalidArgument(errors.ModuleStringx, "LengthIn", "encoding", encoding,
			"a supported IANA encoding name")
	}

	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		name = encoding
	}
	if name == "UTF-8" {
		if offset := invalidOffset(string(value)); offset >= 0 {
			return 0, errors.EncodingError(errors.ModuleStringx, "LengthIn", name, offset)
		}
		return utf8.RuneCount(value), nil
	}

	decoded, err := enc.NewDecoder().Bytes(value)
	if err != nil {
		return 0, errors.EncodingError(errors.ModuleStringx, "LengthIn", name, -1)
	}
	// decoders replace undecodable input with U+FFFD; a U+FFFD that really
	// is in the source survives the round trip back to the source bytes
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		encoded, err := enc.NewEncoder().Bytes(decoded)
		if err != nil || !bytes.Equal(encoded, value) {
			return 0, errors.EncodingError(errors.ModuleStringx, "LengthIn", name, -1)
		}
	}

	return utf8.RuneCount(decoded), nil
}

// Substr returns the code point range of value starting at start.
//
// A negative start counts from the end and is clamped to 0; a start at
// or beyond the end yields "". Without length the rest of value is
// returned. A negative length leaves that many code points off the end,
// a length reaching past the end is clipped.
func Substr(value string, start int, length ...int) string {
	total := utf8.RuneCountInString(value)

	if start < 0 {
		start += total
		if start < 0 {
			start = 0
		}
	}
	if start >= total {
		return ""
	}

	end := total
	if len(length) > 0 {
		switch l := length[0]; {
		case l < 0:
			end = total + l
		case l < total-start:
			end = start + l
		}
		if end <= start {
			return ""
		}
	}

	from := byteOffset(value, 0, start)
	to := byteOffset(value, from, end-start)
	return value[from:to]
}

// Validate returns an EncodingError carrying the byte offset of the first
// invalid UTF-8 sequence in value
func Validate(value string) error {
	if offset := invalidOffset(value); offset >= 0 {
		return errors.EncodingError(errors.ModuleStringx, "Validate", "UTF-8", offset)
	}
	return nil
}

// IsValid reports whether value is valid UTF-8
func IsValid(value string) bool {
	return utf8.ValidString(value)
}

// byteOffset advances n code points from byte offset from
func byteOffset(s string, from, n int) int {
	i := from
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
