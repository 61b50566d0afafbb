// File: random.go
// Title: Secure Random Tokens
// Description: Generates cryptographically secure alphanumeric tokens from
//              base64 encoded crypto/rand bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	sherror "github.com/msto63/stringhandler/core/error"
	"github.com/msto63/stringhandler/core/errors"
)

// DefaultRandomLength is the token length used by Random when none is given
const DefaultRandomLength = 16

// randReader is the entropy source; tests replace it
var randReader io.Reader = rand.Reader

// Random returns a cryptographically secure alphanumeric string of exactly
// length characters (default 16). Each character is drawn uniformly from
// A-Z, a-z and 0-9. A negative length is an InvalidArgument error; a
// failing entropy source yields CodeEntropy.
func Random(length ...int) (string, error) {
	n := DefaultRandomLength
	if len(length) > 0 {
		n = length[0]
	}
	if n < 0 {
		return "", errors.InvalidArgument(errors.ModuleStringx, "Random", "length", n, "length >= 0")
	}

	result := make([]byte, 0, n)
	// every 3 bytes give 4 complete base64 characters, 62 of 64 are kept
	buf := make([]byte, 3*((n+3)/4+1))
	encoded := make([]byte, base64.RawStdEncoding.EncodedLen(len(buf)))

	for len(result) < n {
		if _, err := io.ReadFull(randReader, buf); err != nil {
			return "", errors.OperationFailed(errors.ModuleStringx, "Random", sherror.CodeEntropy, err)
		}
		base64.RawStdEncoding.Encode(encoded, buf)

		for _, c := range encoded {
			if c == '+' || c == '/' {
				continue
			}
			result = append(result, c)
			if len(result) == n {
				break
			}
		}
	}

	return string(result), nil
}
