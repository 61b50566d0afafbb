// File: membership.go
// Title: Membership Checks
// Description: Tests whether a target string equals one of a list of
//              candidates, case sensitively or with Unicode case folding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"golang.org/x/text/cases"
)

// In returns true if target equals at least one of candidates. Without
// caseSensitive both sides are case folded before comparing. No
// candidates means false.
func In(caseSensitive bool, target string, candidates ...string) bool {
	if caseSensitive {
		for _, c := range candidates {
			if c == target {
				return true
			}
		}
		return false
	}

	if len(candidates) == 0 {
		return false
	}
	fold := cases.Fold()
	target = fold.String(target)
	for _, c := range candidates {
		if fold.String(c) == target {
			return true
		}
	}
	return false
}

// CsIn is the case sensitive In
func CsIn(target string, candidates ...string) bool {
	return In(true, target, candidates...)
}

// IcIn is the case insensitive In
func IcIn(target string, candidates ...string) bool {
	return In(false, target, candidates...)
}

// ScIn is an alias of CsIn
func ScIn(target string, candidates ...string) bool {
	return In(true, target, candidates...)
}
