// Package error provides the structured error type used across stringhandler.
//
// Package: error
// Title: stringhandler Error Handling
// Description: This package implements a structured error with an error code, a
//              severity, free-form details and the failing operation. The string
//              utilities report encoding, lookup and argument failures through it
//              so callers can branch on the code instead of parsing messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with codes, severities and wrapping
//
// Usage:
//   import sherror "github.com/msto63/stringhandler/core/error"
//
//   err := sherror.New("invalid UTF-8 sequence").
//     WithCode(sherror.CodeEncoding).
//     WithOperation("stringx.Validate").
//     WithDetail("offset", 7)
//
//   if sherror.HasCode(err, sherror.CodeEncoding) {
//     // reject the input
//   }
package error
