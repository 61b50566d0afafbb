// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes reported by the string utilities, the
//              transliteration table, configuration loading and the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Text handling
	CodeEncoding        Code = "ENCODING_ERROR"
	CodeLookup          Code = "LOOKUP_ERROR"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeEntropy         Code = "ENTROPY_UNAVAILABLE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeEncoding, CodeLookup, CodeInvalidArgument, CodeEntropy,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeEncoding:
		return "encoding"
	case CodeLookup:
		return "lookup"
	case CodeInvalidArgument, CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeEntropy:
		return "system"
	default:
		return "generic"
	}
}

// ExitStatus returns the process exit status the CLI uses for this code.
// Values follow the BSD sysexits convention.
func (c Code) ExitStatus() int {
	switch c {
	case CodeInvalidArgument, CodeInvalidInput, CodeValidationFailed, CodeValueOutOfRange:
		return 64 // EX_USAGE
	case CodeEncoding, CodeInvalidFormat:
		return 65 // EX_DATAERR
	case CodeNotFound, CodeLookup:
		return 66 // EX_NOINPUT
	case CodeEntropy:
		return 71 // EX_OSERR
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 78 // EX_CONFIG
	default:
		return 1
	}
}
