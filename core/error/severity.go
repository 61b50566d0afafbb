// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger maps them to log
//              levels in LogError.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates caller misuse or bad input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a usable fallback
	SeverityMedium

	// SeverityHigh indicates a failure of a required resource
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEntropy:
		return SeverityCritical
	case CodeInternal, CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh
	case CodeEncoding, CodeLookup, CodeInvalidArgument, CodeInvalidInput,
		CodeNotFound, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
