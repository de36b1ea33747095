// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for structured errors. Drives the log
//              level chosen by the logger when an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Code mapping for Smpl error codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem in user input that the user can fix
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without further classification
	SeverityMedium

	// SeverityHigh marks broken configuration or environment problems
	SeverityHigh

	// SeverityCritical marks internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity
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

// ShouldAlert returns true for severities that need operator attention
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeSmplLex, CodeSmplParse, CodeSmplIntegerRange, CodeSmplInputSize,
		CodeInvalidInput, CodeNotFound, CodeCanceled:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
