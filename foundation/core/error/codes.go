// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the Smpl toolchain so that
//              scanner, parser, configuration and CLI failures can be told
//              apart by callers and by the structured logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Reduced to the codes used by the Smpl front end

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Smpl front end
	CodeSmplLex          Code = "SMPL_LEX"
	CodeSmplParse        Code = "SMPL_PARSE"
	CodeSmplIntegerRange Code = "SMPL_INTEGER_RANGE"
	CodeSmplInputSize    Code = "SMPL_INPUT_TOO_LARGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsSyntax reports whether the code describes a problem in Smpl source text
func (c Code) IsSyntax() bool {
	switch c {
	case CodeSmplLex, CodeSmplParse, CodeSmplIntegerRange:
		return true
	default:
		return false
	}
}
