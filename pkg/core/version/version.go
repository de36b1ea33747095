// ============================================================================
// Smpl - Smpl(s) programming language front end
// ============================================================================
//
// Package:     version
// Description: Central version management for the smpl tools
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the smpl components
const (
	// Release version of the command line tool
	Platform = "0.1.0"

	// Component versions
	Scanner  = "0.1.0"
	Parser   = "0.1.0"
	Explorer = "0.1.0"
)

// Set at build time via -ldflags "-X github.com/msto63/smpl/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "scanner":
		return Scanner
	case "parser":
		return Parser
	case "explorer":
		return Explorer
	default:
		return Platform
	}
}

// Info returns a one-line version summary
func Info() string {
	return fmt.Sprintf("smpl %s (commit %s, built %s, %s %s/%s)",
		Platform, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
