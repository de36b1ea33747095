// ============================================================================
// Smpl - Smpl(s) programming language front end
// ============================================================================
//
// Package:     explorer
// Description: Message types for async operations in the Explorer
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"github.com/msto63/smpl/internal/compiler"
)

// Pane identifies one of the explorer panes
type Pane int

const (
	PaneSource Pane = iota
	PaneTokens
	PaneAST
)

// String returns the tab title of the pane
func (p Pane) String() string {
	switch p {
	case PaneSource:
		return "Source"
	case PaneTokens:
		return "Tokens"
	case PaneAST:
		return "AST"
	default:
		return "?"
	}
}

// analyzedMsg is sent when the source has been (re)loaded and compiled
type analyzedMsg struct {
	source   string
	result   *compiler.Result
	err      error
	stats    compiler.CacheStats
	hasStats bool
}
