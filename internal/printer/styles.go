// ============================================================================
// Smpl - Smpl(s) programming language front end
// ============================================================================
//
// Package:     printer
// Description: Styles for printed trees, token tables and errors
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package printer

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - shared with the explorer TUI
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextDim = lipgloss.Color("#64748B") // Slate 500
)

// Styles groups the styles used by a Printer
type Styles struct {
	Banner     lipgloss.Style
	Kind       lipgloss.Style
	Name       lipgloss.Style
	Literal    lipgloss.Style
	Params     lipgloss.Style
	Position   lipgloss.Style
	Branch     lipgloss.Style
	Error      lipgloss.Style
	Header     lipgloss.Style
	Cell       lipgloss.Style
	Border     lipgloss.Style
	TokenKinds map[string]lipgloss.Style
}

// NewStyles returns the colored styles, or plain ones when color is false
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Banner:     plain,
			Kind:       plain,
			Name:       plain,
			Literal:    plain,
			Params:     plain,
			Position:   plain,
			Branch:     plain,
			Error:      plain,
			Header:     plain,
			Cell:       plain.Padding(0, 1),
			Border:     plain,
			TokenKinds: map[string]lipgloss.Style{},
		}
	}

	return Styles{
		Banner:   lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Kind:     lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true),
		Name:     lipgloss.NewStyle().Foreground(ColorText),
		Literal:  lipgloss.NewStyle().Foreground(ColorAccent),
		Params:   lipgloss.NewStyle().Foreground(ColorSuccess),
		Position: lipgloss.NewStyle().Foreground(ColorTextDim),
		Branch:   lipgloss.NewStyle().Foreground(ColorMuted),
		Error:    lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1),
		Cell:     lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1),
		Border:   lipgloss.NewStyle().Foreground(ColorMuted),
		TokenKinds: map[string]lipgloss.Style{
			"keyword_def": lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1),
			"keyword_end": lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1),
			"identifier":  lipgloss.NewStyle().Foreground(ColorSecondary).Padding(0, 1),
			"integer":     lipgloss.NewStyle().Foreground(ColorAccent).Padding(0, 1),
		},
	}
}
