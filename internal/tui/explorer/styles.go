// ============================================================================
// Smpl - Smpl(s) programming language front end
// ============================================================================
//
// Package:     explorer
// Description: Styles for the Explorer TUI
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/smpl/internal/printer"
)

// Additional colors, the base palette comes from the printer
var (
	ColorDimmed  = lipgloss.Color("#374151") // Dark Gray
	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(printer.ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(printer.ColorPrimary).
			Padding(0, 2)
)

// Tab styles
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(printer.ColorText).
			Background(printer.ColorPrimary).
			Bold(true).
			Padding(0, 2)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	ErrorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(printer.ColorError).
			Foreground(printer.ColorError).
			Padding(0, 1)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(printer.ColorTextDim)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(printer.ColorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(printer.ColorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(printer.ColorError).
				Bold(true)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(printer.ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "Smpl Explorer"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
