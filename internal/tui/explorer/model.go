// ============================================================================
// Smpl - Smpl(s) programming language front end
// ============================================================================
//
// Package:     explorer
// Description: Bubbletea model showing source, tokens and AST side by side
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwast "github.com/msto63/smpl/foundation/smpl/ast"
	mdwparser "github.com/msto63/smpl/foundation/smpl/parser"
	"github.com/msto63/smpl/internal/compiler"
	"github.com/msto63/smpl/internal/printer"
)

// Compiler compiles the explored source. *compiler.Service implements it.
type Compiler interface {
	CompileSource(ctx context.Context, name, source string) (*compiler.Result, error)
	CacheStats() (compiler.CacheStats, bool)
}

// LoadFunc reads the source text, it is called again on reload
type LoadFunc func() (string, error)

// Config holds Explorer configuration
type Config struct {
	Name     string
	Load     LoadFunc
	Compiler Compiler
	Printer  *printer.Printer
}

// Model is the main Bubbletea model for the Explorer
type Model struct {
	// State
	width  int
	height int
	ready  bool
	pane   Pane

	// Components
	viewport viewport.Model

	// Compilation state
	source   string
	tokens   []mdwparser.Token
	def      *mdwast.Definition
	cached   bool
	err      error
	stats    compiler.CacheStats
	hasStats bool

	// Configuration
	name     string
	load     LoadFunc
	compiler Compiler
	printer  *printer.Printer
}

// New creates a new Explorer model
func New(cfg Config) Model {
	p := cfg.Printer
	if p == nil {
		p = printer.New(printer.DefaultOptions())
	}
	return Model{
		pane:     PaneAST,
		name:     cfg.Name,
		load:     cfg.Load,
		compiler: cfg.Compiler,
		printer:  p,
	}
}

// Init loads the source
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.reload, tea.EnterAltScreen)
}

// reload reads and analyzes the source
func (m Model) reload() tea.Msg {
	if m.load == nil || m.compiler == nil {
		return analyzedMsg{err: errors.New("explorer has no source")}
	}
	src, err := m.load()
	if err != nil {
		return analyzedMsg{err: err}
	}

	msg := analyzedMsg{source: src}
	msg.result, msg.err = m.compiler.CompileSource(context.Background(), m.name, src)
	msg.stats, msg.hasStats = m.compiler.CacheStats()
	return msg
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.updateViewportContent()

	case analyzedMsg:
		m.source = msg.source
		m.tokens, m.def, m.cached = nil, nil, false
		if msg.result != nil {
			m.tokens = msg.result.Tokens
			m.def = msg.result.AST
			m.cached = msg.result.Cached
		}
		m.err = msg.err
		m.stats, m.hasStats = msg.stats, msg.hasStats
		if m.ready {
			m.resize()
		}
		m.updateViewportContent()
		m.viewport.GotoTop()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.pane = (m.pane + 1) % 3
		m.updateViewportContent()
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyShiftTab:
		m.pane = (m.pane + 2) % 3
		m.updateViewportContent()
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "1":
			return m.selectPane(PaneSource), nil
		case "2":
			return m.selectPane(PaneTokens), nil
		case "3":
			return m.selectPane(PaneAST), nil
		case "r":
			return m, m.reload
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

func (m Model) selectPane(p Pane) Model {
	m.pane = p
	m.updateViewportContent()
	m.viewport.GotoTop()
	return m
}

// Pane returns the focused pane
func (m Model) Pane() Pane {
	return m.pane
}

// Err returns the error of the last compilation
func (m Model) Err() error {
	return m.err
}

// Cached reports whether the last reload was served from the result cache
func (m Model) Cached() bool {
	return m.cached
}

// Content returns the text of the focused pane
func (m Model) Content() string {
	switch m.Pane() {
	case PaneSource:
		return m.renderSource()
	case PaneTokens:
		if len(m.tokens) == 0 {
			return HelpDescStyle.Render("no tokens")
		}
		return m.printer.Tokens(m.tokens)
	default:
		if m.def == nil {
			return HelpDescStyle.Render("no syntax tree")
		}
		return m.printer.Tree(m.def)
	}
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.Content())
}

// renderSource numbers the source lines and marks the error position
func (m Model) renderSource() string {
	line, column, ok := errorPosition(m.err)

	lines := strings.Split(m.source, "\n")
	width := len(fmt.Sprint(len(lines)))

	var b strings.Builder
	for i, text := range lines {
		b.WriteString(LineNumberStyle.Render(fmt.Sprintf("%*d │ ", width, i+1)))
		b.WriteString(text)
		b.WriteString("\n")
		if ok && line == i+1 {
			b.WriteString(strings.Repeat(" ", width+3))
			b.WriteString(strings.Repeat(" ", max(column-1, 0)))
			b.WriteString(StatusErrorStyle.Render("^"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// errorPosition extracts the line and column of a scanner or parser error
func errorPosition(err error) (line, column int, ok bool) {
	var lexErr *mdwparser.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Line, lexErr.Column, true
	}
	var parseErr *mdwparser.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Token.Line, parseErr.Token.Column, true
	}
	var intErr *mdwparser.IntegerError
	if errors.As(err, &intErr) {
		return intErr.Token.Line, intErr.Token.Column, true
	}
	return 0, 0, false
}

// resize fits the viewport between header, error pane and footer
func (m *Model) resize() {
	headerHeight := 5 // Title + tabs
	footerHeight := 3 // Status bar + help
	viewportHeight := m.height - headerHeight - footerHeight - m.errorHeight()
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width-4, viewportHeight)
		m.viewport.YPosition = headerHeight
		m.ready = true
	} else {
		m.viewport.Width = m.width - 4
		m.viewport.Height = viewportHeight
	}
}

func (m Model) errorHeight() int {
	if m.err == nil {
		return 0
	}
	return 3
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading explorer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(PanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorPanelStyle.Width(m.width - 2).Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		HelpDescStyle.Render(m.name),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 3)
	for _, p := range []Pane{PaneSource, PaneTokens, PaneAST} {
		title := fmt.Sprintf("%d %s", int(p)+1, p)
		if p == m.pane {
			tabs = append(tabs, ActiveTabStyle.Render(title))
		} else {
			tabs = append(tabs, TabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatusBar() string {
	var status string
	if m.err != nil {
		status = StatusErrorStyle.Render("failed")
	} else {
		status = StatusOKStyle.Render("ok")
	}
	info := fmt.Sprintf("%s  %d tokens  %d bytes", status, len(m.tokens), len(m.source))
	if m.def != nil {
		nodes := mdwast.CollectNodes(m.def)
		info += fmt.Sprintf("  depth %d  %d calls  %d refs", mdwast.Depth(m.def), len(nodes.Calls), len(nodes.References))
	}
	if m.Cached() {
		info += "  " + StatusOKStyle.Render("cached")
	}
	if m.hasStats {
		info += "  cache " + m.stats.String()
	}
	return StatusBarStyle.Width(m.width - 2).Render(info)
}

func (m Model) renderHelpBar() string {
	hints := []string{
		RenderKeyHint("tab", "next pane"),
		RenderKeyHint("1-3", "select pane"),
		RenderKeyHint("r", "reload"),
		RenderKeyHint("↑/↓", "scroll"),
		RenderKeyHint("q", "quit"),
	}
	return strings.Join(hints, "  ")
}
