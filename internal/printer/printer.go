// ============================================================================
// Smpl - Smpl(s) programming language front end
// ============================================================================
//
// Package:     printer
// Description: Renders ASTs as trees, JSON or YAML and tokens as tables
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package printer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/smpl/foundation/core/error"
	mdwast "github.com/msto63/smpl/foundation/smpl/ast"
	mdwparser "github.com/msto63/smpl/foundation/smpl/parser"
	"github.com/msto63/smpl/pkg/core/config"
)

// Banner is printed above tree output
const Banner = "Smpl(s) programming language compiler"

// Options configures a Printer
type Options struct {
	Color bool
	// Indent is the nesting width. Zero prints JSON on one line and keeps
	// the narrowest tree branches; a negative value selects 2.
	Indent        int
	ShowPositions bool
}

// DefaultOptions returns plain output with an indent of 2
func DefaultOptions() Options {
	return Options{Indent: 2}
}

// OptionsFromConfig maps the [output] and [explorer] sections
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Color:         !cfg.Output.NoColor,
		Indent:        cfg.Output.Indent,
		ShowPositions: cfg.Explorer.ShowPositions,
	}
}

// Printer renders ASTs and tokens
type Printer struct {
	opts   Options
	styles Styles
}

// New creates a new printer
func New(opts Options) *Printer {
	if opts.Indent < 0 {
		opts.Indent = 2
	}
	return &Printer{
		opts:   opts,
		styles: NewStyles(opts.Color),
	}
}

// Banner returns the styled banner line
func (p *Printer) Banner() string {
	return p.styles.Banner.Render(Banner)
}

// Error returns the styled error line
func (p *Printer) Error(err error) string {
	return p.styles.Error.Render("error: ") + err.Error()
}

// Tree renders node as an indented tree:
//
//	Definition add(a, b)
//	└── Call add
//	    ├── VariableReference a
//	    └── VariableReference b
func (p *Printer) Tree(node mdwast.Node) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	p.writeTree(&b, node, "", "")
	return b.String()
}

func (p *Printer) writeTree(b *strings.Builder, node mdwast.Node, prefix, childPrefix string) {
	b.WriteString(p.styles.Branch.Render(prefix))
	b.WriteString(node.Accept(&labelVisitor{styles: p.styles}).(string))
	if p.opts.ShowPositions && node.Position().IsValid() {
		b.WriteString(" ")
		b.WriteString(p.styles.Position.Render("@" + node.Position().String()))
	}
	b.WriteString("\n")

	children := childrenOf(node)
	width := max(p.opts.Indent, 1)
	dash := strings.Repeat("─", width)
	pad := strings.Repeat(" ", width)
	for i, child := range children {
		if i == len(children)-1 {
			p.writeTree(b, child, childPrefix+"└"+dash+" ", childPrefix+" "+pad+" ")
		} else {
			p.writeTree(b, child, childPrefix+"├"+dash+" ", childPrefix+"│"+pad+" ")
		}
	}
}

func childrenOf(node mdwast.Node) []mdwast.Node {
	switch n := node.(type) {
	case *mdwast.Definition:
		if n.Body == nil {
			return nil
		}
		return []mdwast.Node{n.Body}
	case *mdwast.Call:
		return n.Arguments
	default:
		return nil
	}
}

// labelVisitor renders the one-line label of a node
type labelVisitor struct {
	styles Styles
}

func (v *labelVisitor) VisitIntegerLiteral(n *mdwast.IntegerLiteral) interface{} {
	return v.styles.Kind.Render("IntegerLiteral") + " " + v.styles.Literal.Render(strconv.FormatInt(n.Value, 10))
}

func (v *labelVisitor) VisitVariableReference(n *mdwast.VariableReference) interface{} {
	return v.styles.Kind.Render("VariableReference") + " " + v.styles.Name.Render(n.Name)
}

func (v *labelVisitor) VisitDefinition(n *mdwast.Definition) interface{} {
	params := "(" + strings.Join(n.Parameters, ", ") + ")"
	return v.styles.Kind.Render("Definition") + " " + v.styles.Name.Render(n.Name) + v.styles.Params.Render(params)
}

func (v *labelVisitor) VisitCall(n *mdwast.Call) interface{} {
	return v.styles.Kind.Render("Call") + " " + v.styles.Name.Render(n.Name)
}

// Tokens renders tokens as a table of kind, lexeme and position
func (p *Printer) Tokens(tokens []mdwparser.Token) string {
	rows := make([][]string, len(tokens))
	for i, tok := range tokens {
		rows[i] = []string{
			strconv.Itoa(i),
			tok.Kind.String(),
			tok.Lexeme,
			fmt.Sprintf("%d:%d", tok.Line, tok.Column),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.styles.Border).
		Headers("#", "KIND", "LEXEME", "POSITION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.styles.Header
			}
			if col == 1 && row >= 0 && row < len(rows) {
				if style, ok := p.styles.TokenKinds[rows[row][1]]; ok {
					return style
				}
			}
			return p.styles.Cell
		})

	return t.String()
}

// Write renders def in the given output format. Trees that break the node
// invariants are rejected before anything is written.
func (p *Printer) Write(w io.Writer, format string, def *mdwast.Definition) error {
	if def == nil {
		return mdwerror.New("no syntax tree").
			WithCode(mdwerror.CodeInternal).
			WithOperation("printer.Write")
	}
	if errs := mdwast.ValidateAST(def); len(errs) > 0 {
		return mdwerror.Wrap(errors.Join(errs...), "invalid syntax tree").
			WithCode(mdwerror.CodeInternal).
			WithOperation("printer.Write")
	}

	var out []byte
	var err error

	switch format {
	case config.FormatTree, "":
		out = []byte(p.Banner() + "\n" + p.Tree(def))
	case config.FormatSource:
		out = []byte(def.String() + "\n")
	case config.FormatJSON:
		out, err = JSON(def, p.opts.Indent, p.opts.ShowPositions)
		out = append(out, '\n')
	case config.FormatYAML:
		out, err = YAML(def, p.opts.Indent, p.opts.ShowPositions)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

// JSON encodes node as nested objects tagged with "kind"
func JSON(node mdwast.Node, indent int, positions bool) ([]byte, error) {
	doc := node.Accept(&docVisitor{positions: positions})
	if indent <= 0 {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
}

// YAML encodes node with the same shape as JSON
func YAML(node mdwast.Node, indent int, positions bool) ([]byte, error) {
	doc := node.Accept(&docVisitor{positions: positions})

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
