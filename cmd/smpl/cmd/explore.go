package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/smpl/foundation/core/log"
	"github.com/msto63/smpl/internal/compiler"
	"github.com/msto63/smpl/internal/printer"
	"github.com/msto63/smpl/internal/tui/explorer"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [file|-]",
	Short: "Browse source, tokens and syntax tree interactively",
	Long: `Opens a terminal UI with three panes: the source text, the token
stream and the syntax tree. Errors are shown below the panes and
marked in the source.

Keys:
  tab / shift+tab  switch panes
  1, 2, 3          select pane
  r                reload the file
  q, ctrl+c        quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, keep log output off the screen
	quiet := mdwlog.Discard()

	// Reloading an unchanged file is then served from the [cache] section
	svc, err := compiler.NewFromConfig(cfg, quiet)
	if err != nil {
		return err
	}
	defer svc.Close()

	name := sourceArg(args)
	load := func() (string, error) {
		_, source, err := readArg(cmd.InOrStdin(), args, cfg.Scanner.MaxSourceBytes)
		return source, err
	}
	if name == stdinName {
		// Standard input can be read only once
		_, source, err := readArg(cmd.InOrStdin(), args, cfg.Scanner.MaxSourceBytes)
		if err != nil {
			return err
		}
		name = "<stdin>"
		load = func() (string, error) { return source, nil }
	}

	opts := printer.OptionsFromConfig(cfg)
	opts.Color = true
	model := explorer.New(explorer.Config{
		Name:     name,
		Load:     load,
		Compiler: svc,
		Printer:  printer.New(opts),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explorer failed: %w", err)
	}
	return nil
}
