package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/smpl/internal/compiler"
	"github.com/msto63/smpl/internal/printer"
)

var (
	parseFormat    string
	parseLegacyEnd bool
	parsePositions bool
	parseNoColor   bool
	parseIndent    int
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a Smpl program and print its syntax tree",
	Long: `Parses a Smpl program and prints the syntax tree.

Without an argument test.smp is read; "-" reads standard input.

Formats:
  tree    - indented tree (default)
  json    - JSON document
  yaml    - YAML document
  source  - canonical Smpl text

Examples:
  smpl parse prog.smp
  smpl parse --format json prog.smp
  echo "def f(x) x end" | smpl parse -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format (tree, json, yaml, source)")
	parseCmd.Flags().BoolVar(&parseLegacyEnd, "legacy-end", false, "match \"end\" as a prefix (endpoint scans as end + point)")
	parseCmd.Flags().BoolVarP(&parsePositions, "positions", "p", false, "include source positions")
	parseCmd.Flags().BoolVar(&parseNoColor, "no-color", false, "disable colored output")
	parseCmd.Flags().IntVar(&parseIndent, "indent", 0, "indentation width")
}

func runParse(cmd *cobra.Command, args []string) error {
	applyScannerFlags(cmd)
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = parseFormat
	}
	if cmd.Flags().Changed("positions") {
		cfg.Explorer.ShowPositions = parsePositions
	}
	if cmd.Flags().Changed("no-color") {
		cfg.Output.NoColor = parseNoColor
	}
	if cmd.Flags().Changed("indent") {
		cfg.Output.Indent = parseIndent
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	svc, err := compiler.NewFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := compileArg(cmd.Context(), svc, cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	p := printer.New(printer.OptionsFromConfig(cfg))
	return p.Write(cmd.OutOrStdout(), cfg.Output.Format, result.AST)
}

// applyScannerFlags copies --legacy-end into the scanner section
func applyScannerFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("legacy-end"); f != nil && f.Changed {
		cfg.Scanner.LegacyEndPrefix = f.Value.String() == "true"
	}
}
