package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/smpl/foundation/smpl"
	"github.com/msto63/smpl/internal/printer"
)

var tokensLegacyEnd bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the token stream of a Smpl program",
	Long: `Scans a Smpl program and prints one row per token with its kind,
lexeme and position. Parsing is not attempted.

Examples:
  smpl tokens prog.smp
  smpl tokens --legacy-end prog.smp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensLegacyEnd, "legacy-end", false, "match \"end\" as a prefix (endpoint scans as end + point)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	applyScannerFlags(cmd)

	_, source, err := readArg(cmd.InOrStdin(), args, cfg.Scanner.MaxSourceBytes)
	if err != nil {
		return err
	}

	engine, err := smpl.New(smpl.Options{
		Logger:          logger,
		LegacyEndPrefix: cfg.Scanner.LegacyEndPrefix,
		MaxSourceLength: cfg.Scanner.MaxSourceBytes,
	})
	if err != nil {
		return err
	}

	tokens, err := engine.Tokenize(source)
	if err != nil {
		return err
	}

	p := printer.New(printer.OptionsFromConfig(cfg))
	fmt.Fprintln(cmd.OutOrStdout(), p.Tokens(tokens))
	return nil
}
