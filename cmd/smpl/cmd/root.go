package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/smpl/foundation/core/error"
	mdwlog "github.com/msto63/smpl/foundation/core/log"
	"github.com/msto63/smpl/internal/printer"
	"github.com/msto63/smpl/pkg/core/config"
	"github.com/msto63/smpl/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string

	// Loaded by the root PersistentPreRunE
	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "smpl",
	Short: "Smpl(s) programming language front end",
	Long: `smpl scans and parses programs in the Smpl language.

A program is a single definition:

  def add(a, b) add(a, b) end

Commands:
  parse    - print the syntax tree (tree, json, yaml or source)
  tokens   - print the token stream
  explore  - browse source, tokens and syntax tree interactively
  config   - show the effective configuration
  version  - print version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints the error, if any
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SMPL_CONFIG, ./smpl.toml, ./configs/smpl.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json, logfmt)")
}

// setup loads the configuration and installs the default logger
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		loaded.General.LogLevel = logLevel
	}
	if logFormat != "" {
		loaded.General.LogFormat = logFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger = logging.FromConfig(cfg.General, verbose, cmd.ErrOrStderr())
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", logging.KV("command", cmd.Name(), "config", cfgFile))
	return nil
}

// Exit codes returned by ExitCode
const (
	ExitFailure = 1
	ExitSyntax  = 2
)

// ExitCode maps an error from Execute to the process exit status. Errors in
// the Smpl source exit with ExitSyntax.
func ExitCode(err error) int {
	if mdwerror.GetCode(err).IsSyntax() {
		return ExitSyntax
	}
	return ExitFailure
}

// printError prints err below the command output. Scanner and parser errors
// carry their position, so only their own message is shown.
func printError(w io.Writer, err error) {
	var mdwErr *mdwerror.Error
	if mdwerror.GetCode(err).IsSyntax() && errors.As(err, &mdwErr) && mdwErr.Unwrap() != nil {
		err = mdwErr.Unwrap()
	}

	p := printer.New(printer.Options{Color: cfg != nil && !cfg.Output.NoColor})
	fmt.Fprintln(w, p.Error(err))
}
