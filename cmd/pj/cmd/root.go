// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"pj/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
)

// errReported marks failures whose output was already written.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "pj",
	Short: "PJ front end",
	Long: `pj tokenizes, parses and checks programs written in PJ, a small
language with assignments, integer expressions and counted loops.

Stages:
  lex      - source text to token stream
  parse    - token stream to syntax tree
  analyze  - syntax tree to resolved variable references
  check    - all stages with readable diagnostics`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $PJ_CONFIG, ./pj.toml or ./pj.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Resolve(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Verbosity = 2
	}
	commonlog.Configure(cfg.Log.Verbosity, cfg.LogPath())

	switch cfg.Output.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
	return nil
}

// readInput returns the name and contents of the file in args, or of stdin.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return args[0], string(data), nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
}
