// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"pj/internal/driver"
	"pj/internal/semantic"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Resolve variable references in a syntax tree",
	Long: `Reads a syntax tree as printed by "pj parse" and prints every
variable use as USAGE_LINE DECLARATION_LINE NAME. The first use of an
undeclared variable ends the output with "err LINE NAME".

Examples:
  pj lex program.pj | pj parse | pj analyze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	_, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	err = driver.New(cfg).AnalyzeTree(strings.NewReader(input), cmd.OutOrStdout())
	var semErr *semantic.SemanticError
	if errors.As(err, &semErr) {
		return errReported
	}
	return err
}
