// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"pj/internal/driver"
	"pj/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Build the syntax tree of a token stream",
	Long: `Reads a token stream (KIND LINE LEXEME per line) and prints the
syntax tree, one node per line, indented by depth. On a syntax error only
"err KIND LINE LEXEME" or "err kraj" is printed.

Examples:
  pj lex program.pj | pj parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	_, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	err = driver.New(cfg).ParseStream(strings.NewReader(input), cmd.OutOrStdout())
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errReported
	}
	return err
}
