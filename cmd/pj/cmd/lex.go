// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"github.com/spf13/cobra"

	"pj/internal/lexer"
	"pj/internal/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the token stream of a source file",
	Long: `Splits PJ source into tokens and prints one per line as
KIND LINE LEXEME.

Examples:
  pj lex program.pj
  cat program.pj | pj lex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	name, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Lex(name, source)
	if err != nil {
		return err
	}
	return token.WriteStream(cmd.OutOrStdout(), tokens)
}
