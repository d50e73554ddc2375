// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pj/grammar"
)

var ebnfCmd = &cobra.Command{
	Use:   "ebnf",
	Short: "Print the PJ grammar in EBNF",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), grammar.EBNF())
	},
}

func init() {
	rootCmd.AddCommand(ebnfCmd)
}
