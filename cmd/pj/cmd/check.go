// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pj/internal/ast"
	"pj/internal/driver"
	pjerrors "pj/internal/errors"
)

var (
	checkTree bool
	checkRefs bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run every stage on a source file",
	Long: `Tokenizes, parses and analyzes a PJ program and reports the first
error with source context.

Examples:
  pj check program.pj
  pj check --tree --refs program.pj`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkTree, "tree", false, "print the syntax tree")
	checkCmd.Flags().BoolVar(&checkRefs, "refs", false, "print resolved references")
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := driver.New(cfg).Run(cmd.Context(), name, source)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if checkTree && result.Tree != nil {
		if err := ast.WriteLinear(out, result.Tree, cfg.IndentString()); err != nil {
			return err
		}
	}
	if checkRefs {
		for _, ref := range result.References {
			fmt.Fprintln(out, ref.String())
		}
	}

	if !result.OK() {
		reporter := pjerrors.NewErrorReporter(name, source)
		diag := driver.Diagnostic(result.Err)
		fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatError(diag))
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Check failed (%s: %s) after %s",
			pjerrors.GetErrorCategory(diag.Code), pjerrors.GetErrorDescription(diag.Code), formatDuration(result.Duration)))
		return errReported
	}

	fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("Successfully checked %s in %s", name, formatDuration(result.Duration)))
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
