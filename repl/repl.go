// Package repl reads PJ programs interactively and prints their tree and
// resolved references.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"pj/internal/ast"
	"pj/internal/driver"
	pjerrors "pj/internal/errors"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "
)

// Start runs the loop until in is exhausted. Lines are buffered until an
// empty line and then checked as one program.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	d := driver.New(nil)

	var buf []string
	for {
		if len(buf) == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUATION)
		}
		if !scanner.Scan() {
			if len(buf) > 0 {
				fmt.Fprintln(out)
				run(d, strings.Join(buf, "\n"), out)
			}
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			buf = append(buf, line)
			continue
		}
		if len(buf) == 0 {
			continue
		}
		run(d, strings.Join(buf, "\n"), out)
		buf = buf[:0]
	}
}

func run(d *driver.Driver, source string, out io.Writer) {
	result, err := d.Run(context.Background(), "<repl>", source)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}

	if result.Tree != nil {
		fmt.Fprintf(out, "AST:\n%s", ast.Linearize(result.Tree))
	}
	if len(result.References) > 0 {
		fmt.Fprintln(out, "References:")
		for _, ref := range result.References {
			fmt.Fprintln(out, ref.String())
		}
	}
	if !result.OK() {
		reporter := pjerrors.NewErrorReporter("<repl>", source)
		fmt.Fprint(out, reporter.FormatError(driver.Diagnostic(result.Err)))
	}
}
