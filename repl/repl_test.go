package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestStartRunsBufferedProgram(t *testing.T) {
	in := strings.NewReader("x = 1\ny = x\n\n")
	var out bytes.Buffer

	Start(in, &out)

	got := out.String()
	assert.Contains(t, got, "AST:\n<program>\n <lista_naredbi>\n")
	assert.Contains(t, got, "References:\n2 1 x\n")
	assert.True(t, strings.HasPrefix(got, PROMPT+CONTINUATION+CONTINUATION))
}

func TestStartRunsRemainderAtEOF(t *testing.T) {
	var out bytes.Buffer

	Start(strings.NewReader("a = b"), &out)

	got := out.String()
	assert.Contains(t, got, "AST:")
	assert.Contains(t, got, "error[E0001]: undeclared variable 'b'")
	assert.NotContains(t, got, "References:")
}

func TestStartReportsSyntaxError(t *testing.T) {
	var out bytes.Buffer

	Start(strings.NewReader("za i od 1 do 2\n\n"), &out)

	got := out.String()
	assert.NotContains(t, got, "AST:")
	assert.Contains(t, got, "error[E0101]")
}

func TestStartSkipsBlankLines(t *testing.T) {
	var out bytes.Buffer

	Start(strings.NewReader("\n\n"), &out)

	assert.Equal(t, PROMPT+PROMPT+PROMPT, out.String())
}
