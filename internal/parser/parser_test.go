package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pj/internal/ast"
	"pj/internal/token"
)

func mustParse(t *testing.T, source string) *ast.Node {
	t.Helper()
	tree, _, err := ParseSource("test.pj", source, Config{})
	require.NoError(t, err)
	require.NotNil(t, tree)
	return tree
}

func parseError(t *testing.T, source string) *SyntaxError {
	t.Helper()
	tree, _, err := ParseSource("test.pj", source, Config{})
	require.Error(t, err)
	assert.Nil(t, tree, "no partial tree on error")
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	return syntaxErr
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestParseEmptyInput(t *testing.T) {
	tree, err := Parse(nil, Config{})
	require.NoError(t, err)
	assert.Equal(t, lines("<program>", " <lista_naredbi>", "  $"), ast.Linearize(tree))
}

func TestParseAssignment(t *testing.T) {
	tree := mustParse(t, "x = 5")
	expected := lines(
		"<program>",
		" <lista_naredbi>",
		"  <naredba>",
		"   <naredba_pridruzivanja>",
		"    IDN 1 x",
		"    OP_PRIDRUZI 1 =",
		"    <E>",
		"     <T>",
		"      <P>",
		"       BROJ 1 5",
		"      <T_lista>",
		"       $",
		"     <E_lista>",
		"      $",
		"  <lista_naredbi>",
		"   $",
	)
	assert.Equal(t, expected, ast.Linearize(tree))
}

func TestParseRightAssociative(t *testing.T) {
	tree := mustParse(t, "x = a - b - c")
	expected := lines(
		"<program>",
		" <lista_naredbi>",
		"  <naredba>",
		"   <naredba_pridruzivanja>",
		"    IDN 1 x",
		"    OP_PRIDRUZI 1 =",
		"    <E>",
		"     <T>",
		"      <P>",
		"       IDN 1 a",
		"      <T_lista>",
		"       $",
		"     <E_lista>",
		"      OP_MINUS 1 -",
		"      <E>",
		"       <T>",
		"        <P>",
		"         IDN 1 b",
		"        <T_lista>",
		"         $",
		"       <E_lista>",
		"        OP_MINUS 1 -",
		"        <E>",
		"         <T>",
		"          <P>",
		"           IDN 1 c",
		"          <T_lista>",
		"           $",
		"         <E_lista>",
		"          $",
		"  <lista_naredbi>",
		"   $",
	)
	assert.Equal(t, expected, ast.Linearize(tree))
}

func TestParseTermChain(t *testing.T) {
	tree := mustParse(t, "x = a * b / c")
	out := ast.Linearize(tree)
	assert.Contains(t, out, lines(
		"      <T_lista>",
		"       OP_PUTA 1 *",
		"       <T>",
		"        <P>",
		"         IDN 1 b",
		"        <T_lista>",
		"         OP_DIJELI 1 /",
		"         <T>",
	))
}

func TestParseEmptyLoopBody(t *testing.T) {
	tree := mustParse(t, "za i od 1 do 10\naz")
	expected := lines(
		"<program>",
		" <lista_naredbi>",
		"  <naredba>",
		"   <za_petlja>",
		"    KR_ZA 1 za",
		"    IDN 1 i",
		"    KR_OD 1 od",
		"    <E>",
		"     <T>",
		"      <P>",
		"       BROJ 1 1",
		"      <T_lista>",
		"       $",
		"     <E_lista>",
		"      $",
		"    KR_DO 1 do",
		"    <E>",
		"     <T>",
		"      <P>",
		"       BROJ 1 10",
		"      <T_lista>",
		"       $",
		"     <E_lista>",
		"      $",
		"    <lista_naredbi>",
		"     $",
		"    KR_AZ 2 az",
		"  <lista_naredbi>",
		"   $",
	)
	assert.Equal(t, expected, ast.Linearize(tree))
}

func TestParseUnaryAndParens(t *testing.T) {
	tree := mustParse(t, "x = -(a + 1) * +-b")
	out := ast.Linearize(tree)
	assert.Contains(t, out, lines(
		"      <P>",
		"       OP_MINUS 1 -",
		"       <P>",
		"        L_ZAGRADA 1 (",
		"        <E>",
	))
	assert.Contains(t, out, "        D_ZAGRADA 1 )\n")
	assert.Contains(t, out, lines(
		"        <P>",
		"         OP_PLUS 1 +",
		"         <P>",
		"          OP_MINUS 1 -",
		"          <P>",
		"           IDN 1 b",
	))
}

func TestParseProgram(t *testing.T) {
	source := `n = 10
rez = 0
za i od 1 do n
  za j od i do n
    rez = rez + i * j
  az
az
`
	tree := mustParse(t, source)
	toks := tree.Tokens()
	require.NotEmpty(t, toks)
	assert.Equal(t, token.KR_AZ, toks[len(toks)-1].Kind)
	assert.Equal(t, 7, toks[len(toks)-1].Line)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"stray az", "x = 1\naz", "err KR_AZ 2 az"},
		{"missing closing paren", "x = (a + b", "err kraj"},
		{"wrong token instead of paren", "x = (a\ny = 2", "err IDN 2 y"},
		{"missing assignment operator", "x 5", "err BROJ 1 5"},
		{"dangling operator", "x = a +", "err kraj"},
		{"statement starts with number", "5 = x", "err BROJ 1 5"},
		{"unterminated loop", "za i od 1 do 2\nx = i", "err kraj"},
		{"missing od", "za i do 2 az", "err KR_DO 1 do"},
		{"paren after term", "x = a (c)", "err L_ZAGRADA 1 ("},
		{"assignment inside expression", "x = a = b", "err OP_PRIDRUZI 1 ="},
		{"empty parens", "x = ()", "err D_ZAGRADA 1 )"},
		{"keyword as target", "od = 1", "err KR_OD 1 od"},
		{"empty expression", "x =", "err kraj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(t, tt.source)
			assert.Equal(t, tt.expected, err.Line())
		})
	}
}

func TestSyntaxErrorDetails(t *testing.T) {
	err := parseError(t, "x = 1\n  az")
	require.False(t, err.AtEnd())
	assert.Equal(t, 3, err.Token.Column)
	assert.Equal(t, []string{"kraj"}, err.Expected)

	diag := err.CompilerError()
	assert.Equal(t, "E0100", diag.Code)
	assert.Equal(t, 2, diag.Position.Line)
	assert.Equal(t, 3, diag.Position.Column)

	err = parseError(t, "x = (a")
	require.True(t, err.AtEnd())
	assert.Equal(t, 1, err.LastLine)
	assert.Contains(t, err.Expected, "D_ZAGRADA")
	assert.Equal(t, "E0101", err.CompilerError().Code)
	assert.Contains(t, err.Error(), "end of input")
}

func TestParseFromTokenStream(t *testing.T) {
	stream := "IDN 3 x\nOP_PRIDRUZI 3 =\nBROJ 3 7\n"
	tokens, err := token.ReadStream(strings.NewReader(stream))
	require.NoError(t, err)

	tree, err := Parse(tokens, Config{Debug: true})
	require.NoError(t, err)
	assert.Contains(t, ast.Linearize(tree), "    IDN 3 x\n")
}
