package semantic

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pj/internal/ast"
	"pj/internal/parser"
)

func analyzeSource(t *testing.T, source string, cfg Config) ([]string, error) {
	t.Helper()
	tree, _, err := parser.ParseSource("test.pj", source, parser.Config{})
	require.NoError(t, err, "Should have no parse errors")
	require.NotNil(t, tree)

	refs, err := NewAnalyzer(cfg).Analyze(tree)
	var out []string
	for _, r := range refs {
		out = append(out, r.String())
	}
	return out, err
}

func semanticError(t *testing.T, err error) *SemanticError {
	t.Helper()
	require.Error(t, err)
	var semErr *SemanticError
	require.True(t, errors.As(err, &semErr))
	return semErr
}

func TestBasicResolution(t *testing.T) {
	refs, err := analyzeSource(t, "n = 10\nrez = n * 2\n", Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2 1 n"}, refs)
}

func TestNoReferences(t *testing.T) {
	refs, err := analyzeSource(t, "x = 1\ny = 2", Config{})
	require.NoError(t, err)
	assert.Empty(t, refs)

	refs, err = analyzeSource(t, "", Config{})
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestUndeclaredVariable(t *testing.T) {
	refs, err := analyzeSource(t, "a = 1\nb = a + c", Config{})
	semErr := semanticError(t, err)
	assert.Equal(t, "err 2 c", semErr.Line())
	assert.Equal(t, Undeclared, semErr.Reason)
	assert.Equal(t, []string{"2 1 a"}, refs, "references before the error are kept")
}

func TestSelfReference(t *testing.T) {
	_, err := analyzeSource(t, "x = x + 1", Config{})
	semErr := semanticError(t, err)
	assert.Equal(t, "err 1 x", semErr.Line())
	assert.Equal(t, SelfReference, semErr.Reason)
	require.NotNil(t, semErr.Declaration)
	assert.Equal(t, 1, semErr.Declaration.Line)
	assert.Equal(t, "E0002", semErr.CompilerError().Code)
}

func TestRedeclarationKeepsFirstEntry(t *testing.T) {
	refs, err := analyzeSource(t, "x = 1\nx = x + 1\ny = x", Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2 1 x", "3 1 x"}, refs)
}

func TestLoopVariableInOwnRange(t *testing.T) {
	_, err := analyzeSource(t, "i = 1\nza i od i do 3\naz", Config{})
	semErr := semanticError(t, err)
	assert.Equal(t, "err 2 i", semErr.Line())
	assert.Equal(t, SelfReference, semErr.Reason)
}

func TestScopeDiscardedAfterLoop(t *testing.T) {
	source := "za i od 1 do 3\n  y = i\naz\nz = y\n"
	refs, err := analyzeSource(t, source, Config{})
	semErr := semanticError(t, err)
	assert.Equal(t, "err 4 y", semErr.Line())
	assert.Equal(t, []string{"2 1 i"}, refs)
}

func TestRedeclarationAfterLoopScope(t *testing.T) {
	source := "za i od 1 do 3\nt = 1\naz\nt = 2\nu = t\n"
	refs, err := analyzeSource(t, source, Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"5 4 t"}, refs)
}

func TestLoopVariableDiscardedAfterLoop(t *testing.T) {
	_, err := analyzeSource(t, "za i od 1 do 3\naz\nx = i", Config{})
	assert.Equal(t, "err 3 i", semanticError(t, err).Line())
}

func TestOuterVariableUpdatedInLoop(t *testing.T) {
	source := "x = 0\nza i od 1 do 2\n  x = x + i\naz\ny = x\n"
	refs, err := analyzeSource(t, source, Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"3 1 x", "3 2 i", "5 1 x"}, refs)
}

func TestLoopVariableShadowsOuter(t *testing.T) {
	source := "i = 5\nza i od 1 do 2\n  x = i\naz\ny = i\n"
	refs, err := analyzeSource(t, source, Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"3 2 i", "5 1 i"}, refs)
}

func TestNestedLoopBoundaries(t *testing.T) {
	source := `n = 2
za i od 1 do n
za j od i do n
s = i + j
az
t = s
az
`
	refs, err := analyzeSource(t, source, Config{})
	semErr := semanticError(t, err)
	assert.Equal(t, "err 6 s", semErr.Line())
	assert.Equal(t, []string{"2 1 n", "3 2 i", "3 1 n", "4 2 i", "4 3 j"}, refs)
}

func TestNestedLoopsSucceed(t *testing.T) {
	source := `n = 10
rez = 0
za i od 1 do n
  za j od i do n
    rez = rez + i * j
  az
az
`
	refs, err := analyzeSource(t, source, Config{Debug: true})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"3 1 n",
		"4 3 i", "4 1 n",
		"5 2 rez", "5 3 i", "5 4 j",
	}, refs)
}

func TestSuggestions(t *testing.T) {
	_, err := analyzeSource(t, "brojac = 1\nx = brojc", Config{Suggestions: true})
	semErr := semanticError(t, err)
	assert.Equal(t, []string{"brojac"}, semErr.Similar)

	diag := semErr.CompilerError()
	assert.Equal(t, "E0001", diag.Code)
	assert.Contains(t, diag.Suggestions[0].Message, "did you mean 'brojac'?")

	_, err = analyzeSource(t, "brojac = 1\nx = brojc", Config{})
	assert.Empty(t, semanticError(t, err).Similar)
}

func TestAnalyzeLinearizedTree(t *testing.T) {
	text := strings.Join([]string{
		"<program>",
		" <lista_naredbi>",
		"  <naredba>",
		"   <naredba_pridruzivanja>",
		"    IDN 4 y",
		"    OP_PRIDRUZI 4 =",
		"    <E>",
		"     <T>",
		"      <P>",
		"       IDN 4 y",
		"      <T_lista>",
		"       $",
		"     <E_lista>",
		"      $",
		"  <lista_naredbi>",
		"   $",
	}, "\n")
	tree, err := ast.ReadLinear(strings.NewReader(text))
	require.NoError(t, err)

	refs, err := Analyze(tree, Config{})
	assert.Empty(t, refs)
	assert.Equal(t, "err 4 y", semanticError(t, err).Line())
}

func TestMalformedTree(t *testing.T) {
	_, err := Analyze(ast.NewNode(ast.StmtList, ast.Empty{}), Config{})
	assert.ErrorIs(t, err, ErrMalformedTree)

	bad := ast.NewNode(ast.Program,
		ast.NewNode(ast.StmtList,
			ast.NewNode(ast.Stmt,
				ast.NewNode(ast.Assign, ast.Empty{}))))
	_, err = Analyze(bad, Config{})
	assert.ErrorIs(t, err, ErrMalformedTree)
}

func TestDeclarations(t *testing.T) {
	tree, _, err := parser.ParseSource("test.pj", "x = 1\nza i od 1 do 2\n  x = i\n  y = x\naz", parser.Config{})
	require.NoError(t, err)

	a := NewAnalyzer(Config{})
	_, err = a.Analyze(tree)
	require.NoError(t, err)

	var got []string
	for _, d := range a.Declarations() {
		got = append(got, d.String())
	}
	assert.Equal(t, []string{"IDN 1 x", "IDN 2 i", "IDN 4 y"}, got)
}
