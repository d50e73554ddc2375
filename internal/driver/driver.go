// Package driver runs the PJ front end stages and renders their output.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"pj/internal/ast"
	"pj/internal/config"
	pjerrors "pj/internal/errors"
	"pj/internal/lexer"
	"pj/internal/parser"
	"pj/internal/semantic"
	"pj/internal/token"
)

var log = commonlog.GetLogger("pj.driver")

// Stage identifies the step that produced a Result's error.
type Stage string

const (
	StageLex     Stage = "lex"
	StageParse   Stage = "parse"
	StageAnalyze Stage = "analyze"
)

// Result holds everything one run produced. Later fields are empty when an
// earlier stage failed; References may be partial on a semantic error.
type Result struct {
	RunID      string
	Tokens     []token.Token
	Tree       *ast.Node
	References []semantic.Reference

	// Declarations are the identifier tokens that introduced a variable.
	Declarations []token.Token

	Err      error
	Stage    Stage
	Duration time.Duration
}

// OK reports whether every stage succeeded.
func (r *Result) OK() bool {
	return r.Err == nil
}

// Driver runs source text through lexer, parser and analyzer.
type Driver struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Driver {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Driver{cfg: cfg}
}

func (d *Driver) ParserConfig() parser.Config {
	return parser.Config{Debug: d.cfg.Parser.Debug}
}

func (d *Driver) AnalyzerConfig() semantic.Config {
	return semantic.Config{Debug: d.cfg.Analyzer.Debug, Suggestions: d.cfg.Analyzer.Suggestions}
}

// Run lexes, parses and analyzes source. Stage errors are reported in the
// Result; the returned error is only set when ctx is done.
func (d *Driver) Run(ctx context.Context, filename, source string) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	runLog := commonlog.NewKeyValueLogger(log, "run", res.RunID, "file", filename)
	defer func() {
		res.Duration = time.Since(start)
		runLog.Debugf("finished in %s", res.Duration)
	}()

	res.Tokens, res.Err = lexer.Lex(filename, source)
	if res.Err != nil {
		res.Stage = StageLex
		runLog.Infof("lexing failed: %s", res.Err)
		return res, nil
	}
	runLog.Debugf("%d tokens", len(res.Tokens))
	if err := ctx.Err(); err != nil {
		return res, err
	}

	res.Tree, res.Err = parser.New(res.Tokens, d.ParserConfig()).Parse()
	if res.Err != nil {
		res.Stage = StageParse
		runLog.Infof("parsing failed: %s", res.Err)
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	analyzer := semantic.NewAnalyzer(d.AnalyzerConfig())
	res.References, res.Err = analyzer.Analyze(res.Tree)
	res.Declarations = analyzer.Declarations()
	if res.Err != nil {
		res.Stage = StageAnalyze
		runLog.Infof("analysis failed: %s", res.Err)
		return res, nil
	}
	runLog.Debugf("%d references resolved", len(res.References))
	return res, nil
}

// ParseStream reads a token stream and writes the linearized tree, or the
// "err" line on a syntax error. The syntax error is also returned.
func (d *Driver) ParseStream(r io.Reader, w io.Writer) error {
	tokens, err := token.ReadStream(r)
	if err != nil {
		return err
	}
	tree, err := parser.New(tokens, d.ParserConfig()).Parse()
	return WriteParse(w, tree, err, d.cfg.IndentString())
}

// AnalyzeTree reads a linearized tree and writes the resolved references,
// followed by the "err" line on a semantic error. The semantic error is also
// returned.
func (d *Driver) AnalyzeTree(r io.Reader, w io.Writer) error {
	tree, err := ast.ReadLinear(r)
	if err != nil {
		return err
	}
	refs, err := semantic.NewAnalyzer(d.AnalyzerConfig()).Analyze(tree)
	return WriteReferences(w, refs, err)
}

// WriteParse writes the parser output form of tree or err.
func WriteParse(w io.Writer, tree *ast.Node, err error, indent string) error {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		if _, werr := fmt.Fprintln(w, syntaxErr.Line()); werr != nil {
			return werr
		}
		return err
	}
	if err != nil {
		return err
	}
	return ast.WriteLinear(w, tree, indent)
}

// WriteReferences writes one line per reference and then the "err" line
// when err is a semantic error.
func WriteReferences(w io.Writer, refs []semantic.Reference, err error) error {
	for _, ref := range refs {
		if _, werr := fmt.Fprintln(w, ref.String()); werr != nil {
			return werr
		}
	}
	var semErr *semantic.SemanticError
	if errors.As(err, &semErr) {
		if _, werr := fmt.Fprintln(w, semErr.Line()); werr != nil {
			return werr
		}
	}
	return err
}

// Diagnostic converts any stage error into a CompilerError.
func Diagnostic(err error) pjerrors.CompilerError {
	var (
		syntaxErr *parser.SyntaxError
		semErr    *semantic.SemanticError
		lexErr    *lexer.Error
		streamErr *token.StreamError
		treeErr   *ast.LinearError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return syntaxErr.CompilerError()
	case errors.As(err, &semErr):
		return semErr.CompilerError()
	case errors.As(err, &lexErr):
		return pjerrors.NewDiagnostic(pjerrors.ErrorInvalidSource, lexErr.Message,
			pjerrors.Position{Line: lexErr.Line, Column: lexErr.Column}).Build()
	case errors.As(err, &streamErr):
		return pjerrors.NewDiagnostic(pjerrors.ErrorInvalidTokenStream, streamErr.Message,
			pjerrors.Position{Line: streamErr.Row}).Build()
	case errors.As(err, &treeErr):
		return pjerrors.NewDiagnostic(pjerrors.ErrorInvalidTree, treeErr.Message,
			pjerrors.Position{Line: treeErr.Row}).Build()
	default:
		return pjerrors.NewDiagnostic("", err.Error(), pjerrors.Position{}).Build()
	}
}
