// Package semantic checks that every identifier read in a PJ program refers
// to a variable declared earlier in an enclosing scope.
//
// The analyzer walks the tree in pre-order over a stack of declarations. An
// assignment declares its target the first time the name is seen anywhere on
// the stack. A loop opens a scope holding its control variable, which is
// discarded together with everything declared in the body at "az".
package semantic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"pj/internal/ast"
	pjerrors "pj/internal/errors"
	"pj/internal/token"
)

// ErrMalformedTree is returned for trees that do not follow the PJ grammar,
// such as a hand-edited linearized tree.
var ErrMalformedTree = errors.New("malformed syntax tree")

// Config controls a single analyzer.
type Config struct {
	// Debug traces scope pushes, pops and resolutions at debug level.
	Debug bool

	// Suggestions attaches similar names in scope to undeclared-variable
	// errors.
	Suggestions bool
}

type Analyzer struct {
	cfg   Config
	log   commonlog.Logger
	scope *Scope
	refs  []Reference
	decls []token.Token
}

func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{
		cfg: cfg,
		log: commonlog.GetLogger("pj.semantic"),
	}
}

// Analyze resolves every identifier use in root, in pre-order. On failure the
// references resolved before the error are returned with a *SemanticError.
func (a *Analyzer) Analyze(root *ast.Node) ([]Reference, error) {
	a.scope = NewScope()
	a.refs = nil
	a.decls = nil

	if root == nil || root.Label != ast.Program {
		return nil, fmt.Errorf("%w: root is not %s", ErrMalformedTree, ast.Program)
	}
	err := a.analyzeNode(root)
	return a.refs, err
}

// Declarations returns the tokens that introduced a variable during the last
// Analyze call, in the order they were pushed.
func (a *Analyzer) Declarations() []token.Token {
	return a.decls
}

// Analyze is shorthand for NewAnalyzer(cfg).Analyze(root).
func Analyze(root *ast.Node, cfg Config) ([]Reference, error) {
	return NewAnalyzer(cfg).Analyze(root)
}

func (a *Analyzer) analyzeNode(n *ast.Node) error {
	switch n.Label {
	case ast.Assign:
		return a.analyzeAssign(n)
	case ast.ForLoop:
		return a.analyzeForLoop(n)
	case ast.Primary:
		if tok, ok := n.ChildToken(0); ok && tok.Kind == token.IDN {
			if len(n.Children) != 1 {
				return malformed(n)
			}
			return a.resolve(tok)
		}
	}
	return a.analyzeChildren(n)
}

func (a *Analyzer) analyzeChildren(n *ast.Node) error {
	for _, c := range n.Children {
		child, ok := c.(*ast.Node)
		if !ok {
			continue
		}
		if err := a.analyzeNode(child); err != nil {
			return err
		}
	}
	return nil
}

// IDN OP_PRIDRUZI <E>
func (a *Analyzer) analyzeAssign(n *ast.Node) error {
	target, ok := n.ChildToken(0)
	value, ok2 := n.ChildNode(2)
	if !ok || !ok2 || target.Kind != token.IDN || len(n.Children) != 3 {
		return malformed(n)
	}

	if _, declared := a.scope.Lookup(target.Lexeme); !declared {
		a.declare(target)
		a.tracef("declare %s on line %d", target.Lexeme, target.Line)
	}
	return a.analyzeNode(value)
}

// KR_ZA IDN KR_OD <E> KR_DO <E> <lista_naredbi> KR_AZ
func (a *Analyzer) analyzeForLoop(n *ast.Node) error {
	variable, ok := n.ChildToken(1)
	if !ok || variable.Kind != token.IDN || len(n.Children) != 8 {
		return malformed(n)
	}
	from, ok1 := n.ChildNode(3)
	to, ok2 := n.ChildNode(5)
	body, ok3 := n.ChildNode(6)
	if !ok1 || !ok2 || !ok3 {
		return malformed(n)
	}

	a.scope.Open()
	a.declare(variable)
	a.tracef("open loop scope %d with %s on line %d", a.scope.Depth(), variable.Lexeme, variable.Line)

	for _, part := range []*ast.Node{from, to, body} {
		if err := a.analyzeNode(part); err != nil {
			return err
		}
	}

	dropped, _ := a.scope.Close()
	a.tracef("close loop scope, %d declarations dropped, %d entries left", dropped, a.scope.Len())
	return nil
}

func (a *Analyzer) resolve(use token.Token) error {
	decl, found := a.scope.Lookup(use.Lexeme)
	if !found {
		err := &SemanticError{Token: use, Reason: Undeclared}
		if a.cfg.Suggestions {
			err.Similar = pjerrors.FindSimilarNames(use.Lexeme, a.scope.Names())
		}
		a.tracef("undeclared %s on line %d", use.Lexeme, use.Line)
		return err
	}
	if decl.Line() == use.Line {
		declTok := decl.Token
		a.tracef("%s used on its declaring line %d", use.Lexeme, use.Line)
		return &SemanticError{Token: use, Reason: SelfReference, Declaration: &declTok}
	}

	ref := Reference{Name: use.Lexeme, Usage: use, Declaration: decl.Token}
	a.refs = append(a.refs, ref)
	a.tracef("resolve %s", ref)
	return nil
}

func (a *Analyzer) declare(tok token.Token) {
	a.scope.Declare(tok)
	a.decls = append(a.decls, tok)
}

func malformed(n *ast.Node) error {
	return fmt.Errorf("%w: unexpected children of %s", ErrMalformedTree, n.Label)
}

func (a *Analyzer) tracef(format string, args ...any) {
	if !a.cfg.Debug {
		return
	}
	a.log.Debugf(strings.Repeat("  ", a.scope.Depth())+format, args...)
}
