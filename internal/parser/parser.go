// Package parser builds the PJ syntax tree from a token sequence.
//
// The parser is LL(1) recursive descent with one method per nonterminal.
// Epsilon alternatives are chosen when the lookahead is in the FOLLOW set of
// the nonterminal; any other token is a syntax error. The first error ends
// the parse and no partial tree is returned.
package parser

import (
	"github.com/tliron/commonlog"

	"pj/internal/ast"
	"pj/internal/token"
)

// Config controls a single parser.
type Config struct {
	// Debug traces every production and consumed token at debug level.
	Debug bool
}

type Parser struct {
	tokens  []token.Token
	current int

	cfg   Config
	log   commonlog.Logger
	depth int
}

func New(tokens []token.Token, cfg Config) *Parser {
	return &Parser{
		tokens: tokens,
		cfg:    cfg,
		log:    commonlog.GetLogger("pj.parser"),
	}
}

// Parse consumes the whole token sequence. It returns the <program> tree or
// a *SyntaxError.
func (p *Parser) Parse() (*ast.Node, error) {
	program, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	// A stray top-level "az" or any other leftover token is an error, not ignored.
	if !p.isAtEnd() {
		return nil, p.errorAtCurrent(newKindSet(endOfInput))
	}
	return program, nil
}

// Parse is shorthand for New(tokens, cfg).Parse().
func Parse(tokens []token.Token, cfg Config) (*ast.Node, error) {
	return New(tokens, cfg).Parse()
}
