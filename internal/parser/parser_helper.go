package parser

import (
	"strings"

	"pj/internal/ast"
	"pj/internal/token"
)

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

// lookahead returns the kind of the current token, or endOfInput.
func (p *Parser) lookahead() token.Kind {
	if p.isAtEnd() {
		return endOfInput
	}
	return p.tokens[p.current].Kind
}

func (p *Parser) check(k token.Kind) bool {
	return p.lookahead() == k
}

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.current]
	p.current++
	p.tracef("advance %s", tok)
	return tok
}

// consume takes a token of kind k as a leaf, or fails at the current token.
func (p *Parser) consume(k token.Kind) (ast.Leaf, error) {
	if !p.check(k) {
		return ast.Leaf{}, p.errorAtCurrent(newKindSet(k))
	}
	return ast.Leaf{Token: p.advance()}, nil
}

func (p *Parser) errorAtCurrent(expected kindSet) error {
	err := &SyntaxError{Expected: expected.names()}
	if p.isAtEnd() {
		if n := len(p.tokens); n > 0 {
			err.LastLine = p.tokens[n-1].Line
		}
		return err
	}
	tok := p.tokens[p.current]
	err.Token = &tok
	return err
}

// enter logs the start of a production and returns the matching exit.
func (p *Parser) enter(label ast.Label) func() {
	if !p.cfg.Debug {
		return func() {}
	}
	p.tracef("enter %s at %s", label, p.lookahead())
	p.depth++
	return func() {
		p.depth--
		p.tracef("leave %s", label)
	}
}

func (p *Parser) tracef(format string, args ...any) {
	if !p.cfg.Debug {
		return
	}
	p.log.Debugf(strings.Repeat("  ", p.depth)+format, args...)
}
