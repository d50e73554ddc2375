package parser

import (
	"pj/internal/ast"
	"pj/internal/lexer"
	"pj/internal/token"
)

// ParseSource tokenizes and parses PJ source text. The tokens are returned
// even when parsing fails.
func ParseSource(path string, source string, cfg Config) (*ast.Node, []token.Token, error) {
	tokens, err := lexer.Lex(path, source)
	if err != nil {
		return nil, nil, err
	}
	tree, err := New(tokens, cfg).Parse()
	return tree, tokens, err
}
