// Package lexer turns PJ source text into tokens.
//
// Whitespace, operators and parentheses separate tokens. A "//" starts a
// comment that runs to the end of the line. A token that starts with a digit
// ends at the first non-digit, so "12ab" is the number 12 followed by the
// identifier ab. Every other run of characters is a keyword or an identifier.
package lexer

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"pj/internal/token"
)

var Definition = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Number", `[0-9]+`, nil},
		{"Word", `[^\s=+\-*/()0-9][^\s=+\-*/()]*`, nil},
		{"Operator", `[=+\-*/]`, nil},
		{"Paren", `[()]`, nil},
		{"Whitespace", `\s+`, nil},
	},
})

var symbolNames = reverseSymbols(Definition.Symbols())

func reverseSymbols(symbols map[string]lexer.TokenType) map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		names[tt] = name
	}
	return names
}

// Error is a tokenizer failure with its source position.
type Error struct {
	Filename string
	Line     int
	Column   int
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
}

// Lex tokenizes source. Comments and whitespace are dropped; line and column
// numbers are 1-based.
func Lex(filename, source string) ([]token.Token, error) {
	lx, err := Definition.LexString(filename, source)
	if err != nil {
		return nil, fmt.Errorf("failed to start lexer: %w", err)
	}

	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			if lexErr, ok := err.(*lexer.Error); ok {
				return nil, &Error{
					Filename: filename,
					Line:     lexErr.Pos.Line,
					Column:   lexErr.Pos.Column,
					Message:  lexErr.Msg,
				}
			}
			return nil, err
		}
		if tok.EOF() {
			break
		}

		kind, keep := classify(symbolNames[tok.Type], tok.Value)
		if !keep {
			continue
		}
		tokens = append(tokens, token.Token{
			Kind:   kind,
			Line:   tok.Pos.Line,
			Lexeme: tok.Value,
			Column: tok.Pos.Column,
		})
	}

	return tokens, nil
}

func classify(symbol, value string) (token.Kind, bool) {
	switch symbol {
	case "Number":
		return token.BROJ, true
	case "Word":
		return token.LookupKeyword(value), true
	case "Operator", "Paren":
		kind, ok := token.LookupOperator(value)
		return kind, ok
	default:
		// Comment, Whitespace
		return "", false
	}
}
