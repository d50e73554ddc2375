package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"

	"pj/internal/token"
)

// PJLexer splits source the same way as the production tokenizer. Keywords
// are lexed as Ident and retyped by mapKeywords, so "zaza" stays an
// identifier.
var PJLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Number", `[0-9]+`, nil},
		{"Ident", `[^\s=+\-*/()0-9][^\s=+\-*/()]*`, nil},
		// Never matches ahead of Ident; it only gives mapKeywords a token type.
		{"Keyword", `za|od|do|az`, nil},
		{"Operator", `[=+\-*/()]`, nil},
		{"Whitespace", `\s+`, nil},
	},
})

var keywordType = PJLexer.Symbols()["Keyword"]

func mapKeywords(t lexer.Token) (lexer.Token, error) {
	if token.LookupKeyword(t.Value) != token.IDN {
		t.Type = keywordType
	}
	return t, nil
}
