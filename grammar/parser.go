package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(PJLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Map(mapKeywords, "Ident"),
	participle.UseLookahead(2),
)

// ParseString parses PJ source text.
func ParseString(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

// ParseFile reads and parses a PJ source file.
func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// EBNF returns the grammar in EBNF notation.
func EBNF() string {
	return parser.String()
}
