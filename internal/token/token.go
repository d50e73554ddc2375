// Package token defines the lexical tokens of PJ and their line-oriented
// stream format.
package token

import "fmt"

// Kind is the class of a token. Kind values are the names used in the token
// stream and in the linearized tree.
type Kind string

const (
	// Identifiers + literals
	IDN  Kind = "IDN"  // n, rez, i ...
	BROJ Kind = "BROJ" // 0, 42, 1234567890

	// Operators
	OP_PRIDRUZI Kind = "OP_PRIDRUZI" // =
	OP_PLUS     Kind = "OP_PLUS"     // +
	OP_MINUS    Kind = "OP_MINUS"    // -
	OP_PUTA     Kind = "OP_PUTA"     // *
	OP_DIJELI   Kind = "OP_DIJELI"   // /

	// Delimiters
	L_ZAGRADA Kind = "L_ZAGRADA" // (
	D_ZAGRADA Kind = "D_ZAGRADA" // )

	// Keywords
	KR_ZA Kind = "KR_ZA" // za
	KR_OD Kind = "KR_OD" // od
	KR_DO Kind = "KR_DO" // do
	KR_AZ Kind = "KR_AZ" // az
)

var kinds = map[Kind]bool{
	IDN: true, BROJ: true,
	OP_PRIDRUZI: true, OP_PLUS: true, OP_MINUS: true, OP_PUTA: true, OP_DIJELI: true,
	L_ZAGRADA: true, D_ZAGRADA: true,
	KR_ZA: true, KR_OD: true, KR_DO: true, KR_AZ: true,
}

var keywords = map[string]Kind{
	"za": KR_ZA,
	"od": KR_OD,
	"do": KR_DO,
	"az": KR_AZ,
}

var operators = map[string]Kind{
	"=": OP_PRIDRUZI,
	"+": OP_PLUS,
	"-": OP_MINUS,
	"*": OP_PUTA,
	"/": OP_DIJELI,
	"(": L_ZAGRADA,
	")": D_ZAGRADA,
}

// Valid reports whether k is one of the PJ token kinds.
func (k Kind) Valid() bool {
	return kinds[k]
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k == KR_ZA || k == KR_OD || k == KR_DO || k == KR_AZ
}

// IsOperator reports whether k is an operator or a parenthesis.
func (k Kind) IsOperator() bool {
	switch k {
	case OP_PRIDRUZI, OP_PLUS, OP_MINUS, OP_PUTA, OP_DIJELI, L_ZAGRADA, D_ZAGRADA:
		return true
	}
	return false
}

// LookupKeyword returns the keyword kind for word, or IDN.
func LookupKeyword(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return IDN
}

// LookupOperator returns the kind of a single-character operator or
// parenthesis.
func LookupOperator(op string) (Kind, bool) {
	k, ok := operators[op]
	return k, ok
}

// Token is one classified lexeme. Tokens are never modified after they are
// produced.
type Token struct {
	Kind   Kind
	Line   int
	Lexeme string

	// Column is the 1-based column of the first character, or 0 when the
	// token was read from a stream that does not record columns.
	Column int
}

// String renders the token in stream form: KIND LINE LEXEME.
func (t Token) String() string {
	return fmt.Sprintf("%s %d %s", t.Kind, t.Line, t.Lexeme)
}

// Same reports whether two tokens agree on kind, line and lexeme. Columns are
// ignored.
func (t Token) Same(o Token) bool {
	return t.Kind == o.Kind && t.Line == o.Line && t.Lexeme == o.Lexeme
}
