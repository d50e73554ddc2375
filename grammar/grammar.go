// Package grammar is a declarative description of PJ built with participle.
// It accepts exactly the programs the recursive-descent parser accepts and is
// used to print the grammar in EBNF and to cross-check the parser in tests.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

type Program struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Loop   *Loop   `  @@`
	Assign *Assign `| @@`
}

type Assign struct {
	Pos    lexer.Position
	Target string `@Ident "="`
	Value  *Expr  `@@`
}

type Loop struct {
	Pos  lexer.Position
	Var  string       `"za" @Ident`
	From *Expr        `"od" @@`
	To   *Expr        `"do" @@`
	Body []*Statement `@@* "az"`
}

// Expr and Term chain to the right, matching the parse trees of the
// recursive-descent parser.
type Expr struct {
	Left  *Term  `@@`
	Op    string `[ @("+" | "-")`
	Right *Expr  `  @@ ]`
}

type Term struct {
	Left  *Primary `@@`
	Op    string   `[ @("*" | "/")`
	Right *Term    `  @@ ]`
}

type Primary struct {
	Signed *Signed `  @@`
	Parens *Expr   `| "(" @@ ")"`
	Ident  *string `| @Ident`
	Number *string `| @Number`
}

type Signed struct {
	Sign    string   `@("+" | "-")`
	Operand *Primary `@@`
}
