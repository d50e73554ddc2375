package semantic

import (
	"fmt"

	pjerrors "pj/internal/errors"
	"pj/internal/token"
)

type Reason int

const (
	// Undeclared: no declaration of the name is in scope.
	Undeclared Reason = iota
	// SelfReference: the declaration in scope is on the usage line.
	SelfReference
)

func (r Reason) String() string {
	switch r {
	case Undeclared:
		return "undeclared"
	case SelfReference:
		return "self-reference"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// SemanticError is the first identifier use that cannot be resolved.
type SemanticError struct {
	Token  token.Token
	Reason Reason

	// Declaration is the same-line declaration for SelfReference errors.
	Declaration *token.Token

	// Similar holds names in scope close to the identifier, when enabled.
	Similar []string
}

// Line renders the error in output form: "err LINE NAME".
func (e *SemanticError) Line() string {
	return fmt.Sprintf("err %d %s", e.Token.Line, e.Token.Lexeme)
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error: %s variable %q on line %d", e.Reason, e.Token.Lexeme, e.Token.Line)
}

// CompilerError converts the error into a diagnostic.
func (e *SemanticError) CompilerError() pjerrors.CompilerError {
	pos := pjerrors.Position{Line: e.Token.Line, Column: e.Token.Column}
	if e.Reason == SelfReference && e.Declaration != nil {
		return pjerrors.SelfReference(e.Token.Lexeme, pos, e.Declaration.Line)
	}
	return pjerrors.UndeclaredVariable(e.Token.Lexeme, pos, e.Similar)
}
