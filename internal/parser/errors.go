package parser

import (
	"fmt"

	pjerrors "pj/internal/errors"
	"pj/internal/token"
)

// SyntaxError is the first token that cannot continue the program. A nil
// Token means the input ended too early.
type SyntaxError struct {
	Token    *token.Token
	Expected []string

	// Line of the last consumed token, used to place end-of-input errors.
	LastLine int
}

// AtEnd reports whether the error is an unexpected end of input.
func (e *SyntaxError) AtEnd() bool {
	return e.Token == nil
}

// Line renders the error in output form: "err KIND LINE LEXEME" or
// "err kraj".
func (e *SyntaxError) Line() string {
	if e.Token == nil {
		return "err kraj"
	}
	return "err " + e.Token.String()
}

func (e *SyntaxError) Error() string {
	if e.Token == nil {
		return "syntax error: unexpected end of input"
	}
	return fmt.Sprintf("syntax error: unexpected %s %q on line %d", e.Token.Kind, e.Token.Lexeme, e.Token.Line)
}

// CompilerError converts the error into a diagnostic.
func (e *SyntaxError) CompilerError() pjerrors.CompilerError {
	if e.Token == nil {
		return pjerrors.UnexpectedEnd(pjerrors.Position{Line: e.LastLine}, e.Expected)
	}
	pos := pjerrors.Position{Line: e.Token.Line, Column: e.Token.Column}
	return pjerrors.UnexpectedToken(string(e.Token.Kind), e.Token.Lexeme, pos, e.Expected)
}
