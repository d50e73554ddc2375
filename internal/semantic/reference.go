package semantic

import (
	"fmt"

	"pj/internal/token"
)

// Reference is an identifier use resolved to its declaration.
type Reference struct {
	Name        string
	Usage       token.Token
	Declaration token.Token
}

func (r Reference) DeclarationLine() int { return r.Declaration.Line }

// String renders the reference in output form: USAGE DECLARATION NAME.
func (r Reference) String() string {
	return fmt.Sprintf("%d %d %s", r.Usage.Line, r.Declaration.Line, r.Name)
}
