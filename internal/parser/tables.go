package parser

import "pj/internal/token"

// endOfInput stands for the end of the token stream in lookahead sets.
const endOfInput token.Kind = "kraj"

// kindSet is a set of lookahead kinds. It may contain endOfInput.
type kindSet map[token.Kind]bool

func newKindSet(kinds ...token.Kind) kindSet {
	s := make(kindSet, len(kinds))
	for _, k := range kinds {
		s[k] = true
	}
	return s
}

func (s kindSet) union(o kindSet) kindSet {
	out := make(kindSet, len(s)+len(o))
	for k := range s {
		out[k] = true
	}
	for k := range o {
		out[k] = true
	}
	return out
}

// names lists the set members in a fixed order for diagnostics.
func (s kindSet) names() []string {
	var out []string
	for _, k := range kindOrder {
		if s[k] {
			out = append(out, string(k))
		}
	}
	return out
}

var kindOrder = []token.Kind{
	token.IDN, token.BROJ,
	token.OP_PRIDRUZI, token.OP_PLUS, token.OP_MINUS, token.OP_PUTA, token.OP_DIJELI,
	token.L_ZAGRADA, token.D_ZAGRADA,
	token.KR_ZA, token.KR_OD, token.KR_DO, token.KR_AZ,
	endOfInput,
}

var (
	// FIRST(<naredba>)
	firstStmt = newKindSet(token.IDN, token.KR_ZA)

	// FOLLOW(<lista_naredbi>)
	followStmtList = newKindSet(token.KR_AZ, endOfInput)

	// FIRST(<E>) = FIRST(<T>) = FIRST(<P>)
	firstExpr = newKindSet(token.OP_PLUS, token.OP_MINUS, token.L_ZAGRADA, token.IDN, token.BROJ)

	// FIRST(<E_lista>) without epsilon
	firstExprList = newKindSet(token.OP_PLUS, token.OP_MINUS)

	// FIRST(<T_lista>) without epsilon
	firstTermList = newKindSet(token.OP_PUTA, token.OP_DIJELI)

	// FOLLOW(<E>) = FOLLOW(<E_lista>)
	followExpr = newKindSet(token.IDN, token.KR_ZA, token.KR_DO, token.KR_AZ, token.D_ZAGRADA, endOfInput)

	// FOLLOW(<T>) = FOLLOW(<T_lista>)
	followTerm = followExpr.union(newKindSet(token.OP_PLUS, token.OP_MINUS))
)
