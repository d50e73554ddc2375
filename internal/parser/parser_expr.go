package parser

import (
	"pj/internal/ast"
	"pj/internal/token"
)

// <E> ::= <T> <E_lista>
func (p *Parser) parseExpr() (*ast.Node, error) {
	defer p.enter(ast.Expr)()

	if !firstExpr[p.lookahead()] {
		return nil, p.errorAtCurrent(firstExpr)
	}
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	rest, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	return ast.NewNode(ast.Expr, term, rest), nil
}

// <E_lista> ::= OP_PLUS <E> | OP_MINUS <E> | $
func (p *Parser) parseExprList() (*ast.Node, error) {
	defer p.enter(ast.ExprList)()

	la := p.lookahead()
	switch {
	case firstExprList[la]:
		op := ast.Leaf{Token: p.advance()}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewNode(ast.ExprList, op, rhs), nil
	case followExpr[la]:
		return ast.NewNode(ast.ExprList, ast.Empty{}), nil
	default:
		return nil, p.errorAtCurrent(firstExprList.union(followExpr))
	}
}

// <T> ::= <P> <T_lista>
func (p *Parser) parseTerm() (*ast.Node, error) {
	defer p.enter(ast.Term)()

	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	rest, err := p.parseTermList()
	if err != nil {
		return nil, err
	}
	return ast.NewNode(ast.Term, primary, rest), nil
}

// <T_lista> ::= OP_PUTA <T> | OP_DIJELI <T> | $
func (p *Parser) parseTermList() (*ast.Node, error) {
	defer p.enter(ast.TermList)()

	la := p.lookahead()
	switch {
	case firstTermList[la]:
		op := ast.Leaf{Token: p.advance()}
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return ast.NewNode(ast.TermList, op, rhs), nil
	case followTerm[la]:
		return ast.NewNode(ast.TermList, ast.Empty{}), nil
	default:
		return nil, p.errorAtCurrent(firstTermList.union(followTerm))
	}
}

// <P> ::= OP_PLUS <P> | OP_MINUS <P> | L_ZAGRADA <E> D_ZAGRADA | IDN | BROJ
func (p *Parser) parsePrimary() (*ast.Node, error) {
	defer p.enter(ast.Primary)()

	switch p.lookahead() {
	case token.OP_PLUS, token.OP_MINUS:
		sign := ast.Leaf{Token: p.advance()}
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return ast.NewNode(ast.Primary, sign, operand), nil
	case token.L_ZAGRADA:
		open := ast.Leaf{Token: p.advance()}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, err := p.consume(token.D_ZAGRADA)
		if err != nil {
			return nil, err
		}
		return ast.NewNode(ast.Primary, open, inner, closing), nil
	case token.IDN, token.BROJ:
		return ast.NewNode(ast.Primary, ast.Leaf{Token: p.advance()}), nil
	default:
		return nil, p.errorAtCurrent(firstExpr)
	}
}
