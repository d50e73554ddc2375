package parser

import (
	"pj/internal/ast"
	"pj/internal/token"
)

// <program> ::= <lista_naredbi>
func (p *Parser) parseProgram() (*ast.Node, error) {
	defer p.enter(ast.Program)()

	list, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	return ast.NewNode(ast.Program, list), nil
}

// <lista_naredbi> ::= <naredba> <lista_naredbi> | $
func (p *Parser) parseStmtList() (*ast.Node, error) {
	defer p.enter(ast.StmtList)()

	la := p.lookahead()
	switch {
	case firstStmt[la]:
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		rest, err := p.parseStmtList()
		if err != nil {
			return nil, err
		}
		return ast.NewNode(ast.StmtList, stmt, rest), nil
	case followStmtList[la]:
		return ast.NewNode(ast.StmtList, ast.Empty{}), nil
	default:
		return nil, p.errorAtCurrent(firstStmt.union(followStmtList))
	}
}

// <naredba> ::= <naredba_pridruzivanja> | <za_petlja>
func (p *Parser) parseStmt() (*ast.Node, error) {
	defer p.enter(ast.Stmt)()

	var (
		inner *ast.Node
		err   error
	)
	switch p.lookahead() {
	case token.IDN:
		inner, err = p.parseAssign()
	case token.KR_ZA:
		inner, err = p.parseForLoop()
	default:
		return nil, p.errorAtCurrent(firstStmt)
	}
	if err != nil {
		return nil, err
	}
	return ast.NewNode(ast.Stmt, inner), nil
}

// <naredba_pridruzivanja> ::= IDN OP_PRIDRUZI <E>
func (p *Parser) parseAssign() (*ast.Node, error) {
	defer p.enter(ast.Assign)()

	name, err := p.consume(token.IDN)
	if err != nil {
		return nil, err
	}
	op, err := p.consume(token.OP_PRIDRUZI)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewNode(ast.Assign, name, op, value), nil
}

// <za_petlja> ::= KR_ZA IDN KR_OD <E> KR_DO <E> <lista_naredbi> KR_AZ
func (p *Parser) parseForLoop() (*ast.Node, error) {
	defer p.enter(ast.ForLoop)()

	za, err := p.consume(token.KR_ZA)
	if err != nil {
		return nil, err
	}
	variable, err := p.consume(token.IDN)
	if err != nil {
		return nil, err
	}
	od, err := p.consume(token.KR_OD)
	if err != nil {
		return nil, err
	}
	from, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	do, err := p.consume(token.KR_DO)
	if err != nil {
		return nil, err
	}
	to, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	az, err := p.consume(token.KR_AZ)
	if err != nil {
		return nil, err
	}
	return ast.NewNode(ast.ForLoop, za, variable, od, from, do, to, body, az), nil
}
