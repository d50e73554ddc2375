package grammar

import (
	"strings"
)

func indent(level int) string {
	return strings.Repeat("  ", level)
}

// String prints the program as PJ source, one statement per line with loop
// bodies indented.
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.StringWithIndent(0))
	}
	return b.String()
}

func (s *Statement) StringWithIndent(level int) string {
	if s.Loop != nil {
		return s.Loop.StringWithIndent(level)
	}
	if s.Assign != nil {
		return indent(level) + s.Assign.String() + "\n"
	}
	return ""
}

func (a *Assign) String() string {
	return a.Target + " = " + a.Value.String()
}

func (l *Loop) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(indent(level) + "za " + l.Var + " od " + l.From.String() + " do " + l.To.String() + "\n")
	for _, s := range l.Body {
		b.WriteString(s.StringWithIndent(level + 1))
	}
	b.WriteString(indent(level) + "az\n")
	return b.String()
}

func (e *Expr) String() string {
	if e.Right == nil {
		return e.Left.String()
	}
	return e.Left.String() + " " + e.Op + " " + e.Right.String()
}

func (t *Term) String() string {
	if t.Right == nil {
		return t.Left.String()
	}
	return t.Left.String() + " " + t.Op + " " + t.Right.String()
}

func (p *Primary) String() string {
	switch {
	case p.Signed != nil:
		return p.Signed.Sign + p.Signed.Operand.String()
	case p.Parens != nil:
		return "(" + p.Parens.String() + ")"
	case p.Ident != nil:
		return *p.Ident
	case p.Number != nil:
		return *p.Number
	}
	return ""
}
