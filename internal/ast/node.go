// Package ast defines the PJ syntax tree.
//
// Every grammar production yields a Node, including the epsilon alternatives,
// which hold a single Empty child. Token leaves keep the token exactly as the
// parser consumed it.
package ast

import "pj/internal/token"

// Label names the nonterminal a node was built for. Label values are the
// grammar symbols used in the linearized tree.
type Label string

const (
	Program  Label = "<program>"
	StmtList Label = "<lista_naredbi>"
	Stmt     Label = "<naredba>"
	Assign   Label = "<naredba_pridruzivanja>"
	ForLoop  Label = "<za_petlja>"
	Expr     Label = "<E>"
	ExprList Label = "<E_lista>"
	Term     Label = "<T>"
	TermList Label = "<T_lista>"
	Primary  Label = "<P>"
)

var labels = map[Label]bool{
	Program: true, StmtList: true, Stmt: true, Assign: true, ForLoop: true,
	Expr: true, ExprList: true, Term: true, TermList: true, Primary: true,
}

// Valid reports whether l is one of the PJ nonterminals.
func (l Label) Valid() bool {
	return labels[l]
}

// EmptySymbol is the linearized form of an Empty child.
const EmptySymbol = "$"

// Child is one entry of a node's children: a *Node, a Leaf or Empty.
type Child interface {
	child()
}

// Node is an interior node of the tree.
type Node struct {
	Label    Label
	Children []Child
}

// Leaf wraps a consumed token.
type Leaf struct {
	Token token.Token
}

// Empty marks an epsilon production.
type Empty struct{}

func (*Node) child() {}
func (Leaf) child()  {}
func (Empty) child() {}

// NewNode returns a node with the given label and children.
func NewNode(label Label, children ...Child) *Node {
	return &Node{Label: label, Children: children}
}

// IsEmpty reports whether n derived the empty string.
func (n *Node) IsEmpty() bool {
	if len(n.Children) != 1 {
		return false
	}
	_, ok := n.Children[0].(Empty)
	return ok
}

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) Child {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildNode returns the i-th child if it is a node.
func (n *Node) ChildNode(i int) (*Node, bool) {
	c, ok := n.Child(i).(*Node)
	return c, ok
}

// ChildToken returns the token of the i-th child if it is a leaf.
func (n *Node) ChildToken(i int) (token.Token, bool) {
	l, ok := n.Child(i).(Leaf)
	return l.Token, ok
}

// Tokens returns the leaves of n in source order.
func (n *Node) Tokens() []token.Token {
	var out []token.Token
	Walk(n, func(c Child, _ int) bool {
		if l, ok := c.(Leaf); ok {
			out = append(out, l.Token)
		}
		return true
	})
	return out
}

// Walk visits c and its descendants in pre-order. depth is 0 for c itself.
// Returning false from fn skips the children of the visited node.
func Walk(c Child, fn func(c Child, depth int) bool) {
	walk(c, 0, fn)
}

func walk(c Child, depth int, fn func(Child, int) bool) {
	if !fn(c, depth) {
		return
	}
	if n, ok := c.(*Node); ok {
		for _, ch := range n.Children {
			walk(ch, depth+1, fn)
		}
	}
}

// Equal reports whether two trees have the same shape, labels and tokens.
// Token columns are not compared.
func Equal(a, b Child) bool {
	switch x := a.(type) {
	case *Node:
		y, ok := b.(*Node)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		if x.Label != y.Label || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x.Token.Same(y.Token)
	case Empty:
		_, ok := b.(Empty)
		return ok
	}
	return a == nil && b == nil
}
