package ast

import (
	"bufio"
	"io"
	"strings"
)

// DefaultIndent is the indentation written for each level of depth.
const DefaultIndent = " "

// WriteLinear writes c in linearized form: one line per node, leaf or empty
// marker in pre-order, each prefixed by indent repeated depth times.
func WriteLinear(w io.Writer, c Child, indent string) error {
	bw := bufio.NewWriter(w)
	Walk(c, func(c Child, depth int) bool {
		bw.WriteString(strings.Repeat(indent, depth))
		bw.WriteString(lineOf(c))
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}

// Linearize returns the linearized form of c with the default indent.
func Linearize(c Child) string {
	var b strings.Builder
	_ = WriteLinear(&b, c, DefaultIndent)
	return b.String()
}

func (n *Node) String() string {
	return Linearize(n)
}

func lineOf(c Child) string {
	switch x := c.(type) {
	case *Node:
		return string(x.Label)
	case Leaf:
		return x.Token.String()
	default:
		return EmptySymbol
	}
}
