package ast

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"pj/internal/token"
)

// LinearError reports a malformed line of a linearized tree.
type LinearError struct {
	Row     int
	Text    string
	Message string
}

func (e *LinearError) Error() string {
	return fmt.Sprintf("tree line %d: %s: %q", e.Row, e.Message, e.Text)
}

// ReadLinear rebuilds a tree written by WriteLinear. The indentation unit is
// taken from the first indented line and must be used consistently. Blank
// lines are ignored.
func ReadLinear(r io.Reader) (*Node, error) {
	var (
		root  *Node
		stack []*Node
		unit  int
		row   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		row++
		raw := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		fail := func(format string, args ...any) error {
			return &LinearError{Row: row, Text: raw, Message: fmt.Sprintf(format, args...)}
		}

		text := strings.TrimLeft(raw, " ")
		spaces := len(raw) - len(text)
		if spaces > 0 && unit == 0 {
			unit = spaces
		}
		depth := 0
		if spaces > 0 {
			if spaces%unit != 0 {
				return nil, fail("indentation of %d spaces is not a multiple of %d", spaces, unit)
			}
			depth = spaces / unit
		}

		if root == nil {
			if depth != 0 {
				return nil, fail("first line must not be indented")
			}
		} else if depth == 0 {
			return nil, fail("more than one root")
		}
		if depth > len(stack) {
			return nil, fail("depth %d skips a level", depth)
		}
		stack = stack[:depth]

		child, err := parseLine(text)
		if err != nil {
			return nil, fail("%s", err)
		}

		if depth == 0 {
			n, ok := child.(*Node)
			if !ok {
				return nil, fail("root must be a nonterminal")
			}
			root = n
			stack = append(stack, n)
			continue
		}
		parent := stack[depth-1]
		parent.Children = append(parent.Children, child)
		if n, ok := child.(*Node); ok {
			stack = append(stack, n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	if root == nil {
		return nil, &LinearError{Row: row, Message: "empty tree"}
	}
	return root, nil
}

func parseLine(text string) (Child, error) {
	if text == EmptySymbol {
		return Empty{}, nil
	}
	if strings.HasPrefix(text, "<") {
		label := Label(text)
		if !label.Valid() {
			return nil, fmt.Errorf("unknown nonterminal %s", text)
		}
		return NewNode(label), nil
	}
	tok, err := token.ParseLine(text)
	if err != nil {
		return nil, err
	}
	return Leaf{Token: tok}, nil
}
