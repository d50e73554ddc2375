package semantic

import "pj/internal/token"

type EntryKind int

const (
	Declaration EntryKind = iota
	ScopeBoundary
)

// Entry is one element of the scope stack. Name and Token are set only for
// declarations.
type Entry struct {
	Kind  EntryKind
	Name  string
	Token token.Token
}

// Line is the declaring line of a declaration entry.
func (e Entry) Line() int {
	return e.Token.Line
}

// Scope is a strict LIFO stack of declarations separated by loop boundaries.
// Lookup searches from the top, so inner declarations shadow outer ones.
type Scope struct {
	entries []Entry
}

func NewScope() *Scope {
	return &Scope{}
}

// Declare pushes a declaration for tok.
func (s *Scope) Declare(tok token.Token) {
	s.entries = append(s.entries, Entry{Kind: Declaration, Name: tok.Lexeme, Token: tok})
}

// Open pushes a scope boundary.
func (s *Scope) Open() {
	s.entries = append(s.entries, Entry{Kind: ScopeBoundary})
}

// Close pops every entry down to and including the topmost boundary. It
// returns the number of declarations discarded, or false when no boundary is
// open.
func (s *Scope) Close() (int, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Kind == ScopeBoundary {
			dropped := len(s.entries) - 1 - i
			s.entries = s.entries[:i]
			return dropped, true
		}
	}
	return 0, false
}

// Lookup returns the topmost declaration of name.
func (s *Scope) Lookup(name string) (Entry, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.Kind == Declaration && e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Depth is the number of open boundaries.
func (s *Scope) Depth() int {
	depth := 0
	for _, e := range s.entries {
		if e.Kind == ScopeBoundary {
			depth++
		}
	}
	return depth
}

// Names returns the declared names from the top of the stack down, each name
// once.
func (s *Scope) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.Kind == Declaration && !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// Len is the number of entries, boundaries included.
func (s *Scope) Len() int {
	return len(s.entries)
}
