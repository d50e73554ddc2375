package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DiagnosticBuilder provides a fluent interface for creating errors with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error builder
func NewDiagnostic(code, message string, pos Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// UndeclaredVariable creates an error for a variable that is not in scope
func UndeclaredVariable(name string, pos Position, similarNames []string) CompilerError {
	builder := NewDiagnostic(ErrorUndeclaredVariable, fmt.Sprintf("undeclared variable '%s'", name), pos).
		WithLength(len(name))

	switch len(similarNames) {
	case 0:
		builder = builder.WithSuggestion("assign a value to the variable before using it").
			WithNote("a variable is declared by its first assignment")
	case 1:
		builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", similarNames[0]), similarNames[0])
	default:
		suggestions := strings.Join(similarNames, "', '")
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", suggestions))
	}

	return builder.Build()
}

// SelfReference creates an error for a variable read on its own declaring line
func SelfReference(name string, pos Position, declaredAt int) CompilerError {
	return NewDiagnostic(ErrorSelfReference,
		fmt.Sprintf("variable '%s' is used on the line that declares it", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("'%s' is declared on line %d", name, declaredAt)).
		WithHelp("assign the variable on an earlier line").
		Build()
}

// UnexpectedToken creates an error for a token the parser cannot accept
func UnexpectedToken(kind, lexeme string, pos Position, expected []string) CompilerError {
	builder := NewDiagnostic(ErrorUnexpectedToken,
		fmt.Sprintf("unexpected %s '%s'", kind, lexeme), pos).
		WithLength(len(lexeme))
	if len(expected) > 0 {
		builder = builder.WithNote("expected one of: " + strings.Join(expected, ", "))
	}
	return builder.Build()
}

// UnexpectedEnd creates an error for input that stops inside a construct
func UnexpectedEnd(pos Position, expected []string) CompilerError {
	builder := NewDiagnostic(ErrorUnexpectedEnd, "unexpected end of input", pos)
	if len(expected) > 0 {
		builder = builder.WithNote("expected one of: " + strings.Join(expected, ", "))
	}
	return builder.Build()
}

// FindSimilarNames returns the candidates within a small edit distance of
// target, closest first. Exact matches and duplicates are dropped.
func FindSimilarNames(target string, candidates []string) []string {
	limit := 2
	if len(target) <= 3 {
		limit = 1
	}

	distance := make(map[string]int)
	var similar []string
	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		if _, seen := distance[candidate]; seen {
			continue
		}
		d := levenshteinDistance(target, candidate)
		if d <= limit {
			distance[candidate] = d
			similar = append(similar, candidate)
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return distance[similar[i]] < distance[similar[j]]
	})
	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
