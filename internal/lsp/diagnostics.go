package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"pj/internal/driver"
)

// ConvertResult turns the error of a run, if any, into LSP diagnostics.
// Errors without a column, such as an unexpected end of input, are placed
// at the end of text.
func ConvertResult(result *driver.Result, text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if result == nil || result.OK() {
		return diagnostics
	}

	diag := driver.Diagnostic(result.Err)

	var start protocol.Position
	if diag.Position.Column > 0 {
		start = protocol.Position{
			Line:      uint32(diag.Position.Line - 1),   // Convert to 0-based indexing
			Character: uint32(diag.Position.Column - 1), // Convert to 0-based indexing
		}
	} else {
		start = endOf(text)
	}
	end := start
	end.Character += uint32(max(diag.Length, 1))

	message := diag.Message
	for _, s := range diag.Suggestions {
		message += "\n" + s.Message
	}
	for _, n := range diag.Notes {
		message += "\nnote: " + n
	}

	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: diag.Code},
		Source:   ptrString("pj-" + string(result.Stage)),
		Message:  message,
	})
	return diagnostics
}

func endOf(text string) protocol.Position {
	lines := strings.Split(text, "\n")
	last := len(lines) - 1
	return protocol.Position{
		Line:      uint32(last),
		Character: uint32(len(lines[last])),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
