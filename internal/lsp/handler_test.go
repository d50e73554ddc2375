package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pj/internal/lsp"
)

const uri = "file:///tmp/zbroj.pj"

const source = `n = 10
rez = 0
za i od 1 do n
  rez = rez + i
az
`

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.PJHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "pj", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestDidOpenPublishesNoDiagnostics(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewPJHandler(nil)

	open(t, h, rec.context(), source)

	published := rec.last(t)
	require.Equal(t, uri, published.URI)
	require.Empty(t, published.Diagnostics)
}

func TestDidChangeReportsSemanticError(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewPJHandler(nil)
	ctx := rec.context()
	open(t, h, ctx, source)

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "x = 1\ny = x + z\n"},
		},
	})
	require.NoError(t, err)

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	require.Equal(t, uint32(1), diags[0].Range.Start.Line)
	require.Equal(t, uint32(8), diags[0].Range.Start.Character)
	require.Equal(t, uint32(9), diags[0].Range.End.Character)
	require.Equal(t, "pj-analyze", *diags[0].Source)
	require.Contains(t, diags[0].Message, "undeclared variable 'z'")
}

func TestUnexpectedEndPlacedAtDocumentEnd(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewPJHandler(nil)

	open(t, h, rec.context(), "za i od 1 do 2\n  x = i")

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	require.Equal(t, uint32(1), diags[0].Range.Start.Line)
	require.Equal(t, uint32(7), diags[0].Range.Start.Character)
	require.Equal(t, "pj-parse", *diags[0].Source)
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewPJHandler(nil)
	ctx := rec.context()
	open(t, h, ctx, "x = y")

	err := h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.Empty(t, rec.last(t).Diagnostics)

	_, err = h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.Error(t, err, "closed documents are forgotten")
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewPJHandler(nil)
	ctx := &glsp.Context{}
	open(t, h, ctx, source)

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 18)

	assertToken(t, &decoded[0], 1, 1, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[1], 1, 3, 1, "operator", nil)
	assertToken(t, &decoded[2], 1, 5, 2, "number", nil)
	assertToken(t, &decoded[3], 2, 1, 3, "variable", []string{"declaration"})
	assertToken(t, &decoded[6], 3, 1, 2, "keyword", nil)
	assertToken(t, &decoded[7], 3, 4, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[11], 3, 14, 1, "variable", nil)
	assertToken(t, &decoded[12], 4, 3, 3, "variable", nil)
	assertToken(t, &decoded[14], 4, 9, 3, "variable", nil)
	assertToken(t, &decoded[17], 5, 1, 2, "keyword", nil)
}

func TestTextDocumentDefinition(t *testing.T) {
	h := lsp.NewPJHandler(nil)
	ctx := &glsp.Context{}
	open(t, h, ctx, source)

	// "rez" on the right-hand side of line 4
	result, err := h.TextDocumentDefinition(ctx, &protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 3, Character: 9},
		},
	})
	require.NoError(t, err)

	location, ok := result.(protocol.Location)
	require.True(t, ok)
	require.Equal(t, uri, location.URI)
	require.Equal(t, protocol.Position{Line: 1, Character: 0}, location.Range.Start)
	require.Equal(t, protocol.Position{Line: 1, Character: 3}, location.Range.End)

	// the keyword "za" is not a reference
	result, err = h.TextDocumentDefinition(ctx, &protocol.DefinitionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 2, Character: 0},
		},
	})
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestTextDocumentHover(t *testing.T) {
	h := lsp.NewPJHandler(nil)
	ctx := &glsp.Context{}
	open(t, h, ctx, source)

	hover := func(line, char uint32) *protocol.Hover {
		result, err := h.TextDocumentHover(ctx, &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: line, Character: char},
			},
		})
		require.NoError(t, err)
		return result
	}

	usage := hover(3, 14)
	require.NotNil(t, usage)
	require.Equal(t, "`i` declared on line 3", usage.Contents.(protocol.MarkupContent).Value)

	decl := hover(2, 3)
	require.NotNil(t, decl)
	require.Equal(t, "`i` declared here", decl.Contents.(protocol.MarkupContent).Value)

	require.Nil(t, hover(0, 4))
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
