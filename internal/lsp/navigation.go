package lsp

import (
	"fmt"
	"unicode/utf8"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"pj/internal/semantic"
	"pj/internal/token"
)

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *PJHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.result.Tokens, doc.result.Declarations)
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(tokens)}, nil
}

// TextDocumentDefinition jumps from a variable use to the assignment or loop
// header that declared it.
func (h *PJHandler) TextDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	ref, ok := referenceAt(doc.result.References, params.Position)
	if !ok {
		return nil, nil
	}
	return protocol.Location{
		URI:   params.TextDocument.URI,
		Range: rangeOf(ref.Declaration),
	}, nil
}

// TextDocumentHover describes the variable under the cursor.
func (h *PJHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	var text string
	var tok token.Token
	if ref, ok := referenceAt(doc.result.References, params.Position); ok {
		tok = ref.Usage
		text = fmt.Sprintf("`%s` declared on line %d", ref.Name, ref.DeclarationLine())
	} else if decl, ok := tokenAt(doc.result.Declarations, params.Position); ok {
		tok = decl
		text = fmt.Sprintf("`%s` declared here", decl.Lexeme)
	} else {
		return nil, nil
	}

	rng := rangeOf(tok)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

func referenceAt(refs []semantic.Reference, pos protocol.Position) (semantic.Reference, bool) {
	for _, ref := range refs {
		if covers(ref.Usage, pos) {
			return ref, true
		}
	}
	return semantic.Reference{}, false
}

func tokenAt(tokens []token.Token, pos protocol.Position) (token.Token, bool) {
	for _, tok := range tokens {
		if covers(tok, pos) {
			return tok, true
		}
	}
	return token.Token{}, false
}

func covers(tok token.Token, pos protocol.Position) bool {
	if tok.Column == 0 || uint32(tok.Line-1) != pos.Line {
		return false
	}
	start := uint32(tok.Column - 1)
	end := start + uint32(utf8.RuneCountInString(tok.Lexeme))
	return pos.Character >= start && pos.Character < end
}

func rangeOf(tok token.Token) protocol.Range {
	start := protocol.Position{Line: uint32(tok.Line - 1), Character: uint32(max(tok.Column-1, 0))}
	end := start
	end.Character += uint32(utf8.RuneCountInString(tok.Lexeme))
	return protocol.Range{Start: start, End: end}
}
