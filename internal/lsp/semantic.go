package lsp

import (
	"unicode/utf8"

	"pj/internal/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

func collectSemanticTokens(tokens []token.Token, declarations []token.Token) []SemanticToken {
	declared := make(map[[2]int]bool, len(declarations))
	for _, d := range declarations {
		declared[[2]int{d.Line, d.Column}] = true
	}

	var out []SemanticToken
	for _, tok := range tokens {
		if tok.Column == 0 {
			continue
		}
		modifier := 0
		if declared[[2]int{tok.Line, tok.Column}] {
			modifier = 1
		}
		out = append(out, makeToken(tok, tokenTypeOf(tok.Kind), modifier))
	}
	return out
}

func tokenTypeOf(kind token.Kind) string {
	switch {
	case kind.IsKeyword():
		return "keyword"
	case kind.IsOperator():
		return "operator"
	case kind == token.BROJ:
		return "number"
	default:
		return "variable"
	}
}

func makeToken(tok token.Token, tokenType string, declModifier int) SemanticToken {
	return SemanticToken{
		Line:           uint32(tok.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(utf8.RuneCountInString(tok.Lexeme)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}
}

// encodeSemanticTokens packs tokens into the LSP wire format (delta-line,
// delta-start, length, type, modifiers).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		deltaStart := t.StartChar
		if deltaLine == 0 {
			deltaStart = t.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, t.Length, uint32(t.TokenType), uint32(t.TokenModifiers))

		prevLine = t.Line
		prevStart = t.StartChar
	}
	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
