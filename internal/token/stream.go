package token

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// StreamError reports a malformed line in a token stream.
type StreamError struct {
	Row     int // 1-based row in the stream, not the source line
	Text    string
	Message string
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("token stream row %d: %s: %q", e.Row, e.Message, e.Text)
}

// ReadStream reads tokens in the form produced by the tokenizer, one per
// line: KIND LINE LEXEME. Blank lines are skipped. End of input ends the
// stream; there is no sentinel line.
func ReadStream(r io.Reader) ([]Token, error) {
	var tokens []Token

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		row++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		tok, err := ParseLine(text)
		if err != nil {
			return nil, &StreamError{Row: row, Text: text, Message: err.Error()}
		}
		tokens = append(tokens, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read token stream: %w", err)
	}

	return tokens, nil
}

// ParseLine parses a single KIND LINE LEXEME line.
func ParseLine(text string) (Token, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Token{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	kind := Kind(fields[0])
	if !kind.Valid() {
		return Token{}, fmt.Errorf("unknown token kind %s", fields[0])
	}

	line, err := strconv.Atoi(fields[1])
	if err != nil || line < 1 {
		return Token{}, fmt.Errorf("invalid line number %s", fields[1])
	}

	return Token{Kind: kind, Line: line, Lexeme: fields[2]}, nil
}

// WriteStream writes tokens one per line in stream form.
func WriteStream(w io.Writer, tokens []Token) error {
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(bw, tok.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
