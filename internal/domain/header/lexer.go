// Package header scans C++ header text for classes that derive from
// CMockMocker and collects their MOCK_METHOD declarations.
//
// The scanner works on tokens rather than raw text: comments, string and
// character literals and preprocessor lines never reach the parser, and
// bracket nesting is tracked explicitly so nested parameter lists survive.
package header

import (
	"bytes"
	"fmt"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokNumber
	tokString
	tokPunct
)

type token struct {
	kind  tokenKind
	text  string
	line  int
	start int
	end   int
}

// SyntaxError reports malformed header text at a given line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type lexer struct {
	src  []byte
	pos  int
	line int
}

func tokenize(src []byte) ([]token, error) {
	lx := &lexer{src: src, line: 1}

	var toks []token

	atLineStart := true

	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]

		switch {
		case c == '\n':
			lx.line++
			lx.pos++
			atLineStart = true

			continue
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			lx.pos++
			continue
		case c == '#' && atLineStart:
			lx.skipDirective()
			continue
		case c == '/' && lx.peek(1) == '/':
			lx.skipToEOL()
			continue
		case c == '/' && lx.peek(1) == '*':
			if err := lx.skipBlockComment(); err != nil {
				return nil, err
			}

			continue
		}

		atLineStart = false

		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
	}

	return toks, nil
}

func (lx *lexer) peek(offset int) byte {
	if lx.pos+offset >= len(lx.src) {
		return 0
	}

	return lx.src[lx.pos+offset]
}

// skipDirective consumes a preprocessor line including backslash continuations.
func (lx *lexer) skipDirective() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if c == '\\' && lx.peek(1) == '\n' {
			lx.pos += 2
			lx.line++

			continue
		}

		if c == '\n' {
			return
		}

		lx.pos++
	}
}

func (lx *lexer) skipToEOL() {
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
		lx.pos++
	}
}

func (lx *lexer) skipBlockComment() error {
	startLine := lx.line
	lx.pos += 2

	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == '*' && lx.peek(1) == '/' {
			lx.pos += 2
			return nil
		}

		if lx.src[lx.pos] == '\n' {
			lx.line++
		}

		lx.pos++
	}

	return &SyntaxError{Line: startLine, Msg: "unterminated comment"}
}

func (lx *lexer) next() (token, error) {
	start := lx.pos
	line := lx.line
	c := lx.src[lx.pos]

	switch {
	case isIdentStart(c):
		for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
			lx.pos++
		}

		word := string(lx.src[start:lx.pos])

		if lx.pos < len(lx.src) && (lx.src[lx.pos] == '"' || lx.src[lx.pos] == '\'') {
			quote := lx.src[lx.pos]

			switch word {
			case "R", "LR", "uR", "UR", "u8R":
				if quote == '"' {
					return lx.rawString(start, line)
				}
			case "L", "u", "U", "u8":
				return lx.quoted(start, line, quote)
			}
		}

		return token{kind: tokIdent, text: word, line: line, start: start, end: lx.pos}, nil
	case isDigit(c) || (c == '.' && isDigit(lx.peek(1))):
		lx.number()
		return token{kind: tokNumber, text: string(lx.src[start:lx.pos]), line: line, start: start, end: lx.pos}, nil
	case c == '"' || c == '\'':
		return lx.quoted(start, line, c)
	}

	width := 1
	if (c == ':' && lx.peek(1) == ':') || (c == '-' && lx.peek(1) == '>') {
		width = 2
	}

	lx.pos += width

	return token{kind: tokPunct, text: string(lx.src[start:lx.pos]), line: line, start: start, end: lx.pos}, nil
}

func (lx *lexer) number() {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]

		switch {
		case isIdentPart(c) || c == '.' || c == '\'':
			lx.pos++
		case (c == '+' || c == '-') && lx.pos > 0 && bytes.IndexByte([]byte("eEpP"), lx.src[lx.pos-1]) >= 0:
			lx.pos++
		default:
			return
		}
	}
}

// quoted consumes a string or character literal whose opening quote is at lx.pos.
func (lx *lexer) quoted(start, line int, quote byte) (token, error) {
	for lx.src[lx.pos] != quote {
		lx.pos++
	}

	lx.pos++

	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]

		switch c {
		case '\\':
			if lx.peek(1) == '\n' {
				lx.line++
			}

			lx.pos += 2

			continue
		case '\n':
			return token{}, &SyntaxError{Line: line, Msg: "unterminated string literal"}
		case quote:
			lx.pos++
			return token{kind: tokString, text: string(lx.src[start:lx.pos]), line: line, start: start, end: lx.pos}, nil
		}

		lx.pos++
	}

	return token{}, &SyntaxError{Line: line, Msg: "unterminated string literal"}
}

// rawString consumes R"delim( ... )delim".
func (lx *lexer) rawString(start, line int) (token, error) {
	lx.pos++ // opening quote

	open := bytes.IndexByte(lx.src[lx.pos:], '(')
	if open < 0 {
		return token{}, &SyntaxError{Line: line, Msg: "malformed raw string literal"}
	}

	delim := lx.src[lx.pos : lx.pos+open]
	lx.pos += open + 1

	closing := append(append([]byte{')'}, delim...), '"')

	end := bytes.Index(lx.src[lx.pos:], closing)
	if end < 0 {
		return token{}, &SyntaxError{Line: line, Msg: "unterminated raw string literal"}
	}

	lx.line += bytes.Count(lx.src[lx.pos:lx.pos+end], []byte{'\n'})
	lx.pos += end + len(closing)

	return token{kind: tokString, text: string(lx.src[start:lx.pos]), line: line, start: start, end: lx.pos}, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
