/**
 * Copyright (c) 2026, The QueryBridge Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package lexer implements the lexical scanner shared by the schema SDL
// parser and the query parser. Both grammars share the same lexical tokens
// (GraphQL's), so one scanner serves both.
package lexer

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/abishekaditya/QueryBridge/token"
)

// Lexer is a stateful stream generator: each call to Advance returns the next
// non-ignored (non-comment) token in the source. The final token emitted is
// always of kind token.KindEOF, after which Advance keeps returning it.
type Lexer struct {
	source   *token.Source
	bytePos  uint
	bodySize uint
}

// New creates a Lexer that scans source from its first byte.
func New(source *token.Source) *Lexer {
	return &Lexer{
		source:   source,
		bytePos:  0,
		bodySize: uint(len(source.Body)),
	}
}

// Advance scans and returns the next non-comment token.
func (l *Lexer) Advance() (*token.Token, error) {
	for {
		tok, err := l.lexToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.KindComment {
			return tok, nil
		}
	}
}

func (l *Lexer) peek() byte {
	if l.bytePos >= l.bodySize {
		return 0
	}
	return l.source.Body[l.bytePos]
}

func (l *Lexer) consume() byte {
	b := l.peek()
	if l.bytePos < l.bodySize {
		l.bytePos++
	}
	return b
}

func (l *Lexer) consumeWhitespace() {
	body := l.source.Body
	pos := l.bytePos

	// Skip a leading byte-order mark.
	if pos == 0 && l.bodySize >= 3 && body[0] == '\xEF' && body[1] == '\xBB' && body[2] == '\xBF' {
		pos += 3
	}

	for pos < l.bodySize {
		switch body[pos] {
		case '\t', ' ', ',', '\n', '\r':
			pos++
		default:
			l.bytePos = pos
			return
		}
	}
	l.bytePos = pos
}

func (l *Lexer) consumeDigits() byte {
	for {
		c := l.peek()
		if c >= '0' && c <= '9' {
			l.consume()
			continue
		}
		return c
	}
}

func (l *Lexer) charAtPosToStr(pos uint) string {
	if pos >= l.bodySize {
		return "<EOF>"
	}
	c := l.source.Body[pos]
	if c >= 0x20 && c < 0x7F {
		return fmt.Sprintf("%q", rune(c))
	}
	return fmt.Sprintf(`"\u%04X"`, c)
}

func (l *Lexer) syntaxErrorAt(pos uint, message string) error {
	loc := l.source.LocationOf(pos)
	return errors.Errorf("syntax error at %s:%d:%d: %s", l.source.Name, loc.Line, loc.Column, message)
}

func (l *Lexer) makeToken(kind token.Kind, startPos uint, value string) *token.Token {
	return &token.Token{Kind: kind, Pos: startPos, Value: value}
}

// lexToken scans the next raw token (including comments) starting at bytePos.
func (l *Lexer) lexToken() (*token.Token, error) {
	l.consumeWhitespace()

	startPos := l.bytePos
	if l.bytePos >= l.bodySize {
		return &token.Token{Kind: token.KindEOF, Pos: startPos}, nil
	}

	simple := func(kind token.Kind) (*token.Token, error) {
		l.consume()
		return l.makeToken(kind, startPos, ""), nil
	}

	switch c := l.peek(); c {
	case '!':
		return simple(token.KindBang)
	case '#':
		return l.lexComment(), nil
	case '$':
		return simple(token.KindDollar)
	case '&':
		return simple(token.KindAmp)
	case '(':
		return simple(token.KindLeftParen)
	case ')':
		return simple(token.KindRightParen)
	case '.':
		l.consume()
		if l.peek() != '.' {
			return nil, l.syntaxErrorAt(l.bytePos, "expected '...'")
		}
		l.consume()
		if l.peek() != '.' {
			return nil, l.syntaxErrorAt(l.bytePos, "expected '...'")
		}
		l.consume()
		return l.makeToken(token.KindSpread, startPos, ""), nil
	case ':':
		return simple(token.KindColon)
	case '=':
		return simple(token.KindEquals)
	case '@':
		return simple(token.KindAt)
	case '[':
		return simple(token.KindLeftBracket)
	case ']':
		return simple(token.KindRightBracket)
	case '{':
		return simple(token.KindLeftBrace)
	case '|':
		return simple(token.KindPipe)
	case '}':
		return simple(token.KindRightBrace)
	case '"':
		return l.lexString()
	default:
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			return l.lexName(startPos), nil
		case c == '-' || (c >= '0' && c <= '9'):
			return l.lexNumber(startPos)
		}
	}

	return nil, l.syntaxErrorAt(startPos, fmt.Sprintf("unexpected character %s", l.charAtPosToStr(startPos)))
}

func (l *Lexer) lexComment() *token.Token {
	startPos := l.bytePos
	l.consume() // '#'
	for {
		c := l.peek()
		if c == 0 && l.bytePos >= l.bodySize {
			break
		}
		if c == '\n' || c == '\r' {
			break
		}
		l.consume()
	}
	return l.makeToken(token.KindComment, startPos, "")
}

func (l *Lexer) lexName(startPos uint) *token.Token {
	l.consume()
	for {
		c := l.peek()
		if c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			l.consume()
			continue
		}
		break
	}
	return l.makeToken(token.KindName, startPos, string(l.source.Body[startPos:l.bytePos]))
}

func (l *Lexer) lexNumber(startPos uint) (*token.Token, error) {
	kind := token.KindInt
	c := l.consume()

	if c == '-' {
		c = l.peek()
		if c < '0' || c > '9' {
			return nil, l.syntaxErrorAt(l.bytePos, "invalid number, expected digit after '-'")
		}
		c = l.consume()
	}

	if c == '0' {
		if n := l.peek(); n >= '0' && n <= '9' {
			return nil, l.syntaxErrorAt(l.bytePos, "invalid number, unexpected digit after 0")
		}
		c = l.peek()
	} else {
		c = l.consumeDigits()
	}

	if c == '.' {
		kind = token.KindFloat
		l.consume()
		if d := l.peek(); d >= '0' && d <= '9' {
			l.consume()
			c = l.consumeDigits()
		} else {
			return nil, l.syntaxErrorAt(l.bytePos, "invalid number, expected digit after '.'")
		}
	}

	if c = l.peek(); c == 'e' || c == 'E' {
		kind = token.KindFloat
		l.consume()
		if s := l.peek(); s == '+' || s == '-' {
			l.consume()
		}
		if d := l.peek(); d >= '0' && d <= '9' {
			l.consume()
			l.consumeDigits()
		} else {
			return nil, l.syntaxErrorAt(l.bytePos, "invalid number, expected digit in exponent")
		}
	}

	return l.makeToken(kind, startPos, string(l.source.Body[startPos:l.bytePos])), nil
}

func (l *Lexer) lexString() (*token.Token, error) {
	startPos := l.bytePos
	l.consume() // opening quote

	var buf bytes.Buffer
	for l.bytePos < l.bodySize {
		c := l.peek()
		if c == '\n' || c == '\r' {
			break
		}
		if c == '"' {
			l.consume()
			return l.makeToken(token.KindString, startPos, buf.String()), nil
		}
		if c < 0x20 && c != '\t' {
			return nil, l.syntaxErrorAt(l.bytePos, "invalid character within string")
		}
		l.consume()
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		esc := l.consume()
		switch esc {
		case '"':
			buf.WriteByte('"')
		case '\\':
			buf.WriteByte('\\')
		case '/':
			buf.WriteByte('/')
		case 'b':
			buf.WriteByte('\b')
		case 'f':
			buf.WriteByte('\f')
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		default:
			return nil, l.syntaxErrorAt(l.bytePos-1, fmt.Sprintf("invalid character escape sequence: \\%c", esc))
		}
	}

	return nil, l.syntaxErrorAt(l.bytePos, "unterminated string")
}
