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

package token

// Kind enumerates the lexical token kinds produced by the lexer.
type Kind uint8

// Enumeration of Kind.
const (
	KindSOF Kind = iota
	KindEOF
	KindBang
	KindDollar
	KindAmp
	KindLeftParen
	KindRightParen
	KindSpread
	KindColon
	KindEquals
	KindAt
	KindLeftBracket
	KindRightBracket
	KindLeftBrace
	KindRightBrace
	KindPipe
	KindName
	KindInt
	KindFloat
	KindString
	KindBlockString
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindSOF:
		return "<SOF>"
	case KindEOF:
		return "<EOF>"
	case KindBang:
		return "!"
	case KindDollar:
		return "$"
	case KindAmp:
		return "&"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindSpread:
		return "..."
	case KindColon:
		return ":"
	case KindEquals:
		return "="
	case KindAt:
		return "@"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftBrace:
		return "{"
	case KindRightBrace:
		return "}"
	case KindPipe:
		return "|"
	case KindName:
		return "Name"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString, KindBlockString:
		return "String"
	case KindComment:
		return "Comment"
	}
	return "Unknown"
}

// Token is a single lexical token with its source position. Value holds the
// decoded literal for Name/Int/Float/String/BlockString tokens.
type Token struct {
	Kind  Kind
	Pos   uint
	Value string
}

// Location resolves the token's line/column against its originating source.
func (t *Token) Location(source *Source) Location {
	return source.LocationOf(t.Pos)
}
