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

package parser

import (
	"fmt"

	"github.com/abishekaditya/QueryBridge/ast"
	"github.com/abishekaditya/QueryBridge/errs"
	"github.com/abishekaditya/QueryBridge/lexer"
	"github.com/abishekaditya/QueryBridge/token"
)

// schemaParser is a recursive-descent parser over GraphQL SDL. It
// only needs to recognize object type definitions and their field names and
// types; other SDL constructs (scalar/enum/input/interface/union/schema
// blocks, directive definitions) are accepted and skipped so that schemas
// written with the full SDL grammar still compile; the analyser never needs
// to resolve a field's ultimate scalar-ness.
type schemaParser struct {
	lex     *lexer.Lexer
	source  *token.Source
	current *token.Token
}

// ParseSchema parses SDL text into the ordered sequence of object type
// definitions, skipping Query/Mutation/introspection types.
func ParseSchema(schemaText string) (*ast.TypeSystemDocument, error) {
	source := token.NewSource("schema", schemaText)
	p := &schemaParser{lex: lexer.New(source), source: source}
	if err := p.advance(); err != nil {
		return nil, errs.Wrap(errs.KindSchemaParse, "", err, "failed to lex schema")
	}

	doc := &ast.TypeSystemDocument{}
	for p.current.Kind != token.KindEOF {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		if def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	return doc, nil
}

func (p *schemaParser) advance() error {
	tok, err := p.lex.Advance()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *schemaParser) syntaxErr(message string) error {
	return errs.New(errs.KindSchemaParse, "", message)
}

func (p *schemaParser) expectKind(kind token.Kind) (*token.Token, error) {
	if p.current.Kind != kind {
		return nil, p.syntaxErr(fmt.Sprintf("expected %s but got %s %q", kind, p.current.Kind, p.current.Value))
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (p *schemaParser) expectName(name string) error {
	if p.current.Kind != token.KindName || p.current.Value != name {
		return p.syntaxErr(fmt.Sprintf("expected keyword %q but got %q", name, p.current.Value))
	}
	return p.advance()
}

func (p *schemaParser) skipKeyword(name string) bool {
	return p.current.Kind == token.KindName && p.current.Value == name
}

// parseDefinition dispatches on the leading keyword of a top-level SDL
// definition. Only ObjectTypeDefinition ("type") is materialized; everything
// else is parsed just far enough to be skipped safely.
func (p *schemaParser) parseDefinition() (*ast.ObjectTypeDefinition, error) {
	switch {
	case p.skipKeyword("type"):
		return p.parseObjectTypeDefinition()
	case p.skipKeyword("schema"):
		// `schema { ... }` has no name before its block.
		if err := p.advance(); err != nil {
			return nil, err
		}
		return nil, p.skipBracedBlock()
	case p.skipKeyword("interface"), p.skipKeyword("input"):
		return nil, p.skipNamedBlockDefinition()
	case p.skipKeyword("enum"), p.skipKeyword("union"):
		return nil, p.skipNamedBlockDefinition()
	case p.skipKeyword("scalar"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		_, err := p.expectKind(token.KindName)
		return nil, err
	case p.skipKeyword("directive"):
		return nil, p.skipDirectiveDefinition()
	}
	return nil, p.syntaxErr(fmt.Sprintf("unexpected token %q in schema", p.current.Value))
}

// skipNamedBlockDefinition consumes `<keyword> Name <skippable-suffix> { ... }`
// without materializing any AST.
func (p *schemaParser) skipNamedBlockDefinition() error {
	if err := p.advance(); err != nil { // keyword
		return err
	}
	if _, err := p.expectKind(token.KindName); err != nil { // name
		return err
	}
	// Skip `implements A & B`, union member lists (`= A | B`), etc. up to the
	// next opening brace, the next `type` keyword, or EOF. A definition with
	// no block of its own (e.g. a `union`) therefore also consumes any
	// following non-`type` definitions, up to and including the next block.
	for p.current.Kind != token.KindLeftBrace && p.current.Kind != token.KindEOF {
		if p.current.Kind == token.KindName && p.current.Value == "type" {
			// No opening brace before the next object type; stop.
			break
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	if p.current.Kind != token.KindLeftBrace {
		return nil
	}
	return p.skipBracedBlock()
}

func (p *schemaParser) skipDirectiveDefinition() error {
	for p.current.Kind != token.KindEOF {
		if p.current.Kind == token.KindName && p.current.Value == "type" {
			break
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// skipBracedBlock consumes a balanced `{ ... }` block, tracking nested braces.
func (p *schemaParser) skipBracedBlock() error {
	depth := 0
	for {
		switch p.current.Kind {
		case token.KindLeftBrace:
			depth++
		case token.KindRightBrace:
			depth--
		case token.KindEOF:
			return p.syntaxErr("unexpected end of schema inside block")
		}
		if err := p.advance(); err != nil {
			return err
		}
		if depth == 0 {
			return nil
		}
	}
}

func (p *schemaParser) parseObjectTypeDefinition() (*ast.ObjectTypeDefinition, error) {
	if err := p.advance(); err != nil { // "type"
		return nil, err
	}
	nameTok, err := p.expectKind(token.KindName)
	if err != nil {
		return nil, err
	}
	name := nameTok.Value

	// Skip an optional `implements A & B` clause.
	if p.skipKeyword("implements") {
		for !(p.current.Kind == token.KindLeftBrace || p.current.Kind == token.KindEOF) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	def := &ast.ObjectTypeDefinition{Name: ast.Name{Value: name}}

	isIgnored := name == "Query" || name == "Mutation" || name == "Subscription" ||
		len(name) >= 2 && name[:2] == "__"

	if p.current.Kind != token.KindLeftBrace {
		// Type with no field block (rare, but valid SDL for an empty extension).
		return nil, nil
	}

	if err := p.advance(); err != nil { // "{"
		return nil, err
	}
	for p.current.Kind != token.KindRightBrace {
		if p.current.Kind == token.KindEOF {
			return nil, p.syntaxErr("unexpected end of schema inside type " + name)
		}
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		if !isIgnored {
			def.Fields = append(def.Fields, field)
		}
	}
	if err := p.advance(); err != nil { // "}"
		return nil, err
	}

	if isIgnored {
		return nil, nil
	}
	return def, nil
}

func (p *schemaParser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	nameTok, err := p.expectKind(token.KindName)
	if err != nil {
		return nil, err
	}

	// Skip an optional argument list `(arg: Type, ...)`.
	if p.current.Kind == token.KindLeftParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		depth := 1
		for depth > 0 {
			switch p.current.Kind {
			case token.KindLeftParen:
				depth++
			case token.KindRightParen:
				depth--
			case token.KindEOF:
				return nil, p.syntaxErr("unexpected end of schema inside argument list")
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expectKind(token.KindColon); err != nil {
		return nil, err
	}

	ttype, err := p.parseType()
	if err != nil {
		return nil, err
	}

	// Skip a trailing `= default` or directives, which don't affect SchemaType.
	for p.current.Kind == token.KindAt || p.current.Kind == token.KindEquals {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return &ast.FieldDefinition{Name: ast.Name{Value: nameTok.Value}, Type: ttype}, nil
}

// parseType translates the AST type node recursively:
//
//	NonNullType(inner) -> NonNull(translate(inner))
//	ListType(inner)    -> List(translate(inner))
//	NamedType(n)       -> Scalar(n)
func (p *schemaParser) parseType() (ast.Type, error) {
	var base ast.Type

	if p.current.Kind == token.KindLeftBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.KindRightBracket); err != nil {
			return nil, err
		}
		base = ast.ListType{ItemType: inner}
	} else {
		nameTok, err := p.expectKind(token.KindName)
		if err != nil {
			return nil, err
		}
		base = ast.NamedType{Name: ast.Name{Value: nameTok.Value}}
	}

	if p.current.Kind == token.KindBang {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NonNullType{Type: base}, nil
	}
	return base, nil
}
