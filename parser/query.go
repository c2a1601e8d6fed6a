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
	"github.com/abishekaditya/QueryBridge/selection"
	"github.com/abishekaditya/QueryBridge/token"
)

// queryParser parses a GraphQL operation document: the operation
// itself plus any fragment definitions, which are gathered first so that
// spreads can be resolved regardless of definition order in source.
type queryParser struct {
	lex     *lexer.Lexer
	current *token.Token
}

// ParseQuery parses operation text into the ordered sequence of top-level
// selection-tree nodes, having already inlined fragment spreads
// and inline fragments and assigned path-unique variables to every node.
func ParseQuery(queryText string) ([]*selection.Field, error) {
	doc, err := parseExecutableDocument(queryText)
	if err != nil {
		return nil, err
	}

	op, err := firstOperation(doc)
	if err != nil {
		return nil, err
	}

	b := &builder{
		fragments: doc.Fragments,
		alloc:     selection.NewVarAllocator(),
		visiting:  make(map[string]bool),
	}
	return b.buildSelectionSet(op.SelectionSet, selection.RootVar, "")
}

func firstOperation(doc *ast.ExecutableDocument) (*ast.OperationDefinition, error) {
	if len(doc.Operations) == 0 {
		return nil, errs.New(errs.KindNoOperation, "", "document contains no operation")
	}
	return doc.Operations[0], nil
}

//===----------------------------------------------------------------------===
// Syntax: document -> ast.ExecutableDocument
//===----------------------------------------------------------------------===

func parseExecutableDocument(queryText string) (*ast.ExecutableDocument, error) {
	source := token.NewSource("query", queryText)
	p := &queryParser{lex: lexer.New(source)}
	if err := p.advance(); err != nil {
		return nil, errs.Wrap(errs.KindSchemaParse, "", err, "failed to lex query")
	}

	doc := &ast.ExecutableDocument{Fragments: make(map[string]*ast.FragmentDefinition)}
	for p.current.Kind != token.KindEOF {
		switch {
		case p.isKeyword("fragment"):
			frag, err := p.parseFragmentDefinition()
			if err != nil {
				return nil, err
			}
			doc.Fragments[frag.Name.Value] = frag

		case p.isKeyword("query"), p.isKeyword("mutation"), p.isKeyword("subscription"), p.current.Kind == token.KindLeftBrace:
			op, err := p.parseOperationDefinition()
			if err != nil {
				return nil, err
			}
			doc.Operations = append(doc.Operations, op)

		default:
			return nil, p.syntaxErr(fmt.Sprintf("unexpected token %q in query document", p.current.Value))
		}
	}
	return doc, nil
}

func (p *queryParser) advance() error {
	tok, err := p.lex.Advance()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *queryParser) syntaxErr(message string) error {
	return errs.New(errs.KindSchemaParse, "", message)
}

func (p *queryParser) isKeyword(name string) bool {
	return p.current.Kind == token.KindName && p.current.Value == name
}

func (p *queryParser) expectKind(kind token.Kind) (*token.Token, error) {
	if p.current.Kind != kind {
		return nil, p.syntaxErr(fmt.Sprintf("expected %s but got %s %q", kind, p.current.Kind, p.current.Value))
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (p *queryParser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	op := &ast.OperationDefinition{Type: ast.OperationTypeQuery}

	if p.current.Kind == token.KindName {
		// "query" / "mutation" / "subscription". Non-query types parse without
		// error and are not rejected anywhere: the selection tree is built
		// from any operation's top-level selection set.
		op.Type = ast.OperationType(p.current.Value)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.current.Kind == token.KindName {
			op.Name = ast.Name{Value: p.current.Value}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if err := p.skipDirectives(); err != nil {
			return nil, err
		}
	}

	set, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	op.SelectionSet = set
	return op, nil
}

func (p *queryParser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	if err := p.advance(); err != nil { // "fragment"
		return nil, err
	}
	nameTok, err := p.expectKind(token.KindName)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	condTok, err := p.expectKind(token.KindName)
	if err != nil {
		return nil, err
	}
	if err := p.skipDirectives(); err != nil {
		return nil, err
	}
	set, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentDefinition{
		Name:          ast.Name{Value: nameTok.Value},
		TypeCondition: ast.Name{Value: condTok.Value},
		SelectionSet:  set,
	}, nil
}

func (p *queryParser) expectKeyword(name string) error {
	if !p.isKeyword(name) {
		return p.syntaxErr(fmt.Sprintf("expected keyword %q but got %q", name, p.current.Value))
	}
	return p.advance()
}

func (p *queryParser) parseSelectionSet() (ast.SelectionSet, error) {
	if _, err := p.expectKind(token.KindLeftBrace); err != nil {
		return nil, err
	}
	var set ast.SelectionSet
	for p.current.Kind != token.KindRightBrace {
		if p.current.Kind == token.KindEOF {
			return nil, p.syntaxErr("unexpected end of document inside selection set")
		}
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		set = append(set, sel)
	}
	if _, err := p.expectKind(token.KindRightBrace); err != nil {
		return nil, err
	}
	return set, nil
}

func (p *queryParser) parseSelection() (ast.Selection, error) {
	if p.current.Kind == token.KindSpread {
		return p.parseFragmentSelection()
	}
	return p.parseField()
}

func (p *queryParser) parseFragmentSelection() (ast.Selection, error) {
	if err := p.advance(); err != nil { // "..."
		return nil, err
	}

	if p.isKeyword("on") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		condTok, err := p.expectKind(token.KindName)
		if err != nil {
			return nil, err
		}
		if err := p.skipDirectives(); err != nil {
			return nil, err
		}
		set, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{TypeCondition: ast.Name{Value: condTok.Value}, SelectionSet: set}, nil
	}

	if p.current.Kind == token.KindLeftBrace {
		if err := p.skipDirectives(); err != nil {
			return nil, err
		}
		set, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{SelectionSet: set}, nil
	}

	nameTok, err := p.expectKind(token.KindName)
	if err != nil {
		return nil, err
	}
	if err := p.skipDirectives(); err != nil {
		return nil, err
	}
	return &ast.FragmentSpread{Name: ast.Name{Value: nameTok.Value}}, nil
}

func (p *queryParser) parseField() (*ast.Field, error) {
	firstTok, err := p.expectKind(token.KindName)
	if err != nil {
		return nil, err
	}

	field := &ast.Field{Name: ast.Name{Value: firstTok.Value}}
	if p.current.Kind == token.KindColon {
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expectKind(token.KindName)
		if err != nil {
			return nil, err
		}
		field.Alias = field.Name
		field.Name = ast.Name{Value: nameTok.Value}
	}

	if p.current.Kind == token.KindLeftParen {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		field.Arguments = args
	}

	if err := p.skipDirectives(); err != nil {
		return nil, err
	}

	if p.current.Kind == token.KindLeftBrace {
		set, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		field.SelectionSet = set
	}

	return field, nil
}

func (p *queryParser) parseArguments() ([]*ast.Argument, error) {
	if _, err := p.expectKind(token.KindLeftParen); err != nil {
		return nil, err
	}
	var args []*ast.Argument
	for p.current.Kind != token.KindRightParen {
		if p.current.Kind == token.KindEOF {
			return nil, p.syntaxErr("unexpected end of document inside argument list")
		}
		nameTok, err := p.expectKind(token.KindName)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.KindColon); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument{Name: ast.Name{Value: nameTok.Value}, Value: value})
	}
	if _, err := p.expectKind(token.KindRightParen); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *queryParser) parseValue() (ast.Value, error) {
	switch p.current.Kind {
	case token.KindDollar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expectKind(token.KindName)
		if err != nil {
			return nil, err
		}
		return ast.Variable{Name: nameTok.Value}, nil

	case token.KindInt:
		v := p.current.Value
		return ast.IntValue{Raw: v}, p.advance()

	case token.KindFloat:
		v := p.current.Value
		return ast.FloatValue{Raw: v}, p.advance()

	case token.KindString, token.KindBlockString:
		v := p.current.Value
		return ast.StringValue{Raw: v}, p.advance()

	case token.KindLeftBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var values []ast.Value
		for p.current.Kind != token.KindRightBracket {
			if p.current.Kind == token.KindEOF {
				return nil, p.syntaxErr("unexpected end of document inside list value")
			}
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return ast.ListValue{Values: values}, p.advance()

	case token.KindLeftBrace:
		if err := p.advance(); err != nil {
			return nil, err
		}
		fields := make(map[string]ast.Value)
		for p.current.Kind != token.KindRightBrace {
			if p.current.Kind == token.KindEOF {
				return nil, p.syntaxErr("unexpected end of document inside object value")
			}
			nameTok, err := p.expectKind(token.KindName)
			if err != nil {
				return nil, err
			}
			if _, err := p.expectKind(token.KindColon); err != nil {
				return nil, err
			}
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			fields[nameTok.Value] = v
		}
		return ast.ObjectValue{Fields: fields}, p.advance()

	case token.KindName:
		v := p.current.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch v {
		case "true":
			return ast.BooleanValue{Raw: true}, nil
		case "false":
			return ast.BooleanValue{Raw: false}, nil
		case "null":
			return ast.EnumValue{Raw: "null"}, nil
		default:
			return ast.EnumValue{Raw: v}, nil
		}
	}

	return nil, p.syntaxErr(fmt.Sprintf("unexpected token %q where a value was expected", p.current.Value))
}

// skipDirectives consumes any `@name(args)` directives attached to the
// current position. Directives carry no semantics in this compiler, so they
// are parsed only far enough to be discarded.
func (p *queryParser) skipDirectives() error {
	for p.current.Kind == token.KindAt {
		if err := p.advance(); err != nil {
			return err
		}
		if _, err := p.expectKind(token.KindName); err != nil {
			return err
		}
		if p.current.Kind == token.KindLeftParen {
			if _, err := p.parseArguments(); err != nil {
				return err
			}
		}
	}
	return nil
}
