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

// Package schema implements the SchemaType variant and the
// translation from parsed SDL type nodes into it.
package schema

import "github.com/abishekaditya/QueryBridge/ast"

// Kind tags which of the four SchemaType shapes a Type holds.
type Kind uint8

// Enumeration of Kind.
const (
	KindScalar Kind = iota
	KindObject
	KindList
	KindNonNull
)

// Field is one (name, type) pair of an Object SchemaType, in source order.
type Field struct {
	Name string
	Type *Type
}

// Type is the SchemaType tagged variant: Scalar, Object, List, or
// NonNull. Equality is structural: two Types describe the same shape iff
// their Kind and payload match recursively.
type Type struct {
	Kind Kind

	// Set when Kind == KindScalar or KindObject.
	Name string
	// Set when Kind == KindObject, in field-definition order.
	Fields []Field
	// Set when Kind == KindList or KindNonNull.
	Inner *Type
}

// Scalar builds a named leaf type.
func Scalar(name string) *Type { return &Type{Kind: KindScalar, Name: name} }

// Object builds a type carrying an ordered field list.
func Object(name string, fields []Field) *Type {
	return &Type{Kind: KindObject, Name: name, Fields: fields}
}

// List builds a list wrapper.
func List(element *Type) *Type { return &Type{Kind: KindList, Inner: element} }

// NonNull builds a non-null wrapper.
func NonNull(inner *Type) *Type { return &Type{Kind: KindNonNull, Inner: inner} }

// Unwrap repeatedly strips List and NonNull wrappers to reach a Scalar or
// Object.
func (t *Type) Unwrap() *Type {
	for t.Kind == KindList || t.Kind == KindNonNull {
		t = t.Inner
	}
	return t
}

// translate converts an ast.Type into a SchemaType:
//
//	NonNullType(inner) -> NonNull(translate(inner))
//	ListType(inner)    -> List(translate(inner))
//	NamedType(n)       -> Scalar(n)
func translate(t ast.Type) *Type {
	switch n := t.(type) {
	case ast.NonNullType:
		return NonNull(translate(n.Type))
	case ast.ListType:
		return List(translate(n.ItemType))
	case ast.NamedType:
		return Scalar(n.Name.Value)
	default:
		// Unreachable: ast.Type has exactly these three implementations.
		return Scalar("")
	}
}

// Build translates a parsed SDL document into the ordered sequence of Object
// SchemaTypes. The SDL parser has already excluded
// Query/Mutation/introspection types, so every definition here is kept.
func Build(doc *ast.TypeSystemDocument) []*Type {
	types := make([]*Type, 0, len(doc.Definitions))
	for _, def := range doc.Definitions {
		fields := make([]Field, 0, len(def.Fields))
		for _, f := range def.Fields {
			fields = append(fields, Field{Name: f.Name.Value, Type: translate(f.Type)})
		}
		types = append(types, Object(def.Name.Value, fields))
	}
	return types
}
