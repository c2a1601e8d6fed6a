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

// Package ast holds the parsed syntax tree for both GraphQL SDL (schema)
// documents and GraphQL operation (query) documents.
package ast

// Name is an identifier occurring in source.
type Name struct {
	Value string
}

//===----------------------------------------------------------------------===
// Type system definitions (SDL)
//===----------------------------------------------------------------------===

// TypeSystemDocument is a parsed SDL document.
type TypeSystemDocument struct {
	Definitions []*ObjectTypeDefinition
}

// ObjectTypeDefinition is a `type Name { fields }` definition.
type ObjectTypeDefinition struct {
	Name   Name
	Fields []*FieldDefinition
}

// FieldDefinition is one field within an ObjectTypeDefinition.
type FieldDefinition struct {
	Name Name
	Type Type
}

// Type is a reference to a named type, optionally wrapped in List/NonNull.
//
//	Type
//		NamedType
//		ListType
//		NonNullType
type Type interface {
	typeNode()
}

// NamedType refers to a type by name.
type NamedType struct {
	Name Name
}

func (NamedType) typeNode() {}

// ListType wraps an item type in a list.
type ListType struct {
	ItemType Type
}

func (ListType) typeNode() {}

// NonNullType wraps a nullable type so it may not be null.
type NonNullType struct {
	Type Type
}

func (NonNullType) typeNode() {}

//===----------------------------------------------------------------------===
// Executable documents (query/operation)
//===----------------------------------------------------------------------===

// ExecutableDocument is a parsed operation document: zero or more fragment
// definitions plus operation definitions.
type ExecutableDocument struct {
	Operations []*OperationDefinition
	Fragments  map[string]*FragmentDefinition
}

// OperationType names the kind of operation ("query", "mutation" or
// "subscription"); the parser records it but compiles every kind the same way.
type OperationType string

// OperationTypeQuery is the operation type of "query" and of the shorthand
// `{ ... }` form.
const OperationTypeQuery OperationType = "query"

// OperationDefinition is a top-level `query { ... }` (or shorthand `{ ... }`).
type OperationDefinition struct {
	Type         OperationType
	Name         Name
	SelectionSet SelectionSet
}

// FragmentDefinition is a `fragment Name on Type { ... }` definition.
type FragmentDefinition struct {
	Name          Name
	TypeCondition Name
	SelectionSet  SelectionSet
}

// SelectionSet is an ordered sequence of selections.
type SelectionSet []Selection

// Selection is a field, fragment spread, or inline fragment.
type Selection interface {
	selectionNode()
}

// Field is a single field selection, optionally aliased and/or argumented.
type Field struct {
	Alias        Name
	Name         Name
	Arguments    []*Argument
	SelectionSet SelectionSet
}

func (*Field) selectionNode() {}

// ResponseName is the alias if present, otherwise the field name.
func (f *Field) ResponseName() string {
	if f.Alias.Value != "" {
		return f.Alias.Value
	}
	return f.Name.Value
}

// FragmentSpread is a `...Name` selection.
type FragmentSpread struct {
	Name Name
}

func (*FragmentSpread) selectionNode() {}

// InlineFragment is a `... on Type { ... }` or `... { ... }` selection.
type InlineFragment struct {
	TypeCondition Name
	SelectionSet  SelectionSet
}

func (*InlineFragment) selectionNode() {}

// Argument is a single `name: value` pair taken by a field.
type Argument struct {
	Name  Name
	Value Value
}

//===----------------------------------------------------------------------===
// Values
//===----------------------------------------------------------------------===

// Value is an argument's literal value, or a reference this compiler rejects
// (Variable, ListValue, ObjectValue; see errs.KindUnsupportedArgument).
type Value interface {
	// Literal returns the stringified literal form used by the query parser to
	// populate QueryField arguments: strings without surrounding
	// quotes, booleans lower-cased, numerics in decimal form.
	Literal() string
	valueNode()
}

// IntValue is an integer literal.
type IntValue struct{ Raw string }

func (v IntValue) Literal() string { return v.Raw }
func (IntValue) valueNode()        {}

// FloatValue is a floating point literal.
type FloatValue struct{ Raw string }

func (v FloatValue) Literal() string { return v.Raw }
func (FloatValue) valueNode()        {}

// StringValue is a quoted string literal.
type StringValue struct{ Raw string }

func (v StringValue) Literal() string { return v.Raw }
func (StringValue) valueNode()        {}

// BooleanValue is `true` or `false`.
type BooleanValue struct{ Raw bool }

func (v BooleanValue) Literal() string {
	if v.Raw {
		return "true"
	}
	return "false"
}
func (BooleanValue) valueNode() {}

// EnumValue is a bare name used as an enum literal.
type EnumValue struct{ Raw string }

func (v EnumValue) Literal() string { return v.Raw }
func (EnumValue) valueNode()        {}

// Variable is a `$name` reference. Not a supported argument literal.
type Variable struct{ Name string }

func (v Variable) Literal() string { return "$" + v.Name }
func (Variable) valueNode()        {}

// ListValue is a `[ ... ]` literal. Not a supported argument literal.
type ListValue struct{ Values []Value }

func (ListValue) Literal() string { return "[...]" }
func (ListValue) valueNode()      {}

// ObjectValue is a `{ ... }` input object literal. Not a supported argument literal.
type ObjectValue struct{ Fields map[string]Value }

func (ObjectValue) Literal() string { return "{...}" }
func (ObjectValue) valueNode()      {}
