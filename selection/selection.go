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

// Package selection implements the selection tree: the nested
// structure of GraphQL field selections, after fragments are inlined, with
// stable path-derived Datalog variables assigned to every node.
package selection

import (
	"strconv"
	"strings"
)

// RootVar is the reserved variable name for the enclosing binding of every
// top-level selection.
const RootVar = "ROOT"

// Argument is one (name, stringified literal) pair taken by a Field, in
// source order.
type Argument struct {
	Name    string
	Literal string
}

// Field is a node of the selection tree.
type Field struct {
	// Name is the selected field name, or its alias if one was given.
	Name string

	// Arguments is the ordered sequence of (name, literal) pairs.
	Arguments []Argument

	// Children is the ordered sequence of child selections.
	Children []*Field

	// ParentVar is the Datalog variable of the enclosing binding ("ROOT" for
	// top-level nodes).
	ParentVar string

	// ChildVar is this node's own binding, derived from its dotted selection
	// path.
	ChildVar string
}

// IsScalar reports whether the node has no children.
func (f *Field) IsScalar() bool {
	return len(f.Children) == 0
}

// BoundMask is the concatenation of one "B" per argument, or "_" when the
// field takes none.
func (f *Field) BoundMask() string {
	if len(f.Arguments) == 0 {
		return "_"
	}
	return strings.Repeat("B", len(f.Arguments))
}

// BoundVals is the literal-string sequence extracted from Arguments.
func (f *Field) BoundVals() []string {
	vals := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		vals[i] = a.Literal
	}
	return vals
}

// VarAllocator mints stable, path-unique Datalog variables. Each
// selection's dotted path is the key into a path → variable cache; the first
// lookup for a path mints a fresh variable, and every subsequent lookup for
// the same path returns the cached one. The counter is scoped to a single
// allocator instance so that two independent compilations never observe
// shared state.
type VarAllocator struct {
	cache   map[string]string
	counter int
}

// NewVarAllocator creates an allocator with a freshly-seeded counter.
func NewVarAllocator() *VarAllocator {
	return &VarAllocator{cache: make(map[string]string)}
}

// VarForPath returns the variable bound to path, minting one from baseName
// (the field's own name, uppercased) on first use.
func (a *VarAllocator) VarForPath(path string, baseName string) string {
	if v, ok := a.cache[path]; ok {
		return v
	}
	a.counter++
	v := strings.ToUpper(baseName) + "_" + strconv.Itoa(a.counter)
	a.cache[path] = v
	return v
}
