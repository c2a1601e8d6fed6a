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
	"github.com/abishekaditya/QueryBridge/ast"
	"github.com/abishekaditya/QueryBridge/errs"
	"github.com/abishekaditya/QueryBridge/selection"
)

// builder inlines fragment spreads and inline fragments into the surrounding
// selection set while assigning path-unique variables. It is
// discarded at the end of a single ParseQuery call, so the fragment
// recursion-guard and variable cache never leak across compilations.
type builder struct {
	fragments map[string]*ast.FragmentDefinition
	alloc     *selection.VarAllocator
	// visiting guards against a fragment (transitively) spreading itself.
	visiting map[string]bool
}

// buildSelectionSet walks one selection set, inlining fragment members at
// their source position, and returns the selection.Field children produced.
func (b *builder) buildSelectionSet(set ast.SelectionSet, parentVar string, parentPath string) ([]*selection.Field, error) {
	var out []*selection.Field
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			field, err := b.buildField(s, parentVar, parentPath)
			if err != nil {
				return nil, err
			}
			out = append(out, field)

		case *ast.FragmentSpread:
			inlined, err := b.inlineFragmentSpread(s, parentVar, parentPath)
			if err != nil {
				return nil, err
			}
			out = append(out, inlined...)

		case *ast.InlineFragment:
			inlined, err := b.buildSelectionSet(s.SelectionSet, parentVar, parentPath)
			if err != nil {
				return nil, err
			}
			out = append(out, inlined...)
		}
	}
	return out, nil
}

func (b *builder) inlineFragmentSpread(spread *ast.FragmentSpread, parentVar string, parentPath string) ([]*selection.Field, error) {
	name := spread.Name.Value
	frag, ok := b.fragments[name]
	if !ok {
		return nil, errs.New(errs.KindFragmentUndefined, name, "fragment spread names an undefined fragment")
	}
	if b.visiting[name] {
		return nil, errs.New(errs.KindFragmentCycle, name, "fragment spread forms a cycle")
	}

	b.visiting[name] = true
	defer delete(b.visiting, name)

	return b.buildSelectionSet(frag.SelectionSet, parentVar, parentPath)
}

func (b *builder) buildField(f *ast.Field, parentVar string, parentPath string) (*selection.Field, error) {
	name := f.ResponseName()
	path := name
	if parentPath != "" {
		path = parentPath + "." + name
	}
	childVar := b.alloc.VarForPath(path, name)

	args, err := b.buildArguments(f.Arguments)
	if err != nil {
		return nil, err
	}

	children, err := b.buildSelectionSet(f.SelectionSet, childVar, path)
	if err != nil {
		return nil, err
	}

	return &selection.Field{
		Name:      name,
		Arguments: args,
		Children:  children,
		ParentVar: parentVar,
		ChildVar:  childVar,
	}, nil
}

// buildArguments extracts (name, stringified literal) pairs.
// Variables and complex input objects are not supported literals.
func (b *builder) buildArguments(args []*ast.Argument) ([]selection.Argument, error) {
	out := make([]selection.Argument, 0, len(args))
	for _, a := range args {
		switch a.Value.(type) {
		case ast.Variable, ast.ListValue, ast.ObjectValue:
			return nil, errs.New(errs.KindUnsupportedArgument, a.Name.Value,
				"only literal scalar/enum/boolean argument values are supported")
		}
		out = append(out, selection.Argument{Name: a.Name.Value, Literal: a.Value.Literal()})
	}
	return out, nil
}
