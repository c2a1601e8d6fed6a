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

// Package assemble builds the final `ans/k` rule joining every
// leaf-scalar binding reachable from a compiled selection tree.
package assemble

import (
	"fmt"
	"strings"

	"github.com/abishekaditya/QueryBridge/emit"
	"github.com/abishekaditya/QueryBridge/selection"
)

// Result is the final answer rule, split into its head variables and body
// goals so callers can render it or inspect its shape.
type Result struct {
	HeadVars []string
	Goals    []string
}

// Rule renders the conventional `ans(H1, ..., Hk) :- G1, ..., Gm.` text, or
// `ans :- true.` when there are no head variables.
func (r Result) Rule() string {
	if len(r.HeadVars) == 0 {
		return "ans :- true."
	}
	return fmt.Sprintf("ans(%s) :- %s.", strings.Join(r.HeadVars, ", "), strings.Join(r.Goals, ", "))
}

// Build walks roots in pre-order, accumulating one head variable per leaf
// scalar and the body goals joining every result predicate, then splices in the
// record-iteration prologue for any root that is a filtered collection.
func Build(roots []*selection.Field) Result {
	a := &assembler{seen: make(map[string]bool)}
	for _, root := range roots {
		a.walk(root, root.Name, true)
	}
	a.spliceFilteredRootPrologue(roots)
	return Result{HeadVars: a.headVars, Goals: a.goals}
}

type assembler struct {
	headVars []string
	goals    []string
	seen     map[string]bool
}

func (a *assembler) addGoal(goal string) {
	if a.seen[goal] {
		return
	}
	a.seen[goal] = true
	a.goals = append(a.goals, goal)
}

// walk accumulates head variables and body goals in pre-order. path is the dotted
// selection path with "_" joins (matching the emitter's rule names);
// atRoot distinguishes the root-level goal shapes from nested ones.
func (a *assembler) walk(n *selection.Field, path string, atRoot bool) {
	if n.IsScalar() {
		headVar := strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
		a.headVars = append(a.headVars, headVar)
		if atRoot {
			a.addGoal(fmt.Sprintf("%s_ext(%s, %s)", n.Name, n.ParentVar, n.ChildVar))
			a.addGoal(fmt.Sprintf("%s_result(%s, %s)", n.Name, n.ParentVar, headVar))
		} else {
			a.addGoal(fmt.Sprintf("%s_result(%s, %s)", path, n.ParentVar, headVar))
		}
		return
	}

	if atRoot {
		a.addGoal(fmt.Sprintf("%s_ext(%s)", n.Name, n.ChildVar))
		a.addGoal(fmt.Sprintf("%s_result(%s)", n.Name, n.ParentVar))
		for _, c := range n.Children {
			if !c.IsScalar() {
				a.addGoal(fmt.Sprintf("%s_%s_result(%s, %s)", n.Name, c.Name, n.ChildVar, c.ChildVar))
			}
		}
	} else {
		a.addGoal(fmt.Sprintf("%s_result(%s)", path, n.ParentVar))
	}

	for _, c := range n.Children {
		a.walk(c, path+"_"+c.Name, false)
	}
}

// spliceFilteredRootPrologue builds the record-iteration
// prologue: for every root that is a filtered collection, drop the first
// `<plural>_ext(...)` and the first `<plural>_result(...)` goal, whatever
// variable they carry (see dropGoalPrefix), and prepend the
// four-line record-iteration sequence in their place, at the front of the
// body, in root order.
func (a *assembler) spliceFilteredRootPrologue(roots []*selection.Field) {
	var prologue []string
	for _, root := range roots {
		if !emit.IsFilteredCollection(root) {
			continue
		}
		singular := emit.Singular(root.Name)
		recordID := emit.RecordID(singular)
		singularVar := strings.ToUpper(singular) + "_1"

		plural := root.Name
		a.goals = dropGoalPrefix(a.goals, plural+"_ext(")
		a.goals = dropGoalPrefix(a.goals, plural+"_result(")

		prologue = append(prologue,
			fmt.Sprintf("%s_ext(%s)", plural, selection.RootVar),
			fmt.Sprintf("%s_result(%s)", plural, selection.RootVar),
			fmt.Sprintf("%s_ext(%s, %s)", singular, selection.RootVar, recordID),
			fmt.Sprintf("%s = %s", singularVar, recordID),
		)
	}
	if len(prologue) == 0 {
		return
	}
	a.goals = append(prologue, a.goals...)
}

// dropGoalPrefix removes the first goal whose predicate call starts with
// prefix (e.g. "users_ext("), regardless of which variable is inside the
// parens, preserving the order of everything else. The match is on the
// predicate name alone because the root object goal carries the node's own
// child_var, not ROOT, so an exact-text match would never fire.
func dropGoalPrefix(goals []string, prefix string) []string {
	for i, g := range goals {
		if strings.HasPrefix(g, prefix) {
			return append(append([]string{}, goals[:i]...), goals[i+1:]...)
		}
	}
	return goals
}
