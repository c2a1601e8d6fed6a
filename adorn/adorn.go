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

// Package adorn implements the adornment analyser / demand (magic-set) engine
//. It walks the selection tree computing, per node, whether
// demand applies and the seed facts, magic rules, and propagation rules that
// implement it.
package adorn

import (
	"fmt"
	"strings"

	"github.com/abishekaditya/QueryBridge/selection"
)

// Info is the per-node DemandInfo record.
type Info struct {
	Applied    bool
	Reason     string
	Adornment  string
	DemandPred string
	MagicPred  string
}

// Output accumulates the demand facts and rules contributed across the whole
// selection tree, in pre-order emission order. Facts and rules are
// deduplicated on their rendered text; the "%" comment lines that head them
// are not, so a comment can repeat when its rule differs per root.
type Output struct {
	Facts []string
	Rules []string
}

// analyser carries the shared de-duplication set across one Analyse call. It
// is discarded when Analyse returns: no state survives between
// compilations.
type analyser struct {
	seen  map[string]bool
	out   Output
	infos map[*selection.Field]*Info
}

// Analyse walks root, pre-order, computing an Info for every node and
// appending the demand facts/rules it triggers to the returned Output. Nodes
// for which demand never applies (top-level, no arguments) are still
// present in the returned map with Applied == false.
func Analyse(roots []*selection.Field) (map[*selection.Field]*Info, *Output) {
	a := &analyser{
		seen:  make(map[string]bool),
		infos: make(map[*selection.Field]*Info),
	}
	for _, root := range roots {
		a.walk(root, 0)
	}
	return a.infos, &a.out
}

// quoteLiteral renders a bound argument value for use inside a demand or
// magic predicate call. The bound-argument sequence is already a list of
// stringified literals by the time it reaches this stage, and every one
// of them is rendered quoted here.
func quoteLiteral(v string) string {
	return fmt.Sprintf("%q", v)
}

func (a *analyser) walk(n *selection.Field, depth int) *Info {
	info := &Info{}
	a.infos[n] = info

	// Top-level nodes without arguments never trigger demand at their own
	// level; their non-scalar children still can.
	if len(n.Arguments) == 0 && depth == 0 {
		a.walkChildren(n, info, depth)
		return info
	}

	adornment := n.BoundMask()
	info.Adornment = adornment
	info.DemandPred = fmt.Sprintf("demand_%s_%s", n.Name, adornment)
	info.MagicPred = fmt.Sprintf("m_%s_%s", n.Name, adornment)

	switch {
	case len(n.Arguments) > 0:
		info.Applied = true
		info.Reason = fmt.Sprintf("it has %d bound argument(s)", len(n.Arguments))
	case depth > 0:
		info.Applied = true
		info.Reason = fmt.Sprintf("it's a nested field at depth %d", depth)
	default:
		return info
	}

	if depth == 0 && len(n.Arguments) > 0 {
		a.emitSeed(n, info)
	}

	var magicRule string
	if len(n.Arguments) > 0 {
		args := quoteJoin(n.BoundVals())
		magicRule = fmt.Sprintf("%s(%s) :- %s(%s).", info.MagicPred, n.ParentVar, info.DemandPred, args)
	} else {
		if depth > 0 {
			parentField := n.Name + "_ext"
			demandRule := fmt.Sprintf("%s(%s) :- m_%s(%s).", info.DemandPred, n.ParentVar, parentField, n.ParentVar)
			if !a.seen[demandRule] {
				a.out.Rules = append(a.out.Rules, fmt.Sprintf("%% Propagate demand to %s fields", n.Name))
				a.out.Rules = append(a.out.Rules, demandRule)
				a.seen[demandRule] = true
			}
		}
		magicRule = fmt.Sprintf("%s(%s) :- %s(%s).", info.MagicPred, n.ParentVar, info.DemandPred, n.ParentVar)
	}

	if !a.seen[magicRule] {
		a.out.Rules = append(a.out.Rules, fmt.Sprintf("%% Magic predicate for %s", n.Name))
		a.out.Rules = append(a.out.Rules, magicRule)
		a.seen[magicRule] = true
	}

	a.walkChildren(n, info, depth)
	return info
}

// walkChildren recurses into every child (so deeper fields still get their
// own Info, even under a parent that doesn't itself carry demand) but only
// emits a propagation rule linking a child back to n when n has a magic
// predicate of its own for that rule to call.
func (a *analyser) walkChildren(n *selection.Field, info *Info, depth int) {
	for i, child := range n.Children {
		childInfo := a.walk(child, depth+1)
		if !info.Applied || !childInfo.Applied {
			continue
		}
		if i == 0 {
			a.out.Rules = append(a.out.Rules, fmt.Sprintf("%% Propagate demand from %s to its fields", n.Name))
		}
		if child.IsScalar() {
			continue
		}
		propagate := fmt.Sprintf("%s(%s) :- %s(%s), %s_ext(%s, %s).",
			childInfo.DemandPred, child.ParentVar, info.MagicPred, n.ParentVar, n.Name, n.ParentVar, child.ParentVar)
		if !a.seen[propagate] {
			a.out.Rules = append(a.out.Rules, propagate)
			a.seen[propagate] = true
		}
	}
}

func (a *analyser) emitSeed(n *selection.Field, info *Info) {
	seed := fmt.Sprintf("%s(%s).", info.DemandPred, quoteJoin(n.BoundVals()))
	if a.seen[seed] {
		return
	}
	a.out.Facts = append(a.out.Facts, fmt.Sprintf("%% Seed demand with bound arguments for %s", n.Name))
	a.out.Facts = append(a.out.Facts, seed)
	a.seen[seed] = true
}

func quoteJoin(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = quoteLiteral(v)
	}
	return strings.Join(quoted, ", ")
}
