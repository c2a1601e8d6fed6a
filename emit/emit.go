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

// Package emit implements the rule emitter: for every selection
// node it produces a `<path>_result(...)` rule joining the external
// predicate with any argument filters and, when demand applies, a magic
// predicate.
package emit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abishekaditya/QueryBridge/adorn"
	"github.com/abishekaditya/QueryBridge/selection"
)

// lookupArgNames holds the argument names that mark a collection as an
// exact-match lookup rather than a filtered range scan.
var lookupArgNames = map[string]bool{
	"id": true, "name": true, "key": true, "slug": true, "code": true,
}

// numericLiteral matches the decimal forms the lexer's NumberValue
// production can produce: an optional sign, digits, an
// optional fractional part.
var numericLiteral = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsFilteredCollection reports whether n is a non-scalar, argument-bearing
// node whose arguments are range/boolean filters rather than an exact-match
// lookup. The assembler uses the same test to decide whether to splice a
// record-iteration prologue.
func IsFilteredCollection(n *selection.Field) bool {
	if n.IsScalar() || len(n.Arguments) == 0 {
		return false
	}
	hasRangeOrBool := false
	hasLookupName := false
	for _, a := range n.Arguments {
		if lookupArgNames[a.Name] {
			hasLookupName = true
		}
		if isRangeArgName(a.Name) || isBooleanLiteral(a.Literal) {
			hasRangeOrBool = true
		}
	}
	return hasRangeOrBool && !hasLookupName
}

// Singular strips a trailing "s" from a plural field name.
func Singular(name string) string {
	if strings.HasSuffix(name, "s") {
		return name[:len(name)-1]
	}
	return name
}

// RecordID derives the per-record binding variable minted for a filtered
// collection's singular identity, e.g. "user" -> "USER_ID".
func RecordID(singular string) string {
	return strings.ToUpper(singular) + "_ID"
}

func isRangeArgName(name string) bool {
	return strings.HasPrefix(name, "min") || strings.HasPrefix(name, "max")
}

func isBooleanLiteral(v string) bool {
	return v == "true" || v == "false"
}

// FieldRules emits the `<path>_result` rule for root and every descendant,
// in pre-order: a node's own rule precedes its children's. infos is only
// ever consulted for root itself: a nested field's rule never carries a
// magic-predicate prefix. For a nested scalar leaf no demand rule derives its
// magic predicate (the propagation rules skip scalar children, and its own
// demand rule depends on an `m_<name>_ext` predicate nothing derives), so a
// prefix there would make the rule unsatisfiable.
func FieldRules(root *selection.Field, infos map[*selection.Field]*adorn.Info) []string {
	e := &emitter{infos: infos}
	var out []string
	e.walk(root, root.Name, &out, true)
	return out
}

type emitter struct {
	infos map[*selection.Field]*adorn.Info
}

func (e *emitter) walk(n *selection.Field, path string, out *[]string, isRoot bool) {
	*out = append(*out, e.rule(n, path, isRoot))
	for _, c := range n.Children {
		e.walk(c, path+"_"+c.Name, out, false)
	}
}

func (e *emitter) rule(n *selection.Field, path string, isRoot bool) string {
	head := headSignature(n, path)
	body := e.bodyGoals(n, isRoot)
	return fmt.Sprintf("%s :- %s.", head, strings.Join(body, ", "))
}

// headSignature picks the rule head shape: a scalar leaf
// carries both binding variables, an object/container only its own.
func headSignature(n *selection.Field, path string) string {
	if n.IsScalar() {
		return fmt.Sprintf("%s_result(%s, %s)", path, n.ParentVar, n.ChildVar)
	}
	return fmt.Sprintf("%s_result(%s)", path, n.ParentVar)
}

// bodyGoals builds the ordered goal sequence for n:
// the magic predicate prefix, the base external predicate (with the
// filtered-collection record-iteration goal when it applies), then one or
// two goals per argument filter. Filtered-collection rebinding is threaded
// through a local variable rather than mutating n.ParentVar, so the
// selection tree itself stays immutable.
func (e *emitter) bodyGoals(n *selection.Field, isRoot bool) []string {
	var goals []string

	if isRoot {
		if info := e.infos[n]; info != nil && info.Applied {
			goals = append(goals, fmt.Sprintf("%s(%s)", info.MagicPred, n.ParentVar))
		}
	}

	effectiveParent := n.ParentVar
	if n.IsScalar() {
		goals = append(goals, fmt.Sprintf("%s_ext(%s, %s)", n.Name, n.ParentVar, n.ChildVar))
	} else {
		goals = append(goals, fmt.Sprintf("%s_ext(%s)", n.Name, n.ParentVar))
		if IsFilteredCollection(n) {
			singular := Singular(n.Name)
			recordID := RecordID(singular)
			goals = append(goals, fmt.Sprintf("%s_ext(%s, %s)", singular, n.ParentVar, recordID))
			effectiveParent = recordID
		}
	}

	for _, arg := range n.Arguments {
		goals = append(goals, argumentFilterGoals(arg, effectiveParent)...)
	}
	return goals
}

// argumentFilterGoals chooses the filter goals for one argument by its
// kind: range bound, boolean equality, or exact match.
func argumentFilterGoals(arg selection.Argument, parentVar string) []string {
	switch {
	case strings.HasPrefix(arg.Name, "min"):
		return rangeGoals(arg, parentVar, "@>=")
	case strings.HasPrefix(arg.Name, "max"):
		return rangeGoals(arg, parentVar, "@=<")
	case isBooleanLiteral(arg.Literal):
		return []string{fmt.Sprintf("%s_ext(%s, %s)", arg.Name, parentVar, arg.Literal)}
	default:
		return []string{fmt.Sprintf("%s_ext(%s, %s)", arg.Name, parentVar, renderExactValue(arg.Literal))}
	}
}

// rangeGoals builds the two goals a "min*"/"max*" argument contributes: a
// lookup of the compared field into a fresh variable, and the comparison
// itself. The prefix ("min"/"max") is stripped before lower-casing to
// recover the compared field's own name.
func rangeGoals(arg selection.Argument, parentVar string, op string) []string {
	field := strings.ToLower(arg.Name[len("min"):])
	fieldVar := strings.ToUpper(field) + "_" + parentVar
	return []string{
		fmt.Sprintf("%s_ext(%s, %s)", field, parentVar, fieldVar),
		fmt.Sprintf("%s %s %s", fieldVar, op, arg.Literal),
	}
}

// renderExactValue applies the quoting rule for exact-match filter
// values: numeric literals are emitted verbatim, everything else quoted.
func renderExactValue(v string) string {
	if numericLiteral.MatchString(v) {
		return v
	}
	return fmt.Sprintf("%q", v)
}
