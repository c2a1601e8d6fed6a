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

// Package querybridge compiles a GraphQL schema and query into a Datalog
// program whose `ans/k` predicate enumerates the query's flattened
// leaf-scalar results, optionally applying a demand (magic-set)
// transformation.
package querybridge

import (
	"fmt"
	"strings"

	"github.com/abishekaditya/QueryBridge/adorn"
	"github.com/abishekaditya/QueryBridge/assemble"
	"github.com/abishekaditya/QueryBridge/emit"
	"github.com/abishekaditya/QueryBridge/errs"
	"github.com/abishekaditya/QueryBridge/parser"
	"github.com/abishekaditya/QueryBridge/schema"
	"github.com/abishekaditya/QueryBridge/selection"
)

// Compile is the sole entry point: a pure function from
// (schema_text, query_text, apply_demand) to the compiled Datalog text, or
// a *errs.CompileError describing why compilation failed. No partial output
// is ever returned.
func Compile(schemaText, queryText string, applyDemand bool) (string, error) {
	schemaDoc, err := parser.ParseSchema(schemaText)
	if err != nil {
		if _, ok := err.(*errs.CompileError); !ok {
			err = errs.Wrap(errs.KindSchemaParse, "", err, "failed to lex schema")
		}
		return "", err
	}
	// The type list is never consulted by later stages (whether a selection
	// is scalar depends only on it having children), but parsing it still
	// surfaces a malformed schema before any query work.
	_ = schema.Build(schemaDoc)

	roots, err := parser.ParseQuery(queryText)
	if err != nil {
		if _, ok := err.(*errs.CompileError); !ok {
			err = errs.Wrap(errs.KindSchemaParse, "", err, "failed to lex query")
		}
		return "", err
	}

	var infos map[*selection.Field]*adorn.Info
	var demand *adorn.Output
	if applyDemand {
		infos, demand = adorn.Analyse(roots)
	}

	sections := []string{
		header(roots, applyDemand),
	}
	if applyDemand && demand != nil && (len(demand.Facts) > 0 || len(demand.Rules) > 0) {
		sections = append(sections, demandSection(demand))
	}
	sections = append(sections, queryFieldSection(roots, infos))
	sections = append(sections, answerSection(roots))
	if summary := demandSummary(roots, infos); summary != "" {
		sections = append(sections, summary)
	}

	return strings.Join(sections, "\n\n"), nil
}

func header(roots []*selection.Field, applyDemand bool) string {
	names := make([]string, len(roots))
	for i, r := range roots {
		names[i] = r.Name
	}
	mode := "disabled"
	if applyDemand {
		mode = "enabled"
	}
	return fmt.Sprintf("%% Query fields: %s\n%% Demand transformation: %s", strings.Join(names, ", "), mode)
}

func demandSection(demand *adorn.Output) string {
	lines := []string{"% Demand transformation facts and rules"}
	lines = append(lines, demand.Facts...)
	lines = append(lines, demand.Rules...)
	return strings.Join(lines, "\n")
}

func queryFieldSection(roots []*selection.Field, infos map[*selection.Field]*adorn.Info) string {
	lines := []string{"% Query field rules"}
	for _, root := range roots {
		lines = append(lines, fmt.Sprintf("%% %s", root.Name))
		lines = append(lines, emit.FieldRules(root, infos)...)
	}
	return strings.Join(lines, "\n")
}

func answerSection(roots []*selection.Field) string {
	result := assemble.Build(roots)
	return strings.Join([]string{
		"% Final answer predicate combining all query results",
		result.Rule(),
	}, "\n")
}

// demandSummary renders the closing summary block: one line per root field
// that triggered demand, in root order, naming the applied reason.
func demandSummary(roots []*selection.Field, infos map[*selection.Field]*adorn.Info) string {
	if infos == nil {
		return ""
	}
	lines := []string{"% Demand transformation summary"}
	found := false
	for _, root := range roots {
		info, ok := infos[root]
		if !ok || !info.Applied {
			continue
		}
		found = true
		lines = append(lines, fmt.Sprintf("%% %s: demand applied because %s", root.Name, info.Reason))
	}
	if !found {
		return ""
	}
	return strings.Join(lines, "\n")
}
