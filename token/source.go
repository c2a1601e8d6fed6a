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

// Package token defines the lexical tokens shared by the GraphQL SDL and
// operation lexers, plus the source text they scan over.
package token

// Source wraps the raw bytes of a schema or query document together with
// the name used to identify it in diagnostics.
type Source struct {
	// Name identifies the source in error messages (e.g. "schema" or "query").
	Name string

	// Body is the raw document text.
	Body []byte
}

// NewSource builds a Source from a name and body.
func NewSource(name string, body string) *Source {
	return &Source{Name: name, Body: []byte(body)}
}

// Location is a 1-indexed line/column position within a Source.
type Location struct {
	Line   uint
	Column uint
}

// locationFromPos walks body up to pos counting newlines, producing a 1-indexed
// line/column pair. This is only used for diagnostics, never for compilation
// logic, so a linear scan per call is acceptable.
func locationFromPos(body []byte, pos uint) Location {
	line := uint(1)
	lineStart := uint(0)

	for i := uint(0); i < pos && i < uint(len(body)); i++ {
		if body[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return Location{Line: line, Column: pos - lineStart + 1}
}

// LocationOf returns the line/column of the given byte offset within the source.
func (s *Source) LocationOf(pos uint) Location {
	return locationFromPos(s.Body, pos)
}
