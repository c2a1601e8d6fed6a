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

// Package errs defines the typed error categories surfaced by the compiler
//. Every failure aborts the compilation; no partial output is ever
// returned, and the compiler itself never logs.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a CompileError.
type Kind uint8

// Enumeration of Kind.
const (
	// KindSchemaParse indicates the SDL could not be parsed or contains an
	// unsupported construct. Lexing and syntax errors in query text are
	// reported under this kind as well.
	KindSchemaParse Kind = iota
	// KindFragmentCycle indicates fragments reference each other cyclically.
	KindFragmentCycle
	// KindFragmentUndefined indicates a spread names an undefined fragment.
	KindFragmentUndefined
	// KindUnsupportedArgument indicates an argument value isn't a supported literal.
	KindUnsupportedArgument
	// KindNoOperation indicates the query document has no operation.
	KindNoOperation
)

func (k Kind) String() string {
	switch k {
	case KindSchemaParse:
		return "SchemaParseError"
	case KindFragmentCycle:
		return "QueryParseError.FragmentCycle"
	case KindFragmentUndefined:
		return "QueryParseError.FragmentUndefined"
	case KindUnsupportedArgument:
		return "QueryParseError.UnsupportedArgument"
	case KindNoOperation:
		return "QueryParseError.NoOperation"
	}
	return "Error"
}

// CompileError is the single error type returned by every stage of the
// compiler. Node names the offending selection or type name where available.
type CompileError struct {
	Kind    Kind
	Node    string
	Message string
	cause   error
}

// Error implements error.
func (e *CompileError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s: %s (at %q)", e.Kind, e.Message, e.Node)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Cause implements the github.com/pkg/errors causer interface, so errors.Cause
// can reach the underlying lexer/parser failure that triggered this
// CompileError. CompileError has no Unwrap method, so errors.Unwrap returns
// nil for it.
func (e *CompileError) Cause() error {
	return e.cause
}

// New builds a CompileError not wrapping any prior error.
func New(kind Kind, node string, message string) *CompileError {
	return &CompileError{Kind: kind, Node: node, Message: message}
}

// Wrap builds a CompileError that wraps an underlying error with a stack trace.
func Wrap(kind Kind, node string, err error, message string) *CompileError {
	return &CompileError{Kind: kind, Node: node, Message: message, cause: errors.Wrap(err, message)}
}
