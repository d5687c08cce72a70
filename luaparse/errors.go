// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"nomlua.256lights.llc/pkg/internal/lualex"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// SyntaxMismatch indicates that the input does not match the grammar rule
	// being attempted.
	SyntaxMismatch ErrorKind = 1 + iota
	// MalformedLiteral indicates a recognized numeral or string literal
	// with an invalid value,
	// such as a decimal escape above 255 or a code point above 0x10FFFF.
	MalformedLiteral
	// IncompleteInput indicates that the input ended
	// before the grammar rule could be completed.
	IncompleteInput
)

// String returns the name of the kind.
func (kind ErrorKind) String() string {
	switch kind {
	case SyntaxMismatch:
		return "SyntaxMismatch"
	case MalformedLiteral:
		return "MalformedLiteral"
	case IncompleteInput:
		return "IncompleteInput"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(kind))
	}
}

// Sentinel errors matched by [*Error] values with [errors.Is].
var (
	ErrSyntax           = errors.New("syntax mismatch")
	ErrMalformedLiteral = errors.New("malformed literal")
	ErrIncomplete       = errors.New("incomplete input")
)

// Error is the error type returned by the parse functions in this package.
type Error struct {
	Kind ErrorKind
	// Offset is the byte offset into the parser's input
	// at which the failure was detected.
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Is reports whether target is the sentinel error for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrSyntax:
		return e.Kind == SyntaxMismatch
	case ErrMalformedLiteral:
		return e.Kind == MalformedLiteral
	case ErrIncomplete:
		return e.Kind == IncompleteInput
	default:
		return false
	}
}

// IsIncomplete reports whether err indicates that more input
// could allow the parse to succeed.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

const depthExceededMsg = "recursion depth exceeded"

// fail returns a failure at the start of b.
// A mismatch at the end of input is reported as incomplete input.
func (p *parser) fail(b []byte, kind ErrorKind, msg string) *Error {
	if kind == SyntaxMismatch && len(b) == 0 {
		kind = IncompleteInput
	}
	return &Error{
		Kind:   kind,
		Offset: p.offset(b),
		Msg:    msg + " near " + near(b),
	}
}

// expected returns a [SyntaxMismatch] failure at the start of b
// for a missing construct.
func (p *parser) expected(b []byte, what string) *Error {
	return p.fail(b, SyntaxMismatch, what+" expected")
}

// malformed returns a [MalformedLiteral] failure
// for the literal beginning at start.
func (p *parser) malformed(start []byte, format string, args ...any) *Error {
	return p.fail(start, MalformedLiteral, fmt.Sprintf(format, args...))
}

// incomplete returns an [IncompleteInput] failure
// for the construct beginning at start.
func (p *parser) incomplete(start []byte, msg string) *Error {
	return p.fail(start, IncompleteInput, msg)
}

// near formats the text at the start of b for an error message.
func near(b []byte) string {
	if len(b) == 0 {
		return "<eof>"
	}
	const maxNear = 16
	n := 0
	for n < len(b) && n < maxNear && !lualex.IsSpace(b[n]) {
		n++
	}
	if n == 0 {
		// Should not happen, since callers skip whitespace first.
		_, n = utf8.DecodeRune(b)
	}
	return strconv.Quote(string(b[:n]))
}

// furthest returns whichever of the two failures progressed further.
// On a tie, a malformed literal beats incomplete input,
// which beats a syntax mismatch.
func furthest(e1, e2 *Error) *Error {
	switch {
	case e1 == nil:
		return e2
	case e2 == nil:
		return e1
	case e2.Offset > e1.Offset:
		return e2
	case e2.Offset == e1.Offset && kindRank(e2.Kind) > kindRank(e1.Kind):
		return e2
	default:
		return e1
	}
}

func kindRank(kind ErrorKind) int {
	switch kind {
	case MalformedLiteral:
		return 2
	case IncompleteInput:
		return 1
	default:
		return 0
	}
}
