// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

// Package luaparse parses [Lua 5.3] source text into [ast] syntax trees.
//
// Each Parse function attempts one grammar rule at the start of its input.
// On success, it returns the parsed node and the unconsumed remainder of the input.
// On failure, it returns an [*Error] and the original input.
// Lexical rules ([ParseNumber], [ParseLiteralString], [ParseName])
// must begin exactly at the start of the input.
// All other rules skip leading whitespace and comments
// but leave trailing whitespace unconsumed.
//
// [Lua 5.3]: https://www.lua.org/manual/5.3/manual.html
package luaparse

import (
	"bytes"
	"io"
	"strings"

	"nomlua.256lights.llc/pkg/ast"
	"nomlua.256lights.llc/pkg/internal/lualex"
)

// depthLimit is the maximum recursion depth for syntax constructs.
const depthLimit = 200

// parser holds the state for a single top-level parse call.
// Grammar rules are methods that take the remaining input
// (always a suffix of src)
// and return the parsed value and the new remaining input.
type parser struct {
	src   []byte
	depth int
}

// run parses b with the given grammar rule.
func run[T any](b []byte, rule func(*parser, []byte) (T, []byte, *Error)) (T, []byte, error) {
	p := &parser{src: b}
	x, rest, err := rule(p, b)
	if err != nil {
		var zero T
		return zero, b, err
	}
	return x, rest, nil
}

func (p *parser) offset(b []byte) int {
	return len(p.src) - len(b)
}

// enter increments the recursion depth for a nested construct.
// Callers must call leave when enter returns nil.
func (p *parser) enter(b []byte) *Error {
	p.depth++
	if p.depth > depthLimit {
		p.depth--
		return p.fail(b, SyntaxMismatch, depthExceededMsg)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// skip returns b with leading whitespace and comments removed.
func skip(b []byte) []byte {
	return lualex.SkipSpace(b)
}

// token reports whether the token tok appears at the start of b
// after any whitespace and returns the input after the token.
// Keywords must not be followed by a name character,
// and punctuation must not be the start of a longer token.
func token(b []byte, tok string) (rest []byte, ok bool) {
	b = skip(b)
	if !bytes.HasPrefix(b, []byte(tok)) {
		return b, false
	}
	rest = b[len(tok):]
	if lualex.IsNameStart(tok[0]) {
		if len(rest) > 0 && lualex.IsNamePart(rest[0]) {
			return b, false
		}
		return rest, true
	}
	if follow := longerTokens[tok]; len(rest) > 0 && strings.IndexByte(follow, rest[0]) >= 0 {
		return b, false
	}
	return rest, true
}

// longerTokens maps a punctuation token
// to the bytes that would extend it into a different token.
// "[" followed by "[" or "=" opens a long string.
var longerTokens = map[string]string{
	"=":  "=",
	"<":  "<=",
	">":  ">=",
	"~":  "=",
	"/":  "/",
	".":  ".",
	"..": ".",
	":":  ":",
	"[":  "[=",
}

// expect is like token, but returns a failure if tok is not present.
func (p *parser) expect(b []byte, tok string) ([]byte, *Error) {
	rest, ok := token(b, tok)
	if !ok {
		return b, p.expected(skip(b), "'"+tok+"'")
	}
	return rest, nil
}

// alternative is a grammar rule that produces a node.
type alternative func(b []byte) (ast.Node, []byte, *Error)

// alt tries each alternative in order at the same position
// and returns the first success.
// If every alternative fails,
// alt returns the failure that progressed furthest into the input.
func (p *parser) alt(b []byte, alternatives ...alternative) (ast.Node, []byte, *Error) {
	var best *Error
	for _, f := range alternatives {
		n, rest, err := f(b)
		if err == nil {
			return n, rest, nil
		}
		best = furthest(best, err)
	}
	return nil, b, best
}

// ParseExpression parses a Lua expression (exp)
// at the start of b after any whitespace.
func ParseExpression(b []byte) (ast.Node, []byte, error) {
	return run(b, (*parser).expression)
}

// ParseNumber parses a numeral at the start of b.
// The result is an [ast.Integer] or an [ast.Float].
// A sign is never part of a numeral.
func ParseNumber(b []byte) (ast.Node, []byte, error) {
	return run(b, (*parser).number)
}

// ParseLiteralString parses a quoted or long bracket string at the start of b.
func ParseLiteralString(b []byte) (ast.String, []byte, error) {
	return run(b, (*parser).literalString)
}

// ParseName parses an identifier at the start of b.
// Reserved words are not names.
func ParseName(b []byte) (ast.Name, []byte, error) {
	return run(b, (*parser).name)
}

// ParseLabel parses a label ("::name::").
func ParseLabel(b []byte) (ast.Label, []byte, error) {
	return run(b, (*parser).label)
}

// ParseNameList parses one or more comma-separated names.
func ParseNameList(b []byte) (*ast.NameList, []byte, error) {
	return run(b, (*parser).nameList)
}

// ParseExpList parses one or more comma-separated expressions.
func ParseExpList(b []byte) (*ast.ExpList, []byte, error) {
	return run(b, (*parser).expList)
}

// ParseField parses a single table constructor field.
// The result is an [*ast.FieldAssign] or an [*ast.FieldSingle].
func ParseField(b []byte) (ast.Node, []byte, error) {
	return run(b, (*parser).field)
}

// ParseFieldList parses one or more table constructor fields
// separated by commas or semicolons,
// with an optional trailing separator.
func ParseFieldList(b []byte) (*ast.FieldList, []byte, error) {
	return run(b, (*parser).fieldList)
}

// ParseTableConstructor parses a table constructor ("{...}").
func ParseTableConstructor(b []byte) (*ast.TableConstructor, []byte, error) {
	return run(b, (*parser).tableConstructor)
}

// ParseVar parses an assignable expression:
// an [*ast.Var], [*ast.VarPrefixed], or [*ast.VarListAccess].
func ParseVar(b []byte) (ast.Node, []byte, error) {
	return run(b, (*parser).variable)
}

// ParseVarList parses one or more comma-separated assignable expressions.
func ParseVarList(b []byte) (*ast.VarList, []byte, error) {
	return run(b, (*parser).varList)
}

// ParsePrefixExp parses a prefix expression
// (a variable, a function call, or a parenthesized expression)
// wrapped in an [*ast.PrefixExp].
func ParsePrefixExp(b []byte) (*ast.PrefixExp, []byte, error) {
	return run(b, (*parser).prefixExp)
}

// ParseFunctionDef parses an anonymous function expression ("function funcbody").
func ParseFunctionDef(b []byte) (*ast.Function, []byte, error) {
	return run(b, (*parser).functionDef)
}

// ParseFunctionBody parses a parenthesized parameter list,
// a block, and the closing "end".
func ParseFunctionBody(b []byte) (*ast.FunctionBody, []byte, error) {
	return run(b, (*parser).functionBody)
}

// ParseParameterList parses a function's formal parameters
// (without the surrounding parentheses).
func ParseParameterList(b []byte) (*ast.ParameterList, []byte, error) {
	return run(b, (*parser).parameterList)
}

// ParseFunctionName parses the name in a function statement.
func ParseFunctionName(b []byte) (*ast.FunctionName, []byte, error) {
	return run(b, (*parser).functionName)
}

// ParseStatement parses a single statement.
// Control structures (do, while, repeat, if, for) are not supported.
func ParseStatement(b []byte) (ast.Node, []byte, error) {
	return run(b, (*parser).statement)
}

// ParseRetStat parses a return statement.
func ParseRetStat(b []byte) (*ast.RetStat, []byte, error) {
	return run(b, (*parser).retStat)
}

// ParseBlock parses a sequence of statements and an optional return statement.
// It stops before the end of input or a block terminator
// ("end", "else", "elseif", or "until").
func ParseBlock(b []byte) (*ast.Block, []byte, error) {
	return run(b, (*parser).block)
}

// ParseChunk parses b as a single expression
// surrounded by optional whitespace and comments.
// The expression must account for all of b.
// ParseChunk reports false if b is not a valid expression.
func ParseChunk(b []byte) (ast.Node, bool) {
	n, err := parseChunk(b)
	return n, err == nil
}

// ParseChunkString is like [ParseChunk] but takes a string.
func ParseChunkString(s string) (ast.Node, bool) {
	return ParseChunk([]byte(s))
}

// ParseChunkReader reads r to the end and parses the result with [ParseChunk].
// The returned error is either an I/O error or an [*Error].
func ParseChunkReader(r io.Reader) (ast.Node, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseChunk(b)
}

// ParseExpressionChunk is like [ParseChunk]
// but returns the parse failure.
func ParseExpressionChunk(b []byte) (ast.Node, error) {
	return parseChunk(b)
}

func parseChunk(b []byte) (ast.Node, error) {
	n, _, err := run(b, func(p *parser, b []byte) (ast.Node, []byte, *Error) {
		n, rest, err := p.expression(b)
		if err != nil {
			return nil, b, err
		}
		if rest = skip(rest); len(rest) > 0 {
			return nil, b, p.fail(rest, SyntaxMismatch, "unexpected symbol")
		}
		return n, rest, nil
	})
	return n, err
}

// ParseBlockChunk parses b as a sequence of statements.
// The block must account for all of b.
func ParseBlockChunk(b []byte) (*ast.Block, error) {
	block, _, err := run(b, func(p *parser, b []byte) (*ast.Block, []byte, *Error) {
		block, rest, err := p.block(b)
		if err != nil {
			return nil, b, err
		}
		if rest = skip(rest); len(rest) > 0 {
			return nil, b, p.fail(rest, SyntaxMismatch, "'<eof>' expected")
		}
		return block, rest, nil
	})
	return block, err
}
