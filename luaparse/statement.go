// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"nomlua.256lights.llc/pkg/ast"
)

// block parses {stat} [retstat].
// It stops at the end of input or at a token that terminates a block.
func (p *parser) block(b []byte) (*ast.Block, []byte, *Error) {
	if err := p.enter(b); err != nil {
		return nil, b, err
	}
	defer p.leave()

	block := new(ast.Block)
	rest := b
	for !isBlockFollow(rest) {
		if _, ok := token(rest, "return"); ok {
			ret, after, err := p.retStat(rest)
			if err != nil {
				return nil, b, err
			}
			block.Ret = ret
			rest = after
			break
		}
		stmt, after, err := p.statement(rest)
		if err != nil {
			return nil, b, err
		}
		block.Stmts = append(block.Stmts, stmt)
		rest = after
	}
	return block, rest, nil
}

// isBlockFollow reports whether b (after whitespace)
// is at the end of input or at a token that terminates a block.
func isBlockFollow(b []byte) bool {
	b = skip(b)
	if len(b) == 0 {
		return true
	}
	for _, kw := range [...]string{"end", "else", "elseif", "until"} {
		if _, ok := token(b, kw); ok {
			return true
		}
	}
	return false
}

// unsupportedStatements are the statement keywords this parser does not handle.
var unsupportedStatements = [...]string{"do", "while", "repeat", "if", "for"}

// statement parses a stat production.
//
//	stat ::=  ‘;’ | varlist ‘=’ explist | functioncall | label | break |
//		goto Name | function funcname funcbody |
//		local function Name funcbody | local namelist [‘=’ explist]
func (p *parser) statement(b []byte) (ast.Node, []byte, *Error) {
	b = skip(b)
	if rest, ok := token(b, ";"); ok {
		return ast.EmptyStatement{}, rest, nil
	}
	if _, ok := token(b, "::"); ok {
		l, rest, err := p.label(b)
		if err != nil {
			return nil, b, err
		}
		return l, rest, nil
	}
	if rest, ok := token(b, "break"); ok {
		return ast.Break{}, rest, nil
	}
	if rest, ok := token(b, "goto"); ok {
		name, rest, err := p.spacedName(rest)
		if err != nil {
			return nil, b, err
		}
		return &ast.Goto{Label: name}, rest, nil
	}
	if rest, ok := token(b, "function"); ok {
		return p.functionStatement(b, rest)
	}
	if rest, ok := token(b, "local"); ok {
		if afterFunction, ok := token(rest, "function"); ok {
			return p.localFunction(b, afterFunction)
		}
		return p.localStatement(b, rest)
	}
	for _, kw := range unsupportedStatements {
		if _, ok := token(b, kw); ok {
			return nil, b, p.fail(b, SyntaxMismatch, "unsupported statement '"+kw+"'")
		}
	}
	return p.exprStatement(b)
}

// functionStatement parses the rest of
// ‘function’ funcname funcbody.
// start is the beginning of the statement.
func (p *parser) functionStatement(start, b []byte) (ast.Node, []byte, *Error) {
	name, rest, err := p.functionName(b)
	if err != nil {
		return nil, start, err
	}
	body, rest, err := p.functionBody(rest)
	if err != nil {
		return nil, start, err
	}
	return &ast.NamedFunction{Name: name, Body: body}, rest, nil
}

// localFunction parses the rest of
// ‘local’ ‘function’ Name funcbody.
func (p *parser) localFunction(start, b []byte) (ast.Node, []byte, *Error) {
	name, rest, err := p.spacedName(b)
	if err != nil {
		return nil, start, err
	}
	body, rest, err := p.functionBody(rest)
	if err != nil {
		return nil, start, err
	}
	return &ast.LocalFunction{Name: name, Body: body}, rest, nil
}

// localStatement parses the rest of
// ‘local’ namelist [‘=’ explist].
func (p *parser) localStatement(start, b []byte) (ast.Node, []byte, *Error) {
	names, rest, err := p.nameList(b)
	if err != nil {
		return nil, start, err
	}
	stmt := &ast.Local{Names: names}
	if afterEq, ok := token(rest, "="); ok {
		stmt.Exps, rest, err = p.expList(afterEq)
		if err != nil {
			return nil, start, err
		}
	}
	return stmt, rest, nil
}

// exprStatement parses an assignment or a function call statement.
//
//	exprstat ::= functioncall | varlist ‘=’ explist
func (p *parser) exprStatement(b []byte) (ast.Node, []byte, *Error) {
	e, rest, err := p.suffixedExpression(b)
	if err != nil {
		return nil, b, err
	}
	_, isAssign := token(rest, "=")
	_, isList := token(rest, ",")
	if !isAssign && !isList {
		switch e.(type) {
		case *ast.FunctionCall, *ast.MethodCall:
			return e, rest, nil
		default:
			return nil, b, p.fail(skip(rest), SyntaxMismatch, "syntax error")
		}
	}

	if !isVar(e) {
		return nil, b, p.fail(b, SyntaxMismatch, "syntax error (cannot assign to expression)")
	}
	vars := &ast.VarList{Vars: []ast.Node{e}}
	for {
		afterComma, ok := token(rest, ",")
		if !ok {
			break
		}
		var v ast.Node
		v, rest, err = p.variable(afterComma)
		if err != nil {
			return nil, b, err
		}
		vars.Vars = append(vars.Vars, v)
	}
	rest, err = p.expect(rest, "=")
	if err != nil {
		return nil, b, err
	}
	exps, rest, err := p.expList(rest)
	if err != nil {
		return nil, b, err
	}
	return &ast.Assign{Vars: vars, Exps: exps}, rest, nil
}

// retStat parses ‘return’ [explist] [‘;’].
func (p *parser) retStat(b []byte) (*ast.RetStat, []byte, *Error) {
	rest, err := p.expect(b, "return")
	if err != nil {
		return nil, b, err
	}
	ret := new(ast.RetStat)
	if _, ok := token(rest, ";"); !ok && !isBlockFollow(rest) {
		ret.Exps, rest, err = p.expList(rest)
		if err != nil {
			return nil, b, err
		}
	}
	if after, ok := token(rest, ";"); ok {
		rest = after
	}
	return ret, rest, nil
}
