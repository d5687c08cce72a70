// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"nomlua.256lights.llc/pkg/ast"
	"nomlua.256lights.llc/pkg/internal/lualex"
)

// prefixExp parses a prefixexp production
// and wraps it in an [*ast.PrefixExp].
func (p *parser) prefixExp(b []byte) (*ast.PrefixExp, []byte, *Error) {
	e, rest, err := p.suffixedExpression(b)
	if err != nil {
		return nil, b, err
	}
	return &ast.PrefixExp{X: e}, rest, nil
}

// suffixedExpression parses a primary expression
// followed by any number of index, field, and call suffixes.
// Each suffix wraps the expression so far in an [*ast.PrefixExp].
//
//	prefixexp ::= var | functioncall | ‘(’ exp ‘)’
//	functioncall ::=  prefixexp args | prefixexp ‘:’ Name args
//	var ::=  Name | prefixexp ‘[’ exp ‘]’ | prefixexp ‘.’ Name
func (p *parser) suffixedExpression(b []byte) (ast.Node, []byte, *Error) {
	e, rest, err := p.primaryExpression(b)
	if err != nil {
		return nil, b, err
	}
	for {
		if after, ok := token(rest, "."); ok {
			name, after, err := p.spacedName(after)
			if err != nil {
				return nil, b, err
			}
			e = &ast.VarListAccess{Prefix: &ast.PrefixExp{X: e}, Name: name}
			rest = after
			continue
		}
		if after, ok := token(rest, "["); ok {
			key, after, err := p.expression(after)
			if err != nil {
				return nil, b, err
			}
			after, err = p.expect(after, "]")
			if err != nil {
				return nil, b, err
			}
			e = &ast.VarPrefixed{Prefix: &ast.PrefixExp{X: e}, Key: key}
			rest = after
			continue
		}
		if after, ok := token(rest, ":"); ok {
			method, after, err := p.spacedName(after)
			if err != nil {
				return nil, b, err
			}
			args, after, found, err := p.args(after)
			if err != nil {
				return nil, b, err
			}
			if !found {
				return nil, b, p.expected(skip(after), "function arguments")
			}
			e = &ast.MethodCall{Prefix: &ast.PrefixExp{X: e}, Method: method, Args: args}
			rest = after
			continue
		}
		args, after, found, err := p.args(rest)
		if err != nil {
			return nil, b, err
		}
		if !found {
			return e, rest, nil
		}
		e = &ast.FunctionCall{Prefix: &ast.PrefixExp{X: e}, Args: args}
		rest = after
	}
}

// primaryExpression parses a name or a parenthesized expression.
//
//	primaryexp ::= Name | ‘(’ exp ‘)’
func (p *parser) primaryExpression(b []byte) (ast.Node, []byte, *Error) {
	b = skip(b)
	if rest, ok := token(b, "("); ok {
		x, rest, err := p.expression(rest)
		if err != nil {
			return nil, b, err
		}
		rest, err = p.expect(rest, ")")
		if err != nil {
			return nil, b, err
		}
		return &ast.Paren{X: x}, rest, nil
	}
	name, rest, err := p.name(b)
	if err != nil {
		return nil, b, err
	}
	return &ast.Var{Name: name}, rest, nil
}

// args parses the arguments of a function call.
// found is false if b does not begin with function arguments.
// A call with an empty argument list has nil args.
//
//	args ::=  ‘(’ [explist] ‘)’ | tableconstructor | LiteralString
func (p *parser) args(b []byte) (args *ast.ExpList, rest []byte, found bool, err *Error) {
	b = skip(b)
	if len(b) == 0 {
		return nil, b, false, nil
	}
	switch c := b[0]; {
	case c == '(':
		rest = b[1:]
		if after, ok := token(rest, ")"); ok {
			return nil, after, true, nil
		}
		args, rest, err = p.expList(rest)
		if err != nil {
			return nil, b, true, err
		}
		rest, err = p.expect(rest, ")")
		if err != nil {
			return nil, b, true, err
		}
		return args, rest, true, nil
	case c == '{':
		t, rest, err := p.tableConstructor(b)
		if err != nil {
			return nil, b, true, err
		}
		return &ast.ExpList{Exps: []ast.Node{t}}, rest, true, nil
	case c == '"' || c == '\'':
		s, rest, err := p.literalString(b)
		if err != nil {
			return nil, b, true, err
		}
		return &ast.ExpList{Exps: []ast.Node{s}}, rest, true, nil
	default:
		if _, _, ok := lualex.LongBracketOpen(b); !ok {
			return nil, b, false, nil
		}
		s, rest, err := p.literalString(b)
		if err != nil {
			return nil, b, true, err
		}
		return &ast.ExpList{Exps: []ast.Node{s}}, rest, true, nil
	}
}

// variable parses a var production.
// Single-step forms produce the shapes
// Var(a), VarPrefixed(PrefixExp(Var(a)), k), and VarListAccess(PrefixExp(Var(a)), n).
func (p *parser) variable(b []byte) (ast.Node, []byte, *Error) {
	e, rest, err := p.suffixedExpression(b)
	if err != nil {
		return nil, b, err
	}
	if !isVar(e) {
		return nil, b, p.fail(skip(b), SyntaxMismatch, "variable expected")
	}
	return e, rest, nil
}

// isVar reports whether e can be the target of an assignment.
func isVar(e ast.Node) bool {
	switch e.(type) {
	case *ast.Var, *ast.VarPrefixed, *ast.VarListAccess:
		return true
	default:
		return false
	}
}

// varList parses var {',' var}.
func (p *parser) varList(b []byte) (*ast.VarList, []byte, *Error) {
	first, rest, err := p.variable(b)
	if err != nil {
		return nil, b, err
	}
	list := &ast.VarList{Vars: []ast.Node{first}}
	for {
		afterComma, ok := token(rest, ",")
		if !ok {
			return list, rest, nil
		}
		var next ast.Node
		next, rest, err = p.variable(afterComma)
		if err != nil {
			return nil, b, err
		}
		list.Vars = append(list.Vars, next)
	}
}
