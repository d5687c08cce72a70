// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"nomlua.256lights.llc/pkg/ast"
)

// functionDef parses ‘function’ funcbody.
func (p *parser) functionDef(b []byte) (*ast.Function, []byte, *Error) {
	rest, err := p.expect(b, "function")
	if err != nil {
		return nil, b, err
	}
	body, rest, err := p.functionBody(rest)
	if err != nil {
		return nil, b, err
	}
	return &ast.Function{Body: body}, rest, nil
}

// functionBody parses ‘(’ [parlist] ‘)’ block ‘end’.
func (p *parser) functionBody(b []byte) (*ast.FunctionBody, []byte, *Error) {
	rest, err := p.expect(b, "(")
	if err != nil {
		return nil, b, err
	}
	body := new(ast.FunctionBody)
	if after, ok := token(rest, ")"); ok {
		rest = after
	} else {
		body.Params, rest, err = p.parameterList(rest)
		if err != nil {
			return nil, b, err
		}
		if rest, err = p.expect(rest, ")"); err != nil {
			return nil, b, err
		}
	}
	body.Block, rest, err = p.block(rest)
	if err != nil {
		return nil, b, err
	}
	if rest, err = p.expect(rest, "end"); err != nil {
		return nil, b, err
	}
	return body, rest, nil
}

// parameterList parses namelist [‘,’ ‘...’] | ‘...’.
func (p *parser) parameterList(b []byte) (*ast.ParameterList, []byte, *Error) {
	if rest, ok := token(b, "..."); ok {
		return &ast.ParameterList{VarArg: true}, rest, nil
	}
	names, rest, err := p.nameList(b)
	if err != nil {
		return nil, b, p.expected(skip(b), "<name> or '...'")
	}
	params := &ast.ParameterList{Names: names}
	if afterComma, ok := token(rest, ","); ok {
		after, ok := token(afterComma, "...")
		if !ok {
			return nil, b, p.expected(skip(afterComma), "<name> or '...'")
		}
		params.VarArg = true
		rest = after
	}
	return params, rest, nil
}

// functionName parses Name {‘.’ Name} [‘:’ Name].
func (p *parser) functionName(b []byte) (*ast.FunctionName, []byte, *Error) {
	base, rest, err := p.spacedName(b)
	if err != nil {
		return nil, b, err
	}
	fn := &ast.FunctionName{Base: base}
	for {
		afterDot, ok := token(rest, ".")
		if !ok {
			break
		}
		var field ast.Name
		field, rest, err = p.spacedName(afterDot)
		if err != nil {
			return nil, b, err
		}
		fn.Fields = append(fn.Fields, field)
	}
	if afterColon, ok := token(rest, ":"); ok {
		fn.Method, rest, err = p.spacedName(afterColon)
		if err != nil {
			return nil, b, err
		}
	}
	return fn, rest, nil
}
