// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"nomlua.256lights.llc/pkg/ast"
	"nomlua.256lights.llc/pkg/internal/lualex"
)

// name parses an identifier that is not a reserved word.
func (p *parser) name(b []byte) (ast.Name, []byte, *Error) {
	if len(b) == 0 || !lualex.IsNameStart(b[0]) {
		return "", b, p.expected(b, "<name>")
	}
	n := 1
	for n < len(b) && lualex.IsNamePart(b[n]) {
		n++
	}
	s := string(b[:n])
	if lualex.IsKeyword(s) {
		return "", b, p.fail(b, SyntaxMismatch, "<name> expected (got reserved word '"+s+"')")
	}
	return ast.Name(s), b[n:], nil
}

// spacedName parses a name after any whitespace.
func (p *parser) spacedName(b []byte) (ast.Name, []byte, *Error) {
	return p.name(skip(b))
}

// label parses "::" Name "::".
func (p *parser) label(b []byte) (ast.Label, []byte, *Error) {
	rest, err := p.expect(b, "::")
	if err != nil {
		return "", b, err
	}
	name, rest, err := p.spacedName(rest)
	if err != nil {
		return "", b, err
	}
	rest, err = p.expect(rest, "::")
	if err != nil {
		return "", b, err
	}
	return ast.Label(name), rest, nil
}

// nameList parses Name {',' Name}.
// A trailing comma that is not followed by a name is left unconsumed
// so that a parameter list can continue with "...".
func (p *parser) nameList(b []byte) (*ast.NameList, []byte, *Error) {
	first, rest, err := p.spacedName(b)
	if err != nil {
		return nil, b, err
	}
	list := &ast.NameList{Names: []ast.Name{first}}
	for {
		afterComma, ok := token(rest, ",")
		if !ok {
			break
		}
		next, afterName, err := p.spacedName(afterComma)
		if err != nil {
			break
		}
		list.Names = append(list.Names, next)
		rest = afterName
	}
	return list, rest, nil
}
