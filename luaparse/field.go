// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"nomlua.256lights.llc/pkg/ast"
)

// tableConstructor parses ‘{’ [fieldlist] ‘}’.
func (p *parser) tableConstructor(b []byte) (*ast.TableConstructor, []byte, *Error) {
	rest, err := p.expect(b, "{")
	if err != nil {
		return nil, b, err
	}
	if after, ok := token(rest, "}"); ok {
		return &ast.TableConstructor{}, after, nil
	}
	fields, rest, err := p.fieldList(rest)
	if err != nil {
		return nil, b, err
	}
	rest, err = p.expect(rest, "}")
	if err != nil {
		return nil, b, err
	}
	return &ast.TableConstructor{Fields: fields}, rest, nil
}

// fieldList parses field {fieldsep field} [fieldsep].
func (p *parser) fieldList(b []byte) (*ast.FieldList, []byte, *Error) {
	first, rest, err := p.field(b)
	if err != nil {
		return nil, b, err
	}
	list := &ast.FieldList{Fields: []ast.Node{first}}
	for {
		afterSep, ok := fieldSeparator(rest)
		if !ok {
			return list, rest, nil
		}
		rest = afterSep
		if s := skip(rest); len(s) == 0 || s[0] == '}' {
			// Trailing separator.
			return list, rest, nil
		}
		var next ast.Node
		next, rest, err = p.field(rest)
		if err != nil {
			return nil, b, err
		}
		list.Fields = append(list.Fields, next)
	}
}

// fieldSeparator parses ‘,’ or ‘;’.
func fieldSeparator(b []byte) ([]byte, bool) {
	if rest, ok := token(b, ","); ok {
		return rest, true
	}
	return token(b, ";")
}

// field parses one table field, trying each form in order:
//
//	field ::= ‘[’ exp ‘]’ ‘=’ exp | Name ‘=’ exp | exp
//
// The form is chosen by the leading tokens.
func (p *parser) field(b []byte) (ast.Node, []byte, *Error) {
	b = skip(b)
	if _, ok := token(b, "["); ok {
		return p.computedField(b)
	}
	if _, rest, err := p.name(b); err == nil {
		if _, ok := token(rest, "="); ok {
			return p.namedField(b)
		}
	}
	return p.positionalField(b)
}

func (p *parser) computedField(b []byte) (ast.Node, []byte, *Error) {
	rest, err := p.expect(b, "[")
	if err != nil {
		return nil, b, err
	}
	key, rest, err := p.expression(rest)
	if err != nil {
		return nil, b, err
	}
	if rest, err = p.expect(rest, "]"); err != nil {
		return nil, b, err
	}
	if rest, err = p.expect(rest, "="); err != nil {
		return nil, b, err
	}
	value, rest, err := p.expression(rest)
	if err != nil {
		return nil, b, err
	}
	return &ast.FieldAssign{Key: key, Value: value}, rest, nil
}

func (p *parser) namedField(b []byte) (ast.Node, []byte, *Error) {
	name, rest, err := p.spacedName(b)
	if err != nil {
		return nil, b, err
	}
	if rest, err = p.expect(rest, "="); err != nil {
		return nil, b, err
	}
	value, rest, err := p.expression(rest)
	if err != nil {
		return nil, b, err
	}
	return &ast.FieldAssign{Key: name, Value: value}, rest, nil
}

func (p *parser) positionalField(b []byte) (ast.Node, []byte, *Error) {
	value, rest, err := p.expression(b)
	if err != nil {
		return nil, b, err
	}
	return &ast.FieldSingle{Value: value}, rest, nil
}
