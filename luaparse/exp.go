// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"nomlua.256lights.llc/pkg/ast"
)

// binaryOperatorTokens lists the binary operator tokens.
// A token that is a prefix of another appears after it.
var binaryOperatorTokens = []struct {
	token string
	op    ast.BinaryOperator
}{
	{"or", ast.Or},
	{"and", ast.And},
	{"<=", ast.Le},
	{">=", ast.Ge},
	{"==", ast.Eq},
	{"~=", ast.Ne},
	{"<<", ast.Lsh},
	{">>", ast.Rsh},
	{"//", ast.FDiv},
	{"..", ast.Concat},
	{"<", ast.Lt},
	{">", ast.Gt},
	{"~", ast.BitXor},
	{"|", ast.BitOr},
	{"&", ast.BitAnd},
	{"+", ast.Add},
	{"-", ast.Sub},
	{"*", ast.Mul},
	{"/", ast.Div},
	{"%", ast.Mod},
	{"^", ast.Exp},
}

// operatorPrecedence is the left and right binding power of each binary operator.
// An operator whose right power is lower than its left is right associative.
var operatorPrecedence = [...]struct {
	left  uint8
	right uint8
}{
	ast.Or:     {1, 1},
	ast.And:    {2, 2},
	ast.Lt:     {3, 3},
	ast.Le:     {3, 3},
	ast.Gt:     {3, 3},
	ast.Ge:     {3, 3},
	ast.Eq:     {3, 3},
	ast.Ne:     {3, 3},
	ast.BitOr:  {4, 4},
	ast.BitXor: {5, 5},
	ast.BitAnd: {6, 6},
	ast.Lsh:    {7, 7},
	ast.Rsh:    {7, 7},
	ast.Concat: {9, 8}, // right associative
	ast.Add:    {10, 10},
	ast.Sub:    {10, 10},
	ast.Mul:    {11, 11},
	ast.Div:    {11, 11},
	ast.FDiv:   {11, 11},
	ast.Mod:    {11, 11},
	ast.Exp:    {14, 13}, // right associative
}

// unaryPrecedence is the binding power of unary operators.
// Only exponentiation binds tighter.
const unaryPrecedence = 12

var unaryOperatorTokens = []struct {
	token string
	op    ast.UnaryOperator
}{
	{"not", ast.Not},
	{"#", ast.Len},
	{"-", ast.UMin},
	{"~", ast.BinNot},
}

// binaryOperator reports the binary operator at the start of b (after whitespace)
// and returns the input after it.
func binaryOperator(b []byte) (ast.BinaryOperator, []byte, bool) {
	for _, tok := range binaryOperatorTokens {
		if rest, ok := token(b, tok.token); ok {
			return tok.op, rest, true
		}
	}
	return 0, b, false
}

// unaryOperator reports the unary operator at the start of b (after whitespace)
// and returns the input after it.
func unaryOperator(b []byte) (ast.UnaryOperator, []byte, bool) {
	for _, tok := range unaryOperatorTokens {
		if rest, ok := token(b, tok.token); ok {
			return tok.op, rest, true
		}
	}
	return 0, b, false
}

// expression parses an exp production.
func (p *parser) expression(b []byte) (ast.Node, []byte, *Error) {
	return p.subExpression(b, 0)
}

// subExpression parses an operand
// followed by any binary operators whose precedence is higher than limit,
// each with its right operand,
// folding them into a single tree.
//
//	exp ::= unop exp | simpleexp {binop exp}
func (p *parser) subExpression(b []byte, limit int) (ast.Node, []byte, *Error) {
	if err := p.enter(b); err != nil {
		return nil, b, err
	}
	defer p.leave()

	var e ast.Node
	var rest []byte
	if uop, afterOp, ok := unaryOperator(b); ok {
		x, afterOperand, err := p.subExpression(afterOp, unaryPrecedence)
		if err != nil {
			return nil, b, err
		}
		e = &ast.UnOp{Op: uop, X: x}
		rest = afterOperand
	} else {
		var err *Error
		e, rest, err = p.simpleExpression(b)
		if err != nil {
			return nil, b, err
		}
	}

	// Expand while operators have priorities higher than limit.
	for {
		op, afterOp, ok := binaryOperator(rest)
		if !ok || int(operatorPrecedence[op].left) <= limit {
			break
		}
		right, afterRight, err := p.subExpression(afterOp, int(operatorPrecedence[op].right))
		if err != nil {
			return nil, b, err
		}
		e = &ast.BinOp{Op: op, Left: e, Right: right}
		rest = afterRight
	}
	return e, rest, nil
}

// simpleExpression parses an operand of an operator expression.
//
//	simpleexp ::= Numeral | nil | false | true | '...' | LiteralString |
//		tableconstructor | functiondef | prefixexp
func (p *parser) simpleExpression(b []byte) (ast.Node, []byte, *Error) {
	b = skip(b)
	e, rest, err := p.alt(b,
		p.number,
		p.keywordLiteral,
		func(b []byte) (ast.Node, []byte, *Error) {
			s, rest, err := p.literalString(b)
			if err != nil {
				return nil, b, err
			}
			return s, rest, nil
		},
		func(b []byte) (ast.Node, []byte, *Error) {
			t, rest, err := p.tableConstructor(b)
			if err != nil {
				return nil, b, err
			}
			return t, rest, nil
		},
		func(b []byte) (ast.Node, []byte, *Error) {
			f, rest, err := p.functionDef(b)
			if err != nil {
				return nil, b, err
			}
			return f, rest, nil
		},
		func(b []byte) (ast.Node, []byte, *Error) {
			pe, rest, err := p.prefixExp(b)
			if err != nil {
				return nil, b, err
			}
			return pe, rest, nil
		},
	)
	if err != nil && err.Offset == p.offset(b) && (err.Kind == SyntaxMismatch || len(b) == 0) {
		// No alternative got past the first token.
		return nil, b, p.expected(b, "expression")
	}
	return e, rest, err
}

// keywordLiteral parses nil, false, true, or "...".
func (p *parser) keywordLiteral(b []byte) (ast.Node, []byte, *Error) {
	if rest, ok := token(b, "nil"); ok {
		return ast.Nil{}, rest, nil
	}
	if rest, ok := token(b, "false"); ok {
		return ast.Bool(false), rest, nil
	}
	if rest, ok := token(b, "true"); ok {
		return ast.Bool(true), rest, nil
	}
	if rest, ok := token(b, "..."); ok {
		return ast.VarArg{}, rest, nil
	}
	return nil, b, p.expected(b, "expression")
}

// expList parses exp {',' exp}.
func (p *parser) expList(b []byte) (*ast.ExpList, []byte, *Error) {
	first, rest, err := p.expression(b)
	if err != nil {
		return nil, b, err
	}
	list := &ast.ExpList{Exps: []ast.Node{first}}
	for {
		afterComma, ok := token(rest, ",")
		if !ok {
			return list, rest, nil
		}
		var next ast.Node
		next, rest, err = p.expression(afterComma)
		if err != nil {
			return nil, b, err
		}
		list.Exps = append(list.Exps, next)
	}
}
