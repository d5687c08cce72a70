// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package ast

import "fmt"

// BinaryOperator is an operator that takes two operands.
type BinaryOperator int

// Binary operators.
const (
	Add BinaryOperator = 1 + iota
	Sub
	Mul
	Div
	Exp
	FDiv
	Mod
	And
	Or
	Lt
	Le
	Gt
	Ge
	Eq
	Ne
	BitOr
	BitAnd
	BitXor
	Rsh
	Lsh
	Concat

	numBinaryOperators = iota
)

var binaryOperatorInfo = [...]struct {
	name   string
	symbol string
}{
	Add:    {"Add", "+"},
	Sub:    {"Sub", "-"},
	Mul:    {"Mul", "*"},
	Div:    {"Div", "/"},
	Exp:    {"Exp", "^"},
	FDiv:   {"FDiv", "//"},
	Mod:    {"Mod", "%"},
	And:    {"And", "and"},
	Or:     {"Or", "or"},
	Lt:     {"Lt", "<"},
	Le:     {"Le", "<="},
	Gt:     {"Gt", ">"},
	Ge:     {"Ge", ">="},
	Eq:     {"Eq", "=="},
	Ne:     {"Ne", "~="},
	BitOr:  {"BitOr", "|"},
	BitAnd: {"BitAnd", "&"},
	BitXor: {"BitXor", "~"},
	Rsh:    {"Rsh", ">>"},
	Lsh:    {"Lsh", "<<"},
	Concat: {"Concat", ".."},
}

func (op BinaryOperator) isValid() bool {
	return 0 < op && op <= numBinaryOperators
}

// String returns the operator's name (e.g. "Add").
func (op BinaryOperator) String() string {
	if !op.isValid() {
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
	return binaryOperatorInfo[op].name
}

// Symbol returns the operator's Lua token (e.g. "+").
func (op BinaryOperator) Symbol() string {
	if !op.isValid() {
		return "?"
	}
	return binaryOperatorInfo[op].symbol
}

// UnaryOperator is an operator that takes a single operand.
type UnaryOperator int

// Unary operators.
const (
	// BinNot is bitwise not ("~x").
	BinNot UnaryOperator = 1 + iota
	Not
	// Len is the length operator ("#x").
	Len
	// UMin is arithmetic negation ("-x").
	UMin

	numUnaryOperators = iota
)

var unaryOperatorInfo = [...]struct {
	name   string
	symbol string
}{
	BinNot: {"BinNot", "~"},
	Not:    {"Not", "not"},
	Len:    {"Len", "#"},
	UMin:   {"UMin", "-"},
}

func (op UnaryOperator) isValid() bool {
	return 0 < op && op <= numUnaryOperators
}

// String returns the operator's name (e.g. "UMin").
func (op UnaryOperator) String() string {
	if !op.isValid() {
		return fmt.Sprintf("UnaryOperator(%d)", int(op))
	}
	return unaryOperatorInfo[op].name
}

// Symbol returns the operator's Lua token (e.g. "-").
func (op UnaryOperator) Symbol() string {
	if !op.isValid() {
		return "?"
	}
	return unaryOperatorInfo[op].symbol
}
