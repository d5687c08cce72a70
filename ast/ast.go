// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

// Package ast defines the abstract syntax tree produced by the Lua parser.
//
// Every syntactic category is represented by a distinct type
// that implements [Node].
// The set of node types is closed:
// only types in this package implement [Node].
// Nodes are immutable once constructed
// and every composite node exclusively owns its children.
package ast

// Node is a node in a Lua syntax tree.
type Node interface {
	// String renders the node as Lua-like source text.
	String() string
	// Children returns the node's direct descendants in source order.
	Children() []Node

	node()
}

// Integer is an integer numeral.
type Integer int64

// Float is a floating-point numeral.
type Float float64

// Bool is a true or false literal.
type Bool bool

// String is a string literal.
// The value is the decoded string, not the source text.
type String string

// Name is an identifier.
type Name string

// Label is a goto label (::name::).
type Label string

// Nil is the nil literal.
type Nil struct{}

// VarArg is the vararg expression "...".
type VarArg struct{}

// EmptyStatement is a lone semicolon.
type EmptyStatement struct{}

// Break is a break statement.
type Break struct{}

// Paren is a parenthesized expression.
type Paren struct {
	X Node
}

// BinOp is a binary operator expression.
type BinOp struct {
	Op    BinaryOperator
	Left  Node
	Right Node
}

// UnOp is a unary operator expression.
type UnOp struct {
	Op UnaryOperator
	X  Node
}

// Goto is a goto statement.
type Goto struct {
	Label Name
}

// RetStat is a return statement.
// Exps is nil for a bare "return".
type RetStat struct {
	Exps *ExpList
}

// Block is a sequence of statements
// optionally terminated by a return statement.
type Block struct {
	Stmts []Node
	Ret   *RetStat
}

// Function is an anonymous function expression.
type Function struct {
	Body *FunctionBody
}

// FunctionBody is a parameter list and a block.
// Params is nil for a function that takes no parameters.
type FunctionBody struct {
	Params *ParameterList
	Block  *Block
}

// FunctionName is the name in a function statement:
// a name followed by zero or more dotted fields
// and an optional method name.
type FunctionName struct {
	Base   Name
	Fields []Name
	// Method is empty if the name has no ":" suffix.
	Method Name
}

// NamedFunction is a function statement.
type NamedFunction struct {
	Name *FunctionName
	Body *FunctionBody
}

// LocalFunction is a local function statement.
type LocalFunction struct {
	Name Name
	Body *FunctionBody
}

// ExpList is a comma-separated list of one or more expressions.
type ExpList struct {
	Exps []Node
}

// VarList is a comma-separated list of one or more assignable expressions.
type VarList struct {
	Vars []Node
}

// NameList is a comma-separated list of one or more names.
type NameList struct {
	Names []Name
}

// FieldList is the list of fields in a table constructor.
type FieldList struct {
	Fields []Node
}

// ParameterList is a function's formal parameters.
// Names is nil if the function only takes varargs.
type ParameterList struct {
	Names  *NameList
	VarArg bool
}

// FieldSingle is a positional table field.
type FieldSingle struct {
	Value Node
}

// FieldAssign is a keyed table field.
// A Key of type [Name] was written as "name = value";
// any other key was written as "[key] = value".
type FieldAssign struct {
	Key   Node
	Value Node
}

// Var is a reference to a variable by name.
type Var struct {
	Name Name
}

// VarPrefixed is an indexing expression: prefix[key].
type VarPrefixed struct {
	Prefix Node
	Key    Node
}

// VarListAccess is a field access expression: prefix.name.
type VarListAccess struct {
	Prefix Node
	Name   Name
}

// PrefixExp marks an expression that may be followed
// by an index, a field access, or a call.
type PrefixExp struct {
	X Node
}

// TableConstructor is a table constructor expression.
// Fields is nil for an empty table.
type TableConstructor struct {
	Fields *FieldList
}

// FunctionCall is a call: prefix(args).
// Args is nil when the call has no arguments.
type FunctionCall struct {
	Prefix Node
	Args   *ExpList
}

// MethodCall is a method call: prefix:method(args).
// Args is nil when the call has no arguments.
type MethodCall struct {
	Prefix Node
	Method Name
	Args   *ExpList
}

// Assign is an assignment statement.
type Assign struct {
	Vars *VarList
	Exps *ExpList
}

// Local is a local variable declaration.
// Exps is nil if the declaration has no initializers.
type Local struct {
	Names *NameList
	Exps  *ExpList
}

func (Integer) node()           {}
func (Float) node()             {}
func (Bool) node()              {}
func (String) node()            {}
func (Name) node()              {}
func (Label) node()             {}
func (Nil) node()               {}
func (VarArg) node()            {}
func (EmptyStatement) node()    {}
func (Break) node()             {}
func (*Paren) node()            {}
func (*BinOp) node()            {}
func (*UnOp) node()             {}
func (*Goto) node()             {}
func (*RetStat) node()          {}
func (*Block) node()            {}
func (*Function) node()         {}
func (*FunctionBody) node()     {}
func (*FunctionName) node()     {}
func (*NamedFunction) node()    {}
func (*LocalFunction) node()    {}
func (*ExpList) node()          {}
func (*VarList) node()          {}
func (*NameList) node()         {}
func (*FieldList) node()        {}
func (*ParameterList) node()    {}
func (*FieldSingle) node()      {}
func (*FieldAssign) node()      {}
func (*Var) node()              {}
func (*VarPrefixed) node()      {}
func (*VarListAccess) node()    {}
func (*PrefixExp) node()        {}
func (*TableConstructor) node() {}
func (*FunctionCall) node()     {}
func (*MethodCall) node()       {}
func (*Assign) node()           {}
func (*Local) node()            {}
