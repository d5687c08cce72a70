// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"nomlua.256lights.llc/pkg/internal/lualex"
)

// String formats the integer as a decimal numeral.
// Negative values (which can only come from hexadecimal wraparound)
// are formatted in hexadecimal so that they read back as the same value.
func (i Integer) String() string {
	if i < 0 {
		return fmt.Sprintf("0x%x", uint64(i))
	}
	return strconv.FormatInt(int64(i), 10)
}

// String formats the number so that it reads back as a float.
func (f Float) String() string {
	x := float64(f)
	switch {
	case math.IsInf(x, 1):
		return "1e9999"
	case math.IsInf(x, -1):
		return "-1e9999"
	case math.IsNaN(x):
		return "(0/0)"
	}
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

// String returns the string as a quoted Lua literal.
func (s String) String() string {
	return lualex.Quote(string(s))
}

func (n Name) String() string {
	return string(n)
}

func (l Label) String() string {
	return "::" + string(l) + "::"
}

func (Nil) String() string            { return "nil" }
func (VarArg) String() string         { return "..." }
func (EmptyStatement) String() string { return ";" }
func (Break) String() string          { return "break" }

func (p *Paren) String() string {
	return "(" + str(p.X) + ")"
}

func (op *BinOp) String() string {
	return "(" + str(op.Left) + " " + op.Op.Symbol() + " " + str(op.Right) + ")"
}

func (op *UnOp) String() string {
	sym := op.Op.Symbol()
	x := str(op.X)
	// "not" needs a separator before any operand
	// and "- -x" must not become a comment.
	if op.Op == Not || strings.HasPrefix(x, sym) {
		return sym + " " + x
	}
	return sym + x
}

func (g *Goto) String() string {
	return "goto " + string(g.Label)
}

func (r *RetStat) String() string {
	if r.Exps == nil {
		return "return"
	}
	return "return " + r.Exps.String()
}

// String joins the block's statements with spaces.
// A statement that begins with a parenthesis is preceded by a semicolon
// so that it does not continue the previous statement as a call,
// and the rendering then parses with an extra [EmptyStatement].
func (b *Block) String() string {
	parts := make([]string, 0, len(b.Stmts)+1)
	for i, stmt := range b.Stmts {
		s := str(stmt)
		if i > 0 && strings.HasPrefix(s, "(") {
			s = "; " + s
		}
		parts = append(parts, s)
	}
	if b.Ret != nil {
		parts = append(parts, b.Ret.String())
	}
	return strings.Join(parts, " ")
}

func (f *Function) String() string {
	return "function" + f.Body.String()
}

func (body *FunctionBody) String() string {
	sb := new(strings.Builder)
	sb.WriteString("(")
	if body.Params != nil {
		sb.WriteString(body.Params.String())
	}
	sb.WriteString(")")
	if body.Block != nil {
		if s := body.Block.String(); s != "" {
			sb.WriteString(" ")
			sb.WriteString(s)
		}
	}
	sb.WriteString(" end")
	return sb.String()
}

func (name *FunctionName) String() string {
	sb := new(strings.Builder)
	sb.WriteString(string(name.Base))
	for _, field := range name.Fields {
		sb.WriteString(".")
		sb.WriteString(string(field))
	}
	if name.Method != "" {
		sb.WriteString(":")
		sb.WriteString(string(name.Method))
	}
	return sb.String()
}

func (f *NamedFunction) String() string {
	return "function " + f.Name.String() + f.Body.String()
}

func (f *LocalFunction) String() string {
	return "local function " + string(f.Name) + f.Body.String()
}

func (list *ExpList) String() string {
	return joinNodes(list.Exps, ", ")
}

func (list *VarList) String() string {
	return joinNodes(list.Vars, ", ")
}

func (list *NameList) String() string {
	sb := new(strings.Builder)
	for i, name := range list.Names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(name))
	}
	return sb.String()
}

func (list *FieldList) String() string {
	return joinNodes(list.Fields, ", ")
}

func (params *ParameterList) String() string {
	switch {
	case params.Names == nil && params.VarArg:
		return "..."
	case params.Names == nil:
		return ""
	case params.VarArg:
		return params.Names.String() + ", ..."
	default:
		return params.Names.String()
	}
}

func (f *FieldSingle) String() string {
	return str(f.Value)
}

func (f *FieldAssign) String() string {
	if name, ok := f.Key.(Name); ok {
		return string(name) + " = " + str(f.Value)
	}
	return "[" + str(f.Key) + "] = " + str(f.Value)
}

func (v *Var) String() string {
	return string(v.Name)
}

func (v *VarPrefixed) String() string {
	return str(v.Prefix) + "[" + str(v.Key) + "]"
}

func (v *VarListAccess) String() string {
	return str(v.Prefix) + "." + string(v.Name)
}

func (p *PrefixExp) String() string {
	return str(p.X)
}

func (t *TableConstructor) String() string {
	if t.Fields == nil {
		return "{}"
	}
	return "{" + t.Fields.String() + "}"
}

func (call *FunctionCall) String() string {
	return str(call.Prefix) + "(" + argsString(call.Args) + ")"
}

func (call *MethodCall) String() string {
	return str(call.Prefix) + ":" + string(call.Method) + "(" + argsString(call.Args) + ")"
}

func (a *Assign) String() string {
	return a.Vars.String() + " = " + a.Exps.String()
}

func (l *Local) String() string {
	s := "local " + l.Names.String()
	if l.Exps != nil {
		s += " = " + l.Exps.String()
	}
	return s
}

func argsString(args *ExpList) string {
	if args == nil {
		return ""
	}
	return args.String()
}

func joinNodes(nodes []Node, sep string) string {
	sb := new(strings.Builder)
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(str(n))
	}
	return sb.String()
}

// str renders n, tolerating a nil node.
func str(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}
