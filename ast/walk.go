// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package ast

func (Integer) Children() []Node        { return nil }
func (Float) Children() []Node          { return nil }
func (Bool) Children() []Node           { return nil }
func (String) Children() []Node         { return nil }
func (Name) Children() []Node           { return nil }
func (Label) Children() []Node          { return nil }
func (Nil) Children() []Node            { return nil }
func (VarArg) Children() []Node         { return nil }
func (EmptyStatement) Children() []Node { return nil }
func (Break) Children() []Node          { return nil }

func (p *Paren) Children() []Node {
	return nodes(p.X)
}

func (op *BinOp) Children() []Node {
	return nodes(op.Left, op.Right)
}

func (op *UnOp) Children() []Node {
	return nodes(op.X)
}

func (g *Goto) Children() []Node {
	return []Node{g.Label}
}

func (r *RetStat) Children() []Node {
	if r.Exps == nil {
		return nil
	}
	return []Node{r.Exps}
}

func (b *Block) Children() []Node {
	children := nodes(b.Stmts...)
	if b.Ret != nil {
		children = append(children, b.Ret)
	}
	return children
}

func (f *Function) Children() []Node {
	if f.Body == nil {
		return nil
	}
	return []Node{f.Body}
}

func (body *FunctionBody) Children() []Node {
	var children []Node
	if body.Params != nil {
		children = append(children, body.Params)
	}
	if body.Block != nil {
		children = append(children, body.Block)
	}
	return children
}

func (name *FunctionName) Children() []Node {
	children := make([]Node, 0, len(name.Fields)+2)
	children = append(children, name.Base)
	for _, field := range name.Fields {
		children = append(children, field)
	}
	if name.Method != "" {
		children = append(children, name.Method)
	}
	return children
}

func (f *NamedFunction) Children() []Node {
	var children []Node
	if f.Name != nil {
		children = append(children, f.Name)
	}
	if f.Body != nil {
		children = append(children, f.Body)
	}
	return children
}

func (f *LocalFunction) Children() []Node {
	children := []Node{f.Name}
	if f.Body != nil {
		children = append(children, f.Body)
	}
	return children
}

func (list *ExpList) Children() []Node {
	return nodes(list.Exps...)
}

func (list *VarList) Children() []Node {
	return nodes(list.Vars...)
}

func (list *NameList) Children() []Node {
	children := make([]Node, 0, len(list.Names))
	for _, name := range list.Names {
		children = append(children, name)
	}
	return children
}

func (list *FieldList) Children() []Node {
	return nodes(list.Fields...)
}

func (params *ParameterList) Children() []Node {
	var children []Node
	if params.Names != nil {
		children = append(children, params.Names)
	}
	if params.VarArg {
		children = append(children, VarArg{})
	}
	return children
}

func (f *FieldSingle) Children() []Node {
	return nodes(f.Value)
}

func (f *FieldAssign) Children() []Node {
	return nodes(f.Key, f.Value)
}

func (v *Var) Children() []Node {
	return []Node{v.Name}
}

func (v *VarPrefixed) Children() []Node {
	return nodes(v.Prefix, v.Key)
}

func (v *VarListAccess) Children() []Node {
	return append(nodes(v.Prefix), v.Name)
}

func (p *PrefixExp) Children() []Node {
	return nodes(p.X)
}

func (t *TableConstructor) Children() []Node {
	if t.Fields == nil {
		return nil
	}
	return []Node{t.Fields}
}

func (call *FunctionCall) Children() []Node {
	children := nodes(call.Prefix)
	if call.Args != nil {
		children = append(children, call.Args)
	}
	return children
}

func (call *MethodCall) Children() []Node {
	children := append(nodes(call.Prefix), call.Method)
	if call.Args != nil {
		children = append(children, call.Args)
	}
	return children
}

func (a *Assign) Children() []Node {
	var children []Node
	if a.Vars != nil {
		children = append(children, a.Vars)
	}
	if a.Exps != nil {
		children = append(children, a.Exps)
	}
	return children
}

func (l *Local) Children() []Node {
	var children []Node
	if l.Names != nil {
		children = append(children, l.Names)
	}
	if l.Exps != nil {
		children = append(children, l.Exps)
	}
	return children
}

// nodes returns the non-nil elements of list.
func nodes(list ...Node) []Node {
	result := make([]Node, 0, len(list))
	for _, n := range list {
		if n != nil {
			result = append(result, n)
		}
	}
	return result
}

// Visitor is called for each node during [Walk].
// If it returns false, the children of the node are not visited.
type Visitor func(n Node) bool

// Walk traverses a syntax tree in depth-first order.
func Walk(n Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, v)
	}
}

// Kind returns the name of n's variant,
// using the operator name for operator nodes
// (e.g. "Integer", "Add", "UMin", "FieldAssign").
func Kind(n Node) string {
	switch n := n.(type) {
	case nil:
		return "nil"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Name:
		return "Name"
	case Label:
		return "Label"
	case Nil:
		return "Nil"
	case VarArg:
		return "VarArg"
	case EmptyStatement:
		return "EmptyStatement"
	case Break:
		return "Break"
	case *Paren:
		return "Paren"
	case *BinOp:
		return n.Op.String()
	case *UnOp:
		return n.Op.String()
	case *Goto:
		return "Goto"
	case *RetStat:
		return "RetStat"
	case *Block:
		return "Block"
	case *Function:
		return "Function"
	case *FunctionBody:
		return "FunctionBody"
	case *FunctionName:
		return "FunctionName"
	case *NamedFunction:
		return "NamedFunction"
	case *LocalFunction:
		return "LocalFunction"
	case *ExpList:
		return "ExpList"
	case *VarList:
		return "VarList"
	case *NameList:
		return "NameList"
	case *FieldList:
		return "FieldList"
	case *ParameterList:
		return "ParameterList"
	case *FieldSingle:
		return "FieldSingle"
	case *FieldAssign:
		return "FieldAssign"
	case *Var:
		return "Var"
	case *VarPrefixed:
		return "VarPrefixed"
	case *VarListAccess:
		return "VarListAccess"
	case *PrefixExp:
		return "PrefixExp"
	case *TableConstructor:
		return "TableConstructor"
	case *FunctionCall:
		return "FunctionCall"
	case *MethodCall:
		return "MethodCall"
	case *Assign:
		return "Assign"
	case *Local:
		return "Local"
	default:
		panic("unknown node type")
	}
}

// StripParens returns a copy of n
// with every [Paren] and [PrefixExp] wrapper removed.
// Two trees that differ only in grouping markers
// are equal after StripParens.
func StripParens(n Node) Node {
	switch n := n.(type) {
	case *Paren:
		return StripParens(n.X)
	case *PrefixExp:
		return StripParens(n.X)
	case *BinOp:
		return &BinOp{Op: n.Op, Left: StripParens(n.Left), Right: StripParens(n.Right)}
	case *UnOp:
		return &UnOp{Op: n.Op, X: StripParens(n.X)}
	case *RetStat:
		return &RetStat{Exps: stripExpList(n.Exps)}
	case *Block:
		b := &Block{Stmts: stripAll(n.Stmts)}
		if n.Ret != nil {
			b.Ret = &RetStat{Exps: stripExpList(n.Ret.Exps)}
		}
		return b
	case *Function:
		return &Function{Body: stripBody(n.Body)}
	case *FunctionBody:
		return stripBody(n)
	case *NamedFunction:
		return &NamedFunction{Name: n.Name, Body: stripBody(n.Body)}
	case *LocalFunction:
		return &LocalFunction{Name: n.Name, Body: stripBody(n.Body)}
	case *ExpList:
		return stripExpList(n)
	case *VarList:
		return &VarList{Vars: stripAll(n.Vars)}
	case *FieldList:
		return &FieldList{Fields: stripAll(n.Fields)}
	case *FieldSingle:
		return &FieldSingle{Value: StripParens(n.Value)}
	case *FieldAssign:
		return &FieldAssign{Key: StripParens(n.Key), Value: StripParens(n.Value)}
	case *VarPrefixed:
		return &VarPrefixed{Prefix: StripParens(n.Prefix), Key: StripParens(n.Key)}
	case *VarListAccess:
		return &VarListAccess{Prefix: StripParens(n.Prefix), Name: n.Name}
	case *TableConstructor:
		if n.Fields == nil {
			return &TableConstructor{}
		}
		return &TableConstructor{Fields: &FieldList{Fields: stripAll(n.Fields.Fields)}}
	case *FunctionCall:
		return &FunctionCall{Prefix: StripParens(n.Prefix), Args: stripExpList(n.Args)}
	case *MethodCall:
		return &MethodCall{Prefix: StripParens(n.Prefix), Method: n.Method, Args: stripExpList(n.Args)}
	case *Assign:
		return &Assign{Vars: &VarList{Vars: stripAll(n.Vars.Vars)}, Exps: stripExpList(n.Exps)}
	case *Local:
		return &Local{Names: n.Names, Exps: stripExpList(n.Exps)}
	default:
		// Leaves and nodes without expression children.
		return n
	}
}

func stripAll(list []Node) []Node {
	if list == nil {
		return nil
	}
	result := make([]Node, len(list))
	for i, n := range list {
		result[i] = StripParens(n)
	}
	return result
}

func stripExpList(list *ExpList) *ExpList {
	if list == nil {
		return nil
	}
	return &ExpList{Exps: stripAll(list.Exps)}
}

func stripBody(body *FunctionBody) *FunctionBody {
	if body == nil {
		return nil
	}
	result := &FunctionBody{Params: body.Params}
	if body.Block != nil {
		result.Block = StripParens(body.Block).(*Block)
	}
	return result
}
