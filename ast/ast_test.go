// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package ast

import (
	"math"
	"strings"
	"testing"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		n    Node
		want string
	}{
		{n: Integer(42), want: "42"},
		{n: Integer(-1), want: "0xffffffffffffffff"},
		{n: Float(3.1416), want: "3.1416"},
		{n: Float(1), want: "1.0"},
		{n: Float(1e24), want: "1e+24"},
		{n: Float(math.Inf(1)), want: "1e9999"},
		{n: Bool(true), want: "true"},
		{n: String("a\n\"b\""), want: `"a\n\"b\""`},
		{n: Name("x"), want: "x"},
		{n: Label("top"), want: "::top::"},
		{n: Nil{}, want: "nil"},
		{n: VarArg{}, want: "..."},
		{n: EmptyStatement{}, want: ";"},
		{n: Break{}, want: "break"},
		{
			n:    &BinOp{Op: Add, Left: Integer(1), Right: Integer(2)},
			want: "(1 + 2)",
		},
		{
			n: &BinOp{
				Op:    Mul,
				Left:  &BinOp{Op: Div, Left: Integer(10), Right: Integer(20)},
				Right: Integer(30),
			},
			want: "((10 / 20) * 30)",
		},
		{n: &BinOp{Op: And, Left: Bool(true), Right: Nil{}}, want: "(true and nil)"},
		{n: &BinOp{Op: Concat, Left: Integer(1), Right: Integer(2)}, want: "(1 .. 2)"},
		{n: &UnOp{Op: UMin, X: Integer(2)}, want: "-2"},
		{n: &UnOp{Op: UMin, X: &UnOp{Op: UMin, X: Integer(2)}}, want: "- -2"},
		{n: &UnOp{Op: Not, X: Bool(false)}, want: "not false"},
		{n: &UnOp{Op: Len, X: &Var{Name: "t"}}, want: "#t"},
		{n: &UnOp{Op: BinNot, X: Integer(0)}, want: "~0"},
		{n: &Paren{X: Integer(1)}, want: "(1)"},
		{n: &Goto{Label: "continue"}, want: "goto continue"},
		{n: &RetStat{}, want: "return"},
		{
			n:    &RetStat{Exps: &ExpList{Exps: []Node{Bool(false), Bool(true)}}},
			want: "return false, true",
		},
		{
			n: &TableConstructor{Fields: &FieldList{Fields: []Node{
				&FieldSingle{Value: Integer(1)},
				&FieldAssign{Key: Name("x"), Value: Integer(2)},
				&FieldAssign{Key: Bool(true), Value: String("y")},
			}}},
			want: `{1, x = 2, [true] = "y"}`,
		},
		{n: &TableConstructor{}, want: "{}"},
		{
			n: &VarListAccess{
				Prefix: &PrefixExp{X: &Var{Name: "a"}},
				Name:   "b",
			},
			want: "a.b",
		},
		{
			n: &VarPrefixed{
				Prefix: &PrefixExp{X: &Var{Name: "a"}},
				Key:    Integer(1),
			},
			want: "a[1]",
		},
		{
			n: &FunctionCall{
				Prefix: &PrefixExp{X: &Var{Name: "print"}},
				Args:   &ExpList{Exps: []Node{String("hi")}},
			},
			want: `print("hi")`,
		},
		{
			n: &MethodCall{
				Prefix: &PrefixExp{X: &Var{Name: "s"}},
				Method: "len",
			},
			want: "s:len()",
		},
		{
			n: &Function{Body: &FunctionBody{
				Params: &ParameterList{Names: &NameList{Names: []Name{"a", "b"}}, VarArg: true},
				Block:  &Block{Ret: &RetStat{Exps: &ExpList{Exps: []Node{&Var{Name: "a"}}}}},
			}},
			want: "function(a, b, ...) return a end",
		},
		{
			n:    &Function{Body: &FunctionBody{Block: &Block{}}},
			want: "function() end",
		},
		{
			n: &NamedFunction{
				Name: &FunctionName{Base: "a", Fields: []Name{"b"}, Method: "c"},
				Body: &FunctionBody{Block: &Block{}},
			},
			want: "function a.b:c() end",
		},
		{
			n: &LocalFunction{
				Name: "f",
				Body: &FunctionBody{Params: &ParameterList{VarArg: true}, Block: &Block{}},
			},
			want: "local function f(...) end",
		},
		{
			n: &Block{Stmts: []Node{
				&Local{Names: &NameList{Names: []Name{"x"}}, Exps: &ExpList{Exps: []Node{Integer(1)}}},
				&Assign{
					Vars: &VarList{Vars: []Node{&Var{Name: "y"}}},
					Exps: &ExpList{Exps: []Node{&Var{Name: "x"}}},
				},
				Break{},
			}},
			want: "local x = 1 y = x break",
		},
	}
	for _, test := range tests {
		if got := test.n.String(); got != test.want {
			t.Errorf("%s.String() = %q; want %q", Kind(test.n), got, test.want)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		n    Node
		want string
	}{
		{n: Integer(1), want: "Integer"},
		{n: &BinOp{Op: FDiv}, want: "FDiv"},
		{n: &UnOp{Op: UMin}, want: "UMin"},
		{n: &FieldAssign{}, want: "FieldAssign"},
		{n: &VarListAccess{}, want: "VarListAccess"},
		{n: nil, want: "nil"},
	}
	for _, test := range tests {
		if got := Kind(test.n); got != test.want {
			t.Errorf("Kind(%#v) = %q; want %q", test.n, got, test.want)
		}
	}
}

func TestOperatorStrings(t *testing.T) {
	for op := Add; op <= Concat; op++ {
		if op.String() == "" || strings.HasPrefix(op.String(), "BinaryOperator(") {
			t.Errorf("BinaryOperator(%d).String() = %q", int(op), op.String())
		}
		if op.Symbol() == "?" {
			t.Errorf("%v.Symbol() = %q", op, op.Symbol())
		}
	}
	if got, want := BinaryOperator(0).String(), "BinaryOperator(0)"; got != want {
		t.Errorf("BinaryOperator(0).String() = %q; want %q", got, want)
	}
	for op := BinNot; op <= UMin; op++ {
		if op.Symbol() == "?" {
			t.Errorf("%v.Symbol() = %q", op, op.Symbol())
		}
	}
}

func TestWalk(t *testing.T) {
	tree := &BinOp{
		Op:    Mul,
		Left:  &BinOp{Op: Div, Left: Integer(10), Right: Integer(20)},
		Right: Integer(30),
	}
	var got []string
	Walk(tree, func(n Node) bool {
		got = append(got, Kind(n))
		return true
	})
	want := []string{"Mul", "Div", "Integer", "Integer", "Integer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk order (-want +got):\n%s", diff)
	}

	got = got[:0]
	Walk(tree, func(n Node) bool {
		got = append(got, Kind(n))
		return Kind(n) != "Div"
	})
	want = []string{"Mul", "Div", "Integer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk with pruning (-want +got):\n%s", diff)
	}
}

func TestStripParens(t *testing.T) {
	tree := &BinOp{
		Op:   Add,
		Left: &PrefixExp{X: &Paren{X: &BinOp{Op: Sub, Left: Integer(1), Right: Integer(2)}}},
		Right: &VarListAccess{
			Prefix: &PrefixExp{X: &Var{Name: "a"}},
			Name:   "b",
		},
	}
	want := &BinOp{
		Op:   Add,
		Left: &BinOp{Op: Sub, Left: Integer(1), Right: Integer(2)},
		Right: &VarListAccess{
			Prefix: &Var{Name: "a"},
			Name:   "b",
		},
	}
	if diff := cmp.Diff(Node(want), StripParens(tree)); diff != "" {
		t.Errorf("StripParens(%v) (-want +got):\n%s", tree, diff)
	}
	// The input must not be modified.
	if _, ok := tree.Left.(*PrefixExp); !ok {
		t.Errorf("StripParens modified its argument")
	}
}

func TestWriteJSON(t *testing.T) {
	tree := &BinOp{
		Op:    Add,
		Left:  Integer(1),
		Right: &UnOp{Op: Not, X: Bool(false)},
	}
	sb := new(strings.Builder)
	if err := WriteJSON(sb, tree); err != nil {
		t.Fatal(err)
	}
	var got any
	if err := jsonv2.Unmarshal([]byte(sb.String()), &got); err != nil {
		t.Fatalf("Unmarshal(%q): %v", sb.String(), err)
	}
	want := map[string]any{
		"type": "Add",
		"op":   "+",
		"children": []any{
			map[string]any{"type": "Integer", "value": 1.0},
			map[string]any{
				"type": "Not",
				"op":   "not",
				"children": []any{
					map[string]any{"type": "Bool", "value": false},
				},
			},
		},
	}
	if diff := cmp.Diff(any(want), got); diff != "" {
		t.Errorf("WriteJSON output (-want +got):\n%s", diff)
	}
}

func TestWriteDOT(t *testing.T) {
	tree := &BinOp{
		Op:    Mul,
		Left:  &BinOp{Op: Div, Left: Integer(10), Right: Integer(20)},
		Right: Integer(30),
	}
	sb := new(strings.Builder)
	if err := WriteDOT(sb, tree); err != nil {
		t.Fatal(err)
	}
	const want = "digraph AST {\n" +
		"\tN0 [label=\"Mul *\"];\n" +
		"\tN1 [label=\"Div /\"];\n" +
		"\tN2 [label=\"Integer 10\"];\n" +
		"\tN1 -> N2;\n" +
		"\tN3 [label=\"Integer 20\"];\n" +
		"\tN1 -> N3;\n" +
		"\tN0 -> N1;\n" +
		"\tN4 [label=\"Integer 30\"];\n" +
		"\tN0 -> N4;\n" +
		"}\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("WriteDOT output (-want +got):\n%s", diff)
	}
}
