// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"nomlua.256lights.llc/pkg/ast"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		s    string
		want ast.Node
		rest string
	}{
		{s: "0", want: ast.Integer(0)},
		{s: "20", want: ast.Integer(20)},
		{s: "345", want: ast.Integer(345)},
		{s: "0x20", want: ast.Integer(32)},
		{s: "0X20F", want: ast.Integer(527)},
		{s: "0xA", want: ast.Integer(10)},
		{s: "0xffffffffffffffff", want: ast.Integer(-1)},
		{s: "0x7fffffffffffffff", want: ast.Integer(math.MaxInt64)},
		{s: "9223372036854775807", want: ast.Integer(math.MaxInt64)},
		{s: "9223372036854775808", want: ast.Float(9223372036854775808.0)},
		{s: "56789876567898765200", want: ast.Float(56789876567898765200.0)},
		{s: "3.1416", want: ast.Float(3.1416)},
		{s: ".1", want: ast.Float(0.1)},
		{s: "1.", want: ast.Float(1.0)},
		{s: "3.0", want: ast.Float(3.0)},
		{s: "1e2", want: ast.Float(100)},
		{s: "314.16e-2", want: ast.Float(3.1416)},
		{s: "0.31416E1", want: ast.Float(3.1416)},
		{s: "34e+1", want: ast.Float(340)},
		{s: "0x1p4", want: ast.Float(16)},
		{s: "0x.8", want: ast.Float(0.5)},
		{s: "0xA23p-4", want: ast.Float(0xA23p-4)},
		{s: "0X1.921FB54442D18P+1", want: ast.Float(0x1.921FB54442D18p+1)},
		{s: "1e999", want: ast.Float(math.Inf(1))},
		{s: "3 + 4", want: ast.Integer(3), rest: " + 4"},
		{s: "3)", want: ast.Integer(3), rest: ")"},
		{s: "0x10,", want: ast.Integer(16), rest: ","},
		{s: "1 ..2", want: ast.Integer(1), rest: " ..2"},
	}
	for _, test := range tests {
		got, rest, err := ParseNumber([]byte(test.s))
		if err != nil {
			t.Errorf("ParseNumber(%q): %v", test.s, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseNumber(%q) (-want +got):\n%s", test.s, diff)
		}
		if string(rest) != test.rest {
			t.Errorf("ParseNumber(%q) rest = %q; want %q", test.s, rest, test.rest)
		}
	}
}

func TestParseNumberErrors(t *testing.T) {
	tests := []struct {
		s    string
		kind ErrorKind
	}{
		{s: "-20", kind: SyntaxMismatch},
		{s: "+20", kind: SyntaxMismatch},
		{s: "-0x20", kind: SyntaxMismatch},
		{s: "- 1.5", kind: SyntaxMismatch},
		{s: " 1", kind: SyntaxMismatch},
		{s: "x", kind: SyntaxMismatch},
		{s: ".", kind: SyntaxMismatch},
		{s: "..1", kind: SyntaxMismatch},
		{s: "", kind: IncompleteInput},
		{s: "1..2", kind: MalformedLiteral},
		{s: "0x", kind: MalformedLiteral},
		{s: "0xg", kind: MalformedLiteral},
		{s: "3f", kind: MalformedLiteral},
		{s: "1e", kind: MalformedLiteral},
		{s: "1e+", kind: MalformedLiteral},
		{s: "0x1p", kind: MalformedLiteral},
		{s: "1.2.3", kind: MalformedLiteral},
	}
	for _, test := range tests {
		got, rest, err := ParseNumber([]byte(test.s))
		if err == nil {
			t.Errorf("ParseNumber(%q) = %v, %q, <nil>; want error", test.s, got, rest)
			continue
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Errorf("ParseNumber(%q) error = %#v; want *Error", test.s, err)
			continue
		}
		if e.Kind != test.kind {
			t.Errorf("ParseNumber(%q) error kind = %v; want %v", test.s, e.Kind, test.kind)
		}
		if string(rest) != test.s {
			t.Errorf("ParseNumber(%q) rest = %q; want original input", test.s, rest)
		}
	}
}

func TestParseNumberDecimalDigits(t *testing.T) {
	// Every digit string representable in 64 bits is an integer.
	for _, x := range []int64{0, 1, 7, 10, 99, 1 << 31, 1<<53 + 1, 1e18, math.MaxInt64 - 1, math.MaxInt64} {
		s := strconv.FormatInt(x, 10)
		got, _, err := ParseNumber([]byte(s))
		if err != nil {
			t.Errorf("ParseNumber(%q): %v", s, err)
			continue
		}
		if got != ast.Integer(x) {
			t.Errorf("ParseNumber(%q) = %#v; want ast.Integer(%d)", s, got, x)
		}
	}

	// Larger digit strings are the closest float.
	for _, s := range []string{
		"9223372036854775808",
		"18446744073709551615",
		"18446744073709551616",
		"100000000000000000000000000000",
		"123456789012345678901234567890123456789",
	} {
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatal(err)
		}
		got, _, err := ParseNumber([]byte(s))
		if err != nil {
			t.Errorf("ParseNumber(%q): %v", s, err)
			continue
		}
		if got != ast.Float(want) {
			t.Errorf("ParseNumber(%q) = %#v; want ast.Float(%g)", s, got, want)
		}
	}
}
