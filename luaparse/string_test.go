// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"errors"
	"testing"

	"nomlua.256lights.llc/pkg/ast"
)

func TestParseLiteralString(t *testing.T) {
	tests := []struct {
		s    string
		want ast.String
		rest string
	}{
		{s: `""`, want: ""},
		{s: `"hello"`, want: "hello"},
		{s: `'hello'`, want: "hello"},
		{s: `'say "hi"'`, want: `say "hi"`},
		{s: `"it's"`, want: "it's"},
		{s: `'it''s'`, want: "it", rest: `'s'`},
		{s: `'\u{1F62A}'`, want: "\U0001F62A"},
		{s: `'\u{41}\u{000041}'`, want: "AA"},
		{s: `'\u{10FFFF}'`, want: "\U0010FFFF"},
		{s: `'\097'`, want: "a"},
		{s: `'\0971'`, want: "a1"},
		{s: `'\9'`, want: "\t"},
		{s: `'\255'`, want: "\xff"},
		{s: `'\0'`, want: "\x00"},
		{s: `"\x41\65\u{41}"`, want: "AAA"},
		{s: `"\xfF"`, want: "\xff"},
		{s: `"\a\b\f\n\r\t\v\\\"\'"`, want: "\a\b\f\n\r\t\v\\\"'"},
		{s: "'a\\\nb'", want: "a\nb"},
		{s: "'a\\\r\nb'", want: "a\nb"},
		{s: "'a\\\n\rb'", want: "a\nb"},
		{s: "'a\\\rb'", want: "a\nb"},
		{s: "'a\\z  \n\t  b'", want: "ab"},
		{s: "'a\\zb'", want: "ab"},
		{s: "'\xe2\x98\x83'", want: "☃"},
		{s: "[[foo]]", want: "foo"},
		{s: "[[\nfoo]]", want: "foo"},
		{s: "[[\r\nfoo\r\nbar]]", want: "foo\nbar"},
		{s: "[==[a]]b]=]c]==]", want: "a]]b]=]c"},
		{s: `[[no \n escapes]]`, want: `no \n escapes`},
		{s: `"a" .. "b"`, want: "a", rest: ` .. "b"`},
	}
	for _, test := range tests {
		got, rest, err := ParseLiteralString([]byte(test.s))
		if err != nil {
			t.Errorf("ParseLiteralString(%q): %v", test.s, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseLiteralString(%q) = %q; want %q", test.s, got, test.want)
		}
		if string(rest) != test.rest {
			t.Errorf("ParseLiteralString(%q) rest = %q; want %q", test.s, rest, test.rest)
		}
	}
}

func TestParseLiteralStringErrors(t *testing.T) {
	tests := []struct {
		s    string
		kind ErrorKind
	}{
		{s: `abc`, kind: SyntaxMismatch},
		{s: ` "a"`, kind: SyntaxMismatch},
		{s: `[=x]=]`, kind: SyntaxMismatch},
		{s: ``, kind: IncompleteInput},
		{s: `"abc`, kind: IncompleteInput},
		{s: `"abc\`, kind: IncompleteInput},
		{s: `"\x4`, kind: IncompleteInput},
		{s: `"\u{41`, kind: IncompleteInput},
		{s: `[[abc`, kind: IncompleteInput},
		{s: `[==[abc]]`, kind: IncompleteInput},
		{s: "'a\nb'", kind: MalformedLiteral},
		{s: "'a\rb'", kind: MalformedLiteral},
		{s: `'\256'`, kind: MalformedLiteral},
		{s: `'\999'`, kind: MalformedLiteral},
		{s: `'\q'`, kind: MalformedLiteral},
		{s: `'\xZZ'`, kind: MalformedLiteral},
		{s: `'\x4'`, kind: MalformedLiteral},
		{s: `'\u41'`, kind: MalformedLiteral},
		{s: `'\u{}'`, kind: MalformedLiteral},
		{s: `'\u{110000}'`, kind: MalformedLiteral},
		{s: `'\u{7FFFFFFF}'`, kind: MalformedLiteral},
		{s: `'\u{D800}'`, kind: MalformedLiteral},
		{s: `'\u{12G}'`, kind: MalformedLiteral},
	}
	for _, test := range tests {
		got, rest, err := ParseLiteralString([]byte(test.s))
		if err == nil {
			t.Errorf("ParseLiteralString(%q) = %q, %q, <nil>; want error", test.s, got, rest)
			continue
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Errorf("ParseLiteralString(%q) error = %#v; want *Error", test.s, err)
			continue
		}
		if e.Kind != test.kind {
			t.Errorf("ParseLiteralString(%q) error = %v (kind %v); want kind %v", test.s, err, e.Kind, test.kind)
		}
	}
}
