// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"strings"
	"unicode/utf8"

	"nomlua.256lights.llc/pkg/ast"
	"nomlua.256lights.llc/pkg/internal/lualex"
)

// literalString parses a short or long string literal.
func (p *parser) literalString(b []byte) (ast.String, []byte, *Error) {
	if len(b) > 0 && (b[0] == '"' || b[0] == '\'') {
		return p.shortString(b)
	}
	if _, _, ok := lualex.LongBracketOpen(b); ok {
		return p.longString(b)
	}
	return "", b, p.expected(b, "string")
}

// shortString parses a string delimited by matching quotes,
// decoding escape sequences.
func (p *parser) shortString(b []byte) (ast.String, []byte, *Error) {
	end := b[0]
	sb := new(strings.Builder)
	i := 1
	for {
		if i >= len(b) {
			return "", b, p.incomplete(b, "unfinished string")
		}
		c := b[i]
		switch {
		case c == end:
			return ast.String(sb.String()), b[i+1:], nil
		case c == '\n' || c == '\r':
			return "", b, p.malformed(b, "unfinished string")
		case c != '\\':
			sb.WriteByte(c)
			i++
			continue
		}

		// Backslash escape.
		i++
		if i >= len(b) {
			return "", b, p.incomplete(b, "unfinished string")
		}
		c = b[i]
		i++
		switch c {
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '\\', '\'', '"':
			sb.WriteByte(c)
		case '\n', '\r':
			// A backslash-newline is a newline.
			// CR LF and LF CR count as a single line break.
			if i < len(b) && (b[i] == '\n' || b[i] == '\r') && b[i] != c {
				i++
			}
			sb.WriteByte('\n')
		case 'z':
			// "'\z' skips the following span of whitespace characters, including line breaks"
			for i < len(b) && lualex.IsSpace(b[i]) {
				i++
			}
		case 'x':
			if i+2 > len(b) {
				return "", b, p.incomplete(b, "unfinished string")
			}
			hi, err1 := lualex.HexDigit(b[i])
			lo, err2 := lualex.HexDigit(b[i+1])
			if err1 != nil || err2 != nil {
				return "", b, p.malformed(b, "hexadecimal digit expected in \\x escape")
			}
			sb.WriteByte(hi<<4 | lo)
			i += 2
		case 'u':
			r, n, err := p.unicodeEscape(b, i)
			if err != nil {
				return "", b, err
			}
			sb.WriteRune(r)
			i += n
		default:
			if !lualex.IsDigit(c) {
				return "", b, p.malformed(b, "invalid escape sequence '\\%c'", c)
			}
			// Up to three decimal digits.
			v := int(c - '0')
			for n := 1; n < 3 && i < len(b) && lualex.IsDigit(b[i]); n++ {
				v = v*10 + int(b[i]-'0')
				i++
			}
			if v > 0xff {
				return "", b, p.malformed(b, "decimal escape too large")
			}
			sb.WriteByte(byte(v))
		}
	}
}

// unicodeEscape decodes the "{XXX}" part of a \u escape
// starting at b[i].
// It returns the code point and the number of bytes consumed.
func (p *parser) unicodeEscape(b []byte, i int) (r rune, n int, err *Error) {
	start := i
	if i >= len(b) {
		return 0, 0, p.incomplete(b, "unfinished string")
	}
	if b[i] != '{' {
		return 0, 0, p.malformed(b, "missing '{' in \\u{xxxx}")
	}
	i++
	for first := true; ; first = false {
		if i >= len(b) {
			return 0, 0, p.incomplete(b, "unfinished string")
		}
		c := b[i]
		i++
		if c == '}' {
			if first {
				return 0, 0, p.malformed(b, "hexadecimal digit expected in \\u{xxxx}")
			}
			break
		}
		nibble, hexErr := lualex.HexDigit(c)
		if hexErr != nil {
			return 0, 0, p.malformed(b, "hexadecimal digit expected in \\u{xxxx}")
		}
		r = r<<4 | rune(nibble)
		if r > utf8.MaxRune {
			return 0, 0, p.malformed(b, "UTF-8 value too large")
		}
	}
	if !utf8.ValidRune(r) {
		return 0, 0, p.malformed(b, "invalid Unicode code point U+%04X", r)
	}
	return r, i - start, nil
}

// longString parses a long bracket string such as [[...]] or [==[...]==].
func (p *parser) longString(b []byte) (ast.String, []byte, *Error) {
	level, n, _ := lualex.LongBracketOpen(b)
	content, rest, ok := lualex.FindLongBracketClose(b[n:], level)
	if !ok {
		return "", b, p.incomplete(b, "unfinished long string")
	}
	return ast.String(lualex.NormalizeLongString(content)), rest, nil
}
