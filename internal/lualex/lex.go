// Copyright 2024 The zb Authors
// SPDX-License-Identifier: MIT

// Package lualex provides the byte-level primitives shared by the Lua parsers:
// character classes, the reserved word table,
// whitespace and comment skipping, long bracket scanning,
// and conversion of [Lua lexical elements] to Go values.
//
// [Lua lexical elements]: https://www.lua.org/manual/5.3/manual.html#3.1
package lualex

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SkipSpace returns b with any leading whitespace and comments removed.
// An unterminated long comment consumes the rest of b.
func SkipSpace(b []byte) []byte {
	for len(b) > 0 {
		switch {
		case IsSpace(b[0]):
			b = b[1:]
		case bytes.HasPrefix(b, []byte("--")):
			b = b[2:]
			if level, n, ok := LongBracketOpen(b); ok {
				_, rest, ok := FindLongBracketClose(b[n:], level)
				if !ok {
					return b[len(b):]
				}
				b = rest
				continue
			}
			// Short comment.
			i := bytes.IndexByte(b, '\n')
			if i < 0 {
				return b[len(b):]
			}
			b = b[i+1:]
		default:
			return b
		}
	}
	return b
}

// LongBracketOpen reports whether b begins with an opening long bracket
// (for example, "[[" or "[==[").
// level is the number of equals signs in the bracket
// and n is the length of the bracket in bytes.
func LongBracketOpen(b []byte) (level, n int, ok bool) {
	if len(b) == 0 || b[0] != '[' {
		return 0, 0, false
	}
	for i := 1; i < len(b); i++ {
		switch b[i] {
		case '=':
			level++
		case '[':
			return level, i + 1, true
		default:
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// FindLongBracketClose searches b for a closing long bracket of the given level.
// (For example, a closing long bracket of level 4 is "]====]".)
// content is the text before the closing bracket
// and rest is the text after it.
func FindLongBracketClose(b []byte, level int) (content, rest []byte, ok bool) {
	closer := make([]byte, 0, level+2)
	closer = append(closer, ']')
	for range level {
		closer = append(closer, '=')
	}
	closer = append(closer, ']')
	i := bytes.Index(b, closer)
	if i < 0 {
		return nil, b, false
	}
	return b[:i], b[i+len(closer):], true
}

// NormalizeLongString converts the content of a long bracket string
// to the string value it denotes.
// A newline immediately following the opening bracket is dropped
// and any end-of-line sequence
// ("\r\n", "\n\r", "\n", or "\r")
// is converted to a single "\n".
func NormalizeLongString(content []byte) string {
	sb := new(strings.Builder)
	sb.Grow(len(content))
	first := true
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c != '\n' && c != '\r' {
			sb.WriteByte(c)
			first = false
			continue
		}
		if i+1 < len(content) && (content[i+1] == '\n' || content[i+1] == '\r') && content[i+1] != c {
			i++
		}
		if !first {
			sb.WriteByte('\n')
		}
		first = false
	}
	return sb.String()
}

// Quote returns a double-quoted Lua string literal representing s.
func Quote(s string) string {
	sb := new(strings.Builder)
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for {
		c, size := utf8.DecodeRuneInString(s)
		switch {
		case size == 0:
			sb.WriteByte('"')
			return sb.String()
		case c == utf8.RuneError && size == 1:
			sb.WriteString(`\x`)
			for _, digit := range toHexDigits(s[0]) {
				sb.WriteByte(digit)
			}
		case c == '\\' || c == '"':
			sb.WriteByte('\\')
			sb.WriteRune(c)
		case isPrint(c):
			sb.WriteRune(c)
		case c == '\a':
			sb.WriteString(`\a`)
		case c == '\b':
			sb.WriteString(`\b`)
		case c == '\f':
			sb.WriteString(`\f`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\v':
			sb.WriteString(`\v`)
		default:
			fmt.Fprintf(sb, `\u{%x}`, c)
		}
		s = s[size:]
	}
}

// IsSpace reports whether the given byte represents a space in Lua source code.
// According to the [reference],
// "Lua recognizes as spaces the standard ASCII whitespace characters
// space, form feed, newline, carriage return, horizontal tab, and vertical tab."
//
// [reference]: https://www.lua.org/manual/5.3/manual.html#3.1
func IsSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigit reports whether c is a decimal digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsHexDigit reports whether c is a hexadecimal digit.
func IsHexDigit(c byte) bool {
	return IsDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// IsNameStart reports whether c can begin a Lua name.
func IsNameStart(c byte) bool {
	return c == '_' || IsLetter(c)
}

// IsNamePart reports whether c can continue a Lua name.
func IsNamePart(c byte) bool {
	return c == '_' || IsLetter(c) || IsDigit(c)
}

// HexDigit returns the value of the hexadecimal digit c.
func HexDigit(c byte) (byte, error) {
	switch {
	case IsDigit(c):
		return c - '0', nil
	case 'a' <= c && c <= 'f':
		return c - 'a' + 0xa, nil
	case 'A' <= c && c <= 'F':
		return c - 'A' + 0xa, nil
	default:
		return 0, fmt.Errorf("unexpected %q (want hex digit)", c)
	}
}

func toHexDigits(x byte) [2]byte {
	const digits = "0123456789abcdef"
	return [2]byte{digits[x>>4], digits[x&0xf]}
}

func isPrint(c rune) bool {
	return 0x20 <= c && c < 0x7f
}
