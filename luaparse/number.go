// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	"errors"
	"strconv"
	"strings"

	"nomlua.256lights.llc/pkg/ast"
	"nomlua.256lights.llc/pkg/internal/lualex"
)

// numeralForms lists the numeral forms in the order they are attempted.
var numeralForms = []struct {
	name    string
	match   func(s string) bool
	convert func(s string) (ast.Node, error)
}{
	{"hexadecimal float", isHexFloat, convertFloat},
	{"hexadecimal integer", isHexInt, convertInt},
	{"float", isDecimalFloat, convertFloat},
	{"integer", isDecimalInt, convertInt},
}

// number parses a numeral.
//
// Like the Lua lexer, it first reads the longest run of bytes
// that could belong to a numeral
// (hexadecimal digits, radix points, and exponents with their signs),
// so "3..2" and "0x1g" are malformed rather than a numeral
// followed by other tokens.
func (p *parser) number(b []byte) (ast.Node, []byte, *Error) {
	if !startsNumeral(b) {
		return nil, b, p.expected(b, "numeral")
	}
	n := numeralLength(b)
	s := string(b[:n])
	for _, form := range numeralForms {
		if !form.match(s) {
			continue
		}
		x, err := form.convert(s)
		if err != nil {
			return nil, b, p.malformed(b, "malformed number (%s)", form.name)
		}
		return x, b[n:], nil
	}
	return nil, b, p.malformed(b, "malformed number")
}

func startsNumeral(b []byte) bool {
	return len(b) > 0 && lualex.IsDigit(b[0]) ||
		len(b) > 1 && b[0] == '.' && lualex.IsDigit(b[1])
}

// numeralLength returns the length of the numeral-like prefix of b.
//
// Equivalent to `read_numeral` in upstream Lua.
func numeralLength(b []byte) int {
	exponent := "Ee"
	i := 0
	if len(b) >= 2 && b[0] == '0' && (b[1] == 'x' || b[1] == 'X') {
		exponent = "Pp"
		i = 2
	}
	for i < len(b) {
		c := b[i]
		switch {
		case strings.IndexByte(exponent, c) >= 0:
			i++
			if i < len(b) && (b[i] == '+' || b[i] == '-') {
				i++
			}
		case lualex.IsHexDigit(c) || c == '.':
			i++
		default:
			return i
		}
	}
	return i
}

// isHexFloat matches 0x mantissa [p [sign] digits]
// where the mantissa has a radix point or the exponent is present.
func isHexFloat(s string) bool {
	h, ok := cutHexPrefix(s)
	if !ok {
		return false
	}
	mantissa, exp, hasExp := cutAny(h, "pP")
	if hasExp && !isExponent(exp) {
		return false
	}
	if !isMantissa(mantissa, lualex.IsHexDigit) {
		return false
	}
	return hasExp || strings.Contains(mantissa, ".")
}

// isHexInt matches 0x hexdigits.
func isHexInt(s string) bool {
	h, ok := cutHexPrefix(s)
	return ok && h != "" && allBytes(h, lualex.IsHexDigit)
}

// isDecimalFloat matches mantissa [e [sign] digits]
// where the mantissa has a radix point or the exponent is present.
func isDecimalFloat(s string) bool {
	if _, ok := cutHexPrefix(s); ok {
		return false
	}
	mantissa, exp, hasExp := cutAny(s, "eE")
	if hasExp && !isExponent(exp) {
		return false
	}
	if !isMantissa(mantissa, lualex.IsDigit) {
		return false
	}
	return hasExp || strings.Contains(mantissa, ".")
}

// isDecimalInt matches digits.
func isDecimalInt(s string) bool {
	return s != "" && allBytes(s, lualex.IsDigit)
}

// isMantissa reports whether s is one of
// digits, digits ".", digits "." digits, or "." digits.
func isMantissa(s string, isDigit func(byte) bool) bool {
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return false
	}
	return allBytes(whole, isDigit) && allBytes(frac, isDigit)
}

// isExponent reports whether s is [sign] digits.
// Exponents are decimal even in hexadecimal numerals.
func isExponent(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return s != "" && allBytes(s, lualex.IsDigit)
}

func convertInt(s string) (ast.Node, error) {
	i, err := lualex.ParseInt(s)
	if errors.Is(err, strconv.ErrRange) {
		// Decimal integers that do not fit in 64 bits are read as floats.
		return convertFloat(s)
	}
	if err != nil {
		return nil, err
	}
	return ast.Integer(i), nil
}

func convertFloat(s string) (ast.Node, error) {
	f, err := lualex.ParseFloat(s)
	if err != nil {
		return nil, err
	}
	return ast.Float(f), nil
}

func cutHexPrefix(s string) (rest string, ok bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}

// cutAny slices s around the first instance of any byte in chars.
func cutAny(s, chars string) (before, after string, found bool) {
	i := strings.IndexAny(s, chars)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

func allBytes(s string, f func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !f(s[i]) {
			return false
		}
	}
	return true
}
