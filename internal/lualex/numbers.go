// Copyright 2024 The zb Authors
// SPDX-License-Identifier: MIT

package lualex

import (
	"errors"
	"strconv"
	"strings"
)

// ParseInt converts an unsigned Lua integer numeral
// (decimal digits or "0x" followed by hexadecimal digits)
// to a 64-bit signed integer
// according to the [lexical rules of Lua].
// Signs and surrounding whitespace are not permitted.
// Any error returned will be of type [*strconv.NumError].
// A decimal numeral that does not fit in 64 bits
// returns an error wrapping [strconv.ErrRange].
//
// [lexical rules of Lua]: https://lua.org/manual/5.3/manual.html#3.1
func ParseInt(s string) (int64, error) {
	if h, isHex := cutHexPrefix(s); isHex {
		// “Hexadecimal numerals with neither a radix point nor an exponent
		// always denote an integer value;
		// if the value overflows, it wraps around to fit into a valid integer.”
		const maxHexDigits = 64 / 8 * 2

		if h == "" {
			return 0, syntaxError("ParseInt", s)
		}
		for _, b := range []byte(h) {
			if !IsHexDigit(b) {
				return 0, syntaxError("ParseInt", s)
			}
		}
		if len(h) > maxHexDigits {
			// "Wrapping around" is consistent with truncating to 64 least-significant bits
			// and converting to a signed integer.
			h = h[len(h)-maxHexDigits:]
		}
		x, err := strconv.ParseUint(h, 16, 64)
		if err != nil {
			return 0, err
		}
		return int64(x), nil
	}

	if s == "" {
		return 0, syntaxError("ParseInt", s)
	}
	for _, b := range []byte(s) {
		if !IsDigit(b) {
			return 0, syntaxError("ParseInt", s)
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

// ParseFloat converts an unsigned Lua numeral to a 64-bit floating-point number
// according to the [lexical rules of Lua].
// Both decimal numerals and hexadecimal numerals
// (with an optional radix point and an optional binary "p" exponent)
// are accepted.
// Values too large to be represented are converted to infinity
// instead of returning an error.
// Any error returned will be of type [*strconv.NumError].
//
// [lexical rules of Lua]: https://lua.org/manual/5.3/manual.html#3.1
func ParseFloat(s string) (float64, error) {
	// strconv.ParseFloat accepts "Inf", "NaN", and digit separators,
	// none of which are Lua numerals.
	if s == "" || strings.ContainsAny(s, "_iInN") || !signsOnlyInExponent(s) {
		return 0, syntaxError("ParseFloat", s)
	}
	toParse := s
	if _, isHex := cutHexPrefix(s); isHex && !strings.ContainsAny(s, "pP") {
		// Go hex float literals must have an exponent.
		toParse = s + "p0"
	}
	f, err := strconv.ParseFloat(toParse, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	} else if err != nil {
		err.(*strconv.NumError).Func = "ParseFloat"
		err.(*strconv.NumError).Num = s
	}
	return f, err
}

// signsOnlyInExponent reports whether every sign character in s
// immediately follows an exponent marker.
func signsOnlyInExponent(s string) bool {
	_, isHex := cutHexPrefix(s)
	for i := 0; i < len(s); i++ {
		if s[i] != '+' && s[i] != '-' {
			continue
		}
		if i == 0 {
			return false
		}
		switch prev := s[i-1]; {
		case !isHex && (prev == 'e' || prev == 'E'):
		case isHex && (prev == 'p' || prev == 'P'):
		default:
			return false
		}
	}
	return true
}

func cutHexPrefix(s string) (rest string, hex bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}

func syntaxError(fn, s string) *strconv.NumError {
	return &strconv.NumError{
		Func: fn,
		Num:  s,
		Err:  strconv.ErrSyntax,
	}
}
