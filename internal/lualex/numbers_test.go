// Copyright 2024 The zb Authors
// SPDX-License-Identifier: MIT

package lualex

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		s       string
		want    int64
		err     bool
		isRange bool
	}{
		{s: "0", want: 0},
		{s: "1", want: 1},
		{s: "3", want: 3},
		{s: "345", want: 345},
		{s: "1000000", want: 1000000},
		{s: "9223372036854775807", want: math.MaxInt64},
		{s: "9223372036854775808", err: true, isRange: true},
		{s: "5678987656789876520", want: 5678987656789876520},
		{s: "56789876567898765200", err: true, isRange: true},
		{s: "0xff", want: 0xff},
		{s: "0X20F", want: 0x20f},
		{s: "0xBEBADA", want: 0xBEBADA},
		{s: "0x7fffffffffffffff", want: 0x7fffffffffffffff},
		{s: "0x8000000000000000", want: math.MinInt64},
		{s: "0xffffffffffffffff", want: -1},
		{s: "0x1ffffffffffffffff", want: -1},
		{s: "0x", err: true},
		{s: "", err: true},
		{s: "-1", err: true},
		{s: "+1", err: true},
		{s: "1_000_000", err: true},
		{s: " 1", err: true},
		{s: "0xfg", err: true},
	}
	for _, test := range tests {
		got, err := ParseInt(test.s)
		if test.err {
			if err == nil {
				t.Errorf("ParseInt(%q) = %d, <nil>; want _, <error>", test.s, got)
			} else if isRange := errors.Is(err, strconv.ErrRange); isRange != test.isRange {
				t.Errorf("ParseInt(%q) error = %v; range error = %t, want %t", test.s, err, isRange, test.isRange)
			}
			continue
		}
		if got != test.want || err != nil {
			t.Errorf("ParseInt(%q) = %d, %v; want %d, <nil>", test.s, got, err, test.want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		s    string
		want float64
		err  bool
	}{
		{s: "0.0", want: 0},
		{s: "1.0", want: 1},
		{s: "3.0", want: 3.0},
		{s: "3.1416", want: 3.1416},
		{s: ".1", want: 0.1},
		{s: "1.", want: 1},
		{s: "314.16e-2", want: 314.16e-2},
		{s: "0.31416E1", want: 0.31416e1},
		{s: "34e1", want: 34e1},
		{s: "34e+1", want: 340},
		{s: "34.e-1", want: 3.4},
		{s: ".2e1", want: 2},
		{s: "1000000000000000000000000", want: 1e24},
		{s: "1e9999", want: math.Inf(1)},
		{s: "0x0.1E", want: 0x0.1Ep0},
		{s: "0xA23p-4", want: 0xa23p-4},
		{s: "0X1.921FB54442D18P+1", want: 0x1.921FB54442D18p+1},
		{s: "0x1.fp10", want: 1984},
		{s: "0x.1", want: 0.0625},
		{s: "0x1.", want: 1},
		{s: "0x3.0p4", want: 48},
		{s: "0x8000000000000000", want: 0x8000000000000000},
		{s: "", err: true},
		{s: "-1.0", err: true},
		{s: "+1.0", err: true},
		{s: "1e+", err: true},
		{s: "1_000.0", err: true},
		{s: "inf", err: true},
		{s: "INF", err: true},
		{s: "infinity", err: true},
		{s: "nan", err: true},
		{s: "NaN", err: true},
	}
	for _, test := range tests {
		got, err := ParseFloat(test.s)
		if got != test.want || (err != nil) != test.err {
			wantError := "<nil>"
			if test.err {
				wantError = "<error>"
			}
			t.Errorf("ParseFloat(%q) = %g, %v; want %g, %s", test.s, got, err, test.want, wantError)
		}
	}
}
