// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"nomlua.256lights.llc/pkg/ast"
)

var (
	_ pflag.Value = (*parseMode)(nil)
	_ pflag.Value = (*outputFormat)(nil)
)

// parseMode selects the grammar rule that input is parsed with.
// It implements [github.com/spf13/pflag.Value].
type parseMode string

const (
	expressionMode parseMode = "expression"
	blockMode      parseMode = "block"
)

func (m *parseMode) Type() string  { return "mode" }
func (m parseMode) String() string { return string(m) }
func (m parseMode) Get() any       { return m }

func (m *parseMode) Set(s string) error {
	switch parseMode(s) {
	case expressionMode, blockMode:
		*m = parseMode(s)
		return nil
	default:
		return fmt.Errorf("unknown mode %q (must be %q or %q)", s, expressionMode, blockMode)
	}
}

func (m *parseMode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// outputFormat is the representation of a parsed syntax tree.
// It implements [github.com/spf13/pflag.Value].
type outputFormat string

const (
	textFormat outputFormat = "text"
	jsonFormat outputFormat = "json"
	dotFormat  outputFormat = "dot"
)

func (f *outputFormat) Type() string  { return "format" }
func (f outputFormat) String() string { return string(f) }
func (f outputFormat) Get() any       { return f }

func (f *outputFormat) Set(s string) error {
	switch outputFormat(s) {
	case textFormat, jsonFormat, dotFormat:
		*f = outputFormat(s)
		return nil
	default:
		return fmt.Errorf("unknown format %q (must be one of %q, %q, or %q)", s, textFormat, jsonFormat, dotFormat)
	}
}

func (f *outputFormat) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

// write writes n to w in the format.
func (f outputFormat) write(w io.Writer, n ast.Node) error {
	switch f {
	case jsonFormat:
		return ast.WriteJSON(w, n)
	case dotFormat:
		return ast.WriteDOT(w, n)
	default:
		_, err := fmt.Fprintln(w, n)
		return err
	}
}
