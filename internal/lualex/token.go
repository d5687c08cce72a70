// Copyright 2024 The zb Authors
// SPDX-License-Identifier: MIT

package lualex

import (
	"fmt"
	"slices"
)

// keywords is the sorted list of Lua reserved words.
// They cannot be used as names.
var keywords = []string{
	"and",
	"break",
	"do",
	"else",
	"elseif",
	"end",
	"false",
	"for",
	"function",
	"goto",
	"if",
	"in",
	"local",
	"nil",
	"not",
	"or",
	"repeat",
	"return",
	"then",
	"true",
	"until",
	"while",
}

// IsKeyword reports whether s is exactly one of Lua's reserved words.
func IsKeyword(s string) bool {
	_, found := slices.BinarySearch(keywords, s)
	return found
}

// Keywords returns the Lua reserved words in lexicographic order.
func Keywords() []string {
	return slices.Clone(keywords)
}

// Position represents a position in a textual source file.
type Position struct {
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column number.
	// Columns are based in bytes.
	// Zero indicates that the position only has line number information.
	Column int
}

// Pos returns a new position with the given line number and column.
// It panics if the resulting Position would not be valid
// (as reported by [Position.IsValid]).
func Pos(line, col int) Position {
	pos := Position{Line: line, Column: col}
	if !pos.IsValid() {
		panic("invalid Pos()")
	}
	return pos
}

// PositionOf returns the position of the byte at the given offset in src.
// Offsets past the end of src are clamped to the end.
// Tab stops are 8 columns apart.
func PositionOf(src []byte, offset int) Position {
	offset = min(max(offset, 0), len(src))
	pos := Position{Line: 1, Column: 1}
	for _, b := range src[:offset] {
		switch b {
		case '\n':
			pos.Line++
			pos.Column = 1
		case '\t':
			const tabWidth = 8
			pos.Column += tabWidth - (pos.Column-1)%tabWidth
		default:
			pos.Column++
		}
	}
	return pos
}

// String formats the position as "line:col".
func (pos Position) String() string {
	if !pos.IsValid() {
		return "<invalid position>"
	}
	if pos.Column == 0 {
		return fmt.Sprintf("%d", pos.Line)
	}
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// IsValid reports whether pos has a positive line number
// and a non-negative column.
// (A zero column indicates line-only position information.)
func (pos Position) IsValid() bool {
	return pos.Line > 0 && pos.Column >= 0
}
