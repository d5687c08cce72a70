// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package luaparse

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar is an EBNF description of the language accepted by this package,
// in the notation of [golang.org/x/exp/ebnf].
// The start production is [GrammarStart].
//
//go:embed grammar.ebnf
var Grammar string

// GrammarStart is the name of the start production in [Grammar].
const GrammarStart = "Chunk"

// ParseGrammar parses [Grammar] and verifies that it is complete:
// every production referenced is defined
// and every production is reachable from [GrammarStart].
func ParseGrammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return nil, fmt.Errorf("parse lua grammar: %w", err)
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, fmt.Errorf("verify lua grammar: %w", err)
	}
	return g, nil
}
