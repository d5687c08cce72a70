// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package ast

import (
	"fmt"
	"io"
	"math"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// jsonNode is the JSON form of a [Node].
type jsonNode struct {
	Type     string      `json:"type"`
	Op       string      `json:"op,omitempty"`
	Value    any         `json:"value,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

// WriteJSON writes a JSON representation of the tree rooted at n to w.
// Each node is an object with a "type" member (as returned by [Kind]),
// an "op" member holding the Lua token for operator nodes,
// a "value" member for literals and names,
// and a "children" array.
func WriteJSON(w io.Writer, n Node) error {
	err := jsonv2.MarshalWrite(w, toJSON(n),
		jsontext.Multiline(true),
		jsontext.WithIndent("  "),
		jsontext.AllowInvalidUTF8(true),
	)
	if err != nil {
		return fmt.Errorf("write ast json: %w", err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func toJSON(n Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{Type: Kind(n)}
	switch n := n.(type) {
	case Integer:
		jn.Value = int64(n)
	case Float:
		x := float64(n)
		if math.IsInf(x, 0) || math.IsNaN(x) {
			// JSON has no representation for these.
			jn.Value = n.String()
		} else {
			jn.Value = x
		}
	case Bool:
		jn.Value = bool(n)
	case String:
		jn.Value = string(n)
	case Name:
		jn.Value = string(n)
	case Label:
		jn.Value = string(n)
	case *BinOp:
		jn.Op = n.Op.Symbol()
	case *UnOp:
		jn.Op = n.Op.Symbol()
	}
	for _, child := range n.Children() {
		jn.Children = append(jn.Children, toJSON(child))
	}
	return jn
}
