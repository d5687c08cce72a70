// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package ast

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDOT writes the tree rooted at n to w
// as a Graphviz digraph named "AST".
// Each node becomes a vertex labeled with its kind
// (and its value, for literals and names)
// with an edge to each of its children.
func WriteDOT(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph AST {\n")
	if n != nil {
		nextID := 0
		var visit func(n Node) int
		visit = func(n Node) int {
			id := nextID
			nextID++
			fmt.Fprintf(bw, "\tN%d [label=%s];\n", id, strconv.Quote(dotLabel(n)))
			for _, child := range n.Children() {
				childID := visit(child)
				fmt.Fprintf(bw, "\tN%d -> N%d;\n", id, childID)
			}
			return id
		}
		visit(n)
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ast graph: %w", err)
	}
	return nil
}

func dotLabel(n Node) string {
	switch n := n.(type) {
	case Integer, Float, Bool, String, Name, Label:
		return Kind(n) + " " + n.String()
	case *BinOp:
		return Kind(n) + " " + n.Op.Symbol()
	case *UnOp:
		return Kind(n) + " " + n.Op.Symbol()
	default:
		return Kind(n)
	}
}
