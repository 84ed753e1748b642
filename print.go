// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Print writes the tree in level order, one rank per line, with the keys
// of each node followed by "| ". When verbose is set every node is
// prefixed with its id, leaves show the id of the next leaf and internal
// nodes list their children.
func (t *Tree[K, V]) Print(w io.Writer, verbose bool) error {
	bw := bufio.NewWriter(w)
	if t.root == nilNode {
		fmt.Fprintln(bw, "Empty tree.")
		return bw.Flush()
	}

	rank := 0
	it := t.rawIterator()
	for it.Next(); it.Front() != nil; it.Next() {
		n := it.Front()
		if it.Depth() != rank {
			rank = it.Depth()
			bw.WriteString("\n")
		}
		if verbose {
			fmt.Fprintf(bw, "(%d) ", n.getId())
		}
		for _, k := range n.keys {
			bw.WriteString(formatKey(k))
			bw.WriteString(" ")
		}
		if verbose {
			if n.isLeaf() {
				fmt.Fprintf(bw, "-> %d ", n.next)
			} else {
				fmt.Fprintf(bw, "%v ", n.children)
			}
		}
		bw.WriteString("| ")
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// String renders the non-verbose level-order dump.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	_ = t.Print(&sb, false)
	return sb.String()
}

func formatKey(k any) string {
	if b, ok := k.([]byte); ok {
		return string(b)
	}
	return fmt.Sprint(k)
}
