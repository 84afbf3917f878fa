package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Table maps each coded Symbol to its Code.  A Table is populated once by
// GenerateCodes and never mutated afterward.
type Table map[Symbol]Code

// GenerateCodes walks the tree rooted at root and assigns each leaf symbol
// the bit string of its root-to-leaf path, 0 for a left edge and 1 for a
// right edge.  It fails with an error wrapping ErrInvalidInput if root is
// nil.  The resulting Table is a prefix code: no code is a prefix of
// another, because every code ends at a distinct leaf of a tree whose
// internal nodes all have two children.
//
// A bare leaf root (the single-symbol degenerate tree) is assigned the
// one-bit code "0", so that even a one-symbol alphabet has a usable
// non-empty code.
//
// Paths are limited to MaxCodeSize bits; a tree deep enough to exceed that
// fails the assertion in Code.AppendBit rather than emitting colliding
// codes.
func GenerateCodes(root *Node) (Table, error) {
	if root == nil {
		return nil, fmt.Errorf("huffman: cannot generate codes: %w: nil root", ErrInvalidInput)
	}

	table := make(Table)
	if root.IsLeaf() {
		table[root.Symbol] = MakeCode(1, 0)
		return table, nil
	}

	// Explicit stack instead of recursion; the path so far travels with
	// each frame, so there is nothing to restore on backtrack.
	type frame struct {
		node *Node
		path Code
	}

	stack := make([]frame, 0, 64)
	stack = append(stack, frame{root, Code{}})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsLeaf() {
			table[top.node.Symbol] = top.path
			continue
		}
		stack = append(stack, frame{top.node.Right, top.path.AppendBit(1)})
		stack = append(stack, frame{top.node.Left, top.path.AppendBit(0)})
	}
	return table, nil
}

// Dump writes a programmer-readable dump of the code assignment to the given
// writer, one symbol per row in ascending symbol order.
func (t Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	for _, sym := range t.sortedSymbols() {
		fmt.Fprintf(&buf, "\t%q = %s\n", sym, t[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (t Table) DebugString() string {
	var buf strings.Builder
	_, _ = t.Dump(&buf)
	return buf.String()
}

func (t Table) sortedSymbols() []Symbol {
	symbols := make([]Symbol, 0, len(t))
	for sym := range t {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
