package wpt

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Basis labels a subset of tree nodes forming a cut: along every
// root-to-leaf path of the complete tree exactly one node is flagged.
// A Basis is produced by the selection routines and addresses the same
// (depth, band) arena as the tree it was selected from.
//
// Shifts carries, for shift-invariant selections only, the circular shift
// of the variant chosen at each flagged node, keyed by flat arena index.
// Rotations carries, for least-dependent selections only, the per-node
// decorrelating rotation applied to the ensemble before costing, again
// keyed by flat index and present only for flagged nodes.
type Basis struct {
	Depth int
	Arity int
	Flags []bool

	Shifts    map[int]int
	Rotations map[int]*mat.Dense
}

// NewBasis returns an unflagged basis over a complete tree arena.
// Arity is 2 for one-dimensional trees and 4 for two-dimensional.
func NewBasis(depth, arity int) *Basis {
	return &Basis{
		Depth: depth,
		Arity: arity,
		Flags: make([]bool, treeSize(arity, depth)),
	}
}

// Flagged reports whether the node at (depth, band) is part of the basis.
func (b *Basis) Flagged(depth, band int) bool {
	if b == nil || depth < 0 || depth > b.Depth {
		return false
	}
	if band < 0 || band >= levelWidth(b.Arity, depth) {
		return false
	}

	return b.Flags[flatIndex(b.Arity, depth, band)]
}

// SetFlag marks or clears one node. Out-of-range positions are ignored.
func (b *Basis) SetFlag(depth, band int, on bool) {
	if b == nil || depth < 0 || depth > b.Depth {
		return
	}
	if band < 0 || band >= levelWidth(b.Arity, depth) {
		return
	}

	b.Flags[flatIndex(b.Arity, depth, band)] = on
}

// ShiftAt returns the shift tag recorded for the node at (depth, band).
// Shift tags exist only on nodes flagged by a shift-invariant selection.
func (b *Basis) ShiftAt(depth, band int) (int, bool) {
	if b == nil || b.Shifts == nil || depth < 0 || depth > b.Depth {
		return 0, false
	}
	if band < 0 || band >= levelWidth(b.Arity, depth) {
		return 0, false
	}

	s, ok := b.Shifts[flatIndex(b.Arity, depth, band)]
	return s, ok
}

// NumFlagged returns the number of selected nodes.
func (b *Basis) NumFlagged() int {
	if b == nil {
		return 0
	}

	count := 0
	for _, f := range b.Flags {
		if f {
			count++
		}
	}

	return count
}

// IsValidBasis reports whether b is a valid cut for a decomposition of n
// total samples: the basis depth is achievable for n, and every
// root-to-leaf path of the complete tree carries exactly one flagged
// node (no flagged node has a flagged ancestor, no path is uncovered).
func IsValidBasis(n int, b *Basis) bool {
	if b == nil || n <= 0 || b.Depth < 0 {
		return false
	}
	if b.Arity != 2 && b.Arity != 4 {
		return false
	}
	if levelWidth(b.Arity, b.Depth) > n {
		return false
	}
	if len(b.Flags) != treeSize(b.Arity, b.Depth) {
		return false
	}

	// Count flagged ancestors top-down; a valid cut sees exactly one on
	// every path and never two.
	covered := make([]uint8, len(b.Flags))
	if b.Flags[0] {
		covered[0] = 1
	}

	for d := 0; d < b.Depth; d++ {
		width := levelWidth(b.Arity, d)
		for band := 0; band < width; band++ {
			c := covered[flatIndex(b.Arity, d, band)]
			for j := 0; j < b.Arity; j++ {
				child := flatIndex(b.Arity, d+1, b.Arity*band+j)
				cc := c
				if b.Flags[child] {
					cc++
				}
				if cc > 1 {
					return false
				}
				covered[child] = cc
			}
		}
	}

	leafStart := flatIndex(b.Arity, b.Depth, 0)
	for _, c := range covered[leafStart:] {
		if c != 1 {
			return false
		}
	}

	return true
}

// BasisCoefficients extracts the selected nodes' coefficients as one
// vector, in ascending (depth, band) arena order. For an ordinary-mode
// tree the result has exactly t.Len() samples; redundant modes yield
// longer vectors. Shift-invariant trees are not supported here (their
// coefficients are addressed per variant).
func BasisCoefficients(t *Tree, b *Basis) ([]float64, error) {
	if t == nil || t.n == 0 {
		return nil, ErrEmptyInput
	}
	if t.mode == ModeShiftInvariant {
		return nil, fmt.Errorf("%w: shift-invariant extraction is per variant", ErrUnsupportedMode)
	}
	if b == nil || b.Depth != t.depth || b.Arity != t.arity || !IsValidBasis(t.n, b) {
		return nil, ErrInvalidBasis
	}

	total := 0
	for flat, on := range b.Flags {
		if on {
			total += len(t.nodes[flat])
		}
	}

	out := make([]float64, 0, total)
	for flat, on := range b.Flags {
		if on {
			out = append(out, t.nodes[flat]...)
		}
	}

	return out, nil
}
