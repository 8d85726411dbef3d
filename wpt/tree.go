package wpt

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Mode selects the decomposition family.
type Mode int

const (
	// ModeOrdinary is the critically downsampled packet transform:
	// coefficient length halves per depth, binary tree.
	ModeOrdinary Mode = iota

	// ModeStationary keeps full-length coefficients at every depth and
	// dilates the filters per level instead of downsampling (a trous).
	ModeStationary

	// ModeAutocorrelation is the redundant transform built on the
	// autocorrelation-shell filter pair; full-length at every depth.
	ModeAutocorrelation

	// ModeShiftInvariant adaptively expands nodes across circular-shift
	// candidates, producing an irregular tree with per-node shift tags.
	ModeShiftInvariant
)

// Tree is a wavelet packet decomposition: an arena of coefficient arrays
// addressed by (depth, band) with band in natural (Paley) order. Trees are
// produced by the Decompose functions and are read-only afterwards; they
// may be shared freely across goroutines.
//
// For the three dense modes every node of the complete tree is present.
// For ModeShiftInvariant the node arena is empty and the per-node shift
// variants are exposed through Variants.
type Tree struct {
	mode   Mode
	filter wavelet.Filter
	depth  int
	n      int // total samples: signal length, or rows*cols in 2-D
	rows   int // 2-D only, 0 otherwise
	cols   int
	arity  int // 2 for 1-D, 4 for 2-D

	nodes    [][]float64
	variants [][]ShiftVariant // flat-indexed; ModeShiftInvariant only
}

// ShiftVariant is one retained decomposition of a shift-invariant tree
// node. Shift is the accumulated circular advance of the source signal
// that produced Coeffs; at depth d it lies in [0, 2^d). Leaf marks a
// variant whose expansion was not admitted.
type ShiftVariant struct {
	Shift  int
	Coeffs []float64
	Leaf   bool
}

// Mode returns the decomposition family of the tree.
func (t *Tree) Mode() Mode { return t.mode }

// Depth returns the maximum decomposition depth.
func (t *Tree) Depth() int { return t.depth }

// Len returns the total sample count of the decomposed input
// (signal length in 1-D, rows*cols in 2-D).
func (t *Tree) Len() int { return t.n }

// Dims returns the input dimensions of a 2-D tree, or (0, 0) for 1-D.
func (t *Tree) Dims() (rows, cols int) { return t.rows, t.cols }

// Arity returns the tree fan-out: 2 for 1-D trees, 4 for 2-D.
func (t *Tree) Arity() int { return t.arity }

// Filter returns the filter pair the tree was decomposed with.
func (t *Tree) Filter() wavelet.Filter { return t.filter }

// NumNodes returns the node count of the complete tree arena.
func (t *Tree) NumNodes() int { return treeSize(t.arity, t.depth) }

// Node returns the coefficient array at (depth, band), or nil if the
// position is out of range or the tree is shift-invariant. The slice
// aliases tree storage and must not be modified.
func (t *Tree) Node(depth, band int) []float64 {
	if t.nodes == nil || depth < 0 || depth > t.depth {
		return nil
	}
	if band < 0 || band >= levelWidth(t.arity, depth) {
		return nil
	}

	return t.nodes[flatIndex(t.arity, depth, band)]
}

// Level returns the coefficient arrays of every node at one depth, in
// band order. The slices alias tree storage.
func (t *Tree) Level(depth int) [][]float64 {
	if t.nodes == nil || depth < 0 || depth > t.depth {
		return nil
	}

	start := flatIndex(t.arity, depth, 0)
	return t.nodes[start : start+levelWidth(t.arity, depth)]
}

// NodeDims returns the per-node matrix dimensions at a depth of a 2-D
// tree, or (0, 0) for 1-D trees.
func (t *Tree) NodeDims(depth int) (rows, cols int) {
	if t.arity != 4 || depth < 0 || depth > t.depth {
		return 0, 0
	}

	return t.rows >> depth, t.cols >> depth
}

// Variants returns the retained shift variants at (depth, band) of a
// shift-invariant tree, or nil for dense trees and absent nodes. Sibling
// nodes always carry parallel variant lists (same shifts, same order).
func (t *Tree) Variants(depth, band int) []ShiftVariant {
	if t.variants == nil || depth < 0 || depth > t.depth {
		return nil
	}
	if band < 0 || band >= levelWidth(2, depth) {
		return nil
	}

	return t.variants[flatIndex(2, depth, band)]
}

// --- flat arena index calculus ---

// NodeIndex returns the flat arena position of node (depth, band): nodes
// are stored level by level with bands ascending. Basis.Flags,
// Basis.Shifts and Basis.Rotations all use this ordering.
func NodeIndex(arity, depth, band int) int {
	return flatIndex(arity, depth, band)
}

// LevelWidth returns the node count at one depth of a complete tree,
// arity^depth.
func LevelWidth(arity, depth int) int {
	return levelWidth(arity, depth)
}

// flatIndex maps (depth, band) to the arena position: 2^d - 1 + band for
// binary trees, (4^d - 1)/3 + band for quaternary.
func flatIndex(arity, depth, band int) int {
	if arity == 4 {
		return (1<<(2*uint(depth))-1)/3 + band
	}

	return 1<<uint(depth) - 1 + band
}

// levelWidth returns the node count of one level.
func levelWidth(arity, depth int) int {
	if arity == 4 {
		return 1 << (2 * uint(depth))
	}

	return 1 << uint(depth)
}

// treeSize returns the node count of a complete tree of the given depth.
func treeSize(arity, depth int) int {
	return flatIndex(arity, depth+1, 0)
}

// InferDepth returns the depth of the complete binary tree with the given
// node count. The count must equal 2^(depth+1) - 1 for some depth >= 0;
// any other value cannot reconcile with a complete tree and fails with
// ErrTreeShape.
func InferDepth(nodeCount int) (int, error) {
	for d := 0; d < 62; d++ {
		size := 1<<uint(d+1) - 1
		if size == nodeCount {
			return d, nil
		}
		if size > nodeCount {
			break
		}
	}

	return 0, fmt.Errorf("%w: %d nodes", ErrTreeShape, nodeCount)
}

// ValidateNodeCount checks a node count against a claimed binary tree
// depth. A depth the count cannot reach at all (fewer nodes than a single
// root-to-depth chain plus its leaf level, 2^depth > nodeCount+1) is a
// malformed argument and fails with ErrDepthUnreachable. A reachable
// depth whose complete tree size 2^(depth+1) - 1 still disagrees with the
// count means the caller's bookkeeping contradicts itself and fails with
// ErrTreeShape.
func ValidateNodeCount(nodeCount, depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if depth >= 63 || 1<<uint(depth) > nodeCount+1 {
		return fmt.Errorf("%w: %d nodes, depth %d", ErrDepthUnreachable, nodeCount, depth)
	}
	if nodeCount != 1<<uint(depth+1)-1 {
		return fmt.Errorf("%w: %d nodes for depth %d", ErrTreeShape, nodeCount, depth)
	}

	return nil
}

// MaxDepth returns the deepest decomposition depth a signal length
// supports: the largest d with n divisible by 2^d. Returns 0 for n <= 0.
func MaxDepth(n int) int {
	if n <= 0 {
		return 0
	}

	d := 0
	for n%2 == 0 {
		n /= 2
		d++
	}

	return d
}
