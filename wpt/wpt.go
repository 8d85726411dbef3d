package wpt

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Decompose builds the wavelet packet tree of a 1-D signal down to the
// given depth. The signal length must be divisible by 2^depth so that
// every level halves evenly (redundant modes keep full length but share
// the same alignment requirement); shift-invariant mode additionally
// requires 2^depth <= len(x). The input is copied, never retained.
func Decompose(x []float64, f wavelet.Filter, depth int, mode Mode, opts ...Option) (*Tree, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	if depth < 0 || depth >= 63 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if mode == ModeShiftInvariant && 1<<uint(depth) > n {
		return nil, fmt.Errorf("%w: depth %d exceeds log2 of length %d", ErrInvalidDepth, depth, n)
	}
	if n%(1<<uint(depth)) != 0 {
		return nil, fmt.Errorf("%w: length %d, depth %d", ErrLengthMismatch, n, depth)
	}

	t := &Tree{mode: mode, filter: f, depth: depth, n: n, arity: 2}

	switch mode {
	case ModeOrdinary:
		t.nodes = make([][]float64, treeSize(2, depth))
		decomposeOrdinary(t, x)
	case ModeStationary:
		t.nodes = make([][]float64, treeSize(2, depth))
		decomposeStationary(t, x)
	case ModeAutocorrelation:
		t.nodes = make([][]float64, treeSize(2, depth))
		decomposeAutocorrelation(t, x)
	case ModeShiftInvariant:
		decomposeShiftInvariant(t, x, applyOptions(opts))
	default:
		return nil, fmt.Errorf("%w: mode %d", ErrUnsupportedMode, mode)
	}

	return t, nil
}

func checkFilter(f wavelet.Filter) error {
	if len(f.Lo) == 0 || len(f.Lo)%2 != 0 || len(f.Hi) != len(f.Lo) {
		return ErrInvalidFilter
	}

	return nil
}

func decomposeOrdinary(t *Tree, x []float64) {
	t.nodes[0] = append([]float64(nil), x...)

	for d := 0; d < t.depth; d++ {
		width := levelWidth(2, d)
		for b := 0; b < width; b++ {
			parent := t.nodes[flatIndex(2, d, b)]
			half := len(parent) / 2
			approx := make([]float64, half)
			detail := make([]float64, half)
			forwardStep(approx, detail, parent, t.filter.Lo, t.filter.Hi)
			t.nodes[flatIndex(2, d+1, 2*b)] = approx
			t.nodes[flatIndex(2, d+1, 2*b+1)] = detail
		}
	}
}

// Inverse reconstructs the original signal from the deepest level of a
// dense 1-D tree. Exact to machine precision for every orthonormal
// catalog filter in every dense mode.
func Inverse(t *Tree) ([]float64, error) {
	if t == nil || t.n == 0 {
		return nil, ErrEmptyInput
	}
	if t.mode == ModeShiftInvariant {
		return nil, fmt.Errorf("%w: shift-invariant trees have no inverse", ErrUnsupportedMode)
	}
	if t.arity != 2 {
		return nil, fmt.Errorf("%w: use Inverse2D for quaternary trees", ErrUnsupportedMode)
	}

	level := make([][]float64, levelWidth(2, t.depth))
	copy(level, t.Level(t.depth))

	for d := t.depth; d > 0; d-- {
		parents := make([][]float64, levelWidth(2, d-1))
		for b := range parents {
			parents[b] = inverseNode(t, d-1, level[2*b], level[2*b+1])
		}
		level = parents
	}

	if t.depth == 0 {
		return append([]float64(nil), level[0]...), nil
	}

	return level[0], nil
}

// inverseNode rebuilds the parent at parentDepth from its two children,
// using the step family matching the tree mode.
func inverseNode(t *Tree, parentDepth int, approx, detail []float64) []float64 {
	switch t.mode {
	case ModeStationary:
		dst := make([]float64, len(approx))
		atrousInverseStep(dst, approx, detail, t.filter.Lo, t.filter.Hi, 1<<uint(parentDepth))
		return dst
	case ModeAutocorrelation:
		dst := make([]float64, len(approx))
		shellInverseStep(dst, approx, detail)
		return dst
	default:
		dst := make([]float64, 2*len(approx))
		inverseStep(dst, approx, detail, t.filter.Lo, t.filter.Hi)
		return dst
	}
}

// Reconstruct rebuilds the signal from an arbitrary valid basis cut of a
// dense 1-D tree: flagged nodes seed their positions and are combined
// upward level by level until the root is reached.
func Reconstruct(t *Tree, b *Basis) ([]float64, error) {
	if t == nil || t.n == 0 {
		return nil, ErrEmptyInput
	}
	if t.mode == ModeShiftInvariant {
		return nil, fmt.Errorf("%w: shift-invariant trees have no inverse", ErrUnsupportedMode)
	}
	if t.arity != 2 {
		return nil, fmt.Errorf("%w: basis reconstruction is 1-D only", ErrUnsupportedMode)
	}
	if b == nil || b.Depth != t.depth || b.Arity != t.arity || !IsValidBasis(t.n, b) {
		return nil, ErrInvalidBasis
	}

	arena := make([][]float64, treeSize(2, t.depth))
	for flat, on := range b.Flags {
		if on {
			arena[flat] = t.nodes[flat]
		}
	}

	for d := t.depth; d > 0; d-- {
		width := levelWidth(2, d)
		for band := 0; band < width; band += 2 {
			left := arena[flatIndex(2, d, band)]
			right := arena[flatIndex(2, d, band+1)]
			if left == nil && right == nil {
				continue
			}
			if left == nil || right == nil {
				return nil, ErrInvalidBasis
			}
			parent := flatIndex(2, d-1, band/2)
			if arena[parent] != nil {
				return nil, ErrInvalidBasis
			}
			arena[parent] = inverseNode(t, d-1, left, right)
		}
	}

	if arena[0] == nil {
		return nil, ErrInvalidBasis
	}
	if b.Flags[0] {
		return append([]float64(nil), arena[0]...), nil
	}

	return arena[0], nil
}
