package bestbasis

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/wpt"
)

// Method enumerates the selection algorithms.
type Method int

const (
	// MethodBB is the single-tree best basis.
	MethodBB Method = iota

	// MethodJBB is the joint best basis over an ensemble of trees.
	MethodJBB

	// MethodLSDB is the least statistically dependent basis over an
	// ensemble of trees.
	MethodLSDB

	// MethodSIBB is the best basis of a shift-invariant tree.
	MethodSIBB
)

// Select picks the minimum-cost basis cut of one decomposition tree.
//
// MethodBB works on the dense modes: ordinary, stationary,
// autocorrelation and 2-D trees. The redundant modes are handled
// positionally, costs computed per node regardless of overlapping
// sample support; the returned cut satisfies the same validity
// invariant either way. MethodSIBB works on shift-invariant trees and
// records the chosen shift of every selected node in Basis.Shifts.
//
// The ensemble methods go through SelectEnsemble and fail here with
// ErrInvalidMethod.
func Select(t *wpt.Tree, method Method, opts ...Option) (*wpt.Basis, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyInput
	}

	cfg := applyOptions(opts)

	switch method {
	case MethodBB:
		if t.Mode() == wpt.ModeShiftInvariant {
			return nil, fmt.Errorf("%w: shift-invariant tree needs MethodSIBB", ErrWrongTreeMode)
		}
		return selectDense(t, cfg), nil

	case MethodSIBB:
		if t.Mode() != wpt.ModeShiftInvariant {
			return nil, fmt.Errorf("%w: MethodSIBB needs a shift-invariant tree", ErrWrongTreeMode)
		}
		return selectShiftInvariant(t, cfg), nil

	case MethodJBB, MethodLSDB:
		return nil, fmt.Errorf("%w: ensemble method, use SelectEnsemble", ErrInvalidMethod)
	}

	return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, int(method))
}

// selectDense prices every node of a complete arena against the root
// norm and resolves the optimal cut.
func selectDense(t *wpt.Tree, cfg config) *wpt.Basis {
	depth := t.Depth()
	arity := t.Arity()
	nrm := l2norm(t.Node(0, 0))

	costs := make([]float64, t.NumNodes())
	for d := 0; d <= depth; d++ {
		width := wpt.LevelWidth(arity, d)
		for band := 0; band < width; band++ {
			costs[wpt.NodeIndex(arity, d, band)] = costValue(cfg.kind, t.Node(d, band), nrm, cfg.normPower)
		}
	}

	return selectCosts(costs, depth, arity)
}

// selectCosts runs the bottom-up comparison over precomputed per-node
// costs. Iteration is level-indexed, deepest first: a node's resolved
// cost is the cheaper of its own cost and the sum of its children's
// resolved costs, with ties kept on the node itself. A second, top-down
// sweep materializes the cut by flagging the shallowest winning node of
// every path.
func selectCosts(costs []float64, depth, arity int) *wpt.Basis {
	best := make([]float64, len(costs))
	mark := make([]bool, len(costs))

	for d := depth; d >= 0; d-- {
		width := wpt.LevelWidth(arity, d)
		for band := 0; band < width; band++ {
			flat := wpt.NodeIndex(arity, d, band)
			if d == depth {
				best[flat] = costs[flat]
				mark[flat] = true
				continue
			}

			children := 0.0
			for j := 0; j < arity; j++ {
				children += best[wpt.NodeIndex(arity, d+1, arity*band+j)]
			}
			if costs[flat] <= children {
				best[flat] = costs[flat]
				mark[flat] = true
			} else {
				best[flat] = children
			}
		}
	}

	basis := wpt.NewBasis(depth, arity)
	covered := make([]bool, len(costs))
	for d := 0; d <= depth; d++ {
		width := wpt.LevelWidth(arity, d)
		for band := 0; band < width; band++ {
			flat := wpt.NodeIndex(arity, d, band)
			on := !covered[flat] && mark[flat]
			if on {
				basis.SetFlag(d, band, true)
			}
			if d == depth {
				continue
			}
			below := covered[flat] || on
			for j := 0; j < arity; j++ {
				covered[wpt.NodeIndex(arity, d+1, arity*band+j)] = below
			}
		}
	}

	return basis
}
