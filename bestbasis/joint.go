package bestbasis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/wpt"
)

// SelectEnsemble picks one basis shared by every tree of an ensemble.
// The trees must come from equal-length signals decomposed identically:
// same depth, mode and arity, any dense mode. A single valid cut is
// returned regardless of ensemble size.
//
// MethodJBB aggregates the ensemble into one coefficient map, the
// per-position root mean square across signals, and resolves the cut on
// that map. MethodLSDB instead decorrelates each node position across
// the ensemble before costing; see the package documentation. The
// single-tree methods fail here with ErrInvalidMethod.
func SelectEnsemble(trees []*wpt.Tree, method Method, opts ...Option) (*wpt.Basis, error) {
	if len(trees) == 0 {
		return nil, ErrEmptyInput
	}
	for _, t := range trees {
		if t == nil || t.Len() == 0 {
			return nil, ErrEmptyInput
		}
	}

	first := trees[0]
	if first.Mode() == wpt.ModeShiftInvariant {
		return nil, fmt.Errorf("%w: ensemble selection needs dense trees", ErrWrongTreeMode)
	}
	for _, t := range trees[1:] {
		if t.Len() != first.Len() || t.Depth() != first.Depth() ||
			t.Mode() != first.Mode() || t.Arity() != first.Arity() {
			return nil, ErrEnsembleShape
		}
	}

	cfg := applyOptions(opts)

	switch method {
	case MethodJBB:
		return selectJoint(trees, cfg), nil

	case MethodLSDB:
		if !cfg.kindSet {
			cfg.kind = CostDifferentialEntropy
		}
		return selectLeastDependent(trees, cfg), nil

	case MethodBB, MethodSIBB:
		return nil, fmt.Errorf("%w: single-tree method, use Select", ErrInvalidMethod)
	}

	return nil, fmt.Errorf("%w: %d", ErrInvalidMethod, int(method))
}

// selectJoint reduces the ensemble to one aggregate tree, position by
// position the RMS of the signals' coefficients, and resolves the cut
// on it with the usual root-normalized costing. An ensemble of copies
// of one signal degenerates to that signal's own best basis.
func selectJoint(trees []*wpt.Tree, cfg config) *wpt.Basis {
	first := trees[0]
	depth := first.Depth()
	arity := first.Arity()
	inv := 1.0 / float64(len(trees))

	agg := make([][]float64, first.NumNodes())
	for d := 0; d <= depth; d++ {
		width := wpt.LevelWidth(arity, d)
		for band := 0; band < width; band++ {
			m := make([]float64, len(first.Node(d, band)))
			for _, t := range trees {
				for j, x := range t.Node(d, band) {
					m[j] += x * x
				}
			}
			for j := range m {
				m[j] = math.Sqrt(m[j] * inv)
			}
			agg[wpt.NodeIndex(arity, d, band)] = m
		}
	}

	nrm := l2norm(agg[0])
	costs := make([]float64, len(agg))
	for flat, node := range agg {
		costs[flat] = costValue(cfg.kind, node, nrm, cfg.normPower)
	}

	return selectCosts(costs, depth, arity)
}
