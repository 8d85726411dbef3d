package bestbasis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-wavelet/wpt"
)

// selectLeastDependent resolves the cut on decorrelated coordinates: at
// every node position the ensemble's coefficient vectors are rotated
// onto the eigenvectors of their second-moment matrix, and the node is
// priced as the summed per-coordinate cost of the rotated values across
// the ensemble. Decorrelation minimizes the cross-signal dependence the
// entropy measures, and the rotations of the selected nodes are kept in
// Basis.Rotations so the joint representation can be reproduced.
func selectLeastDependent(trees []*wpt.Tree, cfg config) *wpt.Basis {
	first := trees[0]
	depth := first.Depth()
	arity := first.Arity()

	costs := make([]float64, first.NumNodes())
	rotations := make([]*mat.Dense, len(costs))

	for d := 0; d <= depth; d++ {
		width := wpt.LevelWidth(arity, d)
		for band := 0; band < width; band++ {
			flat := wpt.NodeIndex(arity, d, band)
			costs[flat], rotations[flat] = decorrelatedCost(trees, d, band, cfg)
		}
	}

	basis := selectCosts(costs, depth, arity)
	basis.Rotations = make(map[int]*mat.Dense)
	for flat, on := range basis.Flags {
		if on && rotations[flat] != nil {
			basis.Rotations[flat] = rotations[flat]
		}
	}

	return basis
}

// decorrelatedCost rotates one node position across the ensemble and
// sums the per-coordinate costs of the rotated coefficients. The
// returned rotation has the eigenvectors of the node's second-moment
// matrix as columns; coordinate j of signal i is row i, column j of
// A*V. A nil rotation means factorization failed and the node was
// priced unrotated.
func decorrelatedCost(trees []*wpt.Tree, d, band int, cfg config) (float64, *mat.Dense) {
	n := len(trees)
	length := len(trees[0].Node(d, band))

	signals := mat.NewDense(n, length, nil)
	for i, t := range trees {
		signals.SetRow(i, t.Node(d, band))
	}

	var moment mat.SymDense
	moment.SymOuterK(1/float64(n), signals.T())

	var eig mat.EigenSym
	if !eig.Factorize(&moment, true) {
		return coordinateCost(cfg, signals, n, length), nil
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	var rotated mat.Dense
	rotated.Mul(signals, &vectors)

	return coordinateCost(cfg, &rotated, n, length), &vectors
}

// coordinateCost sums the cost of each coordinate column across the
// ensemble rows.
func coordinateCost(cfg config, m *mat.Dense, rows, cols int) float64 {
	col := make([]float64, rows)
	cost := 0.0
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		cost += costSelf(cfg, col)
	}

	return cost
}
