// Package bestbasis searches wavelet packet trees for the basis cut
// that minimizes an additive cost functional.
//
// The search is the classic bottom-up comparison: starting from the
// deepest level, every node's own cost is weighed against the resolved
// best cost of its children, and the cheaper side wins; ties keep the
// parent, preferring fewer, coarser basis elements. Four methods share
// this recursion:
//
//   - MethodBB selects over a single dense tree (ordinary, stationary,
//     autocorrelation or 2-D).
//   - MethodSIBB selects over a shift-invariant tree, additionally
//     choosing the best shift variant per node and tagging each selected
//     node with the shift it came from.
//   - MethodJBB selects one basis jointly for an ensemble of trees by
//     costing the per-position RMS of the ensemble's coefficients.
//   - MethodLSDB also selects over an ensemble, but first rotates each
//     node's coefficients into decorrelated coordinates and prices those;
//     the rotations of the selected nodes travel with the basis.
//
// # Usage
//
//	t, _ := wpt.Decompose(x, f, 4, wpt.ModeOrdinary)
//	basis, err := bestbasis.Select(t, bestbasis.MethodBB,
//		bestbasis.WithCost(bestbasis.CostShannon))
//	if err != nil { ... }
//	y, _ := wpt.Reconstruct(t, basis)
//
// Selection is a pure function of its inputs: trees are only read, and
// repeated runs on identical input return identical bases.
package bestbasis
