package wpt

// decomposeAutocorrelation fills the arena with the redundant
// autocorrelation-shell transform: the two-sided shell pair derived from
// the tree filter is strided per level, nodes keep full length.
func decomposeAutocorrelation(t *Tree, x []float64) {
	shell := t.filter.Autocorrelation()
	t.nodes[0] = append([]float64(nil), x...)

	for d := 0; d < t.depth; d++ {
		width := levelWidth(2, d)
		stride := 1 << uint(d)
		for b := 0; b < width; b++ {
			parent := t.nodes[flatIndex(2, d, b)]
			approx := make([]float64, len(parent))
			detail := make([]float64, len(parent))
			shellStep(approx, detail, parent, shell, stride)
			t.nodes[flatIndex(2, d+1, 2*b)] = approx
			t.nodes[flatIndex(2, d+1, 2*b+1)] = detail
		}
	}
}
