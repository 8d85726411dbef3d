package wpt

// decomposeStationary fills the arena without downsampling: every node
// keeps the full signal length and the filter taps stride by 2^depth of
// the parent level instead.
func decomposeStationary(t *Tree, x []float64) {
	t.nodes[0] = append([]float64(nil), x...)

	for d := 0; d < t.depth; d++ {
		width := levelWidth(2, d)
		stride := 1 << uint(d)
		for b := 0; b < width; b++ {
			parent := t.nodes[flatIndex(2, d, b)]
			approx := make([]float64, len(parent))
			detail := make([]float64, len(parent))
			atrousStep(approx, detail, parent, t.filter.Lo, t.filter.Hi, stride)
			t.nodes[flatIndex(2, d+1, 2*b)] = approx
			t.nodes[flatIndex(2, d+1, 2*b+1)] = detail
		}
	}
}
