package wpt

// decomposeShiftInvariant grows the irregular shift-invariant tree. Every
// node variant is expanded along two decimation phases: the direct step
// keeps the inherited shift, the step of the one-advanced parent yields
// the shift raised by 2^depth. Sibling nodes therefore carry parallel
// variant lists, and a variant's children are found in both siblings
// under the same shift tag.
//
// The shift window bounds the depth below which phase-1 candidates spawn;
// with pruning enabled a phase is admitted only when its children's
// combined cost improves on the variant's own cost by more than the
// threshold. Variants with no admitted expansion keep Leaf set.
func decomposeShiftInvariant(t *Tree, x []float64, cfg config) {
	t.variants = make([][]ShiftVariant, treeSize(2, t.depth))
	t.variants[0] = []ShiftVariant{{
		Shift:  0,
		Coeffs: append([]float64(nil), x...),
		Leaf:   t.depth == 0,
	}}

	window := cfg.shiftWindow
	if window < 0 || window > t.depth {
		window = t.depth
	}
	cost := cfg.pruneCost
	if cost == nil {
		cost = l1Cost
	}

	for d := 0; d < t.depth; d++ {
		width := levelWidth(2, d)
		for b := 0; b < width; b++ {
			vs := t.variants[flatIndex(2, d, b)]
			for vi := range vs {
				t.expandVariant(&vs[vi], d, b, window, cfg.pruning, cfg.pruneThreshold, cost)
			}
		}
	}
}

// expandVariant tries both decimation phases of one variant and appends
// admitted children to the sibling nodes at depth d+1.
func (t *Tree) expandVariant(v *ShiftVariant, d, b, window int, pruning bool, threshold float64, cost CostFunc) {
	left := flatIndex(2, d+1, 2*b)
	right := flatIndex(2, d+1, 2*b+1)
	childLeaf := d+1 == t.depth
	expanded := false

	for phase := 0; phase <= 1; phase++ {
		if phase == 1 && d >= window {
			continue
		}

		src := v.Coeffs
		if phase == 1 {
			rotated := make([]float64, len(src))
			rotateLeft(rotated, src)
			src = rotated
		}

		half := len(src) / 2
		approx := make([]float64, half)
		detail := make([]float64, half)
		forwardStep(approx, detail, src, t.filter.Lo, t.filter.Hi)

		if pruning && cost(approx)+cost(detail) >= cost(v.Coeffs)-threshold {
			continue
		}

		shift := v.Shift + phase*(1<<uint(d))
		t.variants[left] = append(t.variants[left], ShiftVariant{Shift: shift, Coeffs: approx, Leaf: childLeaf})
		t.variants[right] = append(t.variants[right], ShiftVariant{Shift: shift, Coeffs: detail, Leaf: childLeaf})
		expanded = true
	}

	v.Leaf = !expanded
}
