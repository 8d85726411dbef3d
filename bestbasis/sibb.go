package bestbasis

import (
	"math"

	"github.com/cwbudde/algo-wavelet/wpt"
)

// siRecord is the resolved state of one (node, shift) variant: the best
// achievable cost of its subtree, whether the variant itself won, and
// if not, the phase whose children carry the minimum.
type siRecord struct {
	best  float64
	flag  bool
	phase int
}

// selectShiftInvariant extends the bottom-up comparison with the shift
// axis. A variant at depth d with shift m has up to two child pairs in
// the level below, one per expansion phase: both siblings with shift m
// (phase 0) or both with shift m+2^d (phase 1). Each variant resolves
// against the cheaper available pair; ties keep the variant itself, and
// between equally cheap phases the unshifted one wins. The selected
// nodes' shifts are recorded in Basis.Shifts.
func selectShiftInvariant(t *wpt.Tree, cfg config) *wpt.Basis {
	depth := t.Depth()
	nrm := l2norm(t.Variants(0, 0)[0].Coeffs)

	records := make([][]siRecord, t.NumNodes())

	for d := depth; d >= 0; d-- {
		width := wpt.LevelWidth(2, d)
		for band := 0; band < width; band++ {
			vs := t.Variants(d, band)
			if len(vs) == 0 {
				continue
			}

			var left, right []wpt.ShiftVariant
			var leftRecs, rightRecs []siRecord
			if d < depth {
				left = t.Variants(d+1, 2*band)
				right = t.Variants(d+1, 2*band+1)
				leftRecs = records[wpt.NodeIndex(2, d+1, 2*band)]
				rightRecs = records[wpt.NodeIndex(2, d+1, 2*band+1)]
			}

			recs := make([]siRecord, len(vs))
			for vi := range vs {
				v := &vs[vi]
				own := costValue(cfg.kind, v.Coeffs, nrm, cfg.normPower)
				rec := siRecord{best: own, flag: true}

				if !v.Leaf {
					children := math.Inf(1)
					phase := -1
					for p := 0; p <= 1; p++ {
						s := v.Shift + p*(1<<uint(d))
						li := findVariant(left, s)
						ri := findVariant(right, s)
						if li < 0 || ri < 0 {
							continue
						}
						if sum := leftRecs[li].best + rightRecs[ri].best; sum < children {
							children = sum
							phase = p
						}
					}
					if phase >= 0 && children < own {
						rec = siRecord{best: children, phase: phase}
					}
				}

				recs[vi] = rec
			}
			records[wpt.NodeIndex(2, d, band)] = recs
		}
	}

	basis := wpt.NewBasis(depth, 2)
	basis.Shifts = make(map[int]int)

	type frame struct{ d, band, shift int }
	stack := []frame{{0, 0, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		flat := wpt.NodeIndex(2, f.d, f.band)
		vi := findVariant(t.Variants(f.d, f.band), f.shift)
		if vi < 0 {
			continue
		}
		rec := records[flat][vi]
		if rec.flag {
			basis.SetFlag(f.d, f.band, true)
			basis.Shifts[flat] = f.shift
			continue
		}

		s := f.shift + rec.phase*(1<<uint(f.d))
		stack = append(stack,
			frame{f.d + 1, 2 * f.band, s},
			frame{f.d + 1, 2*f.band + 1, s})
	}

	return basis
}

// findVariant locates the variant carrying a shift in a node's list, or
// -1 when the shift was not retained.
func findVariant(vs []wpt.ShiftVariant, shift int) int {
	for i := range vs {
		if vs[i].Shift == shift {
			return i
		}
	}

	return -1
}
