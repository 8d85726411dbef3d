package wpt

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Decompose2D builds the quaternary packet tree of a 2-D signal by
// applying the 1-D step separably, rows first, then columns. Children per
// parent are ordered LL, LH, HL, HH: the first letter is the row-axis
// (horizontal) band, the second the column-axis (vertical) band. Node
// matrices are stored row-major; NodeDims reports per-depth dimensions.
//
// Only ModeOrdinary is supported in 2-D, and only the standard separable
// layout: other modes and WithNonstandard fail with ErrUnsupportedMode.
// Both dimensions must be divisible by 2^depth.
func Decompose2D(img [][]float64, f wavelet.Filter, depth int, mode Mode, opts ...Option) (*Tree, error) {
	rows := len(img)
	if rows == 0 || len(img[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(img[0])
	for i, row := range img {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrLengthMismatch, i, len(row), cols)
		}
	}
	if err := checkFilter(f); err != nil {
		return nil, err
	}
	if depth < 0 || depth >= 31 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if mode != ModeOrdinary {
		return nil, fmt.Errorf("%w: 2-D decomposition is ordinary-mode only", ErrUnsupportedMode)
	}
	if cfg := applyOptions(opts); cfg.nonstandard2D {
		return nil, fmt.Errorf("%w: non-standard 2-D layout", ErrUnsupportedMode)
	}
	if rows%(1<<uint(depth)) != 0 || cols%(1<<uint(depth)) != 0 {
		return nil, fmt.Errorf("%w: %dx%d, depth %d", ErrLengthMismatch, rows, cols, depth)
	}

	t := &Tree{
		mode:   ModeOrdinary,
		filter: f,
		depth:  depth,
		n:      rows * cols,
		rows:   rows,
		cols:   cols,
		arity:  4,
		nodes:  make([][]float64, treeSize(4, depth)),
	}

	root := make([]float64, rows*cols)
	for i, row := range img {
		copy(root[i*cols:], row)
	}
	t.nodes[0] = root

	for d := 0; d < depth; d++ {
		width := levelWidth(4, d)
		r, c := rows>>uint(d), cols>>uint(d)
		quad := (r / 2) * (c / 2)
		for b := 0; b < width; b++ {
			parent := t.nodes[flatIndex(4, d, b)]
			children := make([]float64, 4*quad)
			ll := children[:quad]
			lh := children[quad : 2*quad]
			hl := children[2*quad : 3*quad]
			hh := children[3*quad:]
			forwardStep2D(ll, lh, hl, hh, parent, r, c, f.Lo, f.Hi)
			base := flatIndex(4, d+1, 4*b)
			t.nodes[base] = ll
			t.nodes[base+1] = lh
			t.nodes[base+2] = hl
			t.nodes[base+3] = hh
		}
	}

	return t, nil
}

// Inverse2D reconstructs the original 2-D signal from the deepest level
// of a quaternary tree. Exact for orthonormal filters.
func Inverse2D(t *Tree) ([][]float64, error) {
	if t == nil || t.n == 0 {
		return nil, ErrEmptyInput
	}
	if t.arity != 4 {
		return nil, fmt.Errorf("%w: use Inverse for binary trees", ErrUnsupportedMode)
	}

	level := make([][]float64, levelWidth(4, t.depth))
	copy(level, t.Level(t.depth))

	for d := t.depth; d > 0; d-- {
		r, c := t.rows>>uint(d-1), t.cols>>uint(d-1)
		parents := make([][]float64, levelWidth(4, d-1))
		for b := range parents {
			parent := make([]float64, r*c)
			inverseStep2D(parent, level[4*b], level[4*b+1], level[4*b+2], level[4*b+3], r, c, t.filter.Lo, t.filter.Hi)
			parents[b] = parent
		}
		level = parents
	}

	flat := level[0]
	out := make([][]float64, t.rows)
	for i := range out {
		out[i] = append([]float64(nil), flat[i*t.cols:(i+1)*t.cols]...)
	}

	return out, nil
}

// forwardStep2D splits a row-major r x c parent into four r/2 x c/2
// quadrants: rows are filtered and downsampled first, then the columns of
// each half.
func forwardStep2D(ll, lh, hl, hh, parent []float64, r, c int, lo, hi []float64) {
	hr, hc := r/2, c/2

	lowRows := make([]float64, r*hc)
	highRows := make([]float64, r*hc)
	rowA := make([]float64, hc)
	rowD := make([]float64, hc)
	for i := 0; i < r; i++ {
		forwardStep(rowA, rowD, parent[i*c:(i+1)*c], lo, hi)
		copy(lowRows[i*hc:], rowA)
		copy(highRows[i*hc:], rowD)
	}

	colBuf := make([]float64, r)
	colA := make([]float64, hr)
	colD := make([]float64, hr)
	for j := 0; j < hc; j++ {
		for i := 0; i < r; i++ {
			colBuf[i] = lowRows[i*hc+j]
		}
		forwardStep(colA, colD, colBuf, lo, hi)
		for i := 0; i < hr; i++ {
			ll[i*hc+j] = colA[i]
			lh[i*hc+j] = colD[i]
		}

		for i := 0; i < r; i++ {
			colBuf[i] = highRows[i*hc+j]
		}
		forwardStep(colA, colD, colBuf, lo, hi)
		for i := 0; i < hr; i++ {
			hl[i*hc+j] = colA[i]
			hh[i*hc+j] = colD[i]
		}
	}
}

// inverseStep2D rebuilds a zeroed row-major r x c parent from its four
// quadrants, inverting columns first, then rows.
func inverseStep2D(parent, ll, lh, hl, hh []float64, r, c int, lo, hi []float64) {
	hr, hc := r/2, c/2

	lowRows := make([]float64, r*hc)
	highRows := make([]float64, r*hc)
	colBuf := make([]float64, r)
	colA := make([]float64, hr)
	colD := make([]float64, hr)
	for j := 0; j < hc; j++ {
		for i := 0; i < hr; i++ {
			colA[i] = ll[i*hc+j]
			colD[i] = lh[i*hc+j]
		}
		zero(colBuf)
		inverseStep(colBuf, colA, colD, lo, hi)
		for i := 0; i < r; i++ {
			lowRows[i*hc+j] = colBuf[i]
		}

		for i := 0; i < hr; i++ {
			colA[i] = hl[i*hc+j]
			colD[i] = hh[i*hc+j]
		}
		zero(colBuf)
		inverseStep(colBuf, colA, colD, lo, hi)
		for i := 0; i < r; i++ {
			highRows[i*hc+j] = colBuf[i]
		}
	}

	for i := 0; i < r; i++ {
		inverseStep(parent[i*c:(i+1)*c], lowRows[i*hc:(i+1)*hc], highRows[i*hc:(i+1)*hc], lo, hi)
	}
}

func zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
