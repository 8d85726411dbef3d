package wpt

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// One-step transforms shared by every decomposition mode. All steps use
// periodic boundary extension: tap indices wrap modulo the vector length,
// so the transforms are exact on circularly extended signals and the
// inverse steps undo the wrap to machine precision.

// forwardStep filters v into critically downsampled approximation and
// detail halves:
//
//	approx[i] = sum_t lo[t] * v[(2i+t) mod n]
//	detail[i] = sum_t hi[t] * v[(2i+t) mod n]
//
// len(v) must be even; approx and detail receive len(v)/2 values each.
func forwardStep(approx, detail, v, lo, hi []float64) {
	n := len(v)
	m := len(lo)

	for i := range approx {
		var a, d float64
		for t := 0; t < m; t++ {
			x := v[(2*i+t)%n]
			a += lo[t] * x
			d += hi[t] * x
		}
		approx[i] = a
		detail[i] = d
	}
}

// inverseStep overlap-adds the transposed taps, rebuilding the parent
// vector from its two halves. dst must be zeroed and twice the child
// length. Exact inverse of forwardStep for orthonormal pairs.
func inverseStep(dst, approx, detail, lo, hi []float64) {
	n := len(dst)
	m := len(lo)

	for i := range approx {
		a := approx[i]
		d := detail[i]
		for t := 0; t < m; t++ {
			dst[(2*i+t)%n] += lo[t]*a + hi[t]*d
		}
	}
}

// atrousStep filters without downsampling, striding the taps by the level
// dilation (stride = 2^depth). Children keep the parent's full length.
func atrousStep(approx, detail, v, lo, hi []float64, stride int) {
	n := len(v)
	m := len(lo)

	for i := 0; i < n; i++ {
		var a, d float64
		for t := 0; t < m; t++ {
			x := v[(i+stride*t)%n]
			a += lo[t] * x
			d += hi[t] * x
		}
		approx[i] = a
		detail[i] = d
	}
}

// atrousInverseStep rebuilds a stationary parent from full-length
// children. The dilated analysis pair tiles the spectrum twice over
// (|H|^2 + |G|^2 = 2), so half the transposed sum restores the parent
// exactly. dst must be zeroed.
func atrousInverseStep(dst, approx, detail, lo, hi []float64, stride int) {
	n := len(dst)
	m := len(lo)

	for i := 0; i < n; i++ {
		a := approx[i]
		d := detail[i]
		for t := 0; t < m; t++ {
			dst[(i+stride*t)%n] += lo[t]*a + hi[t]*d
		}
	}

	vecmath.ScaleBlockInPlace(dst, 0.5)
}

// shellStep filters with the two-sided autocorrelation pair, centered and
// dilated, without downsampling.
func shellStep(approx, detail, v []float64, s wavelet.Shell, stride int) {
	n := len(v)
	m := len(s.P)

	for i := 0; i < n; i++ {
		var a, d float64
		for j := 0; j < m; j++ {
			x := v[wrap(i+(j-s.Center)*stride, n)]
			a += s.P[j] * x
			d += s.Q[j] * x
		}
		approx[i] = a
		detail[i] = d
	}
}

// shellInverseStep rebuilds an autocorrelation parent. The shell pair
// sums to sqrt(2) at the center tap and cancels everywhere else, so the
// inverse collapses to a rescaled sum of the children.
func shellInverseStep(dst, approx, detail []float64) {
	vecmath.AddBlock(dst, approx, detail)
	vecmath.ScaleBlockInPlace(dst, 1/math.Sqrt2)
}

// rotateLeft writes v advanced by one position into dst:
// dst[i] = v[(i+1) mod n].
func rotateLeft(dst, v []float64) {
	n := len(v)
	for i := 0; i < n-1; i++ {
		dst[i] = v[i+1]
	}
	if n > 0 {
		dst[n-1] = v[0]
	}
}

// wrap reduces an index into [0, n) for offsets that may be negative.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
