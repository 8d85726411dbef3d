package wavelet

import "math"

// Shell is an autocorrelation-shell filter pair derived from a QMF pair.
// P and Q are symmetric two-sided filters of length 2m-1 (m = QMF length)
// with the zero-lag tap at index Center. They satisfy
//
//	P[k] + Q[k] = sqrt(2) * delta(k)
//
// exactly for orthonormal source filters, which makes the inverse of one
// autocorrelation transform step a plain rescaled sum of the two children.
type Shell struct {
	P      []float64
	Q      []float64
	Center int
}

// Autocorrelation derives the autocorrelation-shell pair of the filter:
//
//	a(k) = sum_i Lo[i] * Lo[i+|k|]
//	P[k] = a(k) / sqrt(2)
//	Q[k] = (-1)^k * a(k) / sqrt(2)
//
// For orthonormal Lo, a(0) = 1 and a(k) = 0 for even k != 0, so all
// non-center taps of P and Q cancel in their sum.
func (f Filter) Autocorrelation() Shell {
	m := len(f.Lo)
	if m == 0 {
		return Shell{}
	}

	// One-sided autocorrelation a(0..m-1).
	a := make([]float64, m)
	for k := 0; k < m; k++ {
		for i := 0; i+k < m; i++ {
			a[k] += f.Lo[i] * f.Lo[i+k]
		}
	}

	invSqrt2 := 1 / math.Sqrt2
	center := m - 1
	p := make([]float64, 2*m-1)
	q := make([]float64, 2*m-1)

	for k := -(m - 1); k <= m-1; k++ {
		abs := k
		if abs < 0 {
			abs = -abs
		}

		v := a[abs] * invSqrt2
		p[center+k] = v
		if abs%2 == 1 {
			v = -v
		}
		q[center+k] = v
	}

	return Shell{P: p, Q: q, Center: center}
}

// Length returns the number of taps per shell filter.
func (s Shell) Length() int { return len(s.P) }
