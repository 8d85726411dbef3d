package wavelet

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// analyzeFFTSize is the frequency grid used for QMF response sampling.
// Filter pairs are short (<= 16 taps), so 256 bins oversample the response
// well past any feature of interest.
const analyzeFFTSize = 256

// Analysis holds numerically computed properties of a filter pair.
type Analysis struct {
	// Sum is the scaling filter tap sum; sqrt(2) for an orthonormal filter.
	Sum float64
	// Energy is the scaling filter energy sum(Lo^2); 1 for orthonormal.
	Energy float64
	// QMFErrorMax is max over the frequency grid of
	// | |H(w)|^2 + |G(w)|^2 - 2 |, the power-complementarity residual.
	QMFErrorMax float64
	// OrthogonalityErrorMax is the largest deviation of the even-shift
	// inner products sum_i Lo[i]*Lo[i+2j] from delta(j).
	OrthogonalityErrorMax float64
}

// Analyze numerically verifies the quadrature mirror properties of a
// filter pair. For every catalog entry all error fields are at floating
// point noise level; for Custom pairs they quantify how far the supplied
// scaling filter is from orthonormality.
func Analyze(f Filter) Analysis {
	m := len(f.Lo)
	if m == 0 || len(f.Hi) != m {
		return Analysis{}
	}

	a := Analysis{
		Sum:    vecmath.Sum(f.Lo),
		Energy: vecmath.DotProduct(f.Lo, f.Lo),
	}

	// Even-shift orthogonality in the tap domain.
	for j := 0; 2*j < m; j++ {
		dot := vecmath.DotProduct(f.Lo[:m-2*j], f.Lo[2*j:])
		want := 0.0
		if j == 0 {
			want = 1.0
		}
		if dev := math.Abs(dot - want); dev > a.OrthogonalityErrorMax {
			a.OrthogonalityErrorMax = dev
		}
	}

	// Power complementarity on a dense frequency grid.
	plan, err := algofft.NewPlan64(analyzeFFTSize)
	if err != nil {
		return a
	}

	loPad := make([]complex128, analyzeFFTSize)
	hiPad := make([]complex128, analyzeFFTSize)
	for i := 0; i < m; i++ {
		loPad[i] = complex(f.Lo[i], 0)
		hiPad[i] = complex(f.Hi[i], 0)
	}

	loF := make([]complex128, analyzeFFTSize)
	hiF := make([]complex128, analyzeFFTSize)
	if err := plan.Forward(loF, loPad); err != nil {
		return a
	}
	if err := plan.Forward(hiF, hiPad); err != nil {
		return a
	}

	re := make([]float64, analyzeFFTSize)
	im := make([]float64, analyzeFFTSize)
	loPow := make([]float64, analyzeFFTSize)
	hiPow := make([]float64, analyzeFFTSize)

	for i, c := range loF {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Power(loPow, re, im)

	for i, c := range hiF {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Power(hiPow, re, im)

	for i := range loPow {
		if dev := math.Abs(loPow[i] + hiPow[i] - 2); dev > a.QMFErrorMax {
			a.QMFErrorMax = dev
		}
	}

	return a
}
