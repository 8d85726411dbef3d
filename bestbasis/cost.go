package bestbasis

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// CostKind enumerates the cost functionals a selection can minimize.
// All kinds score coefficient concentration: lower cost means the node
// represents its share of the signal more compactly.
type CostKind int

const (
	// CostShannon is the Shannon entropy of the normalized squared
	// coefficients, -sum s*ln(s) with s = (v/nrm)^2. The default for
	// Select and for joint selection.
	CostShannon CostKind = iota

	// CostLogEnergy sums -ln(s) over the normalized squared
	// coefficients.
	CostLogEnergy

	// CostNorm sums |v|^p without normalization. p defaults to 1; see
	// WithNormPower.
	CostNorm

	// CostDifferentialEntropy estimates the differential entropy of the
	// coefficient distribution with an equal-width histogram. The
	// default for least-dependent selection.
	CostDifferentialEntropy
)

// Cost evaluates the functional on one coefficient vector, normalizing
// against the vector's own energy where the kind calls for it.
// Degenerate input (empty, all-zero, constant) costs zero. The method
// value of any kind satisfies wpt.CostFunc, so the catalog doubles as
// the pruning heuristic for shift-invariant decomposition:
//
//	wpt.Decompose(x, f, d, wpt.ModeShiftInvariant,
//		wpt.WithPruning(0, bestbasis.CostShannon.Cost))
func (k CostKind) Cost(v []float64) float64 {
	return costSelf(config{kind: k, normPower: 1}, v)
}

// costSelf prices v with the kind's natural normalization: the entropy
// kinds divide by v's own l2 norm, the rest take v as is.
func costSelf(cfg config, v []float64) float64 {
	switch cfg.kind {
	case CostShannon, CostLogEnergy:
		return costValue(cfg.kind, v, l2norm(v), cfg.normPower)
	default:
		return costValue(cfg.kind, v, 1, cfg.normPower)
	}
}

// costValue prices v against a fixed reference norm. Selection passes
// the root norm for every node of a tree, which keeps the entropy kinds
// additive across a basis cut: parent and children terms then refer to
// the same distribution. Zero coefficients and a zero reference norm
// contribute zero rather than NaN.
func costValue(kind CostKind, v []float64, nrm, p float64) float64 {
	switch kind {
	case CostShannon:
		if nrm == 0 {
			return 0
		}
		sum := 0.0
		for _, x := range v {
			s := (x / nrm) * (x / nrm)
			if s > 0 {
				sum -= s * math.Log(s)
			}
		}

		return sum

	case CostLogEnergy:
		if nrm == 0 {
			return 0
		}
		sum := 0.0
		for _, x := range v {
			s := (x / nrm) * (x / nrm)
			if s > 0 {
				sum -= math.Log(s)
			}
		}

		return sum

	case CostNorm:
		if p == 1 {
			sum := 0.0
			for _, x := range v {
				sum += math.Abs(x)
			}

			return sum
		}
		sum := 0.0
		for _, x := range v {
			sum += math.Pow(math.Abs(x), p)
		}

		return sum

	case CostDifferentialEntropy:
		return diffEntropy(v)
	}

	return 0
}

// diffEntropy estimates differential entropy with an equal-width
// histogram of ceil(sqrt(n)) bins: -sum p*ln(p) + ln(binWidth).
// Empty or constant input returns zero.
func diffEntropy(v []float64) float64 {
	n := len(v)
	if n == 0 {
		return 0
	}

	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if hi == lo {
		return 0
	}

	nbins := int(math.Ceil(math.Sqrt(float64(n))))
	width := (hi - lo) / float64(nbins)
	counts := make([]int, nbins)
	for _, x := range v {
		bin := int((x - lo) / width)
		if bin >= nbins {
			bin = nbins - 1
		}
		counts[bin]++
	}

	entropy := 0.0
	inv := 1.0 / float64(n)
	for _, c := range counts {
		if c > 0 {
			p := float64(c) * inv
			entropy -= p * math.Log(p)
		}
	}

	return entropy + math.Log(width)
}

func l2norm(v []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(v, v))
}
