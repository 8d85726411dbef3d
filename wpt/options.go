package wpt

// CostFunc scores a coefficient vector for the shift-invariant expansion
// heuristic. Lower is better; implementations must return a finite value
// for any input, including the zero vector.
type CostFunc func([]float64) float64

// Option configures a decomposition.
type Option func(*config)

type config struct {
	shiftWindow    int // -1: spawn shifts at every depth
	pruning        bool
	pruneThreshold float64
	pruneCost      CostFunc
	nonstandard2D  bool
}

func defaultConfig() config {
	return config{shiftWindow: -1}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithShiftWindow limits the depth below which shift-invariant
// decomposition spawns new shift candidates: nodes at depth >= w expand
// with the inherited shift only. The default window spans the full
// decomposition depth.
func WithShiftWindow(w int) Option {
	return func(cfg *config) {
		if w >= 0 {
			cfg.shiftWindow = w
		}
	}
}

// WithPruning enables the expansion admissibility heuristic for
// shift-invariant decomposition: a variant's children are kept only when
// their combined cost improves on the variant's own cost by more than
// threshold; variants that fail stay leaves. cost may be nil, in which
// case the l1 norm is used.
func WithPruning(threshold float64, cost CostFunc) Option {
	return func(cfg *config) {
		cfg.pruning = true
		cfg.pruneThreshold = threshold
		cfg.pruneCost = cost
	}
}

// WithNonstandard requests the level-interleaved ("non-standard") 2-D
// transform layout. The layout is recognized but not implemented;
// Decompose2D fails fast with ErrUnsupportedMode when it is set.
func WithNonstandard() Option {
	return func(cfg *config) {
		cfg.nonstandard2D = true
	}
}

func l1Cost(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		if x < 0 {
			sum -= x
		} else {
			sum += x
		}
	}

	return sum
}
