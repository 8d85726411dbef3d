package bestbasis

// Option configures a selection run.
type Option func(*config)

type config struct {
	kind      CostKind
	kindSet   bool
	normPower float64
}

func defaultConfig() config {
	return config{kind: CostShannon, normPower: 1}
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

// WithCost selects the cost functional. Without it, Select and
// MethodJBB use CostShannon and MethodLSDB uses
// CostDifferentialEntropy.
func WithCost(kind CostKind) Option {
	return func(cfg *config) {
		cfg.kind = kind
		cfg.kindSet = true
	}
}

// WithNormPower sets the exponent p of CostNorm. Values at or below
// zero are ignored; the default is 1.
func WithNormPower(p float64) Option {
	return func(cfg *config) {
		if p > 0 {
			cfg.normPower = p
		}
	}
}
