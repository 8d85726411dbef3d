package wpt

import (
	"sync"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// DecomposeAll decomposes an ensemble of equal-length signals with shared
// parameters, one goroutine per signal. The resulting trees are index-
// aligned with the input; the first decomposition error, if any, is
// returned.
func DecomposeAll(signals [][]float64, f wavelet.Filter, depth int, mode Mode, opts ...Option) ([]*Tree, error) {
	if len(signals) == 0 {
		return nil, ErrEmptyInput
	}
	n := len(signals[0])
	for _, s := range signals[1:] {
		if len(s) != n {
			return nil, ErrEnsembleShape
		}
	}

	trees := make([]*Tree, len(signals))
	errs := make([]error, len(signals))

	var wg sync.WaitGroup
	for i, s := range signals {
		wg.Add(1)
		go func(i int, s []float64) {
			defer wg.Done()
			trees[i], errs[i] = Decompose(s, f, depth, mode, opts...)
		}(i, s)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return trees, nil
}
