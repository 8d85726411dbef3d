package wavelet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWavelet indicates a lookup key that is not in the catalog.
	ErrUnknownWavelet = errors.New("wavelet: unknown wavelet type")
)

func validateScaling(lo []float64) error {
	if len(lo) == 0 {
		return fmt.Errorf("wavelet: scaling filter must not be empty")
	}
	if len(lo)%2 != 0 {
		return fmt.Errorf("wavelet: scaling filter length must be even: %d", len(lo))
	}
	return nil
}
