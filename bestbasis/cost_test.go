package bestbasis

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/wpt"
)

// Any cost kind must be usable as a decomposition pruning heuristic.
var _ wpt.CostFunc = CostShannon.Cost

func TestCostShannon(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want float64
	}{
		{"spike", []float64{1, 0, 0, 0}, 0},
		{"two equal", []float64{1, 1}, math.Log(2)},
		{"four equal", []float64{1, 1, 1, 1}, math.Log(4)},
		{"scaled equal", []float64{-3, 3, -3, 3}, math.Log(4)},
		{"zero", []float64{0, 0, 0}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := CostShannon.Cost(tt.v)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cost = %.15f, want %.15f", got, tt.want)
			}
		})
	}
}

func TestCostShannonOrdering(t *testing.T) {
	// Entropy decreases as energy concentrates.
	flat := CostShannon.Cost([]float64{1, 1, 1, 1})
	skewed := CostShannon.Cost([]float64{2, 1, 0.5, 0.1})
	peaked := CostShannon.Cost([]float64{4, 0.1, 0.1, 0.1})

	if !(flat > skewed && skewed > peaked) {
		t.Errorf("ordering violated: flat %.4f, skewed %.4f, peaked %.4f", flat, skewed, peaked)
	}
}

func TestCostLogEnergy(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want float64
	}{
		{"two equal", []float64{1, 1}, 2 * math.Log(2)},
		{"four equal", []float64{2, 2, 2, 2}, 8 * math.Log(2)},
		{"spike", []float64{1, 0}, 0},
		{"zero", []float64{0, 0}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := CostLogEnergy.Cost(tt.v)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cost = %.15f, want %.15f", got, tt.want)
			}
		})
	}
}

func TestCostNorm(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want float64
	}{
		{"mixed signs", []float64{3, -4}, 7},
		{"single", []float64{-1.5}, 1.5},
		{"zero", []float64{0, 0, 0}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := CostNorm.Cost(tt.v)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cost = %.15f, want %.15f", got, tt.want)
			}
		})
	}
}

func TestCostDifferentialEntropy(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want float64
	}{
		// n=4 spreads over 2 bins of width 1.5: ln(2) + ln(1.5).
		{"ramp", []float64{0, 1, 2, 3}, math.Log(3)},
		// Scaling by 10 shifts the estimate by ln(10).
		{"scaled ramp", []float64{0, 10, 20, 30}, math.Log(30)},
		{"constant", []float64{5, 5, 5}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := CostDifferentialEntropy.Cost(tt.v)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Cost = %.15f, want %.15f", got, tt.want)
			}
		})
	}
}

func TestCostDegenerateInputs(t *testing.T) {
	kinds := []CostKind{CostShannon, CostLogEnergy, CostNorm, CostDifferentialEntropy}
	inputs := [][]float64{nil, {}, {0}, {0, 0, 0, 0}}

	for _, kind := range kinds {
		for _, v := range inputs {
			got := kind.Cost(v)
			if got != 0 {
				t.Errorf("kind %d on %v: cost %.15f, want 0", kind, v, got)
			}
		}
	}
}
