package wpt

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Benchmark ordinary decomposition across signal sizes and depths.
func BenchmarkDecompose(b *testing.B) {
	sizes := []struct {
		n     int
		depth int
	}{
		{256, 4},
		{1024, 4},
		{1024, 8},
		{4096, 4},
		{4096, 8},
		{16384, 8},
	}

	f, err := wavelet.New(wavelet.TypeDB4)
	if err != nil {
		b.Fatalf("wavelet.New: %v", err)
	}

	for _, size := range sizes {
		signal := randomSignal(size.n)

		b.Run(fmt.Sprintf("n=%d_depth=%d", size.n, size.depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Decompose(signal, f, size.depth, ModeOrdinary)
			}
		})
	}
}

// Benchmark the redundant modes against the ordinary one at fixed size.
func BenchmarkDecomposeModes(b *testing.B) {
	modes := []struct {
		name string
		mode Mode
	}{
		{"ordinary", ModeOrdinary},
		{"stationary", ModeStationary},
		{"autocorrelation", ModeAutocorrelation},
		{"shift_invariant", ModeShiftInvariant},
	}

	f, err := wavelet.New(wavelet.TypeDB4)
	if err != nil {
		b.Fatalf("wavelet.New: %v", err)
	}
	signal := randomSignal(1024)

	for _, m := range modes {
		b.Run(m.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Decompose(signal, f, 6, m.mode)
			}
		})
	}
}

// Benchmark reconstruction from the deepest level.
func BenchmarkInverse(b *testing.B) {
	f, err := wavelet.New(wavelet.TypeDB4)
	if err != nil {
		b.Fatalf("wavelet.New: %v", err)
	}
	signal := randomSignal(4096)

	tree, err := Decompose(signal, f, 8, ModeOrdinary)
	if err != nil {
		b.Fatalf("Decompose: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Inverse(tree)
	}
}

// Benchmark a single filter-and-downsample step at various lengths.
func BenchmarkForwardStep(b *testing.B) {
	f, err := wavelet.New(wavelet.TypeDB4)
	if err != nil {
		b.Fatalf("wavelet.New: %v", err)
	}

	for _, n := range []int{256, 1024, 4096, 16384} {
		signal := randomSignal(n)
		approx := make([]float64, n/2)
		detail := make([]float64, n/2)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				forwardStep(approx, detail, signal, f.Lo, f.Hi)
			}
		})
	}
}
