package wpt

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

var testTypes = []wavelet.Type{
	wavelet.TypeHaar,
	wavelet.TypeDB2,
	wavelet.TypeDB3,
	wavelet.TypeDB4,
	wavelet.TypeDB5,
	wavelet.TypeDB6,
	wavelet.TypeDB7,
	wavelet.TypeDB8,
	wavelet.TypeSym4,
	wavelet.TypeCoif1,
}

// randomSignal returns a deterministic pseudo-random signal in [-1, 1).
func randomSignal(n int) []float64 {
	rng := rand.New(rand.NewPCG(42, 0))
	sig := make([]float64, n)
	for i := range sig {
		sig[i] = rng.Float64()*2 - 1
	}
	return sig
}

func rampSignal(n int) []float64 {
	sig := make([]float64, n)
	for i := range sig {
		sig[i] = float64(i + 1)
	}
	return sig
}

func maxAbsDiff(a, b []float64) float64 {
	maxDev := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDev {
			maxDev = d
		}
	}
	return maxDev
}

func TestDecomposeInverseRoundTrip(t *testing.T) {
	x := randomSignal(32)

	for _, typ := range testTypes {
		typ := typ
		t.Run(wavelet.Info(typ).Name, func(t *testing.T) {
			f, err := wavelet.New(typ)
			if err != nil {
				t.Fatalf("wavelet.New: %v", err)
			}

			for depth := 1; depth <= 5; depth++ {
				tr, err := Decompose(x, f, depth, ModeOrdinary)
				if err != nil {
					t.Fatalf("Decompose depth %d: %v", depth, err)
				}
				y, err := Inverse(tr)
				if err != nil {
					t.Fatalf("Inverse depth %d: %v", depth, err)
				}
				if len(y) != len(x) {
					t.Fatalf("depth %d: reconstructed length %d, want %d", depth, len(y), len(x))
				}
				if dev := maxAbsDiff(x, y); dev > 1e-10 {
					t.Errorf("depth %d: round-trip deviation %.3e", depth, dev)
				}
			}
		})
	}
}

func TestDecomposeKnownHaar(t *testing.T) {
	f, err := wavelet.New(wavelet.TypeHaar)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}

	tr, err := Decompose([]float64{1, 2, 3, 4}, f, 1, ModeOrdinary)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	invSqrt2 := 1 / math.Sqrt2
	wantApprox := []float64{3 * invSqrt2, 7 * invSqrt2}
	wantDetail := []float64{-invSqrt2, -invSqrt2}

	if dev := maxAbsDiff(tr.Node(1, 0), wantApprox); dev > 1e-12 {
		t.Errorf("approx deviation %.3e: got %v, want %v", dev, tr.Node(1, 0), wantApprox)
	}
	if dev := maxAbsDiff(tr.Node(1, 1), wantDetail); dev > 1e-12 {
		t.Errorf("detail deviation %.3e: got %v, want %v", dev, tr.Node(1, 1), wantDetail)
	}
}

func TestDecomposeNodeLengths(t *testing.T) {
	f, err := wavelet.New(wavelet.TypeDB4)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}

	tr, err := Decompose(randomSignal(64), f, 4, ModeOrdinary)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	for d := 0; d <= 4; d++ {
		want := 64 >> uint(d)
		for b := 0; b < 1<<uint(d); b++ {
			if got := len(tr.Node(d, b)); got != want {
				t.Fatalf("node (%d,%d) length %d, want %d", d, b, got, want)
			}
		}
	}
}

func TestDecomposeDepthZero(t *testing.T) {
	f, err := wavelet.New(wavelet.TypeDB2)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}
	x := rampSignal(8)

	tr, err := Decompose(x, f, 0, ModeOrdinary)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if tr.NumNodes() != 1 {
		t.Fatalf("NumNodes = %d, want 1", tr.NumNodes())
	}
	if dev := maxAbsDiff(tr.Node(0, 0), x); dev != 0 {
		t.Errorf("root deviates from input by %.3e", dev)
	}

	y, err := Inverse(tr)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if dev := maxAbsDiff(x, y); dev != 0 {
		t.Errorf("round-trip deviation %.3e", dev)
	}
}

func TestDecomposeDoesNotAliasInput(t *testing.T) {
	f, err := wavelet.New(wavelet.TypeHaar)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}
	x := rampSignal(8)

	tr, err := Decompose(x, f, 1, ModeOrdinary)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	x[0] = 999
	if tr.Node(0, 0)[0] == 999 {
		t.Fatal("tree root aliases caller storage")
	}
}

func TestDecomposeErrors(t *testing.T) {
	f, err := wavelet.New(wavelet.TypeDB2)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}

	tests := []struct {
		name    string
		x       []float64
		filter  wavelet.Filter
		depth   int
		mode    Mode
		wantErr error
	}{
		{"empty signal", nil, f, 1, ModeOrdinary, ErrEmptyInput},
		{"zero filter", rampSignal(8), wavelet.Filter{}, 1, ModeOrdinary, ErrInvalidFilter},
		{"negative depth", rampSignal(8), f, -1, ModeOrdinary, ErrInvalidDepth},
		{"indivisible length", rampSignal(6), f, 2, ModeOrdinary, ErrLengthMismatch},
		{"indivisible stationary", rampSignal(6), f, 2, ModeStationary, ErrLengthMismatch},
		{"unknown mode", rampSignal(8), f, 1, Mode(99), ErrUnsupportedMode},
		{"shift depth beyond log2", rampSignal(8), f, 4, ModeShiftInvariant, ErrInvalidDepth},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompose(tt.x, tt.filter, tt.depth, tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decompose error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestInverseErrors(t *testing.T) {
	if _, err := Inverse(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Inverse(nil) error = %v, want ErrEmptyInput", err)
	}

	f, err := wavelet.New(wavelet.TypeHaar)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}
	tr, err := Decompose(randomSignal(16), f, 2, ModeShiftInvariant)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if _, err := Inverse(tr); !errors.Is(err, ErrUnsupportedMode) {
		t.Errorf("Inverse(shift-invariant) error = %v, want ErrUnsupportedMode", err)
	}
}

func TestReconstructFromBasis(t *testing.T) {
	x := randomSignal(32)
	f, err := wavelet.New(wavelet.TypeDB4)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}
	tr, err := Decompose(x, f, 3, ModeOrdinary)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	tests := []struct {
		name  string
		nodes [][2]int
	}{
		{"root only", [][2]int{{0, 0}}},
		{"all leaves", [][2]int{{3, 0}, {3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}}},
		{"mixed cut", [][2]int{{1, 0}, {2, 2}, {3, 6}, {3, 7}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b := NewBasis(3, 2)
			for _, nd := range tt.nodes {
				b.SetFlag(nd[0], nd[1], true)
			}
			if !IsValidBasis(len(x), b) {
				t.Fatal("test cut is not a valid basis")
			}

			y, err := Reconstruct(tr, b)
			if err != nil {
				t.Fatalf("Reconstruct: %v", err)
			}
			if dev := maxAbsDiff(x, y); dev > 1e-10 {
				t.Errorf("reconstruction deviation %.3e", dev)
			}
		})
	}
}

func TestReconstructInvalidBasis(t *testing.T) {
	f, err := wavelet.New(wavelet.TypeHaar)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}
	tr, err := Decompose(randomSignal(8), f, 2, ModeOrdinary)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	empty := NewBasis(2, 2)
	if _, err := Reconstruct(tr, empty); !errors.Is(err, ErrInvalidBasis) {
		t.Errorf("empty basis error = %v, want ErrInvalidBasis", err)
	}

	overlapping := NewBasis(2, 2)
	overlapping.SetFlag(0, 0, true)
	overlapping.SetFlag(1, 0, true)
	if _, err := Reconstruct(tr, overlapping); !errors.Is(err, ErrInvalidBasis) {
		t.Errorf("overlapping basis error = %v, want ErrInvalidBasis", err)
	}

	if _, err := Reconstruct(tr, nil); !errors.Is(err, ErrInvalidBasis) {
		t.Errorf("nil basis error = %v, want ErrInvalidBasis", err)
	}
}

func TestBasisCoefficients(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	f, err := wavelet.New(wavelet.TypeHaar)
	if err != nil {
		t.Fatalf("wavelet.New: %v", err)
	}
	tr, err := Decompose(x, f, 1, ModeOrdinary)
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}

	root := NewBasis(1, 2)
	root.SetFlag(0, 0, true)
	got, err := BasisCoefficients(tr, root)
	if err != nil {
		t.Fatalf("BasisCoefficients: %v", err)
	}
	if dev := maxAbsDiff(got, x); dev != 0 {
		t.Errorf("root extraction deviates by %.3e", dev)
	}

	leaves := NewBasis(1, 2)
	leaves.SetFlag(1, 0, true)
	leaves.SetFlag(1, 1, true)
	got, err = BasisCoefficients(tr, leaves)
	if err != nil {
		t.Fatalf("BasisCoefficients: %v", err)
	}
	if len(got) != len(x) {
		t.Fatalf("extraction length %d, want %d", len(got), len(x))
	}

	invSqrt2 := 1 / math.Sqrt2
	want := []float64{3 * invSqrt2, 7 * invSqrt2, -invSqrt2, -invSqrt2}
	if dev := maxAbsDiff(got, want); dev > 1e-12 {
		t.Errorf("leaf extraction deviation %.3e: got %v", dev, got)
	}
}
