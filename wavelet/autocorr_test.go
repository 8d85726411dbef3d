package wavelet

import (
	"math"
	"testing"
)

func TestAutocorrelationShape(t *testing.T) {
	for _, typ := range allTypes {
		typ := typ
		t.Run(Info(typ).Name, func(t *testing.T) {
			f, err := New(typ)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			s := f.Autocorrelation()

			wantLen := 2*f.Length() - 1
			if s.Length() != wantLen {
				t.Fatalf("Length = %d, want %d", s.Length(), wantLen)
			}
			if len(s.Q) != wantLen {
				t.Fatalf("len(Q) = %d, want %d", len(s.Q), wantLen)
			}
			if s.Center != f.Length()-1 {
				t.Fatalf("Center = %d, want %d", s.Center, f.Length()-1)
			}

			// Both shell filters are symmetric around the center tap.
			for k := 1; k <= s.Center; k++ {
				if math.Abs(s.P[s.Center+k]-s.P[s.Center-k]) > 1e-12 {
					t.Errorf("P asymmetric at lag %d", k)
				}
				if math.Abs(s.Q[s.Center+k]-s.Q[s.Center-k]) > 1e-12 {
					t.Errorf("Q asymmetric at lag %d", k)
				}
			}
		})
	}
}

func TestAutocorrelationSumIdentity(t *testing.T) {
	// P[k] + Q[k] = sqrt(2) * delta(k) for every orthonormal catalog entry.
	for _, typ := range allTypes {
		typ := typ
		t.Run(Info(typ).Name, func(t *testing.T) {
			f, err := New(typ)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			s := f.Autocorrelation()

			for k := range s.P {
				want := 0.0
				if k == s.Center {
					want = math.Sqrt2
				}
				if math.Abs(s.P[k]+s.Q[k]-want) > 1e-10 {
					t.Errorf("P[%d]+Q[%d] = %.14f, want %.14f", k, k, s.P[k]+s.Q[k], want)
				}
			}
		})
	}
}

func TestAutocorrelationCenterTap(t *testing.T) {
	f, err := New(TypeDB4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	s := f.Autocorrelation()

	invSqrt2 := 1 / math.Sqrt2
	if math.Abs(s.P[s.Center]-invSqrt2) > 1e-12 {
		t.Errorf("P[center] = %.14f, want %.14f", s.P[s.Center], invSqrt2)
	}
	if math.Abs(s.Q[s.Center]-invSqrt2) > 1e-12 {
		t.Errorf("Q[center] = %.14f, want %.14f", s.Q[s.Center], invSqrt2)
	}
}

func TestAutocorrelationEmptyFilter(t *testing.T) {
	var f Filter
	s := f.Autocorrelation()
	if s.Length() != 0 {
		t.Fatalf("Length = %d, want 0", s.Length())
	}
}
