// Package wavelet provides an orthonormal wavelet filter catalog.
//
// Each catalog entry is a quadrature mirror filter (QMF) pair: a scaling
// (lowpass) filter Lo and the wavelet (highpass) filter Hi derived from it by
//
//	Hi[k] = (-1)^k * Lo[m-1-k]
//
// where m is the filter length. All catalog filters are orthonormal:
// sum(Lo) = sqrt(2), sum(Lo^2) = 1, and even shifts of Lo are mutually
// orthogonal. These conditions make the one-step packet transform an
// orthogonal map, so decomposition followed by reconstruction is exact to
// machine precision.
//
// Basic usage:
//
//	f, err := wavelet.New(wavelet.TypeDB4)
//	if err != nil { ... }
//	lo, hi := f.Lo, f.Hi
package wavelet

// Type identifies a wavelet family in the catalog.
type Type int

const (
	TypeHaar Type = iota
	TypeDB2
	TypeDB3
	TypeDB4
	TypeDB5
	TypeDB6
	TypeDB7
	TypeDB8
	TypeSym4
	TypeCoif1
)

// Metadata holds static properties of a catalog entry.
type Metadata struct {
	Name             string
	Length           int // number of filter taps
	VanishingMoments int
}

// Filter is an orthonormal quadrature mirror filter pair.
// Lo is the scaling (lowpass) filter, Hi the wavelet (highpass) filter.
type Filter struct {
	Lo   []float64
	Hi   []float64
	name string
}

// scalingByType holds the scaling filters in ascending tap order
// (standard orthonormal tables, sum = sqrt(2)).
var scalingByType = map[Type][]float64{
	TypeHaar: {
		0.7071067811865476, 0.7071067811865476,
	},
	TypeDB2: {
		0.48296291314469025, 0.8365163037378079,
		0.2241438680420134, -0.12940952255092145,
	},
	TypeDB3: {
		0.3326705529509569, 0.8068915093133388, 0.4598775021193313,
		-0.13501102001039084, -0.08544127388224149, 0.035226291882100656,
	},
	TypeDB4: {
		0.23037781330885523, 0.7148465705525415, 0.6308807679295904,
		-0.02798376941698385, -0.18703481171888114, 0.030841381835986965,
		0.032883011666982945, -0.010597401784997278,
	},
	TypeDB5: {
		0.160102397974125, 0.6038292697974729, 0.7243085284385744,
		0.13842814590110342, -0.24229488706619015, -0.03224486958502952,
		0.07757149384006515, -0.006241490213011705, -0.012580751999015526,
		0.003335725285001549,
	},
	TypeDB6: {
		0.11154074335008017, 0.4946238903983854, 0.7511339080215775,
		0.3152503517092432, -0.22626469396516913, -0.12976686756709563,
		0.09750160558707936, 0.02752286553001629, -0.031582039318031156,
		0.0005538422009938016, 0.004777257511010651, -0.001077301085308479,
	},
	TypeDB7: {
		0.07785205408506236, 0.39653931948230575, 0.7291320908465551,
		0.4697822874053586, -0.14390600392910627, -0.22403618499416572,
		0.07130921926705004, 0.08061260915107307, -0.03802993693503463,
		-0.01657454163101562, 0.012550998556013784, 0.00042957797300470274,
		-0.0018016407039998328, 0.0003537138000010399,
	},
	TypeDB8: {
		0.05441584224308161, 0.3128715909144659, 0.6756307362980128,
		0.5853546836548691, -0.015829105256023893, -0.2840155429624281,
		0.00047248457399797254, 0.128747426620186, -0.01736930100202211,
		-0.04408825393106472, 0.013981027917015516, 0.008746094047015655,
		-0.00487035299301066, -0.000391740372995977, 0.0006754494059985568,
		-0.00011747678400228192,
	},
	TypeSym4: {
		0.03222310060404270, -0.012603967262037833, -0.09921954357684722,
		0.29785779560527736, 0.8037387518059161, 0.49761866763201545,
		-0.02963552764599851, -0.07576571478927333,
	},
	TypeCoif1: {
		-0.01565572813546454, -0.0727326195128539, 0.38486484686420286,
		0.8525720202122554, 0.3378976624578092, -0.0727326195128539,
	},
}

var metadataByType = map[Type]Metadata{
	TypeHaar:  {Name: "haar", Length: 2, VanishingMoments: 1},
	TypeDB2:   {Name: "db2", Length: 4, VanishingMoments: 2},
	TypeDB3:   {Name: "db3", Length: 6, VanishingMoments: 3},
	TypeDB4:   {Name: "db4", Length: 8, VanishingMoments: 4},
	TypeDB5:   {Name: "db5", Length: 10, VanishingMoments: 5},
	TypeDB6:   {Name: "db6", Length: 12, VanishingMoments: 6},
	TypeDB7:   {Name: "db7", Length: 14, VanishingMoments: 7},
	TypeDB8:   {Name: "db8", Length: 16, VanishingMoments: 8},
	TypeSym4:  {Name: "sym4", Length: 8, VanishingMoments: 4},
	TypeCoif1: {Name: "coif1", Length: 6, VanishingMoments: 2},
}

// New returns the filter pair for a catalog entry.
// The returned slices are fresh copies; the catalog itself is immutable.
func New(t Type) (Filter, error) {
	lo, ok := scalingByType[t]
	if !ok {
		return Filter{}, ErrUnknownWavelet
	}

	m := len(lo)
	f := Filter{
		Lo:   append([]float64(nil), lo...),
		Hi:   make([]float64, m),
		name: metadataByType[t].Name,
	}
	for k := 0; k < m; k++ {
		f.Hi[k] = lo[m-1-k]
		if k%2 == 1 {
			f.Hi[k] = -f.Hi[k]
		}
	}

	return f, nil
}

// Info returns static metadata for a catalog entry.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Length returns the number of taps per filter.
func (f Filter) Length() int { return len(f.Lo) }

// Name returns the catalog name of the family, or "" for a custom pair.
func (f Filter) Name() string { return f.name }

// Custom builds a filter pair from an arbitrary scaling filter.
// The wavelet filter is derived by the QMF relation. The scaling filter
// must have even, non-zero length; orthonormality is the caller's
// responsibility (Analyze reports deviations).
func Custom(name string, lo []float64) (Filter, error) {
	if err := validateScaling(lo); err != nil {
		return Filter{}, err
	}

	m := len(lo)
	f := Filter{
		Lo:   append([]float64(nil), lo...),
		Hi:   make([]float64, m),
		name: name,
	}
	for k := 0; k < m; k++ {
		f.Hi[k] = lo[m-1-k]
		if k%2 == 1 {
			f.Hi[k] = -f.Hi[k]
		}
	}

	return f, nil
}
