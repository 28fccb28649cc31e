// Package precision measures the numerical precision of the double-precision
// polynomial engine against an arbitrary-precision reference evaluation.
package precision

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/luchau/polygo/poly"
	"github.com/luchau/polygo/utils/bignum"
)

// Stats stores statistics about the log2 precision of Horner evaluation over
// a set of sample points. A precision of k means that the double-precision
// result agrees with the arbitrary-precision reference up to an absolute
// error of 2^-k.
type Stats struct {
	MinPrec    float64
	MaxPrec    float64
	MeanPrec   float64
	MedianPrec float64
	StdPrec    float64
}

func (s Stats) String() string {
	return fmt.Sprintf(`
┌─────────┬───────┐
│    Log2 │ Prec  │
├─────────┼───────┤
│MIN Prec │ %5.2f │
│MAX Prec │ %5.2f │
│AVG Prec │ %5.2f │
│MED Prec │ %5.2f │
└─────────┴───────┘
Prec STD : %5.2f
`,
		s.MinPrec, s.MaxPrec, s.MeanPrec, s.MedianPrec, s.StdPrec)
}

// Evaluate compares the double-precision Horner evaluation of p against an
// arbitrary-precision reference evaluation with prec bits (0 selects
// bignum.DefaultPrecision) on the given points, and returns log2-precision
// statistics. The reported precision per point is capped at prec.
func Evaluate(p poly.Polynomial, points []complex128, prec uint) (Stats, error) {

	if prec == 0 {
		prec = bignum.DefaultPrecision
	}

	ref, err := bignum.NewPolynomial(p, prec)
	if err != nil {
		return Stats{}, fmt.Errorf("cannot Evaluate: %w", err)
	}

	precs := make([]float64, len(points))

	for i, x := range points {
		want := ref.Evaluate(bignum.ToComplex(x, prec))
		have := bignum.ToComplex(p.Evaluate(x), prec)

		delta := want.Clone().Sub(want, have).Abs()

		if delta.Sign() == 0 {
			precs[i] = float64(prec)
			continue
		}

		log2, _ := bignum.Log2(delta).Float64()
		precs[i] = -log2
		if precs[i] > float64(prec) {
			precs[i] = float64(prec)
		}
	}

	var s Stats
	if s.MinPrec, err = stats.Min(precs); err != nil {
		return Stats{}, fmt.Errorf("cannot Evaluate: %w", err)
	}
	if s.MaxPrec, err = stats.Max(precs); err != nil {
		return Stats{}, fmt.Errorf("cannot Evaluate: %w", err)
	}
	if s.MeanPrec, err = stats.Mean(precs); err != nil {
		return Stats{}, fmt.Errorf("cannot Evaluate: %w", err)
	}
	if s.MedianPrec, err = stats.Median(precs); err != nil {
		return Stats{}, fmt.Errorf("cannot Evaluate: %w", err)
	}
	if s.StdPrec, err = stats.StandardDeviation(precs); err != nil {
		return Stats{}, fmt.Errorf("cannot Evaluate: %w", err)
	}

	return s, nil
}
