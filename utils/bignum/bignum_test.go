package bignum_test

import (
	"math"
	"math/big"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luchau/polygo/poly"
	"github.com/luchau/polygo/utils/bignum"
)

func TestFloat(t *testing.T) {
	testFunc1("Log", 1.4142135623730951, math.Log, bignum.Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, bignum.Exp, 1e-15, t)
	testFunc1("Sqrt", 1.4142135623730951, math.Sqrt, bignum.Sqrt, 1e-15, t)
	testFunc1("Log2", 1.4142135623730951, math.Log2, bignum.Log2, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, bignum.Pow, 1e-15, t)
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(bignum.NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(bignum.NewFloat(x, 53), bignum.NewFloat(e, 53)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}

func TestComplex(t *testing.T) {

	a := complex(1.25, -3.5)
	b := complex(-0.75, 2.25)

	requireComplexInDelta := func(t *testing.T, want complex128, have *bignum.Complex, delta float64) {
		require.InDelta(t, real(want), real(have.Complex128()), delta)
		require.InDelta(t, imag(want), imag(have.Complex128()), delta)
	}

	t.Run("AddSubNeg", func(t *testing.T) {
		ca, cb := bignum.ToComplex(a, 128), bignum.ToComplex(b, 128)
		requireComplexInDelta(t, a+b, bignum.NewComplex().SetPrec(128).Add(ca, cb), 0)
		requireComplexInDelta(t, a-b, bignum.NewComplex().SetPrec(128).Sub(ca, cb), 0)
		requireComplexInDelta(t, -a, bignum.NewComplex().SetPrec(128).Neg(ca), 0)
	})

	t.Run("MulQuo", func(t *testing.T) {
		mul := bignum.NewComplexMultiplier()

		c := bignum.NewComplex().SetPrec(128)
		mul.Mul(bignum.ToComplex(a, 128), bignum.ToComplex(b, 128), c)
		requireComplexInDelta(t, a*b, c, 1e-15)

		mul.Quo(bignum.ToComplex(a, 128), bignum.ToComplex(b, 128), c)
		requireComplexInDelta(t, a/b, c, 1e-15)
	})

	t.Run("Abs", func(t *testing.T) {
		abs, _ := bignum.ToComplex(a, 128).Abs().Float64()
		require.InDelta(t, cmplx.Abs(a), abs, 1e-15)

		require.Equal(t, 0, bignum.NewComplex().Abs().Sign())
	})

	t.Run("IsReal", func(t *testing.T) {
		require.True(t, bignum.ToComplex(1.5, 64).IsReal())
		require.False(t, bignum.ToComplex(a, 64).IsReal())
	})
}

func TestPolynomial(t *testing.T) {

	t.Run("EmptySequence", func(t *testing.T) {
		_, err := bignum.NewPolynomial([]float64{}, 128)
		require.ErrorIs(t, err, poly.ErrInvalidInput)
	})

	t.Run("Trimming", func(t *testing.T) {
		p, err := bignum.NewPolynomial([]float64{1, 2, 0, 0}, 128)
		require.NoError(t, err)
		require.Equal(t, 1, p.Degree())

		z, err := bignum.NewPolynomial([]float64{0, 0}, 128)
		require.NoError(t, err)
		require.True(t, z.IsZero())
		require.Equal(t, -1, z.Degree())
	})

	t.Run("FromPoly", func(t *testing.T) {
		dp := poly.MustNewPolynomial([]complex128{1, complex(0, 2), 3})
		p, err := bignum.NewPolynomial(dp, 128)
		require.NoError(t, err)

		rt, err := p.Poly()
		require.NoError(t, err)
		require.True(t, dp.Equal(rt))
	})

	t.Run("EvaluateMatchesPoly", func(t *testing.T) {
		dp := poly.MustNewPolynomial([]float64{1, -2, 0.5, 3})
		p, err := bignum.NewPolynomial(dp, 128)
		require.NoError(t, err)

		for _, x := range []complex128{0, 1, -1, complex(0.5, 0.25)} {
			want := dp.Evaluate(x)
			have := p.Evaluate(x).Complex128()
			require.LessOrEqual(t, cmplx.Abs(want-have), 1e-12)
		}
	})

	t.Run("Arithmetic", func(t *testing.T) {
		// P = X**2 + 1, Q = X + 1
		P, err := bignum.NewPolynomial([]float64{1, 0, 1}, 128)
		require.NoError(t, err)
		Q, err := bignum.NewPolynomial([]float64{1, 1}, 128)
		require.NoError(t, err)

		sum, err := P.Add(Q).Poly()
		require.NoError(t, err)
		require.True(t, poly.MustNewPolynomial([]float64{2, 1, 1}).Equal(sum))

		diff := P.Sub(P)
		require.True(t, diff.IsZero())

		prod, err := P.Mul(Q).Poly()
		require.NoError(t, err)
		require.True(t, poly.MustNewPolynomial([]float64{1, 1, 1, 1}).Equal(prod))
	})

	t.Run("Calculus", func(t *testing.T) {
		P, err := bignum.NewPolynomial([]float64{1, 0, 1}, 128)
		require.NoError(t, err)

		deriv, err := P.Derivative().Poly()
		require.NoError(t, err)
		require.True(t, poly.MustNewPolynomial([]float64{0, 2}).Equal(deriv))

		integ, err := P.Integral(2.0).Poly()
		require.NoError(t, err)
		require.True(t, poly.MustNewPolynomial([]float64{2, 1, 0, 1.0 / 3}).EqualApprox(integ, 0))
	})
}
