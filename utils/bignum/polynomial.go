package bignum

import (
	"fmt"
	"math/big"

	"github.com/luchau/polygo/poly"
	"github.com/luchau/polygo/utils"
)

// DefaultPrecision is the precision in bits selected when a caller passes a
// precision of 0.
const DefaultPrecision uint = 64

// Polynomial represents the univariate polynomial sum_i Coeffs[i] * X^i with
// arbitrary precision complex coefficients. The same conventions as
// poly.Polynomial apply: the coefficient slice is trimmed, the zero
// polynomial is the empty slice with degree -1, and operations return fresh
// values.
type Polynomial struct {
	Coeffs []*Complex
}

// NewPolynomial creates a new polynomial with prec bits of precision per
// coefficient from a coefficient sequence ordered from the constant term up
// to the leading term.
//
// coeffs must be a non-empty []complex128, []float64, []*big.Float,
// []*Complex or a poly.Polynomial; other types panic. A prec of 0 selects
// DefaultPrecision. The coefficients are deep-copied and trimmed.
func NewPolynomial(coeffs interface{}, prec uint) (Polynomial, error) {

	if prec == 0 {
		prec = DefaultPrecision
	}

	var coefficients []*Complex

	switch coeffs := coeffs.(type) {
	case []complex128:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = ToComplex(c, prec)
		}
	case []float64:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = ToComplex(c, prec)
		}
	case []*big.Float:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = ToComplex(c, prec)
		}
	case []*Complex:
		coefficients = make([]*Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = ToComplex(c, prec)
		}
	case poly.Polynomial:
		coefficients = make([]*Complex, len(coeffs.Coeffs))
		for i, c := range coeffs.Coeffs {
			coefficients[i] = ToComplex(c, prec)
		}
		return Polynomial{Coeffs: trim(coefficients)}, nil
	default:
		panic(fmt.Sprintf("invalid coefficient type, allowed types are []{complex128, float64, *big.Float, *Complex} or poly.Polynomial but is %T", coeffs))
	}

	if len(coefficients) == 0 {
		return Polynomial{}, fmt.Errorf("cannot NewPolynomial: empty coefficient sequence: %w", poly.ErrInvalidInput)
	}

	return Polynomial{Coeffs: trim(coefficients)}, nil
}

// trim strips trailing zero coefficients so that the slice is in canonical
// form.
func trim(coeffs []*Complex) []*Complex {
	i := len(coeffs)
	for i > 0 && coeffs[i-1].IsZero() {
		i--
	}
	return coeffs[:i]
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	coeffs := make([]*Complex, len(p.Coeffs))
	for i := range coeffs {
		coeffs[i] = p.Coeffs[i].Clone()
	}
	return Polynomial{Coeffs: coeffs}
}

// Degree returns the degree of the polynomial.
// The degree of the zero polynomial is -1.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.Coeffs) == 0
}

// Prec returns the precision in bits of the coefficient with the highest
// precision, or 0 for the zero polynomial.
func (p Polynomial) Prec() (prec uint) {
	for _, c := range p.Coeffs {
		prec = utils.Max(prec, c.Prec())
	}
	return
}

// Coefficient returns a copy of the coefficient of X^i, which is zero for
// any i outside of [0, p.Degree()].
func (p Polynomial) Coefficient(i int) *Complex {
	if i < 0 || i >= len(p.Coeffs) {
		return NewComplex().SetPrec(p.Prec())
	}
	return p.Coeffs[i].Clone()
}

// Add returns p + q at the highest precision of the two operands.
func (p Polynomial) Add(q Polynomial) Polynomial {
	prec := utils.Max(p.Prec(), q.Prec())
	zero := NewComplex().SetPrec(prec)
	coeffs := make([]*Complex, utils.Max(len(p.Coeffs), len(q.Coeffs)))
	for i := range coeffs {
		a, b := zero, zero
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		coeffs[i] = NewComplex().SetPrec(prec).Add(a, b)
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Sub returns p - q at the highest precision of the two operands.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	prec := utils.Max(p.Prec(), q.Prec())
	zero := NewComplex().SetPrec(prec)
	coeffs := make([]*Complex, utils.Max(len(p.Coeffs), len(q.Coeffs)))
	for i := range coeffs {
		a, b := zero, zero
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		coeffs[i] = NewComplex().SetPrec(prec).Sub(a, b)
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Mul returns p * q at the highest precision of the two operands, computed as
// the coefficient convolution.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	prec := utils.Max(p.Prec(), q.Prec())
	coeffs := make([]*Complex, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range coeffs {
		coeffs[i] = NewComplex().SetPrec(prec)
	}
	mul := NewComplexMultiplier()
	tmp := NewComplex().SetPrec(prec)
	for i := range p.Coeffs {
		for j := range q.Coeffs {
			mul.Mul(p.Coeffs[i], q.Coeffs[j], tmp)
			coeffs[i+j].Add(coeffs[i+j], tmp)
		}
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Evaluate takes x a *big.Float, *Complex, float64 or complex128 and returns
// y = P(x) computed with Horner's method. The precision of x is used as the
// reference precision for y.
func (p Polynomial) Evaluate(x interface{}) (y *Complex) {

	var xcmplx *Complex
	switch x := x.(type) {
	case *big.Float:
		xcmplx = ToComplex(x, x.Prec())
	case *Complex:
		xcmplx = ToComplex(x, x.Prec())
	case complex128:
		xcmplx = ToComplex(x, utils.Max(p.Prec(), DefaultPrecision))
	case float64:
		xcmplx = ToComplex(x, utils.Max(p.Prec(), DefaultPrecision))
	default:
		panic(fmt.Errorf("cannot Evaluate: accepted x.(type) are *big.Float, *Complex, float64 and complex128 but x is %T", x))
	}

	if p.IsZero() {
		return NewComplex().SetPrec(xcmplx.Prec())
	}

	n := len(p.Coeffs)

	mul := NewComplexMultiplier()

	y = p.Coeffs[n-1].Clone()
	y.SetPrec(xcmplx.Prec())
	for i := n - 2; i >= 0; i-- {
		mul.Mul(y, xcmplx, y)
		y.Add(y, p.Coeffs[i])
	}

	return
}

// Derivative returns dp/dX.
func (p Polynomial) Derivative() Polynomial {
	if len(p.Coeffs) < 2 {
		return Polynomial{}
	}
	prec := p.Prec()
	coeffs := make([]*Complex, len(p.Coeffs)-1)
	for i := range coeffs {
		k := NewFloat(i+1, prec)
		c := p.Coeffs[i+1].Clone().SetPrec(prec)
		c[0].Mul(c[0], k)
		c[1].Mul(c[1], k)
		coeffs[i] = c
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Integral returns the antiderivative of p with integration constant c,
// which can be any type accepted by ToComplex.
func (p Polynomial) Integral(c interface{}) Polynomial {
	prec := utils.Max(p.Prec(), DefaultPrecision)
	coeffs := make([]*Complex, len(p.Coeffs)+1)
	coeffs[0] = ToComplex(c, prec)
	for i := range p.Coeffs {
		k := NewFloat(i+1, prec)
		ci := p.Coeffs[i].Clone().SetPrec(prec)
		ci[0].Quo(ci[0], k)
		ci[1].Quo(ci[1], k)
		coeffs[i+1] = ci
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Complex128Coeffs returns the coefficients rounded to complex128.
func (p Polynomial) Complex128Coeffs() []complex128 {
	coeffs := make([]complex128, len(p.Coeffs))
	for i, c := range p.Coeffs {
		coeffs[i] = c.Complex128()
	}
	return coeffs
}

// Poly returns the polynomial rounded to the double-precision representation
// of the poly package.
func (p Polynomial) Poly() (poly.Polynomial, error) {
	if p.IsZero() {
		return poly.Polynomial{}, nil
	}
	return poly.NewPolynomial(p.Complex128Coeffs())
}
