// Package poly implements univariate polynomial arithmetic over
// double-precision real and complex coefficients: construction, addition,
// subtraction, multiplication, euclidean division, Horner evaluation,
// differentiation and integration.
package poly

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// Errors returned by the polynomial engine.
var (
	// ErrInvalidInput is returned when a polynomial is constructed from an
	// empty coefficient sequence or from non-finite (NaN or Inf) coefficients.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero is returned when the divisor of an euclidean division
	// trims to the zero polynomial.
	ErrDivisionByZero = errors.New("division by zero polynomial")
)

// DefaultTolerance is the absolute tolerance applied by EqualApprox when the
// caller provides a tolerance <= 0.
const DefaultTolerance = 1e-12

// Polynomial represents the univariate polynomial sum_i Coeffs[i] * X^i.
//
// The representation is canonical: Coeffs carries no trailing zero
// coefficient and the zero polynomial is the empty (or nil) slice, whose
// degree is -1. All operations return fresh values and never mutate their
// operands, so a Polynomial can be shared freely across goroutines.
type Polynomial struct {
	Coeffs []complex128
}

// NewPolynomial creates a new polynomial from a coefficient sequence ordered
// from the constant term up to the leading term.
//
// coeffs must be a non-empty []complex128, []float64, []int or []uint64;
// other types panic. The sequence is copied and trimmed of trailing zeros,
// so an all-zero input collapses to the canonical zero polynomial. Non-finite
// coefficients are rejected with an error wrapping ErrInvalidInput.
func NewPolynomial(coeffs interface{}) (Polynomial, error) {

	var coefficients []complex128

	switch coeffs := coeffs.(type) {
	case []complex128:
		coefficients = make([]complex128, len(coeffs))
		copy(coefficients, coeffs)
	case []float64:
		coefficients = make([]complex128, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = complex(c, 0)
		}
	case []int:
		coefficients = make([]complex128, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = complex(float64(c), 0)
		}
	case []uint64:
		coefficients = make([]complex128, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = complex(float64(c), 0)
		}
	default:
		panic(fmt.Sprintf("invalid coefficient type, allowed types are []{complex128, float64, int, uint64} but is %T", coeffs))
	}

	if len(coefficients) == 0 {
		return Polynomial{}, fmt.Errorf("cannot NewPolynomial: empty coefficient sequence: %w", ErrInvalidInput)
	}

	for i, c := range coefficients {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return Polynomial{}, fmt.Errorf("cannot NewPolynomial: non-finite coefficient at index %d: %w", i, ErrInvalidInput)
		}
	}

	return Polynomial{Coeffs: trim(coefficients)}, nil
}

// MustNewPolynomial is NewPolynomial, panicking on error.
func MustNewPolynomial(coeffs interface{}) Polynomial {
	p, err := NewPolynomial(coeffs)
	if err != nil {
		panic(err)
	}
	return p
}

// NewMonomial returns the monomial c * X^n.
// A negative n is rejected with an error wrapping ErrInvalidInput, and a zero
// c yields the zero polynomial.
func NewMonomial(c complex128, n int) (Polynomial, error) {
	if n < 0 {
		return Polynomial{}, fmt.Errorf("cannot NewMonomial: negative degree %d: %w", n, ErrInvalidInput)
	}
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return Polynomial{}, fmt.Errorf("cannot NewMonomial: non-finite coefficient: %w", ErrInvalidInput)
	}
	if c == 0 {
		return Polynomial{}, nil
	}
	coeffs := make([]complex128, n+1)
	coeffs[n] = c
	return Polynomial{Coeffs: coeffs}, nil
}

// trim strips trailing zero coefficients so that the slice is in canonical
// form. The zero polynomial trims to the empty slice.
func trim(coeffs []complex128) []complex128 {
	i := len(coeffs)
	for i > 0 && coeffs[i-1] == 0 {
		i--
	}
	return coeffs[:i]
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	coeffs := make([]complex128, len(p.Coeffs))
	copy(coeffs, p.Coeffs)
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

// IsReal returns true if all coefficients have a zero imaginary part.
func (p Polynomial) IsReal() bool {
	for _, c := range p.Coeffs {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}

// Coefficient returns the coefficient of X^i, which is zero for any i outside
// of [0, p.Degree()].
func (p Polynomial) Coefficient(i int) complex128 {
	if i < 0 || i >= len(p.Coeffs) {
		return 0
	}
	return p.Coeffs[i]
}

// LeadingCoefficient returns the coefficient of the highest-degree term, or
// zero for the zero polynomial.
func (p Polynomial) LeadingCoefficient() complex128 {
	if len(p.Coeffs) == 0 {
		return 0
	}
	return p.Coeffs[len(p.Coeffs)-1]
}

// Equal checks the exact coefficient-wise equality between p and q.
// See EqualApprox for comparisons up to a numeric tolerance.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i] != q.Coeffs[i] {
			return false
		}
	}
	return true
}

// EqualApprox checks the coefficient-wise equality between p and q up to the
// absolute tolerance tol. A tol <= 0 selects DefaultTolerance. Comparing up
// to a tolerance is the meaningful notion of equality for polynomials
// produced by prior floating-point arithmetic.
func (p Polynomial) EqualApprox(q Polynomial, tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	for i := 0; i < n; i++ {
		if cmplx.Abs(p.Coefficient(i)-q.Coefficient(i)) > tol {
			return false
		}
	}
	return true
}
