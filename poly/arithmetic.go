package poly

import (
	"fmt"

	"github.com/luchau/polygo/utils"
)

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	coeffs := make([]complex128, utils.Max(len(p.Coeffs), len(q.Coeffs)))
	for i := range coeffs {
		coeffs[i] = p.Coefficient(i) + q.Coefficient(i)
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	coeffs := make([]complex128, utils.Max(len(p.Coeffs), len(q.Coeffs)))
	for i := range coeffs {
		coeffs[i] = p.Coefficient(i) - q.Coefficient(i)
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	coeffs := make([]complex128, len(p.Coeffs))
	for i, c := range p.Coeffs {
		coeffs[i] = -c
	}
	return Polynomial{Coeffs: coeffs}
}

// Mul returns p * q, computed as the coefficient convolution in
// O(deg(p) * deg(q)) operations.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	coeffs := make([]complex128, len(p.Coeffs)+len(q.Coeffs)-1)
	for i, pi := range p.Coeffs {
		if pi == 0 {
			continue
		}
		for j, qj := range q.Coeffs {
			coeffs[i+j] += pi * qj
		}
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Pow returns p^n, with p^0 being the constant polynomial 1.
// TODO: switch to binary exponentiation for large n.
func (p Polynomial) Pow(n uint) Polynomial {
	if n == 0 {
		return Polynomial{Coeffs: []complex128{1}}
	}
	r := p.Clone()
	for ; n > 1; n-- {
		r = r.Mul(p)
	}
	return r
}

// Quo performs the euclidean division of p by d and returns the quotient and
// remainder such that p = quo*d + rem with rem.Degree() < d.Degree() (or rem
// the zero polynomial). A divisor trimming to the zero polynomial is rejected
// with an error wrapping ErrDivisionByZero.
//
// The division is a synthetic long division: each step cancels the current
// leading term of the remainder exactly, so the remainder degree strictly
// decreases and the loop runs at most deg(p)-deg(d)+1 times even in the
// presence of floating-point rounding.
func (p Polynomial) Quo(d Polynomial) (quo, rem Polynomial, err error) {

	if d.IsZero() {
		return Polynomial{}, Polynomial{}, fmt.Errorf("cannot Quo: %w", ErrDivisionByZero)
	}

	n := len(d.Coeffs)

	if len(p.Coeffs) < n {
		return Polynomial{}, p.Clone(), nil
	}

	r := make([]complex128, len(p.Coeffs))
	copy(r, p.Coeffs)

	qc := make([]complex128, len(p.Coeffs)-n+1)
	lead := d.Coeffs[n-1]

	for i := len(r) - n; i >= 0; i-- {
		c := r[i+n-1] / lead
		qc[i] = c
		if c != 0 {
			for j := 0; j < n-1; j++ {
				r[i+j] -= c * d.Coeffs[j]
			}
		}
		// The leading term cancels by construction of c.
		r[i+n-1] = 0
	}

	return Polynomial{Coeffs: trim(qc)}, Polynomial{Coeffs: trim(r[:n-1])}, nil
}
