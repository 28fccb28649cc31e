package poly

// Evaluate returns p(x), computed with Horner's method in deg(p)
// multiply-add steps. Evaluating the zero polynomial returns 0.
func (p Polynomial) Evaluate(x complex128) (y complex128) {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}
	return
}

// EvaluateReal returns the real part of p(x) for a real argument.
// It is only meaningful for polynomials with real coefficients.
func (p Polynomial) EvaluateReal(x float64) float64 {
	return real(p.Evaluate(complex(x, 0)))
}

// Derivative returns dp/dX. The derivative of a constant polynomial is the
// zero polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.Coeffs) < 2 {
		return Polynomial{}
	}
	coeffs := make([]complex128, len(p.Coeffs)-1)
	for i := range coeffs {
		coeffs[i] = complex(float64(i+1), 0) * p.Coeffs[i+1]
	}
	return Polynomial{Coeffs: trim(coeffs)}
}

// Integral returns the antiderivative of p with integration constant c.
func (p Polynomial) Integral(c complex128) Polynomial {
	coeffs := make([]complex128, len(p.Coeffs)+1)
	coeffs[0] = c
	for i, ci := range p.Coeffs {
		coeffs[i+1] = ci / complex(float64(i+1), 0)
	}
	return Polynomial{Coeffs: trim(coeffs)}
}
