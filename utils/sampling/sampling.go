package sampling

import (
	"encoding/binary"

	"github.com/luchau/polygo/poly"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF read
// from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max read from prng.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// RandComplex128 returns a random complex with the real and imaginary part
// between min and max read from prng.
func RandComplex128(prng PRNG, min, max float64) complex128 {
	return complex(RandFloat64(prng, min, max), RandFloat64(prng, min, max))
}

// RandomPolynomial returns a polynomial of the given degree with complex
// coefficients uniform in [min, max] read from prng. The leading coefficient
// is resampled until nonzero so that the returned polynomial has exactly the
// requested degree. A negative degree returns the zero polynomial.
func RandomPolynomial(prng PRNG, degree int, min, max float64) poly.Polynomial {
	if degree < 0 {
		return poly.Polynomial{}
	}
	coeffs := make([]complex128, degree+1)
	for i := range coeffs {
		coeffs[i] = RandComplex128(prng, min, max)
	}
	for coeffs[degree] == 0 {
		coeffs[degree] = RandComplex128(prng, min, max)
	}
	return poly.MustNewPolynomial(coeffs)
}

// RandomRealPolynomial returns a polynomial of the given degree with real
// coefficients uniform in [min, max] read from prng.
func RandomRealPolynomial(prng PRNG, degree int, min, max float64) poly.Polynomial {
	if degree < 0 {
		return poly.Polynomial{}
	}
	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = RandFloat64(prng, min, max)
	}
	for coeffs[degree] == 0 {
		coeffs[degree] = RandFloat64(prng, min, max)
	}
	return poly.MustNewPolynomial(coeffs)
}
