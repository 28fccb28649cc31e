/*
Package polygo is a pure Go library for univariate polynomial arithmetic over
real and complex coefficients. It provides construction, arithmetic (addition,
subtraction, multiplication, euclidean division), Horner evaluation,
differentiation and integration over double-precision coefficients, together
with an arbitrary-precision extension and tooling to measure the numerical
precision of the double-precision engine.
*/
package polygo
