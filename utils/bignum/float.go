package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or
// *big.Float; a nil x returns zero.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Pow returns x^e at the precision of x.
func Pow(x, e *big.Float) *big.Float {
	return bigfloat.Pow(x, e)
}

// Exp returns exp(x) at the precision of x.
func Exp(x *big.Float) *big.Float {
	return bigfloat.Exp(x)
}

// Log returns the natural logarithm of x at the precision of x.
// x must be strictly positive.
func Log(x *big.Float) *big.Float {
	return bigfloat.Log(x)
}

// Sqrt returns the square root of x at the precision of x.
func Sqrt(x *big.Float) *big.Float {
	return bigfloat.Sqrt(x)
}

// Log2 returns the base-2 logarithm of x at the precision of x.
// x must be strictly positive.
func Log2(x *big.Float) *big.Float {
	log2 := bigfloat.Log(NewFloat(2, x.Prec()))
	return new(big.Float).SetPrec(x.Prec()).Quo(bigfloat.Log(x), log2)
}
