package numeric

import (
	"devcalc/common"
	"errors"
	"math"
	"math/big"
)

// Errors returned by the operators.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrModuloByZero   = errors.New("modulo by zero")
	ErrNonInteger     = errors.New("bitwise operators require integer operands")
	ErrShiftRange     = errors.New("shift count out of range")
)

// arith applies an arithmetic operator that keeps exact operands exact.
func arith(a, b Value, exact func(z, x, y *big.Int) *big.Int, real func(x, y float64) float64) Value {
	if a.IsExact() && b.IsExact() {
		return Value{exact: exact(new(big.Int), a.bigInt(), b.bigInt())}
	}

	return Inexact(real(a.Float(), b.Float()))
}

// Add returns a + b.
func Add(a, b Value) Value {
	return arith(a, b, (*big.Int).Add, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	return arith(a, b, (*big.Int).Sub, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b.
func Mul(a, b Value) Value {
	return arith(a, b, (*big.Int).Mul, func(x, y float64) float64 { return x * y })
}

// Div returns a / b.  The result is always inexact, even when both operands
// are exact and b divides a evenly.
func Div(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, ErrDivisionByZero
	}

	if a.IsExact() && b.IsExact() {
		// The quotient of two exact integers is rounded once rather than
		// rounding both operands first.
		q, _ := new(big.Rat).SetFrac(a.bigInt(), b.bigInt()).Float64()
		return Inexact(q), nil
	}

	return Inexact(a.Float() / b.Float()), nil
}

// Mod returns the remainder of a / b.  The remainder truncates toward zero so
// its sign follows the dividend.
func Mod(a, b Value) (Value, error) {
	if b.IsZero() {
		return Value{}, ErrModuloByZero
	}

	return arith(a, b, (*big.Int).Rem, math.Mod), nil
}

// Neg returns -a.
func Neg(a Value) Value {
	if a.inexact {
		return Inexact(-a.real)
	}

	return Value{exact: new(big.Int).Neg(a.bigInt())}
}

// -----------------------------------------------------------------------------
// The bitwise operators work on the infinite two's complement representation
// of their operands: math/big already defines And, Or, Xor, Not and Rsh that
// way for negative integers.

// bitwise applies a binary bitwise operator to two exact operands.
func bitwise(a, b Value, op func(z, x, y *big.Int) *big.Int) (Value, error) {
	if !a.IsExact() || !b.IsExact() {
		return Value{}, ErrNonInteger
	}

	return Value{exact: op(new(big.Int), a.bigInt(), b.bigInt())}, nil
}

// And returns a & b.
func And(a, b Value) (Value, error) {
	return bitwise(a, b, (*big.Int).And)
}

// Or returns a | b.
func Or(a, b Value) (Value, error) {
	return bitwise(a, b, (*big.Int).Or)
}

// Xor returns a ^ b.
func Xor(a, b Value) (Value, error) {
	return bitwise(a, b, (*big.Int).Xor)
}

// Not returns ~a, which is -(a+1).
func Not(a Value) (Value, error) {
	if !a.IsExact() {
		return Value{}, ErrNonInteger
	}

	return Value{exact: new(big.Int).Not(a.bigInt())}, nil
}

// Shl returns a << b.  A negative count shifts right instead.
func Shl(a, b Value) (Value, error) {
	if !a.IsExact() || !b.IsExact() {
		return Value{}, ErrNonInteger
	}

	return shift(a.bigInt(), b.bigInt())
}

// Shr returns a >> b, rounding toward negative infinity.  A negative count
// shifts left instead.
func Shr(a, b Value) (Value, error) {
	if !a.IsExact() || !b.IsExact() {
		return Value{}, ErrNonInteger
	}

	return shift(a.bigInt(), new(big.Int).Neg(b.bigInt()))
}

// shift shifts x left by n bits, or right by -n bits when n is negative.
func shift(x, n *big.Int) (Value, error) {
	if n.Sign() >= 0 {
		if !n.IsInt64() || n.Int64() > common.MaxShiftBits {
			return Value{}, ErrShiftRange
		}

		return Value{exact: new(big.Int).Lsh(x, uint(n.Int64()))}, nil
	}

	count := new(big.Int).Neg(n)

	// Shifting right past every significant bit leaves only the sign.
	if !count.IsInt64() || count.Int64() > int64(x.BitLen()) {
		if x.Sign() < 0 {
			return ExactInt64(-1), nil
		}

		return ExactInt64(0), nil
	}

	return Value{exact: new(big.Int).Rsh(x, uint(count.Int64()))}, nil
}
