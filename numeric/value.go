// Package numeric implements the evaluator's numeric values: exact
// arbitrary-precision integers and inexact double-precision reals, the
// operator semantics over them, and the decoding of numeric literals.
package numeric

import (
	"math/big"
	"strconv"
)

// Value is a numeric value.  It is either an exact integer or an inexact real.
// Values are immutable: every operation returns a new value.  The zero Value
// is the exact integer zero.
type Value struct {
	// exact holds the integer for exact values.  It is nil for the zero value
	// and for inexact values.
	exact *big.Int

	// real holds the float for inexact values.
	real float64

	// inexact indicates that the value is a real.  Once a computation produces
	// an inexact value, it never becomes exact again.
	inexact bool
}

// Exact returns an exact integer value equal to n.
func Exact(n *big.Int) Value {
	return Value{exact: new(big.Int).Set(n)}
}

// ExactInt64 returns an exact integer value equal to n.
func ExactInt64(n int64) Value {
	return Value{exact: big.NewInt(n)}
}

// Inexact returns an inexact real value equal to f.
func Inexact(f float64) Value {
	return Value{real: f, inexact: true}
}

// IsExact reports whether v is an exact integer.
func (v Value) IsExact() bool {
	return !v.inexact
}

// Int returns a copy of the integer held by an exact value.  It returns nil if
// the value is inexact.
func (v Value) Int() *big.Int {
	if v.inexact {
		return nil
	}

	return new(big.Int).Set(v.bigInt())
}

// Float returns the value as a float64.  Exact integers are rounded to the
// nearest representable float.
func (v Value) Float() float64 {
	if v.inexact {
		return v.real
	}

	f, _ := new(big.Float).SetInt(v.bigInt()).Float64()
	return f
}

// IsZero reports whether the value is zero.
func (v Value) IsZero() bool {
	if v.inexact {
		return v.real == 0
	}

	return v.bigInt().Sign() == 0
}

// Equal reports whether two values are the same variant and hold the same
// number.
func (v Value) Equal(other Value) bool {
	if v.inexact != other.inexact {
		return false
	}

	if v.inexact {
		return v.real == other.real
	}

	return v.bigInt().Cmp(other.bigInt()) == 0
}

func (v Value) String() string {
	if v.inexact {
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	}

	return v.bigInt().String()
}

// bigInt returns the integer held by the value without copying it.  Callers
// must not modify the result.
func (v Value) bigInt() *big.Int {
	if v.exact == nil {
		return new(big.Int)
	}

	return v.exact
}
