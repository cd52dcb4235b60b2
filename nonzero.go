package gcd

import (
	"errors"
	"fmt"

	"lukechampine.com/uint128"
)

// ErrZero is returned when constructing a NonZero from the zero value.
var ErrZero = errors.New("gcd: zero value")

// NonZero holds a value that is never the zero value of T.
// The zero NonZero is not valid; construct it with NewNonZero.
type NonZero[T comparable] struct {
	v T
}

// NewNonZero returns an error if v is the zero value of T.
func NewNonZero[T comparable](v T) (NonZero[T], error) {
	var zero T
	if v == zero {
		return NonZero[T]{}, fmt.Errorf("%w: cannot construct NonZero[%T]", ErrZero, v)
	}

	return NonZero[T]{v: v}, nil
}

// MustNonZero is like NewNonZero, but panics if v is zero.
func MustNonZero[T comparable](v T) NonZero[T] {
	n, err := NewNonZero(v)
	if err != nil {
		panic(err)
	}

	return n
}

// nonZeroUnchecked wraps v without validation. The caller guarantees v != 0.
func nonZeroUnchecked[T comparable](v T) NonZero[T] {
	return NonZero[T]{v: v}
}

// Get returns the underlying value. It panics if n was not built with
// NewNonZero, MustNonZero or a non-zero calculator.
func (n NonZero[T]) Get() T {
	var zero T
	if n.v == zero {
		panic(fmt.Errorf("%w: uninitialized NonZero[%T]", ErrZero, n.v))
	}

	return n.v
}

func (n NonZero[T]) String() string {
	return fmt.Sprint(n.v)
}

// NonZeroCalculator lifts a Calculator over T to one over NonZero[T].
// The GCD of two non-zero values is never zero, so results are re-wrapped
// without checking. Operands that are the zero NonZero panic.
type NonZeroCalculator[T comparable] struct {
	calc Calculator[T]
}

// NewNonZeroCalculator returns a NonZeroCalculator delegating to calc.
func NewNonZeroCalculator[T comparable](calc Calculator[T]) *NonZeroCalculator[T] {
	return &NonZeroCalculator[T]{calc: calc}
}

func (c *NonZeroCalculator[T]) GCD(a, b NonZero[T]) NonZero[T] {
	return nonZeroUnchecked(c.calc.GCD(a.Get(), b.Get()))
}

func (c *NonZeroCalculator[T]) Euclid(a, b NonZero[T]) NonZero[T] {
	return nonZeroUnchecked(c.calc.Euclid(a.Get(), b.Get()))
}

func (c *NonZeroCalculator[T]) Binary(a, b NonZero[T]) NonZero[T] {
	return nonZeroUnchecked(c.calc.Binary(a.Get(), b.Get()))
}

// NonZeroGCD returns the greatest common divisor of two non-zero values.
// It panics if either operand is the zero NonZero.
func NonZeroGCD[T Unsigned](a, b NonZero[T]) NonZero[T] {
	return nonZeroUnchecked(GCD(a.Get(), b.Get()))
}

// NonZeroEuclid is Euclid for non-zero values.
func NonZeroEuclid[T Unsigned](a, b NonZero[T]) NonZero[T] {
	return nonZeroUnchecked(Euclid(a.Get(), b.Get()))
}

// NonZeroBinary is Binary for non-zero values.
func NonZeroBinary[T Unsigned](a, b NonZero[T]) NonZero[T] {
	return nonZeroUnchecked(Binary(a.Get(), b.Get()))
}

// NonZeroUint128 is the Calculator for non-zero 128-bit values.
var NonZeroUint128 Calculator[NonZero[uint128.Uint128]] = NewNonZeroCalculator(Uint128)
