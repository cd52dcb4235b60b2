// Package gcd computes the greatest common divisor of two unsigned integers.
//
// Two algorithms are provided, the Euclidean algorithm and the binary GCD
// algorithm (Stein's algorithm). GCD uses the binary algorithm since it
// avoids division entirely.
//
// All functions are pure and allocation-free, so they are safe to call from
// multiple goroutines.
//
//	gcd.GCD[uint32](2024, 748) // 44
//	gcd.Euclid[uint8](140, 136) // 4
//	gcd.GCD[uint8](0, 10) // 10
package gcd

//go:generate go run ./cmd/gengcd -out width_gen.go

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Unsigned is any fixed-width or native unsigned integer type.
type Unsigned interface {
	constraints.Unsigned
}

// Calculator exposes the GCD algorithms for values of type T.
type Calculator[T any] interface {
	// GCD returns the greatest common divisor using the binary algorithm.
	GCD(a, b T) T
	// Euclid returns the greatest common divisor using the Euclidean algorithm.
	Euclid(a, b T) T
	// Binary returns the greatest common divisor using Stein's algorithm.
	Binary(a, b T) T
}

// Uint implements Calculator for the unsigned type T.
type Uint[T Unsigned] struct{}

func (Uint[T]) GCD(a, b T) T    { return GCD(a, b) }
func (Uint[T]) Euclid(a, b T) T { return Euclid(a, b) }
func (Uint[T]) Binary(a, b T) T { return Binary(a, b) }

// GCD returns the greatest common divisor of a and b.
// GCD(0, 0) is 0, and GCD(a, 0) is a.
func GCD[T Unsigned](a, b T) T {
	return Binary(a, b)
}

// Euclid returns the greatest common divisor of a and b using repeated
// remainder reduction.
func Euclid[T Unsigned](a, b T) T {
	// a = b*q + r
	if a < b {
		a, b = b, a
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Binary returns the greatest common divisor of a and b using only shifts,
// comparisons and subtraction.
func Binary[T Unsigned](a, b T) T {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	shift := trailingZeros(a | b)
	a >>= shift
	b >>= shift
	a >>= trailingZeros(a)

	for {
		b >>= trailingZeros(b)

		if a > b {
			a, b = b, a
		}

		b -= a // b >= a
		if b == 0 {
			break
		}
	}

	return a << shift
}

// trailingZeros must not be called with zero. Every unsigned width fits in a
// uint64, and zero extension does not change the low bits.
func trailingZeros[T Unsigned](v T) uint {
	return uint(bits.TrailingZeros64(uint64(v)))
}
