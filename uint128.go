package gcd

import "lukechampine.com/uint128"

// Uint128 is the Calculator for 128-bit unsigned integers.
var Uint128 Calculator[uint128.Uint128] = uint128Calculator{}

type uint128Calculator struct{}

func (uint128Calculator) GCD(a, b uint128.Uint128) uint128.Uint128    { return GCD128(a, b) }
func (uint128Calculator) Euclid(a, b uint128.Uint128) uint128.Uint128 { return Euclid128(a, b) }
func (uint128Calculator) Binary(a, b uint128.Uint128) uint128.Uint128 { return Binary128(a, b) }

// GCD128 returns the greatest common divisor of a and b using Binary128.
func GCD128(a, b uint128.Uint128) uint128.Uint128 {
	return Binary128(a, b)
}

// Euclid128 is Euclid for 128-bit values.
func Euclid128(a, b uint128.Uint128) uint128.Uint128 {
	if a.Cmp(b) < 0 {
		a, b = b, a
	}

	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}

	return a
}

// Binary128 is Binary for 128-bit values.
func Binary128(a, b uint128.Uint128) uint128.Uint128 {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}

	shift := uint(a.Or(b).TrailingZeros())
	a = a.Rsh(shift)
	b = b.Rsh(shift)
	a = a.Rsh(uint(a.TrailingZeros()))

	for {
		b = b.Rsh(uint(b.TrailingZeros()))

		if a.Cmp(b) > 0 {
			a, b = b, a
		}

		b = b.Sub(a) // b >= a
		if b.IsZero() {
			break
		}
	}

	return a.Lsh(shift)
}
