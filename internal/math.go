package internal

import "math/big"

// GCD returns the greatest common divisor of all values using math/big.
// It is slow, and only serves as an oracle for tests and code generation.
func GCD(vs ...uint64) uint64 {
	if len(vs) == 0 {
		return 0
	}

	acc := new(big.Int).SetUint64(vs[0])
	for _, v := range vs[1:] {
		acc.GCD(nil, nil, acc, new(big.Int).SetUint64(v))
	}

	return acc.Uint64()
}

// GCDBig is GCD for values that may not fit in a uint64.
func GCDBig(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}
