package gcd

// Of returns the greatest common divisor of all values.
// Of() is 0 and Of(v) is v.
func Of[T Unsigned](vs ...T) T {
	var g T
	for _, v := range vs {
		g = Binary(g, v)
		if g == 1 {
			break
		}
	}

	return g
}
