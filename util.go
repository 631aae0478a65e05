package fixint

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// Larger returns the larger of a and b.
func Larger(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b.
func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
