package fixint

// Cmp compares x to n and returns:
//
//	< 0 if x <  n
//	  0 if x == n
//	> 0 if x >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (x Int) Cmp(n Int) int {
	if x.Equal(n) {
		return 0
	}
	if x.LessThan(n) {
		return -1
	}
	return 1
}

// Equal reports whether x == n. Storage bytes are compared directly, which
// is valid because every operation keeps the bits beyond the width zeroed.
func (x Int) Equal(n Int) bool {
	x.mustMatch(n)
	for i := range x.b {
		if x.b[i] != n.b[i] {
			return false
		}
	}
	return true
}

// LessThan reports whether x < n. Differing signs settle the comparison
// immediately; same sign values compare from the most significant byte
// down, the first differing byte deciding.
func (x Int) LessThan(n Int) bool {
	x.mustMatch(n)
	xneg, nneg := x.negative(), n.negative()
	if xneg != nneg {
		return xneg
	}
	for i := len(x.b) - 1; i >= 0; i-- {
		if x.b[i] != n.b[i] {
			return x.b[i] < n.b[i]
		}
	}
	return false
}

func (x Int) LessOrEqualTo(n Int) bool {
	return !n.LessThan(x)
}

func (x Int) GreaterThan(n Int) bool {
	return n.LessThan(x)
}

func (x Int) GreaterOrEqualTo(n Int) bool {
	return !x.LessThan(n)
}
