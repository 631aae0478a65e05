package fixint

// QuoRem returns the quotient q and remainder r of x divided by a non-zero
// divisor. A zero divisor returns ErrDivideByZero and zero results.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/by     with the result truncated to zero
//	r = x - by*q
//
// so a non-zero remainder carries the sign of the dividend. Both operands
// are widened by one bit internally before taking absolute values:
// negating the minimum value of the width overflows at width bits but is
// exact one bit up.
func (x Int) QuoRem(by Int) (q, r Int, err error) {
	x.mustMatch(by)
	q, r = New(x.width), New(x.width)
	if by.IsZero() {
		return q, r, ErrDivideByZero
	}

	resultNegative := x.negative() != by.negative()

	// |MinInt| has the same bit pattern as MinInt, and zero extending
	// that pattern reads as the correct magnitude one bit up.
	a := x.Abs().extend(x.width + 1)
	b := by.Abs().extend(x.width + 1)

	if a.LessThan(b) {
		r = x // x % by == x when |x| < |by|
		return q, r, nil
	}

	// Binary long division: align the subtractand with the accumulator's
	// highest bit, then walk it back down one position at a time.
	acc := a
	shift := a.FindMsb() - b.FindMsb()
	subtractand := b.Lsh(shift)
	for i := shift; i >= 0; i-- {
		if subtractand.LessOrEqualTo(acc) {
			acc = acc.Sub(subtractand)
			q.setbit(i, true)
		}
		subtractand = subtractand.Rsh(1)
	}

	if resultNegative {
		q = q.Neg()
	}
	r = acc.extend(x.width)
	if x.negative() {
		r = r.Neg()
	}
	return q, r, nil
}

// Quo returns the quotient of x divided by a non-zero divisor; see QuoRem.
func (x Int) Quo(by Int) (Int, error) {
	q, _, err := x.QuoRem(by)
	return q, err
}

// Rem returns the remainder of x divided by a non-zero divisor; see
// QuoRem.
func (x Int) Rem(by Int) (Int, error) {
	_, r, err := x.QuoRem(by)
	return r, err
}

// Gcd returns the greatest common divisor of a and b by Euclid's
// algorithm. Negative inputs flow through the truncating remainder, so the
// result's sign follows the last non-zero operand.
func Gcd(a, b Int) Int {
	a.mustMatch(b)
	for !b.IsZero() {
		_, r, _ := a.QuoRem(b)
		a, b = b, r
	}
	return a
}

// Ipow returns a raised to exp by square and multiply, wrapping modulo
// 2^width like the operators it is built on. The exponent is consumed with
// logical right shifts, so a negative exp is treated as its unsigned bit
// pattern.
func Ipow(a, exp Int) Int {
	a.mustMatch(exp)
	result := FromUint64(a.width, 1)
	base := a
	for {
		if exp.IsOdd() {
			result = result.Mul(base)
		}
		exp = exp.Rsh(1)
		if exp.IsZero() {
			break
		}
		base = base.Mul(base)
	}
	return result
}
