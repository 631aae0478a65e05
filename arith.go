package fixint

// Add returns x + n. The sum is computed byte by byte with the carry held
// in a widened scratch; overflow of the whole value wraps modulo 2^width
// and is not reported.
func (x Int) Add(n Int) Int {
	x.mustMatch(n)
	out := New(x.width)
	var carry uint16
	for i := range x.b {
		s := uint16(x.b[i]) + uint16(n.b[i]) + carry
		out.b[i] = byte(s)
		carry = s >> 8
	}
	out.mask()
	return out
}

// Sub returns x - n, computed as x plus the two's complement of n.
func (x Int) Sub(n Int) Int {
	return x.Add(n.Neg())
}

// Neg returns the two's complement negation of x: one's complement plus
// one. Negating the minimum value of the width yields itself.
func (x Int) Neg() Int {
	return x.Not().Inc()
}

// Abs returns the magnitude of x. Abs of the minimum value wraps to
// itself; see QuoRem for how division sidesteps this.
func (x Int) Abs() Int {
	if x.negative() {
		return x.Neg()
	}
	return x
}

// Inc returns x + 1, wrapping at the maximum value of the width.
func (x Int) Inc() Int {
	out := x.clone()
	for i := range out.b {
		out.b[i]++
		if out.b[i] != 0 {
			break
		}
	}
	out.mask()
	return out
}

// Dec returns x - 1, wrapping at the minimum value of the width.
func (x Int) Dec() Int {
	out := x.clone()
	for i := range out.b {
		out.b[i]--
		if out.b[i] != 0xFF {
			break
		}
	}
	out.mask()
	return out
}

// Mul returns x * n: for each set bit of x, the progressively left shifted
// n is added into an accumulator. Overflow wraps modulo 2^width.
func (x Int) Mul(n Int) Int {
	x.mustMatch(n)
	acc := New(x.width)
	m := n
	for i := 0; i < x.width; i++ {
		if x.bit(i) {
			acc = acc.Add(m)
		}
		m = m.Lsh(1)
	}
	return acc
}

// Lsh returns x shifted left by n bits. A negative n shifts right instead;
// n at or beyond the width yields zero.
func (x Int) Lsh(n int) Int {
	if n == 0 {
		return x
	}
	if n < 0 {
		return x.Rsh(-n)
	}
	if n >= x.width {
		return New(x.width)
	}
	// TODO: move whole bytes first and only shift the residual bits.
	out := New(x.width)
	for i := n; i < x.width; i++ {
		if x.bit(i - n) {
			out.setbit(i, true)
		}
	}
	return out
}

// Rsh returns x shifted right by n bits. The shift is logical: zeros enter
// at the top regardless of sign, so negative values do not stay negative.
// It is the primitive that multiplication, division and Scale are built
// on; divide by a power of two if an arithmetic shift is what you need. A
// negative n shifts left instead; n at or beyond the width yields zero.
func (x Int) Rsh(n int) Int {
	if n == 0 {
		return x
	}
	if n < 0 {
		return x.Lsh(-n)
	}
	if n >= x.width {
		return New(x.width)
	}
	out := New(x.width)
	for i := x.width - 1; i >= n; i-- {
		if x.bit(i) {
			out.setbit(i-n, true)
		}
	}
	return out
}
