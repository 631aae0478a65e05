// Package dec implements an arbitrary precision, sign and magnitude,
// base 10 digit sequence. It exists purely as a conversion scratchpad for
// rendering fixed width integers as decimal text without native machine
// arithmetic; it is not a general purpose bignum and is never exposed
// outside the parent package.
package dec

// Decimal is a sequence of decimal digits, least significant first, with a
// sign flag. Digits beyond the leading non-zero digit may be present until
// Unpad trims them.
type Decimal struct {
	digits []uint8
	neg    bool
}

// Zero returns a decimal holding 0.
func Zero() *Decimal {
	return &Decimal{digits: []uint8{0}}
}

// One returns a decimal holding 1.
func One() *Decimal {
	return &Decimal{digits: []uint8{1}}
}

// Add adds o into d. The operands may alias: d.Add(d) doubles d. Operands
// of differing sign redirect to subtraction of the sign flipped operand so
// the digit loop only ever works on magnitudes.
func (d *Decimal) Add(o *Decimal) {
	r := o.clone()
	if d.neg != r.neg {
		r.neg = !r.neg
		d.Sub(r)
		return
	}
	for len(d.digits) < len(r.digits) {
		d.digits = append(d.digits, 0)
	}
	for len(r.digits) < len(d.digits) {
		r.digits = append(r.digits, 0)
	}
	var carry uint8
	for i := range d.digits {
		s := d.digits[i] + r.digits[i] + carry
		if s > 9 {
			carry = 1
			s -= 10
		} else {
			carry = 0
		}
		d.digits[i] = s
	}
	if carry != 0 {
		d.digits = append(d.digits, 1)
	}
}

// Sub subtracts o from d. Operands of differing sign redirect to addition;
// otherwise the larger magnitude is subtracted from and the sign flips
// when the operands swap.
func (d *Decimal) Sub(o *Decimal) {
	r := o.clone()
	if d.neg != r.neg {
		r.neg = !r.neg
		d.Add(r)
		return
	}

	sign := d.neg
	a, b := d.digits, r.digits
	for len(a) < len(b) {
		a = append(a, 0)
	}
	for len(b) < len(a) {
		b = append(b, 0)
	}
	if lessMag(a, b) {
		a, b = b, a
		sign = !sign
	}

	var borrow int
	out := make([]uint8, len(a))
	for i := range a {
		v := int(a[i]) - borrow - int(b[i])
		if v < 0 {
			v += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint8(v)
	}

	d.digits = out
	d.Unpad()
	d.neg = sign && !d.isZero()
}

// Mul multiplies d by o using schoolbook digit by digit multiply and
// accumulate, taking the shorter operand as the outer loop.
func (d *Decimal) Mul(o *Decimal) {
	r := o.clone()
	neg := d.neg != r.neg

	a, b := d.digits, r.digits
	if len(b) < len(a) {
		a, b = b, a
	}

	product := Zero()
	for pos, da := range a {
		partial := make([]uint8, len(b)+pos+1)
		var carry uint8
		for i, db := range b {
			v := da*db + carry
			partial[pos+i] = v % 10
			carry = v / 10
		}
		partial[pos+len(b)] = carry
		p := &Decimal{digits: partial}
		p.Unpad()
		product.Add(p)
	}
	product.Unpad()

	d.digits = product.digits
	d.neg = neg && !d.isZero()
}

// Less reports whether d's magnitude is smaller than o's. The sign flags
// play no part.
func (d *Decimal) Less(o *Decimal) bool {
	a, b := d.digits, o.digits
	for len(a) < len(b) {
		a = append(a, 0)
	}
	for len(b) < len(a) {
		b = append(b, 0)
	}
	return lessMag(a, b)
}

// Unpad trims zero digits from the high end, leaving at least one digit.
func (d *Decimal) Unpad() {
	n := len(d.digits)
	for n > 1 && d.digits[n-1] == 0 {
		n--
	}
	d.digits = d.digits[:n]
}

// String renders the digits most significant first with a leading '-' for
// negative values.
func (d *Decimal) String() string {
	out := make([]byte, 0, len(d.digits)+1)
	if d.neg {
		out = append(out, '-')
	}
	for i := len(d.digits) - 1; i >= 0; i-- {
		out = append(out, '0'+d.digits[i])
	}
	return string(out)
}

func (d *Decimal) clone() *Decimal {
	out := &Decimal{digits: make([]uint8, len(d.digits)), neg: d.neg}
	copy(out.digits, d.digits)
	return out
}

func (d *Decimal) isZero() bool {
	for _, dig := range d.digits {
		if dig != 0 {
			return false
		}
	}
	return true
}

// lessMag compares equal length digit slices, most significant first.
func lessMag(a, b []uint8) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
