package fixint

import (
	"math/big"
	"math/bits"
)

// Int is a signed two's complement integer of fixed bit width.
//
// Storage is a little endian byte slice covering the width, rounded up to
// whole bytes. Bits at positions at or beyond the width are kept zero by
// every operation; equality and ordering rely on that invariant.
type Int struct {
	width int
	b     []byte
}

var bigOne = new(big.Int).SetInt64(1)

// New returns the zero value of the given width. Width must be at least 1.
func New(width int) Int {
	if width < 1 {
		panic("fixint: width must be at least 1")
	}
	return Int{width: width, b: make([]byte, (width+7)/8)}
}

// FromUint64 creates an Int of the given width from v, truncating to the
// width.
func FromUint64(width int, v uint64) Int {
	x := New(width)
	for i := range x.b {
		if i >= 8 {
			break
		}
		x.b[i] = byte(v >> (8 * i))
	}
	x.mask()
	return x
}

// FromInt64 creates an Int of the given width from v, sign extending when
// the width exceeds 64 bits and truncating when it does not.
func FromInt64(width int, v int64) Int {
	x := New(width)
	fill := byte(0)
	if v < 0 {
		fill = 0xFF
	}
	u := uint64(v)
	for i := range x.b {
		if i < 8 {
			x.b[i] = byte(u >> (8 * i))
		} else {
			x.b[i] = fill
		}
	}
	x.mask()
	return x
}

// FromRawBits writes a native 64 bit pattern verbatim into storage,
// truncated or zero extended to the width and re-masked. It exists for
// test fixtures; FromInt64 and FromUint64 are the general entry points.
func FromRawBits(width int, v uint64) Int {
	return FromUint64(width, v)
}

// FromBigInt creates an Int of the given width from v, wrapping modulo
// 2^width.
func FromBigInt(width int, v *big.Int) Int {
	x := New(width)
	wrap := new(big.Int).Lsh(bigOne, uint(width))
	m := new(big.Int).Mod(v, wrap)
	by := m.Bytes() // big endian
	for i := 0; i < len(by) && i < len(x.b); i++ {
		x.b[i] = by[len(by)-1-i]
	}
	x.mask()
	return x
}

// MinInt returns the most negative value of the width: only the sign bit
// set.
func MinInt(width int) Int {
	x := New(width)
	x.setbit(width-1, true)
	return x
}

// MaxInt returns the largest value of the width: every bit below the sign
// bit set.
func MaxInt(width int) Int {
	return MinInt(width).Not()
}

// RandSource supplies random bits to Rand.
type RandSource interface {
	Uint64() uint64
}

// Rand generates a random Int of the given width from an external source.
func Rand(width int, source RandSource) Int {
	x := New(width)
	var v uint64
	for i := range x.b {
		if i%8 == 0 {
			v = source.Uint64()
		}
		x.b[i] = byte(v >> (8 * (i % 8)))
	}
	x.mask()
	return x
}

// Width returns the bit width the value was constructed with.
func (x Int) Width() int { return x.width }

// NumBytes returns the number of storage bytes covering the width.
func (x Int) NumBytes() int { return len(x.b) }

// Bit reads bit i. Bit 0 is least significant; i at or beyond the width
// returns ErrBitIndex.
func (x Int) Bit(i int) (bool, error) {
	if i < 0 || i >= x.width {
		return false, ErrBitIndex
	}
	return x.bit(i), nil
}

// SetBit returns a copy of x with bit i set to v.
func (x Int) SetBit(i int, v bool) (Int, error) {
	if i < 0 || i >= x.width {
		return x, ErrBitIndex
	}
	out := x.clone()
	out.setbit(i, v)
	return out, nil
}

// Byte reads storage byte i. Byte 0 is least significant.
func (x Int) Byte(i int) (byte, error) {
	if i < 0 || i >= len(x.b) {
		return 0, ErrByteIndex
	}
	return x.b[i], nil
}

// SetByte returns a copy of x with storage byte i replaced. The top byte
// is re-masked, so bits beyond the width cannot be smuggled in.
func (x Int) SetByte(i int, v byte) (Int, error) {
	if i < 0 || i >= len(x.b) {
		return x, ErrByteIndex
	}
	out := x.clone()
	out.b[i] = v
	out.mask()
	return out, nil
}

func (x Int) IsZero() bool {
	for _, b := range x.b {
		if b != 0 {
			return false
		}
	}
	return true
}

func (x Int) IsOdd() bool { return x.b[0]&1 == 1 }

// Sign returns -1 if x is negative, 0 if x is zero and 1 otherwise.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.negative() {
		return -1
	}
	return 1
}

// Not returns the one's complement of x with the top byte re-masked.
func (x Int) Not() Int {
	out := x.clone()
	for i := range out.b {
		out.b[i] = ^out.b[i]
	}
	out.mask()
	return out
}

// FindMsb returns the 0 based index of the highest set bit, scanning
// storage from the most significant byte down, or -1 if x is zero.
func (x Int) FindMsb() int {
	for i := len(x.b) - 1; i >= 0; i-- {
		if x.b[i] != 0 {
			return i*8 + bits.Len8(x.b[i]) - 1
		}
	}
	return -1
}

// Scale returns floor(log2(|x|)) by repeated halving, with Scale of zero
// being 0. The minimum value of the width, whose negation is itself,
// reports width-1.
func (x Int) Scale() int {
	v := x
	if x.negative() {
		v = x.Neg()
		if v.Equal(x) {
			return x.width - 1
		}
	}
	one := FromUint64(x.width, 1)
	scale := 0
	for v.GreaterThan(one) {
		scale++
		v = v.Rsh(1)
	}
	return scale
}

// AsUint64 truncates x to fit in a uint64.
func (x Int) AsUint64() uint64 {
	var v uint64
	for i := 0; i < len(x.b) && i < 8; i++ {
		v |= uint64(x.b[i]) << (8 * i)
	}
	return v
}

// AsInt64 truncates x to fit in an int64, sign extending from the value's
// sign bit. Values outside the int64 range over/underflow.
func (x Int) AsInt64() int64 {
	v := x.AsUint64()
	if x.width < 64 && x.negative() {
		v |= ^uint64(0) << uint(x.width)
	}
	return int64(v)
}

// AsBigInt allocates a big.Int holding the same value as x.
func (x Int) AsBigInt() *big.Int {
	neg := x.negative()
	mag := x
	if neg {
		mag = x.Neg()
	}
	by := make([]byte, len(x.b))
	for i, bb := range mag.b {
		by[len(by)-1-i] = bb
	}
	b := new(big.Int).SetBytes(by)
	if neg {
		b.Neg(b)
	}
	return b
}

// Resize converts x to a new width. Widening sign extends; narrowing
// truncates to the low bits and re-masks.
func (x Int) Resize(width int) Int {
	out := x.extend(width)
	if width > x.width && x.negative() {
		for i := x.width; i < width; i++ {
			out.setbit(i, true)
		}
	}
	return out
}

// extend is a pure bit copy into a new width: no sign extension. Narrowing
// truncates.
func (x Int) extend(width int) Int {
	out := New(width)
	n := len(x.b)
	if len(out.b) < n {
		n = len(out.b)
	}
	copy(out.b, x.b[:n])
	out.mask()
	return out
}

func (x Int) clone() Int {
	out := Int{width: x.width, b: make([]byte, len(x.b))}
	copy(out.b, x.b)
	return out
}

// mask zeroes the bits of the top storage byte beyond the width. Every
// code path that could set them calls this before the value escapes.
func (x Int) mask() {
	x.b[len(x.b)-1] &= byte(0xFF >> (len(x.b)*8 - x.width))
}

func (x Int) bit(i int) bool {
	return x.b[i/8]&(1<<uint(i%8)) != 0
}

func (x Int) setbit(i int, v bool) {
	m := byte(1) << uint(i%8)
	if v {
		x.b[i/8] |= m
	} else {
		x.b[i/8] &^= m
	}
}

func (x Int) negative() bool {
	return x.bit(x.width - 1)
}

func (x Int) mustMatch(n Int) {
	if x.width != n.width {
		panic("fixint: operand width mismatch")
	}
}
