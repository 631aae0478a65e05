/*
Package fixint provides a signed two's complement integer of arbitrary but
fixed bit width.

An Int behaves like a hardware word of N bits: arithmetic wraps modulo 2^N,
bit N-1 is the sign bit, and the width is fixed when the value is created.
Operands of different widths may not be mixed without an explicit Resize.

Int is a value type; all operations return new values and never mutate an
operand:

	a := fixint.FromInt64(8, 127)
	b := a.Inc()
	fmt.Println(a, b)
	// Output: 127 -128

Ints can be created from a variety of sources:

	New(width int) Int
	FromInt64(width int, v int64) Int
	FromUint64(width int, v uint64) Int
	FromRawBits(width int, v uint64) Int
	FromBigInt(width int, v *big.Int) Int
	Parse(width int, s string) (Int, bool)
	Rand(width int, source RandSource) Int

Int supports the following marshalling interfaces:

	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Decimal rendering is performed entirely with an internal arbitrary precision
digit engine, so it works at any width without relying on native 64-bit
arithmetic.

Because an Int carries a byte slice, Go's == operator does not compare
values; use Equal or Cmp. The zero value of Int has zero width and is not
usable; construct values with New or one of the From functions.
*/
package fixint
