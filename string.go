package fixint

import (
	"regexp"

	"github.com/shabbyrobe/go-fixint/internal/dec"
)

var (
	decimalPattern = regexp.MustCompile(`^-?[0-9]+$`)
	hexPattern     = regexp.MustCompile(`^0[xX][0-9a-fA-F']+$`)
	octalPattern   = regexp.MustCompile(`^0[1-7][0-7]*$`)
)

// String renders x as decimal digits with a leading '-' for negative
// values and no leading zeros. The conversion doubles a decimal multiplier
// across the bits of the magnitude and accumulates it wherever a bit is
// set, so it holds at any width.
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}
	number := x
	if x.negative() {
		number = x.Neg()
	}
	partial := dec.Zero()
	multiplier := dec.One()
	for i := 0; i < x.width; i++ {
		if number.bit(i) {
			partial.Add(multiplier)
		}
		multiplier.Add(multiplier)
	}
	if x.negative() {
		return "-" + partial.String()
	}
	return partial.String()
}

// BinaryString renders the raw storage bits of x, most significant first.
func (x Int) BinaryString() string {
	out := make([]byte, x.width)
	for i := 0; i < x.width; i++ {
		if x.bit(x.width - 1 - i) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// Parse converts s into an Int of the given width. Three forms are
// recognized:
//
//	-?[0-9]+            decimal; the value wraps modulo 2^width
//	0[xX][0-9a-fA-F']+  hexadecimal raw bits; ' separators are ignored
//	                    and nibbles beyond the width are discarded
//	0[1-7][0-7]*        octal; recognized but conversion is not
//	                    implemented, so it always fails
//
// Anything else fails. On failure the returned value is zero and ok is
// false; callers must check ok before using the value.
func Parse(width int, s string) (v Int, ok bool) {
	v = New(width)
	switch {
	case octalPattern.MatchString(s):
		// Rejecting octal outright beats silently misreading it as
		// decimal.
		return New(width), false

	case hexPattern.MatchString(s):
		// Each character is a nibble; pairs are assembled into storage
		// bytes from the least significant end.
		byteIndex := 0
		var cur byte
		odd := false
		for i := len(s) - 1; i >= 0; i-- {
			c := s[i]
			switch {
			case c == '\'':
				// digit group separator
			case c == 'x' || c == 'X':
				if odd && byteIndex < len(v.b) {
					v.b[byteIndex] = cur
				}
				v.mask()
				return v, true
			default:
				nib := hexNibble(c)
				if odd {
					cur |= nib << 4
					if byteIndex < len(v.b) {
						v.b[byteIndex] = cur
					}
					byteIndex++
					cur = 0
				} else {
					cur = nib
				}
				odd = !odd
			}
		}
		return New(width), false

	case decimalPattern.MatchString(s):
		neg := s[0] == '-'
		if neg {
			s = s[1:]
		}
		scale := FromUint64(width, 1)
		ten := FromUint64(width, 10)
		for i := len(s) - 1; i >= 0; i-- {
			digit := FromUint64(width, uint64(s[i]-'0'))
			v = v.Add(scale.Mul(digit))
			scale = scale.Mul(ten)
		}
		if neg {
			v = v.Neg()
		}
		return v, true
	}
	return v, false
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The value keeps the
// width it was constructed with; unmarshalling into a zero width Int
// returns ErrZeroWidth.
func (x *Int) UnmarshalText(bts []byte) error {
	if x.width == 0 {
		return ErrZeroWidth
	}
	v, ok := Parse(x.width, string(bts))
	if !ok {
		return Error.New("invalid text %q", string(bts))
	}
	*x = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Int) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return Error.New("invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return x.UnmarshalText(bts)
}
