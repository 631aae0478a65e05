package dec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func fromInt(v int64) *Decimal {
	neg := v < 0
	if neg {
		v = -v
	}
	d := &Decimal{}
	if v == 0 {
		d.digits = []uint8{0}
		return d
	}
	for v > 0 {
		d.digits = append(d.digits, uint8(v%10))
		v /= 10
	}
	d.neg = neg
	return d
}

func TestAdd(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c int64
	}{
		{0, 0, 0},
		{1, 2, 3},
		{9, 1, 10},
		{999, 1, 1000},
		{123, 877, 1000},
		{-2, -1, -3},
		{-2, 1, -1},
		{-1, 1, 0},
		{5, -7, -2},
		{1000, -1, 999},
		{123456789, 987654321, 1111111110},
	} {
		t.Run(fmt.Sprintf("%d/%d+%d=%d", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			d := fromInt(tc.a)
			d.Add(fromInt(tc.b))
			require.Equal(t, fromInt(tc.c).String(), d.String())
		})
	}
}

func TestAddAliased(t *testing.T) {
	d := fromInt(123)
	d.Add(d)
	require.Equal(t, "246", d.String())

	d = fromInt(5)
	for i := 0; i < 10; i++ {
		d.Add(d)
	}
	require.Equal(t, "5120", d.String())
}

func TestSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c int64
	}{
		{0, 0, 0},
		{3, 2, 1},
		{2, 3, -1},
		{1000, 1, 999},
		{100, 100, 0},
		{-5, -3, -2},
		{-3, -5, 2},
		{-2, 3, -5},
		{2, -3, 5},
		{1000000, 999999, 1},
	} {
		t.Run(fmt.Sprintf("%d/%d-%d=%d", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			d := fromInt(tc.a)
			d.Sub(fromInt(tc.b))
			require.Equal(t, fromInt(tc.c).String(), d.String())
		})
	}
}

func TestMul(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c int64
	}{
		{0, 0, 0},
		{0, 123, 0},
		{1, 123, 123},
		{12, 12, 144},
		{99999, 99999, 9999800001},
		{-3, 5, -15},
		{3, -5, -15},
		{-3, -5, 15},
		{-3, 0, 0},
		{128, 2, 256},
	} {
		t.Run(fmt.Sprintf("%d/%d*%d=%d", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			d := fromInt(tc.a)
			d.Mul(fromInt(tc.b))
			require.Equal(t, fromInt(tc.c).String(), d.String())
		})
	}
}

func TestLess(t *testing.T) {
	for idx, tc := range []struct {
		a, b   int64
		result bool
	}{
		{0, 0, false},
		{1, 2, true},
		{2, 1, false},
		{9, 10, true},
		{10, 9, false},
		{100, 100, false},
		// Less compares magnitude only:
		{-5, 3, false},
		{3, -5, true},
	} {
		t.Run(fmt.Sprintf("%d/|%d|<|%d|", idx, tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.result, fromInt(tc.a).Less(fromInt(tc.b)))
		})
	}
}

func TestUnpad(t *testing.T) {
	d := &Decimal{digits: []uint8{1, 0, 0, 0}}
	d.Unpad()
	require.Equal(t, []uint8{1}, d.digits)

	d = &Decimal{digits: []uint8{0, 1, 0, 0}}
	d.Unpad()
	require.Equal(t, []uint8{0, 1}, d.digits)

	// At least one digit survives.
	d = &Decimal{digits: []uint8{0, 0, 0}}
	d.Unpad()
	require.Equal(t, []uint8{0}, d.digits)
	require.Equal(t, "0", d.String())
}

func TestString(t *testing.T) {
	require.Equal(t, "0", Zero().String())
	require.Equal(t, "1", One().String())
	require.Equal(t, "-123", fromInt(-123).String())
	require.Equal(t, "1000000", fromInt(1000000).String())
}
