package fixint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeZeroValueIsStrict(t *testing.T) {
	var m Mode
	require.Equal(t, Strict, m.Policy())

	_, err := m.Bit(i8(1), 8)
	require.ErrorIs(t, err, ErrBitIndex)
}

func TestModeStrict(t *testing.T) {
	m := NewMode(Strict, nil)

	_, err := m.Bit(i8(1), 8)
	require.ErrorIs(t, err, ErrBitIndex)

	_, err = m.SetBit(i8(1), -1, true)
	require.ErrorIs(t, err, ErrBitIndex)

	_, err = m.Byte(i8(1), 1)
	require.ErrorIs(t, err, ErrByteIndex)

	_, err = m.SetByte(i8(1), 1, 0xFF)
	require.ErrorIs(t, err, ErrByteIndex)

	_, _, err = m.QuoRem(i8(1), i8(0))
	require.ErrorIs(t, err, ErrDivideByZero)

	_, err = m.Quo(i8(1), i8(0))
	require.ErrorIs(t, err, ErrDivideByZero)

	_, err = m.Rem(i8(1), i8(0))
	require.ErrorIs(t, err, ErrDivideByZero)

	// Successes flow through untouched.
	v, err := m.Bit(i8(1), 0)
	require.NoError(t, err)
	require.True(t, v)

	q, r, err := m.QuoRem(i8(7), i8(2))
	require.NoError(t, err)
	require.True(t, q.Equal(i8(3)))
	require.True(t, r.Equal(i8(1)))
}

func TestModePermissive(t *testing.T) {
	var logged []string
	m := NewMode(Permissive, func(format string, args ...interface{}) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})

	// Reads return the zero of their type; mutations return the value
	// unchanged; division returns zero results. All log and report no
	// error.
	v, err := m.Bit(i8(1), 8)
	require.NoError(t, err)
	require.False(t, v)

	x, err := m.SetBit(i8(5), 100, true)
	require.NoError(t, err)
	require.True(t, x.Equal(i8(5)))

	b, err := m.Byte(i8(1), 3)
	require.NoError(t, err)
	require.Equal(t, byte(0), b)

	x, err = m.SetByte(i8(5), 3, 0xFF)
	require.NoError(t, err)
	require.True(t, x.Equal(i8(5)))

	q, r, err := m.QuoRem(i8(7), i8(0))
	require.NoError(t, err)
	require.True(t, q.IsZero())
	require.True(t, r.IsZero())

	require.Len(t, logged, 5)
	for _, line := range logged {
		require.Contains(t, line, "fixint:")
	}
	require.Contains(t, logged[4], "divide by zero")

	// Valid operations do not log.
	logged = logged[:0]
	v, err = m.Bit(i8(1), 0)
	require.NoError(t, err)
	require.True(t, v)
	require.Empty(t, logged)
}
