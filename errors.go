package fixint

import (
	"log"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("fixint")

var (
	// ErrBitIndex is returned when a bit accessor is given an index at or
	// beyond the value's width.
	ErrBitIndex = Error.New("bit index out of range")

	// ErrByteIndex is returned when a byte accessor is given an index at
	// or beyond the value's storage size.
	ErrByteIndex = Error.New("byte index out of range")

	// ErrDivideByZero is returned when the divisor of Quo, Rem or QuoRem
	// is the zero value.
	ErrDivideByZero = Error.New("divide by zero")

	// ErrZeroWidth is returned when unmarshalling into an Int that was
	// not constructed with a width.
	ErrZeroWidth = Error.New("zero width value")
)

// Policy selects how a Mode reacts to storage and division failures.
type Policy int

const (
	// Strict propagates failures to the caller as errors. The result
	// accompanying a non-nil error must not be used.
	Strict Policy = iota

	// Permissive logs a diagnostic and proceeds with a best effort
	// result: the unchanged value for bit and byte mutations, false for
	// reads, zero for quotient and remainder.
	Permissive
)

// Logf is the diagnostic sink used by a Permissive Mode.
type Logf func(format string, args ...interface{})

// Mode carries the failure policy for the operations that can fail. It is
// an explicit configuration value: construct one and route the fallible
// operations through it when a single policy should govern a computation.
//
// The zero Mode is Strict.
type Mode struct {
	policy Policy
	logf   Logf
}

// NewMode returns a Mode with the given policy. logf may be nil, in which
// case diagnostics go to the standard logger.
func NewMode(policy Policy, logf Logf) Mode {
	if logf == nil {
		logf = log.Printf
	}
	return Mode{policy: policy, logf: logf}
}

// Policy returns the mode's failure policy.
func (m Mode) Policy() Policy { return m.policy }

func (m Mode) fail(err error) error {
	if m.policy == Permissive {
		if m.logf == nil {
			log.Printf("fixint: %v", err)
		} else {
			m.logf("fixint: %v", err)
		}
		return nil
	}
	return err
}

// Bit reads bit i of x under the mode's policy.
func (m Mode) Bit(x Int, i int) (bool, error) {
	v, err := x.Bit(i)
	if err != nil {
		return false, m.fail(err)
	}
	return v, nil
}

// SetBit sets bit i of x to v under the mode's policy. On a permissive
// failure the value is returned unchanged.
func (m Mode) SetBit(x Int, i int, v bool) (Int, error) {
	out, err := x.SetBit(i, v)
	if err != nil {
		return x, m.fail(err)
	}
	return out, nil
}

// Byte reads storage byte i of x under the mode's policy.
func (m Mode) Byte(x Int, i int) (byte, error) {
	v, err := x.Byte(i)
	if err != nil {
		return 0, m.fail(err)
	}
	return v, nil
}

// SetByte sets storage byte i of x under the mode's policy. On a
// permissive failure the value is returned unchanged.
func (m Mode) SetByte(x Int, i int, v byte) (Int, error) {
	out, err := x.SetByte(i, v)
	if err != nil {
		return x, m.fail(err)
	}
	return out, nil
}

// QuoRem divides x by the divisor under the mode's policy. On a permissive
// failure both results are zero.
func (m Mode) QuoRem(x, by Int) (q, r Int, err error) {
	q, r, err = x.QuoRem(by)
	if err != nil {
		return q, r, m.fail(err)
	}
	return q, r, nil
}

// Quo divides x by the divisor under the mode's policy.
func (m Mode) Quo(x, by Int) (Int, error) {
	q, err := x.Quo(by)
	if err != nil {
		return q, m.fail(err)
	}
	return q, nil
}

// Rem returns the remainder of x by the divisor under the mode's policy.
func (m Mode) Rem(x, by Int) (Int, error) {
	r, err := x.Rem(by)
	if err != nil {
		return r, m.fail(err)
	}
	return r, nil
}
