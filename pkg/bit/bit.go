// Package bit implements the two-valued digit that the unsigned
// representation is built from, together with its logic and half/full
// adder and subtractor signals.
//
// Every higher-level operation in pkg/unsigned is expressed through the
// primitives of this package. They are total over {Zero, One}.
package bit

import (
	"fmt"

	"github.com/Aleod-m/typers/pkg/boolean"
)

// Bit is a single binary digit. The set of values is closed: the zero value
// is Zero and One is the only other value.
type Bit struct {
	set bool
}

var (
	// Zero is the cleared digit.
	Zero = Bit{}
	// One is the set digit.
	One = Bit{set: true}
)

// FromBool returns One for true and Zero for false.
func FromBool(v bool) Bit {
	return Bit{set: v}
}

// Parse converts the characters '0' and '1'.
func Parse(r rune) (Bit, error) {
	switch r {
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	}
	return Zero, fmt.Errorf("bit: invalid digit %q", r)
}

// Usize returns the numeric value of b.
func (b Bit) Usize() uint {
	if b.set {
		return 1
	}
	return 0
}

// Equal reports whether b and r are the same digit.
func (b Bit) Equal(r Bit) bool {
	return b == r
}

func (b Bit) String() string {
	if b.set {
		return "1"
	}
	return "0"
}

// IsZero reports whether b is Zero.
func (b Bit) IsZero() boolean.Bool {
	return boolean.Bool(!b.set)
}

// Not returns the other digit.
func (b Bit) Not() Bit {
	return Bit{set: !b.set}
}

// And is set when both digits are set.
func (b Bit) And(r Bit) Bit {
	return Bit{set: b.set && r.set}
}

// Or is set when either digit is set.
func (b Bit) Or(r Bit) Bit {
	return Bit{set: b.set || r.set}
}

// Xor is set when the digits differ.
func (b Bit) Xor(r Bit) Bit {
	return Bit{set: b.set != r.set}
}

// Add is the half-adder sum.
func (b Bit) Add(r Bit) Bit {
	return b.Xor(r)
}

// Carry is the half-adder carry-out.
func (b Bit) Carry(r Bit) Bit {
	return b.And(r)
}

// FullAdd is the sum digit of b + r + c.
func (b Bit) FullAdd(r, c Bit) Bit {
	return b.Add(r).Add(c)
}

// FullCarry is the carry-out of b + r + c, the majority of the three inputs.
// It is built from two half adders; at most one of them carries.
func (b Bit) FullCarry(r, c Bit) Bit {
	return b.Add(r).Carry(c).Xor(b.Carry(r))
}

// Diff is the digit of b - r ignoring any borrow.
func (b Bit) Diff(r Bit) Bit {
	return b.Xor(r)
}

// Borrow is One iff b < r.
func (b Bit) Borrow(r Bit) Bit {
	return b.Not().And(r)
}

// FullDiff is the digit of b - r - br.
func (b Bit) FullDiff(r, br Bit) Bit {
	return b.Diff(r).Diff(br)
}

// FullBorrow is the borrow-out of b - r - br. As with FullCarry, at most one
// of the two half subtractors borrows.
func (b Bit) FullBorrow(r, br Bit) Bit {
	return b.Borrow(r).Xor(b.Diff(r).Borrow(br))
}
