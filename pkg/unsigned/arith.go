package unsigned

import (
	"fmt"

	"github.com/Aleod-m/typers/pkg/bit"
	"github.com/Aleod-m/typers/pkg/boolean"
)

// IsZero reports whether every digit of u is zero.
func IsZero(u Unsigned) boolean.Bool {
	switch v := u.(type) {
	case Single:
		return v.Digit.IsZero()
	case Composite:
		return v.Digit.IsZero().And(IsZero(v.Prefix))
	}
	panic(badVariant(u))
}

// Inc returns u + 1. The width grows by one digit when every digit is One.
func Inc(u Unsigned) Unsigned {
	return Canonicalize(inc(u))
}

func inc(u Unsigned) Unsigned {
	switch v := u.(type) {
	case Single:
		if v.Digit.IsZero() {
			return One
		}
		return Composite{Prefix: One, Digit: bit.Zero}
	case Composite:
		if v.Digit.IsZero() {
			return Composite{Prefix: v.Prefix, Digit: bit.One}
		}
		return Composite{Prefix: inc(v.Prefix), Digit: bit.Zero}
	}
	panic(badVariant(u))
}

// Dec returns u - 1, or poison when u is zero.
func Dec(u Unsigned) (Unsigned, error) {
	d, ok := dec(u)
	if !ok {
		return nil, &PoisonError{Op: "dec", Operand: u}
	}
	return Canonicalize(d), nil
}

// dec borrows through trailing zero digits and fails only when the borrow
// runs off the most significant digit.
func dec(u Unsigned) (Unsigned, bool) {
	switch v := u.(type) {
	case Single:
		if v.Digit.IsZero() {
			return nil, false
		}
		return Zero, true
	case Composite:
		if !v.Digit.IsZero() {
			return Composite{Prefix: v.Prefix, Digit: bit.Zero}, true
		}
		p, ok := dec(v.Prefix)
		if !ok {
			return nil, false
		}
		return Composite{Prefix: p, Digit: bit.One}, true
	}
	panic(badVariant(u))
}

// Bsl shifts u left by one digit, doubling it.
func Bsl(u Unsigned) Unsigned {
	return Canonicalize(Composite{Prefix: u, Digit: bit.Zero})
}

// Bsr shifts u right by one digit, halving it and rounding down.
func Bsr(u Unsigned) Unsigned {
	switch v := u.(type) {
	case Single:
		return Zero
	case Composite:
		return Canonicalize(v.Prefix)
	}
	panic(badVariant(u))
}

// Pad zero-extends u at its most significant end to depth digits. Values
// already at least that deep are returned unchanged.
func Pad(u Unsigned, depth int) Unsigned {
	bits := Bits(u)
	if len(bits) >= depth {
		return u
	}
	padded := make([]bit.Bit, depth-len(bits), depth)
	return FromBitsRaw(append(padded, bits...)...)
}

// align pads the shallower operand so that both have the same depth.
func align(lhs, rhs Unsigned) (Unsigned, Unsigned) {
	depth := max(lhs.Depth(), rhs.Depth())
	return Pad(lhs, depth), Pad(rhs, depth)
}

func checkDepth(op string, lhs, rhs Unsigned) error {
	if l, r := lhs.Depth(), rhs.Depth(); l != r {
		return fmt.Errorf("%w: %s of %d and %d digits", ErrWidthMismatch, op, l, r)
	}
	return nil
}

// AddWithCarry is the ripple-carry adder: it adds lhs, rhs and the incoming
// carry digit by digit, pairing positions by depth. Both operands must have
// the same depth. The result has one more digit than the operands, the final
// carry, and is not canonicalized.
func AddWithCarry(lhs, rhs Unsigned, carry bit.Bit) (Unsigned, error) {
	if err := checkDepth("add", lhs, rhs); err != nil {
		return nil, err
	}
	return addWithCarry(lhs, rhs, carry), nil
}

func addWithCarry(lhs, rhs Unsigned, c bit.Bit) Unsigned {
	a, b := lhs.Lsb(), rhs.Lsb()
	sum := a.FullAdd(b, c)
	carry := a.FullCarry(b, c)

	switch l := lhs.(type) {
	case Single:
		return Composite{Prefix: Single{Digit: carry}, Digit: sum}
	case Composite:
		r := rhs.(Composite)
		return Composite{Prefix: addWithCarry(l.Prefix, r.Prefix, carry), Digit: sum}
	}
	panic(badVariant(lhs))
}

// Add returns lhs + rhs. Operands of different depth are zero-extended first.
func Add(lhs, rhs Unsigned) Unsigned {
	l, r := align(lhs, rhs)
	return Canonicalize(addWithCarry(l, r, bit.Zero))
}

// SubWithBorrow is the ripple-borrow subtractor. Both operands must have the
// same depth. It returns the difference digits, at the operands' depth and
// not canonicalized, together with the final borrow-out. A final borrow of
// One means rhs + borrow exceeded lhs and the digits hold the difference
// modulo 2^depth.
func SubWithBorrow(lhs, rhs Unsigned, borrow bit.Bit) (Unsigned, bit.Bit, error) {
	if err := checkDepth("sub", lhs, rhs); err != nil {
		return nil, bit.Zero, err
	}
	d, out := subWithBorrow(lhs, rhs, borrow)
	return d, out, nil
}

func subWithBorrow(lhs, rhs Unsigned, br bit.Bit) (Unsigned, bit.Bit) {
	a, b := lhs.Lsb(), rhs.Lsb()
	diff := a.FullDiff(b, br)
	borrow := a.FullBorrow(b, br)

	switch l := lhs.(type) {
	case Single:
		return Single{Digit: diff}, borrow
	case Composite:
		r := rhs.(Composite)
		p, out := subWithBorrow(l.Prefix, r.Prefix, borrow)
		return Composite{Prefix: p, Digit: diff}, out
	}
	panic(badVariant(lhs))
}

// Sub returns lhs - rhs. Underflow is not detected: when rhs > lhs the
// result is the difference modulo 2^w, w being the larger operand depth.
func Sub(lhs, rhs Unsigned) Unsigned {
	l, r := align(lhs, rhs)
	d, _ := subWithBorrow(l, r, bit.Zero)
	return Canonicalize(d)
}

// Compare returns -1, 0 or +1 as lhs is less than, equal to or greater than
// rhs. The ordering comes from the borrow-out of lhs - rhs.
func Compare(lhs, rhs Unsigned) int {
	l, r := align(lhs, rhs)
	d, borrow := subWithBorrow(l, r, bit.Zero)
	switch {
	case borrow == bit.One:
		return -1
	case bool(IsZero(d)):
		return 0
	}
	return 1
}

// Equal reports numeric equality.
func Equal(lhs, rhs Unsigned) bool {
	return Canonicalize(lhs) == Canonicalize(rhs)
}

// Mul returns lhs * rhs by shift-and-add long multiplication over the digits
// of lhs.
func Mul(lhs, rhs Unsigned) Unsigned {
	return Canonicalize(mul(lhs, rhs))
}

func mul(lhs, rhs Unsigned) Unsigned {
	switch l := lhs.(type) {
	case Single:
		return boolean.Select(l.Digit.IsZero(), Zero, rhs)
	case Composite:
		partial := boolean.Select(l.Digit.IsZero(), Zero, rhs)
		return Add(partial, Bsl(mul(l.Prefix, rhs)))
	}
	panic(badVariant(lhs))
}
