// Package unsigned represents non-negative integers as a recursive chain of
// bits and implements arithmetic on them by structural recursion: a
// ripple-carry adder, a ripple-borrow subtractor and a shift-and-add
// multiplier.
//
// An Unsigned is either a Single digit or a Composite of a more significant
// prefix and one trailing, least significant digit:
//
//	value(Single{b})       = b
//	value(Composite{p, b}) = 2*value(p) + b
//
// Values are immutable. A representation is canonical when it carries no
// redundant leading zero digit; every public operation returns canonical
// values except the ripple primitives AddWithCarry and SubWithBorrow and the
// explicit widening helpers FromBitsRaw and Pad. Structural equality (==) is
// numeric equality only between canonical values.
//
// Operations without a defined result (decrementing zero, the prefix of a
// single digit) return an error wrapping ErrPoison. Poison is never a value:
// it travels as an error until a caller materializes it with Must, which
// panics.
package unsigned

import (
	"fmt"
	"math/big"

	"github.com/Aleod-m/typers/pkg/bit"
)

// Unsigned is the closed sum of Single and Composite.
type Unsigned interface {
	// Lsb returns the least significant digit.
	Lsb() bit.Bit
	// Depth returns the number of digits, leading zeros included.
	Depth() int
	// String returns the binary digits, most significant first.
	String() string

	unsigned()
}

// Single is a one-digit value.
type Single struct {
	Digit bit.Bit
}

// Composite appends the least significant Digit to Prefix.
// Prefix must not be nil.
type Composite struct {
	Prefix Unsigned
	Digit  bit.Bit
}

func (s Single) Lsb() bit.Bit    { return s.Digit }
func (c Composite) Lsb() bit.Bit { return c.Digit }

func (Single) Depth() int      { return 1 }
func (c Composite) Depth() int { return c.Prefix.Depth() + 1 }

func (s Single) String() string    { return s.Digit.String() }
func (c Composite) String() string { return c.Prefix.String() + c.Digit.String() }

func (Single) unsigned()    {}
func (Composite) unsigned() {}

var (
	// Zero is the canonical zero.
	Zero Unsigned = Single{Digit: bit.Zero}
	// One is the canonical one.
	One Unsigned = Single{Digit: bit.One}
)

func badVariant(u Unsigned) string {
	return fmt.Sprintf("unsigned: not a value: %#v", u)
}

// FromBits builds a canonical value from digits given most significant first.
// No digits means zero.
func FromBits(bits ...bit.Bit) Unsigned {
	return Canonicalize(FromBitsRaw(bits...))
}

// FromBitsRaw builds the representation of bits exactly, keeping leading zeros.
func FromBitsRaw(bits ...bit.Bit) Unsigned {
	if len(bits) == 0 {
		return Zero
	}
	var u Unsigned = Single{Digit: bits[0]}
	for _, b := range bits[1:] {
		u = Composite{Prefix: u, Digit: b}
	}
	return u
}

// FromUint64 returns the canonical representation of n.
func FromUint64(n uint64) Unsigned {
	if n == 0 {
		return Zero
	}
	var bits []bit.Bit
	for ; n > 0; n >>= 1 {
		bits = append(bits, bit.FromBool(n&1 == 1))
	}
	reverse(bits)
	return FromBitsRaw(bits...)
}

// FromBig returns the canonical representation of x.
func FromBig(x *big.Int) (Unsigned, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegative, x)
	}
	if x.Sign() == 0 {
		return Zero, nil
	}
	n := x.BitLen()
	bits := make([]bit.Bit, n)
	for i := 0; i < n; i++ {
		bits[n-1-i] = bit.FromBool(x.Bit(i) == 1)
	}
	return FromBitsRaw(bits...), nil
}

// Bits returns the digits of u, most significant first.
func Bits(u Unsigned) []bit.Bit {
	var bits []bit.Bit
	for {
		switch v := u.(type) {
		case Single:
			bits = append(bits, v.Digit)
			reverse(bits)
			return bits
		case Composite:
			bits = append(bits, v.Digit)
			u = v.Prefix
		default:
			panic(badVariant(u))
		}
	}
}

func reverse(bits []bit.Bit) {
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
}

// Msb returns the more significant prefix of u. A single digit has no
// prefix and yields poison.
func Msb(u Unsigned) (Unsigned, error) {
	switch v := u.(type) {
	case Single:
		return nil, &PoisonError{Op: "msb", Operand: u}
	case Composite:
		return v.Prefix, nil
	}
	panic(badVariant(u))
}

// Lsb returns the least significant digit of u.
func Lsb(u Unsigned) bit.Bit {
	return u.Lsb()
}

// Uint64 materializes u. Values with more than 64 significant digits
// report ErrOverflow.
func Uint64(u Unsigned) (uint64, error) {
	var v uint64
	for _, b := range Bits(u) {
		if v>>63 != 0 {
			return 0, fmt.Errorf("%w: %s does not fit in 64 bits", ErrOverflow, u)
		}
		v = v<<1 | uint64(b.Usize())
	}
	return v, nil
}

// Usize materializes u as a machine integer. It panics if u does not fit.
func Usize(u Unsigned) uint {
	v, err := Uint64(u)
	if err != nil {
		panic(err)
	}
	if uint64(uint(v)) != v {
		panic(fmt.Errorf("%w: %s does not fit in uint", ErrOverflow, u))
	}
	return uint(v)
}

// Big materializes u at any width.
func Big(u Unsigned) *big.Int {
	z := new(big.Int)
	for _, b := range Bits(u) {
		z.Lsh(z, 1)
		if b == bit.One {
			z.SetBit(z, 0, 1)
		}
	}
	return z
}

// Decimal formats the numeric value of u in base 10.
func Decimal(u Unsigned) string {
	return Big(u).String()
}
