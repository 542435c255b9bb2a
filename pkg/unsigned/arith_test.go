package unsigned

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Aleod-m/typers/pkg/bit"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upTo returns the canonical values 0..n-1.
func upTo(n uint64) []Unsigned {
	out := make([]Unsigned, n)
	for i := range out {
		out[i] = FromUint64(uint64(i))
	}
	return out
}

func TestScenarios(t *testing.T) {
	assert.Equal(t, uint(3), Usize(Add(U1, U2)), "1 + 2")
	assert.Equal(t, uint(0), Usize(Sub(U2, U2)), "2 - 2")
	assert.Equal(t, uint(12), Usize(Mul(U4, U3)), "4 * 3")
	assert.Equal(t, uint(16), Usize(Bsl(U8)), "8 << 1")
	assert.Equal(t, uint(4), Usize(Bsr(U8)), "8 >> 1")
}

func TestInc(t *testing.T) {
	assert.Equal(t, One, Inc(Zero))
	assert.Equal(t, Unsigned(Composite{Prefix: One, Digit: bit.Zero}), Inc(One))

	for i, u := range upTo(130) {
		assert.Equal(t, uint(i+1), Usize(Inc(u)))
	}

	// Carries propagate through every digit.
	assert.Equal(t, uint(256), Usize(Inc(FromUint64(255))))
}

func TestDec(t *testing.T) {
	d, err := Dec(One)
	require.NoError(t, err)
	assert.Equal(t, Zero, d)

	for i, u := range upTo(130)[1:] {
		d, err := Dec(u)
		require.NoError(t, err)
		assert.Equal(t, uint(i), Usize(d))
		assert.True(t, IsCanonical(d))
	}
}

func TestDecZeroIsPoison(t *testing.T) {
	_, err := Dec(Zero)
	require.ErrorIs(t, err, ErrPoison)

	// A wide zero underflows the same way.
	_, err = Dec(Pad(Zero, 5))
	require.ErrorIs(t, err, ErrPoison)

	assert.Panics(t, func() { Must(Dec(Zero)) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		perr, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(perr, ErrPoison))
	}()
	Must(Dec(U0))
}

func TestIncDecRoundTrip(t *testing.T) {
	for _, u := range upTo(200) {
		d, err := Dec(Inc(u))
		require.NoError(t, err)
		assert.Equal(t, u, Canonicalize(d))

		if IsZero(u) {
			continue
		}
		d, err = Dec(u)
		require.NoError(t, err)
		assert.Equal(t, u, Canonicalize(Inc(d)))
	}
}

func TestAddWithCarry(t *testing.T) {
	five := FromUint64(5)
	six := FromUint64(6)

	sum, err := AddWithCarry(five, six, bit.Zero)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Depth())
	assert.Equal(t, uint(11), Usize(sum))

	sum, err = AddWithCarry(five, six, bit.One)
	require.NoError(t, err)
	assert.Equal(t, uint(12), Usize(sum))

	// Equal-depth operands that do not carry keep a leading zero.
	sum, err = AddWithCarry(FromUint64(4), Pad(One, 3), bit.Zero)
	require.NoError(t, err)
	assert.Equal(t, "0101", sum.String())
	assert.False(t, IsCanonical(sum))

	_, err = AddWithCarry(FromUint64(5), One, bit.Zero)
	assert.ErrorIs(t, err, ErrWidthMismatch)
}

func TestAdd(t *testing.T) {
	vals := upTo(40)
	for i, a := range vals {
		for j, b := range vals {
			got := Add(a, b)
			require.Equal(t, uint(i+j), Usize(got), "%d + %d", i, j)
			require.True(t, IsCanonical(got))
		}
	}

	// Mismatched widths in either order are zero-extended.
	big := FromUint64(1 << 20)
	assert.Equal(t, uint(1<<20+1), Usize(Add(big, One)))
	assert.Equal(t, uint(1<<20+1), Usize(Add(One, big)))
	assert.Equal(t, uint(3), Usize(Add(Pad(One, 9), FromUint64(2))))
}

func TestAddLaws(t *testing.T) {
	vals := upTo(16)
	for _, a := range vals {
		require.Equal(t, a, Add(a, Zero))
		for _, b := range vals {
			require.Equal(t, Add(a, b), Add(b, a))
			for _, c := range vals {
				require.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)))
			}
		}
	}
}

func TestSubWithBorrow(t *testing.T) {
	d, borrow, err := SubWithBorrow(FromUint64(6), FromUint64(5), bit.Zero)
	require.NoError(t, err)
	assert.Equal(t, bit.Zero, borrow)
	assert.Equal(t, "001", d.String())

	d, borrow, err = SubWithBorrow(FromUint64(6), FromUint64(5), bit.One)
	require.NoError(t, err)
	assert.Equal(t, bit.Zero, borrow)
	assert.Equal(t, uint(0), Usize(d))

	// 5 - 6 borrows out of the top digit and wraps modulo 2^3.
	d, borrow, err = SubWithBorrow(FromUint64(5), FromUint64(6), bit.Zero)
	require.NoError(t, err)
	assert.Equal(t, bit.One, borrow)
	assert.Equal(t, uint(7), Usize(d))

	_, _, err = SubWithBorrow(FromUint64(5), One, bit.Zero)
	assert.ErrorIs(t, err, ErrWidthMismatch)
}

func TestSub(t *testing.T) {
	vals := upTo(40)
	for i, a := range vals {
		require.Equal(t, Zero, Sub(a, a), "%d - %d", i, i)
		for j, b := range vals[:i+1] {
			got := Sub(a, b)
			require.Equal(t, uint(i-j), Usize(got), "%d - %d", i, j)
			require.True(t, IsCanonical(got))
		}
	}

	// No underflow detection: 2 - 3 wraps within two digits.
	assert.Equal(t, uint(3), Usize(Sub(U2, U3)))
}

func TestCompare(t *testing.T) {
	vals := upTo(20)
	for i, a := range vals {
		for j, b := range vals {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			require.Equal(t, want, Compare(a, b), "%d cmp %d", i, j)
		}
	}
	assert.Equal(t, 0, Compare(Pad(U3, 10), U3))
}

func TestEqual(t *testing.T) {
	raw := Pad(U5, 8)
	assert.NotEqual(t, U5, raw)
	assert.True(t, Equal(U5, raw))
	assert.False(t, Equal(U5, U6))
}

func TestMul(t *testing.T) {
	vals := upTo(24)
	for i, a := range vals {
		for j, b := range vals {
			got := Mul(a, b)
			require.Equal(t, uint(i*j), Usize(got), "%d * %d", i, j)
			require.True(t, IsCanonical(got))
		}
	}
	assert.Equal(t, uint(12), Usize(Mul(Pad(U4, 7), U3)))
}

func TestShift(t *testing.T) {
	for i, u := range upTo(100) {
		assert.Equal(t, uint(2*i), Usize(Bsl(u)), "bsl %d", i)
		assert.Equal(t, uint(i/2), Usize(Bsr(u)), "bsr %d", i)
	}
	assert.Equal(t, Zero, Bsl(Zero))
	assert.Equal(t, Zero, Bsr(One))
	assert.Equal(t, Zero, Bsl(Pad(Zero, 4)))
}

func TestPad(t *testing.T) {
	p := Pad(U5, 6)
	assert.Equal(t, "000101", p.String())
	assert.Equal(t, U5, Pad(U5, 2))
	assert.Equal(t, U5, Canonicalize(p))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"0b0", "0"},
		{"0b000", "0"},
		{"0b01", "1"},
		{"0b0001", "1"},
		{"0b00110", "110"},
		{"0b1000", "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			raw, err := ParseRaw(tt.raw)
			require.NoError(t, err)

			c := Canonicalize(raw)
			assert.Equal(t, tt.want, c.String())
			assert.True(t, IsCanonical(c))
			if diff := cmp.Diff(c, Canonicalize(c)); diff != "" {
				t.Errorf("Canonicalize is not idempotent (-once +twice):\n%s", diff)
			}
			assert.Equal(t, c, RmExtraBits(raw))
		})
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, bool(IsZero(Zero)))
	assert.True(t, bool(IsZero(Pad(Zero, 6))))
	assert.False(t, bool(IsZero(Pad(One, 6))))
}

func ExampleAdd() {
	sum := Add(FromUint64(1), FromUint64(2))
	fmt.Println(sum, Decimal(sum))
	// Output: 11 3
}

func ExampleDec() {
	_, err := Dec(Zero)
	fmt.Println(errors.Is(err, ErrPoison))
	// Output: true
}
