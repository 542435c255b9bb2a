package unsigned

import (
	"math"
	"math/big"
	"testing"

	"github.com/Aleod-m/typers/pkg/bit"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepresentation(t *testing.T) {
	tests := []struct {
		name string
		u    Unsigned
		want uint
	}{
		{"single zero", Single{Digit: bit.Zero}, 0},
		{"single one", Single{Digit: bit.One}, 1},
		{"two", Composite{Prefix: One, Digit: bit.Zero}, 2},
		{"five", Composite{Prefix: Composite{Prefix: One, Digit: bit.Zero}, Digit: bit.One}, 5},
		{"leading zero", Composite{Prefix: Zero, Digit: bit.One}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Usize(tt.u))
		})
	}
}

func TestFromBits(t *testing.T) {
	want := Composite{Prefix: Composite{Prefix: One, Digit: bit.Zero}, Digit: bit.One}
	if diff := cmp.Diff(Unsigned(want), FromBits(bit.Zero, bit.One, bit.Zero, bit.One)); diff != "" {
		t.Errorf("FromBits mismatch (-want +got):\n%s", diff)
	}

	raw := FromBitsRaw(bit.Zero, bit.One, bit.Zero, bit.One)
	assert.Equal(t, 4, raw.Depth())
	assert.Equal(t, "0101", raw.String())
	assert.Equal(t, Zero, FromBits())
}

func TestFromUint64(t *testing.T) {
	for n := uint64(0); n < 300; n++ {
		u := FromUint64(n)
		require.True(t, IsCanonical(u), "%d", n)
		got, err := Uint64(u)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}

	got, err := Uint64(FromUint64(math.MaxUint64))
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)
}

func TestMaterializeOverflow(t *testing.T) {
	wide := Bsl(FromUint64(math.MaxUint64))

	_, err := Uint64(wide)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Panics(t, func() { Usize(wide) })

	want := new(big.Int).Lsh(new(big.Int).SetUint64(math.MaxUint64), 1)
	assert.Equal(t, 0, want.Cmp(Big(wide)))

	// Leading zeros never overflow.
	padded := Pad(One, 200)
	got, err := Uint64(padded)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestFromBig(t *testing.T) {
	x, ok := new(big.Int).SetString("340282366920938463463374607431768211457", 10)
	require.True(t, ok)

	u, err := FromBig(x)
	require.NoError(t, err)
	assert.Equal(t, 129, u.Depth())
	assert.Equal(t, x.String(), Decimal(u))

	_, err = FromBig(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegative)
}

func TestMsbLsb(t *testing.T) {
	six := FromUint64(6)

	p, err := Msb(six)
	require.NoError(t, err)
	assert.Equal(t, uint(3), Usize(p))
	assert.Equal(t, bit.Zero, Lsb(six))

	_, err = Msb(One)
	assert.ErrorIs(t, err, ErrPoison)

	var perr *PoisonError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "msb", perr.Op)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		want  uint
		depth int
	}{
		{"0", 0, 1},
		{"12", 12, 4},
		{"1_000", 1000, 10},
		{"0b1100", 12, 4},
		{"0b0011", 3, 2},
		{"0b0", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			u, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Usize(u))
			assert.Equal(t, tt.depth, u.Depth())
		})
	}

	raw, err := ParseRaw("0b0011")
	require.NoError(t, err)
	assert.Equal(t, 4, raw.Depth())
	assert.False(t, IsCanonical(raw))

	for _, bad := range []string{"", "0b", "0b102", "-3", "1e3", "x"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrSyntax, bad)
	}
}

func TestConstants(t *testing.T) {
	all := []Unsigned{U0, U1, U2, U3, U4, U5, U6, U7, U8, U9, U10, U11, U12, U13, U14, U15, U16,
		U17, U18, U19, U20, U21, U22, U23, U24, U25, U26, U27, U28, U29, U30, U31, U32}
	for i, u := range all {
		assert.Equal(t, uint(i), Usize(u))
	}
}
