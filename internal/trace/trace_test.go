package trace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleod-m/typers/pkg/bit"
	"github.com/Aleod-m/typers/pkg/unsigned"
)

func mustParse(t *testing.T, s string) unsigned.Unsigned {
	t.Helper()
	u, err := unsigned.ParseRaw(s)
	require.NoError(t, err)
	return u
}

func TestAdd(t *testing.T) {
	// 3 + 5 = 8
	tr, err := Add(mustParse(t, "0b011"), mustParse(t, "0b101"), bit.Zero)
	require.NoError(t, err)

	want := []Step{
		{Position: 0, A: bit.One, B: bit.One, In: bit.Zero, Digit: bit.Zero, Out: bit.One},
		{Position: 1, A: bit.One, B: bit.Zero, In: bit.One, Digit: bit.Zero, Out: bit.One},
		{Position: 2, A: bit.Zero, B: bit.One, In: bit.One, Digit: bit.Zero, Out: bit.One},
	}
	if diff := cmp.Diff(want, tr.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, bit.One, tr.Out)
	assert.Equal(t, "1000", tr.Result.String())
}

func TestAdd_PadsShallowOperand(t *testing.T) {
	tr, err := Add(mustParse(t, "0b1"), mustParse(t, "0b110"), bit.One)
	require.NoError(t, err)
	assert.Len(t, tr.Steps, 3)
	assert.Equal(t, "001", tr.Lhs.String())

	n, err := unsigned.Uint64(tr.Result)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), n)
}

func TestSub(t *testing.T) {
	// 2 - 3 wraps to 7 with a borrow out.
	tr, err := Sub(mustParse(t, "0b010"), mustParse(t, "0b011"), bit.Zero)
	require.NoError(t, err)

	require.Len(t, tr.Steps, 3)
	assert.Equal(t, bit.One, tr.Steps[0].Out)
	assert.Equal(t, bit.One, tr.Out)
	assert.Equal(t, "111", tr.Result.String())
	for i, s := range tr.Steps {
		assert.Equal(t, i, s.Position)
		if i > 0 {
			assert.Equal(t, tr.Steps[i-1].Out, s.In)
		}
	}
}

func TestMarkdown(t *testing.T) {
	tr, err := Add(unsigned.U1, unsigned.U2, bit.Zero)
	require.NoError(t, err)

	md := tr.Markdown()
	assert.Contains(t, md, "## add 01 + 10")
	assert.Contains(t, md, "| position | a | b | carry in | digit | carry out |")
	assert.Contains(t, md, "**Result:** `011` = 3")

	tr, err = Sub(unsigned.U2, unsigned.U2, bit.Zero)
	require.NoError(t, err)
	md = tr.Markdown()
	assert.Contains(t, md, "borrow in")
	assert.Contains(t, md, "= 0, outgoing borrow `0`")
}

func TestKind(t *testing.T) {
	assert.Equal(t, "add", KindAdd.String())
	assert.Equal(t, "-", KindSub.Symbol())
}
