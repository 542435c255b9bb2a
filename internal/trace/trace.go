// Package trace records the per-digit steps of the ripple adder and
// subtractor.
package trace

import (
	"fmt"
	"strings"

	"github.com/Aleod-m/typers/internal/logging"
	"github.com/Aleod-m/typers/pkg/bit"
	"github.com/Aleod-m/typers/pkg/unsigned"
)

// Kind selects the traced primitive.
type Kind int

const (
	KindAdd Kind = iota
	KindSub
)

func (k Kind) String() string {
	if k == KindSub {
		return "sub"
	}
	return "add"
}

// Symbol is the infix operator of the kind.
func (k Kind) Symbol() string {
	if k == KindSub {
		return "-"
	}
	return "+"
}

// Step is one digit position of a ripple. In and Out are the carry (add) or
// borrow (sub) entering and leaving the position.
type Step struct {
	Position int
	A        bit.Bit
	B        bit.Bit
	In       bit.Bit
	Digit    bit.Bit
	Out      bit.Bit
}

// Trace is a full ripple, least significant position first.
type Trace struct {
	Kind   Kind
	Lhs    unsigned.Unsigned
	Rhs    unsigned.Unsigned
	In     bit.Bit
	Steps  []Step
	Result unsigned.Unsigned
	Out    bit.Bit
}

// Add traces AddWithCarry. Operands of different depth are zero-extended
// first.
func Add(lhs, rhs unsigned.Unsigned, carry bit.Bit) (*Trace, error) {
	lhs, rhs = pad(lhs, rhs)
	result, err := unsigned.AddWithCarry(lhs, rhs, carry)
	if err != nil {
		return nil, err
	}
	t := &Trace{Kind: KindAdd, Lhs: lhs, Rhs: rhs, In: carry, Result: result}
	t.Steps = ripple(lhs, rhs, carry, func(a, b, c bit.Bit) (bit.Bit, bit.Bit) {
		return a.FullAdd(b, c), a.FullCarry(b, c)
	})
	t.Out = t.Steps[len(t.Steps)-1].Out
	logging.Get(logging.CategoryTrace).Debug("add %s + %s -> %s", lhs, rhs, result)
	return t, nil
}

// Sub traces SubWithBorrow. Operands of different depth are zero-extended
// first.
func Sub(lhs, rhs unsigned.Unsigned, borrow bit.Bit) (*Trace, error) {
	lhs, rhs = pad(lhs, rhs)
	result, out, err := unsigned.SubWithBorrow(lhs, rhs, borrow)
	if err != nil {
		return nil, err
	}
	t := &Trace{Kind: KindSub, Lhs: lhs, Rhs: rhs, In: borrow, Result: result, Out: out}
	t.Steps = ripple(lhs, rhs, borrow, func(a, b, br bit.Bit) (bit.Bit, bit.Bit) {
		return a.FullDiff(b, br), a.FullBorrow(b, br)
	})
	logging.Get(logging.CategoryTrace).Debug("sub %s - %s -> %s borrow %s", lhs, rhs, result, out)
	return t, nil
}

func pad(lhs, rhs unsigned.Unsigned) (unsigned.Unsigned, unsigned.Unsigned) {
	depth := max(lhs.Depth(), rhs.Depth())
	return unsigned.Pad(lhs, depth), unsigned.Pad(rhs, depth)
}

func ripple(lhs, rhs unsigned.Unsigned, in bit.Bit, full func(a, b, in bit.Bit) (bit.Bit, bit.Bit)) []Step {
	var steps []Step
	for pos := 0; ; pos++ {
		a, b := lhs.Lsb(), rhs.Lsb()
		digit, out := full(a, b, in)
		steps = append(steps, Step{Position: pos, A: a, B: b, In: in, Digit: digit, Out: out})
		in = out

		l, errL := unsigned.Msb(lhs)
		r, errR := unsigned.Msb(rhs)
		if errL != nil || errR != nil {
			return steps
		}
		lhs, rhs = l, r
	}
}

// Markdown renders the trace as a heading, a step table and the result.
func (t *Trace) Markdown() string {
	carry := "carry"
	if t.Kind == KindSub {
		carry = "borrow"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s %s %s %s\n\n", t.Kind, t.Lhs, t.Kind.Symbol(), t.Rhs)
	fmt.Fprintf(&sb, "Incoming %s: `%s`\n\n", carry, t.In)
	fmt.Fprintf(&sb, "| position | a | b | %s in | digit | %s out |\n", carry, carry)
	sb.WriteString("|---:|:-:|:-:|:-:|:-:|:-:|\n")
	for _, s := range t.Steps {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s | %s |\n", s.Position, s.A, s.B, s.In, s.Digit, s.Out)
	}
	fmt.Fprintf(&sb, "\n**Result:** `%s` = %s", t.Result, unsigned.Decimal(unsigned.Canonicalize(t.Result)))
	if t.Kind == KindSub {
		fmt.Fprintf(&sb, ", outgoing borrow `%s`", t.Out)
	}
	sb.WriteString("\n")
	return sb.String()
}
