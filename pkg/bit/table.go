package bit

import "fmt"

// Op names a bit primitive so that it can be evaluated and tabulated by name.
type Op string

const (
	OpNot        Op = "not"
	OpAnd        Op = "and"
	OpOr         Op = "or"
	OpXor        Op = "xor"
	OpAdd        Op = "add"
	OpCarry      Op = "carry"
	OpFullAdd    Op = "fulladd"
	OpFullCarry  Op = "fullcarry"
	OpDiff       Op = "diff"
	OpBorrow     Op = "borrow"
	OpFullDiff   Op = "fulldiff"
	OpFullBorrow Op = "fullborrow"
)

var unary = map[Op]func(Bit) Bit{
	OpNot: Bit.Not,
}

var binary = map[Op]func(Bit, Bit) Bit{
	OpAnd:    Bit.And,
	OpOr:     Bit.Or,
	OpXor:    Bit.Xor,
	OpAdd:    Bit.Add,
	OpCarry:  Bit.Carry,
	OpDiff:   Bit.Diff,
	OpBorrow: Bit.Borrow,
}

var ternary = map[Op]func(Bit, Bit, Bit) Bit{
	OpFullAdd:    Bit.FullAdd,
	OpFullCarry:  Bit.FullCarry,
	OpFullDiff:   Bit.FullDiff,
	OpFullBorrow: Bit.FullBorrow,
}

// Ops lists every primitive in a stable order.
func Ops() []Op {
	return []Op{
		OpNot, OpAnd, OpOr, OpXor,
		OpAdd, OpCarry, OpFullAdd, OpFullCarry,
		OpDiff, OpBorrow, OpFullDiff, OpFullBorrow,
	}
}

// Arity returns the number of inputs op takes, or 0 for an unknown op.
func Arity(op Op) int {
	switch {
	case unary[op] != nil:
		return 1
	case binary[op] != nil:
		return 2
	case ternary[op] != nil:
		return 3
	}
	return 0
}

// Eval applies op to in.
func Eval(op Op, in ...Bit) (Bit, error) {
	n := Arity(op)
	if n == 0 {
		return Zero, fmt.Errorf("bit: unknown op %q", op)
	}
	if len(in) != n {
		return Zero, fmt.Errorf("bit: %s takes %d inputs, got %d", op, n, len(in))
	}
	switch n {
	case 1:
		return unary[op](in[0]), nil
	case 2:
		return binary[op](in[0], in[1]), nil
	default:
		return ternary[op](in[0], in[1], in[2]), nil
	}
}

// Row is one line of a truth table.
type Row struct {
	Inputs []Bit
	Output Bit
}

// Table enumerates every input combination of op, most significant input
// first, in ascending order.
func Table(op Op) ([]Row, error) {
	n := Arity(op)
	if n == 0 {
		return nil, fmt.Errorf("bit: unknown op %q", op)
	}

	rows := make([]Row, 0, 1<<n)
	for i := 0; i < 1<<n; i++ {
		in := make([]Bit, n)
		for j := range in {
			in[j] = FromBool(i&(1<<(n-1-j)) != 0)
		}
		out, err := Eval(op, in...)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Inputs: in, Output: out})
	}
	return rows, nil
}
