// Package expr implements a small expression language over unsigned
// binary integers.
//
// Numbers are written in decimal (canonical) or as 0b literals (kept raw, so
// leading zeros survive until canon). Arithmetic follows the engine: "-"
// wraps modulo the wider operand's width, dec(0) and msb of a single digit
// are poison.
package expr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Aleod-m/typers/internal/logging"
	"github.com/Aleod-m/typers/pkg/boolean"
	"github.com/Aleod-m/typers/pkg/unsigned"
)

var (
	// ErrType is returned when an operand has the wrong kind.
	ErrType = errors.New("type mismatch")
	// ErrUndefined is returned for unknown identifiers and functions.
	ErrUndefined = errors.New("undefined")
	// ErrArity is returned when a function gets the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
)

// Kind distinguishes numbers from booleans.
type Kind int

const (
	KindNum Kind = iota
	KindBool
)

func (k Kind) String() string {
	if k == KindBool {
		return "bool"
	}
	return "num"
}

// Value is the result of evaluating an expression.
type Value struct {
	Kind Kind
	Num  unsigned.Unsigned
	Bool boolean.Bool
}

// Num wraps an unsigned value.
func Num(u unsigned.Unsigned) Value { return Value{Kind: KindNum, Num: u} }

// Bool wraps a boolean.
func Bool(b boolean.Bool) Value { return Value{Kind: KindBool, Bool: b} }

// String renders numbers in decimal and booleans as true/false.
func (v Value) String() string {
	if v.Kind == KindBool {
		return v.Bool.String()
	}
	return unsigned.Decimal(v.Num)
}

// Binary renders numbers in their digit representation.
func (v Value) Binary() string {
	if v.Kind == KindBool {
		return v.Bool.String()
	}
	return v.Num.String()
}

// EvalError is a runtime failure at a position in the source.
type EvalError struct {
	Offset int
	Err    error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("at offset %d: %v", e.Offset, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// Env binds identifiers to values.
type Env map[string]Value

type builtin struct {
	arity int
	lazy  bool // receives unevaluated arguments
	fn    func(args []Value) (Value, error)
}

var builtins map[string]builtin

func init() {
	num1 := func(f func(unsigned.Unsigned) (unsigned.Unsigned, error)) builtin {
		return builtin{arity: 1, fn: func(args []Value) (Value, error) {
			x, err := asNum(args[0])
			if err != nil {
				return Value{}, err
			}
			u, err := f(x)
			if err != nil {
				return Value{}, err
			}
			return Num(u), nil
		}}
	}
	total := func(f func(unsigned.Unsigned) unsigned.Unsigned) builtin {
		return num1(func(u unsigned.Unsigned) (unsigned.Unsigned, error) { return f(u), nil })
	}

	builtins = map[string]builtin{
		"inc":   total(unsigned.Inc),
		"dec":   num1(unsigned.Dec),
		"bsl":   total(unsigned.Bsl),
		"bsr":   total(unsigned.Bsr),
		"msb":   num1(unsigned.Msb),
		"canon": total(unsigned.Canonicalize),
		"lsb": total(func(u unsigned.Unsigned) unsigned.Unsigned {
			return unsigned.FromBits(u.Lsb())
		}),
		"depth": total(func(u unsigned.Unsigned) unsigned.Unsigned {
			return unsigned.FromUint64(uint64(u.Depth()))
		}),
		"pad": {arity: 2, fn: func(args []Value) (Value, error) {
			x, err := asNum(args[0])
			if err != nil {
				return Value{}, err
			}
			n, err := asNum(args[1])
			if err != nil {
				return Value{}, err
			}
			depth, err := unsigned.Uint64(n)
			if err != nil || depth > maxShift {
				return Value{}, fmt.Errorf("pad depth must be at most %d", maxShift)
			}
			return Num(unsigned.Pad(x, int(depth))), nil
		}},
		"iszero": {arity: 1, fn: func(args []Value) (Value, error) {
			x, err := asNum(args[0])
			if err != nil {
				return Value{}, err
			}
			return Bool(unsigned.IsZero(x)), nil
		}},
		"not": {arity: 1, fn: func(args []Value) (Value, error) {
			b, err := asBool(args[0])
			if err != nil {
				return Value{}, err
			}
			return Bool(b.Not()), nil
		}},
		"if": {arity: 3, lazy: true},
	}
}

// Functions returns the builtin function names, sorted.
func Functions() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvalString parses and evaluates src.
func EvalString(src string, env Env) (Value, error) {
	n, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	v, err := Eval(n, env)
	if err != nil {
		return Value{}, err
	}
	logging.EvalDebug("%s => %s", strings.TrimSpace(src), v.Binary())
	return v, nil
}

// Eval evaluates a parsed expression. env may be nil.
func Eval(n Node, env Env) (Value, error) {
	switch n := n.(type) {
	case *Lit:
		return Num(n.Value), nil
	case *BoolLit:
		return Bool(boolean.Bool(n.Value)), nil
	case *Ident:
		v, ok := env[n.Name]
		if !ok {
			return Value{}, &EvalError{Offset: n.Pos, Err: fmt.Errorf("%w: %s", ErrUndefined, n.Name)}
		}
		return v, nil
	case *Shift:
		return evalShift(n, env)
	case *Binary:
		return evalBinary(n, env)
	case *Call:
		return evalCall(n, env)
	}
	return Value{}, fmt.Errorf("unknown node %T", n)
}

func evalShift(n *Shift, env Env) (Value, error) {
	v, err := Eval(n.X, env)
	if err != nil {
		return Value{}, err
	}
	x, err := asNum(v)
	if err != nil {
		return Value{}, &EvalError{Offset: n.Pos, Err: err}
	}
	step := unsigned.Bsl
	if n.Op == SHR {
		step = unsigned.Bsr
	}
	for i := 0; i < n.Count; i++ {
		x = step(x)
	}
	return Num(x), nil
}

func evalBinary(n *Binary, env Env) (Value, error) {
	lv, err := Eval(n.L, env)
	if err != nil {
		return Value{}, err
	}
	rv, err := Eval(n.R, env)
	if err != nil {
		return Value{}, err
	}

	if lv.Kind == KindBool && rv.Kind == KindBool && (n.Op == EQ || n.Op == NEQ) {
		same := lv.Bool == rv.Bool
		return Bool(boolean.Bool(same == (n.Op == EQ))), nil
	}

	l, err := asNum(lv)
	if err != nil {
		return Value{}, &EvalError{Offset: n.Pos, Err: err}
	}
	r, err := asNum(rv)
	if err != nil {
		return Value{}, &EvalError{Offset: n.Pos, Err: err}
	}

	switch n.Op {
	case PLUS:
		return Num(unsigned.Add(l, r)), nil
	case MINUS:
		return Num(unsigned.Sub(l, r)), nil
	case STAR:
		return Num(unsigned.Mul(l, r)), nil
	}

	c := unsigned.Compare(l, r)
	var res bool
	switch n.Op {
	case EQ:
		res = c == 0
	case NEQ:
		res = c != 0
	case LESS:
		res = c < 0
	case LESS_EQ:
		res = c <= 0
	case GREATER:
		res = c > 0
	case GREATER_EQ:
		res = c >= 0
	default:
		return Value{}, &EvalError{Offset: n.Pos, Err: fmt.Errorf("unsupported operator %s", n.Op)}
	}
	return Bool(boolean.Bool(res)), nil
}

func evalCall(n *Call, env Env) (Value, error) {
	b, ok := builtins[n.Name]
	if !ok {
		return Value{}, &EvalError{Offset: n.Pos, Err: fmt.Errorf("%w: function %s", ErrUndefined, n.Name)}
	}
	if len(n.Args) != b.arity {
		return Value{}, &EvalError{Offset: n.Pos, Err: fmt.Errorf("%w: %s takes %d, got %d", ErrArity, n.Name, b.arity, len(n.Args))}
	}

	if b.lazy {
		return evalIf(n, env)
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, env)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	v, err := b.fn(args)
	if err != nil {
		return Value{}, &EvalError{Offset: n.Pos, Err: err}
	}
	return v, nil
}

// evalIf evaluates only the selected branch, so a poisoned branch that is
// not taken does not fail the expression.
func evalIf(n *Call, env Env) (Value, error) {
	cv, err := Eval(n.Args[0], env)
	if err != nil {
		return Value{}, err
	}
	c, err := asBool(cv)
	if err != nil {
		return Value{}, &EvalError{Offset: n.Args[0].Offset(), Err: err}
	}
	return boolean.CondErr(c,
		func() (Value, error) { return Eval(n.Args[1], env) },
		func() (Value, error) { return Eval(n.Args[2], env) },
	)
}

func asNum(v Value) (unsigned.Unsigned, error) {
	if v.Kind != KindNum {
		return nil, fmt.Errorf("%w: expected num, got %s", ErrType, v.Kind)
	}
	return v.Num, nil
}

func asBool(v Value) (boolean.Bool, error) {
	if v.Kind != KindBool {
		return false, fmt.Errorf("%w: expected bool, got %s", ErrType, v.Kind)
	}
	return v.Bool, nil
}

