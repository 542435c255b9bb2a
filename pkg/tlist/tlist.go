// Package tlist is a heterogeneous list indexed by unsigned values.
//
// Lists are built from End and Cons. Push keeps the static type of every
// element; operations that reshape a list (Concat, Reverse, New) return the
// List interface and carry their elements as any.
package tlist

import (
	"errors"
	"fmt"

	"github.com/Aleod-m/typers/pkg/boolean"
	"github.com/Aleod-m/typers/pkg/unsigned"
)

var (
	// ErrIndexOutOfRange is returned by Get when the index is not below Len.
	ErrIndexOutOfRange = errors.New("tlist: index out of range")
	// ErrTypeMismatch is returned by GetAs when the element has another type.
	ErrTypeMismatch = errors.New("tlist: element type mismatch")
)

// List is implemented by End and Cons.
type List interface {
	// Len returns the number of elements.
	Len() unsigned.Unsigned
	// IsEmpty reports whether the list is End.
	IsEmpty() boolean.Bool

	link() (head any, tail List, ok bool)
}

// End is the empty list.
type End struct{}

func (End) Len() unsigned.Unsigned  { return unsigned.Zero }
func (End) IsEmpty() boolean.Bool   { return boolean.True }
func (End) link() (any, List, bool) { return nil, nil, false }
func (End) String() string          { return "[]" }

// Cons is a list with a Head element followed by Tail.
type Cons[H any, T List] struct {
	Head H
	Tail T
}

func (c Cons[H, T]) Len() unsigned.Unsigned  { return unsigned.Inc(c.Tail.Len()) }
func (c Cons[H, T]) IsEmpty() boolean.Bool   { return boolean.False }
func (c Cons[H, T]) link() (any, List, bool) { return c.Head, c.Tail, true }

func (c Cons[H, T]) String() string {
	return fmt.Sprintf("%v", Values(c))
}

// Push prepends e to l.
func Push[E any, L List](l L, e E) Cons[E, L] {
	return Cons[E, L]{Head: e, Tail: l}
}

// New builds a list holding values in order.
func New(values ...any) List {
	var l List = End{}
	for i := len(values) - 1; i >= 0; i-- {
		l = Cons[any, List]{Head: values[i], Tail: l}
	}
	return l
}

// Values returns the elements of l in order.
func Values(l List) []any {
	var out []any
	for {
		head, tail, ok := l.link()
		if !ok {
			return out
		}
		out = append(out, head)
		l = tail
	}
}

// Concat returns the elements of a followed by those of b.
func Concat(a, b List) List {
	head, tail, ok := a.link()
	if !ok {
		return b
	}
	return Cons[any, List]{Head: head, Tail: Concat(tail, b)}
}

// Reverse returns the elements of l in reverse order.
func Reverse(l List) List {
	var out List = End{}
	for {
		head, tail, ok := l.link()
		if !ok {
			return out
		}
		out = Cons[any, List]{Head: head, Tail: out}
		l = tail
	}
}

// Get returns the element at index. The index is decremented once per
// element walked; the element reached when it becomes zero is selected.
func Get(l List, index unsigned.Unsigned) (any, error) {
	head, tail, ok := l.link()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIndexOutOfRange, unsigned.Decimal(index))
	}
	return boolean.CondErr(unsigned.IsZero(index),
		func() (any, error) { return head, nil },
		func() (any, error) {
			// Only reached for a non-zero index, so Dec cannot poison.
			next, err := unsigned.Dec(index)
			if err != nil {
				return nil, err
			}
			v, err := Get(tail, next)
			if errors.Is(err, ErrIndexOutOfRange) {
				return nil, fmt.Errorf("%w: %s", ErrIndexOutOfRange, unsigned.Decimal(index))
			}
			return v, err
		})
}

// GetAs is Get with a type assertion on the element.
func GetAs[T any](l List, index unsigned.Unsigned) (T, error) {
	var zero T
	v, err := Get(l, index)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: element %s is %T, not %T", ErrTypeMismatch, unsigned.Decimal(index), v, zero)
	}
	return t, nil
}
