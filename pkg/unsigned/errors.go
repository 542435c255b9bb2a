package unsigned

import (
	"errors"
	"fmt"
)

var (
	// ErrPoison marks an operation with no defined result.
	ErrPoison = errors.New("unsigned: no defined result")
	// ErrWidthMismatch is returned by the ripple primitives when the
	// operands do not have the same depth.
	ErrWidthMismatch = errors.New("unsigned: operand depths differ")
	// ErrOverflow is returned when a value does not fit the requested
	// machine integer.
	ErrOverflow = errors.New("unsigned: overflow")
	// ErrSyntax is returned by Parse for malformed literals.
	ErrSyntax = errors.New("unsigned: invalid literal")
	// ErrNegative is returned when converting a negative integer.
	ErrNegative = errors.New("unsigned: negative value")
)

// PoisonError records the operation that produced poison and its operand.
type PoisonError struct {
	Op      string
	Operand Unsigned
}

func (e *PoisonError) Error() string {
	return fmt.Sprintf("unsigned: %s(%s) has no defined result", e.Op, e.Operand)
}

func (e *PoisonError) Unwrap() error {
	return ErrPoison
}

// Must materializes the result of a fallible operation. Poison is fatal:
// Must panics with an error wrapping the original one.
func Must(u Unsigned, err error) Unsigned {
	if err != nil {
		panic(fmt.Errorf("unsigned: materialized a poisoned value: %w", err))
	}
	return u
}
