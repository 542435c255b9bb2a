// Package boolean provides the two-valued logic and the branch selection
// primitives used by the arithmetic engine and the list lookup.
package boolean

// Bool is a logical value. The zero value is False.
type Bool bool

const (
	False Bool = false
	True  Bool = true
)

// Not returns the negation of b.
func (b Bool) Not() Bool {
	return !b
}

// And returns b ∧ o.
func (b Bool) And(o Bool) Bool {
	return b && o
}

// Or returns b ∨ o.
func (b Bool) Or(o Bool) Bool {
	return b || o
}

// Xor returns b ⊕ o.
func (b Bool) Xor(o Bool) Bool {
	return b != o
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Select returns a when c is True and b otherwise.
// Both candidates are already evaluated; use Cond when one of them must not be.
func Select[T any](c Bool, a, b T) T {
	if c {
		return a
	}
	return b
}

// Cond invokes exactly one of then or els depending on c and returns its result.
func Cond[T any](c Bool, then, els func() T) T {
	if c {
		return then()
	}
	return els()
}

// CondErr is Cond for fallible branches.
func CondErr[T any](c Bool, then, els func() (T, error)) (T, error) {
	if c {
		return then()
	}
	return els()
}
