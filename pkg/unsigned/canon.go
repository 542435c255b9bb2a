package unsigned

import "github.com/Aleod-m/typers/pkg/bit"

// Canonicalize strips redundant leading zero digits. The result is the
// single-digit Zero or has a One as its most significant digit. It is
// idempotent.
func Canonicalize(u Unsigned) Unsigned {
	c, ok := u.(Composite)
	if !ok {
		return u
	}
	p := Canonicalize(c.Prefix)
	if p == Zero {
		return Single{Digit: c.Digit}
	}
	return Composite{Prefix: p, Digit: c.Digit}
}

// RmExtraBits is Canonicalize.
func RmExtraBits(u Unsigned) Unsigned {
	return Canonicalize(u)
}

// IsCanonical reports whether u has no redundant leading zero digit.
func IsCanonical(u Unsigned) bool {
	for {
		switch v := u.(type) {
		case Single:
			return true
		case Composite:
			if s, ok := v.Prefix.(Single); ok {
				return s.Digit == bit.One
			}
			u = v.Prefix
		default:
			panic(badVariant(u))
		}
	}
}
