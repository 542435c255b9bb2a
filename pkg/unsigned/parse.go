package unsigned

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Aleod-m/typers/pkg/bit"
)

// Parse reads a decimal literal or a 0b-prefixed binary literal and returns
// its canonical value.
func Parse(s string) (Unsigned, error) {
	u, err := ParseRaw(s)
	if err != nil {
		return nil, err
	}
	return Canonicalize(u), nil
}

// ParseRaw is Parse without canonicalization: binary literals keep their
// leading zero digits, so ParseRaw("0b0011") has depth 4.
func ParseRaw(s string) (Unsigned, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrSyntax)
	}

	if rest, ok := strings.CutPrefix(s, "0b"); ok {
		if rest == "" {
			return nil, fmt.Errorf("%w: %q has no digits", ErrSyntax, s)
		}
		bits := make([]bit.Bit, 0, len(rest))
		for _, r := range rest {
			b, err := bit.Parse(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
			}
			bits = append(bits, b)
		}
		return FromBitsRaw(bits...), nil
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return FromBig(x)
}
