package fift

import "math/big"

// ParseNumber tries to read tok as either a single integer or an a/b
// fraction. It returns the value(s) to push, in order: one element for
// an integer, numerator then denominator for a fraction. The (number)
// builtin layers its 0/1/2 result count on top of this. On failure it
// returns (nil, false, nil) so the caller can fall through to
// "undefined word" rather than treating a bad number as a fatal error.
//
// Fractions are reduced to lowest terms on parse: that is what lets
// eqv?/equal? treat 2/4 and 1/2 as the same value without a separate
// normalization pass at every consumer.
func ParseNumber(tok string) ([]Value, bool, error) {
	if tok == "" {
		return nil, false, nil
	}
	if i := indexByte(tok, '/'); i >= 0 {
		numStr, denStr := tok[:i], tok[i+1:]
		if numStr == "" || denStr == "" {
			return nil, false, nil
		}
		num, ok := parseBigInt(numStr)
		if !ok {
			return nil, false, nil
		}
		den, ok := parseBigInt(denStr)
		if !ok {
			return nil, false, nil
		}
		if den.Sign() == 0 {
			return nil, false, DivisionByZero{}
		}
		if den.Sign() < 0 {
			num = new(big.Int).Neg(num)
			den = new(big.Int).Neg(den)
		}
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
		if g.Sign() > 0 && g.Cmp(bigOne) != 0 {
			num = new(big.Int).Quo(num, g)
			den = new(big.Int).Quo(den, g)
		}
		return []Value{NewBigInt(num), NewBigInt(den)}, true, nil
	}
	n, ok := parseBigInt(tok)
	if !ok {
		return nil, false, nil
	}
	return []Value{NewBigInt(n)}, true, nil
}

func parseBigInt(s string) (*big.Int, bool) {
	n := new(big.Int)
	v, ok := n.SetString(s, 0)
	if !ok {
		return nil, false
	}
	return v, true
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
