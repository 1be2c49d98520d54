package fift

import "math/big"

func binInt(ex *Executor, fn func(a, b *big.Int) (*big.Int, error)) (Continuation, error) {
	b, err := ex.Stack.PopInt()
	if err != nil {
		return nil, err
	}
	a, err := ex.Stack.PopInt()
	if err != nil {
		return nil, err
	}
	r, err := fn(a.V, b.V)
	if err != nil {
		return nil, err
	}
	ex.Stack.Push(NewBigInt(r))
	return ok0()
}

func unaryInt(ex *Executor, fn func(a *big.Int) (*big.Int, error)) (Continuation, error) {
	a, err := ex.Stack.PopInt()
	if err != nil {
		return nil, err
	}
	r, err := fn(a.V)
	if err != nil {
		return nil, err
	}
	ex.Stack.Push(NewBigInt(r))
	return ok0()
}

func registerArithWords(ex *Executor) {
	def(ex, "+", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) { return new(big.Int).Add(a, b), nil })
	})
	def(ex, "-", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) { return new(big.Int).Sub(a, b), nil })
	})
	def(ex, "*", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) { return new(big.Int).Mul(a, b), nil })
	})
	def(ex, "negate", func(ex *Executor) (Continuation, error) {
		return unaryInt(ex, func(a *big.Int) (*big.Int, error) { return new(big.Int).Neg(a), nil })
	})
	def(ex, "1+", func(ex *Executor) (Continuation, error) {
		return unaryInt(ex, func(a *big.Int) (*big.Int, error) { return new(big.Int).Add(a, bigOne), nil })
	})
	def(ex, "1-", func(ex *Executor) (Continuation, error) {
		return unaryInt(ex, func(a *big.Int) (*big.Int, error) { return new(big.Int).Sub(a, bigOne), nil })
	})
	def(ex, "2*", func(ex *Executor) (Continuation, error) {
		return unaryInt(ex, func(a *big.Int) (*big.Int, error) { return new(big.Int).Lsh(a, 1), nil })
	})
	def(ex, "/", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) {
			if b.Sign() == 0 {
				return nil, DivisionByZero{}
			}
			q, _ := floorDivMod(a, b)
			return q, nil
		})
	})
	def(ex, "mod", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) {
			if b.Sign() == 0 {
				return nil, DivisionByZero{}
			}
			_, r := floorDivMod(a, b)
			return r, nil
		})
	})
	def(ex, "/mod", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		if b.V.Sign() == 0 {
			return nil, DivisionByZero{}
		}
		q, r := floorDivMod(a.V, b.V)
		ex.Stack.Push(NewBigInt(r))
		ex.Stack.Push(NewBigInt(q))
		return ok0()
	})
	def(ex, "abs", func(ex *Executor) (Continuation, error) {
		return unaryInt(ex, func(a *big.Int) (*big.Int, error) { return new(big.Int).Abs(a), nil })
	})
	def(ex, "min", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) {
			if a.Cmp(b) <= 0 {
				return new(big.Int).Set(a), nil
			}
			return new(big.Int).Set(b), nil
		})
	})
	def(ex, "max", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) {
			if a.Cmp(b) >= 0 {
				return new(big.Int).Set(a), nil
			}
			return new(big.Int).Set(b), nil
		})
	})
	def(ex, "and", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) { return new(big.Int).And(a, b), nil })
	})
	def(ex, "or", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) { return new(big.Int).Or(a, b), nil })
	})
	def(ex, "xor", func(ex *Executor) (Continuation, error) {
		return binInt(ex, func(a, b *big.Int) (*big.Int, error) { return new(big.Int).Xor(a, b), nil })
	})
	def(ex, "not", func(ex *Executor) (Continuation, error) {
		return unaryInt(ex, func(a *big.Int) (*big.Int, error) { return new(big.Int).Not(a), nil })
	})
	def(ex, "<<", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, RangeError{Message: "negative shift"}
		}
		return unaryInt(ex, func(a *big.Int) (*big.Int, error) { return new(big.Int).Lsh(a, uint(n)), nil })
	})
	def(ex, ">>", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, RangeError{Message: "negative shift"}
		}
		return unaryInt(ex, func(a *big.Int) (*big.Int, error) { return new(big.Int).Rsh(a, uint(n)), nil })
	})
	def(ex, "true", func(ex *Executor) (Continuation, error) {
		ex.Stack.PushBool(true)
		return ok0()
	})
	def(ex, "false", func(ex *Executor) (Continuation, error) {
		ex.Stack.PushBool(false)
		return ok0()
	})

	cmp := func(name string, pass func(c int) bool) {
		def(ex, name, func(ex *Executor) (Continuation, error) {
			b, err := ex.Stack.PopInt()
			if err != nil {
				return nil, err
			}
			a, err := ex.Stack.PopInt()
			if err != nil {
				return nil, err
			}
			ex.Stack.PushBool(pass(a.V.Cmp(b.V)))
			return ok0()
		})
	}
	cmp("=", func(c int) bool { return c == 0 })
	cmp("<>", func(c int) bool { return c != 0 })
	cmp("<", func(c int) bool { return c < 0 })
	cmp(">", func(c int) bool { return c > 0 })
	cmp("<=", func(c int) bool { return c <= 0 })
	cmp(">=", func(c int) bool { return c >= 0 })

	def(ex, "0=", func(ex *Executor) (Continuation, error) {
		a, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(a.V.Sign() == 0)
		return ok0()
	})
	def(ex, "0<", func(ex *Executor) (Continuation, error) {
		a, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(a.V.Sign() < 0)
		return ok0()
	})
	def(ex, "0>", func(ex *Executor) (Continuation, error) {
		a, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(a.V.Sign() > 0)
		return ok0()
	})

	// Both bit-width checks bound n to [0, 1023], the cell layer's own
	// maximum data width.
	def(ex, "ufits", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if n < 0 || n > maxCellBits {
			return nil, RangeError{Message: "ufits: bit width out of range"}
		}
		a, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		bound := new(big.Int).Lsh(big.NewInt(1), uint(n))
		ex.Stack.PushBool(a.V.Sign() >= 0 && a.V.Cmp(bound) < 0)
		return ok0()
	})
	def(ex, "fits", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if n < 0 || n > maxCellBits {
			return nil, RangeError{Message: "fits: bit width out of range"}
		}
		a, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			ex.Stack.PushBool(a.V.Sign() == 0)
			return ok0()
		}
		bound := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
		lo := new(big.Int).Neg(bound)
		ex.Stack.PushBool(a.V.Cmp(lo) >= 0 && a.V.Cmp(bound) < 0)
		return ok0()
	})
}

// floorDivMod implements Fift's floor-rounded / and mod (as opposed to
// Go's truncating big.Int.QuoRem).
func floorDivMod(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, bigOne)
		r.Add(r, b)
	}
	return q, r
}
