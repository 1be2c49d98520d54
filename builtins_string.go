package fift

func registerStringWords(ex *Executor) {
	// $len is the byte length; $| below slices on rune boundaries.
	def(ex, "$len", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushInt(int64(len(s)))
		return ok0()
	})
	def(ex, "$+", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(String(string(a) + string(b)))
		return ok0()
	})
	def(ex, "$=", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(a == b)
		return ok0()
	})
	def(ex, "$cmp", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		c, err := Compare(a, b)
		if err != nil {
			return nil, err
		}
		ex.Stack.PushInt(int64(c))
		return ok0()
	})
	// $| : (str from to -- substr), slices a string on rune boundaries
	// rather than raw bytes so multi-byte UTF-8 sequences stay intact.
	def(ex, "$|", func(ex *Executor) (Continuation, error) {
		to, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		from, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		s, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		rs := []rune(string(s))
		if from < 0 || to > len(rs) || from > to {
			return nil, RangeError{Message: "string slice out of range"}
		}
		ex.Stack.Push(String(string(rs[from:to])))
		return ok0()
	})
	def(ex, "(number)", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		vals, ok, perr := ParseNumber(string(s))
		if perr != nil {
			return nil, perr
		}
		if !ok {
			ex.Stack.PushInt(0)
			return ok0()
		}
		for _, v := range vals {
			ex.Stack.Push(v)
		}
		ex.Stack.PushInt(int64(len(vals)))
		return ok0()
	})
}
