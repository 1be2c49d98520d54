package fift

func registerTupleWords(ex *Executor) {
	def(ex, "|", func(ex *Executor) (Continuation, error) {
		ex.Stack.Push(NewTuple())
		return ok0()
	})
	// , : ( t x -- t' ) appends x, returning a new tuple. Tuples are
	// immutable values; the old one is untouched.
	def(ex, ",", func(ex *Executor) (Continuation, error) {
		x, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		t, err := ex.Stack.PopTuple()
		if err != nil {
			return nil, err
		}
		items := make([]Value, 0, len(t.Items)+1)
		items = append(items, t.Items...)
		items = append(items, x)
		ex.Stack.Push(NewTuple(items...))
		return ok0()
	})
	def(ex, "tuple", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, RangeError{Message: "tuple: negative length"}
		}
		items := make([]Value, n)
		for i := n - 1; i >= 0; i-- {
			v, err := ex.Stack.Pop()
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		ex.Stack.Push(NewTuple(items...))
		return ok0()
	})
	// untuple: ( t n -- x1 .. xn ) fails unless t has exactly n items.
	def(ex, "untuple", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		t, err := ex.Stack.PopTuple()
		if err != nil {
			return nil, err
		}
		if len(t.Items) != n {
			return nil, RangeError{Message: "untuple: tuple length mismatch"}
		}
		for _, v := range t.Items {
			ex.Stack.Push(v)
		}
		return ok0()
	})
	def(ex, "count", func(ex *Executor) (Continuation, error) {
		t, err := ex.Stack.PopTuple()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushInt(int64(len(t.Items)))
		return ok0()
	})
	def(ex, "[]", func(ex *Executor) (Continuation, error) {
		i, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		t, err := ex.Stack.PopTuple()
		if err != nil {
			return nil, err
		}
		if i < 0 || i >= len(t.Items) {
			return nil, RangeError{Message: "tuple index out of range"}
		}
		ex.Stack.Push(t.Items[i])
		return ok0()
	})
	def(ex, "tuple?", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, ok := v.(*Tuple)
		ex.Stack.PushBool(ok)
		return ok0()
	})

	def(ex, "atom", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(Intern(string(s)))
		return ok0()
	})
	def(ex, "atom?", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, ok := v.(*Atom)
		ex.Stack.PushBool(ok)
		return ok0()
	})
	def(ex, "integer?", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, ok := v.(Integer)
		ex.Stack.PushBool(ok)
		return ok0()
	})
	def(ex, "string?", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, ok := v.(String)
		ex.Stack.PushBool(ok)
		return ok0()
	})
}
