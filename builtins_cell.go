package fift

func registerCellWords(ex *Executor) {
	def(ex, "<b", func(ex *Executor) (Continuation, error) {
		ex.Stack.Push(NewBuilder())
		return ok0()
	})
	def(ex, "b>", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBuilder()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(b.Finalize())
		return ok0()
	})
	def(ex, "i,", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		x, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		b, err := ex.Stack.PopBuilder()
		if err != nil {
			return nil, err
		}
		if err := b.StoreInt(x.V, n); err != nil {
			return nil, err
		}
		ex.Stack.Push(b)
		return ok0()
	})
	def(ex, "u,", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		x, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		b, err := ex.Stack.PopBuilder()
		if err != nil {
			return nil, err
		}
		if err := b.StoreUint(x.V, n); err != nil {
			return nil, err
		}
		ex.Stack.Push(b)
		return ok0()
	})
	def(ex, "ref,", func(ex *Executor) (Continuation, error) {
		c, err := ex.Stack.PopCell()
		if err != nil {
			return nil, err
		}
		b, err := ex.Stack.PopBuilder()
		if err != nil {
			return nil, err
		}
		if err := b.StoreRef(c); err != nil {
			return nil, err
		}
		ex.Stack.Push(b)
		return ok0()
	})
	def(ex, "s,", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopSlice()
		if err != nil {
			return nil, err
		}
		b, err := ex.Stack.PopBuilder()
		if err != nil {
			return nil, err
		}
		if err := b.StoreSlice(s); err != nil {
			return nil, err
		}
		ex.Stack.Push(b)
		return ok0()
	})
	def(ex, "<s", func(ex *Executor) (Continuation, error) {
		c, err := ex.Stack.PopCell()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(NewSlice(c))
		return ok0()
	})
	def(ex, "i@", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		s, err := ex.Stack.PopSlice()
		if err != nil {
			return nil, err
		}
		v, err := s.LoadInt(n)
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(NewBigInt(v))
		ex.Stack.Push(s)
		return ok0()
	})
	def(ex, "u@", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		s, err := ex.Stack.PopSlice()
		if err != nil {
			return nil, err
		}
		v, err := s.LoadUint(n)
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(NewBigInt(v))
		ex.Stack.Push(s)
		return ok0()
	})
	def(ex, "ref@", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopSlice()
		if err != nil {
			return nil, err
		}
		c, err := s.LoadRef()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(c)
		ex.Stack.Push(s)
		return ok0()
	})
	def(ex, "s-empty?", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopSlice()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(s.Empty())
		return ok0()
	})
	def(ex, "brefs", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBuilder()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushInt(int64(b.RefCount()))
		return ok0()
	})
	def(ex, "bbits", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBuilder()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushInt(int64(b.BitLen()))
		return ok0()
	})
}
