package fift

func registerStackWords(ex *Executor) {
	def(ex, "drop", func(ex *Executor) (Continuation, error) {
		if _, err := ex.Stack.Pop(); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "2drop", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Drop(2); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "dup", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Pick(0); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "2dup", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Pick(1); err != nil {
			return nil, err
		}
		if err := ex.Stack.Pick(1); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "over", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Pick(1); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "swap", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Swap(0, 1); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "rot", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Roll(2); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "-rot", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Roll(2); err != nil {
			return nil, err
		}
		if err := ex.Stack.Roll(2); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "nip", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Swap(0, 1); err != nil {
			return nil, err
		}
		if _, err := ex.Stack.Pop(); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "tuck", func(ex *Executor) (Continuation, error) {
		if err := ex.Stack.Swap(0, 1); err != nil {
			return nil, err
		}
		if err := ex.Stack.Pick(1); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "roll", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if err := ex.Stack.Roll(n); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "pick", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if err := ex.Stack.Pick(n); err != nil {
			return nil, err
		}
		return ok0()
	})
	def(ex, "depth", func(ex *Executor) (Continuation, error) {
		ex.Stack.PushInt(int64(ex.Stack.Depth()))
		return ok0()
	})
	def(ex, ".s", func(ex *Executor) (Continuation, error) {
		for _, v := range ex.Stack.Items() {
			if _, err := ex.Out.Write([]byte(Display(v) + " ")); err != nil {
				return nil, err
			}
		}
		_, err := ex.Out.Write([]byte{'\n'})
		return nil, err
	})
	def(ex, "exch", func(ex *Executor) (Continuation, error) {
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if err := ex.Stack.Swap(0, n); err != nil {
			return nil, err
		}
		return ok0()
	})
}
