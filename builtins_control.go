package fift

import "math/big"

func registerControlWords(ex *Executor) {
	def(ex, "execute", func(ex *Executor) (Continuation, error) {
		return ex.Stack.PopCont()
	})
	def(ex, "if", func(ex *Executor) (Continuation, error) {
		quot, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		flag, err := ex.Stack.PopBool()
		if err != nil {
			return nil, err
		}
		if flag {
			return quot, nil
		}
		return ok0()
	})
	def(ex, "ifnot", func(ex *Executor) (Continuation, error) {
		quot, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		flag, err := ex.Stack.PopBool()
		if err != nil {
			return nil, err
		}
		if !flag {
			return quot, nil
		}
		return ok0()
	})
	def(ex, "cond", func(ex *Executor) (Continuation, error) {
		no, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		yes, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		flag, err := ex.Stack.PopBool()
		if err != nil {
			return nil, err
		}
		if flag {
			return yes, nil
		}
		return no, nil
	})
	def(ex, "while", func(ex *Executor) (Continuation, error) {
		body, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		cond, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		return While(cond, body, nil), nil
	})
	def(ex, "until", func(ex *Executor) (Continuation, error) {
		body, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		return Until(body, nil), nil
	})
	def(ex, "times", func(ex *Executor) (Continuation, error) {
		body, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		n, err := ex.Stack.PopInt()
		if err != nil {
			return nil, err
		}
		return Times(new(big.Int).Set(n.V), body, nil), nil
	})

	def(ex, "eq?", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(Eq(a, b))
		return ok0()
	})
	def(ex, "eqv?", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(Eqv(a, b))
		return ok0()
	})
	def(ex, "equal?", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(Equal(a, b))
		return ok0()
	})

	def(ex, "bye", func(ex *Executor) (Continuation, error) {
		return nil, ByeSignal{}
	})

	defPrefix(ex, `abort"`, func(ex *Executor) (Continuation, error) {
		msg, err := ex.In.WordDelim('"')
		if err != nil {
			return nil, err
		}
		return nil, ex.emit(Native("abort\"", func(ex *Executor) (Continuation, error) {
			flag, err := ex.Stack.PopBool()
			if err != nil {
				return nil, err
			}
			if flag {
				return ex.Abort(AssertionFailure{Message: msg})
			}
			return ok0()
		}))
	})
	defActive(ex, "abort", func(ex *Executor) (Continuation, error) {
		return nil, ex.emit(Native("abort", func(ex *Executor) (Continuation, error) {
			msg, err := ex.Stack.PopString()
			if err != nil {
				return nil, err
			}
			return ex.Abort(UserAbort{Message: string(msg)})
		}))
	})
}
