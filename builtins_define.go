package fift

import "io"

func registerDefineWords(ex *Executor) {
	startDef := func(active, line bool) func(ex *Executor) (Continuation, error) {
		return func(ex *Executor) (Continuation, error) {
			name, err := ex.In.WordSpace()
			if err != nil {
				return nil, err
			}
			if name == "" {
				return nil, ParseError{Message: "expected a word name after `:`"}
			}
			ex.BeginCompile()
			ex.pendingDef = &pendingDefinition{name: name, active: active, line: line, depth: len(ex.compile)}
			return ok0()
		}
	}
	defActive(ex, ":", startDef(false, false))
	defActive(ex, "::", startDef(true, false))
	defActive(ex, "::_", startDef(true, true))

	defActive(ex, ";", func(ex *Executor) (Continuation, error) {
		pd := ex.pendingDef
		if pd == nil || pd.depth != len(ex.compile) {
			return nil, ParseError{Message: "unexpected `;`: no open `:` definition"}
		}
		quot, err := ex.EndCompile()
		if err != nil {
			return nil, err
		}
		ex.pendingDef = nil
		if pd.box != nil {
			pd.box.V = quot
			return ok0()
		}
		var body Continuation = quot
		if pd.line {
			// A ::_ word reads the rest of the invoking line and hands it
			// to its body as a string, the mechanism behind reader-style
			// macros like GR$... and LISP-EVAL(...).
			body = Seq(Native(pd.name+"(line)", func(ex *Executor) (Continuation, error) {
				s, rerr := ex.In.RestOfLine()
				if rerr != nil && rerr != io.EOF {
					return nil, rerr
				}
				ex.Stack.Push(String(s))
				return ok0()
			}), quot)
		}
		entry, derr := ex.Dict.Define(pd.name, pd.active, body, RejectExisting)
		if derr != nil {
			return nil, derr
		}
		if pd.line {
			entry.Prefix = true
		}
		return ok0()
	})

	// recursive NAME ... ; defines NAME so that it is already callable
	// inside its own body: the name is bound first to an indirection
	// through a box, and `;` fills the box with the finished quotation.
	// The indirection tail-calls the stored body, so self-recursion in
	// tail position runs in O(1) host-stack frames.
	defActive(ex, "recursive", func(ex *Executor) (Continuation, error) {
		name, err := ex.In.WordSpace()
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, ParseError{Message: "expected a word name after `recursive`"}
		}
		box := NewBox(Nil)
		deref := Native(name, func(ex *Executor) (Continuation, error) {
			c, ok := box.V.(Continuation)
			if !ok {
				return nil, Undefined{Token: name}
			}
			return c, nil
		})
		if _, err := ex.Dict.Define(name, false, deref, RejectExisting); err != nil {
			return nil, err
		}
		ex.BeginCompile()
		ex.pendingDef = &pendingDefinition{name: name, depth: len(ex.compile), box: box}
		return ok0()
	})

	defActive(ex, "{", func(ex *Executor) (Continuation, error) {
		ex.BeginCompile()
		return ok0()
	})
	defActive(ex, "}", func(ex *Executor) (Continuation, error) {
		quot, err := ex.EndCompile()
		if err != nil {
			return nil, err
		}
		return nil, ex.emit(Lit(quot))
	})

	defActive(ex, "constant", func(ex *Executor) (Continuation, error) {
		name, err := ex.In.WordSpace()
		if err != nil {
			return nil, err
		}
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, err = ex.Dict.Define(name, false, Lit(v), RejectExisting)
		return nil, err
	})
	defActive(ex, "variable", func(ex *Executor) (Continuation, error) {
		name, err := ex.In.WordSpace()
		if err != nil {
			return nil, err
		}
		box := NewBox(NewInt(0))
		_, err = ex.Dict.Define(name, false, Lit(box), RejectExisting)
		return nil, err
	})
	defActive(ex, "create", func(ex *Executor) (Continuation, error) {
		name, err := ex.In.WordSpace()
		if err != nil {
			return nil, err
		}
		box := NewBox(Nil)
		_, err = ex.Dict.Define(name, false, Lit(box), RejectExisting)
		return nil, err
	})

	def(ex, "hole", func(ex *Executor) (Continuation, error) {
		ex.Stack.Push(NewBox(Nil))
		return ok0()
	})
	def(ex, "box", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(NewBox(v))
		return ok0()
	})
	def(ex, "box?", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, ok := v.(*Box)
		ex.Stack.PushBool(ok)
		return ok0()
	})
	def(ex, "@", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBox()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(b.V)
		return ok0()
	})
	def(ex, "!", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBox()
		if err != nil {
			return nil, err
		}
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		b.V = v
		return ok0()
	})

	// does: ( x1 .. xn n e -- e' ) with the quotation on top, the capture
	// count under it, then the captured values.
	def(ex, "does", func(ex *Executor) (Continuation, error) {
		quot, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		n, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, RangeError{Message: "does: negative capture count"}
		}
		vals := make([]Value, n)
		for i := n - 1; i >= 0; i-- {
			v, err := ex.Stack.Pop()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		ex.Stack.Push(&BoundCont{Captured: vals, Body: quot})
		return ok0()
	})
	def(ex, "(create)", func(ex *Executor) (Continuation, error) {
		overwrite, err := ex.Stack.PopBool()
		if err != nil {
			return nil, err
		}
		name, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		cont, err := ex.Stack.PopCont()
		if err != nil {
			return nil, err
		}
		policy := RejectExisting
		if overwrite {
			policy = AllowOverwrite
		}
		_, err = ex.Dict.Define(string(name), false, cont, policy)
		return nil, err
	})

	defActive(ex, "'", func(ex *Executor) (Continuation, error) {
		name, err := ex.In.WordSpace()
		if err != nil {
			return nil, err
		}
		entry := ex.Dict.Lookup(name)
		if entry == nil {
			return nil, Undefined{Token: name}
		}
		return nil, ex.emit(Lit(&WordRef{Name: name, Entry: entry}))
	})
	def(ex, "find", func(ex *Executor) (Continuation, error) {
		name, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		entry := ex.Dict.Lookup(string(name))
		if entry == nil {
			ex.Stack.Push(Nil)
			return ok0()
		}
		ex.Stack.Push(&WordRef{Name: string(name), Entry: entry})
		return ok0()
	})
	defActive(ex, "forget", func(ex *Executor) (Continuation, error) {
		name, err := ex.In.WordSpace()
		if err != nil {
			return nil, err
		}
		return nil, ex.Dict.Forget(name)
	})

	defActive(ex, "library", func(ex *Executor) (Continuation, error) {
		ex.In.WordSpace() // library name: always read, then discarded
		ex.Dict.PushScope()
		return ok0()
	})
	defActive(ex, "}Libs", func(ex *Executor) (Continuation, error) {
		ex.Dict.PopScope()
		return ok0()
	})
}
