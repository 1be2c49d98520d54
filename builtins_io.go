package fift

import "io"

func registerIOWords(ex *Executor) {
	def(ex, "include", func(ex *Executor) (Continuation, error) {
		name, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		rc, resolved, err := ex.Env.Open(string(name))
		if err != nil {
			return nil, err
		}
		ex.In.Include(resolved, rc)
		return ok0()
	})
	def(ex, "file>B", func(ex *Executor) (Continuation, error) {
		name, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		rc, _, err := ex.Env.Open(string(name))
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		data, rerr := io.ReadAll(rc)
		if rerr != nil {
			return nil, IoError{Op: "read", Err: rerr}
		}
		ex.Stack.Push(Bytes(data))
		return ok0()
	})
	def(ex, "B>file", func(ex *Executor) (Continuation, error) {
		name, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		data, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		wc, cerr := ex.Env.Create(string(name))
		if cerr != nil {
			return nil, cerr
		}
		defer wc.Close()
		if _, werr := wc.Write(data); werr != nil {
			return nil, IoError{Op: "write", Err: werr}
		}
		return ok0()
	})
	def(ex, "words", func(ex *Executor) (Continuation, error) {
		for _, n := range ex.Dict.Names() {
			if _, err := ex.Out.Write([]byte(n + " ")); err != nil {
				return nil, err
			}
		}
		_, err := ex.Out.Write([]byte{'\n'})
		return nil, err
	})
}
