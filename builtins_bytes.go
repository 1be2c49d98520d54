package fift

import (
	"encoding/base64"
	"encoding/hex"
)

func registerBytesWords(ex *Executor) {
	def(ex, "Blen", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushInt(int64(len(b)))
		return ok0()
	})
	def(ex, "B+", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		out := make(Bytes, 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)
		ex.Stack.Push(out)
		return ok0()
	})
	def(ex, "B=", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		a, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushBool(bytesEqual(a, b))
		return ok0()
	})
	def(ex, "B>hex", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(String(hex.EncodeToString(b)))
		return ok0()
	})
	def(ex, "hex>B", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		b, derr := hex.DecodeString(string(s))
		if derr != nil {
			return nil, ParseError{Message: "malformed hex literal: " + derr.Error()}
		}
		ex.Stack.Push(Bytes(b))
		return ok0()
	})
	def(ex, "B>base64", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(String(base64.StdEncoding.EncodeToString(b)))
		return ok0()
	})
	def(ex, "base64>B", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		b, derr := base64.StdEncoding.DecodeString(string(s))
		if derr != nil {
			return nil, ParseError{Message: "malformed base64 literal: " + derr.Error()}
		}
		ex.Stack.Push(Bytes(b))
		return ok0()
	})
	def(ex, "$>B", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(Bytes([]byte(string(s))))
		return ok0()
	})
	def(ex, "B>$", func(ex *Executor) (Continuation, error) {
		b, err := ex.Stack.PopBytes()
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(String(string(b)))
		return ok0()
	})
}
