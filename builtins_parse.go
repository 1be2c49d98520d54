package fift

import (
	"encoding/hex"
	"io"
	"strings"
)

func registerParseWords(ex *Executor) {
	defPrefix(ex, `"`, func(ex *Executor) (Continuation, error) {
		s, err := ex.In.WordDelim('"')
		if err != nil {
			return nil, err
		}
		return nil, ex.emit(Lit(String(s)))
	})
	defPrefix(ex, `."`, func(ex *Executor) (Continuation, error) {
		s, err := ex.In.WordDelim('"')
		if err != nil {
			return nil, err
		}
		return nil, ex.emit(Native(`."`, func(ex *Executor) (Continuation, error) {
			_, werr := ex.Out.Write([]byte(s))
			return nil, werr
		}))
	})
	defPrefix(ex, "B{", func(ex *Executor) (Continuation, error) {
		s, err := ex.In.WordDelim('}')
		if err != nil {
			return nil, err
		}
		clean := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
		b, derr := hex.DecodeString(clean)
		if derr != nil {
			return nil, ParseError{Message: "malformed B{...} literal: " + derr.Error()}
		}
		return nil, ex.emit(Lit(Bytes(b)))
	})
	defPrefix(ex, "x{", func(ex *Executor) (Continuation, error) {
		s, err := ex.In.WordDelim('}')
		if err != nil {
			return nil, err
		}
		clean := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
		b, derr := hex.DecodeString(clean)
		if derr != nil {
			return nil, ParseError{Message: "malformed x{...} literal: " + derr.Error()}
		}
		builder := NewBuilder()
		if err := builder.StoreBytes(b); err != nil {
			return nil, err
		}
		return nil, ex.emit(Lit(builder.Finalize()))
	})

	// `name reads one word and pushes the interned atom of that name.
	// Like every other literal syntax this is a dictionary word, not a
	// lexer rule, so it can be forgotten or shadowed.
	defPrefix(ex, "`", func(ex *Executor) (Continuation, error) {
		name, err := ex.In.WordSpace()
		if err == io.EOF || (err == nil && name == "") {
			return nil, ParseError{Message: "expected an atom name after `"}
		}
		if err != nil {
			return nil, err
		}
		return nil, ex.emit(Lit(Intern(name)))
	})

	// Comments are words too: `//` and `/*` just consume input, which is
	// why they must be whitespace-delimited like everything else.
	defActive(ex, "//", func(ex *Executor) (Continuation, error) {
		// A `//` that ends its line has nothing left to skip.
		if ex.In.LastDelim() == '\n' {
			return ok0()
		}
		return nil, ex.In.SkipLineComment()
	})
	defActive(ex, "/*", func(ex *Executor) (Continuation, error) {
		return nil, ex.In.SkipBlockComment()
	})

	def(ex, "bl", func(ex *Executor) (Continuation, error) {
		ex.Stack.PushInt(' ')
		return ok0()
	})
	def(ex, "char", func(ex *Executor) (Continuation, error) {
		r, err := ex.In.Char()
		if err != nil {
			return nil, err
		}
		ex.Stack.PushInt(int64(r))
		return ok0()
	})
	// (char): ( S -- c ) first code point of a string already on the
	// stack, the non-reading counterpart of char.
	def(ex, "(char)", func(ex *Executor) (Continuation, error) {
		s, err := ex.Stack.PopString()
		if err != nil {
			return nil, err
		}
		for _, r := range string(s) {
			ex.Stack.PushInt(int64(r))
			return ok0()
		}
		return nil, RangeError{Message: "(char): empty string"}
	})
	def(ex, "word", func(ex *Executor) (Continuation, error) {
		delim, err := ex.Stack.PopSmallInt()
		if err != nil {
			return nil, err
		}
		var s string
		if delim == 0 {
			s, err = ex.In.RestOfLine()
		} else {
			s, err = ex.In.WordDelim(rune(delim))
		}
		if err != nil {
			return nil, err
		}
		ex.Stack.Push(String(s))
		return ok0()
	})

	def(ex, "cr", func(ex *Executor) (Continuation, error) {
		_, err := ex.Out.Write([]byte{'\n'})
		return nil, err
	})
	def(ex, ".", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, werr := ex.Out.Write([]byte(Display(v) + " "))
		return nil, werr
	})
	def(ex, "type", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, werr := ex.Out.Write([]byte(TypeWord(v)))
		return nil, werr
	})
	def(ex, ".l", func(ex *Executor) (Continuation, error) {
		v, err := ex.Stack.Pop()
		if err != nil {
			return nil, err
		}
		_, werr := ex.Out.Write([]byte(Display(v)))
		return nil, werr
	})
}
