package fift

import "math/big"

// Continuation is the universal executable value. Run performs one
// non-recursive step of work and returns the continuation to tail-call
// next (nil when this chain of work is finished). The Executor's run
// loop repeatedly calls Run on the continuation each step returns, so a chain of
// any length executes with O(1) Go call-stack frames: that is what
// gives Fift words real tail calls.
type Continuation interface {
	Value
	Run(ex *Executor) (Continuation, error)
}

// WordRef is a first-class reference to a dictionary entry, produced by
// ' and find, and invoked by execute.
type WordRef struct {
	Name  string
	Entry *DictEntry
}

func (*WordRef) Type() string { return "wordref" }

// Run makes a WordRef directly executable, so `execute` can simply pop a
// Continuation off the stack without caring whether it was produced by
// `'`/find or is a bare quotation.
func (w *WordRef) Run(ex *Executor) (Continuation, error) {
	if w.Entry == nil {
		return nil, Undefined{Token: w.Name}
	}
	return w.Entry.Def, nil
}

// NativeCont wraps an opaque host function -- the implementation of every
// primitive built-in. fn may tail-call another continuation by returning
// it, or run to completion by returning (nil, nil).
type NativeCont struct {
	name string
	fn   func(ex *Executor) (Continuation, error)
}

func Native(name string, fn func(ex *Executor) (Continuation, error)) *NativeCont {
	return &NativeCont{name: name, fn: fn}
}

func (*NativeCont) Type() string { return "continuation" }

func (n *NativeCont) Run(ex *Executor) (Continuation, error) { return n.fn(ex) }

func (n *NativeCont) String() string { return n.name }

// litCont pushes a single captured value and finishes.
type litCont struct{ v Value }

func Lit(v Value) Continuation { return litCont{v: v} }

func (litCont) Type() string { return "continuation" }

func (l litCont) Run(ex *Executor) (Continuation, error) {
	ex.Stack.Push(l.v)
	return nil, nil
}

// seqCont composes two continuations so that second runs immediately
// after first finishes, without growing the Go call stack: this is the
// "tail chain" / Compound continuation variant. Quotations lower to a
// chain of seqCont nodes at execution time.
type seqCont struct{ first, second Continuation }

// Seq returns a continuation equivalent to running first then second.
func Seq(first, second Continuation) Continuation {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	return seqCont{first: first, second: second}
}

func (seqCont) Type() string { return "continuation" }

func (s seqCont) Run(ex *Executor) (Continuation, error) {
	next, err := s.first.Run(ex)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return s.second, nil
	}
	return seqCont{first: next, second: s.second}, nil
}

// QuotationCont is an anonymous first-class block of code produced by
// { ... }. It is a sequence of entries, each either a literal value or a
// reference to a word's continuation.
type QuotationCont struct {
	Items []Continuation
}

func NewQuotation(items ...Continuation) *QuotationCont {
	return &QuotationCont{Items: items}
}

func (*QuotationCont) Type() string { return "continuation" }

func (q *QuotationCont) Run(ex *Executor) (Continuation, error) {
	switch len(q.Items) {
	case 0:
		return nil, nil
	case 1:
		return q.Items[0], nil
	default:
		return Seq(q.Items[0], &QuotationCont{Items: q.Items[1:]}), nil
	}
}

// BoundCont is produced by does: invoking it first pushes the captured
// values onto the stack, then tail-calls the inner body. This is how
// create...does and Lisp-style closures are built without any macro or
// code-generation facility. constant and variable do not use it: they
// install a literal push of their value or box.
type BoundCont struct {
	Captured []Value
	Body     Continuation
}

func (*BoundCont) Type() string { return "continuation" }

func (b *BoundCont) Run(ex *Executor) (Continuation, error) {
	for _, v := range b.Captured {
		ex.Stack.Push(v)
	}
	return b.Body, nil
}

// timesCont implements `n { body } times`.
type timesCont struct {
	body  Continuation
	count *big.Int
	after Continuation
}

func (*timesCont) Type() string { return "continuation" }

func (t *timesCont) Run(ex *Executor) (Continuation, error) {
	if t.count.Sign() <= 0 {
		return t.after, nil
	}
	rest := new(big.Int).Sub(t.count, big.NewInt(1))
	return Seq(t.body, &timesCont{body: t.body, count: rest, after: t.after}), nil
}

// Times returns a continuation that runs body count times, then after.
func Times(count *big.Int, body, after Continuation) Continuation {
	if count.Sign() <= 0 {
		return after
	}
	return &timesCont{body: body, count: count, after: after}
}

// untilCont implements `{ body } until`: body runs, leaving a flag; loop
// while the flag is false.
type untilCont struct {
	body  Continuation
	after Continuation
}

func Until(body, after Continuation) Continuation {
	return &untilCont{body: body, after: after}
}

func (*untilCont) Type() string { return "continuation" }

func (u *untilCont) Run(ex *Executor) (Continuation, error) {
	return Seq(u.body, untilCheckCont{u}), nil
}

type untilCheckCont struct{ u *untilCont }

func (untilCheckCont) Type() string { return "continuation" }

func (c untilCheckCont) Run(ex *Executor) (Continuation, error) {
	flag, err := ex.Stack.PopBool()
	if err != nil {
		return nil, err
	}
	if flag {
		return c.u.after, nil
	}
	return c.u, nil
}

// whileCont implements `{ cond } { body } while`.
type whileCont struct {
	cond, body Continuation
	after      Continuation
}

func While(cond, body, after Continuation) Continuation {
	return &whileCont{cond: cond, body: body, after: after}
}

func (*whileCont) Type() string { return "continuation" }

func (w *whileCont) Run(ex *Executor) (Continuation, error) {
	return Seq(w.cond, whileCheckCont{w}), nil
}

type whileCheckCont struct{ w *whileCont }

func (whileCheckCont) Type() string { return "continuation" }

func (c whileCheckCont) Run(ex *Executor) (Continuation, error) {
	flag, err := ex.Stack.PopBool()
	if err != nil {
		return nil, err
	}
	if !flag {
		return c.w.after, nil
	}
	return Seq(c.w.body, c.w), nil
}
