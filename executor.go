package fift

import (
	"io"

	"github.com/pkg/errors"
)

// Mode distinguishes the two states the top-level interpreter loop can be
// in while reading a stream of words: Interpret runs each word as it is
// read; Compile appends it to the definition under construction instead.
type Mode int

const (
	Interpret Mode = iota
	Compile
)

// compileFrame accumulates the body of a `: name ... ;` or `{ ... }`
// definition while the reader is in Compile mode. A stack of these
// supports nested quotations, e.g. `: f { dup * } execute ;`.
type compileFrame struct {
	items []Continuation
}

// pendingDefinition tracks the name/active-flag of an in-progress `:`
// definition between the opening word and the closing `;`.
type pendingDefinition struct {
	name   string
	active bool
	line   bool // ::_ — the defined word consumes the rest of its line
	depth  int  // len(ex.compile) right after BeginCompile, for nesting safety

	// box is non-nil for a `recursive` definition: the name is already
	// bound to an indirection through this box, and `;` stores the
	// finished quotation into it instead of installing a new entry.
	box *Box
}

// Executor is the interpreter core: the data stack, the dictionary, the
// active source reader, and the trampoline loop that drives
// continuations. Every builtin is written against this type, receiving
// it as the sole argument to a NativeCont's fn.
type Executor struct {
	Stack *Stack
	Dict  *Dictionary
	In    *Reader
	Env   Environment
	Out   io.Writer

	compile []*compileFrame

	// pendingDef holds the name/active-flag of a `:`/`::`/`::_` definition
	// currently being compiled, consumed by `;`.
	pendingDef *pendingDefinition

	// maxDepth bounds the data stack; 0 means unbounded. Guards against
	// runaway recursion in pathological scripts.
	maxDepth int
}

// NewExecutor builds an Executor with a fresh stack, dictionary and
// reader, wired to env for file/include resolution and out for normal
// output (the target of `.`, `type`, etc).
func NewExecutor(env Environment, out io.Writer) *Executor {
	ex := &Executor{
		Stack: NewStack(),
		Dict:  NewDictionary(),
		In:    NewReader(),
		Env:   env,
		Out:   out,
	}
	RegisterBuiltins(ex)
	return ex
}

// Mode reports whether the executor is currently accumulating a
// definition body (Compile) or running words as they are read
// (Interpret).
func (ex *Executor) Mode() Mode {
	if ex.Compiling() {
		return Compile
	}
	return Interpret
}

// SetMaxDepth bounds the data stack; pass 0 to remove the bound.
func (ex *Executor) SetMaxDepth(n int) { ex.maxDepth = n }

func (ex *Executor) checkDepth() error {
	if ex.maxDepth > 0 && ex.Stack.Depth() > ex.maxDepth {
		return StackOverflow{Limit: ex.maxDepth}
	}
	return nil
}

// Abort raises a user-level abort, unwinding the run loop back to its
// caller. It is how abort"..." and assertion failures work.
func (ex *Executor) Abort(err error) (Continuation, error) {
	return nil, err
}

// Recover returns the executor to a clean interactive boundary after an
// abort surfaced from RunAll: open compile frames and any pending
// definition are discarded, and partially-read sources are closed. The
// data stack is left alone so the REPL can dump it.
func (ex *Executor) Recover() {
	ex.compile = nil
	ex.pendingDef = nil
	ex.In.CloseAll()
}

// Run drives c, and every continuation it tail-calls, to completion. It
// is the only place that repeatedly calls Continuation.Run, which is
// what keeps Go call-stack usage O(1) regardless of how long the chain
// of tail calls is.
func (ex *Executor) Run(c Continuation) error {
	for c != nil {
		if err := ex.checkDepth(); err != nil {
			return err
		}
		next, err := c.Run(ex)
		if err != nil {
			return err
		}
		c = next
	}
	return nil
}

// Execute runs a single already-resolved value as a continuation: plain
// data values push themselves (the behavior of a literal encountered in
// interpret mode), while Continuations run.
func (ex *Executor) Execute(v Value) error {
	if c, ok := v.(Continuation); ok {
		return ex.Run(c)
	}
	ex.Stack.Push(v)
	return nil
}

// emit appends a continuation to the innermost compile frame if one is
// open, otherwise runs it immediately. This is the shared landing point
// for both ordinary words (append-or-run) and literals.
func (ex *Executor) emit(c Continuation) error {
	if len(ex.compile) > 0 {
		f := ex.compile[len(ex.compile)-1]
		f.items = append(f.items, c)
		return nil
	}
	return ex.Run(c)
}

// BeginCompile opens a new nested compile frame, as `{` does.
func (ex *Executor) BeginCompile() {
	ex.compile = append(ex.compile, &compileFrame{})
}

// EndCompile closes the innermost compile frame and returns the
// quotation it built, as the closing `}` does.
func (ex *Executor) EndCompile() (*QuotationCont, error) {
	if len(ex.compile) == 0 {
		return nil, ParseError{Message: "unexpected `}`: no open compilation"}
	}
	f := ex.compile[len(ex.compile)-1]
	ex.compile = ex.compile[:len(ex.compile)-1]
	return NewQuotation(f.items...), nil
}

// Compiling reports whether a `{ ... }` or `: ... ;` body is currently
// being accumulated rather than run immediately.
func (ex *Executor) Compiling() bool { return len(ex.compile) > 0 }

// Interpret reads and runs one token from ex.In: a word lookup, a
// number, or (in an active word's case) a macro that itself drives the
// reader further. It returns io.EOF when the input is exhausted.
func (ex *Executor) Interpret() error {
	tok, err := ex.In.WordSpace()
	if err != nil {
		return err
	}
	if tok == "" {
		return nil
	}
	return ex.interpretToken(tok, ex.In.LastDelim())
}

func (ex *Executor) interpretToken(tok string, delim rune) error {
	if entry := ex.Dict.Lookup(tok); entry != nil {
		if entry.Active || !ex.Compiling() {
			return ex.Run(entry.Def)
		}
		return ex.emit(entry.Def)
	}
	// Longest-prefix match against prefix words, so `name, B{cafe},
	// x{77}, "text" and friends parse without a separating space. The
	// unmatched tail goes back to the reader for the word itself to
	// consume, together with the delimiter the tokenizer already ate, so
	// the word scans the source text unaltered (a string literal with
	// interior spaces, an atom name that must stop at the next token).
	for i := len(tok) - 1; i >= 1; i-- {
		entry := ex.Dict.Lookup(tok[:i])
		if entry == nil || !entry.Prefix {
			continue
		}
		tail := tok[i:]
		if delim != 0 {
			tail += string(delim)
		}
		ex.In.Unread(tail)
		if entry.Active || !ex.Compiling() {
			return ex.Run(entry.Def)
		}
		return ex.emit(entry.Def)
	}
	vals, ok, err := ParseNumber(tok)
	if err != nil {
		return err
	}
	if ok {
		for _, v := range vals {
			if err := ex.emit(Lit(v)); err != nil {
				return err
			}
		}
		return nil
	}
	return Undefined{Token: tok}
}

// RunAll interprets tokens from ex.In until it is exhausted.
func (ex *Executor) RunAll() error {
	for {
		err := ex.Interpret()
		if err == io.EOF {
			if ex.Compiling() {
				return ParseError{Message: "unexpected end of input: unclosed `{`"}
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Fail wraps msg with the current source location, matching the
// "<file>:<line>: message" diagnostic format real Fift scripts expect.
// The CLI uses the same format when it reports an error it caught from
// RunAll.
func (ex *Executor) Fail(msg string) error {
	name, line := ex.In.Location()
	if name == "" {
		return errors.New(msg)
	}
	return errors.Errorf("%s:%d: %s", name, line, msg)
}
