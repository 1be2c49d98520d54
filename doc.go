/* Package fift implements the core of the Fift programming language: a
stack-oriented, concatenative, dictionary-driven language used as the
tooling layer around the TON/Everscale blockchain stack.

Fift has no separate compile phase and no AST. The source reader yields
whitespace-delimited tokens, and for each token the interpreter consults
the dictionary: an active (immediate) word runs right away, an ordinary
word either runs or is appended to the definition currently under
construction, and anything else is retried as a numeric literal. Every
other piece of syntax -- strings, byte literals, quotations, comments,
word references, whole library blocks -- is an active word that reaches
back into the reader for more input. The parser is the executor.

Execution is continuation-based. A Continuation is the one universal
executable value; natives, quotations, bound closures and loop forms are
all variants of it, and the Executor drives them through a trampoline:
each step returns the continuation to run next instead of calling into
it, so arbitrarily deep tail recursion costs a constant number of Go
stack frames.

Values are a small closed set: null, arbitrary-precision integers,
strings, byte strings, interned atoms, tuples, cons pairs, single-slot
mutable boxes, the TVM cell family (cell, slice, builder), word
references, and continuations themselves. The stack is untyped; each
operation checks its operands when it runs.

The cmd/fift command wraps this package in the usual command-line
front-end (source files, -s script mode, -i interactive loop, FIFTPATH
include resolution), and cmd/fiftcheck runs a battery of end-to-end
conformance scenarios against it.
*/
package fift
