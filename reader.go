package fift

import (
	"io"
	"strings"
	"unicode"

	"github.com/broxus/fift/internal/runeio"
)

// sourceCursor is one open input in the include stack: a rune reader
// plus enough bookkeeping to report "<name>:<line>:" in diagnostics.
type sourceCursor struct {
	name   string
	rr     runeio.Reader
	closer io.Closer
	line   int
	lineText strings.Builder

	pending    rune
	hasPending bool
}

func (c *sourceCursor) next() (rune, error) {
	if c.hasPending {
		c.hasPending = false
		return c.pending, nil
	}
	r, _, err := c.rr.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, nil
}

func (c *sourceCursor) newline() {
	c.line++
	c.lineText.Reset()
}

// readRune yields the next rune, splicing out backslash-newline line
// continuations (and their CRLF form) so callers never see them.
func (c *sourceCursor) readRune() (rune, error) {
	for {
		r, err := c.next()
		if err != nil {
			return 0, err
		}
		if r == '\\' {
			nr, nerr := c.next()
			if nerr != nil {
				return r, nil
			}
			if nr == '\r' {
				if nr2, nerr2 := c.next(); nerr2 == nil && nr2 != '\n' {
					c.pending, c.hasPending = nr2, true
				}
				c.newline()
				continue
			}
			if nr == '\n' {
				c.newline()
				continue
			}
			c.pending, c.hasPending = nr, true
			return r, nil
		}
		if r == '\n' {
			c.newline()
		} else {
			c.lineText.WriteRune(r)
		}
		return r, nil
	}
}

// Reader is the source reader driving the executor: it yields
// whitespace-delimited tokens from a stack of open files/strings,
// re-entrantly, so that active words can call Word/Char mid-parse.
type Reader struct {
	stack []*sourceCursor

	// pushback holds runes handed back by Unread, drained before the
	// cursor stack. Prefix-word dispatch uses it to return the unmatched
	// tail of a token (e.g. the `cafe}` of `B{cafe}`) to the input.
	pushback []rune

	// lastDelim is the delimiter rune the most recent Word call
	// consumed, 0 when the word ended at EOF or a source boundary.
	lastDelim rune
}

// LastDelim reports the delimiter consumed by the most recent Word
// call. Prefix-word dispatch re-appends it when unreading a token tail,
// so a word that keeps scanning sees the source text unaltered.
func (r *Reader) LastDelim() rune { return r.lastDelim }

func NewReader() *Reader { return &Reader{} }

// Unread returns s to the front of the input, to be re-read before
// anything else.
func (r *Reader) Unread(s string) {
	if s == "" {
		return
	}
	r.pushback = append([]rune(s), r.pushback...)
}

// Include pushes a new source onto the top of the include stack; it
// becomes the active source until it reaches EOF, at which point it is
// popped and the caller's source resumes exactly where it left off.
func (r *Reader) Include(name string, rd io.Reader) {
	c := &sourceCursor{name: name, rr: runeio.NewReader(rd)}
	if cl, ok := rd.(io.Closer); ok {
		c.closer = cl
	}
	c.line = 1
	r.stack = append(r.stack, c)
}

// Depth reports how many sources are currently open.
func (r *Reader) Depth() int { return len(r.stack) }

// CloseAll closes and drops every open source and any pushed-back
// input, as when an abort unwinds past the include stack.
func (r *Reader) CloseAll() {
	for len(r.stack) > 0 {
		r.popExhausted()
	}
	r.pushback = nil
}

func (r *Reader) top() *sourceCursor {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Location reports the name and 1-based line number of the innermost
// open source, used to format "<file>:<line>: message" diagnostics.
func (r *Reader) Location() (name string, line int) {
	c := r.top()
	if c == nil {
		return "", 0
	}
	return c.name, c.line
}

// popExhausted closes and pops the innermost source. readRuneB calls it
// once per source that hits EOF; CloseAll calls it until the stack is empty.
func (r *Reader) popExhausted() {
	for len(r.stack) > 0 {
		c := r.top()
		if c.closer != nil {
			c.closer.Close()
		}
		r.stack = r.stack[:len(r.stack)-1]
		return
	}
}

// readRuneB reads the next rune, popping exhausted sources and resuming
// the caller transparently. The boolean reports whether a source
// boundary was crossed to reach the rune, which Word uses to avoid
// gluing the last token of an included file onto its caller's input.
// Returns io.EOF only when the entire include stack is empty.
func (r *Reader) readRuneB() (rune, bool, error) {
	if len(r.pushback) > 0 {
		ru := r.pushback[0]
		r.pushback = r.pushback[1:]
		return ru, false, nil
	}
	crossed := false
	for {
		c := r.top()
		if c == nil {
			return 0, crossed, io.EOF
		}
		ru, err := c.readRune()
		if err == io.EOF {
			r.popExhausted()
			crossed = true
			continue
		}
		if err != nil {
			return 0, crossed, err
		}
		return ru, crossed, nil
	}
}

// ReadRune reads the next rune across the whole include stack.
func (r *Reader) ReadRune() (rune, error) {
	ru, _, err := r.readRuneB()
	return ru, err
}

func isFiftSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || unicode.IsSpace(r)
}

// Word implements the generalized (word) scanner: skip leading
// whitespace (unless skipLeading is false), then read until a rune
// matching isDelim, or EOF. The delimiter itself is consumed but not
// included in the result.
func (r *Reader) Word(isDelim func(rune) bool, skipLeading bool) (string, error) {
	var sb strings.Builder
	r.lastDelim = 0
	if skipLeading {
		for {
			ru, err := r.ReadRune()
			if err == io.EOF {
				return "", io.EOF
			}
			if err != nil {
				return "", err
			}
			if !isFiftSpace(ru) {
				if isDelim(ru) {
					r.lastDelim = ru
					return "", nil
				}
				sb.WriteRune(ru)
				break
			}
		}
	}
	for {
		ru, crossed, err := r.readRuneB()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if crossed && sb.Len() > 0 {
			r.Unread(string(ru))
			break
		}
		if isDelim(ru) {
			r.lastDelim = ru
			break
		}
		sb.WriteRune(ru)
	}
	return sb.String(), nil
}

// WordSpace reads a whitespace-delimited token after skipping leading
// whitespace; the interpreter reads every token this way. The `word`
// builtin with a space delimiter (bl word) goes through WordDelim instead.
func (r *Reader) WordSpace() (string, error) {
	return r.Word(isFiftSpace, true)
}

// WordDelim reads a token delimited by a single explicit byte, as with
// `"..."`'s use of `"` or `B{...}`'s use of `}`.
func (r *Reader) WordDelim(delim rune) (string, error) {
	return r.Word(func(ru rune) bool { return ru == delim }, false)
}

// RestOfLine implements `0 word`: consume through end of line (or EOF),
// not skipping leading whitespace. A CRLF ending leaves no stray \r in
// the result.
func (r *Reader) RestOfLine() (string, error) {
	s, err := r.Word(func(ru rune) bool { return ru == '\n' }, false)
	return strings.TrimSuffix(s, "\r"), err
}

// Char reads exactly one printable token and returns its first code
// point, skipping leading whitespace first.
func (r *Reader) Char() (rune, error) {
	s, err := r.WordSpace()
	if err != nil {
		return 0, err
	}
	for _, ru := range s {
		return ru, nil
	}
	return 0, io.EOF
}

// SkipLineComment consumes through end of line, used by `//`.
func (r *Reader) SkipLineComment() error {
	_, err := r.RestOfLine()
	if err == io.EOF {
		return nil
	}
	return err
}

// SkipBlockComment consumes up to and including a matching `*/`,
// honoring nesting of `/*`, as Fift's block comments do.
func (r *Reader) SkipBlockComment() error {
	depth := 1
	var prev rune
	for depth > 0 {
		ru, err := r.ReadRune()
		if err == io.EOF {
			return ParseError{Message: "unterminated block comment"}
		}
		if err != nil {
			return err
		}
		if prev == '/' && ru == '*' {
			depth++
			prev = 0
			continue
		}
		if prev == '*' && ru == '/' {
			depth--
			prev = 0
			continue
		}
		prev = ru
	}
	return nil
}
