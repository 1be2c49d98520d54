package fift

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(src string) *Reader {
	r := NewReader()
	r.Include("test", strings.NewReader(src))
	return r
}

func TestWordSpace(t *testing.T) {
	r := newTestReader("  foo\tbar\nbaz")
	for _, want := range []string{"foo", "bar", "baz"} {
		got, err := r.WordSpace()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.WordSpace()
	assert.Equal(t, io.EOF, err)
}

func TestWordDelim(t *testing.T) {
	r := newTestReader(`hello world" rest`)
	got, err := r.WordDelim('"')
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	got, err = r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "rest", got)
}

func TestRestOfLine(t *testing.T) {
	r := newTestReader("first line\nsecond")
	got, err := r.RestOfLine()
	require.NoError(t, err)
	assert.Equal(t, "first line", got)

	got, err = r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestChar(t *testing.T) {
	r := newTestReader("   X")
	ru, err := r.Char()
	require.NoError(t, err)
	assert.Equal(t, 'X', ru)
}

func TestLineContinuation(t *testing.T) {
	r := newTestReader("ab\\\ncd ef")
	got, err := r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)

	got, err = r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "ef", got)
}

func TestLineContinuationCRLF(t *testing.T) {
	r := newTestReader("ab\\\r\ncd")
	got, err := r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)
}

func TestLastDelim(t *testing.T) {
	r := newTestReader("foo bar")
	_, err := r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, ' ', r.LastDelim())

	// The final token ends at EOF, not at a delimiter.
	_, err = r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, rune(0), r.LastDelim())
}

func TestUnread(t *testing.T) {
	r := newTestReader("tail} next")
	r.Unread("cafe}")
	got, err := r.WordDelim('}')
	require.NoError(t, err)
	assert.Equal(t, "cafe", got)

	got, err = r.WordDelim('}')
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestIncludeStackIsLIFO(t *testing.T) {
	r := newTestReader("outer1 outer2")
	got, err := r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "outer1", got)

	r.Include("inner", strings.NewReader("inner1\n"))
	got, err = r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "inner1", got)

	// The inner source is exhausted; the outer one resumes.
	got, err = r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "outer2", got)
	assert.Equal(t, 0, r.Depth())
}

func TestTokenDoesNotGlueAcrossSources(t *testing.T) {
	r := newTestReader("bar")
	r.Include("inner", strings.NewReader("foo")) // no trailing newline
	got, err := r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "foo", got)

	got, err = r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "bar", got)
}

func TestLocationTracksLines(t *testing.T) {
	r := newTestReader("a\nb\nc")
	name, line := r.Location()
	assert.Equal(t, "test", name)
	assert.Equal(t, 1, line)

	for i := 0; i < 2; i++ {
		_, err := r.WordSpace()
		require.NoError(t, err)
	}
	_, line = r.Location()
	assert.Equal(t, 3, line)
}

func TestSkipLineComment(t *testing.T) {
	r := newTestReader("junk to end\nnext")
	require.NoError(t, r.SkipLineComment())
	got, err := r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "next", got)
}

func TestSkipBlockCommentNested(t *testing.T) {
	r := newTestReader(" one /* two */ three */ after")
	require.NoError(t, r.SkipBlockComment())
	got, err := r.WordSpace()
	require.NoError(t, err)
	assert.Equal(t, "after", got)
}

func TestSkipBlockCommentUnterminated(t *testing.T) {
	r := newTestReader(" never closed")
	err := r.SkipBlockComment()
	assert.IsType(t, ParseError{}, err)
}
