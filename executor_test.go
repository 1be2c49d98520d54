package fift

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// runFift interprets src against a fresh executor and returns whatever
// the printing words wrote.
func runFift(t *testing.T, src string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	ex := NewExecutor(NewSystemEnvironment(nil), &buf)
	ex.In.Include("test.fif", strings.NewReader(src))
	err := ex.RunAll()
	return buf.String(), err
}

func mustRun(t *testing.T, src string) string {
	t.Helper()
	out, err := runFift(t, src)
	require.NoError(t, err, "source: %s", src)
	return out
}

func TestEndToEnd(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want string
	}{
		{"add-print", `2 3 + .`, "5 "},
		{"hex-and-binary-literals", `0x10 0b101 + .`, "21 "},
		{"octal-literal", `0o17 .`, "15 "},
		{"negative", `-7 abs .`, "7 "},
		{"floor-div", `-7 2 / .`, "-4 "},
		{"floor-mod", `-7 2 mod .`, "1 "},
		{"divmod", `7 2 /mod . .`, "3 1 "},
		{"shifts", `1 10 << 2 >> .`, "256 "},
		{"min-max", `3 9 min 3 9 max + .`, "12 "},
		{"string-length", `" hello" $len .`, "5 "},
		{"glued-string-literal", `"hello" $len .`, "5 "},
		{"glued-print-literal", `."hi!"`, "hi!"},
		{"string-concat", `" abc" " def" $+ .l`, "abcdef"},
		{"string-slice", `" hello" 1 3 $| .l`, "el"},
		{"string-print", `." hi there"`, "hi there"},
		{"type-word", `" abc" type`, "abc"},
		{"null-dump", `null .`, "(null) "},
		{"null-type", `null type`, ""},
		{"define-and-call", `: sq dup * ; 7 sq .`, "49 "},
		{"quotations-cond", `1 2 < { 10 } { 20 } cond .`, "10 "},
		{"cond-false-branch", `2 1 < { 10 } { 20 } cond .`, "20 "},
		{"if-taken", `5 1 { . } if`, "5 "},
		{"ifnot-taken", `5 0 { . } ifnot`, "5 "},
		{"while", `1 { dup 100 < } { dup + } while .`, "128 "},
		{"until", `1 { 1+ dup 10 = } until .`, "10 "},
		{"times", `1 5 { 2 * } times .`, "32 "},
		{"times-zero", `7 0 { 2 * } times .`, "7 "},
		{"list-literal", `( 1 2 3 ) .l`, "( 1 2 3 )"},
		{"list-reverse", `( 1 2 3 ) list-reverse .l`, "( 3 2 1 )"},
		{"list-reverse-involution", `( 1 2 3 ) list-reverse list-reverse .l`, "( 1 2 3 )"},
		{"list-explode-rebuild", `( 1 2 3 ) explode-list list .l`, "( 1 2 3 )"},
		{"list-length", `( 4 5 6 7 ) list-length .`, "4 "},
		{"list-concat", `( 1 2 ) ( 3 ) list+ .l`, "( 1 2 3 )"},
		{"nested-list", `( 1 ( 2 3 ) ) .l`, "( 1 ( 2 3 ) )"},
		{"improper-pair", `1 2 cons .l`, "( 1 . 2 )"},
		{"car-cdr", `( 1 2 3 ) uncons swap . car .`, "1 2 "},
		{"box-roundtrip", `hole dup 5 swap ! @ .`, "5 "},
		{"box-word", `5 box @ .`, "5 "},
		{"type-predicates", `1 integer? . " x" string? . hole box? . 1 string? .`, "-1 -1 -1 0 "},
		{"variable", `variable x 3 x ! x @ .`, "3 "},
		{"constant", `42 constant answer answer .`, "42 "},
		{"does-closure", `3 1 { + } does " add3" 0 (create) 4 add3 .`, "7 "},
		{"tick-execute", `: sq dup * ; 3 ' sq execute .`, "9 "},
		{"find-execute", `: sq dup * ; 3 " sq" find execute .`, "9 "},
		{"atom-identity", "`foo `foo eq? .", "-1 "},
		{"atom-spaced", "` foo `foo eq? .", "-1 "},
		{"glued-string-with-space", `"hello world" $len .`, "11 "},
		{"atom-distinct", "`foo `bar eq? .", "0 "},
		{"atom-from-string", "\" foo\" atom `foo eq? .", "-1 "},
		{"tuple-count", `1 2 3 3 tuple count .`, "3 "},
		{"tuple-index", `1 2 3 3 tuple 1 [] .`, "2 "},
		{"tuple-grow", `| 5 , 6 , 2 untuple . .`, "6 5 "},
		{"tuple-print", `1 2 2 tuple .l`, "[ 1 2 ]"},
		{"recursive-factorial", `recursive fact dup 1 > { dup 1- fact * } if ; 5 fact .`, "120 "},
		{"recursive-base-case", `recursive fact dup 1 > { dup 1- fact * } if ; 1 fact .`, "1 "},
		{"line-comment", "// junk line\n1 .", "1 "},
		{"block-comment", `1 /* ignored /* nested too */ still ignored */ 2 + .`, "3 "},
		{"line-continuation", "1 2 \\\n+ .", "3 "},
		{"eqv-integers", `1 1 eqv? .`, "-1 "},
		{"eqv-strings", `" a" " a" eqv? .`, "-1 "},
		{"eqv-distinct-boxes", `hole hole eqv? .`, "0 "},
		{"eqv-same-box", `hole dup eqv? .`, "-1 "},
		{"equal-lists", `( 1 2 ) ( 1 2 ) equal? .`, "-1 "},
		{"fraction-literal", `5/10 . .`, "2 1 "},
		{"number-word", `" 123" (number) . .`, "1 123 "},
		{"number-word-failure", `" nope" (number) .`, "0 "},
		{"hex-roundtrip", `" cafe" hex>B B>hex .l`, "cafe"},
		{"base64-roundtrip", `B{cafe} B>base64 base64>B B>hex .l`, "cafe"},
		{"bytes-length", `B{DEADBEEF} Blen .`, "4 "},
		{"bytes-concat", `B{ca} B{fe} B+ B>hex .l`, "cafe"},
		{"builder-roundtrip", `<b 123 16 u, b> <s 16 u@ drop .`, "123 "},
		{"builder-signed", `<b -5 8 i, b> <s 8 i@ drop .`, "-5 "},
		{"bitstring-literal", `x{cafe} <s 16 u@ drop .`, "51966 "},
		{"stack-dump", "1 2 .s", "1 2 \n"},
		{"char", `char A .`, "65 "},
		{"char-of-string", `" A" (char) .`, "65 "},
		{"bl", `bl .`, "32 "},
		{"word-rest-of-line", "0 word the rest\n.l", "the rest"},
		{"active-definition", `:: five 5 ; five .`, "5 "},
		{"active-runs-while-compiling", `:: five 5 ; { five } drop .`, "5 "},
		{"line-reading-definition", "::_ shout .l ;\nshout loud text", "loud text"},
		{"line-reading-glued-prefix", "::_ shout .l ;\nshout!", "!"},
		{"library-scope", `library Tmp : helper 42 ; helper . }Libs`, "42 "},
		{"true-false", `true . false .`, "-1 0 "},
		{"not", `0 not .`, "-1 "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustRun(t, tc.src))
		})
	}
}

// Programs that must produce identical output exercise the §-style
// algebraic stack identities without inspecting interpreter internals.
func TestStackIdentities(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b string
	}{
		{"push-drop", `1 2 3 drop .s`, `1 2 .s`},
		{"swap-swap", `1 2 swap swap .s`, `1 2 .s`},
		{"rot-rot-rot", `1 2 3 rot rot rot .s`, `1 2 3 .s`},
		{"over-rewrite", `1 2 over .s`, `1 2 2dup drop .s`},
		{"add-assoc", `1 2 + 3 + .`, `1 2 3 + + .`},
		{"add-zero", `7 0 + .`, `7 .`},
		{"quote-vs-inline", `: q 2 3 + ; ' q execute .`, `2 3 + .`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, mustRun(t, tc.a), mustRun(t, tc.b))
		})
	}
}

// A deeply self-recursive word must run in constant Go stack space; if
// the executor ever recursed per Fift-level call this would blow the
// host stack long before finishing.
func TestTailCallBounded(t *testing.T) {
	out := mustRun(t, `recursive countdown dup 0> { 1- countdown } if ; 100000 countdown .`)
	assert.Equal(t, "0 ", out)
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want error
	}{
		{"undefined-word", `frobnicate`, Undefined{}},
		{"type-mismatch", `1 car`, TypeMismatch{}},
		{"stack-underflow", `+`, StackUnderflow{}},
		{"division-by-zero", `1 0 /`, DivisionByZero{}},
		{"mod-by-zero", `1 0 mod`, DivisionByZero{}},
		{"redefine-forbidden", `: x 1 ; : x 2 ;`, RedefineForbidden{}},
		{"user-abort", `" boom" abort`, UserAbort{}},
		{"conditional-abort-taken", `1 abort" bad"`, AssertionFailure{}},
		{"unterminated-brace", `{ 1 2`, ParseError{}},
		{"stray-semicolon", `;`, ParseError{}},
		{"stray-close-brace", `}`, ParseError{}},
		{"tuple-range", `1 1 tuple 5 [] drop`, RangeError{}},
		{"ufits-negative-width", `1 -1 ufits`, RangeError{}},
		{"ufits-oversized-width", `1 2000 ufits`, RangeError{}},
		{"fits-negative-width", `1 -1 fits`, RangeError{}},
		{"store-overflow", `<b 300 8 u,`, NumericOverflowIntoFixed{}},
		{"forgotten-backtick", "forget ` `foo", Undefined{}},
		{"bye", `bye`, ByeSignal{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runFift(t, tc.src)
			require.Error(t, err)
			assert.IsType(t, tc.want, err)
		})
	}
}

func TestConditionalAbortNotTaken(t *testing.T) {
	out, err := runFift(t, `0 abort" bad" 1 .`)
	require.NoError(t, err)
	assert.Equal(t, "1 ", out)
}

func TestAbortMessage(t *testing.T) {
	_, err := runFift(t, `1 abort" workchain id must be an integer"`)
	require.Error(t, err)
	assert.Equal(t, "workchain id must be an integer", err.Error())
}

func TestForgetRestoresDictionary(t *testing.T) {
	src := `: a 1 ; : b 2 ; : c 3 ; forget c forget b forget a`
	_, err := runFift(t, src)
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c"} {
		_, err := runFift(t, src+" "+name)
		assert.IsType(t, Undefined{}, err, "word %q must be gone", name)
	}

	// The names are reusable once forgotten.
	out := mustRun(t, src+` : a 9 ; a .`)
	assert.Equal(t, "9 ", out)
}

func TestLibraryScopeConfinesHelpers(t *testing.T) {
	_, err := runFift(t, `library Tmp : helper 42 ; }Libs helper`)
	assert.IsType(t, Undefined{}, err)
}

func TestIncludeResumesCaller(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(NewSystemEnvironment(nil), &buf)
	ex.In.Include("outer.fif", strings.NewReader(`1 . 3 .`))

	// Interpret the first token, then splice in a nested source the way
	// the include builtin does; the outer source must resume afterwards.
	require.NoError(t, ex.Interpret())
	require.NoError(t, ex.Interpret())
	ex.In.Include("inner.fif", strings.NewReader(`2 .`))
	require.NoError(t, ex.RunAll())
	assert.Equal(t, "1 2 3 ", buf.String())
}

func TestIncludeWordLoadsFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "lib.fif", ": double 2 * ;")

	var buf bytes.Buffer
	ex := NewExecutor(NewSystemEnvironment([]string{dir}), &buf)
	ex.In.Include("main.fif", strings.NewReader(`" lib.fif" include 5 double .`))
	require.NoError(t, ex.RunAll())
	assert.Equal(t, "10 ", buf.String())
}

func TestIncludeMissingFile(t *testing.T) {
	_, err := runFift(t, `" no-such-file.fif" include`)
	assert.IsType(t, IoError{}, err)
}

func TestCompileModeTracksNesting(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(NewSystemEnvironment(nil), &buf)
	assert.Equal(t, Interpret, ex.Mode())
	assert.False(t, ex.Compiling())

	ex.In.Include("t", strings.NewReader(`{ 1 { 2 } execute 3 } execute . . .`))
	require.NoError(t, ex.RunAll())
	assert.False(t, ex.Compiling())
	assert.Equal(t, "3 2 1 ", buf.String())
}

func TestRecoverClearsCompileState(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(NewSystemEnvironment(nil), &buf)
	ex.In.Include("t", strings.NewReader(`: broken { 1 nonsense`))
	require.Error(t, ex.RunAll())
	require.True(t, ex.Compiling())

	ex.Recover()
	assert.False(t, ex.Compiling())
	assert.Equal(t, 0, ex.In.Depth())

	// The executor is usable again afterwards.
	ex.In.Include("t2", strings.NewReader(`1 2 + .`))
	require.NoError(t, ex.RunAll())
	assert.Equal(t, "3 ", buf.String())
}

func TestStackOverflowLimit(t *testing.T) {
	var buf bytes.Buffer
	ex := NewExecutor(NewSystemEnvironment(nil), &buf)
	ex.SetMaxDepth(8)
	ex.In.Include("t", strings.NewReader(`{ 1 } { 1 } while`))
	err := ex.RunAll()
	assert.IsType(t, StackOverflow{}, err)
}
