// Command fift is the CLI front-end: argument parsing, include-path
// wiring and the interactive loop around the core interpreter package.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	fift "github.com/broxus/fift"
	"github.com/broxus/fift/internal/flushio"
	"github.com/broxus/fift/internal/panicerr"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		skipPreamble bool
		interactive  bool
		includeFlag  string
		preamble     string
		scriptMode   bool
	)

	cmd := &cobra.Command{
		Use:                "fift [<source_files>...] [-n] [-i] [-I <includes>] [-L <lib>] [-s <script> <args...>]",
		Short:              "Run Fift source files or an interactive session",
		DisableFlagParsing: false,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	cmd.Flags().BoolVarP(&skipPreamble, "skip-preamble", "n", false, "skip loading the Fift.fif preamble")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "enter an interactive loop after processing files")
	cmd.Flags().StringVarP(&includeFlag, "include", "I", "", "colon-separated include search path, overrides FIFTPATH")
	cmd.Flags().StringVarP(&preamble, "preamble", "L", "Fift.fif", "path to the preamble file")
	cmd.Flags().BoolVarP(&scriptMode, "script", "s", false, "script mode: first arg is the script, the rest become $1 $2 ...")

	var exitCode int
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		searchPath := fift.ParseFiftPath(os.Getenv("FIFTPATH"))
		if includeFlag != "" {
			searchPath = fift.ParseFiftPath(includeFlag)
		}
		env := fift.NewSystemEnvironment(searchPath)
		wf := flushio.NewWriteFlusher(os.Stdout)
		defer wf.Flush()
		ex := fift.NewExecutor(env, wf)

		if !skipPreamble {
			if rc, _, err := env.Open(preamble); err == nil {
				ex.In.Include(preamble, rc)
				if err := ex.RunAll(); err != nil {
					wf.Flush()
					if _, isBye := err.(fift.ByeSignal); !isBye {
						reportError(env, ex, err)
						exitCode = 1
					}
					return nil
				}
				wf.Flush()
			}
		}

		if scriptMode {
			exitCode = runScript(ex, env, wf, args)
			return nil
		}

		if len(args) == 0 {
			ex.In.Include("<stdin>", os.Stdin)
			if err := ex.RunAll(); err != nil {
				wf.Flush()
				if _, isBye := err.(fift.ByeSignal); !isBye {
					reportError(env, ex, err)
					exitCode = 1
				}
				return nil
			}
			wf.Flush()
		} else {
			// Each file runs to completion before the next opens: the
			// include stack is LIFO, so queueing them all up front would
			// run them back to front.
			for _, a := range args {
				f, err := os.Open(a)
				if err != nil {
					reportError(env, ex, fift.IoError{Op: "open", Err: err})
					exitCode = 1
					return nil
				}
				ex.In.Include(a, f)
				if err := ex.RunAll(); err != nil {
					wf.Flush()
					if _, isBye := err.(fift.ByeSignal); isBye {
						return nil
					}
					reportError(env, ex, err)
					exitCode = 1
					return nil
				}
				wf.Flush()
			}
		}

		if interactive {
			exitCode = replLoop(ex, env, wf)
		}
		return nil
	}

	topErr := panicerr.Recover("fift", func() error { return cmd.Execute() })
	if topErr != nil {
		fmt.Fprintf(os.Stderr, "fift: %+v\n", topErr)
		return 1
	}
	return exitCode
}

func runScript(ex *fift.Executor, env fift.Environment, wf flushio.WriteFlusher, args []string) int {
	if len(args) == 0 {
		reportError(env, ex, fift.ParseError{Message: "-s requires a script path"})
		return 1
	}
	script := args[0]
	rc, resolved, err := env.Open(script)
	if err != nil {
		reportError(env, ex, err)
		return 1
	}
	for i, a := range args[1:] {
		ex.Dict.Define(fmt.Sprintf("$%d", i+1), false, fift.Lit(fift.String(a)), fift.AllowOverwrite)
	}
	ex.Dict.Define("$#", false, fift.Lit(fift.NewInt(int64(len(args)-1))), fift.AllowOverwrite)
	ex.In.Include(resolved, rc)
	err = ex.RunAll()
	wf.Flush()
	if err != nil {
		if _, isBye := err.(fift.ByeSignal); isBye {
			return 0
		}
		reportError(env, ex, err)
		return 1
	}
	return 0
}

// replLoop drives an interactive read-eval loop. When stdin is a real
// terminal it uses golang.org/x/term for line editing; otherwise it
// falls back to plain line-buffered reads (e.g. when piped in tests).
func replLoop(ex *fift.Executor, env fift.Environment, wf flushio.WriteFlusher) int {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err == nil {
			defer term.Restore(fd, oldState)
			t := term.NewTerminal(struct {
				io.Reader
				io.Writer
			}{os.Stdin, os.Stdout}, "Fift> ")
			for {
				line, rerr := t.ReadLine()
				if rerr != nil {
					return 0
				}
				ex.In.Include("<stdin>", newLineReader(line))
				err := ex.RunAll()
				wf.Flush()
				if err != nil {
					if _, isBye := err.(fift.ByeSignal); isBye {
						return 0
					}
					reportError(env, ex, err)
					dumpStack(env, ex)
					ex.Recover()
				}
			}
		}
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		ex.In.Include("<stdin>", newLineReader(scanner.Text()))
		err := ex.RunAll()
		wf.Flush()
		if err != nil {
			if _, isBye := err.(fift.ByeSignal); isBye {
				return 0
			}
			reportError(env, ex, err)
			dumpStack(env, ex)
			ex.Recover()
		}
	}
	return 0
}

// dumpStack prints the data stack bottom-to-top after an interactive
// abort, so the user can see what the failed line left behind.
func dumpStack(env fift.Environment, ex *fift.Executor) {
	for _, v := range ex.Stack.Items() {
		fmt.Fprintf(env.Stderr(), "%s ", fift.Display(v))
	}
	fmt.Fprintln(env.Stderr())
}

func newLineReader(s string) io.Reader {
	return &stringReaderCloser{s: s}
}

type stringReaderCloser struct {
	s   string
	pos int
}

func (r *stringReaderCloser) Read(p []byte) (int, error) {
	if r.pos >= len(r.s) {
		return 0, io.EOF
	}
	n := copy(p, r.s[r.pos:])
	r.pos += n
	return n, nil
}

// reportError writes the one-line diagnostic for an abort, prefixed
// with the failing source position when one is still open.
func reportError(env fift.Environment, ex *fift.Executor, err error) {
	if name, line := ex.In.Location(); name != "" {
		fmt.Fprintf(env.Stderr(), "%s:%d: %s\n", name, line, err.Error())
		return
	}
	fmt.Fprintf(env.Stderr(), "%s\n", err.Error())
}
