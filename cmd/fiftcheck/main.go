// Command fiftcheck runs a battery of independent conformance scripts
// concurrently and reports any whose output diverges from what is
// expected, bounded by a wall-clock timeout. It is a development tool,
// not part of the single-threaded interpreter core: each script gets
// its own Executor instance, so concurrency here never implies shared
// mutable interpreter state.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	fift "github.com/broxus/fift"
)

type scenario struct {
	name   string
	source string
	want   string
}

var scenarios = []scenario{
	{"add-print", `2 3 + .`, "5 "},
	{"string-length", `" hello" $len .`, "5 "},
	{"define-and-call", `: sq dup * ; 7 sq .`, "49 "},
	{"quotations-cond", `1 2 < { 10 } { 20 } cond .`, "10 "},
	{"list-reverse", `( 1 2 3 ) list-reverse .l`, "( 3 2 1 )"},
	{"box-roundtrip", `hole dup 5 swap ! @ .`, "5 "},
	{"recursive-factorial", `recursive fact dup 1 > { dup 1- fact * } if ; 5 fact .`, "120 "},
	{"tuple-index", `1 2 3 3 tuple 1 [] .`, "2 "},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	results := make([]error, len(scenarios))

	for i, sc := range scenarios {
		i, sc := i, sc
		eg.Go(func() error {
			results[i] = runScenario(ctx, sc)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}

	var failed int
	for i, sc := range scenarios {
		if results[i] != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", sc.name, results[i])
		} else {
			fmt.Printf("ok   %s\n", sc.name)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runScenario(ctx context.Context, sc scenario) error {
	var buf bytes.Buffer
	env := fift.NewSystemEnvironment(nil)
	ex := fift.NewExecutor(env, &buf)
	ex.In.Include(sc.name, strings.NewReader(sc.source))

	done := make(chan error, 1)
	go func() { done <- ex.RunAll() }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return err
		}
	}

	if got := buf.String(); got != sc.want {
		return fmt.Errorf("output mismatch: got %q, want %q", got, sc.want)
	}
	return nil
}
