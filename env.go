package fift

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Environment abstracts the host filesystem and search path so the
// interpreter core never calls os.* directly, mirroring the Environment
// trait the reference implementation uses to keep the core embeddable.
type Environment interface {
	// Open resolves name against the include search path and opens it
	// for reading, the backing call for `include`, `file>B`, the preamble
	// and the `-s` script.
	Open(name string) (io.ReadCloser, string, error)
	// Create opens name for writing, truncating it, for `B>file` output.
	Create(name string) (io.WriteCloser, error)
	// Stdout is the host's standard output. `.`, `type`, `cr` and friends
	// do not write here; they write to the Executor's Out writer.
	Stdout() io.Writer
	// Stderr is where abort messages and backtraces go.
	Stderr() io.Writer
}

// SystemEnvironment is the default Environment, backed by the real
// filesystem and a FIFTPATH-style search path list.
type SystemEnvironment struct {
	SearchPath []string
	out, errw  io.Writer
}

// NewSystemEnvironment builds an Environment searching the current
// directory first and then dirs (in order) for included files, and
// writing normal/error output to stdout/stderr.
func NewSystemEnvironment(dirs []string) *SystemEnvironment {
	return &SystemEnvironment{SearchPath: dirs, out: os.Stdout, errw: os.Stderr}
}

func (e *SystemEnvironment) Stdout() io.Writer { return e.out }
func (e *SystemEnvironment) Stderr() io.Writer { return e.errw }

func (e *SystemEnvironment) Open(name string) (io.ReadCloser, string, error) {
	if filepath.IsAbs(name) {
		f, err := os.Open(name)
		if err != nil {
			return nil, name, IoError{Op: "open", Err: err}
		}
		return f, name, nil
	}
	candidates := append([]string{"."}, e.SearchPath...)
	var lastErr error
	for _, dir := range candidates {
		p := filepath.Join(dir, name)
		f, err := os.Open(p)
		if err == nil {
			return f, p, nil
		}
		lastErr = err
	}
	return nil, name, IoError{Op: "open", Err: errors.Wrapf(lastErr, "%q not found on search path", name)}
}

func (e *SystemEnvironment) Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, IoError{Op: "create", Err: err}
	}
	return f, nil
}

// ParseFiftPath splits a FIFTPATH-style colon-separated path string,
// dropping empty components.
func ParseFiftPath(path string) []string {
	var out []string
	for _, p := range strings.Split(path, string(os.PathListSeparator)) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
