package fift

import "github.com/pkg/errors"

// DictEntry records one dictionary binding: its canonical name, whether
// it is active (runs during parsing) or ordinary, and the continuation
// that implements it.
type DictEntry struct {
	Name   string
	Active bool
	Def    Continuation

	// Prefix marks a word that may match as the leading part of a longer
	// token (the B{ of B{cafe}); the interpreter hands the unmatched tail
	// back to the reader before running it.
	Prefix bool
}

// frame is one level of a nested dictionary scope. library ... }Libs
// blocks push a fresh frame; include does not push one, so an included
// file defines its words in the current frame. Scope-pop discards a frame
// without touching outer frames; forget removes the nearest binding,
// which may sit in an outer frame.
type frame struct {
	words map[string]*DictEntry
	// order records insertion order, for Names and ResolveName.
	order []string
}

func newFrame() *frame { return &frame{words: make(map[string]*DictEntry)} }

// Dictionary is the name -> word-entry table. lookup walks the frame
// stack top-down, so an inner library scope can shadow outer bindings
// without disturbing them.
type Dictionary struct {
	frames []*frame
}

func NewDictionary() *Dictionary {
	d := &Dictionary{}
	d.frames = append(d.frames, newFrame())
	return d
}

// PushScope opens a new overlay frame, as with `library NAME`.
func (d *Dictionary) PushScope() { d.frames = append(d.frames, newFrame()) }

// PopScope discards the innermost frame and all of its bindings, as with
// the closing `}Libs` of a library block.
func (d *Dictionary) PopScope() {
	if len(d.frames) > 1 {
		d.frames = d.frames[:len(d.frames)-1]
	}
}

// Lookup performs an exact-match search, walking frames from innermost
// to outermost.
func (d *Dictionary) Lookup(name string) *DictEntry {
	for i := len(d.frames) - 1; i >= 0; i-- {
		if e, ok := d.frames[i].words[name]; ok {
			return e
		}
	}
	return nil
}

// OverwritePolicy controls whether Define may replace an existing entry.
type OverwritePolicy int

const (
	// RejectExisting fails with RedefineForbidden if name is already
	// bound in the current (innermost) frame -- the behavior of plain `:`.
	RejectExisting OverwritePolicy = iota
	// AllowOverwrite replaces any existing binding for name, as
	// (create) does when asked to.
	AllowOverwrite
)

// Define installs name in the innermost frame.
func (d *Dictionary) Define(name string, active bool, def Continuation, policy OverwritePolicy) (*DictEntry, error) {
	f := d.frames[len(d.frames)-1]
	if _, exists := f.words[name]; exists && policy == RejectExisting {
		return nil, RedefineForbidden{Name: name}
	}
	e := &DictEntry{Name: name, Active: active, Def: def}
	if _, exists := f.words[name]; !exists {
		f.order = append(f.order, name)
	}
	f.words[name] = e
	return e, nil
}

// Forget removes the most recent binding for name. Shadowed bindings
// are ambiguous to resolve in general, so this walks innermost-to-outermost
// and removes the first frame that defines it (nearest-binding semantics),
// uncovering whatever binding name had before it was shadowed.
func (d *Dictionary) Forget(name string) error {
	for i := len(d.frames) - 1; i >= 0; i-- {
		f := d.frames[i]
		if _, ok := f.words[name]; ok {
			delete(f.words, name)
			for j, n := range f.order {
				if n == name {
					f.order = append(f.order[:j], f.order[j+1:]...)
					break
				}
			}
			return nil
		}
	}
	return errors.Errorf("forget: %q is not defined", name)
}

// Names lists every bound word across all frames, innermost first, used
// by the `words` diagnostic builtin.
func (d *Dictionary) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for i := len(d.frames) - 1; i >= 0; i-- {
		for _, n := range d.frames[i].order {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}

// ResolveName finds the textual name bound to a continuation. It is a
// linear scan over every frame. The `.` dump does not use it: it prints
// every continuation as (continuation).
func (d *Dictionary) ResolveName(c Continuation) (string, bool) {
	for i := len(d.frames) - 1; i >= 0; i-- {
		for _, n := range d.frames[i].order {
			if e, ok := d.frames[i].words[n]; ok && e.Def == c {
				return n, true
			}
		}
	}
	return "", false
}
