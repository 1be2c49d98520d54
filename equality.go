package fift

// Eq implements eq?: identity on atoms/boxes/cells, value-equality on
// integers and null.
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Integer:
		bv, ok := b.(Integer)
		return ok && av.V.Cmp(bv.V) == 0
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	case *Box:
		bv, ok := b.(*Box)
		return ok && av == bv
	case *Cell:
		bv, ok := b.(*Cell)
		return ok && av == bv
	default:
		return identical(a, b)
	}
}

// Eqv implements eqv?: eq? for reference types, value-equality for
// integers, strings and bytes.
func Eqv(a, b Value) bool {
	switch av := a.(type) {
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bytes:
		bv, ok := b.(Bytes)
		return ok && bytesEqual(av, bv)
	default:
		return Eq(a, b)
	}
}

// Equal implements equal?: structural deep equality over tuples and
// cons-lists, falling back to Eqv for atomic values.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && Equal(av.Head, bv.Head) && Equal(av.Tail, bv.Tail)
	default:
		return Eqv(a, b)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// identical is eq?'s fallback for every variant without a more specific
// rule (*Tuple, *Pair, *WordRef, Continuations): plain reference identity.
// Bytes is handled separately since a slice-backed Value can't go through
// Go's == without panicking.
func identical(a, b Value) bool {
	if av, ok := a.(Bytes); ok {
		bv, ok := b.(Bytes)
		return ok && bytesEqual(av, bv)
	}
	return a == b
}

// Compare orders two values that have a defined ordering: integers,
// strings and byte-strings. It returns an error for any other pair.
func Compare(a, b Value) (int, error) {
	switch av := a.(type) {
	case Integer:
		bv, ok := b.(Integer)
		if !ok {
			return 0, TypeMismatch{Expected: "integer", Got: b.Type()}
		}
		return av.V.Cmp(bv.V), nil
	case String:
		bv, ok := b.(String)
		if !ok {
			return 0, TypeMismatch{Expected: "string", Got: b.Type()}
		}
		return compareBytes([]byte(av), []byte(bv)), nil
	case Bytes:
		bv, ok := b.(Bytes)
		if !ok {
			return 0, TypeMismatch{Expected: "bytes", Got: b.Type()}
		}
		return compareBytes(av, bv), nil
	default:
		return 0, TypeMismatch{Expected: "orderable value", Got: a.Type()}
	}
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
