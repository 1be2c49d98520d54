package fift

import (
	"fmt"
	"strings"
)

// Display renders v the way `.` and the other printing words do: the
// output must be bit-stable since library scripts diff against it.
func Display(v Value) string {
	switch x := v.(type) {
	case Null:
		return "(null)"
	case Integer:
		return x.V.String()
	case String:
		return string(x)
	case Bytes:
		return fmt.Sprintf("%X", []byte(x))
	case *Atom:
		return x.Name()
	case *Tuple:
		if len(x.Items) == 0 {
			return "[]"
		}
		parts := make([]string, len(x.Items))
		for i, it := range x.Items {
			parts[i] = Display(it)
		}
		return "[ " + strings.Join(parts, " ") + " ]"
	case *Pair:
		return "( " + displayList(x) + " )"
	case *Box:
		return "(box)"
	case *Cell:
		return fmt.Sprintf("Cell{%d bits, %d refs}", x.BitLen(), x.RefCount())
	case *Slice:
		return fmt.Sprintf("Slice{%d bits left, %d refs left}", x.BitsLeft(), x.RefsLeft())
	case *Builder:
		return fmt.Sprintf("Builder{%d bits, %d refs}", x.BitLen(), x.RefCount())
	case *WordRef:
		return "' " + x.Name
	case Continuation:
		return "(continuation)"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// displayList renders a cons-list with infix dots, e.g. ( 1 2 . 3 ) for
// an improper list and ( 1 2 3 ) for a proper one ending in Null.
func displayList(p *Pair) string {
	var sb strings.Builder
	sb.WriteString(Display(p.Head))
	cur := p.Tail
	for {
		switch t := cur.(type) {
		case Null:
			return sb.String()
		case *Pair:
			sb.WriteString(" ")
			sb.WriteString(Display(t.Head))
			cur = t.Tail
		default:
			sb.WriteString(" . ")
			sb.WriteString(Display(cur))
			return sb.String()
		}
	}
}

// TypeWord implements `type`: null prints as nothing, everything else as
// its raw bytes with no quoting or trailing marker.
func TypeWord(v Value) string {
	if _, ok := v.(Null); ok {
		return ""
	}
	return Display(v)
}
