package fift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want string
	}{
		{"null", Nil, "(null)"},
		{"integer", NewInt(-42), "-42"},
		{"string-raw", String("héllo"), "héllo"},
		{"bytes-hex", Bytes{0xde, 0xad}, "DEAD"},
		{"atom", Intern("foo"), "foo"},
		{"empty-tuple", NewTuple(), "[]"},
		{"tuple", NewTuple(NewInt(1), NewInt(2)), "[ 1 2 ]"},
		{"proper-list", Cons(NewInt(1), Cons(NewInt(2), Nil)), "( 1 2 )"},
		{"improper-list", Cons(NewInt(1), NewInt(2)), "( 1 . 2 )"},
		{"nested-list", Cons(NewInt(1), Cons(Cons(NewInt(2), Nil), Nil)), "( 1 ( 2 ) )"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Display(tc.v))
		})
	}
}

func TestTypeWordNullPrintsNothing(t *testing.T) {
	assert.Equal(t, "", TypeWord(Nil))
	assert.Equal(t, "x", TypeWord(String("x")))
}
