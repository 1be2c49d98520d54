package fift

import (
	"math/big"

	"github.com/pkg/errors"
)

// Cell, Slice and Builder form the TVM data-cell family. The core only
// tracks their identity, bit/ref contents and lifetime; full BoC
// serialization, proofs and cell-level hashing are left to the cell
// assembler vocabulary, an external collaborator outside this package.
type Cell struct {
	bits    []bool
	refs    []*Cell
	special bool
}

func (*Cell) Type() string { return "cell" }

// BitLen returns the number of data bits stored in the cell.
func (c *Cell) BitLen() int { return len(c.bits) }

// RefCount returns the number of child cell references.
func (c *Cell) RefCount() int { return len(c.refs) }

func (c *Cell) Ref(i int) (*Cell, error) {
	if i < 0 || i >= len(c.refs) {
		return nil, errors.Errorf("cell has no ref %d", i)
	}
	return c.refs[i], nil
}

// Builder is a write-cursor accumulating bits and refs before being
// finalized into an immutable Cell.
type Builder struct {
	bits []bool
	refs []*Cell
}

func NewBuilder() *Builder { return &Builder{} }

func (*Builder) Type() string { return "builder" }

func (b *Builder) BitLen() int { return len(b.bits) }
func (b *Builder) RefCount() int { return len(b.refs) }

const maxCellBits = 1023
const maxCellRefs = 4

func (b *Builder) StoreBit(bit bool) error {
	if len(b.bits) >= maxCellBits {
		return errors.New("cell overflow: too many bits")
	}
	b.bits = append(b.bits, bit)
	return nil
}

// StoreUint stores v as an n-bit unsigned integer, most-significant bit
// first, failing when v does not fit that width.
func (b *Builder) StoreUint(v *big.Int, n int) error {
	if n < 0 || n > maxCellBits {
		return errors.Errorf("invalid bit width %d", n)
	}
	if v.Sign() < 0 || v.BitLen() > n {
		return NumericOverflowIntoFixed{Bits: n}
	}
	if len(b.bits)+n > maxCellBits {
		return errors.New("cell overflow: too many bits")
	}
	for i := n - 1; i >= 0; i-- {
		b.bits = append(b.bits, v.Bit(i) != 0)
	}
	return nil
}

// StoreInt stores n bits of a two's-complement signed integer.
func (b *Builder) StoreInt(v *big.Int, n int) error {
	if n <= 0 || n > maxCellBits {
		return errors.Errorf("invalid bit width %d", n)
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
	if v.Cmp(new(big.Int).Neg(bound)) < 0 || v.Cmp(bound) >= 0 {
		return NumericOverflowIntoFixed{Bits: n}
	}
	mask := new(big.Int).Lsh(big.NewInt(1), uint(n))
	mask.Sub(mask, big.NewInt(1))
	u := new(big.Int).And(v, mask)
	return b.StoreUint(u, n)
}

func (b *Builder) StoreBytes(bs []byte) error {
	if len(b.bits)+len(bs)*8 > maxCellBits {
		return errors.New("cell overflow: too many bits")
	}
	for _, by := range bs {
		for i := 7; i >= 0; i-- {
			b.bits = append(b.bits, (by>>uint(i))&1 != 0)
		}
	}
	return nil
}

func (b *Builder) StoreRef(c *Cell) error {
	if c == nil {
		return errors.New("cannot store a nil ref")
	}
	if len(b.refs) >= maxCellRefs {
		return errors.New("cell overflow: too many refs")
	}
	b.refs = append(b.refs, c)
	return nil
}

// StoreSlice appends the remainder of a slice's bits and refs.
func (b *Builder) StoreSlice(s *Slice) error {
	if len(b.bits)+len(s.cell.bits)-s.bitPos > maxCellBits {
		return errors.New("cell overflow: too many bits")
	}
	if len(b.refs)+len(s.cell.refs)-s.refPos > maxCellRefs {
		return errors.New("cell overflow: too many refs")
	}
	b.bits = append(b.bits, s.cell.bits[s.bitPos:]...)
	b.refs = append(b.refs, s.cell.refs[s.refPos:]...)
	return nil
}

// Finalize produces an immutable Cell snapshot of the builder's contents.
// The builder remains usable afterwards; the cell does not alias its slices.
func (b *Builder) Finalize() *Cell {
	bits := make([]bool, len(b.bits))
	copy(bits, b.bits)
	refs := make([]*Cell, len(b.refs))
	copy(refs, b.refs)
	return &Cell{bits: bits, refs: refs}
}

// Slice is a read-cursor over a Cell's bits and refs.
type Slice struct {
	cell   *Cell
	bitPos int
	refPos int
}

func NewSlice(c *Cell) *Slice { return &Slice{cell: c} }

func (*Slice) Type() string { return "slice" }

func (s *Slice) BitsLeft() int { return len(s.cell.bits) - s.bitPos }
func (s *Slice) RefsLeft() int { return len(s.cell.refs) - s.refPos }

func (s *Slice) Empty() bool { return s.BitsLeft() == 0 && s.RefsLeft() == 0 }

func (s *Slice) LoadUint(n int) (*big.Int, error) {
	if n < 0 || s.bitPos+n > len(s.cell.bits) {
		return nil, errors.New("slice underflow: not enough bits")
	}
	v := new(big.Int)
	for i := 0; i < n; i++ {
		v.Lsh(v, 1)
		if s.cell.bits[s.bitPos+i] {
			v.SetBit(v, 0, 1)
		}
	}
	s.bitPos += n
	return v, nil
}

func (s *Slice) LoadInt(n int) (*big.Int, error) {
	if n <= 0 {
		return nil, errors.Errorf("invalid bit width %d", n)
	}
	u, err := s.LoadUint(n)
	if err != nil {
		return nil, err
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
	if u.Cmp(bound) >= 0 {
		full := new(big.Int).Lsh(big.NewInt(1), uint(n))
		u.Sub(u, full)
	}
	return u, nil
}

func (s *Slice) LoadRef() (*Cell, error) {
	if s.refPos >= len(s.cell.refs) {
		return nil, errors.New("slice underflow: no more refs")
	}
	c := s.cell.refs[s.refPos]
	s.refPos++
	return c, nil
}

func (s *Slice) SkipBits(n int) error {
	if n < 0 || s.bitPos+n > len(s.cell.bits) {
		return errors.New("slice underflow: not enough bits")
	}
	s.bitPos += n
	return nil
}
