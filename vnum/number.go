package vnum

import (
	"fmt"
	"math/big"
	"strings"
)

// Number is a fixed-width, four-state bit vector.  Each bit of the number
// holds one of the four logic states; the states are stored across three bit
// planes: a set `undef` bit marks the bit as x, a set `hiz` bit marks it as z,
// and otherwise the bit's level is taken from `bits`.  A freshly allocated
// number has every bit 0.
type Number struct {
	width int

	bits  big.Int
	hiz   big.Int
	undef big.Int
}

// New creates a new number of the given width with all bits 0.  The width must
// be positive.
func New(width int) *Number {
	if width < 1 {
		panic(fmt.Sprintf("vnum: invalid number width %d", width))
	}

	return &Number{width: width}
}

// FromUint64 creates a new fully-defined number of the given width holding the
// low `width` bits of v.
func FromUint64(width int, v uint64) *Number {
	n := New(width)
	n.bits.SetUint64(v)

	// Truncate to width.
	var mask big.Int
	mask.Lsh(big.NewInt(1), uint(width))
	mask.Sub(&mask, big.NewInt(1))
	n.bits.And(&n.bits, &mask)

	return n
}

// Width returns the bit width of the number.
func (n *Number) Width() int {
	return n.width
}

// Bit returns the logic value of bit b (0-indexed from the least significant
// bit).
func (n *Number) Bit(b int) LogicValue {
	n.checkIndex(b)

	if n.undef.Bit(b) == 1 {
		return Undefined
	} else if n.hiz.Bit(b) == 1 {
		return HiZ
	}

	return LogicValue(n.bits.Bit(b))
}

// SetBit sets bit b of the number to the logic value v.
func (n *Number) SetBit(b int, v LogicValue) {
	n.checkIndex(b)

	n.bits.SetBit(&n.bits, b, 0)
	n.hiz.SetBit(&n.hiz, b, 0)
	n.undef.SetBit(&n.undef, b, 0)

	switch v {
	case Hi:
		n.bits.SetBit(&n.bits, b, 1)
	case HiZ:
		n.hiz.SetBit(&n.hiz, b, 1)
	case Undefined:
		n.undef.SetBit(&n.undef, b, 1)
	}
}

// Clone returns a deep copy of the number.
func (n *Number) Clone() *Number {
	c := New(n.width)
	c.bits.Set(&n.bits)
	c.hiz.Set(&n.hiz)
	c.undef.Set(&n.undef)
	return c
}

// -----------------------------------------------------------------------------

// And computes the bitwise four-state AND of two numbers of equal width.
func (n *Number) And(o *Number) *Number {
	n.checkWidth(o)

	r := New(n.width)
	for b := 0; b < n.width; b++ {
		r.SetBit(b, and(n.Bit(b), o.Bit(b)))
	}

	return r
}

// Eq computes the four-state logical equality of two numbers of equal width,
// yielding a 1-bit number.  If any bit of either operand is x or z, the result
// is x.
func (n *Number) Eq(o *Number) *Number {
	n.checkWidth(o)

	r := New(1)
	if !n.IsAllDefined() || !o.IsAllDefined() {
		r.SetBit(0, Undefined)
	} else if n.bits.Cmp(&o.bits) == 0 {
		r.SetBit(0, Hi)
	}

	return r
}

// IsAllDefined returns whether every bit of the number is a defined 0 or 1.
func (n *Number) IsAllDefined() bool {
	return n.hiz.Sign() == 0 && n.undef.Sign() == 0
}

// Uint64 returns the defined bits of the number as an unsigned integer.  Any
// x or z bits read as 0.
func (n *Number) Uint64() uint64 {
	return n.bits.Uint64()
}

// Equal returns whether two numbers have exactly the same width and the same
// logic value in every bit position.
func (n *Number) Equal(o *Number) bool {
	return n.width == o.width &&
		n.bits.Cmp(&o.bits) == 0 &&
		n.hiz.Cmp(&o.hiz) == 0 &&
		n.undef.Cmp(&o.undef) == 0
}

// String returns the number as a sized binary Verilog literal, eg. `3'b0x1`.
func (n *Number) String() string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%d'b", n.width)

	for b := n.width - 1; b >= 0; b-- {
		sb.WriteRune(n.Bit(b).Rune())
	}

	return sb.String()
}

// -----------------------------------------------------------------------------

func (n *Number) checkIndex(b int) {
	if b < 0 || b >= n.width {
		panic(fmt.Sprintf("vnum: bit index %d out of bounds for width %d", b, n.width))
	}
}

func (n *Number) checkWidth(o *Number) {
	if n.width != o.width {
		panic(fmt.Sprintf("vnum: width mismatch: %d != %d", n.width, o.width))
	}
}
