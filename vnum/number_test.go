package vnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberGetSetBit(t *testing.T) {
	n := New(70)

	n.SetBit(0, Hi)
	assert.Equal(t, Hi, n.Bit(0), "bit 0 not Hi")

	n.SetBit(69, Hi)
	assert.Equal(t, Hi, n.Bit(69), "bit 69 not Hi")

	n.SetBit(35, HiZ)
	assert.Equal(t, HiZ, n.Bit(35), "bit 35 not HiZ")

	n.SetBit(13, Undefined)
	assert.Equal(t, Undefined, n.Bit(13), "bit 13 not Undefined")

	// Overwriting an x bit must clear the undef plane.
	n.SetBit(13, Lo)
	assert.Equal(t, Lo, n.Bit(13), "bit 13 not Lo")
	assert.False(t, n.IsAllDefined(), "z bit still present")

	n.SetBit(35, Hi)
	assert.True(t, n.IsAllDefined())
}

func TestNumberFromUint64(t *testing.T) {
	n := FromUint64(4, 0b1011)

	assert.Equal(t, Hi, n.Bit(0))
	assert.Equal(t, Hi, n.Bit(1))
	assert.Equal(t, Lo, n.Bit(2))
	assert.Equal(t, Hi, n.Bit(3))
	assert.Equal(t, uint64(0b1011), n.Uint64())

	// Values wider than the number are truncated.
	assert.Equal(t, uint64(0b111), FromUint64(3, 0xff).Uint64())
}

func TestNumberAnd(t *testing.T) {
	a := FromUint64(4, 0b1100)
	b := FromUint64(4, 0b1010)
	assert.Equal(t, uint64(0b1000), a.And(b).Uint64())

	// 0 dominates x; 1 & x is x.
	x := FromUint64(4, 0b0011)
	x.SetBit(0, Undefined)
	x.SetBit(2, Undefined)
	r := a.And(x) // 1100 & 0x1x
	assert.Equal(t, Lo, r.Bit(0), "0 & x must be 0")
	assert.Equal(t, Lo, r.Bit(1))
	assert.Equal(t, Undefined, r.Bit(2), "1 & x must be x")
	assert.Equal(t, Lo, r.Bit(3))
}

func TestNumberEq(t *testing.T) {
	a := FromUint64(3, 0b101)

	assert.Equal(t, Hi, a.Eq(FromUint64(3, 0b101)).Bit(0))
	assert.Equal(t, Lo, a.Eq(FromUint64(3, 0b100)).Bit(0))

	// Any x or z operand bit makes the comparison x.
	b := FromUint64(3, 0b101)
	b.SetBit(1, HiZ)
	assert.Equal(t, Undefined, a.Eq(b).Bit(0))
}

func TestNumberString(t *testing.T) {
	n := FromUint64(4, 0b0101)
	n.SetBit(2, Undefined)
	n.SetBit(3, HiZ)

	assert.Equal(t, "4'bzx01", n.String())
	assert.Equal(t, "1'b0", New(1).String())
}

func TestNumberEqual(t *testing.T) {
	a := FromUint64(2, 0b10)
	b := FromUint64(2, 0b10)
	assert.True(t, a.Equal(b))

	b.SetBit(0, Undefined)
	assert.False(t, a.Equal(b), "x bit must break exact equality")
	assert.False(t, a.Equal(FromUint64(3, 0b10)), "width must match")
}
