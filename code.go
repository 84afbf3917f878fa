package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest representable code, in bits.  A Huffman tree
// only exceeds this depth for pathologically skewed weight distributions,
// Fibonacci-like weights over more than 65 distinct symbols.
const MaxCodeSize = 64

// Code represents a sequence of bits: the root-to-leaf path of one symbol in
// the Huffman tree.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit of the path.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// AppendBit returns the Code extended by one bit.  Extending past
// MaxCodeSize would shift the leading path bits out of Bits and let distinct
// paths collide, so that is asserted rather than silently truncated.
func (hc Code) AppendBit(bit uint64) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code size %d exceeds MaxCodeSize %d", hc.Size+1, MaxCodeSize)
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | (bit & 1)}
}

// IsPrefixOf reports whether hc is a prefix of other.  A Code is considered
// a prefix of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	return hc.Bits == other.Bits>>(other.Size-hc.Size)
}

// String returns the bits of this Code as a string of '0' and '1' characters,
// first path bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

var _ fmt.Stringer = Code{}
