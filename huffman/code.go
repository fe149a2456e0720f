package huffman

import (
	"fmt"
	"strconv"
)

// MaxCodeLen is the hard ceiling on codeword length this package will ever
// produce or accept, independent of any caller-supplied cap.
const MaxCodeLen = 64

// maxBitsPerCode is the longest stored code length BuildTree accepts.
const maxBitsPerCode = MaxCodeLen

// Code represents a canonical Huffman codeword.
type Code struct {
	// Size holds the number of valid bits, 0..64.  Size == 0 means "no code
	// assigned" (the symbol is absent from the alphabet).
	Size byte

	// Bits holds the actual value of the codeword, right-aligned: the
	// codeword's most significant bit is bit (Size-1) of Bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
