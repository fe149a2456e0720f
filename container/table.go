package container

import (
	"errors"

	"github.com/scu-dev/Lzip/huffman"
)

// BuildEncoder constructs a length-limited canonical Huffman encoder for the
// 256-byte alphabet from freq, capping codewords at maxCodeLen bits.
func BuildEncoder(freq *[NumSymbols]uint64, maxCodeLen byte) (*huffman.Encoder, error) {
	var e huffman.Encoder
	if err := e.Init(NumSymbols, freq[:], maxCodeLen); err != nil {
		return nil, classifyHuffmanError(err)
	}
	return &e, nil
}

// DeserializeTable reconstructs the canonical decode tree for the 256-byte
// alphabet from a stored length table. An all-zero table yields an empty
// tree (no symbols were present in the original input). Any rejection here
// means the length table itself is corrupt or was never a valid lzip
// archive, not a caller misconfiguration, so it's classified NotAnArchive
// rather than routed through the encode-only classifyHuffmanError.
func DeserializeTable(lengths *[NumSymbols]byte) (*huffman.Tree, error) {
	tree, err := huffman.BuildTree(lengths[:])
	if err != nil {
		return nil, newError(NotAnArchive, "stored length table is not a valid canonical Huffman code", err)
	}
	return tree, nil
}

// classifyHuffmanError classifies errors from the encode path (BuildEncoder),
// where ErrMaxCodeLenTooLarge reflects an invalid caller-supplied maxCodeLen
// (spec's BadMaxLen is encode-only) and anything else is a length-limiting
// failure (CodeTooLong).
func classifyHuffmanError(err error) error {
	if errors.Is(err, huffman.ErrMaxCodeLenTooLarge) {
		return newError(BadMaxLen, "max code length must be in 1..64", err)
	}
	return newError(CodeTooLong, "cannot build a Huffman code under the requested length cap", err)
}
