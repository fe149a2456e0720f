package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// DefaultMaxCodeLen is the length cap the lzip container format uses when
// the caller doesn't request anything tighter or looser.
const DefaultMaxCodeLen = 24

// Encoder implements an encoder for length-limited canonical Huffman codes.
type Encoder struct {
	codes   []Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder.  numSymbols tells Init how many Symbols
// are in this code's alphabet, and frequencies lists the occurrence count
// for each Symbol, one for each Symbol except that any Symbol not
// represented in the list is assumed to have a frequency of 0.
//
// maxCodeLen caps the length of any produced codeword and must be in
// 1..MaxCodeLen; Init returns an error otherwise.  If the tree built from
// frequencies would otherwise need longer codewords, Init reshapes the
// length distribution (preserving Kraft validity) to fit under the cap,
// and returns ErrCodeTooLong if that reshaping runs out of shorter
// codewords to lengthen (for instance when there are more present symbols
// than codewords of at most maxCodeLen bits).
func (e *Encoder) Init(numSymbols int, frequencies []uint64, maxCodeLen byte) error {
	assert.Assertf(numSymbols <= int(MaxSymbol), "numSymbols %d > MaxSymbol %d", numSymbols, int(MaxSymbol))
	assert.Assertf(numSymbols >= len(frequencies), "numSymbols %d < len(frequencies) %d", numSymbols, len(frequencies))

	if maxCodeLen == 0 || maxCodeLen > MaxCodeLen {
		return errMaxCodeLenTooLarge
	}

	codes := make([]Code, numSymbols)

	var presentCount int
	for _, freq := range frequencies {
		if freq > 0 {
			presentCount++
		}
	}

	var minSize, maxSize byte
	switch presentCount {
	case 0:
		// no codes to assign
	case 1:
		minSize, maxSize = 1, 1
		for sym, freq := range frequencies {
			if freq > 0 {
				codes[sym] = MakeCode(1, 0)
				break
			}
		}
	default:
		nodes, present, root := buildTree(frequencies)
		lengths, hist, actualMax := treeLengths(nodes, root, numSymbols)

		newActualMax := byte(actualMax)
		if actualMax > int(maxCodeLen) {
			var err error
			newActualMax, err = limitLengths(hist, maxCodeLen)
			if err != nil {
				return err
			}
		}

		rebucketByFrequency(present, hist, newActualMax, lengths)
		pairs := sortByLengthThenSymbol(present, lengths)
		canonicalCodes(pairs, codes)

		minSize, maxSize = pairs[0].length, pairs[len(pairs)-1].length
	}

	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Encode encodes a Symbol into a Huffman-coded bit string.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// MaxSymbol is the last Symbol in the code's alphabet.
//
// (The first Symbol in the code's alphabet is always 0.)
func (e Encoder) MaxSymbol() Symbol {
	return Symbol(len(e.codes)) - 1
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.  This array can be transmitted to another party and used by
// BuildTree to reconstruct this Huffman code on the receiving
// end.
func (e Encoder) SizeBySymbol() []byte {
	numSymbols := Symbol(len(e.codes))
	out := make([]byte, numSymbols)
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	numSymbols := Symbol(len(e.codes))
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = nil\n", symbol)
		} else {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
