package container

import "github.com/scu-dev/Lzip/huffman"

// EncodeChunk appends the Huffman codewords for each byte of input to buf,
// treating buf as an in-progress bit-packed output buffer. prevOffset is
// the caller's persistent bit cursor: 0 means the last byte in buf (if any)
// is already fully written, 1..7 means the last byte holds that many high
// bits of real data with the remaining low bits zeroed and ready to be
// OR'd into by this call. On return, *prevOffset is updated the same way
// for whatever byte is now last in buf.
//
// Callers driving a multi-chunk encode must not flush the last byte of buf
// downstream while *prevOffset != 0 — it still has free bits waiting for
// the next chunk's codewords.
func EncodeChunk(buf []byte, input []byte, codes []huffman.Code, prevOffset *byte) []byte {
	if len(input) == 0 {
		return buf
	}

	var cursor uint64
	if len(buf) > 0 {
		if *prevOffset == 0 {
			cursor = uint64(len(buf)) << 3
		} else {
			cursor = (uint64(len(buf)-1) << 3) + uint64(*prevOffset)
		}
	}

	for _, b := range input {
		hc := codes[b]
		length := uint64(hc.Size)
		code := hc.Bits
		newCursor := cursor + length

		if cursor == 0 || (newCursor-1)>>3 > (cursor-1)>>3 {
			// Crossing (or starting at) a byte boundary.
			var bitsLeft uint64
			if cursor&7 == 0 {
				buf = append(buf, 0)
				if length > 8 {
					buf[cursor>>3] |= byte(code >> (length - 8))
					cursor += 8
					bitsLeft = length - 8
				} else {
					buf[cursor>>3] |= byte(code << (8 - length))
					cursor = newCursor
					continue
				}
			} else {
				bitsInLastByte := 8 - (cursor & 7)
				buf[cursor>>3] |= byte(code >> (length - bitsInLastByte))
				cursor += bitsInLastByte
				bitsLeft = length - bitsInLastByte
			}
			for bitsLeft >= 8 {
				buf = append(buf, byte(code>>(bitsLeft-8)))
				cursor += 8
				bitsLeft -= 8
			}
			if bitsLeft > 0 {
				buf = append(buf, byte(code<<(8-bitsLeft)))
				cursor += bitsLeft
			}
		} else {
			// Staying within the current byte.
			buf[cursor>>3] |= byte(code << (8 - length - (cursor & 7)))
			cursor = newCursor
		}
	}

	*prevOffset = byte(cursor & 7)
	return buf
}

// DecodeChunk walks data bit by bit (most significant bit first within
// each byte) against tree, starting from *currentNode, appending a decoded
// byte to out each time a leaf is reached and resetting to the root. It
// stops as soon as *writtenBytes reaches maxBytes, leaving any remaining
// bits of data — trailing padding — untouched.
//
// *currentNode and *writtenBytes persist across chunk boundaries; an
// empty tree (no symbols were present in the original input) is handled
// by the caller, since there is nothing to walk.
func DecodeChunk(data []byte, tree *huffman.Tree, out []byte, currentNode *uint16, writtenBytes *uint64, maxBytes uint64) []byte {
	totalBits := uint64(len(data)) * 8
	for i := uint64(0); i < totalBits && *writtenBytes < maxBytes; i++ {
		bitByte := data[i>>3]
		bit := byte(0)
		if bitByte&(1<<(7-(i&7))) != 0 {
			bit = 1
		}
		next, leaf, sym := tree.Step(*currentNode, bit)
		*currentNode = next
		if leaf {
			out = append(out, byte(sym))
			*writtenBytes++
			*currentNode = 0
		}
	}
	return out
}
