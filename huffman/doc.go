// Package huffman implements length-limited canonical Huffman codes over an
// arbitrary alphabet.  Encoder builds a code from symbol frequencies,
// optionally capping codeword length; Tree reconstructs the same
// canonical code from a stored length table alone, without any codewords
// ever crossing the wire.
//
// References:
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffman
