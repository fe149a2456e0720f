package container

import (
	"encoding/binary"
	"io"
)

// Magic is the 4-byte signature every lzip archive begins with.
var Magic = [4]byte{'L', 'z', 'i', 'p'}

// Version is the container format version this package writes.
const Version uint32 = 1

// HeaderSize is the number of bytes occupied by Magic, Version, OriginalSize
// and LengthTable combined; payload bytes start at this offset.
const HeaderSize = 4 + 4 + 8 + NumSymbols

// Header is the fixed-layout preamble of an lzip archive.
type Header struct {
	Version      uint32
	OriginalSize uint64
	LengthTable  [NumSymbols]byte
}

// WriteTo writes the header in wire format: magic, little-endian version,
// little-endian original size, then the 256-byte length table.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	var buf [HeaderSize]byte
	copy(buf[0:4], Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	binary.LittleEndian.PutUint64(buf[8:16], h.OriginalSize)
	copy(buf[16:16+NumSymbols], h.LengthTable[:])
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadHeader reads and validates an lzip header from r. The version field
// is read (to keep offsets aligned) but not checked; callers that need
// strict version enforcement should inspect Header.Version themselves.
func ReadHeader(r io.Reader) (*Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, newError(NotAnArchive, "archive shorter than the header", err)
	}
	if buf[0] != Magic[0] || buf[1] != Magic[1] || buf[2] != Magic[2] || buf[3] != Magic[3] {
		return nil, newError(NotAnArchive, "bad magic", nil)
	}

	h := &Header{
		Version:      binary.LittleEndian.Uint32(buf[4:8]),
		OriginalSize: binary.LittleEndian.Uint64(buf[8:16]),
	}
	copy(h.LengthTable[:], buf[16:16+NumSymbols])
	return h, nil
}
