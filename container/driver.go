package container

import (
	"github.com/scu-dev/Lzip/huffman"
	"github.com/scu-dev/Lzip/lzfile"
)

// Progress is called once per chunk processed, letting a caller drive a
// progress bar or log line; it may be nil.
type Progress func(chunkIndex int)

// Result reports the sizes involved in a Compress or Decompress call, for
// a caller that wants to print a compression ratio or confirm a byte count.
type Result struct {
	OriginalSize   int64
	CompressedSize int64
}

// Compress reads inputPath, builds a length-limited canonical Huffman code
// over its byte frequencies, and writes a self-describing archive to
// outputPath. It streams the input twice: once to tally frequencies, once
// to bit-pack the payload, per §4.I. chunkSize is the I/O unit; a value
// <= 0 falls back to lzfile.ChunkSize.
func Compress(inputPath, outputPath string, maxCodeLen byte, chunkSize int, onCount, onEncode Progress) (*Result, error) {
	if chunkSize <= 0 {
		chunkSize = lzfile.ChunkSize
	}

	in, err := lzfile.OpenReader(inputPath)
	if err != nil {
		return nil, newError(OpenFailed, "cannot open input file", err)
	}
	defer in.Close()

	out, err := lzfile.CreateWriter(outputPath)
	if err != nil {
		return nil, newError(OpenFailed, "cannot create output file", err)
	}
	defer out.Close()

	var freq [NumSymbols]uint64
	buf := make([]byte, chunkSize)
	for chunkIndex := 0; ; chunkIndex++ {
		n, err := in.NextChunk(buf)
		if n == 0 {
			if err != nil {
				return nil, newError(OpenFailed, "reading input", err)
			}
			break
		}
		UpdateFrequency(buf[:n], &freq)
		if onCount != nil {
			onCount(chunkIndex)
		}
	}

	encoder, err := BuildEncoder(&freq, maxCodeLen)
	if err != nil {
		return nil, err
	}

	header := &Header{
		Version:      Version,
		OriginalSize: uint64(in.Size()),
	}
	copy(header.LengthTable[:], encoder.SizeBySymbol())
	if _, err := header.WriteTo(writerFunc(out.WriteChunk)); err != nil {
		return nil, newError(OpenFailed, "writing header", err)
	}

	presentCount := 0
	for _, size := range header.LengthTable {
		if size > 0 {
			presentCount++
		}
	}

	if presentCount > 0 {
		if err := in.Reset(); err != nil {
			return nil, newError(OpenFailed, "rewinding input", err)
		}

		codes := make([]huffman.Code, NumSymbols)
		for sym := 0; sym < NumSymbols; sym++ {
			codes[sym] = encoder.Encode(huffman.Symbol(sym))
		}

		var retained []byte
		var prevOffset byte
		for chunkIndex := 0; ; chunkIndex++ {
			n, err := in.NextChunk(buf)
			if n == 0 {
				if err != nil {
					return nil, newError(OpenFailed, "reading input", err)
				}
				break
			}

			retained = EncodeChunk(retained, buf[:n], codes, &prevOffset)
			if prevOffset > 0 {
				lastByte := retained[len(retained)-1]
				complete := retained[:len(retained)-1]
				if err := out.WriteChunk(complete); err != nil {
					return nil, newError(OpenFailed, "writing payload", err)
				}
				retained = append(retained[:0], lastByte)
			} else {
				if err := out.WriteChunk(retained); err != nil {
					return nil, newError(OpenFailed, "writing payload", err)
				}
				retained = retained[:0]
			}
			if onEncode != nil {
				onEncode(chunkIndex)
			}
		}
		if len(retained) > 0 {
			if err := out.WriteChunk(retained); err != nil {
				return nil, newError(OpenFailed, "writing final byte", err)
			}
		}
	}

	return &Result{OriginalSize: in.Size(), CompressedSize: out.Size()}, nil
}

// Decompress reads an lzip archive from inputPath, reconstructs its
// canonical decode tree from the stored length table, and writes exactly
// Header.OriginalSize decoded bytes to outputPath. chunkSize is the I/O
// unit; a value <= 0 falls back to lzfile.ChunkSize.
func Decompress(inputPath, outputPath string, chunkSize int, onChunk Progress) (*Result, error) {
	if chunkSize <= 0 {
		chunkSize = lzfile.ChunkSize
	}

	in, err := lzfile.OpenReader(inputPath)
	if err != nil {
		return nil, newError(OpenFailed, "cannot open input file", err)
	}
	defer in.Close()

	if in.Size() < HeaderSize {
		return nil, newError(NotAnArchive, "file shorter than the archive header", nil)
	}

	out, err := lzfile.CreateWriter(outputPath)
	if err != nil {
		return nil, newError(OpenFailed, "cannot create output file", err)
	}
	defer out.Close()

	header, err := ReadHeader(readerFunc(func(buf []byte) (int, error) {
		return in.NextChunk(buf)
	}))
	if err != nil {
		return nil, err
	}

	tree, err := DeserializeTable(&header.LengthTable)
	if err != nil {
		return nil, err
	}

	var writtenBytes uint64
	var currentNode uint16
	if !tree.Empty() && header.OriginalSize > 0 {
		buf := make([]byte, chunkSize)
		for chunkIndex := 0; writtenBytes < header.OriginalSize; chunkIndex++ {
			n, err := in.NextChunk(buf)
			if n == 0 {
				if err != nil {
					return nil, newError(OpenFailed, "reading payload", err)
				}
				break
			}

			decoded := DecodeChunk(buf[:n], tree, nil, &currentNode, &writtenBytes, header.OriginalSize)
			if err := out.WriteChunk(decoded); err != nil {
				return nil, newError(OpenFailed, "writing output", err)
			}
			if onChunk != nil {
				onChunk(chunkIndex)
			}
		}
	}

	return &Result{OriginalSize: int64(header.OriginalSize), CompressedSize: in.Size()}, nil
}

// writerFunc adapts a WriteChunk-shaped method to io.Writer for
// Header.WriteTo.
type writerFunc func([]byte) error

func (f writerFunc) Write(p []byte) (int, error) {
	if err := f(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// readerFunc adapts a NextChunk-shaped method to io.Reader for ReadHeader,
// which needs io.ReadFull semantics (it may need several underlying reads
// to fill the fixed header size).
type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) {
	return f(p)
}
