package container

import (
	"errors"
	"testing"

	"github.com/scu-dev/Lzip/huffman"
)

func TestBuildEncoder_And_DeserializeTable_Agree(t *testing.T) {
	var freq [NumSymbols]uint64
	freq['a'] = 5
	freq['b'] = 2
	freq['c'] = 1

	encoder, err := BuildEncoder(&freq, huffman.DefaultMaxCodeLen)
	if err != nil {
		t.Fatalf("BuildEncoder failed: %v", err)
	}

	var lengths [NumSymbols]byte
	copy(lengths[:], encoder.SizeBySymbol())

	tree, err := DeserializeTable(&lengths)
	if err != nil {
		t.Fatalf("DeserializeTable failed: %v", err)
	}

	for _, b := range []byte{'a', 'b', 'c'} {
		code := encoder.Encode(huffman.Symbol(b))
		node := uint16(0)
		var leaf bool
		var sym huffman.Symbol
		for i := int(code.Size) - 1; i >= 0; i-- {
			bit := byte((code.Bits >> uint(i)) & 1)
			node, leaf, sym = tree.Step(node, bit)
		}
		if !leaf {
			t.Errorf("byte %q: expected to land on a leaf", b)
			continue
		}
		if sym != huffman.Symbol(b) {
			t.Errorf("byte %q: tree decoded to symbol %d", b, sym)
		}
	}
}

func TestDeserializeTable_EmptyForAllZero(t *testing.T) {
	var lengths [NumSymbols]byte
	tree, err := DeserializeTable(&lengths)
	if err != nil {
		t.Fatalf("DeserializeTable failed: %v", err)
	}
	if !tree.Empty() {
		t.Error("expected an empty tree for an all-zero length table")
	}
}

func TestBuildEncoder_RejectsBadMaxCodeLen(t *testing.T) {
	var freq [NumSymbols]uint64
	freq['a'] = 1
	freq['b'] = 1

	_, err := BuildEncoder(&freq, 0)
	if err == nil {
		t.Fatal("expected an error for maxCodeLen == 0")
	}
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != BadMaxLen {
		t.Errorf("expected Kind = BadMaxLen, got %v", err)
	}
}

func TestDeserializeTable_RejectsCorruptLengths(t *testing.T) {
	var lengths [NumSymbols]byte
	lengths['a'] = huffman.MaxCodeLen + 1

	_, err := DeserializeTable(&lengths)
	if err == nil {
		t.Fatal("expected an error for a length table entry past MaxCodeLen")
	}
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != NotAnArchive {
		t.Errorf("expected Kind = NotAnArchive for a corrupt stored length table, got %v", err)
	}
}
