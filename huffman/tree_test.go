package huffman

import "testing"

func walk(t *Tree, code Code) (Symbol, bool) {
	node := uint16(0)
	var leaf bool
	var sym Symbol
	for i := int(code.Size) - 1; i >= 0; i-- {
		bit := byte((code.Bits >> uint(i)) & 1)
		node, leaf, sym = t.Step(node, bit)
	}
	return sym, leaf
}

func TestBuildTree_MatchesCanonicalCodes(t *testing.T) {
	sizes := []byte{4, 4, 3, 3, 3, 1}

	tree, err := BuildTree(sizes)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if tree.Empty() {
		t.Fatal("expected a non-empty tree")
	}

	var e Encoder
	if err := e.Init(len(sizes), []uint64{5, 9, 12, 13, 16, 45}, DefaultMaxCodeLen); err != nil {
		t.Fatalf("Encoder.Init failed: %v", err)
	}

	for sym := Symbol(0); sym < Symbol(len(sizes)); sym++ {
		hc := e.Encode(sym)
		gotSym, leaf := walk(tree, hc)
		if !leaf {
			t.Errorf("symbol %d: expected to land on a leaf", sym)
			continue
		}
		if gotSym != sym {
			t.Errorf("symbol %d: tree decoded to symbol %d", sym, gotSym)
		}
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree, err := BuildTree(make([]byte, 4))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !tree.Empty() {
		t.Error("expected an empty tree for an all-zero length table")
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	sizes := []byte{0, 0, 1, 0}
	tree, err := BuildTree(sizes)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	_, leaf, sym := tree.Step(0, 0)
	if !leaf || sym != 2 {
		t.Errorf("expected leaf symbol 2 on bit 0, got leaf=%v sym=%d", leaf, sym)
	}
}

func TestBuildTree_RejectsOverlongSize(t *testing.T) {
	sizes := make([]byte, 2)
	sizes[0] = maxBitsPerCode + 1
	if _, err := BuildTree(sizes); err == nil {
		t.Error("expected an error for a size past maxBitsPerCode")
	}
}
