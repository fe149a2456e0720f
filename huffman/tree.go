package huffman

import "sort"

// treeNode is one node of a decode tree, stored by index (not pointer) with
// a sentinel for "no child", exactly mirroring huffNode on the build side.
type treeNode struct {
	left, right uint16
	sym         Symbol
	leaf        bool
}

// Tree is a canonical Huffman decode tree rebuilt purely from a table of
// per-symbol code lengths (see BuildTree).  Index 0 is always the root.
// Tree is walked one bit at a time (see Step), which is
// what lets the lzip container's bit decoder carry a partial tree position
// across chunk boundaries (spec §4.G).
type Tree struct {
	nodes []treeNode
}

// Empty reports whether this Tree has no symbols at all (the length table
// it was built from was all zero).
func (t *Tree) Empty() bool {
	return t == nil || len(t.nodes) == 0
}

// Step descends one bit from node (0 for the root) and reports the child
// reached, whether that child is a leaf, and if so its Symbol.
func (t *Tree) Step(node uint16, bit byte) (next uint16, leaf bool, sym Symbol) {
	n := t.nodes[node]
	if bit == 0 {
		next = n.left
	} else {
		next = n.right
	}
	child := t.nodes[next]
	return next, child.leaf, child.sym
}

// BuildTree reconstructs the canonical Huffman decode tree for an alphabet
// whose per-symbol code lengths are given by sizes (0 meaning "absent").
// This is spec §4.E's "Deserialize → canonical tree" step: the same
// canonical numbering used by the encoder (node.go's canonicalCodes) is
// recomputed here from lengths alone, and each resulting codeword is
// inserted bit by bit (most significant bit first) into an index-array
// tree with a 0xFFFF "no child" sentinel.
func BuildTree(sizes []byte) (*Tree, error) {
	numSymbols := len(sizes)

	var pairs []symLen
	for sym, size := range sizes {
		if size == 0 {
			continue
		}
		if size > maxBitsPerCode {
			return nil, errMaxCodeLenTooLarge
		}
		pairs = append(pairs, symLen{sym: Symbol(sym), length: size})
	}

	t := &Tree{}
	if len(pairs) == 0 {
		return t, nil
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].length != pairs[j].length {
			return pairs[i].length < pairs[j].length
		}
		return pairs[i].sym < pairs[j].sym
	})

	codes := make([]Code, numSymbols)
	canonicalCodes(pairs, codes)

	t.nodes = []treeNode{{left: invalidIndex, right: invalidIndex}}
	for _, p := range pairs {
		code := codes[p.sym]
		node := uint16(0)
		for i := int(code.Size) - 1; i >= 0; i-- {
			bit := (code.Bits >> uint(i)) & 1
			node = t.descend(node, byte(bit))
		}
		leaf := &t.nodes[node]
		leaf.leaf = true
		leaf.sym = p.sym
	}

	return t, nil
}

// descend follows (or creates) the child of node reached by bit, growing
// the node slice as needed.
func (t *Tree) descend(node uint16, bit byte) uint16 {
	var child *uint16
	if bit == 0 {
		child = &t.nodes[node].left
	} else {
		child = &t.nodes[node].right
	}
	if *child == invalidIndex {
		*child = uint16(len(t.nodes))
		t.nodes = append(t.nodes, treeNode{left: invalidIndex, right: invalidIndex})
	}
	return *child
}
