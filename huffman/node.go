package huffman

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrCodeTooLong is returned by Encoder.Init (via limitLengths) when the
// length-reduction procedure runs out of shallow leaves to push deeper, so
// the alphabet's codes cannot be fitted under the requested cap.
var ErrCodeTooLong = errors.New("huffman: cannot reduce code lengths below the requested maximum")

// ErrMaxCodeLenTooLarge is returned when the caller asks for a length cap
// outside 1..MaxCodeLen.
var ErrMaxCodeLenTooLarge = errors.New("huffman: maxCodeLen must be in 1..MaxCodeLen")

// kept as unexported aliases so the rest of this package doesn't need renaming.
var (
	errCodeTooLong        = ErrCodeTooLong
	errMaxCodeLenTooLarge = ErrMaxCodeLenTooLarge
)

const invalidIndex = 0xFFFF

// huffNode is one node of the build-time tree, stored by index rather than
// by pointer so the whole tree is one contiguous, trivially-copyable slice.
type huffNode struct {
	freq        uint64
	left, right uint16
	sym         Symbol
	leaf        bool
}

// symFreq pairs a present Symbol with its frequency; used both to seed the
// tree build and to re-bucket lengths by frequency after length-limiting.
type symFreq struct {
	sym  Symbol
	freq uint64
}

// symLen pairs a present Symbol with its final codeword length; the last
// step shared by both the encoder and the decoder-side table reconstruction
// consumes a slice of these, sorted by (length, sym) ascending.
type symLen struct {
	sym    Symbol
	length byte
}

// nodeHeap is a min-heap over indices into a []huffNode, ordered per the
// tie-break rule: lower frequency wins; on tie, leaves win over internal
// nodes; on tie, lower Symbol wins.
type nodeHeap struct {
	nodes *[]huffNode
	list  []uint16
}

func (h nodeHeap) Len() int { return len(h.list) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := (*h.nodes)[h.list[i]], (*h.nodes)[h.list[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	if a.leaf != b.leaf {
		return a.leaf
	}
	return a.sym < b.sym
}

func (h nodeHeap) Swap(i, j int) { h.list[i], h.list[j] = h.list[j], h.list[i] }

func (h *nodeHeap) Push(x interface{}) { h.list = append(h.list, x.(uint16)) }

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// buildTree constructs a weighted binary tree over every Symbol with a
// non-zero frequency.  It requires at least two present symbols; callers
// handle the 0- and 1-symbol cases themselves.
func buildTree(frequencies []uint64) (nodes []huffNode, present []symFreq, root uint16) {
	for sym, freq := range frequencies {
		if freq == 0 {
			continue
		}
		present = append(present, symFreq{sym: Symbol(sym), freq: freq})
		nodes = append(nodes, huffNode{freq: freq, left: invalidIndex, right: invalidIndex, sym: Symbol(sym), leaf: true})
	}

	h := nodeHeap{nodes: &nodes}
	h.list = make([]uint16, len(nodes))
	for i := range nodes {
		h.list[i] = uint16(i)
	}
	heap.Init(&h)

	for h.Len() > 1 {
		i1 := heap.Pop(&h).(uint16)
		i2 := heap.Pop(&h).(uint16)
		newIndex := uint16(len(nodes))
		nodes = append(nodes, huffNode{
			freq:  nodes[i1].freq + nodes[i2].freq,
			left:  i1,
			right: i2,
		})
		h.nodes = &nodes
		heap.Push(&h, newIndex)
	}

	root = h.list[0]
	return nodes, present, root
}

// stackEntry is used by treeLengths' depth-first walk.
type stackEntry struct {
	index uint16
	depth int
}

// treeLengths walks nodes depth-first from root and returns, for each
// Symbol, its codeword length (0 if absent), together with a histogram of
// how many symbols landed at each length and the greatest length seen.
func treeLengths(nodes []huffNode, root uint16, numSymbols int) (lengths []byte, hist []int, actualMax int) {
	lengths = make([]byte, numSymbols)
	stack := []stackEntry{{index: root, depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := nodes[top.index]
		if node.leaf {
			lengths[node.sym] = byte(top.depth)
			if top.depth > actualMax {
				actualMax = top.depth
			}
			continue
		}
		stack = append(stack, stackEntry{index: node.left, depth: top.depth + 1})
		stack = append(stack, stackEntry{index: node.right, depth: top.depth + 1})
	}

	hist = make([]int, actualMax+1)
	for _, l := range lengths {
		if l > 0 {
			hist[l]++
		}
	}
	return lengths, hist, actualMax
}

// limitLengths reduces hist (a length->count histogram, indexed 0..len(hist)-1)
// in place so that no length exceeds maxCodeLen, per the procedure in
// spec.md §4.C.  It returns the new greatest populated length.
func limitLengths(hist []int, maxCodeLen byte) (newActualMax byte, err error) {
	actualMax := len(hist) - 1
	if actualMax > int(maxCodeLen) {
		for l := actualMax; l > int(maxCodeLen); l-- {
			for hist[l] > 0 {
				if hist[l] < 2 {
					return 0, errCodeTooLong
				}
				hist[l] -= 2
				hist[l-1]++

				shallow := l - 2
				for shallow > 0 && hist[shallow] == 0 {
					shallow--
				}
				if shallow == 0 {
					return 0, errCodeTooLong
				}
				hist[shallow]--
				hist[shallow+1] += 2
			}
		}
		actualMax = int(maxCodeLen)
		for actualMax > 0 && hist[actualMax] == 0 {
			actualMax--
		}
	}
	return byte(actualMax), nil
}

// rebucketByFrequency reassigns each present symbol a length drawn from hist
// (a length->count histogram), spending the most frequent symbols on the
// shortest available lengths first, per spec.md §4.D step 2.  present is
// sorted in place by (frequency descending, Symbol ascending).
func rebucketByFrequency(present []symFreq, hist []int, maxLen byte, lengths []byte) {
	sort.Slice(present, func(i, j int) bool {
		a, b := present[i], present[j]
		if a.freq != b.freq {
			return a.freq > b.freq
		}
		return a.sym < b.sym
	})

	idx := 0
	for l := byte(1); l <= maxLen; l++ {
		count := 0
		if int(l) < len(hist) {
			count = hist[l]
		}
		for j := 0; j < count; j++ {
			lengths[present[idx].sym] = l
			idx++
		}
	}
}

// canonicalCodes assigns canonical codewords to pairs, which must already be
// sorted by (length ascending, Symbol ascending).  This is spec.md §4.D
// steps 3-4, shared between the encoder and the decoder-side table/tree
// reconstruction (spec.md §4.E).
func canonicalCodes(pairs []symLen, codes []Code) {
	if len(pairs) == 0 {
		return
	}
	currentLen := pairs[0].length
	var currentCode uint64
	codes[pairs[0].sym] = MakeCode(currentLen, 0)
	for i := 1; i < len(pairs); i++ {
		thisLen := pairs[i].length
		currentCode = (currentCode + 1) << (thisLen - currentLen)
		currentLen = thisLen
		codes[pairs[i].sym] = MakeCode(thisLen, currentCode)
	}
}

// sortByLengthThenSymbol sorts present (whose lengths are final) by
// (length ascending, Symbol ascending) and returns the symLen pairs ready
// for canonicalCodes.
func sortByLengthThenSymbol(present []symFreq, lengths []byte) []symLen {
	pairs := make([]symLen, len(present))
	for i, p := range present {
		pairs[i] = symLen{sym: p.sym, length: lengths[p.sym]}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].length != pairs[j].length {
			return pairs[i].length < pairs[j].length
		}
		return pairs[i].sym < pairs[j].sym
	})
	return pairs
}
