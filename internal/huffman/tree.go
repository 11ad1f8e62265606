// Package huffman builds deterministic canonical Huffman trees over
// byte-value histograms and lays out the resulting codes for fast
// parallel lookup.
//
// The tree builder is an arena: nodes live in a single growable slice
// and children are referenced by index rather than pointer, so the
// whole tree is trivially copyable and has no ownership ambiguity.
package huffman

// NumByteValues is the size of the input alphabet: one symbol per
// possible byte value.
const NumByteValues = 256

// node is a single arena slot: a leaf when left == right == -1, an
// internal node otherwise. Leaf slots occupy indices [0, L) in
// ascending byte-value order; internal nodes are appended afterward.
type node struct {
	count uint32
	value byte // valid only for leaves
	left  int32
	right int32
}

// Tree is the arena-indexed Huffman tree built from one histogram.
// It is scoped to a single compression or decompression call.
type Tree struct {
	pool []node
	root int32 // -1 for an empty (all-zero) histogram
}

// Empty reports whether the tree has no leaves (it was built from an
// all-zero histogram).
func (t *Tree) Empty() bool { return t.root < 0 }

// Build constructs a canonical Huffman tree from a 256-entry byte-value
// histogram:
//
//  1. Leaves are seeded in ascending byte-value order — this, not the
//     merge step, is what makes the build deterministic between the
//     compressor and the decompressor, since both scan the identical
//     histogram the same way.
//  2. L-1 times: stably sort the still-active window of the pool by
//     count (ties broken by existing order — an explicit insertion
//     sort), then merge the two smallest into a freshly appended
//     internal node.
func Build(histogram *[NumByteValues]uint32) *Tree {
	pool := make([]node, 0, 2*NumByteValues)
	for b := 0; b < NumByteValues; b++ {
		if histogram[b] > 0 {
			pool = append(pool, node{count: histogram[b], value: byte(b), left: -1, right: -1})
		}
	}

	t := &Tree{root: -1}
	l := len(pool)
	switch {
	case l == 0:
		t.pool = pool
		return t
	case l == 1:
		t.pool = pool
		t.root = 0
		return t
	}

	for i := 0; i < l-1; i++ {
		base := 2 * i
		end := l + i // exclusive: window of still-active nodes
		insertionSortByCount(pool[base:end])
		parent := node{
			count: pool[base].count + pool[base+1].count,
			left:  int32(base),
			right: int32(base + 1),
		}
		pool = append(pool, parent)
	}

	t.pool = pool
	t.root = int32(len(pool) - 1)
	return t
}

// insertionSortByCount stably sorts s in place by ascending count.
// This exact algorithm matters, not merely "a stable sort": ties must
// preserve the existing slot order, which a plain insertion sort
// guarantees by construction (elements are shifted only while strictly
// greater than the key being inserted).
func insertionSortByCount(s []node) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j].count > key.count {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// isLeaf reports whether the node at idx is a leaf.
func (t *Tree) isLeaf(idx int32) bool {
	return t.pool[idx].left < 0 && t.pool[idx].right < 0
}
