package huffman

// FastBits is the number of leading code bits held in broadcast
// memory, always present regardless of code length.
const FastBits = 191

// MaxCodeLen is the largest bit length the 8-bit length field can hold.
// Tree depth cannot exceed 2L-1 <= 511 for L <= 256 distinct bytes, but
// real inputs stay far below this; 255 is the field's hard ceiling.
const MaxCodeLen = 255

// ApproxCodebookBytes is the fixed broadcast-memory footprint of a
// Codebook (Len plus the fast region; CodeTail is rare and small
// enough to ignore for the device's fixed-allocation estimate).
const ApproxCodebookBytes = NumByteValues + NumByteValues*FastBits

// Codebook is the per-byte code-length/code-sequence mapping. CodeFast
// holds the first FastBits bits as one byte-per-bit values (0/1) for
// every symbol — sized to mirror the small broadcast-memory region
// copied once per kernel launch. CodeTail holds the full bit sequence for the rare
// symbols whose code exceeds FastBits; it is a sparse map (not a fixed
// [256][255]byte array) since TailNeeded is false for the overwhelming
// majority of real inputs and a dense array would waste ~64KB per call
// for no benefit — the per-symbol semantics are unchanged.
type Codebook struct {
	Len        [NumByteValues]uint8
	CodeFast   [NumByteValues][FastBits]uint8
	CodeTail   map[byte][]uint8
	TailNeeded bool
}

// BuildCodebook performs a depth-first traversal of t, producing a
// Codebook. Descending left appends bit 0,
// descending right appends bit 1; at each leaf the accumulated path
// becomes that byte's code.
func BuildCodebook(t *Tree) *Codebook {
	cb := &Codebook{}
	if t.Empty() {
		return cb
	}
	if len(t.pool) == 1 {
		// Single-distinct-byte convention: the prefix property is vacuous
		// but decoders still need >=1 bit/symbol.
		b := t.pool[0].value
		cb.Len[b] = 1
		cb.CodeFast[b][0] = 0
		return cb
	}

	var path [MaxCodeLen]uint8
	var walk func(idx int32, depth int)
	walk = func(idx int32, depth int) {
		n := &t.pool[idx]
		if t.isLeaf(idx) {
			cb.Len[n.value] = uint8(depth)
			if depth <= FastBits {
				copy(cb.CodeFast[n.value][:depth], path[:depth])
			} else {
				copy(cb.CodeFast[n.value][:], path[:FastBits])
				tail := make([]uint8, depth)
				copy(tail, path[:depth])
				if cb.CodeTail == nil {
					cb.CodeTail = make(map[byte][]uint8)
				}
				cb.CodeTail[n.value] = tail
				cb.TailNeeded = true
			}
			return
		}
		path[depth] = 0
		walk(n.left, depth+1)
		path[depth] = 1
		walk(n.right, depth+1)
	}
	walk(t.root, 0)
	return cb
}

// Bit returns the j-th bit (0-indexed) of byte b's code, using the fast
// region when j < FastBits and the tail region otherwise. This mirrors
// the source selection the scatter phase performs per emitted bit.
func (cb *Codebook) Bit(b byte, j int) uint8 {
	if j < FastBits {
		return cb.CodeFast[b][j]
	}
	return cb.CodeTail[b][j]
}

// View adapts a Codebook to the small interfaces internal/planner and
// internal/kernel depend on, keeping those packages decoupled from this
// package's concrete types.
type View struct {
	Codebook *Codebook
}

func (v View) Len(b byte) int         { return int(v.Codebook.Len[b]) }
func (v View) Bit(b byte, j int) uint8 { return v.Codebook.Bit(b, j) }
