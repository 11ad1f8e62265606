package huffman

import (
	"errors"
	"fmt"

	"github.com/parahuff/parahuff/internal/bitio"
)

// ErrShortStream is returned when the bitstream runs out before n bytes
// have been decoded.
var ErrShortStream = errors.New("phuff: bitstream ended before declared length")

// Decode walks t bit by bit from r, producing exactly n bytes.
// Descending left on bit 0 and right on bit 1 mirrors the encoding
// direction BuildCodebook assigns.
//
// If the bitstream runs out before n bytes have been produced, Decode
// returns the bytes it managed to decode together with ErrShortStream,
// rather than discarding them — the caller decides whether a truncated
// result is still worth keeping.
func (t *Tree) Decode(r *bitio.Reader, n int) ([]byte, error) {
	out := make([]byte, 0, n)
	if n == 0 {
		return out, nil
	}
	if t.Empty() {
		return nil, fmt.Errorf("phuff: cannot decode %d bytes from an empty tree", n)
	}

	single := len(t.pool) == 1
	for len(out) < n {
		if single {
			if _, ok := r.ReadBit(); !ok {
				return out, fmt.Errorf("%w: at byte %d of %d", ErrShortStream, len(out), n)
			}
			out = append(out, t.pool[0].value)
			continue
		}

		idx := t.root
		for !t.isLeaf(idx) {
			bit, ok := r.ReadBit()
			if !ok {
				return out, fmt.Errorf("%w: at byte %d of %d", ErrShortStream, len(out), n)
			}
			if bit == 0 {
				idx = t.pool[idx].left
			} else {
				idx = t.pool[idx].right
			}
		}
		out = append(out, t.pool[idx].value)
	}
	return out, nil
}
