// Package stitch implements the host-side merge step: each kernel
// segment is packed independently, so wherever a segment
// started mid-byte (Carry > 0) its first output byte and the previous
// segment's last output byte are two halves of the same physical byte
// and must be OR-merged rather than concatenated.
package stitch

import "github.com/parahuff/parahuff/internal/kernel"

// Merge concatenates segs' packed outputs into the final byte stream.
// len(outputs) must equal len(segs), each outputs[i] paired with segs[i].
func Merge(segs []kernel.Segment, outputs [][]byte) []byte {
	var out []byte
	for i, seg := range segs {
		buf := outputs[i]
		if seg.Carry > 0 && len(out) > 0 && len(buf) > 0 {
			out[len(out)-1] |= buf[0]
			buf = buf[1:]
		}
		out = append(out, buf...)
	}
	return out
}
