package kernel

import (
	"testing"

	"github.com/parahuff/parahuff/internal/planner"
)

// fixedCode gives every byte the same short code, letting tests check
// exact bit patterns without building a real Huffman tree.
type fixedCode struct {
	length int
	bits   []uint8
}

func (f fixedCode) Len(b byte) int          { return f.length }
func (f fixedCode) Bit(b byte, j int) uint8 { return f.bits[j] }

func TestRun_PacksMSBFirst(t *testing.T) {
	// Three bytes, 3-bit code "101" each: bitstream is 101 101 101,
	// grouped as 10110110 1------- -> 0xB6, 0x80 with zero padding.
	cb := fixedCode{length: 3, bits: []uint8{1, 0, 1}}
	input := []byte{0, 0, 0}
	out := Run(input, 0, 3, 0, cb)
	want := []byte{0xB6, 0x80}
	if len(out) != len(want) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %08b, want %08b", i, out[i], want[i])
		}
	}
}

func TestRun_CarryLeavesLeadingBitsZero(t *testing.T) {
	cb := fixedCode{length: 8, bits: []uint8{1, 1, 1, 1, 1, 1, 1, 1}}
	input := []byte{0}
	out := Run(input, 0, 1, 3, cb)
	// 3 leading zero bits (unwritten, left for the stitcher) then 8 ones:
	// 000 11111 111 -> 0x1F, 0xE0
	want := []byte{0x1F, 0xE0}
	if len(out) != len(want) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %08b, want %08b", i, out[i], want[i])
		}
	}
}

func TestRun_EmptyRange(t *testing.T) {
	cb := fixedCode{length: 1, bits: []uint8{0}}
	if out := Run(nil, 0, 0, 0, cb); out != nil {
		t.Fatalf("expected nil output for empty range, got %v", out)
	}
}

func TestSegments_SingleChunkNoOverflow(t *testing.T) {
	input := make([]byte, 5)
	cb := fixedCode{length: 3, bits: []uint8{1, 0, 1}}
	p := planner.Build(input, cb, 0, false)
	segs := Segments(input, p, cb)
	if len(segs) != 1 {
		t.Fatalf("len(segs) = %d, want 1", len(segs))
	}
	if segs[0].Lo != 0 || segs[0].Hi != len(input) || segs[0].Carry != 0 {
		t.Fatalf("segs[0] = %+v, want {0,%d,0}", segs[0], len(input))
	}
}

func TestSegments_OverflowSplitProducesCarry(t *testing.T) {
	// Seed the offset counter close enough to the 32-bit wrap point that
	// planner.BuildFrom restarts it partway through this tiny input,
	// without needing gigabytes of real data to walk the counter there.
	cb := fixedCode{length: 8, bits: []uint8{1, 1, 1, 1, 1, 1, 1, 1}}
	start := ^uint32(0) - planner.SafetyMargin - 20
	input := make([]byte, 4)
	p := planner.BuildFrom(input, cb, 0, true, start)
	if len(p.Overflow) == 0 {
		t.Fatalf("expected planner.BuildFrom to restart the counter, got no overflow boundaries")
	}

	segs := Segments(input, p, cb)
	if len(segs) < 2 {
		t.Fatalf("expected an overflow split to produce at least 2 segments, got %+v", segs)
	}
	if segs[0].Lo != 0 {
		t.Fatalf("first segment must start at 0, got %+v", segs[0])
	}
	boundary := p.Overflow[0]
	var split Segment
	found := false
	for _, s := range segs {
		if s.Lo == boundary.Index {
			split = s
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no segment starts at overflow boundary index %d: segs=%+v", boundary.Index, segs)
	}
	if boundary.Pad == 1 && split.Carry == 0 {
		t.Fatalf("segment at overflow boundary %+v should carry a mid-byte pad, got Carry=0", split)
	}
	last := segs[len(segs)-1]
	if last.Hi != len(input) {
		t.Fatalf("last segment end = %d, want %d", last.Hi, len(input))
	}
}

func TestSegments_ChunkSplitProducesCarry(t *testing.T) {
	input := make([]byte, 6)
	cb := fixedCode{length: 3, bits: []uint8{1, 0, 1}}
	p := planner.Build(input, cb, 9, false)
	segs := Segments(input, p, cb)
	if len(segs) < 2 {
		t.Fatalf("expected a split, got %+v", segs)
	}
	if segs[0].Lo != 0 {
		t.Fatalf("first segment must start at 0, got %+v", segs[0])
	}
	last := segs[len(segs)-1]
	if last.Hi != len(input) {
		t.Fatalf("last segment end = %d, want %d", last.Hi, len(input))
	}
	// Chunk boundaries fall at bytes 3 (raw offset 9) and 5 (raw offset
	// 1+3+3 = 7 within the second chunk), both mid-byte, so the second
	// and third segments carry 1 and 7 leading bits.
	wantCarry := []int{0, 1, 7}
	if len(segs) != len(wantCarry) {
		t.Fatalf("len(segs) = %d, want %d: %+v", len(segs), len(wantCarry), segs)
	}
	for i, w := range wantCarry {
		if segs[i].Carry != w {
			t.Fatalf("segs[%d].Carry = %d, want %d", i, segs[i].Carry, w)
		}
	}
}
