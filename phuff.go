// Package parahuff implements a lossless byte-stream compressor built
// on a static canonical Huffman code, whose bit-level encoding is
// carried out by a simulated massively-parallel device: a cooperative
// block of goroutine workers standing in for device threads, scheduled
// and stitched back together by the host.
package parahuff

import (
	"bytes"
	"fmt"

	"github.com/parahuff/parahuff/internal/bitio"
	"github.com/parahuff/parahuff/internal/container"
	"github.com/parahuff/parahuff/internal/device"
	"github.com/parahuff/parahuff/internal/huffman"
	"github.com/parahuff/parahuff/internal/kernel"
	"github.com/parahuff/parahuff/internal/planner"
	"github.com/parahuff/parahuff/internal/stitch"
)

// Compress encodes input into the fixed container format: a
// histogram-derived Huffman tree is built, the per-byte codes are
// offset-planned and packed by the simulated device kernels, and the
// host stitches the resulting segments back into one payload.
func Compress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		var buf bytes.Buffer
		if err := container.Write(&buf, &container.File{}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	hist := huffman.Histogram(input)
	tree := huffman.Build(hist)
	cb := huffman.BuildCodebook(tree)
	view := huffman.View{Codebook: cb}

	var totalBits uint64
	for _, b := range input {
		totalBits += uint64(cb.Len[b])
	}

	budget, err := device.Plan(len(input), huffman.ApproxCodebookBytes, totalBits, device.FreeMemory())
	if err != nil {
		return nil, fmt.Errorf("phuff: compress: %w", err)
	}
	return pack(input, hist, view, budget)
}

// pack runs the planner/kernel/stitch pipeline against an explicit
// device budget. Compress always derives budget from a real
// device.Plan call; tests in this package call pack directly with a
// small, hand-built budget to drive the chunked code path without
// depending on how much memory the machine running the test happens to
// report free.
func pack(input []byte, hist *[huffman.NumByteValues]uint32, view huffman.View, budget device.Budget) ([]byte, error) {
	memBits := uint32(0)
	if budget.Chunked {
		memBits = budget.MemoryBits
	}

	plan := planner.Build(input, view, memBits, budget.Overflow)
	segs := kernel.Segments(input, plan, view)

	outputs := make([][]byte, len(segs))
	for i, s := range segs {
		outputs[i] = kernel.Run(input, s.Lo, s.Hi, s.Carry, view)
	}
	payload := stitch.Merge(segs, outputs)

	f := &container.File{Length: uint32(len(input)), Payload: payload}
	copy(f.Freq[:], hist[:])

	var buf bytes.Buffer
	if err := container.Write(&buf, f); err != nil {
		return nil, fmt.Errorf("phuff: compress: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress: it rebuilds the same canonical tree
// from the stored frequency table and walks the packed payload bit by
// bit to recover the original bytes.
func Decompress(data []byte) ([]byte, error) {
	f, err := container.Read(data)
	if err != nil {
		return nil, fmt.Errorf("phuff: decompress: %w", err)
	}
	if f.Length == 0 {
		return []byte{}, nil
	}
	tree := huffman.Build(&f.Freq)
	r := bitio.NewReader(f.Payload)
	out, err := tree.Decode(r, int(f.Length))
	if err != nil {
		// A short stream is a corrupt-input condition, not a hard
		// failure: the caller gets back whatever prefix decoded cleanly
		// alongside the error, rather than nothing at all.
		return out, fmt.Errorf("phuff: decompress: %w", err)
	}
	return out, nil
}
