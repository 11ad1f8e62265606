// Package container reads and writes the on-disk format: a 4-byte
// length, a 256-entry frequency table, and the packed payload — no
// magic number, version byte, or checksum.
package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// FrequencyTableSize is the number of 4-byte counters in the header,
// one per possible byte value.
const FrequencyTableSize = 256

// HeaderSize is the fixed size in bytes of the length field plus the
// frequency table, before the packed payload begins.
const HeaderSize = 4 + FrequencyTableSize*4

// ErrTruncated is returned when fewer bytes are available than the
// header requires, or when a nonzero length is declared but no payload
// bytes follow the header.
var ErrTruncated = errors.New("phuff: truncated container")

// File is the decoded container: the original length, its per-byte
// frequency table, and the packed Huffman payload.
type File struct {
	Length  uint32
	Freq    [FrequencyTableSize]uint32
	Payload []byte
}

// Write serializes f in the fixed format: N, then 256 frequency
// counters, then the packed payload, all little-endian.
func Write(w io.Writer, f *File) error {
	var hdr [HeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], f.Length)
	for i, c := range f.Freq {
		binary.LittleEndian.PutUint32(hdr[4+i*4:4+i*4+4], c)
	}
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("phuff: writing container header: %w", err)
	}
	if _, err := w.Write(f.Payload); err != nil {
		return fmt.Errorf("phuff: writing container payload: %w", err)
	}
	return nil
}

// Read parses the fixed format from data. The payload is the remainder
// of data after the header; callers that know the packed length from
// other sources (e.g. an offset plan) may slice it further themselves.
func Read(data []byte) (*File, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: have %d bytes, need at least %d", ErrTruncated, len(data), HeaderSize)
	}
	f := &File{}
	f.Length = binary.LittleEndian.Uint32(data[0:4])
	for i := range f.Freq {
		off := 4 + i*4
		f.Freq[i] = binary.LittleEndian.Uint32(data[off : off+4])
	}
	f.Payload = data[HeaderSize:]
	if f.Length > 0 && len(f.Payload) == 0 {
		return nil, fmt.Errorf("%w: length %d declared but payload is empty", ErrTruncated, f.Length)
	}
	return f, nil
}
