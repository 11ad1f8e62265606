// Command phuffd decompresses a file produced by phuffc.
//
// Usage:
//
//	phuffd <input_path> <output_path>
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/parahuff/parahuff"
	"github.com/parahuff/parahuff/internal/huffman"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "phuffd: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: phuffd <input_path> <output_path>")
	}
	inputPath, outputPath := args[0], args[1]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out, err := parahuff.Decompress(data)
	if err != nil {
		if !errors.Is(err, huffman.ErrShortStream) {
			return fmt.Errorf("decompressing: %w", err)
		}
		// Truncated payload: the prefix that decoded cleanly is still
		// useful, so it is written out rather than discarded.
		fmt.Fprintf(os.Stderr, "phuffd: warning: %v\n", err)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
