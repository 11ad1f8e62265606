// Command phuffc compresses a file using the parahuff container format.
//
// Usage:
//
//	phuffc <input_path> <output_path>
package main

import (
	"fmt"
	"os"

	"github.com/parahuff/parahuff"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "phuffc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: phuffc <input_path> <output_path>")
	}
	inputPath, outputPath := args[0], args[1]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%s is empty: nothing to compress", inputPath)
	}

	out, err := parahuff.Compress(data)
	if err != nil {
		return fmt.Errorf("compressing: %w", err)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
