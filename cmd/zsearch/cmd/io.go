package cmd

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
)

// readPattern reads a pattern file. One trailing line ending is dropped
// unless raw is set, since pattern files are usually written by editors.
func readPattern(path string, raw bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if raw {
		return data, nil
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	return bytes.TrimSuffix(data, []byte("\r")), nil
}

// readPatterns reads one pattern per line. Empty lines are skipped and
// counted; the final line ending does not produce an empty line. The
// returned line numbers are 1-based.
func readPatterns(path string) (patterns [][]byte, lines []int, skipped int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, 0, err
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	if len(data) == 0 {
		return nil, nil, 0, nil
	}
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			skipped++
			continue
		}
		patterns = append(patterns, line)
		lines = append(lines, i+1)
	}
	return patterns, lines, skipped, nil
}

// writeOffsets writes 1-based offsets, one per line.
func writeOffsets(w io.Writer, offsets []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 20)
	for _, off := range offsets {
		buf = strconv.AppendInt(buf[:0], int64(off+1), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// createOutput opens path for writing; "-" selects fallback.
func createOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
