// Package ioformat holds the external interfaces the core engine never
// touches directly: the line-oriented ASCII point-file reader and the
// barcode CSV writer. Keeping them outside package rips keeps the compute
// core free of file-format concerns.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-rips/rips"
)

// DefaultSeparator is the point-file field separator used when the
// caller doesn't override it.
const DefaultSeparator = ","

// ReadPoints parses a line-oriented ASCII point file: each non-blank line
// is D floats separated by sep. Lines with fewer than D values pad with
// zero for the missing trailing coordinates. A blank line (after
// trimming surrounding whitespace) is skipped rather than treated as a
// padded all-zero point.
func ReadPoints(path string, sep string) (*rips.PointStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rips.ErrInput, err)
	}
	defer f.Close()
	return readPoints(f, sep)
}

func readPoints(r io.Reader, sep string) (*rips.PointStore, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	var rows [][]float64
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, sep)
		row := make([]float64, 0, len(fields))
		for _, field := range fields {
			x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", rips.ErrInput, lineNo, err)
			}
			row = append(row, x)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", rips.ErrInput, err)
	}

	return rips.NewPointStore(rows)
}
