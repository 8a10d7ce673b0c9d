package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-rips/rips"
)

// barcodeHeader is the CSV header row for a barcode table.
var barcodeHeader = []string{"homology dimension", "start", "end"}

// WriteBarcodeCSV writes intervals to path as a barcode table: header
// "homology dimension,start,end", one row per interval, "inf" for an
// interval that never dies. Row order follows intervals as given, which
// callers should already have sorted the way they want the file to read
// — this function performs no reordering so that running it twice on the
// same intervals is byte-identical.
func WriteBarcodeCSV(path string, intervals []rips.BarcodeInterval) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", rips.ErrInput, err)
	}
	defer f.Close()
	return EncodeBarcodeCSV(f, intervals)
}

// EncodeBarcodeCSV writes the barcode table to w using encoding/csv.
func EncodeBarcodeCSV(w io.Writer, intervals []rips.BarcodeInterval) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(barcodeHeader); err != nil {
		return err
	}
	for _, iv := range intervals {
		death := "inf"
		if !math.IsInf(iv.Death, 1) {
			death = strconv.FormatFloat(iv.Death, 'g', -1, 64)
		}
		row := []string{
			strconv.Itoa(iv.Dim),
			strconv.FormatFloat(iv.Birth, 'g', -1, 64),
			death,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
