package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-rips/rips"
	"github.com/go-rips/rips/ioformat"
)

// runBarcode implements the batch barcode mode: compute intervals up to
// epsMaxStr for dimensions 0..dimBar and write them to outPath as CSV.
// logger may be nil.
func runBarcode(pointsFile, separator, epsMaxStr, outPath string, dimBar int, logger *slog.Logger) error {
	logger = orDiscard(logger)
	epsMax, err := strconv.ParseFloat(epsMaxStr, 64)
	if err != nil {
		return fmt.Errorf("%w: bad eps-max %q: %v", rips.ErrArgument, epsMaxStr, err)
	}
	if dimBar < 0 {
		return fmt.Errorf("%w: dim-bar must be >= 0, got %d", rips.ErrArgument, dimBar)
	}

	points, err := ioformat.ReadPoints(pointsFile, separator)
	if err != nil {
		return err
	}
	logger.Info("loaded points", "n", points.N(), "d", points.D())

	engine := rips.NewEngine(points)
	intervals, err := rips.ComputeBarcode(engine, epsMax, dimBar, logger)
	if err != nil {
		return err
	}
	logger.Info("computed barcode", "intervals", len(intervals))

	if err := ioformat.WriteBarcodeCSV(outPath, intervals); err != nil {
		return err
	}
	logger.Info("wrote barcode csv", "path", outPath)
	return nil
}
