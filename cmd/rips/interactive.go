package main

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-rips/rips"
	"github.com/go-rips/rips/ioformat"
)

// progressPollInterval is how often --progress samples the engine's
// simplex counter while caches are being built.
const progressPollInterval = 200 * time.Millisecond

// runInteractive loads the point file and reports what a windowed viewer
// would otherwise display. The viewer itself — all GL/windowing code —
// is an external collaborator out of scope here; this is the text stand-in
// that exercises the same Engine calls a viewer's draw loop would: it
// runs the reducer for every supported dimension at a scale covering the
// cloud's own diameter (growing the expansion caches on the way), so the
// simplex-consumption counter has real work for --progress to observe.
// logger may be nil.
func runInteractive(pointsFile, separator string, showProgress bool, logger *slog.Logger) error {
	logger = orDiscard(logger)

	points, err := ioformat.ReadPoints(pointsFile, separator)
	if err != nil {
		return err
	}
	logger.Info("loaded points", "n", points.N(), "d", points.D())

	engine := rips.NewEngine(points)
	fmt.Printf("loaded %d points in %d dimensions\n", points.N(), points.D())
	fmt.Println("interactive viewer is an external collaborator; this build reports engine state only")

	eps := diameter(points) / 2
	done := make(chan error, 1)
	go func() {
		var buildErr error
		for k := 0; k < rips.DimMax && buildErr == nil; k++ {
			_, buildErr = rips.Reduce(engine, k, eps)
		}
		done <- buildErr
	}()

	if showProgress {
		ticker := time.NewTicker(progressPollInterval)
		defer ticker.Stop()
		for {
			select {
			case err := <-done:
				fmt.Printf("progress: %d simplices consumed (build finished)\n", engine.Progress())
				return err
			case <-ticker.C:
				fmt.Printf("progress: %d simplices consumed so far\n", engine.Progress())
			}
		}
	}

	err = <-done
	fmt.Printf("progress: %d simplices consumed (build finished)\n", engine.Progress())
	return err
}

// diameter returns the largest pairwise distance in points, used as a
// demo-only default scale for runInteractive's cache build.
func diameter(points *rips.PointStore) float64 {
	var maxD2 float64
	for i := 0; i < points.N(); i++ {
		for j := i + 1; j < points.N(); j++ {
			if d2 := points.Distance2(i, j); d2 > maxD2 {
				maxD2 = d2
			}
		}
	}
	return math.Sqrt(maxD2)
}
