// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/go-rips/rips"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ParallelComputeBarcode is the "alternative scheduler" of the concurrency
// model: instead of one reducer streaming monotonically to epsMax, it
// samples per-dimension Hₖ bases at a caller-supplied set of scales across
// the pool's workers, then aggregates each homology class's appearance
// set across those samples into an interval.
//
// Because it only observes epsValues (not a continuous sweep), a death it
// reports is bounded by the first sampled scale at which the class no
// longer appears rather than the exact scale it was killed — callers
// wanting exact boundaries use the sequential ComputeBarcode instead.
// epsValues need not be sorted; ParallelComputeBarcode sorts a copy. logger
// may be nil.
func ParallelComputeBarcode(points *rips.PointStore, epsValues []float64, dimBar int, numWorkers int, logger *slog.Logger) ([]rips.BarcodeInterval, error) {
	log := orDiscard(logger)
	sorted := append([]float64(nil), epsValues...)
	sort.Float64s(sorted)

	pool := New(points, numWorkers, log)
	defer pool.Close()

	type sample struct {
		dim   int
		idx   int
		alive map[rips.SimplexKey]float64
	}

	futures := make([]*Future[sample], 0, (dimBar+1)*len(sorted))
	for dim := 0; dim <= dimBar; dim++ {
		for idx, eps := range sorted {
			dim, idx, eps := dim, idx, eps
			log.Debug("dispatching scale", "dim", dim, "eps", eps)
			futures = append(futures, Submit(pool, func(e *rips.Engine) (sample, error) {
				alive, err := aliveClasses(e, dim, eps)
				return sample{dim: dim, idx: idx, alive: alive}, err
			}))
		}
	}

	byDim := make([][]map[rips.SimplexKey]float64, dimBar+1)
	for dim := range byDim {
		byDim[dim] = make([]map[rips.SimplexKey]float64, len(sorted))
	}
	for _, fut := range futures {
		s, err := fut.Get()
		if err != nil {
			log.Error("scale computation failed", "error", err)
			return nil, err
		}
		log.Debug("completed scale", "dim", s.dim, "eps", sorted[s.idx])
		byDim[s.dim][s.idx] = s.alive
	}

	var intervals []rips.BarcodeInterval
	for dim, perEps := range byDim {
		intervals = append(intervals, joinAppearances(dim, sorted, perEps)...)
	}
	return intervals, nil
}

// aliveClasses computes the Hₖ basis at (dim, eps) and returns the birth
// scale (in ε units) recorded against each class's pivot simplex.
func aliveClasses(e *rips.Engine, dim int, eps float64) (map[rips.SimplexKey]float64, error) {
	zRes, err := rips.Reduce(e, dim-1, eps)
	if err != nil {
		return nil, err
	}
	bRes, err := rips.Reduce(e, dim, eps)
	if err != nil {
		return nil, err
	}
	basis, err := rips.ExtractHomologyBasis(zRes.ZBasis, bRes.BBasis)
	if err != nil {
		return nil, err
	}

	out := make(map[rips.SimplexKey]float64, len(basis))
	for _, lc := range basis {
		low, _, ok := lc.Col.Low()
		if !ok {
			continue
		}
		out[low] = math.Sqrt(lc.Value) / 2
	}
	return out, nil
}

// joinAppearances walks the ascending per-eps alive sets for one dimension
// and turns each pivot's run of consecutive appearances into an interval:
// birth is the value recorded the first time it appears, death is the
// first sampled scale where it no longer does (or +Inf if it survives to
// the last sample).
func joinAppearances(dim int, eps []float64, perEps []map[rips.SimplexKey]float64) []rips.BarcodeInterval {
	birth := make(map[rips.SimplexKey]float64)
	var intervals []rips.BarcodeInterval

	for i, alive := range perEps {
		for key, v := range alive {
			if _, ok := birth[key]; !ok {
				birth[key] = v
			}
		}
		for key, b := range birth {
			if _, stillAlive := alive[key]; stillAlive {
				continue
			}
			intervals = append(intervals, rips.BarcodeInterval{Dim: dim, Birth: b, Death: eps[i]})
			delete(birth, key)
		}
	}
	for _, b := range birth {
		intervals = append(intervals, rips.BarcodeInterval{Dim: dim, Birth: b, Death: math.Inf(1)})
	}
	return intervals
}

// ParallelComputeBarcodeBounded is ParallelComputeBarcode with an explicit
// cap on simultaneously in-flight (dim, eps) computations, built directly
// on errgroup.Group and semaphore.Weighted rather than the Pool above —
// useful when the caller wants one goroutine per submission instead of a
// fixed worker count, while still bounding concurrency. logger may be nil.
func ParallelComputeBarcodeBounded(ctx context.Context, points *rips.PointStore, epsValues []float64, dimBar int, maxInFlight int64, logger *slog.Logger) ([]rips.BarcodeInterval, error) {
	log := orDiscard(logger)
	sorted := append([]float64(nil), epsValues...)
	sort.Float64s(sorted)

	sem := semaphore.NewWeighted(maxInFlight)
	g, gctx := errgroup.WithContext(ctx)

	byDim := make([][]map[rips.SimplexKey]float64, dimBar+1)
	for dim := range byDim {
		byDim[dim] = make([]map[rips.SimplexKey]float64, len(sorted))
	}

	for dim := 0; dim <= dimBar; dim++ {
		for idx, eps := range sorted {
			dim, idx, eps := dim, idx, eps
			if err := sem.Acquire(gctx, 1); err != nil {
				return nil, err
			}
			log.Debug("dispatching scale", "dim", dim, "eps", eps)
			g.Go(func() error {
				defer sem.Release(1)
				e := rips.NewEngine(points)
				alive, err := aliveClasses(e, dim, eps)
				if err != nil {
					log.Error("scale computation failed", "dim", dim, "eps", eps, "error", err)
					return err
				}
				log.Debug("completed scale", "dim", dim, "eps", eps)
				byDim[dim][idx] = alive
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var intervals []rips.BarcodeInterval
	for dim, perEps := range byDim {
		intervals = append(intervals, joinAppearances(dim, sorted, perEps)...)
	}
	return intervals, nil
}
