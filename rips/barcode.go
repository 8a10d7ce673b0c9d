package rips

import (
	"log/slog"
	"math"

	"github.com/samber/lo"
)

// BarcodeInterval records when one homology class was born and died, in
// scale units (ε, not 2ε — the ε-ball radius convention, not raw distance).
type BarcodeInterval struct {
	Dim   int
	Birth float64
	Death float64 // +Inf for a class that never dies by εMax
}

// ComputeBarcode runs the sequential barcode driver: it computes the
// vertex Z-basis once, then for each dimension from 0 to dimBar runs the
// reducer and pairs the resulting B-basis against the previous
// dimension's (reduced) Z-basis. logger may be nil.
func ComputeBarcode(e *Engine, epsMax float64, dimBar int, logger *slog.Logger) ([]BarcodeInterval, error) {
	log := orDiscard(logger)

	log.Debug("dispatching scale", "dim", -1, "epsMax", epsMax)
	zPrev, err := Reduce(e, -1, epsMax)
	if err != nil {
		return nil, err
	}
	log.Debug("completed scale", "dim", -1, "epsMax", epsMax)
	rollingZ := zPrev.ZBasis

	var intervals []BarcodeInterval
	for k := 0; k <= dimBar; k++ {
		log.Debug("dispatching scale", "dim", k, "epsMax", epsMax)
		res, err := Reduce(e, k, epsMax)
		if err != nil {
			return nil, err
		}
		log.Debug("completed scale", "dim", k, "epsMax", epsMax)

		paired, err := pairBoundaries(log, k, rollingZ, res.BBasis)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, paired...)

		rollingZ = res.ZBasis
	}
	return intervals, nil
}

// pairBoundaries reduces zBasis (a Zₖ basis) by the same pivot-sweep
// homology extraction uses, then matches each Bₖ column to the Zₖ column
// sharing its low. A match yields one finite interval; an unmatched Zₖ
// column yields one interval with Death = +Inf.
func pairBoundaries(log *slog.Logger, dim int, zBasis, bBasis []LabeledColumn) ([]BarcodeInterval, error) {
	reduced := make(map[SimplexKey]LabeledColumn, len(zBasis))
	order := make([]SimplexKey, 0, len(zBasis))

	for _, lc := range zBasis {
		c := lc.Col.Clone()
		creator := lc
		for c.IsNonzero() {
			low, _, _ := c.Low()
			other, found := reduced[low]
			if !found {
				break
			}
			c.XorAssign(other.Col)
		}
		if !c.IsNonzero() {
			err := invariantViolation("Zₖ column reduced to zero while pairing dimension %d", dim)
			log.Error("internal invariant violated", "dim", dim, "error", err)
			return nil, err
		}
		low, _, _ := c.Low()
		reduced[low] = LabeledColumn{Creator: creator.Creator, Col: c, Value: creator.Value}
		order = append(order, low)
	}

	matched := make(map[SimplexKey]bool, len(bBasis))
	intervals := lo.FilterMap(bBasis, func(lc LabeledColumn, _ int) (BarcodeInterval, bool) {
		low, _, ok := lc.Col.Low()
		if !ok {
			return BarcodeInterval{}, false
		}
		zcol, found := reduced[low]
		if !found {
			return BarcodeInterval{}, false
		}
		matched[low] = true
		return BarcodeInterval{Dim: dim, Birth: scaleOf(zcol.Value), Death: scaleOf(lc.Value)}, true
	})

	for _, low := range order {
		if matched[low] {
			continue
		}
		zcol := reduced[low]
		intervals = append(intervals, BarcodeInterval{Dim: dim, Birth: scaleOf(zcol.Value), Death: math.Inf(1)})
	}
	return intervals, nil
}

// scaleOf converts a filtration value (a squared distance, compared
// against 4ε²) to the ε at which it enters the filtration: √v / 2.
func scaleOf(v float64) float64 { return math.Sqrt(v) / 2 }
