package rips

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Engine owns one PointStore view and the per-dimension expansion caches
// built against it. Each worker in a parallel barcode computation owns
// its own Engine; engines never share a cache across goroutines. An
// Engine is otherwise a "detected level + derived state" pair: a
// monotone high-watermark ε per dimension and the cache it has produced.
type Engine struct {
	points *PointStore

	// caches[d-1] holds every dimension-d simplex (d+1 vertices) known at
	// or below highWater[d-1]. Index 0 holds edges (dimension 1).
	caches    [DimMax]map[SimplexKey]float64
	highWater [DimMax]float64

	progress atomic.Int64
}

// NewEngine creates an engine over a shared, read-only point store.
func NewEngine(points *PointStore) *Engine {
	e := &Engine{points: points}
	for i := range e.caches {
		e.caches[i] = make(map[SimplexKey]float64)
	}
	return e
}

// Points returns the point store this engine was built over.
func (e *Engine) Points() *PointStore { return e.points }

// Progress returns the number of simplices consumed so far by reducers
// running against this engine. Safe to read from another goroutine while
// a reduction is in flight; the counter is monotone and may lag.
func (e *Engine) Progress() int64 { return e.progress.Load() }

// Find grows Cache[dim-1] so that every dim-dimensional simplex with
// filtration value ≤ 4ε² is present. It is monotone: a call with ε no
// larger than the current high-watermark is a no-op.
// dim must be in [1, DimMax].
func (e *Engine) Find(dim int, eps float64) error {
	if dim < 1 || dim > DimMax {
		return fmt.Errorf("%w: dimension %d out of range [1,%d]", ErrCapacity, dim, DimMax)
	}
	if eps <= e.highWater[dim-1] {
		return nil
	}
	threshold := 4 * eps * eps

	if dim == 1 {
		n := e.points.N()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d2 := e.points.Distance2(i, j)
				if d2 <= threshold {
					key, err := NewSimplexKey(i, j)
					if err != nil {
						return err
					}
					e.caches[0][key] = d2
				}
			}
		}
		e.highWater[0] = eps
		return nil
	}

	if err := e.Find(dim-1, eps); err != nil {
		return err
	}
	n := e.points.N()
	prev := e.caches[dim-2]
	next := e.caches[dim-1]
	for s, v := range prev {
		top := s.Highest()
		for q := top + 1; q < n; q++ {
			maxD2 := v
			s.IterateAscending(func(p int) bool {
				d2 := e.points.Distance2(p, q)
				if d2 > maxD2 {
					maxD2 = d2
				}
				return true
			})
			if maxD2 <= threshold {
				next[s.WithVertex(q)] = maxD2
			}
		}
	}
	e.highWater[dim-1] = eps
	return nil
}

// lookupFiltrationValue looks up a simplex's filtration value in
// Cache[dim-1], assuming the cache has already been grown far enough to
// contain it (callers that just built a candidate from entries already
// in that cache satisfy this automatically).
func (e *Engine) lookupFiltrationValue(dim int, s SimplexKey) (float64, bool) {
	if dim < 1 || dim > DimMax {
		return 0, false
	}
	v, ok := e.caches[dim-1][s]
	return v, ok
}

// ForEachSimplex streams every dim-dimensional simplex with filtration
// value ≤ 4ε², first growing the cache via Find. When ordered is true the
// stream is sorted ascending by (value, lexicographic vertex order) —
// the total order the reducer needs its input in; when false it walks
// the cache map directly, cheaper but in arbitrary order.
//
// dim=0 is the virtual vertex case: it yields (0, {i}) for i=0..N-1 and
// never touches a cache.
//
// yield returning false stops the walk early.
func (e *Engine) ForEachSimplex(dim int, eps float64, ordered bool, yield func(v float64, s SimplexKey) bool) error {
	if dim == 0 {
		n := e.points.N()
		for i := 0; i < n; i++ {
			key, err := NewSimplexKey(i)
			if err != nil {
				return err
			}
			if !yield(0, key) {
				return nil
			}
		}
		return nil
	}
	if err := e.Find(dim, eps); err != nil {
		return err
	}
	threshold := 4 * eps * eps
	cache := e.caches[dim-1]

	if !ordered {
		for s, v := range cache {
			if v <= threshold {
				if !yield(v, s) {
					return nil
				}
			}
		}
		return nil
	}

	type pair struct {
		v float64
		s SimplexKey
	}
	pairs := make([]pair, 0, len(cache))
	for s, v := range cache {
		if v <= threshold {
			pairs = append(pairs, pair{v, s})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].v != pairs[j].v {
			return pairs[i].v < pairs[j].v
		}
		return pairs[i].s.Compare(pairs[j].s) < 0
	})
	for _, pr := range pairs {
		if !yield(pr.v, pr.s) {
			return nil
		}
	}
	return nil
}

// DrawIndices returns, for each dim-dimensional simplex (0 ≤ dim ≤ 2)
// present at scale eps (filtration value ≤ 4ε², growing the cache first),
// its vertex indices in ascending order — the flat
// index stream an external viewer consumes for rendering.
// This produces data only; no windowing/GL code lives in this module.
func (e *Engine) DrawIndices(dim int, eps float64) ([][]int, error) {
	if dim < 0 || dim > 2 {
		return nil, fmt.Errorf("%w: draw dimension %d out of range [0,2]", ErrArgument, dim)
	}
	var out [][]int
	err := e.ForEachSimplex(dim, eps, false, func(_ float64, s SimplexKey) bool {
		out = append(out, s.Vertices())
		return true
	})
	return out, err
}
