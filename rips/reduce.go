package rips

// LabeledColumn pairs a basis column with the simplex whose insertion
// produced it, so a homology class's cycle representative can be
// recovered without recomputing the reduction. Value is the creating
// simplex's own filtration value, carried along so the barcode driver
// can read off a birth or death scale without re-deriving it.
type LabeledColumn struct {
	Creator SimplexKey
	Col     *Column
	Value   float64
}

// ReduceResult holds the simultaneous bases a Reducer pass produces:
// Bₖ (boundaries in Cₖ) and Z_{k+1} (cycles in C_{k+1}).
type ReduceResult struct {
	BBasis []LabeledColumn
	ZBasis []LabeledColumn
}

// Reduce runs the twin-matrix pivot reduction for dimension k, streaming
// (k+1)-simplices up to scale ε in filtration order. It returns a
// labeled basis of Bₖ and one of Z_{k+1}.
//
// k = -1 is the virtual case: Bₖ is empty and every point contributes a
// trivial 0-cycle to Z₀.
func Reduce(e *Engine, k int, eps float64) (*ReduceResult, error) {
	if k < -1 || k > DimMax-1 {
		return nil, invalidDimension(k)
	}
	if k == -1 {
		return reduceVertexBasis(e)
	}

	b := newPivotStore(k, e.Points().N())
	z := make(map[SimplexKey]*Column)
	result := &ReduceResult{}

	var streamErr error
	err := e.ForEachSimplex(k+1, eps, true, func(v float64, s SimplexKey) bool {
		e.progress.Add(1)

		bound, err := boundaryOf(e, s)
		if err != nil {
			streamErr = err
			return false
		}
		zCol := singletonColumn(v, s)

		for bound.IsNonzero() {
			low, _, _ := bound.Low()
			entry, found := b.lookup(low)
			if !found {
				break
			}
			bound.XorAssign(entry.col)
			companion, ok := z[entry.creator]
			if !ok {
				streamErr = invariantViolation("missing Z companion for creator simplex")
				return false
			}
			zCol.XorAssign(companion)
		}

		if bound.IsNonzero() {
			low, _, _ := bound.Low()
			stored := bound.Clone()
			b.store(low, pivotEntry{creator: s, col: stored})
			result.BBasis = append(result.BBasis, LabeledColumn{Creator: s, Col: stored, Value: v})
			z[s] = zCol
		} else {
			result.ZBasis = append(result.ZBasis, LabeledColumn{Creator: s, Col: zCol, Value: v})
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if streamErr != nil {
		return nil, streamErr
	}

	if k == 0 {
		// ∂{i,j} = {i}+{j} starts with pivot j, so distinct edges can
		// collide on the same initial low. The B-basis itself must be
		// re-reduced to a unique-pivot form to give correct H₀ counts
		// when edges don't arrive in sorted order.
		reduced, err := reduceToUniquePivots(result.BBasis)
		if err != nil {
			return nil, err
		}
		result.BBasis = reduced
	}

	return result, nil
}

func reduceVertexBasis(e *Engine) (*ReduceResult, error) {
	result := &ReduceResult{}
	err := e.ForEachSimplex(0, 0, false, func(v float64, s SimplexKey) bool {
		result.ZBasis = append(result.ZBasis, LabeledColumn{
			Creator: s,
			Col:     singletonColumn(v, s),
			Value:   v,
		})
		return true
	})
	return result, err
}

// reduceToUniquePivots sweeps a basis, in streamed order, XOR-reducing
// each column against earlier columns that already claimed its pivot,
// until every stored column has a distinct low(). The same sweep reduces
// a Z-basis elsewhere; applied here to a B-basis it's the post-pass the
// k=0 special case requires.
func reduceToUniquePivots(basis []LabeledColumn) ([]LabeledColumn, error) {
	pivots := make(map[SimplexKey]*Column)
	out := make([]LabeledColumn, 0, len(basis))

	for _, lc := range basis {
		c := lc.Col.Clone()
		for c.IsNonzero() {
			low, _, _ := c.Low()
			other, found := pivots[low]
			if !found {
				break
			}
			c.XorAssign(other)
		}
		if !c.IsNonzero() {
			// This column was entirely absorbed by earlier ones; it
			// contributes nothing new to the basis.
			continue
		}
		low, _, _ := c.Low()
		pivots[low] = c
		out = append(out, LabeledColumn{Creator: lc.Creator, Col: c, Value: lc.Value})
	}
	return out, nil
}

func invalidDimension(k int) error {
	return invariantViolation("dimension %d out of supported range [-1,%d]", k, DimMax-1)
}
