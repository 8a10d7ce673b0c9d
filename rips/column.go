package rips

// columnEntry is one (filtration value, simplex) pair in a Column.
type columnEntry struct {
	value float64
	key   SimplexKey
}

// less orders entries by (value ascending, then lexicographic order on
// the vertex set) — the total order simplices are compared under.
func (e columnEntry) less(other columnEntry) bool {
	if e.value != other.value {
		return e.value < other.value
	}
	return e.key.Compare(other.key) < 0
}

// Column holds a sorted, duplicate-free set of (filtration value,
// simplex) pairs: an 𝔽₂ chain over same-dimension simplices. Elements
// stay in ascending filtration order; "low" is the greatest element,
// i.e. the last one, since XOR over 𝔽₂ has no notion of sign to track
// separately.
type Column struct {
	entries []columnEntry
}

// NewColumn builds a Column from filtration-value/simplex pairs. Inputs
// need not be pre-sorted.
func NewColumn(pairs ...struct {
	Value float64
	Key   SimplexKey
}) *Column {
	c := &Column{entries: make([]columnEntry, 0, len(pairs))}
	for _, pr := range pairs {
		c.insertSorted(columnEntry{value: pr.Value, key: pr.Key})
	}
	return c
}

// singletonColumn builds a one-entry Column; the common case when
// starting a reduction from a freshly streamed simplex.
func singletonColumn(value float64, key SimplexKey) *Column {
	return &Column{entries: []columnEntry{{value: value, key: key}}}
}

func (c *Column) insertSorted(e columnEntry) {
	i := 0
	for i < len(c.entries) && c.entries[i].less(e) {
		i++
	}
	c.entries = append(c.entries, columnEntry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = e
}

// XorAssign performs c ⊕= other: the symmetric difference of the two
// chains, as a single O(|c|+|other|) merge pass over the sorted entries
// that drops pairs present in both and keeps pairs present in only one.
func (c *Column) XorAssign(other *Column) {
	merged := make([]columnEntry, 0, len(c.entries)+len(other.entries))
	i, j := 0, 0
	for i < len(c.entries) && j < len(other.entries) {
		a, b := c.entries[i], other.entries[j]
		switch {
		case a.less(b):
			merged = append(merged, a)
			i++
		case b.less(a):
			merged = append(merged, b)
			j++
		default: // equal: both present, cancel
			i++
			j++
		}
	}
	merged = append(merged, c.entries[i:]...)
	merged = append(merged, other.entries[j:]...)
	c.entries = merged
}

// Clone returns an independent copy, since basis columns are appended to
// a basis and must not alias a Column still being mutated by the reducer.
func (c *Column) Clone() *Column {
	cp := &Column{entries: make([]columnEntry, len(c.entries))}
	copy(cp.entries, c.entries)
	return cp
}

// Low returns the pivot — the greatest element under the filtration
// order — and whether the column is nonzero.
func (c *Column) Low() (SimplexKey, float64, bool) {
	if len(c.entries) == 0 {
		return SimplexKey{}, 0, false
	}
	last := c.entries[len(c.entries)-1]
	return last.key, last.value, true
}

// IsNonzero reports whether the chain has any terms.
func (c *Column) IsNonzero() bool {
	return len(c.entries) > 0
}

// Contains reports whether simplex s is a term of this chain.
func (c *Column) Contains(s SimplexKey) bool {
	for _, e := range c.entries {
		if e.key.Equal(s) {
			return true
		}
	}
	return false
}

// Keys returns the simplices in this chain in ascending filtration order.
func (c *Column) Keys() []SimplexKey {
	out := make([]SimplexKey, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.key
	}
	return out
}

// Len returns the number of terms.
func (c *Column) Len() int { return len(c.entries) }

// boundaryOf computes ∂S for a k-simplex S (k = s.PopCount()-1), the sum of
// its codimension-1 faces. For k=1 (an edge), faces are its two vertices
// at filtration value 0. For k≥2, each face's filtration value is looked
// up in the engine's Cache[k-2].
func boundaryOf(e *Engine, s SimplexKey) (*Column, error) {
	topoDim := s.PopCount() - 1 // topological dimension of s
	faceDim := topoDim - 1      // topological dimension of each face
	col := &Column{}
	var faceErr error
	s.IterateAscending(func(p int) bool {
		face := s.WithoutVertex(p)
		var v float64
		if faceDim == 0 {
			v = 0 // faces of an edge are vertices, always born at 0
		} else {
			fv, ok := e.lookupFiltrationValue(faceDim, face)
			if !ok {
				faceErr = invariantViolation("face cache miss for simplex of dimension %d", faceDim)
				return false
			}
			v = fv
		}
		col.insertSorted(columnEntry{value: v, key: face})
		return true
	})
	if faceErr != nil {
		return nil, faceErr
	}
	return col, nil
}
