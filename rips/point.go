package rips

import "fmt"

// PointStore is an immutable, dense array of N points in ℝᴰ (D ≤ DMax).
// It is loaded once at input parse time and shared read-only across
// workers — each worker engine holds a reference to the same store rather
// than copying coordinates, the same "AoS block, shared not duplicated"
// layout convention used for loading interleaved lane data in the
// teacher's memory package.
type PointStore struct {
	n      int
	d      int
	coords [][DMax]float64
}

// NewPointStore builds a PointStore from N rows of up to D ≤ DMax
// coordinates each. Rows need not all have the same length; missing
// trailing coordinates are treated as zero, matching the point-file
// reader's padding rule.
func NewPointStore(points [][]float64) (*PointStore, error) {
	if len(points) > NMax {
		return nil, fmt.Errorf("%w: %d points exceeds NMax=%d", ErrCapacity, len(points), NMax)
	}
	maxD := 0
	for _, p := range points {
		if len(p) > maxD {
			maxD = len(p)
		}
	}
	if maxD > DMax {
		return nil, fmt.Errorf("%w: point dimension %d exceeds DMax=%d", ErrCapacity, maxD, DMax)
	}
	ps := &PointStore{n: len(points), d: maxD, coords: make([][DMax]float64, len(points))}
	for i, p := range points {
		copy(ps.coords[i][:], p)
	}
	return ps, nil
}

// N returns the number of points.
func (p *PointStore) N() int { return p.n }

// D returns the ambient dimension in use (≤ DMax); coordinates beyond D
// are zero-padding and never contribute to a distance.
func (p *PointStore) D() int { return p.d }

// At returns the coordinates of point i as a D-length slice view.
func (p *PointStore) At(i int) []float64 {
	return p.coords[i][:p.d]
}

// Distance2 returns ‖p_i − p_j‖², the squared Euclidean distance. All
// Rips-complex membership tests compare this against 4ε² (the ε-ball convention:
// edges exist when balls of radius ε intersect, i.e. pairwise distance ≤ 2ε).
func (p *PointStore) Distance2(i, j int) float64 {
	var sum float64
	a, b := p.coords[i], p.coords[j]
	for c := 0; c < p.d; c++ {
		diff := a[c] - b[c]
		sum += diff * diff
	}
	return sum
}
