package ioformat

import "github.com/go-rips/rips"

// FlattenIndices turns one dimension's worth of simplex vertex lists (as
// returned by Engine.DrawIndices) into the flat index stream the external
// viewer collaborator expects: every simplex's vertices concatenated in
// the order DrawIndices produced them. The viewer knows the stride from
// the dimension it asked for (dim+1 indices per simplex) so no length
// prefix is carried here.
func FlattenIndices(simplices [][]int) []int {
	var flat []int
	for _, verts := range simplices {
		flat = append(flat, verts...)
	}
	return flat
}

// HomologyDrawResult is the data contract for one Hₙ-draw request: the
// flat point-index stream of the basis's cycle representatives and the
// Betti number dim Hₙ.
type HomologyDrawResult struct {
	Points []int
	Betti  int
}

// HomologyDraw wraps Engine.HomologyDraw in the result shape ioformat's
// callers (the CLI, or a future viewer) serialize directly.
func HomologyDraw(e *rips.Engine, dim int, eps float64) (HomologyDrawResult, error) {
	points, betti, err := e.HomologyDraw(dim, eps)
	if err != nil {
		return HomologyDrawResult{}, err
	}
	return HomologyDrawResult{Points: points, Betti: betti}, nil
}
