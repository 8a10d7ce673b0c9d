package rips

// HomologyDraw computes the Hₙ basis at scale ε and returns the flat list
// of point indices making up its representative cycles, plus the Betti
// number dim Hₙ = len(basis), for an external viewer to render.
func (e *Engine) HomologyDraw(dim int, eps float64) (points []int, betti int, err error) {
	if dim < 0 || dim > DimMax-1 {
		return nil, 0, invalidDimension(dim)
	}
	zRes, err := Reduce(e, dim-1, eps)
	if err != nil {
		return nil, 0, err
	}
	bRes, err := Reduce(e, dim, eps)
	if err != nil {
		return nil, 0, err
	}
	basis, err := ExtractHomologyBasis(zRes.ZBasis, bRes.BBasis)
	if err != nil {
		return nil, 0, err
	}
	for _, lc := range basis {
		for _, key := range lc.Col.Keys() {
			points = append(points, key.Vertices()...)
		}
	}
	return points, len(basis), nil
}
