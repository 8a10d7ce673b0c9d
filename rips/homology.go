package rips

// ExtractHomologyBasis reduces a Z-basis against a B-basis for the same
// chain group to obtain a basis of Hₖ = Zₖ/Bₖ:
//
//  1. Sweep "lows" across the Z-basis, XOR-reducing each cycle against
//     earlier ones that already claimed its pivot.
//  2. Delete, from the reduced set, every pivot also claimed by a
//     B-column (a cycle that is itself a boundary is not a homology
//     class).
//  3. What remains is a basis of Hₖ.
func ExtractHomologyBasis(zBasis, bBasis []LabeledColumn) ([]LabeledColumn, error) {
	reduced := make(map[SimplexKey]LabeledColumn)
	order := make([]SimplexKey, 0, len(zBasis))

	for _, lc := range zBasis {
		c := lc.Col.Clone()
		for c.IsNonzero() {
			low, _, _ := c.Low()
			other, found := reduced[low]
			if !found {
				break
			}
			c.XorAssign(other.Col)
		}
		if !c.IsNonzero() {
			return nil, invariantViolation("Z-basis column reduced to zero: corrupt input")
		}
		low, _, _ := c.Low()
		reduced[low] = LabeledColumn{Creator: lc.Creator, Col: c, Value: lc.Value}
		order = append(order, low)
	}

	for _, lc := range bBasis {
		low, _, ok := lc.Col.Low()
		if !ok {
			continue
		}
		delete(reduced, low)
	}

	out := make([]LabeledColumn, 0, len(reduced))
	for _, low := range order {
		if lc, ok := reduced[low]; ok {
			out = append(out, lc)
		}
	}
	return out, nil
}

// Dimension returns dim Hₖ, i.e. len(basis), for readability at call
// sites that only want the Betti number.
func Dimension(basis []LabeledColumn) int { return len(basis) }
