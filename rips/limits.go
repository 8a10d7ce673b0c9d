// Package rips computes the persistent homology of a finite point cloud
// under the Vietoris–Rips filtration over 𝔽₂.
//
// It follows a simple pipeline: load a point cloud, grow a per-dimension
// simplex cache up to a scale ε, reduce the resulting chain groups to
// bases of cycles and boundaries in filtration order, and pair them into
// a persistence barcode.
//
// Basic usage:
//
//	import "github.com/go-rips/rips"
//
//	pts, _ := rips.NewPointStore(points)
//	engine := rips.NewEngine(pts)
//	intervals, err := rips.ComputeBarcode(engine, epsMax, dimBar, logger)
package rips

// NMax is the maximum number of points a PointStore may hold. It bounds the
// width of a SimplexKey's bitset and is a compile-time constant: raising it
// means editing this file and rebuilding, not a runtime option.
const NMax = 1024

// DMax is the maximum ambient point dimension (coordinates per point).
const DMax = 8

// DimMax is the maximum homology dimension the engine will compute (d_max
// in the filtration). Simplices with more than DimMax+1 vertices are never
// constructed.
const DimMax = 4

// limbBits is the width of one bitset word.
const limbBits = 64

// numLimbs is the number of 64-bit words needed to hold NMax bits.
const numLimbs = (NMax + limbBits - 1) / limbBits
