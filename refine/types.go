// Package refine types: Options and sentinel errors.
package refine

import "errors"

// Sentinel errors for refinement operations.
var (
	// ErrNilMesh indicates the FlowData carries no mesh.
	ErrNilMesh = errors.New("refine: mesh is nil")

	// ErrNoRefineFunc indicates the FlowData carries no refine predicate.
	ErrNoRefineFunc = errors.New("refine: refinement function has not been defined")

	// ErrNoEdges indicates a triangle scheduled for splitting has no edges.
	ErrNoEdges = errors.New("refine: triangle has no edges")

	// ErrNoAdjacentTri indicates an edge scheduled for splitting has no
	// adjacent triangle on either side.
	ErrNoAdjacentTri = errors.New("refine: edge has no adjacent triangle")

	// ErrEdgeNotInTri indicates an edge was not found at any of its
	// triangle's three slots.
	ErrEdgeNotInTri = errors.New("refine: edge not found in triangle slots")

	// ErrTriNotOnEdge indicates a triangle was not found on either side
	// of an edge.
	ErrTriNotOnEdge = errors.New("refine: triangle not found on edge sides")
)

// Options configures a Refine call.
//   - MaxAspectRatio: leaves above this longest/shortest edge ratio are
//     re-marked after a split pass.
//   - MaxPasses: number of split/re-mark rounds per call.
type Options struct {
	MaxAspectRatio float64
	MaxPasses      int
}

// DefaultOptions returns the production defaults: MaxAspectRatio 4.0,
// a single split pass.
func DefaultOptions() Options {
	return Options{
		MaxAspectRatio: 4.0,
		MaxPasses:      1,
	}
}
