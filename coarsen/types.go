// Package coarsen types: Options and sentinel errors.
package coarsen

import "errors"

// Sentinel errors for coarsening operations.
var (
	// ErrNilMesh indicates the FlowData carries no mesh.
	ErrNilMesh = errors.New("coarsen: mesh is nil")

	// ErrNoCoarsenFunc indicates the FlowData carries no coarsen predicate.
	ErrNoCoarsenFunc = errors.New("coarsen: coarsening function has not been defined")

	// ErrNoMidpoint indicates a merge-marked edge has no midpoint
	// back-reference to recover its siblings from.
	ErrNoMidpoint = errors.New("coarsen: edge has no midpoint node")

	// ErrSiblingSlot indicates a sibling edge was not found among a
	// sub-triangle's slots.
	ErrSiblingSlot = errors.New("coarsen: sibling edge not found in sub-triangle")

	// ErrParentLost indicates a sub-triangle or child edge has no parent
	// to merge back into.
	ErrParentLost = errors.New("coarsen: refinement-tree parent is missing")
)

// Options configures a Coarsen call. Reserved for future policy knobs;
// construct with DefaultOptions.
type Options struct{}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{}
}
