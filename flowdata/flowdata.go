package flowdata

import "github.com/katalvlaran/trimesh/mesh"

// Predicate decides whether to adapt the mesh at the given triangle.
// Implementations may read flow state through fd and triangle geometry
// through t, and must not mutate mesh topology.
type Predicate func(fd *FlowData, t *mesh.Tri) bool

// FlowData bundles the mesh with the adaptation predicates supplied by
// the flow solver.
type FlowData struct {
	// Mesh is the triangulation being adapted.
	Mesh *mesh.Mesh

	// RefineFn marks triangles for longest-edge bisection; refine.Refine
	// returns refine.ErrNoRefineFunc while it is nil.
	RefineFn Predicate

	// CoarsenFn marks refinement-tree families for merging;
	// coarsen.Coarsen returns coarsen.ErrNoCoarsenFunc while it is nil.
	CoarsenFn Predicate
}

// New returns a FlowData for m with no predicates attached.
// Complexity: O(1)
func New(m *mesh.Mesh) *FlowData {
	return &FlowData{Mesh: m}
}
