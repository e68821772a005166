package mesh

import "math"

// Edge is a directed mesh edge from N[0] to N[1].
//
//	             T[0]
//
//	N[0]-----------(NC)--------->N[1]
//	       EC[0]          EC[1]
//
//	             T[1]
//
// Splitting an edge produces two collinear halves EC[0], EC[1] and up to
// two vertical edges EC[2] (right side) and EC[3] (left side); either
// vertical may be absent on a boundary edge.
type Edge struct {
	// Parent is the edge this one was bisected from, nil at level 0.
	Parent *Edge

	// EC are the child edges after a split: EC[0], EC[1] are the two
	// halves along the original line, EC[2] and EC[3] the vertical edges
	// on the right and left side respectively.
	EC [4]*Edge

	// NC is the midpoint node at which this edge was created, nil at
	// level 0. All four children of one split share the same NC.
	NC *Node

	// N are the endpoints; the edge points from N[0] to N[1].
	N [2]*Node

	// T are the adjacent triangles: T[0] left of N[0]→N[1], T[1] right.
	// A boundary edge has exactly one side set.
	T [2]*Tri

	// Bdry is the boundary this edge belongs to, nil for interior edges.
	Bdry *Bdry

	// Index is assigned by Update over the full edge store.
	Index int

	// LeafPos is the slot of this edge in Mesh.EdgeLeafs, -1 when the
	// edge is not a leaf. Coarsening clears the slot through it.
	LeafPos int

	// TreeLevel is the refinement-tree depth, 0 for ingested edges.
	TreeLevel int

	// Split schedules this edge for bisection; IsSplit marks a non-leaf.
	// Merge schedules the edge family for coarsening.
	Split   bool
	IsSplit bool
	Merge   bool
	IsLeaf  bool

	// XY is the edge centroid, Len the Euclidean length; both are
	// recomputed by SetNodes.
	XY  [2]float64
	Len float64

	// IntrNorm is the interior median-dual face normal of a leaf edge.
	IntrNorm [2]float64

	// BdryNorm holds the two outward half-normals of a boundary edge,
	// BdryNorm[0] for the N[0] half and BdryNorm[1] for the N[1] half.
	BdryNorm [2][2]float64

	bdryPos  *stackItem[Edge]
	stackPos *stackItem[Edge]
}

// NewEdge creates an empty edge and appends it to the mesh. Endpoints
// and adjacency are set afterwards through SetNodes and SetTris.
// Complexity: O(1)
func (m *Mesh) NewEdge() *Edge {
	e := &Edge{
		Index:   -1,
		LeafPos: -1,
		IsLeaf:  true,
	}
	e.stackPos = m.edges.push(e)

	return e
}

// RemoveEdge detaches e from the mesh store. Boundary membership is not
// touched; callers remove that first. Removing an edge that is not on
// the mesh panics.
// Complexity: O(1)
func (m *Mesh) RemoveEdge(e *Edge) {
	m.edges.remove(e.stackPos)
	e.stackPos = nil
}

// SetNodes assigns the endpoints and recomputes length and centroid.
func (e *Edge) SetNodes(n0, n1 *Node) {
	e.N[0] = n0
	e.N[1] = n1

	dx := n1.XY[0] - n0.XY[0]
	dy := n1.XY[1] - n0.XY[1]
	e.Len = math.Sqrt(dx*dx + dy*dy)
	e.XY[0] = 0.5 * (n0.XY[0] + n1.XY[0])
	e.XY[1] = 0.5 * (n0.XY[1] + n1.XY[1])
}

// SetTris assigns the left and right triangle slots.
func (e *Edge) SetTris(left, right *Tri) {
	e.T[0] = left
	e.T[1] = right
}

// ReplaceTri swaps old for new on whichever side references old and
// reports whether a side matched.
func (e *Edge) ReplaceTri(old, new *Tri) bool {
	for k := range e.T {
		if e.T[k] == old {
			e.T[k] = new
			return true
		}
	}

	return false
}
