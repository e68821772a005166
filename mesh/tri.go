package mesh

// Tri is a mesh triangle.
//
//	                 n[2]
//	                 /| \
//	                / |  \
//	     (t[1])    /  |   \    (t[0])
//	         e[2] /   |    \ e[1]
//	             /    |     \
//	            / TC0 | TC1  \
//	           /      NC      \
//	         n[0]------------->n[1]
//	                 e[0]
//
//	                (t[2])
//
// Nodes are counter-clockwise; e[i] runs from n[i] to n[(i+1)%3]; the
// neighbor t[i] sits across the edge opposite n[i], i.e. e[(i+1)%3].
type Tri struct {
	// Parent is the triangle this one was split from, nil at level 0.
	Parent *Tri

	// TC are the two children created by a split, nil on leaves.
	TC [2]*Tri

	// NC is the midpoint node at which this triangle was created; it
	// connects the triangle to all its siblings in the refinement tree.
	NC *Node

	// N are the defining nodes in CCW order.
	N [3]*Node

	// E are the defining edges; E[i] runs from N[i] to N[(i+1)%3].
	E [3]*Edge

	// ESplit is the edge scheduled to bisect this triangle.
	ESplit *Edge

	// T are the neighbor triangles; T[i] is across the edge opposite
	// N[i].
	T [3]*Tri

	// Index is assigned by Update over the full triangle store.
	Index int

	// LeafPos is the slot of this triangle in Mesh.TriLeafs, -1 when the
	// triangle is not a leaf.
	LeafPos int

	// TreeLevel is the refinement-tree depth, 0 for ingested triangles.
	TreeLevel int

	Split   bool
	Merge   bool
	IsSplit bool
	IsLeaf  bool

	// XY is the centroid and Area the signed area, recomputed by
	// SetNodes; AspectRatio = longest/shortest edge, recomputed by
	// SetEdges.
	XY          [2]float64
	Area        float64
	AspectRatio float64

	stackPos *stackItem[Tri]
}

// NewTri creates an empty triangle and appends it to the mesh. Nodes,
// edges and neighbors are set afterwards through the setters.
// Complexity: O(1)
func (m *Mesh) NewTri() *Tri {
	t := &Tri{
		Index:   -1,
		LeafPos: -1,
		IsLeaf:  true,
	}
	t.stackPos = m.tris.push(t)

	return t
}

// RemoveTri detaches t from the mesh store. Removing a triangle that is
// not on the mesh panics.
// Complexity: O(1)
func (m *Mesh) RemoveTri(t *Tri) {
	m.tris.remove(t.stackPos)
	t.stackPos = nil
}

// SetNodes assigns the defining nodes and recomputes centroid and
// signed area. CCW input yields Area > 0.
func (t *Tri) SetNodes(n0, n1, n2 *Node) {
	t.N[0] = n0
	t.N[1] = n1
	t.N[2] = n2

	t.XY[0] = (n0.XY[0] + n1.XY[0] + n2.XY[0]) / 3.0
	t.XY[1] = (n0.XY[1] + n1.XY[1] + n2.XY[1]) / 3.0
	t.Area = 0.5 * (n0.XY[0]*(n1.XY[1]-n2.XY[1]) +
		n1.XY[0]*(n2.XY[1]-n0.XY[1]) +
		n2.XY[0]*(n0.XY[1]-n1.XY[1]))
}

// SetEdges assigns the defining edges and recomputes the aspect ratio.
// The ratio is left untouched while any slot is nil.
func (t *Tri) SetEdges(e0, e1, e2 *Edge) {
	t.E[0] = e0
	t.E[1] = e1
	t.E[2] = e2

	if e0 == nil || e1 == nil || e2 == nil {
		return
	}
	minLen, maxLen := e0.Len, e0.Len
	for _, e := range t.E[1:] {
		if e.Len < minLen {
			minLen = e.Len
		}
		if e.Len > maxLen {
			maxLen = e.Len
		}
	}
	t.AspectRatio = maxLen / minLen
}

// SetTris assigns the neighbor triangles.
func (t *Tri) SetTris(t0, t1, t2 *Tri) {
	t.T[0] = t0
	t.T[1] = t1
	t.T[2] = t2
}

// EdgeSlot returns the slot of e among the triangle's edges, or -1.
func (t *Tri) EdgeSlot(e *Edge) int {
	for i, te := range t.E {
		if te == e {
			return i
		}
	}

	return -1
}

// ReplaceNeighbor swaps old for new in whichever neighbor slot
// references old and reports whether a slot matched.
func (t *Tri) ReplaceNeighbor(old, new *Tri) bool {
	for k := range t.T {
		if t.T[k] == old {
			t.T[k] = new
			return true
		}
	}

	return false
}
