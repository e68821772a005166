package refine

import (
	"github.com/katalvlaran/trimesh/mesh"
)

// splitEdge bisects a marked edge e and both adjacent triangles.
//
// Construction, for the canonical left rotation (e at slot 0 of tL, so
// n0 = e.N[0], n2 = e.N[1], n3 the left apex; the other two rotations
// relabel cyclically; the right side mirrors with apex n4):
//
//	           n3
//	          / | \
//	      e3 /  |  \ e2                tL = e.T[0] (above)
//	        / L0|L1 \                  tR = e.T[1] (below)
//	       /   eV1   \
//	   n0 ---- (NC) ---- n2            eH0 = n0→NC, eH1 = NC→n2
//	       \   eV0   /
//	        \ R0|R1 /
//	      e0 \  |  / e1
//	          \ | /
//	           n4
//
// The midpoint node, the two collinear halves eH0 (n0→NC) and eH1
// (NC→n2), one vertical edge per present side, and two sub-triangles per
// present side are created; every outer edge and outer triangle that
// pointed at a parent is rewired to the matching child, and the
// refinement-tree links are attached. A boundary edge propagates its
// boundary onto both halves and the midpoint node.
//
// The rotation searches run before any entity is created: on failure the
// store is left untouched for this edge.
// Complexity: O(1)
func splitEdge(m *mesh.Mesh, e *mesh.Edge) error {
	tL, tR := e.T[0], e.T[1]
	if tL == nil && tR == nil {
		m.Diag(1, "SPLIT ABORTED: EDGE WITHOUT ADJACENT TRIANGLE")
		return ErrNoAdjacentTri
	}

	// Locate e in each adjacent triangle first; a miss aborts the split
	// before anything is constructed.
	oL, oR := -1, -1
	if tL != nil {
		if oL = tL.EdgeSlot(e); oL < 0 {
			m.Diag(1, "SPLIT ABORTED: EDGE NOT FOUND IN LEFT TRIANGLE")
			return ErrEdgeNotInTri
		}
	}
	if tR != nil {
		if oR = tR.EdgeSlot(e); oR < 0 {
			m.Diag(1, "SPLIT ABORTED: EDGE NOT FOUND IN RIGHT TRIANGLE")
			return ErrEdgeNotInTri
		}
	}

	// Midpoint node and the two collinear halves.
	n := m.NewNode(e.XY)
	eH0 := m.NewEdge()
	eH0.SetNodes(e.N[0], n)
	eH1 := m.NewEdge()
	eH1.SetNodes(n, e.N[1])

	var (
		tL0, tL1, tR0, tR1 *mesh.Tri
		eV0, eV1           *mesh.Edge
		e0, e1, e2, e3     *mesh.Edge
		t0, t1, t2, t3     *mesh.Tri
	)

	// Left side: relabel by the slot of e, build the two sub-triangles
	// and the vertical edge up to the apex.
	if tL != nil {
		n0 := tL.N[oL]
		n2 := tL.N[(oL+1)%3]
		n3 := tL.N[(oL+2)%3]
		e2 = tL.E[(oL+1)%3]
		e3 = tL.E[(oL+2)%3]
		t2 = tL.T[oL]
		t3 = tL.T[(oL+1)%3]

		eV1 = m.NewEdge()
		eV1.SetNodes(n, n3)

		tL0 = m.NewTri()
		tL0.SetNodes(n0, n, n3)
		tL0.SetEdges(eH0, eV1, e3)

		tL1 = m.NewTri()
		tL1.SetNodes(n, n2, n3)
		tL1.SetEdges(eH1, e2, eV1)
	}

	// Right side: mirrored with reversed orientation. The vertical edge
	// runs apex→midpoint so its left/right slots stay geometrically
	// exact.
	if tR != nil {
		n2 := tR.N[oR]
		n0 := tR.N[(oR+1)%3]
		n4 := tR.N[(oR+2)%3]
		e0 = tR.E[(oR+1)%3]
		e1 = tR.E[(oR+2)%3]
		t0 = tR.T[oR]
		t1 = tR.T[(oR+1)%3]

		eV0 = m.NewEdge()
		eV0.SetNodes(n4, n)

		tR0 = m.NewTri()
		tR0.SetNodes(n0, n4, n)
		tR0.SetEdges(e0, eV0, eH0)

		tR1 = m.NewTri()
		tR1.SetNodes(n, n4, n2)
		tR1.SetEdges(eV0, e1, eH1)
	}

	// Edge→triangle wiring inside the pair.
	eH0.SetTris(tL0, tR0)
	eH1.SetTris(tL1, tR1)
	if eV1 != nil {
		eV1.SetTris(tL0, tL1)
	}
	if eV0 != nil {
		eV0.SetTris(tR0, tR1)
	}

	// Neighbor slots of the sub-triangles.
	if tL != nil {
		tL0.SetTris(tL1, t3, tR0)
		tL1.SetTris(t2, tL0, tR1)
	}
	if tR != nil {
		tR0.SetTris(tR1, tL0, t0)
		tR1.SetTris(t1, tL1, tR0)
	}

	// Outer reciprocity: edges and triangles that pointed at a parent
	// now point at the adjacent child.
	if err := replaceEdgeTri(e3, tL, tL0); err != nil {
		return err
	}
	if err := replaceEdgeTri(e2, tL, tL1); err != nil {
		return err
	}
	if err := replaceEdgeTri(e0, tR, tR0); err != nil {
		return err
	}
	if err := replaceEdgeTri(e1, tR, tR1); err != nil {
		return err
	}
	replaceTriTri(t3, tL, tL0)
	replaceTriTri(t2, tL, tL1)
	replaceTriTri(t0, tR, tR0)
	replaceTriTri(t1, tR, tR1)

	// Refinement-tree links: triangles.
	if tL != nil {
		attachTriChildren(tL, tL0, tL1, n)
	}
	if tR != nil {
		attachTriChildren(tR, tR0, tR1, n)
	}

	// Refinement-tree links: the edge and its four children.
	e.EC = [4]*mesh.Edge{eH0, eH1, eV0, eV1}
	e.IsSplit = true
	e.Split = false
	e.IsLeaf = false
	for _, c := range e.EC {
		if c == nil {
			continue
		}
		c.Parent = e
		c.TreeLevel = e.TreeLevel + 1
		c.NC = n
	}

	// Midpoint sibling links used by coarsening.
	n.EC = [4]*mesh.Edge{eH0, eV0, eH1, eV1}
	n.TC = [4]*mesh.Tri{tR0, tR1, tL1, tL0}

	// A boundary edge hands its boundary to both halves; the midpoint
	// becomes a boundary node on both slots.
	if b := e.Bdry; b != nil {
		b.AddEdge(eH0)
		b.AddEdge(eH1)
		if err := b.AddNode(n, 0); err != nil {
			return err
		}
		if err := b.AddNode(n, 1); err != nil {
			return err
		}
	}

	m.Diag(2, "EDGE %d SPLIT AT (%.5f,%.5f)", e.Index, n.XY[0], n.XY[1])

	return nil
}

// attachTriChildren links both sub-triangles of parent into the
// refinement tree and records the midpoint that created them.
func attachTriChildren(parent, c0, c1 *mesh.Tri, n *mesh.Node) {
	parent.TC = [2]*mesh.Tri{c0, c1}
	parent.IsSplit = true
	parent.Split = false
	parent.IsLeaf = false
	for _, c := range parent.TC {
		c.Parent = parent
		c.TreeLevel = parent.TreeLevel + 1
		c.NC = n
	}
}

// replaceEdgeTri swaps old for new on whichever side of e references
// old. A nil e (absent outer edge) is a no-op.
func replaceEdgeTri(e *mesh.Edge, old, new *mesh.Tri) error {
	if e == nil {
		return nil
	}
	if !e.ReplaceTri(old, new) {
		return ErrTriNotOnEdge
	}

	return nil
}

// replaceTriTri swaps old for new in whichever neighbor slot of t
// references old. A nil t (absent outer triangle) is a no-op.
func replaceTriTri(t, old, new *mesh.Tri) {
	if t != nil {
		t.ReplaceNeighbor(old, new)
	}
}
