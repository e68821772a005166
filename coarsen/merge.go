package coarsen

import (
	"github.com/katalvlaran/trimesh/mesh"
)

// mergeEdge reverses the split that created e's family:
//
//  1. Recovers the siblings from the midpoint node: collinear halves
//     eH0/eH1, vertical edges eV0/eV1, sub-triangles tR0/tR1/tL1/tL0.
//  2. Skips silently if any present sub-triangle is not a leaf — the
//     surrounding region was refined further and must coarsen first.
//  3. Rediscovers the current outer edge and triangle of every
//     sub-triangle by locating its vertical sibling; the parents' stale
//     pointers are never trusted.
//  4. Rewires the parent triangles and the parent edge onto the outer
//     entities in the rotation of the original split.
//  5. Redirects every outer back-link from a sub-triangle to its parent.
//  6. Removes boundary membership of the halves and the midpoint,
//     destroys the children and the midpoint node, and clears their
//     leaf-array slots.
//  7. Restores the parents to leaf state.
//
// Complexity: O(1)
func mergeEdge(m *mesh.Mesh, e *mesh.Edge) error {
	n := e.NC
	if n == nil {
		return ErrNoMidpoint
	}

	eH0, eV0, eH1, eV1 := n.EC[0], n.EC[1], n.EC[2], n.EC[3]
	tR0, tR1, tL1, tL0 := n.TC[0], n.TC[1], n.TC[2], n.TC[3]

	// The merge must wait until every present sibling is a leaf again.
	for _, t := range [4]*mesh.Tri{tR0, tR1, tL1, tL0} {
		if t != nil && !t.IsLeaf {
			m.Diag(2, "MERGE DEFERRED: SIBLINGS OF EDGE %d ARE REFINED", e.Index)
			return nil
		}
	}

	left := tL0 != nil
	right := tR0 != nil
	if left && (tL1 == nil || eV1 == nil) {
		return ErrSiblingSlot
	}
	if right && (tR1 == nil || eV0 == nil) {
		return ErrSiblingSlot
	}

	// Outer rediscovery per present side.
	var (
		e0, e1, e2, e3 *mesh.Edge
		t0, t1, t2, t3 *mesh.Tri
		err            error
	)
	if left {
		if e3, t3, err = outerOf(tL0, eV1, eH0); err != nil {
			return err
		}
		if e2, t2, err = outerOf(tL1, eV1, eH1); err != nil {
			return err
		}
	}
	if right {
		if e0, t0, err = outerOf(tR0, eV0, eH0); err != nil {
			return err
		}
		if e1, t1, err = outerOf(tR1, eV0, eH1); err != nil {
			return err
		}
	}

	// Parents to merge back into.
	ep := parentEdge(eV0, eV1)
	if ep == nil {
		return ErrParentLost
	}
	var tLp, tRp *mesh.Tri
	if left {
		if tLp = tL0.Parent; tLp == nil {
			return ErrParentLost
		}
	}
	if right {
		if tRp = tR0.Parent; tRp == nil {
			return ErrParentLost
		}
	}

	// Rewire the parents in the rotation of the original split: the slot
	// of the parent edge anchors the other two.
	if left {
		if err = rewireParent(tLp, ep, e2, e3, t2, t3, tRp); err != nil {
			return err
		}
	}
	if right {
		if err = rewireParent(tRp, ep, e0, e1, t0, t1, tLp); err != nil {
			return err
		}
	}
	ep.SetTris(tLp, tRp)

	// Outer back-links now reference the parents again.
	if left {
		redirect(e3, t3, tL0, tLp)
		redirect(e2, t2, tL1, tLp)
	}
	if right {
		redirect(e0, t0, tR0, tRp)
		redirect(e1, t1, tR1, tRp)
	}

	// Boundary membership of the halves and the midpoint node.
	if b := eH0.Bdry; b != nil {
		if err = b.RemoveEdge(eH0); err != nil {
			return err
		}
		if err = b.RemoveEdge(eH1); err != nil {
			return err
		}
	}
	for _, b := range n.Bdry {
		if b != nil {
			if err = b.RemoveNode(n); err != nil {
				return err
			}
		}
	}

	// Destroy the family, clearing leaf slots for the next Update.
	if left {
		destroyTri(m, tL0)
		destroyTri(m, tL1)
		destroyEdge(m, eV1)
	}
	if right {
		destroyTri(m, tR0)
		destroyTri(m, tR1)
		destroyEdge(m, eV0)
	}
	destroyEdge(m, eH0)
	destroyEdge(m, eH1)
	m.RemoveNode(n)

	// The parents are leaves again.
	if left {
		restoreTri(tLp)
	}
	if right {
		restoreTri(tRp)
	}
	ep.EC = [4]*mesh.Edge{}
	ep.IsSplit = false
	ep.IsLeaf = true
	ep.Split = false
	ep.Merge = false

	m.Diag(2, "EDGE %d MERGED AT (%.5f,%.5f)", ep.Index, n.XY[0], n.XY[1])

	return nil
}

// outerOf locates the outer edge of a sub-triangle — the slot holding
// neither the vertical nor the horizontal sibling — and the neighbor
// across it.
func outerOf(sub *mesh.Tri, eV, eH *mesh.Edge) (*mesh.Edge, *mesh.Tri, error) {
	jV := sub.EdgeSlot(eV)
	jH := sub.EdgeSlot(eH)
	if jV < 0 || jH < 0 {
		return nil, nil, ErrSiblingSlot
	}
	j := 3 - jV - jH

	// The neighbor across e[j] sits in slot (j+2)%3.
	return sub.E[j], sub.T[(j+2)%3], nil
}

// parentEdge recovers the split edge from either vertical sibling.
func parentEdge(eV0, eV1 *mesh.Edge) *mesh.Edge {
	if eV1 != nil {
		return eV1.Parent
	}
	if eV0 != nil {
		return eV0.Parent
	}

	return nil
}

// rewireParent reassigns a parent triangle's edges and neighbors after a
// merge: ep keeps its original slot o, the two outer edges follow at
// o+1 and o+2, and the neighbors land so that eOut1 faces tOut1, eOut2
// faces tOut2 and ep faces the opposite parent.
func rewireParent(tp *mesh.Tri, ep, eOut1, eOut2 *mesh.Edge, tOut1, tOut2, opposite *mesh.Tri) error {
	o := tp.EdgeSlot(ep)
	if o < 0 {
		return ErrParentLost
	}

	var es [3]*mesh.Edge
	var ts [3]*mesh.Tri
	es[o] = ep
	es[(o+1)%3] = eOut1
	es[(o+2)%3] = eOut2
	ts[o] = tOut1
	ts[(o+1)%3] = tOut2
	ts[(o+2)%3] = opposite

	tp.SetEdges(es[0], es[1], es[2])
	tp.SetTris(ts[0], ts[1], ts[2])

	return nil
}

// redirect repoints an outer edge side and an outer neighbor slot from a
// destroyed sub-triangle to its parent.
func redirect(e *mesh.Edge, t *mesh.Tri, old, parent *mesh.Tri) {
	if e != nil {
		e.ReplaceTri(old, parent)
	}
	if t != nil {
		t.ReplaceNeighbor(old, parent)
	}
}

// destroyTri clears the triangle's leaf slot and removes it from the
// mesh store.
func destroyTri(m *mesh.Mesh, t *mesh.Tri) {
	if t.LeafPos >= 0 && t.LeafPos < len(m.TriLeafs) && m.TriLeafs[t.LeafPos] == t {
		m.TriLeafs[t.LeafPos] = nil
	}
	m.RemoveTri(t)
}

// destroyEdge clears the edge's leaf slot and removes it from the mesh
// store.
func destroyEdge(m *mesh.Mesh, e *mesh.Edge) {
	if e.LeafPos >= 0 && e.LeafPos < len(m.EdgeLeafs) && m.EdgeLeafs[e.LeafPos] == e {
		m.EdgeLeafs[e.LeafPos] = nil
	}
	m.RemoveEdge(e)
}

// restoreTri returns a parent triangle to leaf state.
func restoreTri(tp *mesh.Tri) {
	tp.TC = [2]*mesh.Tri{}
	tp.IsSplit = false
	tp.IsLeaf = true
	tp.Split = false
	tp.Merge = false
}
