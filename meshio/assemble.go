package meshio

import (
	"github.com/katalvlaran/trimesh/mesh"
)

// Assemble wires node/triangle/neighbor tables into m as a connected
// level-0 triangulation.
//
// nbrs[i][j] names the triangle across the edge opposite node j of
// triangle i, or -marker for a boundary edge. Interior edges are created
// by the lower-indexed triangle only; the edge between nodes (j+1)%3 and
// (j+2)%3 lands in edge slot (j+1)%3 of triangle i and, in the neighbor,
// in the slot that starts one position before node (j+1)%3, preserving
// the e[i] = n[i]→n[(i+1)%3] cycle on each side.
//
// Boundaries named by negative markers must already exist on the mesh.
// Complexity: O(N + T)
func Assemble(m *mesh.Mesh, xy [][2]float64, tris, nbrs [][3]int) error {
	nodes := make([]*mesh.Node, len(xy))
	for i := range xy {
		nodes[i] = m.NewNode(xy[i])
	}

	ts := make([]*mesh.Tri, len(tris))
	for i := range tris {
		for _, v := range tris[i] {
			if v < 0 || v >= len(nodes) {
				return ErrTriFormat
			}
		}
		ts[i] = m.NewTri()
		ts[i].SetNodes(nodes[tris[i][0]], nodes[tris[i][1]], nodes[tris[i][2]])
	}

	for i := range ts {
		for j := 0; j < 3; j++ {
			nbr := nbrs[i][j]
			n0 := nodes[tris[i][(j+1)%3]]
			n1 := nodes[tris[i][(j+2)%3]]

			switch {
			case nbr < 0:
				// Boundary edge on the pre-existing boundary with that
				// marker.
				b := m.FindBdry(-nbr)
				if b == nil {
					return ErrUnknownMarker
				}
				e := m.NewEdge()
				e.SetNodes(n0, n1)
				e.SetTris(ts[i], nil)
				b.AddEdge(e)
				if err := b.AddNode(n0, 0); err != nil {
					return err
				}
				if err := b.AddNode(n1, 1); err != nil {
					return err
				}
				ts[i].E[(j+1)%3] = e

			case nbr > i:
				// Interior edge, created exactly once by the smaller id.
				if nbr >= len(ts) {
					return ErrConnectivity
				}
				e := m.NewEdge()
				e.SetNodes(n0, n1)
				e.SetTris(ts[i], ts[nbr])
				ts[i].E[(j+1)%3] = e
				ts[i].T[j] = ts[nbr]

				// In the neighbor the shared edge runs n1→n0, so it
				// starts one slot before n0's position there.
				k := nodeSlot(ts[nbr], n0)
				if k < 0 {
					return ErrConnectivity
				}
				ts[nbr].E[(k+2)%3] = e

			case nbr < i:
				// Edge already created by the neighbor's row.
				ts[i].T[j] = ts[nbr]

			default:
				return ErrConnectivity
			}
		}
	}

	// Every slot must be filled now; re-setting the edges derives the
	// aspect ratios.
	for _, t := range ts {
		if t.E[0] == nil || t.E[1] == nil || t.E[2] == nil {
			return ErrConnectivity
		}
		t.SetEdges(t.E[0], t.E[1], t.E[2])
	}

	return nil
}

// nodeSlot returns the position of n among the triangle's nodes, or -1.
func nodeSlot(t *mesh.Tri, n *mesh.Node) int {
	for k, tn := range t.N {
		if tn == n {
			return k
		}
	}

	return -1
}
