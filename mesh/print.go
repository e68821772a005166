package mesh

import (
	"fmt"
	"io"
)

// noneName marks an absent boundary in printed output.
const noneName = "None"

// Print writes the mesh as tab-separated text sections. Call Update
// first so the leaf arrays and indices are current.
//
// Sections and their column counts:
//
//	NODES n          — index, x, y, first boundary name, second boundary name (5)
//	TRIANGLES n      — leaf index, three node indices (4)
//	EDGES n          — leaf index, two node indices, left/right triangle leaf
//	                   indices or -1, boundary name (6)
//	TRI NEIGHBORS n  — leaf index, three neighbor leaf indices or -1,
//	                   three edge leaf indices or -1 (7)
//
// The output is deterministic: identical operation sequences produce
// identical bytes.
// Complexity: O(N + leafs)
func (m *Mesh) Print(w io.Writer) {
	fmt.Fprintf(w, "NODES %d\n", len(m.NodeArr))
	for _, n := range m.NodeArr {
		fmt.Fprintf(w, "%d\t%9.5f\t%9.5f\t%s\t%s\n",
			n.Index, n.XY[0], n.XY[1], bdryName(n.Bdry[0]), bdryName(n.Bdry[1]))
	}

	fmt.Fprintf(w, "TRIANGLES %d\n", len(m.TriLeafs))
	for _, t := range m.TriLeafs {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n",
			t.LeafPos, t.N[0].Index, t.N[1].Index, t.N[2].Index)
	}

	fmt.Fprintf(w, "EDGES %d\n", len(m.EdgeLeafs))
	for _, e := range m.EdgeLeafs {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%s\n",
			e.LeafPos, e.N[0].Index, e.N[1].Index,
			triLeafIndex(e.T[0]), triLeafIndex(e.T[1]), bdryName(e.Bdry))
	}

	fmt.Fprintf(w, "TRI NEIGHBORS %d\n", len(m.TriLeafs))
	for _, t := range m.TriLeafs {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			t.LeafPos,
			triLeafIndex(t.T[0]), triLeafIndex(t.T[1]), triLeafIndex(t.T[2]),
			edgeLeafIndex(t.E[0]), edgeLeafIndex(t.E[1]), edgeLeafIndex(t.E[2]))
	}
}

func bdryName(b *Bdry) string {
	if b == nil {
		return noneName
	}

	return b.Name
}

func triLeafIndex(t *Tri) int {
	if t == nil {
		return -1
	}

	return t.LeafPos
}

func edgeLeafIndex(e *Edge) int {
	if e == nil {
		return -1
	}

	return e.LeafPos
}
