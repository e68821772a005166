package mesh

import (
	"fmt"
	"iter"
)

// NumNodes returns the number of nodes on the mesh.
func (m *Mesh) NumNodes() int { return m.nodes.count }

// NumEdges returns the number of edges on the mesh (all tree levels).
func (m *Mesh) NumEdges() int { return m.edges.count }

// NumTris returns the number of triangles on the mesh (all tree levels).
func (m *Mesh) NumTris() int { return m.tris.count }

// NumBdrys returns the number of boundaries on the mesh.
func (m *Mesh) NumBdrys() int { return m.bdrys.count }

// EachNode yields all nodes in insertion order. Entities appended while
// the walk is running are visited by the same walk.
func (m *Mesh) EachNode() iter.Seq[*Node] { return m.nodes.each() }

// EachEdge yields all edges in insertion order, including non-leaves.
func (m *Mesh) EachEdge() iter.Seq[*Edge] { return m.edges.each() }

// EachTri yields all triangles in insertion order, including non-leaves.
func (m *Mesh) EachTri() iter.Seq[*Tri] { return m.tris.each() }

// EachBdry yields all boundaries in insertion order.
func (m *Mesh) EachBdry() iter.Seq[*Bdry] { return m.bdrys.each() }

// Diag writes a diagnostic line when the mesh verbosity is at least
// level. The subpackages route all non-fatal reports through here.
func (m *Mesh) Diag(level int, format string, args ...any) {
	if m.diag == nil || m.verbosity < level {
		return
	}
	fmt.Fprintf(m.diag, "> "+format+"\n", args...)
}
