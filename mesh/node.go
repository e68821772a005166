package mesh

// Node is a mesh vertex.
//
// A node created as the midpoint of a split edge records the four sibling
// edges and four sibling triangles born in that split; coarsening walks
// these links to recover the whole family from any one member.
type Node struct {
	// XY are the node coordinates.
	XY [2]float64

	// Index is the dense node index assigned by Update.
	Index int

	// Vol is the median-dual control-volume area accumulated by Update.
	Vol float64

	// EC are the sibling edges around a midpoint node, in the order
	// H0, V0, H1, V1. Nil entries mark absent (boundary) siblings.
	EC [4]*Edge

	// TC are the sibling triangles around a midpoint node, in the order
	// R0, R1, L1, L0. Nil entries mark absent (boundary) siblings.
	TC [4]*Tri

	// Bdry holds up to two boundaries this node lies on. A node where two
	// edges of the same boundary meet carries that boundary in both slots.
	Bdry [2]*Bdry

	bdryPos  [2]*stackItem[Node]
	stackPos *stackItem[Node]
}

// NewNode creates a node at xy and appends it to the mesh.
// The initial index equals the current node count.
// Complexity: O(1)
func (m *Mesh) NewNode(xy [2]float64) *Node {
	n := &Node{
		XY:    xy,
		Index: m.nodes.count,
	}
	n.stackPos = m.nodes.push(n)

	return n
}

// RemoveNode detaches n from the mesh store. Boundary links are not
// touched; callers remove those first. Removing a node that is not on
// the mesh panics.
// Complexity: O(1)
func (m *Mesh) RemoveNode(n *Node) {
	m.nodes.remove(n.stackPos)
	n.stackPos = nil
}
