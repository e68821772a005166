package mesh

// Bdry is a named mesh boundary: an integer marker, a human-readable
// name, and the ordered membership of its edges and nodes.
//
// Node membership is tracked per slot: a node sits on a boundary through
// one or both of its two boundary slots, and holds one list position per
// linked slot. A corner between two boundaries carries each of them in
// one slot; the midpoint created on a split boundary edge carries the
// same boundary in both.
type Bdry struct {
	// Marker is the integer boundary marker used by mesh files.
	Marker int

	// Name is the human-readable boundary name.
	Name string

	nodes *stack[Node]
	edges *stack[Edge]

	// EdgeLeafs holds the boundary's current leaf edges, rebuilt by
	// Update.
	EdgeLeafs []*Edge

	// BdryNodes is the boundary's dense node array, rebuilt by Update.
	// A node linked through both slots appears once per slot.
	BdryNodes []*Node

	stackPos *stackItem[Bdry]
}

// NewBdry creates a boundary with the given marker and name and appends
// it to the mesh.
// Complexity: O(1)
func (m *Mesh) NewBdry(marker int, name string) *Bdry {
	b := &Bdry{
		Marker: marker,
		Name:   name,
		nodes:  newStack[Node](),
		edges:  newStack[Edge](),
	}
	b.stackPos = m.bdrys.push(b)

	return b
}

// RemoveBdry detaches b from the mesh store. Removing a boundary that is
// not on the mesh panics.
// Complexity: O(1)
func (m *Mesh) RemoveBdry(b *Bdry) {
	m.bdrys.remove(b.stackPos)
	b.stackPos = nil
}

// FindBdry returns the boundary with the given marker, or nil.
// Complexity: O(B)
func (m *Mesh) FindBdry(marker int) *Bdry {
	for b := range m.bdrys.each() {
		if b.Marker == marker {
			return b
		}
	}

	return nil
}

// AddEdge appends e to the boundary and links the boundary on the edge.
func (b *Bdry) AddEdge(e *Edge) {
	e.Bdry = b
	e.bdryPos = b.edges.push(e)
}

// RemoveEdge detaches e from the boundary and clears the link on the
// edge. Returns ErrBdryNotLinked if e does not reference b.
func (b *Bdry) RemoveEdge(e *Edge) error {
	if e.Bdry != b {
		return ErrBdryNotLinked
	}
	b.edges.remove(e.bdryPos)
	e.Bdry = nil
	e.bdryPos = nil

	return nil
}

// AddNode links the boundary into the node's given slot (0 or 1) and
// appends the node to the boundary's ordered node list. Re-adding a node
// already linked at that slot is a no-op; a different boundary already
// occupying the slot is unlinked first.
func (b *Bdry) AddNode(n *Node, slot int) error {
	if slot != 0 && slot != 1 {
		return ErrBdrySlot
	}
	if n.Bdry[slot] == b {
		return nil
	}
	if prev := n.Bdry[slot]; prev != nil {
		prev.nodes.remove(n.bdryPos[slot])
	}
	n.Bdry[slot] = b
	n.bdryPos[slot] = b.nodes.push(n)

	return nil
}

// RemoveNode detaches the node from the boundary at the first slot that
// references b and clears that slot. Call once per linked slot. Returns
// ErrBdryNotLinked when no slot references b.
func (b *Bdry) RemoveNode(n *Node) error {
	for slot := 0; slot < 2; slot++ {
		if n.Bdry[slot] != b {
			continue
		}
		b.nodes.remove(n.bdryPos[slot])
		n.Bdry[slot] = nil
		n.bdryPos[slot] = nil

		return nil
	}

	return ErrBdryNotLinked
}

// NumEdges returns the number of edges on the boundary (all tree levels).
func (b *Bdry) NumEdges() int { return b.edges.count }

// NumNodes returns the number of node slot-links on the boundary.
func (b *Bdry) NumNodes() int { return b.nodes.count }
