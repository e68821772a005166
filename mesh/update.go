package mesh

// Update refreshes every dense view of the mesh after a batch of splits
// or merges:
//
//  1. Walks the nodes, assigns dense indices and rebuilds NodeArr.
//  2. Walks the triangles in insertion order, assigns indices, resets
//     the per-cycle flags (Split, Merge) and derives IsLeaf from
//     IsSplit.
//  3. Walks the edges the same way.
//  4. Rebuilds the two leaf arrays at exact size, recording each leaf's
//     position so coarsening can clear slots in O(1).
//  5. Rebuilds each boundary's node array and leaf-edge array.
//  6. Recomputes the median-dual metrics over the new leaf set.
//
// Two consecutive calls with no topology change in between produce
// identical arrays and metrics.
// Complexity: O(N + E + T), Memory: O(leafs)
func (m *Mesh) Update() {
	// 1. Dense node indices.
	m.NodeArr = make([]*Node, 0, m.nodes.count)
	i := 0
	for n := range m.nodes.each() {
		n.Index = i
		i++
		m.NodeArr = append(m.NodeArr, n)
	}

	// 2. Triangle walk: indices, flag reset, leaf count.
	nTriLeafs := 0
	i = 0
	for t := range m.tris.each() {
		t.Index = i
		i++
		t.Split = false
		t.Merge = false
		t.IsLeaf = !t.IsSplit
		t.LeafPos = -1
		if t.IsLeaf {
			nTriLeafs++
		}
	}

	// 3. Edge walk.
	nEdgeLeafs := 0
	i = 0
	for e := range m.edges.each() {
		e.Index = i
		i++
		e.Split = false
		e.Merge = false
		e.IsLeaf = !e.IsSplit
		e.LeafPos = -1
		if e.IsLeaf {
			nEdgeLeafs++
		}
	}

	m.Diag(1, "NUMBER OF EDGE LEAFS: %d", nEdgeLeafs)
	m.Diag(1, "NUMBER OF TRIANGLE LEAFS: %d", nTriLeafs)

	// 4. Exact-size leaf arrays with recorded positions.
	m.TriLeafs = make([]*Tri, 0, nTriLeafs)
	for t := range m.tris.each() {
		if !t.IsLeaf {
			continue
		}
		t.LeafPos = len(m.TriLeafs)
		m.TriLeafs = append(m.TriLeafs, t)
	}

	m.EdgeLeafs = make([]*Edge, 0, nEdgeLeafs)
	for e := range m.edges.each() {
		if !e.IsLeaf {
			continue
		}
		e.LeafPos = len(m.EdgeLeafs)
		m.EdgeLeafs = append(m.EdgeLeafs, e)
	}

	// 5. Per-boundary arrays.
	for b := range m.bdrys.each() {
		b.BdryNodes = make([]*Node, 0, b.nodes.count)
		for n := range b.nodes.each() {
			b.BdryNodes = append(b.BdryNodes, n)
		}
		b.EdgeLeafs = b.EdgeLeafs[:0]
		for e := range b.edges.each() {
			if !e.IsSplit {
				b.EdgeLeafs = append(b.EdgeLeafs, e)
			}
		}
	}

	// 6. Dual metrics over the fresh leaf set.
	m.calcDualMetrics()
}
