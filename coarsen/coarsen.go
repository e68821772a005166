package coarsen

import (
	"github.com/katalvlaran/trimesh/flowdata"
	"github.com/katalvlaran/trimesh/mesh"
)

// Coarsen performs one coarsening cycle on fd.Mesh:
//
//  1. Walks the leaf triangle array and, for every triangle the
//     predicate selects, marks the whole sibling family through the
//     midpoint node the triangle was born at. Root-level triangles have
//     no midpoint and are skipped.
//  2. Walks the leaf edge array and merges every marked edge whose
//     sibling sub-triangles are all still leaves; families blocked by
//     deeper refinement are skipped silently and retried on a later
//     cycle. Slots of destroyed entities are cleared to nil.
//
// Call mesh.Update afterwards to compact the leaf arrays and refresh the
// dual metrics.
//
// Precondition violations on single families are reported to the mesh
// diagnostics and skipped; consistency errors abort the cycle.
// Complexity: O(leafs + s) for s performed merges.
func Coarsen(fd *flowdata.FlowData, opts Options) error {
	m := fd.Mesh
	if m == nil {
		return ErrNilMesh
	}
	if fd.CoarsenFn == nil {
		return ErrNoCoarsenFunc
	}

	// Mark whole families through the midpoint siblings.
	for _, t := range m.TriLeafs {
		if t == nil || t.Merge || !fd.CoarsenFn(fd, t) {
			continue
		}
		MarkToMerge(t)
	}

	// Merge marked edges; each successful merge clears the leaf slots of
	// the whole family, so siblings visited later are skipped as nil.
	for i := 0; i < len(m.EdgeLeafs); i++ {
		e := m.EdgeLeafs[i]
		if e == nil || !e.Merge {
			continue
		}
		if err := mergeEdge(m, e); err != nil {
			if err == ErrNoMidpoint {
				m.Diag(1, "MERGE SKIPPED: EDGE %d HAS NO MIDPOINT", e.Index)
				continue
			}

			return err
		}
	}

	return nil
}

// MarkToMerge schedules the refinement-tree family of t for merging: the
// four sibling triangles and four sibling edges recorded on the midpoint
// node t was born at. Triangles born at no midpoint (tree roots) are
// left untouched.
// Complexity: O(1)
func MarkToMerge(t *mesh.Tri) {
	n := t.NC
	if n == nil {
		return
	}
	for _, tc := range n.TC {
		if tc != nil {
			tc.Merge = true
		}
	}
	for _, ec := range n.EC {
		if ec != nil {
			ec.Merge = true
		}
	}
}
