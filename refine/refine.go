package refine

import (
	"fmt"

	"github.com/katalvlaran/trimesh/flowdata"
	"github.com/katalvlaran/trimesh/mesh"
)

// Refine performs one refinement cycle on fd.Mesh:
//
//  1. Walks all triangles in insertion order and marks every leaf the
//     predicate selects, together with its longest edge and the paired
//     triangle across it.
//  2. Splits every marked, unsplit edge. The edge walk follows insertion
//     order and picks up edges appended behind the cursor.
//  3. Re-marks leaves whose aspect ratio exceeds opts.MaxAspectRatio and
//     repeats from 2, up to opts.MaxPasses rounds.
//
// Call mesh.Update afterwards to refresh leaf arrays and dual metrics.
//
// Returns the first error encountered; a consistency error leaves the
// mesh suspect (no rollback is attempted).
// Complexity: O(MaxPasses·(T + E) + s) for s performed splits.
func Refine(fd *flowdata.FlowData, opts Options) error {
	m := fd.Mesh
	if m == nil {
		return ErrNilMesh
	}
	if fd.RefineFn == nil {
		return ErrNoRefineFunc
	}

	// Mark all triangles the predicate selects.
	nSplit := 0
	for t := range m.EachTri() {
		if t.IsSplit || t.Split || !fd.RefineFn(fd, t) {
			continue
		}
		if err := MarkToSplit(t); err != nil {
			return err
		}
		nSplit++
	}

	for pass := 0; nSplit > 0 && pass < opts.MaxPasses; pass++ {
		// Split all marked edges.
		for e := range m.EachEdge() {
			if !e.Split || e.IsSplit {
				continue
			}
			if err := splitEdge(m, e); err != nil {
				return fmt.Errorf("refine: splitting edge %d: %w", e.Index, err)
			}
		}

		// Re-mark leaves with bad aspect ratios for the next pass.
		nSplit = 0
		for t := range m.EachTri() {
			if t.IsSplit || t.Split || t.AspectRatio <= opts.MaxAspectRatio {
				continue
			}
			if err := MarkToSplit(t); err != nil {
				return err
			}
			nSplit++
		}
	}

	return nil
}

// MarkToSplit schedules a triangle for refinement: its longest edge is
// marked for bisection, and the paired triangle across that edge is
// marked too so both sides split together. Already-marked triangles are
// left untouched.
//
// A triangle without any edge is a hard error (ErrNoEdges).
// Complexity: O(1)
func MarkToSplit(t *mesh.Tri) error {
	if t.Split {
		return nil
	}

	// Find the longest edge eL and its slot.
	var eL *mesh.Edge
	iNb := 0
	for i, e := range t.E {
		if e == nil {
			continue
		}
		if eL == nil || e.Len > eL.Len {
			eL = e
			iNb = i
		}
	}
	if eL == nil {
		return ErrNoEdges
	}

	t.Split = true
	t.ESplit = eL
	eL.Split = true

	// The pair across eL: t.E[iNb] is opposite n[(iNb+2)%3], so the
	// neighbor slot is (iNb+2)%3.
	if nb := t.T[(iNb+2)%3]; nb != nil {
		nb.Split = true
		nb.ESplit = eL
	}

	return nil
}
