// File: refine/refine_test.go
// Longest-edge bisection scenarios on the canonical meshes.
package refine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimesh/builder"
	"github.com/katalvlaran/trimesh/flowdata"
	"github.com/katalvlaran/trimesh/mesh"
	"github.com/katalvlaran/trimesh/refine"
)

// bandPredicate selects triangles whose centroid x lies near 0.75, the
// original driver criterion of the engine's basic test.
func bandPredicate(_ *flowdata.FlowData, tr *mesh.Tri) bool {
	return math.Abs(tr.XY[0]-0.75) < 0.2
}

func always(_ *flowdata.FlowData, _ *mesh.Tri) bool { return true }

// TestRefine_MissingInputs verifies the sentinel errors.
func TestRefine_MissingInputs(t *testing.T) {
	fd := flowdata.New(nil)
	require.ErrorIs(t, refine.Refine(fd, refine.DefaultOptions()), refine.ErrNilMesh)

	m, err := builder.UnitSquare()
	require.NoError(t, err)
	fd = flowdata.New(m)
	require.ErrorIs(t, refine.Refine(fd, refine.DefaultOptions()), refine.ErrNoRefineFunc)
}

// TestRefine_UnitSquare_OnePass is the canonical scenario: the band
// predicate selects only the lower-right triangle, whose longest edge is
// the shared diagonal; both triangles split together.
//
// Expected after one pass: one midpoint node at (0.5,0.5), 4 leaf
// triangles, 8 leaf edges, area sum 1.
func TestRefine_UnitSquare_OnePass(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)
	m.Update()

	fd := flowdata.New(m)
	fd.RefineFn = bandPredicate
	require.NoError(t, refine.Refine(fd, refine.DefaultOptions()))
	m.Update()

	require.Equal(t, 5, m.NumNodes())
	require.Len(t, m.TriLeafs, 4)
	require.Len(t, m.EdgeLeafs, 8)

	mid := m.NodeArr[4]
	require.InDelta(t, 0.5, mid.XY[0], 1e-15)
	require.InDelta(t, 0.5, mid.XY[1], 1e-15)

	// The midpoint records its full sibling family: the diagonal was
	// interior, so all four edges and four triangles are present.
	for _, e := range mid.EC {
		require.NotNil(t, e)
		require.Same(t, mid, e.NC)
	}
	for _, tr := range mid.TC {
		require.NotNil(t, tr)
		require.Same(t, mid, tr.NC)
	}

	areaSum := 0.0
	for _, tr := range m.TriLeafs {
		areaSum += tr.Area
		require.Greater(t, tr.Area, 0.0)
		require.Equal(t, 1, tr.TreeLevel)
	}
	require.InDelta(t, 1.0, areaSum, 1e-12)

	volSum := 0.0
	for _, n := range m.NodeArr {
		volSum += n.Vol
	}
	require.InDelta(t, 1.0, volSum, 1e-12)
}

// TestRefine_TreeLinks verifies parent/child wiring after one split.
func TestRefine_TreeLinks(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)
	m.Update()

	var diag *mesh.Edge
	for _, e := range m.EdgeLeafs {
		if e.Bdry == nil {
			diag = e
		}
	}
	require.NotNil(t, diag)

	fd := flowdata.New(m)
	fd.RefineFn = bandPredicate
	require.NoError(t, refine.Refine(fd, refine.DefaultOptions()))

	require.True(t, diag.IsSplit)
	require.False(t, diag.Split)
	require.False(t, diag.IsLeaf)
	for _, c := range diag.EC {
		require.NotNil(t, c)
		require.Same(t, diag, c.Parent)
		require.Equal(t, 1, c.TreeLevel)
	}

	for tr := range m.EachTri() {
		if tr.TreeLevel == 0 {
			require.True(t, tr.IsSplit)
			require.NotNil(t, tr.TC[0])
			require.NotNil(t, tr.TC[1])
			require.Same(t, tr, tr.TC[0].Parent)
			require.Same(t, tr, tr.TC[1].Parent)
		} else {
			require.False(t, tr.IsSplit)
		}
	}
}

// TestRefine_SevenCycles drives the band predicate for seven cycles and
// verifies monotone leaf growth, the leaf/isSplit equivalence and the
// conserved nodal volume sum.
func TestRefine_SevenCycles(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)
	m.Update()

	fd := flowdata.New(m)
	fd.RefineFn = bandPredicate

	prevLeafs := len(m.TriLeafs)
	for i := 0; i < 7; i++ {
		require.NoError(t, refine.Refine(fd, refine.DefaultOptions()))
		m.Update()

		require.GreaterOrEqual(t, len(m.TriLeafs), prevLeafs)
		prevLeafs = len(m.TriLeafs)

		for tr := range m.EachTri() {
			require.Equal(t, !tr.IsSplit, tr.IsLeaf)
		}
		for e := range m.EachEdge() {
			require.Equal(t, !e.IsSplit, e.IsLeaf)
		}
	}

	volSum := 0.0
	for _, n := range m.NodeArr {
		volSum += n.Vol
	}
	require.InDelta(t, 1.0, volSum, 1e-9)

	areaSum := 0.0
	for _, tr := range m.TriLeafs {
		areaSum += tr.Area
	}
	require.InDelta(t, 1.0, areaSum, 1e-9)
}

// TestRefine_BoundaryEdge verifies the boundary split: the hypotenuse
// has no paired triangle, still splits, and exactly one pair of
// sub-triangles is created; the midpoint joins the boundary on both
// slots and both halves inherit it.
func TestRefine_BoundaryEdge(t *testing.T) {
	m, err := builder.RightTriangle(1, 1)
	require.NoError(t, err)
	m.Update()

	hypo := m.FindBdry(builder.MarkerHypotenuse)
	require.NotNil(t, hypo)
	require.Equal(t, 1, hypo.NumEdges())

	fd := flowdata.New(m)
	fd.RefineFn = always
	require.NoError(t, refine.Refine(fd, refine.DefaultOptions()))
	m.Update()

	require.Len(t, m.TriLeafs, 2)
	require.Equal(t, 3, m.NumTris())
	require.Equal(t, 4, m.NumNodes())

	// Both halves inherited the boundary; the split edge stays a member.
	require.Equal(t, 3, hypo.NumEdges())
	require.Len(t, hypo.EdgeLeafs, 2)
	for _, e := range hypo.EdgeLeafs {
		require.Same(t, hypo, e.Bdry)
		require.Equal(t, 1, e.TreeLevel)
	}

	mid := m.NodeArr[3]
	require.InDelta(t, 0.5, mid.XY[0], 1e-15)
	require.InDelta(t, 0.5, mid.XY[1], 1e-15)
	require.Same(t, hypo, mid.Bdry[0])
	require.Same(t, hypo, mid.Bdry[1])

	// One side absent: the boundary family has no right-side siblings.
	nPresent := 0
	for _, tr := range mid.TC {
		if tr != nil {
			nPresent++
		}
	}
	require.Equal(t, 2, nPresent)

	areaSum := 0.0
	for _, tr := range m.TriLeafs {
		areaSum += tr.Area
	}
	require.InDelta(t, 0.5, areaSum, 1e-12)
}

// TestRefine_AspectRatioCascade marks a thin 8:1 right triangle once and
// lets the aspect-ratio policy run extra passes: no surviving leaf may
// exceed the bound.
func TestRefine_AspectRatioCascade(t *testing.T) {
	m, err := builder.RightTriangle(8, 1)
	require.NoError(t, err)
	m.Update()

	fd := flowdata.New(m)
	marked := false
	fd.RefineFn = func(_ *flowdata.FlowData, _ *mesh.Tri) bool {
		if marked {
			return false
		}
		marked = true

		return true
	}

	opts := refine.Options{MaxAspectRatio: 4.0, MaxPasses: 20}
	require.NoError(t, refine.Refine(fd, opts))
	m.Update()

	for _, tr := range m.TriLeafs {
		require.LessOrEqual(t, tr.AspectRatio, opts.MaxAspectRatio,
			"leaf triangle with aspect ratio %g", tr.AspectRatio)
	}

	areaSum := 0.0
	for _, tr := range m.TriLeafs {
		areaSum += tr.Area
	}
	require.InDelta(t, 4.0, areaSum, 1e-9)
}

// TestMarkToSplit_PropagatesToPair verifies one-hop pair marking across
// the longest edge.
func TestMarkToSplit_PropagatesToPair(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)
	m.Update()

	t0 := m.TriLeafs[0]
	t1 := m.TriLeafs[1]
	require.NoError(t, refine.MarkToSplit(t0))

	require.True(t, t0.Split)
	require.True(t, t1.Split)
	require.NotNil(t, t0.ESplit)
	require.Same(t, t0.ESplit, t1.ESplit)
	require.True(t, t0.ESplit.Split)
	require.Nil(t, t0.ESplit.Bdry, "the longest edge is the interior diagonal")
}

// TestMarkToSplit_NoEdges locks in the hard-error contract.
func TestMarkToSplit_NoEdges(t *testing.T) {
	m := mesh.NewMesh()
	tr := m.NewTri()

	require.ErrorIs(t, refine.MarkToSplit(tr), refine.ErrNoEdges)
}
