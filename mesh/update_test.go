// File: mesh/update_test.go
// Leaf-index refresh, median-dual metrics and print format on the
// canonical unit square.
package mesh_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimesh/builder"
	"github.com/katalvlaran/trimesh/mesh"
)

const volTol = 1e-12

// TestUpdate_UnitSquare verifies counts, dense indices and leaf arrays
// after the first refresh.
func TestUpdate_UnitSquare(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)

	m.Update()

	require.Equal(t, 4, m.NumNodes())
	require.Equal(t, 5, m.NumEdges())
	require.Equal(t, 2, m.NumTris())
	require.Len(t, m.NodeArr, 4)
	require.Len(t, m.EdgeLeafs, 5)
	require.Len(t, m.TriLeafs, 2)

	for i, n := range m.NodeArr {
		require.Equal(t, i, n.Index)
	}
	for i, e := range m.EdgeLeafs {
		require.Equal(t, i, e.LeafPos)
		require.True(t, e.IsLeaf)
	}
	for i, tr := range m.TriLeafs {
		require.Equal(t, i, tr.LeafPos)
		require.True(t, tr.IsLeaf)
		require.Greater(t, tr.Area, 0.0)
	}
}

// TestUpdate_DualMetrics verifies the analytically known unit-square
// values: each triangle area 1/2, nodal volumes (1/3,1/6,1/3,1/6),
// their sum 1, and the diagonal's interior normal.
func TestUpdate_DualMetrics(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)

	m.Update()

	areaSum := 0.0
	for _, tr := range m.TriLeafs {
		areaSum += tr.Area
	}
	require.InDelta(t, 1.0, areaSum, volTol)

	volSum := 0.0
	for _, n := range m.NodeArr {
		volSum += n.Vol
	}
	require.InDelta(t, 1.0, volSum, volTol)

	// Corner nodes on the diagonal carry 1/3, the others 1/6.
	require.InDelta(t, 1.0/3.0, m.NodeArr[0].Vol, volTol)
	require.InDelta(t, 1.0/6.0, m.NodeArr[1].Vol, volTol)
	require.InDelta(t, 1.0/3.0, m.NodeArr[2].Vol, volTol)
	require.InDelta(t, 1.0/6.0, m.NodeArr[3].Vol, volTol)

	// The diagonal runs n2→n0; its dual face connects both centroids.
	for _, e := range m.EdgeLeafs {
		if e.Bdry != nil {
			continue
		}
		require.InDelta(t, -1.0/3.0, e.IntrNorm[0], volTol)
		require.InDelta(t, -1.0/3.0, e.IntrNorm[1], volTol)
	}
}

// TestUpdate_BoundaryNormals verifies the outward half-normals of the
// SOUTH edge: both halves point in -y.
func TestUpdate_BoundaryNormals(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)

	m.Update()

	south := m.FindBdry(builder.MarkerSouth)
	require.NotNil(t, south)
	require.Len(t, south.EdgeLeafs, 1)

	e := south.EdgeLeafs[0]
	require.InDelta(t, 0.0, e.BdryNorm[0][0], volTol)
	require.InDelta(t, -0.5, e.BdryNorm[0][1], volTol)
	require.InDelta(t, 0.0, e.BdryNorm[1][0], volTol)
	require.InDelta(t, -0.5, e.BdryNorm[1][1], volTol)
}

// TestUpdate_Idempotent verifies that two consecutive refreshes produce
// identical leaf arrays and metrics.
func TestUpdate_Idempotent(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)

	m.Update()
	edges1 := append([]any{}, anySlice(m.EdgeLeafs)...)
	tris1 := append([]any{}, anySlice(m.TriLeafs)...)
	vols1 := nodeVols(m)

	m.Update()
	require.Equal(t, edges1, anySlice(m.EdgeLeafs))
	require.Equal(t, tris1, anySlice(m.TriLeafs))
	require.Equal(t, vols1, nodeVols(m))
}

// TestPrint_Format verifies section headers, column counts (5/4/6/7)
// and byte-for-byte determinism.
func TestPrint_Format(t *testing.T) {
	m, err := builder.UnitSquare()
	require.NoError(t, err)
	m.Update()

	var buf1, buf2 bytes.Buffer
	m.Print(&buf1)
	m.Print(&buf2)
	require.Equal(t, buf1.String(), buf2.String())

	lines := strings.Split(strings.TrimRight(buf1.String(), "\n"), "\n")
	require.Equal(t, "NODES 4", lines[0])

	section := ""
	for _, ln := range lines {
		fields := strings.Fields(ln)
		switch fields[0] {
		case "NODES", "TRIANGLES", "EDGES", "TRI":
			section = fields[0]
			continue
		}
		cols := len(strings.Split(ln, "\t"))
		switch section {
		case "NODES":
			require.Equal(t, 5, cols, "node line %q", ln)
		case "TRIANGLES":
			require.Equal(t, 4, cols, "triangle line %q", ln)
		case "EDGES":
			require.Equal(t, 6, cols, "edge line %q", ln)
		case "TRI":
			require.Equal(t, 7, cols, "neighbor line %q", ln)
		}
	}

	// Boundary names show up on nodes and edges, None elsewhere.
	require.Contains(t, buf1.String(), "SOUTH")
	require.Contains(t, buf1.String(), "None")
}

func anySlice[T any](in []*T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}

	return out
}

func nodeVols(m *mesh.Mesh) []float64 {
	vols := make([]float64, 0, len(m.NodeArr))
	for _, n := range m.NodeArr {
		vols = append(vols, n.Vol)
	}

	return vols
}
