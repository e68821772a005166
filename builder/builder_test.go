// File: builder/builder_test.go
package builder

import (
	"testing"
)

// TestGridTables_Errors verifies dimension validation.
func TestGridTables_Errors(t *testing.T) {
	cases := []struct {
		name   string
		nx, ny int
		w, h   float64
	}{
		{"ZeroCells", 0, 1, 1, 1},
		{"NegativeCells", 2, -1, 1, 1},
		{"ZeroWidth", 1, 1, 0, 1},
		{"NegativeHeight", 1, 1, 1, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := GridTables(tc.nx, tc.ny, tc.w, tc.h); err != ErrBadDims {
				t.Errorf("GridTables(%d,%d,%g,%g) error = %v; want ErrBadDims",
					tc.nx, tc.ny, tc.w, tc.h, err)
			}
		})
	}
}

// TestGridTables_Shape verifies table sizes and the neighbor symmetry:
// every interior reference is mutual, every boundary marker is one of
// the four sides.
func TestGridTables_Shape(t *testing.T) {
	nx, ny := 4, 3
	xy, tris, nbrs, err := GridTables(nx, ny, 2, 1)
	if err != nil {
		t.Fatalf("GridTables: %v", err)
	}

	if len(xy) != (nx+1)*(ny+1) {
		t.Errorf("nodes = %d; want %d", len(xy), (nx+1)*(ny+1))
	}
	if len(tris) != 2*nx*ny || len(nbrs) != 2*nx*ny {
		t.Errorf("tris/nbrs = %d/%d; want %d", len(tris), len(nbrs), 2*nx*ny)
	}

	for i, nb := range nbrs {
		for _, v := range nb {
			if v < 0 {
				if v < -4 {
					t.Errorf("tri %d: bad marker %d", i, v)
				}
				continue
			}
			// Interior reference must be mutual.
			mutual := false
			for _, back := range nbrs[v] {
				if back == i {
					mutual = true
				}
			}
			if !mutual {
				t.Errorf("tri %d references %d without a back reference", i, v)
			}
		}
	}
}

// TestUnitSquare_Topology verifies the canonical counts and CCW areas.
func TestUnitSquare_Topology(t *testing.T) {
	m, err := UnitSquare()
	if err != nil {
		t.Fatalf("UnitSquare: %v", err)
	}
	m.Update()

	if m.NumNodes() != 4 || m.NumEdges() != 5 || m.NumTris() != 2 {
		t.Fatalf("counts = %d/%d/%d; want 4/5/2",
			m.NumNodes(), m.NumEdges(), m.NumTris())
	}
	for _, tr := range m.TriLeafs {
		if tr.Area <= 0 {
			t.Errorf("triangle area %g; want > 0", tr.Area)
		}
	}

	nBdryEdges := 0
	for b := range m.EachBdry() {
		nBdryEdges += b.NumEdges()
	}
	if nBdryEdges != 4 {
		t.Errorf("boundary edges = %d; want 4", nBdryEdges)
	}
}

// TestRightTriangle_Boundaries verifies the three one-edge boundaries.
func TestRightTriangle_Boundaries(t *testing.T) {
	m, err := RightTriangle(8, 1)
	if err != nil {
		t.Fatalf("RightTriangle: %v", err)
	}
	m.Update()

	if m.NumTris() != 1 || m.NumEdges() != 3 || m.NumNodes() != 3 {
		t.Fatalf("counts = %d/%d/%d; want 1/3/3",
			m.NumTris(), m.NumEdges(), m.NumNodes())
	}

	hypo := m.FindBdry(MarkerHypotenuse)
	if hypo == nil || hypo.NumEdges() != 1 {
		t.Fatalf("hypotenuse boundary missing or wrong size")
	}
	if got := m.TriLeafs[0].AspectRatio; got < 8.0 {
		t.Errorf("aspect ratio = %g; want ≥ 8", got)
	}
}
