// File: refine/example_test.go
package refine_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trimesh/builder"
	"github.com/katalvlaran/trimesh/flowdata"
	"github.com/katalvlaran/trimesh/mesh"
	"github.com/katalvlaran/trimesh/refine"
)

// ExampleRefine demonstrates three adaptation cycles on the unit square
// with a feature-box predicate near the right wall.
//
// Scenario:
//
//   - Start from the canonical two-triangle unit square.
//   - Refine wherever the triangle centroid sits near x = 0.75.
//   - Update between cycles so the predicate sees fresh leaves.
//
// Complexity: O(T + E) per cycle.
func ExampleRefine() {
	m, _ := builder.UnitSquare()
	m.Update()

	fd := flowdata.New(m)
	fd.RefineFn = func(_ *flowdata.FlowData, t *mesh.Tri) bool {
		return math.Abs(t.XY[0]-0.75) < 0.2
	}

	for cycle := 1; cycle <= 3; cycle++ {
		if err := refine.Refine(fd, refine.DefaultOptions()); err != nil {
			fmt.Println("refine:", err)
			return
		}
		m.Update()
		fmt.Printf("cycle %d: %d leaf triangles, %d leaf edges\n",
			cycle, len(m.TriLeafs), len(m.EdgeLeafs))
	}

	vol := 0.0
	for _, n := range m.NodeArr {
		vol += n.Vol
	}
	fmt.Printf("domain area from nodal volumes: %.3f\n", vol)

	// Output:
	// cycle 1: 4 leaf triangles, 8 leaf edges
	// cycle 2: 5 leaf triangles, 10 leaf edges
	// cycle 3: 9 leaf triangles, 16 leaf edges
	// domain area from nodal volumes: 1.000
}
