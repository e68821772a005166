package builder

import (
	"errors"

	"github.com/katalvlaran/trimesh/mesh"
	"github.com/katalvlaran/trimesh/meshio"
)

// ErrBadDims indicates non-positive cell counts or extents.
var ErrBadDims = errors.New("builder: grid dimensions must be positive")

// Boundary markers and names shared by all builders.
const (
	MarkerSouth      = 1
	MarkerEast       = 2
	MarkerNorth      = 3
	MarkerWest       = 4
	MarkerHypotenuse = 2

	NameSouth      = "SOUTH"
	NameEast       = "EAST"
	NameNorth      = "NORTH"
	NameWest       = "WEST"
	NameHypotenuse = "HYPOTENUSE"
)

// UnitSquare builds the canonical two-triangle unit square:
//
//	n3───────n2
//	 │  T1  ╱ │
//	 │    ╱   │
//	 │  ╱  T0 │
//	n0───────n1
//
// T0 = (n0,n1,n2) and T1 = (n2,n3,n0) share the diagonal n2→n0; the
// boundaries are SOUTH, EAST, NORTH, WEST as in Grid.
// Complexity: O(1)
func UnitSquare(opts ...mesh.Option) (*mesh.Mesh, error) {
	m := mesh.NewMesh(opts...)
	m.NewBdry(MarkerSouth, NameSouth)
	m.NewBdry(MarkerEast, NameEast)
	m.NewBdry(MarkerNorth, NameNorth)
	m.NewBdry(MarkerWest, NameWest)
	xy := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tris := [][3]int{{0, 1, 2}, {2, 3, 0}}
	nbrs := [][3]int{{-MarkerEast, 1, -MarkerSouth}, {-MarkerWest, 0, -MarkerNorth}}
	if err := meshio.Assemble(m, xy, tris, nbrs); err != nil {
		return nil, err
	}

	return m, nil
}

// Grid builds a w×h rectangle triangulated into nx×ny cells, every cell
// split along its lower-left→upper-right diagonal, with boundaries
// SOUTH, EAST, NORTH, WEST (markers 1..4).
// Complexity: O(nx·ny)
func Grid(nx, ny int, w, h float64, opts ...mesh.Option) (*mesh.Mesh, error) {
	xy, tris, nbrs, err := GridTables(nx, ny, w, h)
	if err != nil {
		return nil, err
	}

	m := mesh.NewMesh(opts...)
	m.NewBdry(MarkerSouth, NameSouth)
	m.NewBdry(MarkerEast, NameEast)
	m.NewBdry(MarkerNorth, NameNorth)
	m.NewBdry(MarkerWest, NameWest)

	if err = meshio.Assemble(m, xy, tris, nbrs); err != nil {
		return nil, err
	}

	return m, nil
}

// GridTables returns the node/triangle/neighbor tables of Grid without
// building a mesh, in the layout the mesh-file ingest consumes. Tests
// use it to generate valid mesh files of any size.
// Complexity: O(nx·ny)
func GridTables(nx, ny int, w, h float64) (xy [][2]float64, tris, nbrs [][3]int, err error) {
	if nx < 1 || ny < 1 || w <= 0 || h <= 0 {
		return nil, nil, nil, ErrBadDims
	}

	node := func(i, j int) int { return j*(nx+1) + i }
	low := func(i, j int) int { return 2 * (j*nx + i) }

	xy = make([][2]float64, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			xy[node(i, j)] = [2]float64{w * float64(i) / float64(nx), h * float64(j) / float64(ny)}
		}
	}

	tris = make([][3]int, 2*nx*ny)
	nbrs = make([][3]int, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v00 := node(i, j)
			v10 := node(i+1, j)
			v11 := node(i+1, j+1)
			v01 := node(i, j+1)

			tl := low(i, j)
			tu := tl + 1
			tris[tl] = [3]int{v00, v10, v11}
			tris[tu] = [3]int{v11, v01, v00}

			// Lower triangle: right vertical, diagonal, bottom.
			east := -MarkerEast
			if i < nx-1 {
				east = low(i+1, j) + 1
			}
			south := -MarkerSouth
			if j > 0 {
				south = low(i, j-1) + 1
			}
			nbrs[tl] = [3]int{east, tu, south}

			// Upper triangle: left vertical, diagonal, top.
			west := -MarkerWest
			if i > 0 {
				west = low(i-1, j)
			}
			north := -MarkerNorth
			if j < ny-1 {
				north = low(i, j+1)
			}
			nbrs[tu] = [3]int{west, tl, north}
		}
	}

	return xy, tris, nbrs, nil
}

// RightTriangle builds a single right triangle with legs legX and legY
// on the SOUTH and WEST boundaries and the hypotenuse on its own
// HYPOTENUSE boundary.
// Complexity: O(1)
func RightTriangle(legX, legY float64, opts ...mesh.Option) (*mesh.Mesh, error) {
	if legX <= 0 || legY <= 0 {
		return nil, ErrBadDims
	}

	m := mesh.NewMesh(opts...)
	m.NewBdry(MarkerSouth, NameSouth)
	m.NewBdry(MarkerHypotenuse, NameHypotenuse)
	m.NewBdry(MarkerWest, NameWest)

	xy := [][2]float64{{0, 0}, {legX, 0}, {0, legY}}
	tris := [][3]int{{0, 1, 2}}
	nbrs := [][3]int{{-MarkerHypotenuse, -MarkerWest, -MarkerSouth}}

	if err := meshio.Assemble(m, xy, tris, nbrs); err != nil {
		return nil, err
	}

	return m, nil
}
