// Package builder constructs canonical initial triangulations: the unit
// square, uniformly triangulated rectangles, and a single right
// triangle.
//
// What:
//
//   - Grid(nx, ny, w, h) — a w×h rectangle cut into nx×ny cells, each
//     split along the lower-left→upper-right diagonal; boundaries SOUTH,
//     EAST, NORTH, WEST with markers 1..4.
//   - UnitSquare() — the same square as Grid(1,1,1,1) with its nodes
//     numbered counter-clockwise from the origin: four nodes, five
//     edges, two CCW triangles sharing the diagonal n0–n2.
//   - RightTriangle(legX, legY) — one triangle with legs on SOUTH and
//     WEST and the hypotenuse on its own boundary.
//
// Why:
//
//   - Refinement and coarsening experiments, examples and tests all need
//     small, valid level-0 meshes with known topology; hand-wiring the
//     adjacency per test is noise and easy to get wrong.
//
// All builders produce meshes satisfying the full connectivity
// invariants; the tables are wired through meshio.Assemble, the same
// routine the file ingest uses.
//
// Complexity:
//
//   - Grid: O(nx·ny), Memory: O(nx·ny).
//
// Errors:
//
//   - ErrBadDims: non-positive cell counts or extents.
package builder
