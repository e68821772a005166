// Package meshio ingests text mesh files into a mesh.Mesh.
//
// What:
//
//   - ReadMesh parses the NODES, TRIANGLES and NEIGHBORS sections of a
//     UTF-8 mesh file and populates the mesh through its public
//     constructors.
//   - Assemble wires parsed (or generated) node/triangle/neighbor tables
//     into a fully connected level-0 triangulation: interior edges are
//     created exactly once, negative neighbor entries become boundary
//     edges on the pre-existing boundary with that marker.
//
// File format:
//
//   - Keyword lines introduce sections; subsequent lines hold
//     tab-separated numeric fields. Lines containing '#' and unknown
//     keywords are ignored.
//   - NODES n     then n lines: id x y            (id ∈ [0,n))
//   - TRIANGLES n then n lines: id v0 v1 v2       (CCW node indices)
//   - NEIGHBORS n then n lines: id nb0 nb1 nb2    (nbk ≥ 0 a triangle
//     index across the edge opposite node k, or -m for boundary marker m)
//
// Why:
//
//   - The engine itself never touches files; solvers hand it a path and
//     the boundaries they expect, and read leaf arrays afterwards.
//
// Errors:
//
//   - ErrNoNodes, ErrNoTris, ErrNoNbrs: a section is missing or empty.
//   - ErrNodeFormat, ErrTriFormat, ErrNbrFormat: wrong column count or a
//     non-numeric field. Ingest stops; entities created so far stay
//     owned by the mesh.
//   - ErrUnknownMarker: a negative neighbor references a boundary marker
//     not present on the mesh.
//   - ErrConnectivity: the triangle tables contradict each other.
package meshio
