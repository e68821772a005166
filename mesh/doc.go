// Package mesh holds the entity model and topology store of an adaptive
// two-dimensional triangulation: nodes, edges, triangles and boundaries,
// plus the leaf index and the median-dual finite-volume metrics computed
// over the current leaf set.
//
// What:
//
//   - Mesh owns every entity; all adjacency slots, parent/child links and
//     boundary links are non-owning references between entities.
//   - Entities live on insertion-ordered stores with O(1) removal through
//     the position handle recorded at creation time.
//   - Update rebuilds the dense node array, the leaf arrays for edges and
//     triangles, the per-boundary arrays, and recomputes dual metrics.
//   - Print emits the NODES/TRIANGLES/EDGES/TRI NEIGHBORS text sections.
//
// Why:
//
//   - Repeated local refinement and coarsening demands stable identities
//     and cheap removal; dense indexing is deferred to Update so that the
//     solver always reads compact leaf arrays.
//
// Conventions (used by every subpackage):
//
//   - Triangle nodes n[0..2] are counter-clockwise; edge e[i] runs from
//     n[i] to n[(i+1)%3]; neighbor t[i] sits across the edge opposite
//     n[i], which is e[(i+1)%3].
//   - Edge endpoints are ordered n[0]→n[1]; t[0] is the triangle on the
//     left of that direction, t[1] the one on the right.
//
// Complexity:
//
//   - NewNode/NewEdge/NewTri/NewBdry, Remove*: O(1).
//   - Update: O(N + E + T) per call, Memory: O(leafs).
//
// Errors:
//
//   - Removing an entity that is not on the mesh is a programming error
//     and panics; see the Remove* docs.
//
// The package is single-threaded and not reentrant: no operation may be
// interleaved with another operation on the same Mesh.
package mesh
