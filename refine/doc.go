// Package refine implements longest-edge bisection refinement of an
// adaptive triangulation.
//
// What:
//
//   - Refine walks all triangles, asks the caller's predicate where to
//     adapt, and marks each selected leaf together with its longest edge
//     and the paired triangle across that edge.
//   - Every marked edge is then split: a midpoint node, two collinear
//     half edges, and per adjacent triangle two sub-triangles plus one
//     vertical edge to the opposite vertex. All adjacency — edge↔triangle
//     reciprocity, neighbor slots, boundary membership, refinement-tree
//     links — is rewired in place.
//   - Optional aspect-ratio passes re-mark leaves whose longest/shortest
//     edge ratio exceeds the configured bound, up to MaxPasses rounds.
//
// Why:
//
//   - Bisecting the longest edge on both sides keeps the triangulation
//     conforming without hanging nodes, and the pair marking makes one
//     split serve both triangles.
//
// Complexity:
//
//   - One Refine call: O(T + E + s) where s is the number of splits
//     performed; each split is O(1).
//
// Errors:
//
//   - ErrNilMesh, ErrNoRefineFunc: missing inputs.
//   - ErrNoAdjacentTri: a marked edge has no triangle on either side
//     (precondition violation; the split aborts, the store is untouched).
//   - ErrNoEdges: a triangle without edges was marked (hard error).
//   - ErrEdgeNotInTri, ErrTriNotOnEdge: a rotation or identity search
//     failed (consistency violation; the mesh should be considered
//     suspect).
package refine
