// Package coarsen reverses longest-edge bisections: it merges the four
// sub-triangles and four child edges of a split back into their parents
// and destroys the midpoint node.
//
// What:
//
//   - Coarsen walks the leaf triangle array, asks the caller's predicate
//     where to merge, and marks whole refinement-tree families through
//     the midpoint node each selected triangle was born at.
//   - Every marked leaf edge then attempts the merge: siblings are
//     recovered from the midpoint, the current outer edges and triangles
//     are rediscovered from the sub-triangles, the parents are rewired
//     to them, and the children plus the midpoint are destroyed.
//
// Why:
//
//   - Flow features move; cells refined for yesterday's shock are wasted
//     today. Reversing the split tree reclaims them without ever leaving
//     a non-conforming triangulation.
//
// The engine is intentionally conservative: if any sibling sub-triangle
// is no longer a leaf, the merge silently skips and retries on a later
// cycle, after the surrounding region has coarsened first.
//
// Complexity:
//
//   - One Coarsen call: O(leafs + s) where s is the number of merges
//     performed; each merge is O(1).
//
// Errors:
//
//   - ErrNilMesh, ErrNoCoarsenFunc: missing inputs.
//   - ErrNoMidpoint: a merge-marked edge records no midpoint node
//     (precondition violation; the merge aborts, the mesh stays usable).
//   - ErrSiblingSlot, ErrParentLost: sibling or parent recovery failed
//     (consistency violation; the mesh should be considered suspect).
package coarsen
