// Package flowdata defines the solver-facing container that ties a mesh
// to the refinement and coarsening predicates driving adaptation.
//
// What:
//
//   - FlowData carries the mesh plus the two injected callables; the
//     refine and coarsen engines read them, the flow solver owns them.
//   - Predicates receive the FlowData and one triangle, and decide from
//     flow state and triangle geometry whether to adapt there.
//
// Why:
//
//   - The mesh engine never inspects flow fields itself; adaptation
//     criteria (gradients, error indicators, feature boxes) stay with
//     the caller, injected as plain functions.
//
// Predicates must be pure with respect to mesh topology: they may read
// node coordinates, centroid, area and aspect ratio, but must not mutate
// the mesh.
package flowdata
