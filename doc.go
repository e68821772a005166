// Package trimesh is an adaptive two-dimensional triangular mesh engine
// for edge-based incompressible-flow solvers.
//
// 🚀 What is trimesh?
//
//	A serial, in-memory library that keeps an unstructured triangulation
//	fully connected while you refine and coarsen it locally:
//
//	  • Topology store: nodes, edges, triangles, boundaries with stable
//	    identities and insertion-ordered iteration
//	  • Longest-edge bisection refinement with neighbor propagation and a
//	    refinement tree over edges and triangles
//	  • Conservative coarsening that reverses splits sibling-by-sibling
//	  • Median-dual finite-volume metrics: interior face normals, boundary
//	    half-normals and nodal control-volume areas
//
// ✨ Why choose trimesh?
//
//   - Deterministic        — every walk follows insertion order, every run reproduces
//   - Conservative         — coarsening never breaks a conforming triangulation
//   - Solver-friendly      — dense leaf arrays and per-node dual volumes, ready to index
//   - Pure Go              — no cgo, a single small dependency for tests only
//
// Everything is organized under six subpackages:
//
//	mesh/     — entity model, topology store, leaf index, dual metrics, print
//	refine/   — triangle marking and longest-edge bisection splitting
//	coarsen/  — sibling marking and edge merging
//	flowdata/ — the solver-facing container carrying refine/coarsen predicates
//	meshio/   — text mesh-file ingest (NODES/TRIANGLES/NEIGHBORS sections)
//	builder/  — canonical initial triangulations for tests and experiments
//
// Quick ASCII example:
//
//	    n3───────n2          a unit square, two CCW triangles
//	     │  T1  ╱ │          sharing the diagonal n2→n0;
//	     │    ╱   │          refining T0 bisects the diagonal
//	     │  ╱  T0 │          and both triangles split together.
//	    n0───────n1
//
// The usual cycle is: build or ingest a level-0 mesh, Refine/Coarsen with
// your predicates, then Update to refresh leaf arrays and dual metrics
// before the solver reads them.
//
//	go get github.com/katalvlaran/trimesh
package trimesh
