// Package mesh core types: Mesh, Option, and sentinel errors.
package mesh

import (
	"errors"
	"io"
)

// Sentinel errors for mesh operations.
var (
	// ErrBdrySlot indicates a boundary slot index outside {0,1}.
	ErrBdrySlot = errors.New("mesh: boundary slot must be 0 or 1")

	// ErrBdryNotLinked indicates a boundary removal for an entity that does
	// not reference that boundary.
	ErrBdryNotLinked = errors.New("mesh: boundary is not linked to entity")
)

// Option configures a Mesh before first use.
type Option func(m *Mesh)

// WithVerbosity sets the diagnostic verbosity level (0 = silent).
// Messages of level ≤ v are written to the diagnostic sink.
func WithVerbosity(v int) Option {
	return func(m *Mesh) { m.verbosity = v }
}

// WithDiagnostics redirects diagnostic output to w (default: discarded).
func WithDiagnostics(w io.Writer) Option {
	return func(m *Mesh) { m.diag = w }
}

// Mesh is the topology store. It owns four insertion-ordered entity
// collections and the dense arrays rebuilt by Update: one node array and
// one leaf array per edge/triangle tree.
//
// The zero Mesh is not usable; construct with NewMesh.
type Mesh struct {
	nodes *stack[Node]
	edges *stack[Edge]
	tris  *stack[Tri]
	bdrys *stack[Bdry]

	// NodeArr is the dense node array, rebuilt by Update.
	NodeArr []*Node

	// EdgeLeafs and TriLeafs hold the current leaf entities, densely
	// indexed by Update. Coarsening clears slots to nil; the next Update
	// compacts them.
	EdgeLeafs []*Edge
	TriLeafs  []*Tri

	verbosity int
	diag      io.Writer
}

// NewMesh creates an empty Mesh with the given options.
// Complexity: O(1)
func NewMesh(opts ...Option) *Mesh {
	m := &Mesh{
		nodes: newStack[Node](),
		edges: newStack[Edge](),
		tris:  newStack[Tri](),
		bdrys: newStack[Bdry](),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
