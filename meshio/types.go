// Package meshio types: sentinel errors of the mesh-file ingest.
package meshio

import "errors"

// Sentinel errors for mesh-file ingest.
var (
	// ErrNoNodes indicates a missing or empty NODES section.
	ErrNoNodes = errors.New("meshio: no nodes defined in mesh file")

	// ErrNoTris indicates a missing or empty TRIANGLES section.
	ErrNoTris = errors.New("meshio: no triangles defined in mesh file")

	// ErrNoNbrs indicates a missing or empty NEIGHBORS section.
	ErrNoNbrs = errors.New("meshio: no neighbors defined in mesh file")

	// ErrNodeFormat indicates a malformed node line.
	ErrNodeFormat = errors.New("meshio: wrong definition for node coordinates")

	// ErrTriFormat indicates a malformed triangle line.
	ErrTriFormat = errors.New("meshio: wrong definition for triangles")

	// ErrNbrFormat indicates a malformed neighbor line.
	ErrNbrFormat = errors.New("meshio: wrong definition for triangle neighbors")

	// ErrUnknownMarker indicates a boundary marker without a matching
	// boundary on the mesh.
	ErrUnknownMarker = errors.New("meshio: undefined boundary marker in mesh file")

	// ErrConnectivity indicates contradicting triangle/neighbor tables.
	ErrConnectivity = errors.New("meshio: wrong triangle connectivity in mesh")
)
