package meshio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/trimesh/mesh"
)

// Section keywords of the mesh-file format.
const (
	kwNodes = "NODES"
	kwTris  = "TRIANGLES"
	kwNbrs  = "NEIGHBORS"
)

// ReadMesh reads the mesh file at path and populates m with its level-0
// entities. Boundaries referenced by negative neighbor markers must
// already exist on the mesh (mesh.NewBdry) before the call.
//
// On a format error the ingest returns without populating further
// entities; anything created up to that point stays owned by the mesh.
// Complexity: O(file + N + T)
func ReadMesh(path string, m *mesh.Mesh) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("meshio: %w", err)
	}

	lines := filterComments(strings.Split(string(data), "\n"))

	xy, err := readNodeSection(lines)
	if err != nil {
		return err
	}
	tris, err := readIndexSection(lines, kwTris, ErrNoTris, ErrTriFormat)
	if err != nil {
		return err
	}
	nbrs, err := readIndexSection(lines, kwNbrs, ErrNoNbrs, ErrNbrFormat)
	if err != nil {
		return err
	}
	if len(nbrs) != len(tris) {
		return ErrConnectivity
	}

	return Assemble(m, xy, tris, nbrs)
}

// filterComments drops every line containing '#'.
func filterComments(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, ln := range lines {
		if strings.Contains(ln, "#") {
			continue
		}
		kept = append(kept, ln)
	}

	return kept
}

// findSection locates the keyword line and returns the declared entry
// count and the index of the first data line. Unknown keywords are
// skipped over like any other line.
func findSection(lines []string, keyword string) (count, start int, ok bool) {
	for i, ln := range lines {
		fields := strings.Fields(ln)
		if len(fields) < 2 || fields[0] != keyword {
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return 0, 0, false
		}

		return n, i + 1, true
	}

	return 0, 0, false
}

// readNodeSection parses the NODES section into coordinates indexed by
// node id.
func readNodeSection(lines []string) ([][2]float64, error) {
	count, start, ok := findSection(lines, kwNodes)
	if !ok {
		return nil, ErrNoNodes
	}
	if start+count > len(lines) {
		return nil, ErrNodeFormat
	}

	xy := make([][2]float64, count)
	for _, ln := range lines[start : start+count] {
		fields := splitColumns(ln)
		if len(fields) != 3 {
			return nil, ErrNodeFormat
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil || id < 0 || id >= count {
			return nil, ErrNodeFormat
		}
		for k := 0; k < 2; k++ {
			if xy[id][k], err = strconv.ParseFloat(fields[k+1], 64); err != nil {
				return nil, ErrNodeFormat
			}
		}
	}

	return xy, nil
}

// readIndexSection parses TRIANGLES or NEIGHBORS into integer triples
// indexed by triangle id.
func readIndexSection(lines []string, keyword string, errMissing, errFormat error) ([][3]int, error) {
	count, start, ok := findSection(lines, keyword)
	if !ok {
		return nil, errMissing
	}
	if start+count > len(lines) {
		return nil, errFormat
	}

	idx := make([][3]int, count)
	for _, ln := range lines[start : start+count] {
		fields := splitColumns(ln)
		if len(fields) != 4 {
			return nil, errFormat
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil || id < 0 || id >= count {
			return nil, errFormat
		}
		for k := 0; k < 3; k++ {
			if idx[id][k], err = strconv.Atoi(fields[k+1]); err != nil {
				return nil, errFormat
			}
		}
	}

	return idx, nil
}

// splitColumns splits a tab-separated data line into trimmed fields.
func splitColumns(ln string) []string {
	raw := strings.Split(ln, "\t")
	fields := make([]string, 0, len(raw))
	for _, f := range raw {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}

	return fields
}
