package mesh

// calcDualMetrics computes the median-dual finite-volume metrics over
// the current leaf set: per-edge interior face normals, per-boundary-edge
// outward half-normals, and per-node control-volume areas.
//
// The dual face of an interior edge connects the centroids of its two
// triangles through the edge centroid; its normal points from the N[0]
// side toward the N[1] side. Each adjacent triangle contributes the two
// sub-triangle areas (node, edge centroid, triangle centroid) to the
// endpoint volumes, oriented so that CCW triangles yield positive areas.
// Summed over all leaf edges the nodal volumes tile the domain exactly.
//
// Normals and volumes are zeroed first; values never accumulate across
// calls.
// Complexity: O(E_leaf + N)
func (m *Mesh) calcDualMetrics() {
	for _, n := range m.NodeArr {
		n.Vol = 0.0
	}

	for _, e := range m.EdgeLeafs {
		n0, n1 := e.N[0], e.N[1]
		x0, y0 := n0.XY[0], n0.XY[1]
		x1, y1 := n1.XY[0], n1.XY[1]
		xc, yc := e.XY[0], e.XY[1]

		var dx0, dy0, dx1, dy1 float64

		if tl := e.T[0]; tl != nil {
			xt, yt := tl.XY[0], tl.XY[1]
			dx0 = xt - xc
			dy0 = yt - yc

			// (n0, centroid, tl) and (n1, tl, centroid) are CCW.
			n0.Vol += 0.5 * ((xc-x0)*(yt-y0) - (yc-y0)*(xt-x0))
			n1.Vol += 0.5 * ((xt-x1)*(yc-y1) - (yt-y1)*(xc-x1))
		}
		if tr := e.T[1]; tr != nil {
			xt, yt := tr.XY[0], tr.XY[1]
			dx1 = xc - xt
			dy1 = yc - yt

			// Mirrored orientation on the right side.
			n0.Vol += 0.5 * ((xt-x0)*(yc-y0) - (yt-y0)*(xc-x0))
			n1.Vol += 0.5 * ((xc-x1)*(yt-y1) - (yc-y1)*(xt-x1))
		}

		e.IntrNorm[0] = dy0 + dy1
		e.IntrNorm[1] = -dx0 - dx1

		if e.Bdry != nil {
			e.BdryNorm[0][0] = yc - y0
			e.BdryNorm[0][1] = -(xc - x0)
			e.BdryNorm[1][0] = y1 - yc
			e.BdryNorm[1][1] = -(x1 - xc)
		}
	}
}
