package raster

import (
	"tinyrender/internal/logging"
	"tinyrender/internal/mesh"
)

// Stats sums the Results of a render pass.
type Stats struct {
	Faces      int `json:"faces"`
	Drawn      int `json:"drawn"`
	Culled     int `json:"culled"`
	Degenerate int `json:"degenerate"`
	Pixels     int `json:"pixels"`
}

func (s *Stats) add(r Result) {
	s.Faces++
	switch {
	case r.Culled:
		s.Culled++
	case r.Degenerate:
		s.Degenerate++
	default:
		s.Drawn++
	}
	s.Pixels += r.Pixels
}

// RenderMesh rasterizes every face of m in index order into t, asking colors
// for one color per face. Vertices are taken as NDC coordinates.
func RenderMesh(m *mesh.Mesh, t *Target, colors ColorSource) Stats {
	var st Stats
	for f := 0; f < m.NumFaces(); f++ {
		v := m.Face(f)
		st.add(RasterizeTriangle(v[0], v[1], v[2], t.Frame, t.Depth, colors.FaceColor(f)))
	}
	logging.Logger().Debug("raster: mesh done",
		"faces", st.Faces, "drawn", st.Drawn, "culled", st.Culled,
		"degenerate", st.Degenerate, "pixels", st.Pixels)
	return st
}

// RenderWireframe draws the three edges of every face into t.Frame with
// DrawLine. Depth is neither tested nor written, and nothing is culled.
// It returns the number of faces outlined.
func RenderWireframe(m *mesh.Mesh, t *Target, colors ColorSource) int {
	w, h := t.Width(), t.Height()
	for f := 0; f < m.NumFaces(); f++ {
		v := m.Face(f)
		col := colors.FaceColor(f)
		for i := 0; i < 3; i++ {
			p := Viewport(v[i], w, h)
			q := Viewport(v[(i+1)%3], w, h)
			DrawLine(int(p[0]), int(p[1]), int(q[0]), int(q[1]), t.Frame, col)
		}
	}
	logging.Logger().Debug("raster: wireframe done", "faces", m.NumFaces())
	return m.NumFaces()
}
