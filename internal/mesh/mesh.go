// Package mesh loads triangle meshes for the rasterizer: an ordered list of
// vertex positions plus 0-based index triples, one triple per face.
//
// A Mesh is immutable once built. Transforms return a new Mesh.
package mesh

import (
	"fmt"
	"math"

	"tinyrender/internal/mathutil"
)

// Mesh is a read-only indexed triangle list.
type Mesh struct {
	vertices []mathutil.Vec3
	indices  []int
}

// New validates and copies the given data. len(indices) must be a multiple
// of 3 and every index must name an existing vertex.
func New(vertices []mathutil.Vec3, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh: %d indices is not a multiple of 3", len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("mesh: index %d of face %d out of range [0,%d)", idx, i/3, len(vertices))
		}
	}
	m := &Mesh{
		vertices: make([]mathutil.Vec3, len(vertices)),
		indices:  make([]int, len(indices)),
	}
	copy(m.vertices, vertices)
	copy(m.indices, indices)
	return m, nil
}

// NumVertices returns the number of vertex positions.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumFaces returns the number of triangles.
func (m *Mesh) NumFaces() int { return len(m.indices) / 3 }

// IsEmpty returns true if the mesh has no faces.
func (m *Mesh) IsEmpty() bool { return len(m.indices) == 0 }

// Vertex returns vertex i, 0 <= i < NumVertices().
func (m *Mesh) Vertex(i int) mathutil.Vec3 { return m.vertices[i] }

// FaceVertex returns the nth (0..2) vertex of face f.
func (m *Mesh) FaceVertex(f, nth int) mathutil.Vec3 {
	return m.vertices[m.indices[f*3+nth]]
}

// Face returns the three vertices of face f.
func (m *Mesh) Face(f int) [3]mathutil.Vec3 {
	return [3]mathutil.Vec3{
		m.vertices[m.indices[f*3]],
		m.vertices[m.indices[f*3+1]],
		m.vertices[m.indices[f*3+2]],
	}
}

// FaceIndices returns the vertex indices of face f.
func (m *Mesh) FaceIndices(f int) [3]int {
	return [3]int{m.indices[f*3], m.indices[f*3+1], m.indices[f*3+2]}
}

// Bounds returns the axis-aligned bounding box of all vertices.
// An empty mesh yields zero vectors.
func (m *Mesh) Bounds() (lo, hi mathutil.Vec3) {
	if len(m.vertices) == 0 {
		return lo, hi
	}
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.vertices {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}
	return lo, hi
}

// FitUnitCube centers the mesh on the origin and scales it uniformly so the
// longest bounding-box side spans [-1, 1].
func (m *Mesh) FitUnitCube() *Mesh {
	lo, hi := m.Bounds()
	center := lo.Add(hi).Scale(0.5)
	span := hi[0] - lo[0]
	for k := 1; k < 3; k++ {
		if d := hi[k] - lo[k]; d > span {
			span = d
		}
	}
	if span < 1e-12 {
		span = 1e-12
	}
	s := 2 / span
	return m.mapVertices(func(v mathutil.Vec3) mathutil.Vec3 {
		return v.Sub(center).Scale(s)
	})
}

// Transform applies r to every vertex.
func (m *Mesh) Transform(r mathutil.Mat3) *Mesh {
	return m.mapVertices(r.MulVec3)
}

func (m *Mesh) mapVertices(fn func(mathutil.Vec3) mathutil.Vec3) *Mesh {
	out := &Mesh{
		vertices: make([]mathutil.Vec3, len(m.vertices)),
		indices:  m.indices, // never written, safe to share
	}
	for i, v := range m.vertices {
		out.vertices[i] = fn(v)
	}
	return out
}
