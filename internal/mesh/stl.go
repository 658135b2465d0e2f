package mesh

import (
	"fmt"

	"github.com/fogleman/fauxgl"

	"tinyrender/internal/mathutil"
)

// LoadSTL reads an ASCII or binary STL file. STL stores unindexed triangles;
// identical positions are merged so the result is a proper indexed mesh.
func LoadSTL(path string) (*Mesh, error) {
	fm, err := fauxgl.LoadSTL(path)
	if err != nil {
		return nil, fmt.Errorf("stl: load %s: %w", path, err)
	}
	return fromFauxgl(fm)
}

func fromFauxgl(fm *fauxgl.Mesh) (*Mesh, error) {
	seen := make(map[mathutil.Vec3]int)
	var (
		vertices []mathutil.Vec3
		indices  []int
	)
	for _, t := range fm.Triangles {
		for _, v := range [3]fauxgl.Vertex{t.V1, t.V2, t.V3} {
			p := mathutil.Vec3{v.Position.X, v.Position.Y, v.Position.Z}
			idx, ok := seen[p]
			if !ok {
				idx = len(vertices)
				seen[p] = idx
				vertices = append(vertices, p)
			}
			indices = append(indices, idx)
		}
	}
	return New(vertices, indices)
}
