package mesh

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load picks a loader by file extension (.obj or .stl).
func Load(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".stl":
		return LoadSTL(path)
	default:
		return nil, fmt.Errorf("mesh: unknown extension %q for %s", ext, path)
	}
}
