package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tinyrender/internal/logging"
	"tinyrender/internal/mathutil"
)

// ParseOBJ reads the geometry of a Wavefront OBJ stream: "v" positions and
// "f" faces. Face entries may be "i", "i/t", "i/t/n" or "i//n"; only the
// position index is used. Indices are 1-based, negative values count back
// from the last vertex defined so far. Polygons are fan-triangulated.
// Every other record (normals, texture coordinates, groups, materials) is
// ignored.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var (
		vertices []mathutil.Vec3
		indices  []int
		skipped  int
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: line %d: vertex needs 3 coordinates", line)
			}
			var v mathutil.Vec3
			for k := 0; k < 3; k++ {
				f, err := strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", line, err)
				}
				v[k] = f
			}
			vertices = append(vertices, v)

		case "f":
			poly := make([]int, 0, len(fields)-1)
			for _, seg := range fields[1:] {
				idx, err := faceIndex(seg, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", line, err)
				}
				poly = append(poly, idx)
			}
			if len(poly) < 3 {
				skipped++
				continue
			}
			for i := 1; i+1 < len(poly); i++ {
				indices = append(indices, poly[0], poly[i], poly[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}

	if skipped > 0 {
		logging.Logger().Warn("obj: skipped faces with fewer than 3 vertices", "count", skipped)
	}

	m, err := New(vertices, indices)
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	logging.Logger().Debug("obj: parsed", "vertices", m.NumVertices(), "faces", m.NumFaces())
	return m, nil
}

// faceIndex converts one face entry to a 0-based vertex index.
func faceIndex(seg string, nverts int) (int, error) {
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		return 0, fmt.Errorf("face index %q: %w", seg, err)
	}
	switch {
	case n > 0:
		return n - 1, nil
	case n < 0:
		return nverts + n, nil
	}
	return 0, fmt.Errorf("face index 0 is invalid")
}

// LoadOBJ parses the OBJ file at path.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
