package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"tinyrender/internal/mathutil"
	"tinyrender/internal/mesh"
	"tinyrender/internal/raster"
)

func main() {
	fit := flag.Bool("fit", false, "Report after centering and scaling into the unit cube")
	yaw := flag.Float64("yaw", 0, "Rotate around Y (degrees)")
	pitch := flag.Float64("pitch", 0, "Rotate around X (degrees)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] mesh.obj [mesh.stl ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	// Dry-run target, cleared before each mesh.
	dry := raster.NewTarget(256, 256)
	errors := 0
	for _, path := range flag.Args() {
		m, err := mesh.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			errors++
			continue
		}
		if *fit {
			m = m.FitUnitCube()
		}
		if r := mathutil.YawPitch(*yaw, *pitch); !r.IsIdentity() {
			m = m.Transform(r)
		}
		report(path, m, dry)
	}
	if errors > 0 {
		os.Exit(1)
	}
}

func report(path string, m *mesh.Mesh, dry *raster.Target) {
	lo, hi := m.Bounds()
	fmt.Printf("%s: verts=%d, faces=%d\n", path, m.NumVertices(), m.NumFaces())
	fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	if lo[0] < -1 || lo[1] < -1 || lo[2] < -1 || hi[0] > 1 || hi[1] > 1 || hi[2] > 1 {
		fmt.Println("  Warning: mesh leaves the [-1,1] cube; use -fit")
	}

	// Dry run on a small target to count what the rasterizer would keep.
	dry.Clear()
	st := raster.RenderMesh(m, dry, raster.Uniform{})
	fmt.Printf("  Front-facing: %d, back-facing: %d, degenerate: %d\n", st.Drawn, st.Culled, st.Degenerate)
}
