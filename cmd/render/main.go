package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tinyrender/internal/batch"
	"tinyrender/internal/config"
	"tinyrender/internal/logging"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Output width in pixels (default: 800)")
	height := flag.Int("height", 0, "Output height in pixels (default: 800)")
	outputDir := flag.String("output", "", "Output directory (default: current directory)")
	seed := flag.Uint64("seed", 0, "Seed for per-face colors (default: clock)")
	mode := flag.String("mode", "", "Render mode: solid or wireframe (default: solid)")
	noRLE := flag.Bool("norle", false, "Write uncompressed TGA")
	noFlip := flag.Bool("noflip", false, "Store rows top-to-bottom")
	fit := flag.Bool("fit", false, "Center and scale each mesh into the unit cube")
	yaw := flag.Float64("yaw", 0, "Rotate mesh around Y (degrees)")
	pitch := flag.Float64("pitch", 0, "Rotate mesh around X (degrees)")
	webp := flag.Bool("webp", false, "Also write WebP previews")
	previewSize := flag.Int("preview", 0, "Longer side of WebP previews (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] mesh.obj [mesh.stl ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	logging.SetLogger(logging.NewText(os.Stderr, *verbose))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:       *width,
		Height:      *height,
		OutputDir:   *outputDir,
		Seed:        *seed,
		Mode:        *mode,
		NoRLE:       *noRLE,
		NoFlip:      *noFlip,
		Fit:         *fit,
		Yaw:         *yaw,
		Pitch:       *pitch,
		WebP:        *webp,
		PreviewSize: *previewSize,
		Workers:     *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meshes := flag.Args()
	fmt.Printf("Software rasterizer → TGA (%s, %dx%d)\n", cfg.Mode, cfg.Width, cfg.Height)
	fmt.Printf("Meshes: %d, Workers: %d, Seed: %d\n", len(meshes), cfg.Workers, cfg.Seed)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(cfg, meshes)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
			continue
		}
		s := r.Stats
		fmt.Printf("  %s: %d faces (%d drawn, %d culled, %d degenerate), %d pixels\n",
			r.Mesh, s.Faces, s.Drawn, s.Culled, s.Degenerate, s.Pixels)
		fmt.Printf("    %s", r.Frame)
		if r.Depth != "" {
			fmt.Printf(", %s", r.Depth)
		}
		fmt.Println()
	}

	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(20, len(failed))] {
			fmt.Printf("  %s: %s\n", r.Mesh, r.Error)
		}
	}

	// Write manifest for batch runs
	if len(meshes) > 1 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		m := batch.NewManifest(cfg.Width, cfg.Height, cfg.Mode, results)
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest dir: %v\n", err)
		} else if err := batch.WriteManifest(manifestPath, m); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
