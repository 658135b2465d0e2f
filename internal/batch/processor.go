// Package batch renders many mesh files concurrently. Every job is an
// independent render pass with its own buffers and color source, so the
// single-threaded rasterizer is never shared between goroutines.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"tinyrender/internal/config"
	"tinyrender/internal/export"
	"tinyrender/internal/logging"
	"tinyrender/internal/mathutil"
	"tinyrender/internal/mesh"
	"tinyrender/internal/raster"
	"tinyrender/internal/tga"
)

// Result holds the outcome of rendering one mesh.
type Result struct {
	Mesh         string       `json:"mesh"`
	Seed         uint64       `json:"seed"`
	Frame        string       `json:"frame,omitempty"`
	Depth        string       `json:"depth,omitempty"`
	FramePreview string       `json:"frame_preview,omitempty"`
	DepthPreview string       `json:"depth_preview,omitempty"`
	Stats        raster.Stats `json:"stats"`
	Success      bool         `json:"success"`
	Error        string       `json:"error,omitempty"`
}

// Run renders all meshes using a worker pool of cfg.Workers goroutines.
// cfg must already be resolved. Results are in input order; job i uses
// seed cfg.Seed+i.
func Run(cfg config.Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	names := OutputPrefixes(paths)
	var processed atomic.Int64

	workers := max(1, min(cfg.Workers, total))
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logging.Logger().Info("batch: progress", "done", p, "total", total, "per_sec", rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = Render(cfg, paths[idx], names[idx], cfg.Seed+uint64(idx))
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	logging.Logger().Debug("batch: finished", "meshes", total, "workers", workers, "elapsed", time.Since(start))
	return results
}

// OutputPrefixes returns the file-name prefix for each input. A single input
// gets no prefix; otherwise each output is prefixed with the mesh file stem,
// made unique with the lowest free numeric suffix when names collide.
func OutputPrefixes(paths []string) []string {
	out := make([]string, len(paths))
	if len(paths) < 2 {
		return out
	}
	taken := make(map[string]bool, len(paths))
	for i, p := range paths {
		stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		name := stem
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s_%d", stem, n)
		}
		taken[name] = true
		out[i] = name + "_"
	}
	return out
}

// Render performs one complete render pass of the mesh at path and writes
// its outputs into cfg.OutputDir, each file name prefixed with prefix.
func Render(cfg config.Config, path, prefix string, seed uint64) Result {
	res := Result{Mesh: path, Seed: seed}
	fail := func(err error) Result {
		res.Error = err.Error()
		logging.Logger().Warn("batch: render failed", "mesh", path, "err", err)
		return res
	}

	m, err := mesh.Load(path)
	if err != nil {
		return fail(err)
	}
	if m.IsEmpty() {
		return fail(fmt.Errorf("batch: %s has no faces", path))
	}
	if cfg.Fit {
		m = m.FitUnitCube()
	}
	if r := mathutil.YawPitch(cfg.Yaw, cfg.Pitch); !r.IsIdentity() {
		m = m.Transform(r)
	}

	target := raster.NewTarget(cfg.Width, cfg.Height)
	colors := raster.NewRandomColors(seed)
	solid := cfg.Mode != config.ModeWireframe
	if solid {
		res.Stats = raster.RenderMesh(m, target, colors)
	} else {
		res.Stats.Faces = raster.RenderWireframe(m, target, colors)
		res.Stats.Drawn = res.Stats.Faces
	}
	// Row 0 of the buffers is the bottom of the picture.
	target.FlipVertical()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fail(fmt.Errorf("batch: mkdir %s: %w", cfg.OutputDir, err))
	}

	opts := cfg.TGAOptions()
	res.Frame = filepath.Join(cfg.OutputDir, prefix+cfg.FrameFile)
	if err := tga.WriteFile(res.Frame, target.Frame, opts); err != nil {
		return fail(err)
	}
	if solid {
		res.Depth = filepath.Join(cfg.OutputDir, prefix+cfg.DepthFile)
		if err := tga.WriteFile(res.Depth, target.Depth, opts); err != nil {
			return fail(err)
		}
	}

	if cfg.WebPPreview {
		res.FramePreview = previewPath(res.Frame)
		if err := export.WriteWebP(res.FramePreview, target.Frame, cfg.PreviewSize); err != nil {
			return fail(err)
		}
		if solid {
			res.DepthPreview = previewPath(res.Depth)
			if err := export.WriteWebP(res.DepthPreview, target.Depth, cfg.PreviewSize); err != nil {
				return fail(err)
			}
		}
	}

	res.Success = true
	return res
}

func previewPath(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p)) + ".webp"
}
