package raster

import (
	"math"

	"tinyrender/internal/mathutil"
	"tinyrender/internal/tga"
)

// pixelCenter offsets an integer pixel coordinate to its sample point.
var pixelCenter = mathutil.Vec2{0.5, 0.5}

// Result describes what RasterizeTriangle did with one triangle.
type Result struct {
	Culled     bool // back-facing, nothing written
	Degenerate bool // zero area, aborted
	Pixels     int  // pixels that passed the depth test
}

// Drawn reports whether the triangle reached the pixel loop and finished it.
func (r Result) Drawn() bool { return !r.Culled && !r.Degenerate }

// RasterizeTriangle fills the NDC triangle abc into fb with col, keeping the
// fragment at each pixel whose 8-bit depth is strictly greater than the value
// already in zb.
//
// Back faces are detected from screen-space winding: clockwise triangles are
// discarded. That is only equivalent to world-space culling for the
// orthographic, axis-aligned camera this package assumes (looking down -z
// with the mesh already in NDC).
//
// Pixels are sampled at their centers. The first degenerate barycentric
// solve aborts the whole triangle.
func RasterizeTriangle(a, b, c mathutil.Vec3, fb, zb *tga.Image, col tga.Color) Result {
	w, h := fb.Width(), fb.Height()
	var res Result
	if w == 0 || h == 0 {
		return res
	}

	sa := Viewport(a, w, h)
	sb := Viewport(b, w, h)
	sc := Viewport(c, w, h)

	ab := mathutil.Vec3{sb[0] - sa[0], sb[1] - sa[1], 0}
	ac := mathutil.Vec3{sc[0] - sa[0], sc[1] - sa[1], 0}
	if ab.Cross(ac)[2] < 0 {
		res.Culled = true
		return res
	}

	minX := clamp(int(math.Floor(min(sa[0], sb[0], sc[0]))), 0, w-1)
	maxX := clamp(int(math.Floor(max(sa[0], sb[0], sc[0]))), 0, w-1)
	minY := clamp(int(math.Floor(min(sa[1], sb[1], sc[1]))), 0, h-1)
	maxY := clamp(int(math.Floor(max(sa[1], sb[1], sc[1]))), 0, h-1)

	a2, b2, c2 := sa.XY(), sb.XY(), sc.XY()
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			p := mathutil.Vec2{float64(x), float64(y)}.Add(pixelCenter)
			bc := mathutil.Barycentric(p, a2, b2, c2)
			if math.IsNaN(bc[0]) {
				res.Degenerate = true
				return res
			}
			if !mathutil.InsideTriangle(bc) {
				continue
			}
			z := depth(bc[0]*sa[2] + bc[1]*sb[2] + bc[2]*sc[2])
			if z <= zb.Get(x, y).Raw[0] {
				continue
			}
			zb.Set(x, y, tga.GrayColor(z))
			fb.Set(x, y, col)
			res.Pixels++
		}
	}
	return res
}

// depth truncates an interpolated screen depth to the 8-bit buffer range.
func depth(z float64) uint8 {
	switch {
	case z <= 0 || math.IsNaN(z):
		return 0
	case z >= MaxDepth:
		return MaxDepth
	}
	return uint8(z)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
