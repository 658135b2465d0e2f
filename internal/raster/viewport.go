package raster

import "tinyrender/internal/mathutil"

// MaxDepth is the screen depth of NDC z = 1.
const MaxDepth = 255

// Viewport maps an NDC point in [-1,1]^3 to screen space for a w×h target:
// x to [0, w-1], y to [0, h-1] and z to [0, MaxDepth].
func Viewport(p mathutil.Vec3, w, h int) mathutil.Vec3 {
	return mathutil.Vec3{
		(p[0] + 1) * float64(w-1) / 2,
		(p[1] + 1) * float64(h-1) / 2,
		(p[2] + 1) * MaxDepth / 2,
	}
}
