package raster

import "tinyrender/internal/tga"

// Target is one render pass's output: an RGB frame buffer and an 8-bit
// grayscale depth buffer of the same size. Both start zeroed, which is the
// farthest representable depth.
//
// A Target is owned by a single render pass; the rasterizer does no locking.
type Target struct {
	Frame *tga.Image
	Depth *tga.Image
}

// NewTarget allocates zeroed buffers of w×h pixels.
func NewTarget(w, h int) *Target {
	return &Target{
		Frame: tga.New(w, h, tga.RGB),
		Depth: tga.New(w, h, tga.Grayscale),
	}
}

func (t *Target) Width() int  { return t.Frame.Width() }
func (t *Target) Height() int { return t.Frame.Height() }

// Clear resets both buffers for another pass.
func (t *Target) Clear() {
	t.Frame.Clear()
	t.Depth.Clear()
}

// FlipVertical flips both buffers. The rasterizer writes with y growing
// upward, so drivers flip once before saving to get an upright picture.
func (t *Target) FlipVertical() {
	t.Frame.FlipVertical()
	t.Depth.FlipVertical()
}
