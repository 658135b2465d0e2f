package raster

import (
	"math/rand/v2"

	"tinyrender/internal/tga"
)

// ColorSource picks the fill color of each face.
type ColorSource interface {
	FaceColor(face int) tga.Color
}

// Uniform paints every face with the same color.
type Uniform tga.Color

func (u Uniform) FaceColor(int) tga.Color { return tga.Color(u) }

// RandomColors draws an independent random RGB color per call, each channel
// in [0, 255). The sequence depends only on the seed and the call order,
// so a sequential render pass with the same seed is reproducible.
//
// Not safe for concurrent use; give each render pass its own.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors returns a PCG-backed color source.
func NewRandomColors(seed uint64) *RandomColors {
	return &RandomColors{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *RandomColors) FaceColor(int) tga.Color {
	return tga.RGBColor(
		uint8(r.rng.IntN(255)),
		uint8(r.rng.IntN(255)),
		uint8(r.rng.IntN(255)),
	)
}
