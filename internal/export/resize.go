// Package export writes preview images of render output.
package export

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit returns the size of a w×h image scaled so its longer side is size,
// keeping the aspect ratio. Neither side drops below 1.
func Fit(w, h, size int) (int, int) {
	if w >= h {
		return size, max(1, h*size/w)
	}
	return max(1, w*size/h), size
}

// Resize copies src into a new NRGBA image whose longer side is size,
// filtering with Catmull-Rom. A size <= 0 or equal to the current longer
// side only converts.
func Resize(src image.Image, size int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || w == 0 || h == 0 || size == max(w, h) {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}

	dw, dh := Fit(w, h, size)
	// Scale through a premultiplied buffer so transparent edges do not halo.
	premul := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(premul, premul.Bounds(), src, b, draw.Src, nil)

	dst := image.NewNRGBA(premul.Bounds())
	draw.Draw(dst, dst.Bounds(), premul, image.Point{}, draw.Src)
	return dst
}
