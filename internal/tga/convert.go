package tga

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage converts any image.Image into an Image of the given format.
// The source is drawn onto an origin-anchored canvas first, so images with a
// non-zero Bounds().Min are handled.
func FromImage(src image.Image, f Format) *Image {
	b := src.Bounds()
	img := New(b.Dx(), b.Dy(), f)
	rect := image.Rect(0, 0, b.Dx(), b.Dy())

	if f == Grayscale {
		gray := image.NewGray(rect)
		draw.Draw(gray, rect, src, b.Min, draw.Src)
		for y := 0; y < rect.Dy(); y++ {
			copy(img.pix[y*img.width:(y+1)*img.width], gray.Pix[y*gray.Stride:])
		}
		return img
	}

	nrgba := image.NewNRGBA(rect)
	draw.Draw(nrgba, rect, src, b.Min, draw.Src)
	bpp := int(f)
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			si := nrgba.PixOffset(x, y)
			di := img.PixOffset(x, y)
			img.pix[di] = nrgba.Pix[si+2]
			img.pix[di+1] = nrgba.Pix[si+1]
			img.pix[di+2] = nrgba.Pix[si]
			if bpp == 4 {
				img.pix[di+3] = nrgba.Pix[si+3]
			}
		}
	}
	return img
}

// FormatOf picks the narrowest format that keeps the information in src.
func FormatOf(src image.Image) Format {
	switch s := src.(type) {
	case *Image:
		return s.format
	case *image.Gray, *image.Gray16:
		return Grayscale
	case *image.YCbCr:
		return RGB
	}
	if opaque, ok := src.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return RGB
	}
	return RGBA
}
