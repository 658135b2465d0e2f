package tga

import (
	"fmt"
	"image"
	"image/color"
)

// Image owns a packed pixel buffer of width*height*bpp bytes, row-major,
// row 0 at the top, each pixel stored blue, green, red, alpha.
//
// An Image is never shared: Clone makes an independent copy.
type Image struct {
	width  int
	height int
	format Format
	pix    []uint8
}

// New allocates a zeroed image. It panics if the format is not one of
// Grayscale, RGB or RGBA or if a dimension is negative.
func New(width, height int, f Format) *Image {
	if !f.Valid() {
		panic(fmt.Sprintf("tga: invalid format %d", int(f)))
	}
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("tga: invalid dimensions %dx%d", width, height))
	}
	return &Image{
		width:  width,
		height: height,
		format: f,
		pix:    make([]uint8, width*height*int(f)),
	}
}

func (img *Image) Width() int         { return img.width }
func (img *Image) Height() int        { return img.height }
func (img *Image) Format() Format     { return img.format }
func (img *Image) BytesPerPixel() int { return int(img.format) }

// Pix returns the underlying buffer. Writes through it are visible to the image.
func (img *Image) Pix() []uint8 { return img.pix }

// PixOffset returns the index of the first byte of pixel (x, y).
func (img *Image) PixOffset(x, y int) int {
	return (y*img.width + x) * int(img.format)
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// Get returns the pixel at (x, y), or the zero Color when out of range.
func (img *Image) Get(x, y int) Color {
	if !img.inBounds(x, y) {
		return Color{}
	}
	bpp := int(img.format)
	c := Color{BytesPP: bpp}
	copy(c.Raw[:bpp], img.pix[img.PixOffset(x, y):])
	return c
}

// Set writes the first bpp bytes of c at (x, y). It reports false and
// writes nothing when (x, y) is out of range.
func (img *Image) Set(x, y int, c Color) bool {
	if !img.inBounds(x, y) {
		return false
	}
	bpp := int(img.format)
	copy(img.pix[img.PixOffset(x, y):img.PixOffset(x, y)+bpp], c.Raw[:bpp])
	return true
}

// Clear zeroes every pixel.
func (img *Image) Clear() {
	clear(img.pix)
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	dup := *img
	dup.pix = make([]uint8, len(img.pix))
	copy(dup.pix, img.pix)
	return &dup
}

// Equal reports whether both images have the same size, format and bytes.
func (img *Image) Equal(o *Image) bool {
	if img.width != o.width || img.height != o.height || img.format != o.format {
		return false
	}
	for i := range img.pix {
		if img.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// FlipHorizontal mirrors every row in place.
func (img *Image) FlipHorizontal() {
	bpp := int(img.format)
	var tmp [4]uint8
	for y := 0; y < img.height; y++ {
		row := img.pix[y*img.width*bpp : (y+1)*img.width*bpp]
		for l, r := 0, img.width-1; l < r; l, r = l+1, r-1 {
			lp := row[l*bpp : (l+1)*bpp]
			rp := row[r*bpp : (r+1)*bpp]
			copy(tmp[:bpp], lp)
			copy(lp, rp)
			copy(rp, tmp[:bpp])
		}
	}
}

// FlipVertical swaps rows top to bottom in place.
func (img *Image) FlipVertical() {
	rowBytes := img.width * int(img.format)
	if rowBytes == 0 {
		return
	}
	tmp := make([]uint8, rowBytes)
	for t, b := 0, img.height-1; t < b; t, b = t+1, b-1 {
		top := img.pix[t*rowBytes : (t+1)*rowBytes]
		bottom := img.pix[b*rowBytes : (b+1)*rowBytes]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Scale resamples the image to w×h with nearest-neighbor mapping.
//
// Source rows and columns advance by integer error accumulation
// (err += oldSize until err >= newSize), so the inner loop never touches
// floating point. Destination rows that map to the same source row as the
// previous one are bulk-copied from it.
func (img *Image) Scale(w, h int) error {
	if w <= 0 || h <= 0 || img.width == 0 || img.height == 0 || w*h > MaxPixels {
		return fmt.Errorf("tga: scale %dx%d to %dx%d: %w", img.width, img.height, w, h, ErrDimensions)
	}

	bpp := int(img.format)
	srcRow := img.width * bpp
	dstRow := w * bpp
	dst := make([]uint8, w*h*bpp)

	sy, erry := 0, 0
	for y := 0; y < h; y++ {
		row := dst[y*dstRow : (y+1)*dstRow]
		if y > 0 {
			erry += img.height
			if erry < h {
				copy(row, dst[(y-1)*dstRow:y*dstRow])
				continue
			}
			sy += erry / h
			erry %= h
		}

		src := img.pix[sy*srcRow : (sy+1)*srcRow]
		sx, errx := 0, 0
		for x := 0; x < w; x++ {
			if x > 0 {
				errx += img.width
				if errx >= w {
					sx += errx / w
					errx %= w
				}
			}
			copy(row[x*bpp:(x+1)*bpp], src[sx*bpp:(sx+1)*bpp])
		}
	}

	img.pix = dst
	img.width = w
	img.height = h
	return nil
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model {
	if img.format == Grayscale {
		return color.GrayModel
	}
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image. Three-byte pixels are reported fully opaque.
func (img *Image) At(x, y int) color.Color {
	if !img.inBounds(x, y) {
		if img.format == Grayscale {
			return color.Gray{}
		}
		return color.NRGBA{}
	}
	c := img.Get(x, y)
	switch img.format {
	case Grayscale:
		return color.Gray{Y: c.Raw[0]}
	case RGB:
		return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xff}
	default:
		return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
	}
}
