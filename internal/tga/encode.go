package tga

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Options controls how Encode lays out the file.
type Options struct {
	// VerticalFlip stores rows bottom-up and declares a bottom-left origin.
	// Otherwise rows are stored top-down with the top-left descriptor bit set.
	VerticalFlip bool
	// RLE selects run-length encoded image types 10/11 over raw 2/3.
	RLE bool
}

// DefaultOptions is used when Encode is given nil options.
var DefaultOptions = Options{VerticalFlip: true, RLE: true}

// Encode writes img to w as a TGA file. Decode of the output reproduces img
// exactly for any options.
func Encode(w io.Writer, img *Image, o *Options) error {
	if o == nil {
		o = &DefaultOptions
	}
	if img.width <= 0 || img.height <= 0 || img.width > math.MaxUint16 || img.height > math.MaxUint16 {
		return fmt.Errorf("tga: encode %dx%d: %w", img.width, img.height, ErrDimensions)
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, newHeader(img, o)); err != nil {
		return fmt.Errorf("tga: write header: %w", err)
	}

	pix := img.pix
	if o.VerticalFlip {
		pix = bottomUp(img)
	}

	if o.RLE {
		if err := encodeRLE(bw, pix, int(img.format)); err != nil {
			return fmt.Errorf("tga: write rle data: %w", err)
		}
	} else if _, err := bw.Write(pix); err != nil {
		return fmt.Errorf("tga: write pixel data: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tga: flush: %w", err)
	}
	return nil
}

// bottomUp returns a copy of the pixel buffer with row order reversed.
func bottomUp(img *Image) []uint8 {
	rowBytes := img.width * int(img.format)
	out := make([]uint8, len(img.pix))
	for y := 0; y < img.height; y++ {
		copy(out[(img.height-1-y)*rowBytes:], img.pix[y*rowBytes:(y+1)*rowBytes])
	}
	return out
}
