package tga

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the fixed length of a TGA header on disk.
const HeaderSize = 18

// Image types handled by this package.
const (
	TypeColor    = 2
	TypeGray     = 3
	TypeRLEColor = 10
	TypeRLEGray  = 11
)

// MaxPixels caps width*height of decoded and scaled images, so a forged
// header cannot demand gigabytes before any pixel data is read.
const MaxPixels = 1 << 26

// Image descriptor bits.
const (
	DescRightToLeft = 0x10
	DescTopToBottom = 0x20
)

// Header mirrors the 18-byte file header, little-endian, no padding.
type Header struct {
	IDLength     uint8
	ColorMapType uint8
	ImageType    uint8
	ColorMapSpec [5]uint8
	XOrigin      uint16
	YOrigin      uint16
	Width        uint16
	Height       uint16
	PixelDepth   uint8 // bits per pixel
	Descriptor   uint8
}

// RLE reports whether the pixel data is run-length encoded.
func (h Header) RLE() bool {
	return h.ImageType == TypeRLEColor || h.ImageType == TypeRLEGray
}

// Format returns the pixel format implied by the pixel depth.
func (h Header) Format() Format {
	if h.PixelDepth%8 != 0 {
		return 0
	}
	return Format(h.PixelDepth / 8)
}

// ReadHeader reads and validates the fixed header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("tga: read header: %w: %v", ErrHeader, err)
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func (h Header) validate() error {
	if h.Width == 0 || h.Height == 0 {
		return fmt.Errorf("tga: %dx%d image: %w", h.Width, h.Height, ErrHeader)
	}
	if h.ColorMapType != 0 {
		return fmt.Errorf("tga: color map type %d: %w", h.ColorMapType, ErrUnsupported)
	}
	switch h.ImageType {
	case TypeColor, TypeGray, TypeRLEColor, TypeRLEGray:
	default:
		return fmt.Errorf("tga: image type %d: %w", h.ImageType, ErrUnsupported)
	}
	if !h.Format().Valid() {
		return fmt.Errorf("tga: pixel depth %d: %w", h.PixelDepth, ErrUnsupported)
	}
	if int(h.Width)*int(h.Height) > MaxPixels {
		return fmt.Errorf("tga: %dx%d image exceeds %d pixels: %w", h.Width, h.Height, MaxPixels, ErrDimensions)
	}
	return nil
}

func newHeader(img *Image, o *Options) Header {
	h := Header{
		Width:      uint16(img.width),
		Height:     uint16(img.height),
		PixelDepth: uint8(img.format) * 8,
	}
	switch {
	case img.format == Grayscale && o.RLE:
		h.ImageType = TypeRLEGray
	case img.format == Grayscale:
		h.ImageType = TypeGray
	case o.RLE:
		h.ImageType = TypeRLEColor
	default:
		h.ImageType = TypeColor
	}
	if !o.VerticalFlip {
		h.Descriptor = DescTopToBottom
	}
	return h
}
