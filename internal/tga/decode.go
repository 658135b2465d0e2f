package tga

import (
	"bufio"
	"fmt"
	"io"
)

// Decode reads a TGA image from r. Raw (types 2, 3) and run-length encoded
// (types 10, 11) files are supported. The result always has row 0 at the
// top and column 0 on the left, whatever origin the file declares.
func Decode(r io.Reader) (*Image, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	if h.IDLength > 0 {
		if _, err := br.Discard(int(h.IDLength)); err != nil {
			return nil, fmt.Errorf("tga: skip image id: %w", ErrTruncated)
		}
	}

	img := New(int(h.Width), int(h.Height), h.Format())
	if h.RLE() {
		if err := decodeRLE(br, img.pix, int(img.format)); err != nil {
			return nil, err
		}
	} else if _, err := io.ReadFull(br, img.pix); err != nil {
		return nil, fmt.Errorf("tga: read %d bytes of pixel data: %w", len(img.pix), ErrTruncated)
	}

	if h.Descriptor&DescRightToLeft != 0 {
		img.FlipHorizontal()
	}
	if h.Descriptor&DescTopToBottom == 0 {
		img.FlipVertical()
	}

	logger().Debug("tga: decoded",
		"width", img.width, "height", img.height, "bits", h.PixelDepth, "rle", h.RLE())
	return img, nil
}
