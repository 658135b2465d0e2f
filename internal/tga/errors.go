package tga

import "errors"

// Decode failures wrap one of these, so callers can test with errors.Is.
var (
	ErrHeader         = errors.New("tga: invalid header")
	ErrUnsupported    = errors.New("tga: unsupported image")
	ErrTruncated      = errors.New("tga: truncated data")
	ErrPacketOverflow = errors.New("tga: rle packet exceeds pixel count")
	ErrDimensions     = errors.New("tga: invalid dimensions")
)
