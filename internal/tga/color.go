package tga

// Format is the number of bytes a pixel occupies.
type Format int

const (
	Grayscale Format = 1
	RGB       Format = 3
	RGBA      Format = 4
)

// Valid reports whether f is one of the supported pixel formats.
func (f Format) Valid() bool {
	return f == Grayscale || f == RGB || f == RGBA
}

func (f Format) String() string {
	switch f {
	case Grayscale:
		return "grayscale"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	}
	return "invalid"
}

// Color is one pixel value in blue, green, red, alpha byte order.
// BytesPP says how many leading bytes of Raw are meaningful (1, 3 or 4).
// The zero Color has no meaningful bytes and is what out-of-range reads return.
type Color struct {
	Raw     [4]uint8
	BytesPP int
}

// BGRA builds a 4-byte color from channels in storage order.
func BGRA(b, g, r, a uint8) Color {
	return Color{Raw: [4]uint8{b, g, r, a}, BytesPP: 4}
}

// RGBColor builds a 3-byte color.
func RGBColor(r, g, b uint8) Color {
	return Color{Raw: [4]uint8{b, g, r, 0}, BytesPP: 3}
}

// RGBAColor builds a 4-byte color.
func RGBAColor(r, g, b, a uint8) Color {
	return Color{Raw: [4]uint8{b, g, r, a}, BytesPP: 4}
}

// GrayColor builds a single-channel color.
func GrayColor(v uint8) Color {
	return Color{Raw: [4]uint8{v}, BytesPP: 1}
}

func (c Color) B() uint8 { return c.Raw[0] }
func (c Color) G() uint8 { return c.Raw[1] }
func (c Color) R() uint8 { return c.Raw[2] }
func (c Color) A() uint8 { return c.Raw[3] }

// Equal compares the meaningful bytes of two colors. Colors with a
// different BytesPP are never equal.
func (c Color) Equal(o Color) bool {
	if c.BytesPP != o.BytesPP {
		return false
	}
	for i := 0; i < c.BytesPP && i < len(c.Raw); i++ {
		if c.Raw[i] != o.Raw[i] {
			return false
		}
	}
	return true
}
