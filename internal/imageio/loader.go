// Package imageio reads raster images of several container formats into
// tga.Image buffers.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	ftga "github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"tinyrender/internal/logging"
	"tinyrender/internal/tga"
)

// decoders maps lower-case extensions to their image.Image decoders.
// TGA is absent: it goes through the native codec first.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".bmp":  bmp.Decode,
	".webp": webp.Decode,
}

// Supported reports whether Load knows the extension of path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := decoders[ext]
	return ok || ext == ".tga"
}

// Load reads the image at path.
//
// TGA files are decoded natively so the stored bytes come back unchanged.
// Variants the native codec rejects as unsupported (color-mapped, 16-bit)
// are retried with github.com/ftrvxmtrx/tga and converted. Other formats
// are decoded by extension and converted to the narrowest tga.Format that
// keeps their channels.
func Load(path string) (*tga.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".tga" {
		img, err := tga.Decode(bytes.NewReader(raw))
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, tga.ErrUnsupported) {
			return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
		}
		logging.Logger().Debug("imageio: native tga decode unsupported, falling back",
			"path", path, "err", err)
		src, ferr := ftga.Decode(bytes.NewReader(raw))
		if ferr != nil {
			return nil, fmt.Errorf("imageio: decode %s: %w", path, errors.Join(err, ferr))
		}
		return tga.FromImage(src, tga.FormatOf(src)), nil
	}

	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("imageio: unknown extension %q: %s", ext, path)
	}
	src, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return tga.FromImage(src, tga.FormatOf(src)), nil
}
