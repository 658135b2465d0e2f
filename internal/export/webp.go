package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"tinyrender/internal/logging"
)

// EncodeWebP writes img as lossless WebP, resized first when size > 0.
func EncodeWebP(w io.Writer, img image.Image, size int) error {
	if err := nativewebp.Encode(w, Resize(img, size), nil); err != nil {
		return fmt.Errorf("export: webp encode: %w", err)
	}
	return nil
}

// WriteWebP encodes img to path. The file is written under a temporary name
// in the same directory and renamed into place, so a failed write never
// leaves a partial preview behind.
func WriteWebP(path string, img image.Image, size int) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".webp-*")
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = EncodeWebP(f, img, size); err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	if err = f.Chmod(0644); err != nil {
		return fmt.Errorf("export: chmod %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("export: rename %s: %w", path, err)
	}
	logging.Logger().Debug("export: wrote webp", "path", path, "size", size)
	return nil
}
