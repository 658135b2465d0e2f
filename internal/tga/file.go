package tga

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile decodes the TGA file at path.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tga: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("tga: decode %s: %w", path, err)
	}
	return img, nil
}

// WriteFile encodes img into path. The data goes to a temporary file in the
// same directory that is renamed over path only after a complete write, so a
// failure never leaves a partial file behind.
func WriteFile(path string, img *Image, o *Options) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("tga: create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, img, o); err != nil {
		return fmt.Errorf("tga: encode %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("tga: close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("tga: chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("tga: rename into %s: %w", path, err)
	}

	logger().Debug("tga: wrote file", "path", path, "width", img.width, "height", img.height)
	return nil
}
