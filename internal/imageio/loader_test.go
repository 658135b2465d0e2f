package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"tinyrender/internal/tga"
)

func writeWith(t *testing.T, path string, enc func(*os.File) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := enc(f); err != nil {
		f.Close()
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 20), uint8(y * 30), uint8((x + y) % 2 * 255), 255})
		}
	}
	return img
}

func TestLoadEncodedFormats(t *testing.T) {
	src := checker(7, 5)
	dir := t.TempDir()
	tests := []struct {
		name string
		file string
		enc  func(*os.File) error
	}{
		{"png", "a.png", func(f *os.File) error { return png.Encode(f, src) }},
		{"bmp", "a.BMP", func(f *os.File) error { return bmp.Encode(f, src) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeWith(t, path, tt.enc)
			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load() = %v", err)
			}
			if img.Width() != 7 || img.Height() != 5 {
				t.Fatalf("size = %dx%d, want 7x5", img.Width(), img.Height())
			}
			if img.Format() != tga.RGB {
				t.Errorf("Format() = %v, want RGB for an opaque source", img.Format())
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 7; x++ {
					want := src.NRGBAAt(x, y)
					if got := img.Get(x, y); !got.Equal(tga.RGBColor(want.R, want.G, want.B)) {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestLoadNativeTGA(t *testing.T) {
	img := tga.New(3, 2, tga.RGBA)
	img.Set(0, 0, tga.RGBAColor(1, 2, 3, 4))
	img.Set(2, 1, tga.RGBAColor(9, 8, 7, 6))
	path := filepath.Join(t.TempDir(), "x.tga")
	if err := tga.WriteFile(path, img, nil); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if !got.Equal(img) {
		t.Error("Load() did not reproduce the written image")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.tga")
	if err := os.WriteFile(bad, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatal(err)
	}
	unknown := filepath.Join(dir, "a.xyz")
	if err := os.WriteFile(unknown, []byte{0}, 0644); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{bad, unknown, filepath.Join(dir, "missing.png")} {
		if _, err := Load(p); err == nil {
			t.Errorf("Load(%s) = nil error, want error", filepath.Base(p))
		}
	}
}

func TestSupported(t *testing.T) {
	for p, want := range map[string]bool{
		"a.tga": true, "b.PNG": true, "c.jpeg": true, "d.webp": true, "e.bmp": true,
		"f.gif": false, "noext": false,
	} {
		if got := Supported(p); got != want {
			t.Errorf("Supported(%q) = %v, want %v", p, got, want)
		}
	}
}
