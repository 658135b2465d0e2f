package main

import (
	"fmt"
	"os"
	"path/filepath"

	"tinyrender/internal/tga"
)

func describe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h, err := tga.ReadHeader(f)
	if err != nil {
		return err
	}
	origin := "bottom-left"
	if h.Descriptor&tga.DescTopToBottom != 0 {
		origin = "top-left"
	}
	if h.Descriptor&tga.DescRightToLeft != 0 {
		origin += " (right-to-left)"
	}
	fmt.Printf("%s:\n", path)
	fmt.Printf("  Size: %dx%d, %s (%d bits), type %d, RLE=%v\n",
		h.Width, h.Height, h.Format(), h.PixelDepth, h.ImageType, h.RLE())
	fmt.Printf("  Origin: %s, ID length: %d\n", origin, h.IDLength)

	img, err := tga.ReadFile(path)
	if err != nil {
		return err
	}
	nonzero := 0
	colors := make(map[[4]uint8]int)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.Get(x, y)
			if c.Raw != ([4]uint8{}) {
				nonzero++
			}
			colors[c.Raw]++
		}
	}
	total := img.Width() * img.Height()
	fmt.Printf("  Pixels: %d, non-zero: %d (%.1f%%), distinct values: %d\n",
		total, nonzero, 100*float64(nonzero)/float64(total), len(colors))
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s file.tga [file.tga ...]\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	errors := 0
	for _, p := range os.Args[1:] {
		if err := describe(p); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %s: %v\n", p, err)
			errors++
		}
	}
	if errors > 0 {
		os.Exit(1)
	}
}
