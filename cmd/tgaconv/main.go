package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tinyrender/internal/export"
	"tinyrender/internal/imageio"
	"tinyrender/internal/logging"
	"tinyrender/internal/tga"
)

func main() {
	flipV := flag.Bool("flipv", false, "Flip vertically before writing")
	flipH := flag.Bool("fliph", false, "Flip horizontally before writing")
	scale := flag.String("scale", "", "Resize to WxH (nearest neighbor)")
	format := flag.String("format", "", "Convert to gray, rgb or rgba (default: keep)")
	noRLE := flag.Bool("norle", false, "Write uncompressed TGA")
	noFlip := flag.Bool("noflip", false, "Store rows top-to-bottom")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input output.{tga,webp}\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	logging.SetLogger(logging.NewText(os.Stderr, *verbose))

	in, out := flag.Arg(0), flag.Arg(1)
	if err := convert(in, out, *flipV, *flipH, *scale, *format, &tga.Options{
		VerticalFlip: !*noFlip,
		RLE:          !*noRLE,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func convert(in, out string, flipV, flipH bool, scale, format string, o *tga.Options) error {
	img, err := imageio.Load(in)
	if err != nil {
		return err
	}

	if format != "" {
		f, err := parseFormat(format)
		if err != nil {
			return err
		}
		if f != img.Format() {
			img = tga.FromImage(img, f)
		}
	}
	if scale != "" {
		var w, h int
		if _, err := fmt.Sscanf(scale, "%dx%d", &w, &h); err != nil {
			return fmt.Errorf("bad -scale %q: want WxH", scale)
		}
		if err := img.Scale(w, h); err != nil {
			return err
		}
	}
	if flipV {
		img.FlipVertical()
	}
	if flipH {
		img.FlipHorizontal()
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".webp":
		err = export.WriteWebP(out, img, 0)
	case ".tga":
		err = tga.WriteFile(out, img, o)
	default:
		err = fmt.Errorf("unknown output extension: %s", out)
	}
	if err != nil {
		return err
	}
	fmt.Printf("OK  %s -> %s  (%dx%d %s)\n", in, out, img.Width(), img.Height(), img.Format())
	return nil
}

func parseFormat(s string) (tga.Format, error) {
	switch strings.ToLower(s) {
	case "gray", "grayscale":
		return tga.Grayscale, nil
	case "rgb":
		return tga.RGB, nil
	case "rgba":
		return tga.RGBA, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}
