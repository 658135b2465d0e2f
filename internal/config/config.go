package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"tinyrender/internal/tga"
)

// Render modes.
const (
	ModeSolid     = "solid"
	ModeWireframe = "wireframe"
)

// Defaults applied by Resolve.
const (
	DefaultWidth       = 800
	DefaultHeight      = 800
	DefaultFrameFile   = "frame_buffer.tga"
	DefaultDepthFile   = "z_buffer.tga"
	DefaultPreviewSize = 256
)

// Config holds all render settings.
type Config struct {
	// Output
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	OutputDir string `json:"output_dir"`
	FrameFile string `json:"frame_file"`
	DepthFile string `json:"depth_file"`

	// Encoding. Nil means "use the default" (on).
	RLE          *bool `json:"rle,omitempty"`
	VerticalFlip *bool `json:"vertical_flip,omitempty"`

	// Render settings
	Seed  uint64  `json:"seed"`
	Mode  string  `json:"mode"`
	Fit   bool    `json:"fit"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`

	// Previews
	WebPPreview bool `json:"webp_preview"`
	PreviewSize int  `json:"preview_size"`

	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file's setting alone.
type Flags struct {
	Width       int
	Height      int
	OutputDir   string
	Seed        uint64
	Mode        string
	NoRLE       bool
	NoFlip      bool
	Fit         bool
	Yaw         float64
	Pitch       float64
	WebP        bool
	PreviewSize int
	Workers     int
}

// Resolve applies flags on top of the file settings, then fills in any
// empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.NoRLE {
		c.RLE = ptr(false)
	}
	if flags.NoFlip {
		c.VerticalFlip = ptr(false)
	}
	if flags.Fit {
		c.Fit = true
	}
	if flags.Yaw != 0 {
		c.Yaw = flags.Yaw
	}
	if flags.Pitch != 0 {
		c.Pitch = flags.Pitch
	}
	if flags.WebP {
		c.WebPPreview = true
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.FrameFile == "" {
		c.FrameFile = DefaultFrameFile
	}
	if c.DepthFile == "" {
		c.DepthFile = DefaultDepthFile
	}
	if c.RLE == nil {
		c.RLE = ptr(true)
	}
	if c.VerticalFlip == nil {
		c.VerticalFlip = ptr(true)
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	if c.Mode == "" {
		c.Mode = ModeSolid
	}
	if c.PreviewSize <= 0 {
		c.PreviewSize = DefaultPreviewSize
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if c.Width > 0xffff || c.Height > 0xffff {
		return fmt.Errorf("config: size %dx%d exceeds 65535", c.Width, c.Height)
	}
	if c.Width*c.Height > tga.MaxPixels {
		return fmt.Errorf("config: size %dx%d exceeds %d pixels", c.Width, c.Height, tga.MaxPixels)
	}
	switch c.Mode {
	case ModeSolid, ModeWireframe:
	default:
		return fmt.Errorf("config: unknown mode %q (want %s or %s)", c.Mode, ModeSolid, ModeWireframe)
	}
	return nil
}

// TGAOptions returns the encoder options. Call after Resolve.
func (c *Config) TGAOptions() *tga.Options {
	return &tga.Options{
		VerticalFlip: c.VerticalFlip == nil || *c.VerticalFlip,
		RLE:          c.RLE == nil || *c.RLE,
	}
}

func ptr[T any](v T) *T { return &v }
