package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Manifest describes one batch run.
type Manifest struct {
	Created   time.Time `json:"created"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Mode      string    `json:"mode"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Results   []Result  `json:"results"`
}

// NewManifest summarizes results.
func NewManifest(width, height int, mode string, results []Result) Manifest {
	m := Manifest{
		Created: time.Now().UTC(),
		Width:   width,
		Height:  height,
		Mode:    mode,
		Results: results,
	}
	for _, r := range results {
		if r.Success {
			m.Succeeded++
		} else {
			m.Failed++
		}
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
