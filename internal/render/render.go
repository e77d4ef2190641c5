// Package render turns trajectories into raster artifacts: a positional
// heatmap, a speed-coded vector map and a speed profile chart.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/matchlens/pitchtrack/internal/pitch"
)

// Config holds the rendering parameters
type Config struct {
	Pitch     pitch.Pitch
	Scale     float64 // pixels per meter
	Margin    int     // pixels of padding around the pitch
	CellM     float64 // heatmap bin edge length in meters
	LineWidth float64 // vector map stroke width in pixels
}

// DefaultConfig returns the reference rendering configuration
func DefaultConfig() Config {
	return Config{
		Pitch:     pitch.Default(),
		Scale:     8,
		Margin:    24,
		CellM:     2,
		LineWidth: 2,
	}
}

// Renderer renders trajectory visualizations. It holds no per-trajectory
// state and may be shared.
type Renderer struct {
	cfg Config
}

// New creates a renderer with the given configuration
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns the renderer configuration
func (r *Renderer) Config() Config {
	return r.cfg
}

// RenderError reports a failure to encode or write an image artifact
type RenderError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed for %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *RenderError) Unwrap() error {
	return e.Err
}

// EncodePNG writes the image as PNG to the given writer
func EncodePNG(img image.Image, w io.Writer) error {
	if err := png.Encode(w, img); err != nil {
		return &RenderError{Path: "png stream", Err: err}
	}
	return nil
}

// SavePNG encodes the image as PNG at the given path
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &RenderError{Path: path, Err: err}
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	return nil
}
