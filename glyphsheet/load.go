package glyphsheet

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"os"

	"github.com/gogpu/ascii"
)

// Load decodes a sheet image from path. Any format registered with the
// image package is accepted; PNG is always available.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("glyphsheet: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("glyphsheet: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadSet loads an edge sheet and a fill sheet and builds a glyph set.
func LoadSet(edgePath, fillPath string) (*ascii.GlyphSet, error) {
	edges, err := Load(edgePath)
	if err != nil {
		return nil, err
	}
	fill, err := Load(fillPath)
	if err != nil {
		return nil, err
	}
	return ascii.NewGlyphSet(edges, fill)
}
