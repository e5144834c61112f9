package ascii

import (
	"image"

	"github.com/gogpu/ascii/internal/charset"
	"github.com/gogpu/ascii/internal/raster"
	"github.com/gogpu/ascii/internal/tile"
)

// GlyphSet holds the two glyph lookup tables as 8×8 one-bit cells.
// It is immutable after construction and safe to share between goroutines
// and pipeline runs.
type GlyphSet struct {
	palette raster.Palette
}

// NewGlyphSet rasterizes two glyph sheets.
//
// The edge sheet must be exactly 32×8: four 8×8 cells for Vertical,
// Horizontal, Diagonal1 and Diagonal2, left to right. The fill sheet must be
// N*8 pixels wide and 8 pixels tall with 1 <= N <= 64, cells ordered from the
// darkest glyph to the brightest. A pixel is set when its gray value, after
// alpha weighting, is at least 50%.
//
// Any other layout is reported as an *AssetError.
func NewGlyphSet(edges, fill image.Image) (*GlyphSet, error) {
	if edges == nil || fill == nil {
		return nil, &AssetError{Sheet: "glyph", Reason: "missing sheet"}
	}

	eb := edges.Bounds()
	if eb.Dx() != tile.NumDirections*tile.Size || eb.Dy() != tile.Size {
		return nil, &AssetError{
			Sheet: "edge", Width: eb.Dx(), Height: eb.Dy(),
			Reason: "want 4 cells of 8x8 (32x8)",
		}
	}

	fb := fill.Bounds()
	n := fb.Dx() / tile.Size
	if fb.Dy() != tile.Size || fb.Dx()%tile.Size != 0 || n < 1 || n > charset.MaxLevels {
		return nil, &AssetError{
			Sheet: "fill", Width: fb.Dx(), Height: fb.Dy(),
			Reason: "want 1 to 64 cells of 8x8 in one row",
		}
	}

	gs := &GlyphSet{}
	for i := range tile.NumDirections {
		gs.palette.Edge[i] = raster.CellBitmap(edges, eb.Min.Add(image.Pt(i*tile.Size, 0)))
	}
	gs.palette.Fill = make([]raster.Bitmap, n)
	for i := range n {
		gs.palette.Fill[i] = raster.CellBitmap(fill, fb.Min.Add(image.Pt(i*tile.Size, 0)))
	}
	return gs, nil
}

// FillLevels returns the number of fill cells.
func (g *GlyphSet) FillLevels() int {
	return len(g.palette.Fill)
}

// EdgeCell returns the 8×8 cell for d as 64 bits, row-major from the top-left
// pixel in bit 0. It returns 0 for DirectionNone.
func (g *GlyphSet) EdgeCell(d Direction) uint64 {
	b, ok := d.Bucket()
	if !ok {
		return 0
	}
	return uint64(g.palette.Edge[b])
}

// FillCell returns the 8×8 cell for fill level i in the same layout as EdgeCell.
func (g *GlyphSet) FillCell(i int) uint64 {
	return uint64(g.palette.Fill[i])
}

// checkGlyphs validates a glyph set against a configuration.
func checkGlyphs(g *GlyphSet, cfg Config) error {
	if g == nil {
		return &AssetError{Sheet: "glyph", Reason: "nil glyph set"}
	}
	if n := g.FillLevels(); n != cfg.FillLevels() {
		return &AssetError{
			Sheet: "fill", Width: n * tile.Size, Height: tile.Size,
			Reason: "cell count does not match configured fill levels",
		}
	}
	return nil
}
