// Package glyphsheet builds the glyph sheets consumed by ascii.NewGlyphSet.
//
// A sheet is one row of 8×8 cells, white where the glyph is drawn. Sheets can
// be drawn procedurally from a built-in shape table, rasterized from any
// font.Face or OpenType font, or loaded from an image file.
//
// Every rune must fit one narrow cell: East Asian wide and fullwidth runes
// are rejected with an *ascii.AssetError.
package glyphsheet

import (
	"fmt"
	"image"

	"golang.org/x/text/width"

	"github.com/gogpu/ascii"
)

// Character tables.
const (
	// DefaultEdgeRunes holds the edge glyphs in bucket order: Vertical,
	// Horizontal, Diagonal1, Diagonal2.
	DefaultEdgeRunes = `|-/\`

	// DefaultFillRunes holds the fill glyphs from darkest to brightest.
	DefaultFillRunes = " .:-=+*#%@"
)

// Default returns a glyph set drawn from the built-in shapes, with the fill
// ramp resampled to levels cells.
func Default(levels int) (*ascii.GlyphSet, error) {
	return Build(DefaultEdgeRunes, Ramp(levels), Procedural)
}

// Ramp resamples DefaultFillRunes to n runes, keeping the darkest and
// brightest glyphs at the ends. Ramp(1) is the brightest glyph alone.
func Ramp(n int) string {
	src := []rune(DefaultFillRunes)
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return string(src[len(src)-1])
	}

	out := make([]rune, n)
	for i := range out {
		out[i] = src[(i*(len(src)-1)+(n-1)/2)/(n-1)]
	}
	return string(out)
}

// SheetFunc draws a sheet with one cell per rune.
type SheetFunc func(runes string) (*image.Gray, error)

// Build draws the edge and fill sheets with draw and turns them into a glyph
// set. edgeRunes must hold exactly four runes.
func Build(edgeRunes, fillRunes string, draw SheetFunc) (*ascii.GlyphSet, error) {
	if n := len([]rune(edgeRunes)); n != 4 {
		return nil, &ascii.AssetError{
			Sheet: "edge", Width: n * ascii.TileSize, Height: ascii.TileSize,
			Reason: "want exactly 4 edge runes",
		}
	}

	edges, err := draw(edgeRunes)
	if err != nil {
		return nil, err
	}
	fill, err := draw(fillRunes)
	if err != nil {
		return nil, err
	}
	return ascii.NewGlyphSet(edges, fill)
}

// checkRunes rejects runes that cannot occupy a single cell.
func checkRunes(runes []rune) error {
	for _, r := range runes {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			return &ascii.AssetError{
				Sheet:  "glyph",
				Width:  len(runes) * ascii.TileSize,
				Height: ascii.TileSize,
				Reason: fmt.Sprintf("rune %q is wider than one cell", r),
			}
		}
	}
	return nil
}

// newSheet allocates a black sheet for n cells.
func newSheet(n int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, n*ascii.TileSize, ascii.TileSize))
}

// cellRect returns the bounds of cell i.
func cellRect(i int) image.Rectangle {
	return image.Rect(i*ascii.TileSize, 0, (i+1)*ascii.TileSize, ascii.TileSize)
}
