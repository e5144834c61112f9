package ascii

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/ascii/internal/charset"
	"github.com/gogpu/ascii/internal/tile"
)

// GlyphKind identifies which table a tile's glyph comes from.
type GlyphKind = charset.Kind

// Glyph kinds.
const (
	GlyphBlank = charset.Blank
	GlyphEdge  = charset.Edge
	GlyphFill  = charset.Fill
)

// Analysis is the per-tile result of stages 1 to 7: the voted direction, the
// mean luminance and the selected glyph of every tile.
type Analysis struct {
	grid   tile.Grid
	cfg    Config
	dirs   []tile.Direction
	lums   []float32
	glyphs []charset.Glyph
}

// TilesX returns the number of tile columns.
func (a *Analysis) TilesX() int { return a.grid.TilesX }

// TilesY returns the number of tile rows.
func (a *Analysis) TilesY() int { return a.grid.TilesY }

// Direction returns the voted direction of tile (tx, ty).
func (a *Analysis) Direction(tx, ty int) Direction {
	return a.dirs[a.grid.Index(tx, ty)]
}

// Luminance returns the mean luminance of tile (tx, ty) in [0, 1].
func (a *Analysis) Luminance(tx, ty int) float32 {
	return a.lums[a.grid.Index(tx, ty)]
}

// Glyph returns the table and column of the glyph chosen for tile (tx, ty).
// The column is the edge bucket for GlyphEdge, the fill level for GlyphFill
// and 0 for GlyphBlank.
func (a *Analysis) Glyph(tx, ty int) (GlyphKind, int) {
	g := a.glyphs[a.grid.Index(tx, ty)]
	return g.Kind(), g.Index()
}

// Text renders the chosen glyphs as plain text, one line per tile row.
// edgeRunes holds one rune per edge bucket and fillRunes one rune per fill
// level; blank tiles are written as a space. A missing rune is written as '?'.
func (a *Analysis) Text(edgeRunes, fillRunes string) string {
	edge := []rune(edgeRunes)
	fill := []rune(fillRunes)

	var sb strings.Builder
	sb.Grow(a.grid.Len() + a.grid.TilesY)

	for i, g := range a.glyphs {
		sb.WriteRune(pick(g, edge, fill))
		if (i+1)%a.grid.TilesX == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func pick(g charset.Glyph, edge, fill []rune) rune {
	var table []rune
	switch g.Kind() {
	case charset.Edge:
		table = edge
	case charset.Fill:
		table = fill
	default:
		return ' '
	}
	if g.Index() >= len(table) || table[g.Index()] == utf8.RuneError {
		return '?'
	}
	return table[g.Index()]
}
