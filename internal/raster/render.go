package raster

import (
	"image/color"

	"github.com/gogpu/ascii/internal/charset"
	"github.com/gogpu/ascii/internal/parallel"
	"github.com/gogpu/ascii/internal/tile"
)

// Palette holds the rasterized glyph tables.
type Palette struct {
	// Edge holds one cell per direction bucket.
	Edge [tile.NumDirections]Bitmap
	// Fill holds one cell per luminance level, darkest first.
	Fill []Bitmap
}

// Bitmap returns the cell for g. Blank glyphs are empty.
func (p *Palette) Bitmap(g charset.Glyph) Bitmap {
	switch g.Kind() {
	case charset.Edge:
		return p.Edge[g.Index()]
	case charset.Fill:
		return p.Fill[g.Index()]
	default:
		return 0
	}
}

// Style selects the colors of foreground and background pixels.
type Style struct {
	// Foreground and Background are used when FromSource is false.
	Foreground color.RGBA
	Background color.RGBA

	// FromSource paints foreground pixels with the source pixel and background
	// pixels with the source color darkened to SourceShade.
	FromSource bool
}

// SourceShade is the factor applied to source colors behind a glyph.
const SourceShade = 0.2

// Render paints one glyph per tile into dst, a tightly packed RGBA8 buffer
// with the grid's dimensions. src is only read when style.FromSource is set.
func Render(pool *parallel.WorkerPool, dst, src []uint8, grid tile.Grid, glyphs []charset.Glyph, pal *Palette, style Style) {
	if len(glyphs) != grid.Len() {
		panic("raster: glyph count does not match grid")
	}
	if len(dst) != grid.Width()*grid.Height()*4 {
		panic("raster: destination does not match grid")
	}
	if style.FromSource && len(src) != len(dst) {
		panic("raster: source does not match grid")
	}

	stride := grid.Width() * 4
	pool.ForRange(len(glyphs), func(start, end int) {
		for i := start; i < end; i++ {
			x0, y0 := grid.Origin(i)
			paintCell(dst, src, stride, x0, y0, pal.Bitmap(glyphs[i]), style)
		}
	})
}

// paintCell writes the 8×8 region at (x0, y0).
func paintCell(dst, src []uint8, stride, x0, y0 int, cell Bitmap, style Style) {
	fg := [4]uint8{style.Foreground.R, style.Foreground.G, style.Foreground.B, style.Foreground.A}
	bg := [4]uint8{style.Background.R, style.Background.G, style.Background.B, style.Background.A}

	for y := range tile.Size {
		row := (y0+y)*stride + x0*4
		for x := range tile.Size {
			i := row + x*4
			on := cell.Set(x, y)

			if style.FromSource {
				if on {
					copy(dst[i:i+4], src[i:i+4])
				} else {
					dst[i+0] = shade(src[i+0])
					dst[i+1] = shade(src[i+1])
					dst[i+2] = shade(src[i+2])
					dst[i+3] = 255
				}
				continue
			}

			if on {
				copy(dst[i:i+4], fg[:])
			} else {
				copy(dst[i:i+4], bg[:])
			}
		}
	}
}

// shade darkens one channel by SourceShade.
func shade(v uint8) uint8 {
	return uint8(float32(v) * SourceShade)
}
