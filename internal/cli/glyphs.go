package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/ascii"
	"github.com/gogpu/ascii/glyphsheet"
)

// glyphFlags selects where glyph cells come from.
type glyphFlags struct {
	edgeSheet string
	fillSheet string
	font      string
	fontSize  float64
	basic     bool
}

func (g *glyphFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.edgeSheet, "edge-sheet", "", "edge glyph sheet image (32x8)")
	fs.StringVar(&g.fillSheet, "fill-sheet", "", "fill glyph sheet image (N*8 x 8)")
	fs.StringVar(&g.font, "font", "", "TrueType/OpenType font to rasterize glyphs from")
	fs.Float64Var(&g.fontSize, "font-size", 12, "font size in pixels before scaling to 8x8")
	fs.BoolVar(&g.basic, "basic-font", false, "rasterize glyphs from the built-in 7x13 bitmap font")
}

// glyphSet builds the glyph set for p.
func (g *glyphFlags) glyphSet(p Preset) (*ascii.GlyphSet, error) {
	edgeRunes, fillRunes := p.Runes()

	switch {
	case g.edgeSheet != "" || g.fillSheet != "":
		if g.edgeSheet == "" || g.fillSheet == "" {
			return nil, errors.New("--edge-sheet and --fill-sheet must be given together")
		}
		return glyphsheet.LoadSet(g.edgeSheet, g.fillSheet)

	case g.font != "":
		data, err := os.ReadFile(g.font)
		if err != nil {
			return nil, fmt.Errorf("font: %w", err)
		}
		draw, err := glyphsheet.FromFontData(data, g.fontSize)
		if err != nil {
			return nil, err
		}
		return glyphsheet.Build(edgeRunes, fillRunes, draw)

	case g.basic:
		return glyphsheet.Build(edgeRunes, fillRunes, glyphsheet.FromFace(basicfont.Face7x13))

	default:
		return glyphsheet.Build(edgeRunes, fillRunes, glyphsheet.Procedural)
	}
}
