package glyphsheet

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ascii"
)

// FromFace returns a SheetFunc that rasterizes runes with face. Each glyph is
// drawn centered on the face's widest advance and line height, then scaled
// to 8×8.
func FromFace(face font.Face) SheetFunc {
	return func(runes string) (*image.Gray, error) {
		rs := []rune(runes)
		if err := checkRunes(rs); err != nil {
			return nil, err
		}

		sheet := newSheet(len(rs))
		for i, r := range rs {
			if err := drawFaceCell(sheet, i, face, r); err != nil {
				return nil, err
			}
		}
		return sheet, nil
	}
}

// FromFontData returns a SheetFunc that rasterizes runes from a TrueType or
// OpenType font at size points (72 DPI, so points equal pixels before
// scaling to the cell).
func FromFontData(data []byte, size float64) (SheetFunc, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyphsheet: failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyphsheet: failed to create face: %w", err)
	}

	return FromFace(face), nil
}

// drawFaceCell rasterizes r into cell i of sheet.
func drawFaceCell(sheet *image.Gray, i int, face font.Face, r rune) error {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return &ascii.AssetError{
			Sheet:  "glyph",
			Width:  sheet.Bounds().Dx(),
			Height: sheet.Bounds().Dy(),
			Reason: fmt.Sprintf("font has no glyph for %q", r),
		}
	}

	m := face.Metrics()
	w := max(adv.Ceil(), m.Height.Ceil()/2, 1)
	h := max((m.Ascent + m.Descent).Ceil(), 1)

	scratch := image.NewGray(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  scratch,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: (fixed.I(w) - adv) / 2, Y: m.Ascent},
	}
	d.DrawString(string(r))

	xdraw.BiLinear.Scale(sheet, cellRect(i), scratch, scratch.Bounds(), xdraw.Src, nil)
	return nil
}
