package ascii

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

// solidPixmap returns a w×h pixmap filled with c.
func solidPixmap(w, h int, c color.NRGBA) *Pixmap {
	pm := NewPixmap(w, h)
	for y := range h {
		for x := range w {
			pm.Set(x, y, c)
		}
	}
	return pm
}

// stepPixmap is black for x < edge and white from edge on.
func stepPixmap(w, h, edge int) *Pixmap {
	pm := solidPixmap(w, h, color.NRGBA{A: 255})
	for y := range h {
		for x := edge; x < w; x++ {
			pm.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return pm
}

// gradientPixmap ramps from black on the left to white on the right.
func gradientPixmap(w, h int) *Pixmap {
	pm := NewPixmap(w, h)
	for y := range h {
		for x := range w {
			v := uint8(x * 255 / max(w-1, 1))
			pm.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return pm
}

// noisePixmap returns reproducible colored noise.
func noisePixmap(w, h int, seed uint64) *Pixmap {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pm := NewPixmap(w, h)
	for i := range pm.data {
		pm.data[i] = uint8(rng.UintN(256))
	}
	return pm
}

// edgeSheet draws a 32×8 edge sheet. Cell b has its row b set, so each
// bucket is distinguishable in the output.
func edgeSheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 8))
	for b := range 4 {
		for x := range 8 {
			img.Set(b*8+x, b, color.White)
		}
	}
	return img
}

// fillSheet draws an n-cell fill sheet where cell i has its first i pixels
// (row-major) set.
func fillSheet(n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n*8, 8))
	for i := range n {
		for p := range i {
			img.Set(i*8+p%8, p/8, color.White)
		}
	}
	return img
}

// testGlyphs builds a glyph set with n fill levels from the test sheets.
func testGlyphs(t testing.TB, n int) *GlyphSet {
	t.Helper()
	gs, err := NewGlyphSet(edgeSheet(), fillSheet(n))
	if err != nil {
		t.Fatalf("NewGlyphSet: %v", err)
	}
	return gs
}

// mustConfig builds a Config or fails the test.
func mustConfig(t testing.TB, opts ...ConfigOption) Config {
	t.Helper()
	cfg, err := NewConfig(opts...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

// countColor returns how many pixels of pm equal c.
func countColor(pm *Pixmap, c color.NRGBA) int {
	n := 0
	for y := range pm.Height() {
		for x := range pm.Width() {
			if pm.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}
