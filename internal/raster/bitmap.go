// Package raster paints the selected glyphs into the output image.
//
// Every glyph is an 8×8 one-bit Bitmap. Each tile owns a disjoint 8×8 region
// of the destination buffer, so tiles are painted concurrently without locks.
package raster

import (
	"image"
	"image/color"
	"math/bits"

	"github.com/gogpu/ascii/internal/tile"
)

// Bitmap is an 8×8 one-bit glyph cell. Bit y*8+x is set when pixel (x, y)
// is foreground.
type Bitmap uint64

// Set reports whether pixel (x, y) of the cell is foreground.
func (b Bitmap) Set(x, y int) bool {
	return b&(1<<uint(y*tile.Size+x)) != 0
}

// With returns b with pixel (x, y) marked as foreground.
func (b Bitmap) With(x, y int) Bitmap {
	return b | 1<<uint(y*tile.Size+x)
}

// Count returns the number of foreground pixels.
func (b Bitmap) Count() int {
	return bits.OnesCount64(uint64(b))
}

// CellBitmap extracts the 8×8 cell of img whose top-left corner is origin.
// A pixel is foreground when its gray level, premultiplied by alpha, is at
// least 50%.
func CellBitmap(img image.Image, origin image.Point) Bitmap {
	var b Bitmap
	for y := range tile.Size {
		for x := range tile.Size {
			g := color.Gray16Model.Convert(img.At(origin.X+x, origin.Y+y)).(color.Gray16)
			if g.Y >= 0x8000 {
				b = b.With(x, y)
			}
		}
	}
	return b
}
