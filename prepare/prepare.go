// Package prepare resizes arbitrary images to the dimensions the ASCII
// pipeline accepts: non-zero multiples of the 8-pixel tile size.
//
// Resampling uses a Lanczos3 kernel built on golang.org/x/image/draw.
package prepare

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ascii"
)

// Lanczos3 is a windowed-sinc resampling kernel with a support of 3 pixels.
var Lanczos3 = &xdraw.Kernel{
	Support: 3,
	At:      lanczos3At,
}

// lanczos3At evaluates sinc(t) * sinc(t/3) for |t| < 3.
func lanczos3At(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t >= 3 {
		return 0
	}
	if t == 0 {
		return 1
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}

// FitToTiles rounds each dimension of img down to a multiple of 8 and
// resamples it to that size. An image that is already aligned is copied
// without resampling. Images narrower or shorter than one tile are rejected
// with an *ascii.DimensionError.
func FitToTiles(img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()
	w := b.Dx() / ascii.TileSize * ascii.TileSize
	h := b.Dy() / ascii.TileSize * ascii.TileSize
	if w == 0 || h == 0 {
		return nil, &ascii.DimensionError{Width: b.Dx(), Height: b.Dy()}
	}
	return resize(img, w, h), nil
}

// ScaleToColumns resamples img so that it is cols tiles wide, keeping the
// aspect ratio. The height is rounded to the nearest multiple of 8 and is
// at least one tile.
func ScaleToColumns(img image.Image, cols int) (*image.NRGBA, error) {
	b := img.Bounds()
	if cols <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return nil, &ascii.DimensionError{Width: cols * ascii.TileSize, Height: b.Dy()}
	}

	w := cols * ascii.TileSize
	rows := int(math.Round(float64(b.Dy()) * float64(w) / float64(b.Dx()) / ascii.TileSize))
	h := max(rows, 1) * ascii.TileSize
	return resize(img, w, h), nil
}

// resize resamples img into a new w×h image.
func resize(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if b.Dx() == w && b.Dy() == h {
		xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
		return dst
	}
	Lanczos3.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
