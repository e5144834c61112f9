package glyphsheet

import (
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/ascii"
)

// shape reports whether pixel (x, y) of an 8×8 cell is drawn.
type shape func(x, y int) bool

// shapes covers the default character tables.
var shapes = map[rune]shape{
	' ':  func(x, y int) bool { return false },
	'|':  func(x, y int) bool { return x == 3 || x == 4 },
	'-':  func(x, y int) bool { return y == 3 || y == 4 },
	'/':  func(x, y int) bool { return x == 7-y || x == 6-y },
	'\\': func(x, y int) bool { return x == y || x == y-1 },
	'.':  func(x, y int) bool { return between(x, 3, 4) && between(y, 3, 4) },
	':':  func(x, y int) bool { return between(x, 3, 4) && (y == 2 || y == 5) },
	'=':  func(x, y int) bool { return y == 2 || y == 5 },
	'+':  func(x, y int) bool { return x == 3 || x == 4 || y == 3 || y == 4 },
	'*': func(x, y int) bool {
		return x == 3 || x == 4 || y == 3 || y == 4 || x == y || x == 7-y
	},
	'#': func(x, y int) bool { return x == 2 || x == 5 || y == 2 || y == 5 },
	'%': func(x, y int) bool { return x+y == 7 || (x == 1 && y == 1) || (x == 6 && y == 6) },
	'@': func(x, y int) bool {
		dx, dy := x-3, y-3
		return dx*dx+dy*dy <= 12
	},
}

func between(v, lo, hi int) bool { return v >= lo && v <= hi }

// Procedural draws runes from the built-in shape table. Runes without a
// built-in shape are rasterized from basicfont.Face7x13.
func Procedural(runes string) (*image.Gray, error) {
	rs := []rune(runes)
	if err := checkRunes(rs); err != nil {
		return nil, err
	}

	sheet := newSheet(len(rs))
	for i, r := range rs {
		s, ok := shapes[r]
		if !ok {
			if err := drawFaceCell(sheet, i, basicfont.Face7x13, r); err != nil {
				return nil, err
			}
			continue
		}
		for y := range ascii.TileSize {
			for x := range ascii.TileSize {
				if s(x, y) {
					sheet.SetGray(i*ascii.TileSize+x, y, color.Gray{Y: 0xff})
				}
			}
		}
	}
	return sheet, nil
}
