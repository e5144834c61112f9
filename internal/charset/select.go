// Package charset maps each tile's (direction, luminance) pair to a glyph.
//
// A Glyph is a closed variant: a blank cell, one of the four edge glyphs, or a
// fill glyph at a quantized luminance level. Glyph values can only be built
// through the constructors here, so an out-of-range table index cannot be
// represented.
package charset

import (
	"math"

	"github.com/gogpu/ascii/internal/parallel"
	"github.com/gogpu/ascii/internal/tile"
)

// MaxLevels is the largest supported number of fill levels.
const MaxLevels = 64

// Kind identifies which glyph table a Glyph indexes.
type Kind uint8

const (
	// Blank is an empty cell painted in the background color.
	Blank Kind = iota
	// Edge selects from the edge-glyph table by direction.
	Edge
	// Fill selects from the fill-glyph table by luminance level.
	Fill
)

// Glyph is the character chosen for one tile.
type Glyph struct {
	kind  Kind
	index uint8
}

// EdgeGlyph returns the edge glyph for d. It returns false for None.
func EdgeGlyph(d tile.Direction) (Glyph, bool) {
	b, ok := d.Bucket()
	if !ok {
		return Glyph{}, false
	}
	return Glyph{kind: Edge, index: uint8(b)}, true
}

// FillGlyph returns the fill glyph for level l.
func FillGlyph(l FillLevel) Glyph {
	return Glyph{kind: Fill, index: uint8(l)}
}

// Kind returns the table the glyph belongs to.
func (g Glyph) Kind() Kind {
	return g.kind
}

// Index returns the column of the glyph in its table. It is 0 for Blank.
func (g Glyph) Index() int {
	return int(g.index)
}

// FillLevel is a luminance bucket in [0, levels).
type FillLevel uint8

// Quantize maps a luminance in [0, 1] to floor(lum*levels) clamped to
// [0, levels-1]. NaN maps to level 0. levels must be in [1, MaxLevels].
func Quantize(lum float32, levels int) FillLevel {
	if levels < 1 || levels > MaxLevels {
		panic("charset: fill level count out of range")
	}

	q := math.Floor(float64(lum) * float64(levels))
	switch {
	case math.IsNaN(q) || q < 0:
		return 0
	case q > float64(levels-1):
		return FillLevel(levels - 1)
	default:
		return FillLevel(q)
	}
}

// Rules control glyph selection.
type Rules struct {
	// Levels is the number of fill glyphs (the fill table column count).
	Levels int
	// DrawEdges enables edge glyphs. When false every tile is a fill tile.
	DrawEdges bool
	// DrawFill enables fill glyphs. When false non-edge tiles are blank.
	DrawFill bool
	// Invert maps luminance l to 1-l before quantization.
	Invert bool
}

// Select returns the glyph for a tile with direction d and mean luminance lum.
// Edges take priority over fill.
func Select(d tile.Direction, lum float32, r Rules) Glyph {
	if r.DrawEdges {
		if g, ok := EdgeGlyph(d); ok {
			return g
		}
	}
	if !r.DrawFill {
		return Glyph{}
	}
	if r.Invert {
		lum = 1 - lum
	}
	return FillGlyph(Quantize(lum, r.Levels))
}

// SelectAll applies Select to every tile. dirs and lums are indexed by tile.
func SelectAll(pool *parallel.WorkerPool, dirs []tile.Direction, lums []float32, r Rules) []Glyph {
	if len(dirs) != len(lums) {
		panic("charset: direction and luminance counts differ")
	}

	out := make([]Glyph, len(dirs))
	pool.ForRange(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = Select(dirs[i], lums[i], r)
		}
	})
	return out
}
