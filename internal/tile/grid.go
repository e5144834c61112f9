// Package tile implements the per-tile stages of the ASCII pipeline: the 8×8
// tile grid, edge-direction voting and tile luminance reduction.
//
// Tiles are independent: every function here computes one output value per
// tile from that tile's 64 pixels only, so tiles are distributed across a
// parallel.WorkerPool with no shared mutable state.
package tile

// Tile size constants. Every image entering the pipeline is an exact multiple
// of Size in both dimensions.
const (
	// Size is the width and height of a tile in pixels.
	Size = 8

	// Pixels is the number of pixels in a tile.
	Pixels = Size * Size
)

// Grid partitions a width×height image into Size×Size tiles stored in
// row-major order: index = ty*TilesX + tx.
type Grid struct {
	// TilesX is the number of tile columns.
	TilesX int

	// TilesY is the number of tile rows.
	TilesY int
}

// Aligned reports whether a width×height image tiles exactly.
func Aligned(width, height int) bool {
	return width > 0 && height > 0 && width%Size == 0 && height%Size == 0
}

// NewGrid returns the grid for a width×height image. Dimensions must satisfy
// Aligned; callers validate them before any stage runs.
func NewGrid(width, height int) Grid {
	if !Aligned(width, height) {
		panic("tile: image dimensions are not multiples of the tile size")
	}
	return Grid{TilesX: width / Size, TilesY: height / Size}
}

// Len returns the number of tiles.
func (g Grid) Len() int {
	return g.TilesX * g.TilesY
}

// Width returns the image width in pixels.
func (g Grid) Width() int {
	return g.TilesX * Size
}

// Height returns the image height in pixels.
func (g Grid) Height() int {
	return g.TilesY * Size
}

// Index returns the flat index of tile (tx, ty).
func (g Grid) Index(tx, ty int) int {
	return ty*g.TilesX + tx
}

// Coords returns the tile coordinates of flat index i.
func (g Grid) Coords(i int) (tx, ty int) {
	return i % g.TilesX, i / g.TilesX
}

// Origin returns the pixel coordinates of the top-left corner of tile i.
func (g Grid) Origin(i int) (x, y int) {
	tx, ty := g.Coords(i)
	return tx * Size, ty * Size
}
