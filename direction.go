package ascii

import "github.com/gogpu/ascii/internal/tile"

// Direction is the dominant edge orientation of one 8×8 tile.
type Direction = tile.Direction

// Tile directions. Ties between two directions resolve to the one listed
// first: Vertical, Horizontal, Diagonal1, Diagonal2.
const (
	DirectionNone       = tile.None
	DirectionVertical   = tile.Vertical
	DirectionHorizontal = tile.Horizontal
	DirectionDiagonal1  = tile.Diagonal1
	DirectionDiagonal2  = tile.Diagonal2
)

// TileSize is the edge length of a tile and of a glyph cell, in pixels.
const TileSize = tile.Size
