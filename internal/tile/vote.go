package tile

import (
	"github.com/gogpu/ascii/internal/filter"
	"github.com/gogpu/ascii/internal/parallel"
)

// VoteParams controls tile direction voting.
type VoteParams struct {
	// Threshold is the minimum number of votes (0–64) the winning direction
	// needs. Below it the tile direction is None.
	Threshold int

	// Floor is the minimum gradient magnitude for a pixel to vote. Pixels
	// with magnitude <= Floor are ignored.
	Floor float32
}

// Vote tallies the gradient directions of every tile and returns one
// Direction per tile in grid order.
func Vote(pool *parallel.WorkerPool, grid Grid, g filter.Gradient, params VoteParams) []Direction {
	if g.Magnitude.Width != grid.Width() || g.Magnitude.Height != grid.Height() {
		panic("tile: gradient does not match grid")
	}

	out := make([]Direction, grid.Len())
	pool.ForRange(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			x0, y0 := grid.Origin(i)
			out[i] = voteTile(g, x0, y0, params)
		}
	})
	return out
}

// voteTile returns the winning direction of the tile at pixel origin (x0, y0).
func voteTile(g filter.Gradient, x0, y0 int, params VoteParams) Direction {
	var counts [NumDirections]int

	for y := y0; y < y0+Size; y++ {
		mag := g.Magnitude.Row(y)[x0 : x0+Size]
		ang := g.Angle.Row(y)[x0 : x0+Size]
		for x, m := range mag {
			if m <= params.Floor {
				continue
			}
			if b, ok := Classify(ang[x]).Bucket(); ok {
				counts[b]++
			}
		}
	}

	return Winner(counts, params.Threshold)
}

// Winner picks the direction with the most votes. Ties go to the lower bucket
// (Vertical, Horizontal, Diagonal1, Diagonal2). A tile without votes, or whose
// best count is below threshold, has direction None.
func Winner(counts [NumDirections]int, threshold int) Direction {
	best, bestCount := -1, 0
	for b, c := range counts {
		if c > bestCount {
			best, bestCount = b, c
		}
	}

	if best < 0 || bestCount < threshold {
		return None
	}
	return FromBucket(best)
}
