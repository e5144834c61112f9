package tile

import (
	"github.com/gogpu/ascii/internal/filter"
	"github.com/gogpu/ascii/internal/parallel"
)

// MeanLuminance returns the arithmetic mean of each tile's 64 luminance
// samples, in grid order.
func MeanLuminance(pool *parallel.WorkerPool, grid Grid, lum *filter.Plane) []float32 {
	if lum.Width != grid.Width() || lum.Height != grid.Height() {
		panic("tile: luminance plane does not match grid")
	}

	out := make([]float32, grid.Len())
	pool.ForRange(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			x0, y0 := grid.Origin(i)

			var sum float32
			for y := y0; y < y0+Size; y++ {
				for _, v := range lum.Row(y)[x0 : x0+Size] {
					sum += v
				}
			}
			out[i] = sum / Pixels
		}
	})
	return out
}
