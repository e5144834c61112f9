package filter

import (
	"math"

	"github.com/gogpu/ascii/internal/parallel"
)

// Gradient holds the per-pixel Sobel response of an edge-strength plane.
type Gradient struct {
	// Magnitude is sqrt(gx² + gy²).
	Magnitude *Plane
	// Angle is atan2(gy, gx) in radians, in [-π, π]. The y axis points down.
	Angle *Plane
}

// Sobel computes the gradient of src with the standard 3×3 kernels
//
//	Gx = [-1 0 1; -2 0 2; -1 0 1]    Gy = [-1 -2 -1; 0 0 0; 1 2 1]
//
// applied separably: a horizontal pass produces the central difference and
// the [1 2 1] smoothing of every row, and a vertical pass combines them.
// Borders use the same clamp-to-edge sampling as Blur.
func Sobel(pool *parallel.WorkerPool, src *Plane) Gradient {
	diff := NewPlane(src.Width, src.Height)
	smooth := NewPlane(src.Width, src.Height)

	pool.ForRange(src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			d := diff.Row(y)
			s := smooth.Row(y)
			for x := range d {
				l, c, r := src.At(x-1, y), src.At(x, y), src.At(x+1, y)
				d[x] = r - l
				s[x] = l + 2*c + r
			}
		}
	})

	g := Gradient{
		Magnitude: NewPlane(src.Width, src.Height),
		Angle:     NewPlane(src.Width, src.Height),
	}

	pool.ForRange(src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			mag := g.Magnitude.Row(y)
			ang := g.Angle.Row(y)
			for x := range mag {
				gx := diff.At(x, y-1) + 2*diff.At(x, y) + diff.At(x, y+1)
				gy := smooth.At(x, y+1) - smooth.At(x, y-1)

				mag[x] = float32(math.Sqrt(float64(gx*gx + gy*gy)))
				ang[x] = float32(math.Atan2(float64(gy), float64(gx)))
			}
		}
	})

	return g
}
