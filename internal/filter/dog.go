package filter

import "github.com/gogpu/ascii/internal/parallel"

// DifferenceOfGaussians computes the edge-strength plane
//
//	edge = blur1 - tau*blur2
//
// Values below threshold become 0 and values above 1 are clamped to 1; the
// rest are kept as a continuous strength so the gradient stage still sees the
// edge profile. Negative differences therefore never reach the Sobel stage.
func DifferenceOfGaussians(pool *parallel.WorkerPool, blur1, blur2 *Plane, tau, threshold float32) *Plane {
	sameSize(blur1, blur2)

	out := NewPlane(blur1.Width, blur1.Height)
	pool.ForRange(out.Height, func(y0, y1 int) {
		for i := y0 * out.Width; i < y1*out.Width; i++ {
			d := blur1.Pix[i] - tau*blur2.Pix[i]
			if d < threshold {
				d = 0
			}
			out.Pix[i] = clamp01(d)
		}
	})
	return out
}
