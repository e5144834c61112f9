package filter

import "github.com/gogpu/ascii/internal/parallel"

// Blur applies a separable convolution with the 1D kernel: a horizontal pass
// into a scratch plane, then a vertical pass into the result. Samples outside
// the plane are clamped to the nearest edge pixel.
//
// The kernel length must be odd; its center is the sample being computed.
func Blur(pool *parallel.WorkerPool, src *Plane, kernel []float32) *Plane {
	if len(kernel)%2 == 0 {
		panic("filter: blur kernel length must be odd")
	}

	temp := NewPlane(src.Width, src.Height)
	pool.ForRange(src.Height, func(y0, y1 int) {
		blurHorizontal(src, temp, y0, y1, kernel)
	})

	dst := NewPlane(src.Width, src.Height)
	pool.ForRange(src.Height, func(y0, y1 int) {
		blurVertical(temp, dst, y0, y1, kernel)
	})

	return dst
}

// GaussianBlur blurs src with a cached Gaussian kernel of the given radius
// and sigma.
func GaussianBlur(pool *parallel.WorkerPool, src *Plane, radius int, sigma float64) *Plane {
	return Blur(pool, src, CachedGaussianKernel(radius, sigma))
}

// blurHorizontal convolves rows [y0, y1) of src along x into dst.
func blurHorizontal(src, dst *Plane, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2

	for y := y0; y < y1; y++ {
		out := dst.Row(y)
		for x := range out {
			var sum float32
			for k, weight := range kernel {
				sum += src.At(x+k-half, y) * weight
			}
			out[x] = sum
		}
	}
}

// blurVertical convolves rows [y0, y1) of dst from columns of src.
func blurVertical(src, dst *Plane, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2

	for y := y0; y < y1; y++ {
		out := dst.Row(y)
		for x := range out {
			var sum float32
			for k, weight := range kernel {
				sum += src.At(x, y+k-half) * weight
			}
			out[x] = sum
		}
	}
}
