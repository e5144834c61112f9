package filter

import (
	"math"
	"sync"
)

// GaussianKernel returns the normalized 1D Gaussian of length 2*radius+1.
// A negative radius is treated as 0. For sigma <= 0 the kernel is the
// identity: 1 at the center and 0 elsewhere.
func GaussianKernel(radius int, sigma float64) []float32 {
	radius = max(radius, 0)
	kernel := make([]float32, 2*radius+1)
	if sigma <= 0 {
		kernel[radius] = 1
		return kernel
	}

	// exp(-x²/2σ²); the constant factor cancels when normalizing.
	denom := 2 * sigma * sigma
	var total float64
	for x := 0; x <= radius; x++ {
		w := math.Exp(-float64(x*x) / denom)
		if x == 0 {
			total += w
		} else {
			total += 2 * w
		}
		kernel[radius+x] = float32(w)
		kernel[radius-x] = float32(w)
	}

	// Normalize from the float64 sum so symmetric taps stay equal.
	for i := range kernel {
		kernel[i] = float32(float64(kernel[i]) / total)
	}
	return kernel
}

type kernelKey struct {
	radius int
	sigma  float64
}

// kernelCache is a bounded kernel store with first-in, first-out eviction.
// Stored kernels are shared and must not be modified.
type kernelCache struct {
	mu      sync.Mutex
	limit   int
	entries map[kernelKey][]float32
	order   []kernelKey
}

var kernels = newKernelCache(32)

func newKernelCache(limit int) *kernelCache {
	return &kernelCache{
		limit:   max(limit, 1),
		entries: make(map[kernelKey][]float32, limit),
	}
}

func (c *kernelCache) get(radius int, sigma float64) []float32 {
	key := kernelKey{radius, sigma}

	c.mu.Lock()
	defer c.mu.Unlock()

	if k, ok := c.entries[key]; ok {
		return k
	}
	if len(c.order) == c.limit {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
	k := GaussianKernel(radius, sigma)
	c.entries[key] = k
	c.order = append(c.order, key)
	return k
}

// CachedGaussianKernel is GaussianKernel backed by a shared cache.
// The returned slice is read-only.
func CachedGaussianKernel(radius int, sigma float64) []float32 {
	return kernels.get(radius, sigma)
}
