package filter

import (
	"testing"

	"github.com/gogpu/ascii/internal/parallel"
)

// Test helper functions shared across filter tests.

// newTestPool creates a worker pool that is closed when the test ends.
func newTestPool(t testing.TB, workers int) *parallel.WorkerPool {
	t.Helper()
	pool := parallel.NewWorkerPool(workers)
	t.Cleanup(pool.Close)
	return pool
}

// uniformPlane creates a plane filled with v.
func uniformPlane(w, h int, v float32) *Plane {
	p := NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = v
	}
	return p
}

// stepPlane creates a plane that is 0 left of column edge and 1 from it on.
func stepPlane(w, h, edge int) *Plane {
	p := NewPlane(w, h)
	for y := range h {
		for x := edge; x < w; x++ {
			p.Set(x, y, 1)
		}
	}
	return p
}

// absf32 returns the absolute value of a float32.
func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// planesEqual reports whether two planes hold bit-identical samples.
func planesEqual(a, b *Plane) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}
