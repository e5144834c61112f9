package filter

// Plane is a single-channel float32 image stored row-major.
type Plane struct {
	Width  int
	Height int
	Pix    []float32
}

// NewPlane allocates a zeroed plane.
func NewPlane(width, height int) *Plane {
	return &Plane{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height),
	}
}

// Clamp maps i into [0, n) by replicating the nearest edge index.
func Clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// At returns the sample at (x, y). Coordinates outside the plane are clamped
// to the nearest edge pixel.
func (p *Plane) At(x, y int) float32 {
	return p.Pix[Clamp(y, p.Height)*p.Width+Clamp(x, p.Width)]
}

// Set stores v at (x, y). The coordinates must be inside the plane.
func (p *Plane) Set(x, y int, v float32) {
	p.Pix[y*p.Width+x] = v
}

// Row returns the backing slice of row y.
func (p *Plane) Row(y int) []float32 {
	return p.Pix[y*p.Width : (y+1)*p.Width]
}

// sameSize panics when two planes do not share dimensions.
func sameSize(a, b *Plane) {
	if a.Width != b.Width || a.Height != b.Height {
		panic("filter: plane dimensions differ")
	}
}
