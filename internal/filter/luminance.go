package filter

import "github.com/gogpu/ascii/internal/parallel"

// Perceptual luminance weights (BT.709 as used by the reference shader).
const (
	LumaR = 0.2127
	LumaG = 0.7152
	LumaB = 0.0722
)

// Luminance converts tightly packed RGBA8 pixels into a luminance plane in
// [0, 1]. Alpha is ignored.
func Luminance(pool *parallel.WorkerPool, rgba []uint8, width, height int) *Plane {
	if len(rgba) != width*height*4 {
		panic("filter: RGBA buffer does not match dimensions")
	}

	out := NewPlane(width, height)
	pool.ForRange(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			src := rgba[y*width*4 : (y+1)*width*4]
			dst := out.Row(y)
			for x := range dst {
				i := x * 4
				l := (LumaR*float32(src[i+0]) +
					LumaG*float32(src[i+1]) +
					LumaB*float32(src[i+2])) / 255
				dst[x] = clamp01(l)
			}
		}
	})
	return out
}

// clamp01 clamps v to [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
