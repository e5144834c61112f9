// Package filter implements the per-pixel stages of the ASCII pipeline:
//   - luminance extraction from 8-bit RGBA
//   - separable Gaussian blur (clamp-to-edge borders)
//   - Difference of Gaussians edge strength
//   - separable Sobel gradient magnitude and angle
//
// All stages read an immutable Plane and write a freshly allocated one. Rows
// are distributed across a parallel.WorkerPool; each worker writes only the
// rows it was given, so the output is identical for any pool size.
//
// Border sampling goes through Plane.At, which clamps coordinates to the
// nearest edge pixel. Blur and Sobel share it so both stages use one policy.
package filter
