// Package ascii renders images as ASCII art on the CPU.
//
// # Overview
//
// The pipeline turns an RGBA image into a grid of 8×8 character cells. Each
// cell shows either an edge glyph oriented along the dominant local edge, or a
// fill glyph whose density follows the cell's brightness:
//
//  1. luminance extraction
//  2. two Gaussian blurs (sigma and sigma × sigma_scale)
//  3. difference of Gaussians
//  4. Sobel gradient (magnitude and angle)
//  5. per-tile direction vote
//  6. per-tile mean luminance
//  7. glyph selection
//  8. glyph rendering
//
// Every stage is a data-parallel pass over rows or tiles. Stages run in a
// fixed order with a barrier between them, and every worker writes a disjoint
// part of its stage's output, so results are byte-identical for any worker
// count.
//
// # Quick Start
//
//	import "github.com/gogpu/ascii"
//	import "github.com/gogpu/ascii/glyphsheet"
//	import "github.com/gogpu/ascii/prepare"
//
//	cfg := ascii.DefaultConfig()
//	glyphs, err := glyphsheet.Default(cfg.FillLevels())
//	if err != nil {
//		return err
//	}
//
//	fitted, err := prepare.FitToTiles(img)
//	if err != nil {
//		return err
//	}
//	out, err := ascii.ProcessImage(ascii.FromImage(fitted), cfg, glyphs)
//	if err != nil {
//		return err
//	}
//	out.SavePNG("out.png")
//
// # Inputs
//
// The core never resizes or corrects its inputs. Width and height must be
// non-zero multiples of 8 (see package prepare), the Config must come from
// NewConfig, and the glyph sheets must match the configured fill level count.
// Violations are reported as ConfigError, DimensionError or AssetError before
// any stage runs.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Gradient angles are atan2(gy, gx) in image coordinates
package ascii

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
