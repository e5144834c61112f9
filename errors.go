package ascii

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes. Every error returned by this
// package wraps exactly one of them; use errors.Is to classify a failure and
// errors.As to get the details.
var (
	// ErrConfig indicates a configuration parameter outside its documented range.
	ErrConfig = errors.New("ascii: invalid configuration")

	// ErrDimension indicates an input image that is empty or whose width or
	// height is not a multiple of 8.
	ErrDimension = errors.New("ascii: invalid image dimensions")

	// ErrAsset indicates a glyph sheet whose layout does not match the
	// expected columns of 8×8 cells.
	ErrAsset = errors.New("ascii: invalid glyph sheet")
)

// ConfigError describes a rejected configuration parameter.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ascii: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrConfig.
func (e *ConfigError) Unwrap() error { return ErrConfig }

// DimensionError describes an input image the pipeline cannot tile.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Sprintf("ascii: empty image %dx%d", e.Width, e.Height)
	}
	return fmt.Sprintf("ascii: image %dx%d is not a multiple of 8 in both dimensions", e.Width, e.Height)
}

// Unwrap returns ErrDimension.
func (e *DimensionError) Unwrap() error { return ErrDimension }

// AssetError describes a glyph sheet with an unexpected layout.
type AssetError struct {
	// Sheet is "edge" or "fill".
	Sheet         string
	Width, Height int
	Reason        string
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("ascii: %s sheet %dx%d: %s", e.Sheet, e.Width, e.Height, e.Reason)
}

// Unwrap returns ErrAsset.
func (e *AssetError) Unwrap() error { return ErrAsset }
