package ascii

import (
	"fmt"
	"math"
)

// ColorMode selects how glyph pixels are colored.
type ColorMode uint8

const (
	// ColorModeSolid paints glyphs in the ASCII color over the background color.
	ColorModeSolid ColorMode = iota

	// ColorModeSource paints glyph pixels with the source pixel color and the
	// remaining cell pixels with the source color darkened to 20%.
	ColorModeSource
)

// String returns the mode name as used in presets and flags.
func (m ColorMode) String() string {
	switch m {
	case ColorModeSolid:
		return "solid"
	case ColorModeSource:
		return "source"
	default:
		return fmt.Sprintf("ColorMode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	if m > ColorModeSource {
		return nil, &ConfigError{Field: "color_mode", Value: uint8(m), Reason: "unknown mode"}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "solid":
		*m = ColorModeSolid
	case "source":
		*m = ColorModeSource
	default:
		return &ConfigError{Field: "color_mode", Value: string(text), Reason: `want "solid" or "source"`}
	}
	return nil
}

// Default values used by NewConfig.
const (
	DefaultKernelSize     = 2
	DefaultSigma          = 2.0
	DefaultSigmaScale     = 1.6
	DefaultTau            = 1.0
	DefaultThreshold      = 0.005
	DefaultEdgeThreshold  = 8
	DefaultMagnitudeFloor = 0.01
	DefaultFillLevels     = 10
)

// Config holds the pipeline tunables. It is an immutable value: construct it
// with NewConfig or DefaultConfig and derive variants with With. The zero
// Config is not valid and is rejected by every pipeline operation.
type Config struct {
	kernelSize     int
	sigma          float64
	sigmaScale     float64
	tau            float64
	threshold      float64
	edgeThreshold  int
	magnitudeFloor float64
	fillLevels     int
	asciiColor     RGB
	bgColor        RGB
	drawEdges      bool
	drawFill       bool
	invert         bool
	colorMode      ColorMode

	valid bool
}

// ConfigOption sets one Config field. Values are checked by NewConfig and
// With after all options have been applied.
type ConfigOption func(*Config)

// NewConfig returns the default configuration with opts applied.
// It returns a *ConfigError (wrapping ErrConfig) if any value is out of range.
//
// Example:
//
//	cfg, err := ascii.NewConfig(
//	    ascii.WithSigma(1.4),
//	    ascii.WithEdgeThreshold(12),
//	)
func NewConfig(opts ...ConfigOption) (Config, error) {
	return defaultConfig().With(opts...)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	c := defaultConfig()
	c.valid = true
	return c
}

func defaultConfig() Config {
	return Config{
		kernelSize:     DefaultKernelSize,
		sigma:          DefaultSigma,
		sigmaScale:     DefaultSigmaScale,
		tau:            DefaultTau,
		threshold:      DefaultThreshold,
		edgeThreshold:  DefaultEdgeThreshold,
		magnitudeFloor: DefaultMagnitudeFloor,
		fillLevels:     DefaultFillLevels,
		asciiColor:     White,
		bgColor:        Black,
		drawEdges:      true,
		drawFill:       true,
		colorMode:      ColorModeSolid,
	}
}

// With returns a copy of c with opts applied. The receiver is unchanged.
// Options applied to the zero Config start from the defaults.
func (c Config) With(opts ...ConfigOption) (Config, error) {
	if !c.valid {
		c = defaultConfig()
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	c.valid = true
	return c, nil
}

// validate checks every field in declaration order and reports the first
// violation.
func (c *Config) validate() error {
	switch {
	case c.kernelSize < 1 || c.kernelSize > 10:
		return rangeError("kernel_size", c.kernelSize, 1, 10)
	case !inRange(c.sigma, 0, 5):
		return rangeError("sigma", c.sigma, 0, 5)
	case !inRange(c.sigmaScale, 0, 5):
		return rangeError("sigma_scale", c.sigmaScale, 0, 5)
	case !inRange(c.tau, 0, 1.1):
		return rangeError("tau", c.tau, 0, 1.1)
	case !inRange(c.threshold, 0.001, 0.1):
		return rangeError("threshold", c.threshold, 0.001, 0.1)
	case c.edgeThreshold < 0 || c.edgeThreshold > 64:
		return rangeError("edge_threshold", c.edgeThreshold, 0, 64)
	case !inRange(c.magnitudeFloor, 0, 1):
		return rangeError("magnitude_floor", c.magnitudeFloor, 0, 1)
	case c.fillLevels < 1 || c.fillLevels > 64:
		return rangeError("fill_levels", c.fillLevels, 1, 64)
	case c.colorMode > ColorModeSource:
		return &ConfigError{Field: "color_mode", Value: c.colorMode, Reason: "unknown mode"}
	}
	return nil
}

// inRange reports whether lo <= v <= hi. NaN is never in range.
func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

func rangeError[T int | float64](field string, v, lo, hi T) error {
	return &ConfigError{Field: field, Value: v, Reason: fmt.Sprintf("must be in [%v, %v]", lo, hi)}
}

// check returns a *ConfigError if c was not built by NewConfig.
func (c Config) check() error {
	if !c.valid {
		return &ConfigError{Field: "config", Value: "zero value", Reason: "use NewConfig or DefaultConfig"}
	}
	return nil
}

// KernelSize returns the Gaussian kernel radius.
func (c Config) KernelSize() int { return c.kernelSize }

// Sigma returns the standard deviation of the first blur.
func (c Config) Sigma() float64 { return c.sigma }

// SigmaScale returns the multiplier applied to Sigma for the second blur.
func (c Config) SigmaScale() float64 { return c.sigmaScale }

// Tau returns the weight of the second blur in the difference of Gaussians.
func (c Config) Tau() float64 { return c.tau }

// Threshold returns the edge strength below which DoG output is zeroed.
func (c Config) Threshold() float64 { return c.threshold }

// EdgeThreshold returns the minimum winning vote count for an edge tile.
func (c Config) EdgeThreshold() int { return c.edgeThreshold }

// MagnitudeFloor returns the gradient magnitude a pixel must exceed to vote.
func (c Config) MagnitudeFloor() float64 { return c.magnitudeFloor }

// FillLevels returns the number of fill glyphs.
func (c Config) FillLevels() int { return c.fillLevels }

// ASCIIColor returns the glyph color used by ColorModeSolid.
func (c Config) ASCIIColor() RGB { return c.asciiColor }

// BackgroundColor returns the background color used by ColorModeSolid.
func (c Config) BackgroundColor() RGB { return c.bgColor }

// DrawEdges reports whether edge glyphs are drawn.
func (c Config) DrawEdges() bool { return c.drawEdges }

// DrawFill reports whether fill glyphs are drawn.
func (c Config) DrawFill() bool { return c.drawFill }

// InvertLuminance reports whether fill selection uses 1 - luminance.
func (c Config) InvertLuminance() bool { return c.invert }

// ColorMode returns the render color mode.
func (c Config) ColorMode() ColorMode { return c.colorMode }

// WithKernelSize sets the Gaussian kernel radius, 1 to 10.
// The kernel has 2*size+1 taps.
func WithKernelSize(size int) ConfigOption {
	return func(c *Config) { c.kernelSize = size }
}

// WithSigma sets the standard deviation of the first blur, 0 to 5.
// A sigma of 0 disables blurring.
func WithSigma(sigma float64) ConfigOption {
	return func(c *Config) { c.sigma = sigma }
}

// WithSigmaScale sets the multiplier for the second blur's sigma, 0 to 5.
func WithSigmaScale(scale float64) ConfigOption {
	return func(c *Config) { c.sigmaScale = scale }
}

// WithTau sets the DoG sharpening factor, 0 to 1.1.
func WithTau(tau float64) ConfigOption {
	return func(c *Config) { c.tau = tau }
}

// WithThreshold sets the DoG edge floor, 0.001 to 0.1.
func WithThreshold(threshold float64) ConfigOption {
	return func(c *Config) { c.threshold = threshold }
}

// WithEdgeThreshold sets the minimum vote count for an edge tile, 0 to 64.
func WithEdgeThreshold(votes int) ConfigOption {
	return func(c *Config) { c.edgeThreshold = votes }
}

// WithMagnitudeFloor sets the significance floor for voting pixels, 0 to 1.
func WithMagnitudeFloor(floor float64) ConfigOption {
	return func(c *Config) { c.magnitudeFloor = floor }
}

// WithFillLevels sets the number of fill glyphs, 1 to 64.
func WithFillLevels(n int) ConfigOption {
	return func(c *Config) { c.fillLevels = n }
}

// WithASCIIColor sets the glyph color.
func WithASCIIColor(col RGB) ConfigOption {
	return func(c *Config) { c.asciiColor = col }
}

// WithBackgroundColor sets the background color.
func WithBackgroundColor(col RGB) ConfigOption {
	return func(c *Config) { c.bgColor = col }
}

// WithDrawEdges enables or disables edge glyphs.
func WithDrawEdges(on bool) ConfigOption {
	return func(c *Config) { c.drawEdges = on }
}

// WithDrawFill enables or disables fill glyphs.
func WithDrawFill(on bool) ConfigOption {
	return func(c *Config) { c.drawFill = on }
}

// WithInvertLuminance inverts the brightness used for fill selection.
func WithInvertLuminance(on bool) ConfigOption {
	return func(c *Config) { c.invert = on }
}

// WithColorMode sets the render color mode.
func WithColorMode(m ColorMode) ConfigOption {
	return func(c *Config) { c.colorMode = m }
}
