package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ascii"
	"github.com/gogpu/ascii/glyphsheet"
)

// Preset is the TOML form of a pipeline configuration plus the character
// tables used for glyph sheets and text output.
type Preset struct {
	KernelSize      int             `toml:"kernel_size"`
	Sigma           float64         `toml:"sigma"`
	SigmaScale      float64         `toml:"sigma_scale"`
	Tau             float64         `toml:"tau"`
	Threshold       float64         `toml:"threshold"`
	EdgeThreshold   int             `toml:"edge_threshold"`
	MagnitudeFloor  float64         `toml:"magnitude_floor"`
	FillLevels      int             `toml:"fill_levels"`
	ASCIIColor      string          `toml:"ascii_color"`
	BackgroundColor string          `toml:"bg_color"`
	DrawEdges       bool            `toml:"draw_edges"`
	DrawFill        bool            `toml:"draw_fill"`
	InvertLuminance bool            `toml:"invert_luminance"`
	ColorMode       ascii.ColorMode `toml:"color_mode"`

	// EdgeRunes holds the four edge characters.
	EdgeRunes string `toml:"edge_runes"`
	// FillRunes holds one character per fill level. Empty means the default
	// ramp resampled to FillLevels.
	FillRunes string `toml:"fill_runes,omitempty"`
}

// DefaultPreset returns the preset matching ascii.DefaultConfig.
func DefaultPreset() Preset {
	cfg := ascii.DefaultConfig()
	return Preset{
		KernelSize:      cfg.KernelSize(),
		Sigma:           cfg.Sigma(),
		SigmaScale:      cfg.SigmaScale(),
		Tau:             cfg.Tau(),
		Threshold:       cfg.Threshold(),
		EdgeThreshold:   cfg.EdgeThreshold(),
		MagnitudeFloor:  cfg.MagnitudeFloor(),
		FillLevels:      cfg.FillLevels(),
		ASCIIColor:      cfg.ASCIIColor().String(),
		BackgroundColor: cfg.BackgroundColor().String(),
		DrawEdges:       cfg.DrawEdges(),
		DrawFill:        cfg.DrawFill(),
		InvertLuminance: cfg.InvertLuminance(),
		ColorMode:       cfg.ColorMode(),
		EdgeRunes:       glyphsheet.DefaultEdgeRunes,
	}
}

// LoadPreset decodes a TOML preset over the defaults. Keys the preset does
// not define keep their default values; unknown keys are an error.
func LoadPreset(path string) (Preset, error) {
	p := DefaultPreset()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Preset{}, fmt.Errorf("preset %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return p, nil
}

// Encode writes p as TOML.
func (p Preset) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// Config validates p and converts it to an ascii.Config.
func (p Preset) Config() (ascii.Config, error) {
	fg, err := ascii.Hex(p.ASCIIColor)
	if err != nil {
		return ascii.Config{}, err
	}
	bg, err := ascii.Hex(p.BackgroundColor)
	if err != nil {
		return ascii.Config{}, err
	}

	return ascii.NewConfig(
		ascii.WithKernelSize(p.KernelSize),
		ascii.WithSigma(p.Sigma),
		ascii.WithSigmaScale(p.SigmaScale),
		ascii.WithTau(p.Tau),
		ascii.WithThreshold(p.Threshold),
		ascii.WithEdgeThreshold(p.EdgeThreshold),
		ascii.WithMagnitudeFloor(p.MagnitudeFloor),
		ascii.WithFillLevels(p.FillLevels),
		ascii.WithASCIIColor(fg),
		ascii.WithBackgroundColor(bg),
		ascii.WithDrawEdges(p.DrawEdges),
		ascii.WithDrawFill(p.DrawFill),
		ascii.WithInvertLuminance(p.InvertLuminance),
		ascii.WithColorMode(p.ColorMode),
	)
}

// Runes returns the edge and fill character tables.
func (p Preset) Runes() (edge, fill string) {
	fill = p.FillRunes
	if fill == "" {
		fill = glyphsheet.Ramp(p.FillLevels)
	}
	return p.EdgeRunes, fill
}
