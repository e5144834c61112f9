package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configFlags binds one flag per Preset field. Values are applied on top of
// a loaded preset only for flags set on the command line.
type configFlags struct {
	preset string
	vals   Preset
	mode   string
}

// presetFields maps flag names to the field they override.
var presetFields = []struct {
	name  string
	apply func(dst *Preset, f *configFlags) error
}{
	{"kernel-size", func(d *Preset, f *configFlags) error { d.KernelSize = f.vals.KernelSize; return nil }},
	{"sigma", func(d *Preset, f *configFlags) error { d.Sigma = f.vals.Sigma; return nil }},
	{"sigma-scale", func(d *Preset, f *configFlags) error { d.SigmaScale = f.vals.SigmaScale; return nil }},
	{"tau", func(d *Preset, f *configFlags) error { d.Tau = f.vals.Tau; return nil }},
	{"threshold", func(d *Preset, f *configFlags) error { d.Threshold = f.vals.Threshold; return nil }},
	{"edge-threshold", func(d *Preset, f *configFlags) error { d.EdgeThreshold = f.vals.EdgeThreshold; return nil }},
	{"magnitude-floor", func(d *Preset, f *configFlags) error { d.MagnitudeFloor = f.vals.MagnitudeFloor; return nil }},
	{"fill-levels", func(d *Preset, f *configFlags) error { d.FillLevels = f.vals.FillLevels; return nil }},
	{"ascii-color", func(d *Preset, f *configFlags) error { d.ASCIIColor = f.vals.ASCIIColor; return nil }},
	{"bg-color", func(d *Preset, f *configFlags) error { d.BackgroundColor = f.vals.BackgroundColor; return nil }},
	{"draw-edges", func(d *Preset, f *configFlags) error { d.DrawEdges = f.vals.DrawEdges; return nil }},
	{"draw-fill", func(d *Preset, f *configFlags) error { d.DrawFill = f.vals.DrawFill; return nil }},
	{"invert", func(d *Preset, f *configFlags) error { d.InvertLuminance = f.vals.InvertLuminance; return nil }},
	{"color-mode", func(d *Preset, f *configFlags) error {
		if err := d.ColorMode.UnmarshalText([]byte(f.mode)); err != nil {
			return fmt.Errorf("--color-mode: %w", err)
		}
		return nil
	}},
	{"edge-runes", func(d *Preset, f *configFlags) error { d.EdgeRunes = f.vals.EdgeRunes; return nil }},
	{"fill-runes", func(d *Preset, f *configFlags) error { d.FillRunes = f.vals.FillRunes; return nil }},
}

// register adds the configuration flags to fs.
func (f *configFlags) register(fs *pflag.FlagSet) {
	def := DefaultPreset()

	fs.StringVar(&f.preset, "preset", "", "TOML preset file (flags override its values)")
	fs.IntVar(&f.vals.KernelSize, "kernel-size", def.KernelSize, "Gaussian kernel radius (1-10)")
	fs.Float64Var(&f.vals.Sigma, "sigma", def.Sigma, "first blur sigma (0-5)")
	fs.Float64Var(&f.vals.SigmaScale, "sigma-scale", def.SigmaScale, "second blur sigma multiplier (0-5)")
	fs.Float64Var(&f.vals.Tau, "tau", def.Tau, "difference of Gaussians sharpening (0-1.1)")
	fs.Float64Var(&f.vals.Threshold, "threshold", def.Threshold, "edge strength floor (0.001-0.1)")
	fs.IntVar(&f.vals.EdgeThreshold, "edge-threshold", def.EdgeThreshold, "minimum votes for an edge tile (0-64)")
	fs.Float64Var(&f.vals.MagnitudeFloor, "magnitude-floor", def.MagnitudeFloor, "minimum gradient magnitude to vote (0-1)")
	fs.IntVar(&f.vals.FillLevels, "fill-levels", def.FillLevels, "number of fill glyphs (1-64)")
	fs.StringVar(&f.vals.ASCIIColor, "ascii-color", def.ASCIIColor, "glyph color (#rrggbb)")
	fs.StringVar(&f.vals.BackgroundColor, "bg-color", def.BackgroundColor, "background color (#rrggbb)")
	fs.BoolVar(&f.vals.DrawEdges, "draw-edges", def.DrawEdges, "draw edge glyphs")
	fs.BoolVar(&f.vals.DrawFill, "draw-fill", def.DrawFill, "draw fill glyphs")
	fs.BoolVar(&f.vals.InvertLuminance, "invert", def.InvertLuminance, "invert brightness for fill glyphs")
	fs.StringVar(&f.mode, "color-mode", def.ColorMode.String(), `glyph coloring: "solid" or "source"`)
	fs.StringVar(&f.vals.EdgeRunes, "edge-runes", def.EdgeRunes, "the four edge characters")
	fs.StringVar(&f.vals.FillRunes, "fill-runes", "", "fill characters, darkest first (default: ramp of --fill-levels)")
}

// resolve loads the preset, if any, and applies the flags set on cmd.
func (f *configFlags) resolve(cmd *cobra.Command) (Preset, error) {
	p := DefaultPreset()
	if f.preset != "" {
		loaded, err := LoadPreset(f.preset)
		if err != nil {
			return Preset{}, err
		}
		p = loaded
	}

	for _, field := range presetFields {
		if !cmd.Flags().Changed(field.name) {
			continue
		}
		if err := field.apply(&p, f); err != nil {
			return Preset{}, err
		}
	}
	return p, nil
}
