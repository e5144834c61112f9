package ascii

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"KernelSize", cfg.KernelSize(), 2},
		{"Sigma", cfg.Sigma(), 2.0},
		{"SigmaScale", cfg.SigmaScale(), 1.6},
		{"Tau", cfg.Tau(), 1.0},
		{"Threshold", cfg.Threshold(), 0.005},
		{"EdgeThreshold", cfg.EdgeThreshold(), 8},
		{"MagnitudeFloor", cfg.MagnitudeFloor(), 0.01},
		{"FillLevels", cfg.FillLevels(), 10},
		{"ASCIIColor", cfg.ASCIIColor(), White},
		{"BackgroundColor", cfg.BackgroundColor(), Black},
		{"DrawEdges", cfg.DrawEdges(), true},
		{"DrawFill", cfg.DrawFill(), true},
		{"InvertLuminance", cfg.InvertLuminance(), false},
		{"ColorMode", cfg.ColorMode(), ColorModeSolid},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	fromNew, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() = %v", err)
	}
	if fromNew != cfg {
		t.Error("NewConfig() differs from DefaultConfig()")
	}
}

func TestNewConfigAcceptsBounds(t *testing.T) {
	tests := []struct {
		name string
		opt  ConfigOption
	}{
		{"kernel min", WithKernelSize(1)},
		{"kernel max", WithKernelSize(10)},
		{"sigma zero", WithSigma(0)},
		{"sigma max", WithSigma(5)},
		{"sigma scale zero", WithSigmaScale(0)},
		{"tau zero", WithTau(0)},
		{"tau max", WithTau(1.1)},
		{"threshold min", WithThreshold(0.001)},
		{"threshold max", WithThreshold(0.1)},
		{"edge threshold zero", WithEdgeThreshold(0)},
		{"edge threshold max", WithEdgeThreshold(64)},
		{"floor zero", WithMagnitudeFloor(0)},
		{"fill one", WithFillLevels(1)},
		{"fill max", WithFillLevels(64)},
		{"source mode", WithColorMode(ColorModeSource)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewConfig(tt.opt); err != nil {
				t.Errorf("NewConfig: %v", err)
			}
		})
	}
}

func TestNewConfigRejectsOutOfRange(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name  string
		opt   ConfigOption
		field string
	}{
		{"kernel zero", WithKernelSize(0), "kernel_size"},
		{"kernel too large", WithKernelSize(11), "kernel_size"},
		{"sigma negative", WithSigma(-0.1), "sigma"},
		{"sigma too large", WithSigma(5.01), "sigma"},
		{"sigma NaN", WithSigma(nan), "sigma"},
		{"sigma scale too large", WithSigmaScale(6), "sigma_scale"},
		{"sigma scale infinite", WithSigmaScale(math.Inf(1)), "sigma_scale"},
		{"tau too large", WithTau(1.2), "tau"},
		{"tau NaN", WithTau(nan), "tau"},
		{"threshold too small", WithThreshold(0.0005), "threshold"},
		{"threshold too large", WithThreshold(0.2), "threshold"},
		{"edge threshold negative", WithEdgeThreshold(-1), "edge_threshold"},
		{"edge threshold too large", WithEdgeThreshold(65), "edge_threshold"},
		{"floor NaN", WithMagnitudeFloor(nan), "magnitude_floor"},
		{"floor too large", WithMagnitudeFloor(1.5), "magnitude_floor"},
		{"fill zero", WithFillLevels(0), "fill_levels"},
		{"fill too many", WithFillLevels(65), "fill_levels"},
		{"unknown mode", WithColorMode(ColorMode(9)), "color_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.opt)
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}

			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %T, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
			if cfg != (Config{}) {
				t.Error("rejected config should be the zero value")
			}
		})
	}
}

func TestConfigWithIsCopy(t *testing.T) {
	base := DefaultConfig()

	derived, err := base.With(WithSigma(1.25), WithDrawFill(false))
	if err != nil {
		t.Fatal(err)
	}

	if base.Sigma() != DefaultSigma || !base.DrawFill() {
		t.Error("With modified the receiver")
	}
	if derived.Sigma() != 1.25 || derived.DrawFill() {
		t.Error("With did not apply options")
	}
	if derived.KernelSize() != base.KernelSize() {
		t.Error("With lost unrelated fields")
	}
}

func TestConfigWithRejectsAndKeepsReceiver(t *testing.T) {
	base := mustConfig(t, WithEdgeThreshold(12))

	if _, err := base.With(WithTau(-1)); !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
	if base.EdgeThreshold() != 12 {
		t.Error("failed With changed the receiver")
	}
}

func TestZeroConfigRejected(t *testing.T) {
	var cfg Config
	if err := cfg.check(); !errors.Is(err, ErrConfig) {
		t.Errorf("zero Config check() = %v, want ErrConfig", err)
	}

	// Deriving from the zero value starts at the defaults.
	derived, err := cfg.With(WithKernelSize(3))
	if err != nil {
		t.Fatal(err)
	}
	if derived.Sigma() != DefaultSigma || derived.KernelSize() != 3 {
		t.Errorf("With on zero Config = sigma %v kernel %d", derived.Sigma(), derived.KernelSize())
	}
}

func TestColorModeText(t *testing.T) {
	for _, m := range []ColorMode{ColorModeSolid, ColorModeSource} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%v: MarshalText: %v", m, err)
		}
		var back ColorMode
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("%v: UnmarshalText(%q): %v", m, text, err)
		}
		if back != m {
			t.Errorf("round trip %v -> %q -> %v", m, text, back)
		}
	}

	var m ColorMode
	if err := m.UnmarshalText([]byte("rainbow")); !errors.Is(err, ErrConfig) {
		t.Errorf("UnmarshalText(rainbow) = %v, want ErrConfig", err)
	}
	if _, err := ColorMode(7).MarshalText(); err == nil {
		t.Error("MarshalText of unknown mode should fail")
	}
}
