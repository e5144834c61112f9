package ascii

import (
	"strings"
	"testing"
)

func TestAnalysisShape(t *testing.T) {
	p := NewPipeline(WithWorkers(2))
	defer p.Close()

	a, err := p.Analyze(noisePixmap(40, 24, 8), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if a.TilesX() != 5 || a.TilesY() != 3 {
		t.Errorf("tiles = %dx%d, want 5x3", a.TilesX(), a.TilesY())
	}

	text := a.Text("|-/\\", " .:-=+*#%@")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Text has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 5 {
			t.Errorf("line %d has %d runes, want 5", i, n)
		}
	}
}

func TestAnalysisGlyphMatchesDirection(t *testing.T) {
	p := NewPipeline(WithWorkers(2))
	defer p.Close()

	a, err := p.Analyze(noisePixmap(32, 32, 21), mustConfig(t, WithEdgeThreshold(4)))
	if err != nil {
		t.Fatal(err)
	}

	for ty := range a.TilesY() {
		for tx := range a.TilesX() {
			kind, idx := a.Glyph(tx, ty)
			d := a.Direction(tx, ty)
			if d == DirectionNone {
				if kind != GlyphFill {
					t.Errorf("tile (%d,%d): none direction with glyph kind %v", tx, ty, kind)
				}
				continue
			}
			b, _ := d.Bucket()
			if kind != GlyphEdge || idx != b {
				t.Errorf("tile (%d,%d): direction %v with glyph (%v, %d)", tx, ty, d, kind, idx)
			}
		}
	}
}

func TestAnalysisTextFallbacks(t *testing.T) {
	p := NewPipeline(WithWorkers(1))
	defer p.Close()

	a, err := p.Analyze(stepPixmap(32, 8, 16), mustConfig(t, WithSigma(1)))
	if err != nil {
		t.Fatal(err)
	}

	// Too-short tables fall back to '?'.
	if got := a.Text("", "ab"); got != "a???\n" {
		t.Errorf("Text = %q, want %q", got, "a???\n")
	}
	if got := a.Text("│─╱╲", " ░▒▓█      "); !strings.Contains(got, "││") {
		t.Errorf("Text = %q, want box-drawing edges", got)
	}
}
