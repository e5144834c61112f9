package cli

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		dir    string
		suffix string
		want   string
	}{
		{"photo.jpg", "", ".ascii.png", "photo.ascii.png"},
		{filepath.Join("a", "b", "cat.png"), "", ".ascii.png", filepath.Join("a", "b", "cat.ascii.png")},
		{filepath.Join("a", "cat.png"), "out", ".ascii.png", filepath.Join("out", "cat.ascii.png")},
		{"noext", "", ".txt", "noext.txt"},
		{"art.ascii.png", "", ".txt", "art.ascii.txt"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.input, tt.dir, tt.suffix); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.input, tt.dir, tt.suffix, got, tt.want)
		}
	}
}

// writePNG writes a w×h image with a vertical black/white edge at w/2.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := color.NRGBA{A: 255}
			if x >= w/2 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	path := writePNG(t, t.TempDir(), "in.png", 20, 12)

	img, format, err := loadImage(path)
	if err != nil {
		t.Fatalf("loadImage() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if got := img.Bounds().Size(); got != image.Pt(20, 12) {
		t.Errorf("size = %v, want 20x12", got)
	}

	if _, _, err := loadImage(filepath.Join(t.TempDir(), "none.png")); err == nil {
		t.Error("missing file should fail")
	}

	garbage := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadImage(garbage); err == nil {
		t.Error("undecodable file should fail")
	}
}
