package glyphsheet

import (
	"errors"
	"image"
	"image/png"
	"math/bits"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ascii"
)

// =============================================================================
// Ramp Tests
// =============================================================================

func TestRamp(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "@"},
		{2, " @"},
		{4, " -*@"},
		{10, DefaultFillRunes},
	}

	for _, tt := range tests {
		if got := Ramp(tt.n); got != tt.want {
			t.Errorf("Ramp(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRampLong(t *testing.T) {
	got := []rune(Ramp(64))
	if len(got) != 64 {
		t.Fatalf("len(Ramp(64)) = %d, want 64", len(got))
	}
	if got[0] != ' ' || got[63] != '@' {
		t.Errorf("Ramp(64) ends = %q, %q", got[0], got[63])
	}
}

// =============================================================================
// Procedural Tests
// =============================================================================

func TestDefault(t *testing.T) {
	gs, err := Default(10)
	if err != nil {
		t.Fatalf("Default(10): %v", err)
	}
	if gs.FillLevels() != 10 {
		t.Errorf("FillLevels() = %d, want 10", gs.FillLevels())
	}

	edges := []struct {
		dir  ascii.Direction
		want uint64
	}{
		{ascii.DirectionVertical, 0x1818181818181818},
		{ascii.DirectionHorizontal, 0x000000ffff000000},
	}
	for _, e := range edges {
		if got := gs.EdgeCell(e.dir); got != e.want {
			t.Errorf("EdgeCell(%v) = %#016x, want %#016x", e.dir, got, e.want)
		}
	}

	if gs.FillCell(0) != 0 {
		t.Errorf("blank fill cell = %#x, want 0", gs.FillCell(0))
	}
	if n := bits.OnesCount64(gs.FillCell(9)); n != 37 {
		t.Errorf("'@' cell has %d pixels, want 37", n)
	}
}

func TestDefaultDiagonals(t *testing.T) {
	gs, err := Default(10)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		dir      ascii.Direction
		set      [2]int
		unset    [2]int
		wantBits int
	}{
		// '/' runs from bottom-left to top-right.
		{ascii.DirectionDiagonal1, [2]int{0, 7}, [2]int{0, 0}, 15},
		// '\' runs from top-left to bottom-right.
		{ascii.DirectionDiagonal2, [2]int{0, 0}, [2]int{0, 7}, 15},
	}

	for _, tt := range tests {
		cell := gs.EdgeCell(tt.dir)
		if n := bits.OnesCount64(cell); n != tt.wantBits {
			t.Errorf("%v: %d pixels, want %d", tt.dir, n, tt.wantBits)
		}
		if cell>>(tt.set[1]*8+tt.set[0])&1 == 0 {
			t.Errorf("%v: pixel %v should be set", tt.dir, tt.set)
		}
		if cell>>(tt.unset[1]*8+tt.unset[0])&1 != 0 {
			t.Errorf("%v: pixel %v should be clear", tt.dir, tt.unset)
		}
	}
}

func TestDefaultFillDensityGrows(t *testing.T) {
	gs, err := Default(10)
	if err != nil {
		t.Fatal(err)
	}
	// The ramp is ordered by ink: blank, dot and the full circle bracket it.
	first := bits.OnesCount64(gs.FillCell(1))
	last := bits.OnesCount64(gs.FillCell(9))
	if !(first > 0 && first < last) {
		t.Errorf("'.' has %d pixels, '@' has %d", first, last)
	}
}

func TestProceduralFallsBackToBasicFont(t *testing.T) {
	sheet, err := Procedural("AB")
	if err != nil {
		t.Fatal(err)
	}
	if sheet.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Fatalf("bounds = %v", sheet.Bounds())
	}
	if !anyInk(sheet, cellRect(0)) || !anyInk(sheet, cellRect(1)) {
		t.Error("basicfont fallback drew nothing")
	}
}

func TestProceduralRejectsWideRunes(t *testing.T) {
	_, err := Procedural("|界")
	if !errors.Is(err, ascii.ErrAsset) {
		t.Fatalf("err = %v, want ErrAsset", err)
	}
}

func TestBuildRequiresFourEdgeRunes(t *testing.T) {
	for _, edges := range []string{"", "|-/", "|-/\\x"} {
		_, err := Build(edges, DefaultFillRunes, Procedural)
		var ae *ascii.AssetError
		if !errors.As(err, &ae) || ae.Sheet != "edge" {
			t.Errorf("Build(%q) err = %v, want edge AssetError", edges, err)
		}
	}
}

// =============================================================================
// Font Tests
// =============================================================================

func TestFromFace(t *testing.T) {
	draw := FromFace(basicfont.Face7x13)

	sheet, err := draw("#@")
	if err != nil {
		t.Fatal(err)
	}
	if sheet.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Fatalf("bounds = %v", sheet.Bounds())
	}
	if !anyInk(sheet, cellRect(0)) {
		t.Error("'#' cell is empty")
	}

	gs, err := Build(DefaultEdgeRunes, DefaultFillRunes, draw)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if gs.FillLevels() != 10 {
		t.Errorf("FillLevels() = %d, want 10", gs.FillLevels())
	}
}

func TestFromFontData(t *testing.T) {
	draw, err := FromFontData(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("FromFontData: %v", err)
	}

	sheet, err := draw("#")
	if err != nil {
		t.Fatal(err)
	}
	if !anyInk(sheet, cellRect(0)) {
		t.Error("'#' cell is empty")
	}
}

func TestFromFontDataInvalid(t *testing.T) {
	if _, err := FromFontData([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}

// =============================================================================
// Load Tests
// =============================================================================

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()

	edges, err := Procedural(DefaultEdgeRunes)
	if err != nil {
		t.Fatal(err)
	}
	fill, err := Procedural(DefaultFillRunes)
	if err != nil {
		t.Fatal(err)
	}
	edgePath := filepath.Join(dir, "edges.png")
	fillPath := filepath.Join(dir, "fill.png")
	writePNG(t, edgePath, edges)
	writePNG(t, fillPath, fill)

	gs, err := LoadSet(edgePath, fillPath)
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}

	want, err := Default(10)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 10 {
		if gs.FillCell(i) != want.FillCell(i) {
			t.Errorf("fill cell %d differs after PNG round trip", i)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSetWrongLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odd.png")
	writePNG(t, path, image.NewGray(image.Rect(0, 0, 30, 8)))

	if _, err := LoadSet(path, path); !errors.Is(err, ascii.ErrAsset) {
		t.Errorf("err = %v, want ErrAsset", err)
	}
}

// =============================================================================
// Helpers
// =============================================================================

func anyInk(img *image.Gray, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				return true
			}
		}
	}
	return false
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}
