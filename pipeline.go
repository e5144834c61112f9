package ascii

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/ascii/internal/charset"
	"github.com/gogpu/ascii/internal/filter"
	"github.com/gogpu/ascii/internal/parallel"
	"github.com/gogpu/ascii/internal/raster"
	"github.com/gogpu/ascii/internal/tile"
)

// Pipeline runs the ASCII shader on a fixed-size worker pool.
//
// A Pipeline holds no per-image state: every intermediate map is allocated
// by the call that uses it and dropped when the call returns. A Pipeline is
// safe for concurrent use; concurrent calls share the pool.
type Pipeline struct {
	pool *parallel.WorkerPool
}

// NewPipeline creates a pipeline and starts its workers.
//
// Example:
//
//	p := ascii.NewPipeline(ascii.WithWorkers(4))
//	defer p.Close()
//	out, err := p.Process(src, cfg, glyphs)
func NewPipeline(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{pool: parallel.NewWorkerPool(o.workers)}
}

// Workers returns the size of the worker pool.
func (p *Pipeline) Workers() int {
	return p.pool.Workers()
}

// Close stops the workers. A closed Pipeline still works, running every
// stage on the calling goroutine. Close is safe to call multiple times.
func (p *Pipeline) Close() {
	p.pool.Close()
}

// Process runs all eight stages and returns the rendered image, which has
// the same dimensions as src and belongs to the caller.
//
// Inputs are validated in a fixed order before any stage runs: cfg
// (*ConfigError), then the dimensions of src (*DimensionError), then glyphs
// (*AssetError). Partial results are never returned.
func (p *Pipeline) Process(src *Pixmap, cfg Config, glyphs *GlyphSet) (*Pixmap, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	if err := checkDimensions(src); err != nil {
		return nil, err
	}
	if err := checkGlyphs(glyphs, cfg); err != nil {
		return nil, err
	}

	a := p.analyze(src, cfg)
	return p.render(a, src, cfg, glyphs), nil
}

// Analyze runs stages 1 to 7 (luminance through glyph selection) and
// returns the per-tile results without rendering.
func (p *Pipeline) Analyze(src *Pixmap, cfg Config) (*Analysis, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	if err := checkDimensions(src); err != nil {
		return nil, err
	}
	return p.analyze(src, cfg), nil
}

// Render runs stage 8 for an Analysis produced from src. Only the color
// settings of cfg are used; glyphs must have as many fill cells as the
// configuration a was analyzed with.
func (p *Pipeline) Render(a *Analysis, src *Pixmap, cfg Config, glyphs *GlyphSet) (*Pixmap, error) {
	if a == nil {
		panic("ascii: Render called with nil Analysis")
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	if err := checkDimensions(src); err != nil {
		return nil, err
	}
	if src.Width() != a.grid.Width() || src.Height() != a.grid.Height() {
		return nil, &DimensionError{Width: src.Width(), Height: src.Height()}
	}
	if err := checkGlyphs(glyphs, a.cfg); err != nil {
		return nil, err
	}
	return p.render(a, src, cfg, glyphs), nil
}

func (p *Pipeline) analyze(src *Pixmap, cfg Config) *Analysis {
	w, h := src.Width(), src.Height()
	grid := tile.NewGrid(w, h)
	log := Logger()

	start := time.Now()
	lum := filter.Luminance(p.pool, src.Data(), w, h)
	logStage(log, "luminance", start)

	start = time.Now()
	radius := cfg.KernelSize()
	blur1 := filter.GaussianBlur(p.pool, lum, radius, cfg.Sigma())
	blur2 := filter.GaussianBlur(p.pool, lum, radius, cfg.Sigma()*cfg.SigmaScale())
	logStage(log, "blur", start, "radius", radius)

	start = time.Now()
	dog := filter.DifferenceOfGaussians(p.pool, blur1, blur2, float32(cfg.Tau()), float32(cfg.Threshold()))
	logStage(log, "dog", start)

	start = time.Now()
	grad := filter.Sobel(p.pool, dog)
	logStage(log, "sobel", start)

	start = time.Now()
	dirs := tile.Vote(p.pool, grid, grad, tile.VoteParams{
		Threshold: cfg.EdgeThreshold(),
		Floor:     float32(cfg.MagnitudeFloor()),
	})
	logStage(log, "vote", start, "tiles", grid.Len())

	start = time.Now()
	lums := tile.MeanLuminance(p.pool, grid, lum)
	logStage(log, "reduce", start)

	start = time.Now()
	glyphs := charset.SelectAll(p.pool, dirs, lums, charset.Rules{
		Levels:    cfg.FillLevels(),
		DrawEdges: cfg.DrawEdges(),
		DrawFill:  cfg.DrawFill(),
		Invert:    cfg.InvertLuminance(),
	})
	logStage(log, "select", start)

	return &Analysis{grid: grid, cfg: cfg, dirs: dirs, lums: lums, glyphs: glyphs}
}

func (p *Pipeline) render(a *Analysis, src *Pixmap, cfg Config, glyphs *GlyphSet) *Pixmap {
	start := time.Now()
	dst := NewPixmap(src.Width(), src.Height())
	raster.Render(p.pool, dst.data, src.data, a.grid, a.glyphs, &glyphs.palette, raster.Style{
		Foreground: cfg.ASCIIColor().Color(),
		Background: cfg.BackgroundColor().Color(),
		FromSource: cfg.ColorMode() == ColorModeSource,
	})
	logStage(Logger(), "render", start, "mode", cfg.ColorMode())
	return dst
}

// logStage emits one debug record per finished stage.
func logStage(log *slog.Logger, stage string, start time.Time, attrs ...any) {
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	log.Debug("ascii: stage done", append([]any{"stage", stage, "elapsed", time.Since(start)}, attrs...)...)
}

// checkDimensions reports a *DimensionError unless src can be tiled exactly.
func checkDimensions(src *Pixmap) error {
	if src == nil {
		return &DimensionError{}
	}
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 || !tile.Aligned(w, h) || len(src.data) != w*h*4 {
		return &DimensionError{Width: w, Height: h}
	}
	return nil
}

var (
	sharedOnce     sync.Once
	sharedPipeline *Pipeline
)

// ProcessImage runs the pipeline on a shared pool sized to GOMAXPROCS.
// The pool is created on first use and lives for the rest of the process.
// See Pipeline.Process for the validation order and error types.
func ProcessImage(src *Pixmap, cfg Config, glyphs *GlyphSet) (*Pixmap, error) {
	sharedOnce.Do(func() {
		sharedPipeline = NewPipeline()
	})
	return sharedPipeline.Process(src, cfg, glyphs)
}
