package cli

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/ascii"
	"github.com/gogpu/ascii/prepare"
)

// renderOptions holds the flags of the render command.
type renderOptions struct {
	config  configFlags
	glyphs  glyphFlags
	output  string
	outDir  string
	text    bool
	columns int
	workers int
	jobs    int
}

// renderJob is the resolved, read-only state shared by all inputs.
type renderJob struct {
	cfg       ascii.Config
	glyphs    *ascii.GlyphSet
	edgeRunes string
	fillRunes string
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <image>...",
		Short: "Convert images to ASCII-art PNGs",
		Long: `Convert one or more images to ASCII-art PNGs.

Each input is resized to a multiple of 8 pixels (or to --columns tiles wide),
run through the edge-aware ASCII pipeline and written next to the input as
<name>.ascii.png, or into --out-dir. Formats: PNG, JPEG, GIF, BMP, TIFF, WebP.`,
		Example: `  asciirend render photo.jpg
  asciirend render -o art.png --columns 120 --color-mode source photo.jpg
  asciirend render --preset sketch.toml --out-dir out/ *.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "" && len(args) > 1 {
				return errors.New("--output requires a single input")
			}
			return c.runRender(cmd, args, &opts)
		},
	}

	f := cmd.Flags()
	opts.config.register(f)
	opts.glyphs.register(f)
	f.StringVarP(&opts.output, "output", "o", "", "output PNG path (single input only)")
	f.StringVar(&opts.outDir, "out-dir", "", "directory for outputs (default: next to each input)")
	f.BoolVar(&opts.text, "text", false, "also write the art as a .txt file")
	f.IntVar(&opts.columns, "columns", 0, "resize to this many character columns (0: round down to a multiple of 8)")
	f.IntVar(&opts.workers, "workers", 0, "pipeline worker goroutines (0: GOMAXPROCS)")
	f.IntVarP(&opts.jobs, "jobs", "j", 2, "images processed concurrently")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, inputs []string, opts *renderOptions) error {
	preset, err := opts.config.resolve(cmd)
	if err != nil {
		return err
	}
	cfg, err := preset.Config()
	if err != nil {
		return err
	}
	glyphs, err := opts.glyphs.glyphSet(preset)
	if err != nil {
		return err
	}
	edgeRunes, fillRunes := preset.Runes()
	job := renderJob{cfg: cfg, glyphs: glyphs, edgeRunes: edgeRunes, fillRunes: fillRunes}

	p := ascii.NewPipeline(ascii.WithWorkers(opts.workers))
	defer p.Close()
	c.Logger.Debug("pipeline ready", "workers", p.Workers(), "inputs", len(inputs))

	var outMu sync.Mutex
	out := cmd.OutOrStdout()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(opts.jobs, 1))
	for _, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, detail, err := c.renderOne(p, input, opts, job)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			outMu.Lock()
			printSuccess(out, path, detail)
			outMu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// renderOne converts a single input and returns the written path and a
// short summary.
func (c *CLI) renderOne(p *ascii.Pipeline, input string, opts *renderOptions, job renderJob) (string, string, error) {
	start := time.Now()

	img, format, err := loadImage(input)
	if err != nil {
		return "", "", err
	}
	c.Logger.Debug("decoded", "input", input, "format", format, "size", img.Bounds().Size())

	fitted, err := fit(img, opts.columns)
	if err != nil {
		return "", "", err
	}
	src := ascii.FromImage(fitted)

	a, err := p.Analyze(src, job.cfg)
	if err != nil {
		return "", "", err
	}
	rendered, err := p.Render(a, src, job.cfg, job.glyphs)
	if err != nil {
		return "", "", err
	}

	path := opts.output
	if path == "" {
		path = outputPath(input, opts.outDir, ".ascii.png")
	}
	if err := rendered.SavePNG(path); err != nil {
		return "", "", err
	}

	if opts.text {
		textPath := outputPath(path, "", ".txt")
		if err := writeText(textPath, a.Text(job.edgeRunes, job.fillRunes)); err != nil {
			return "", "", err
		}
		c.Logger.Debug("wrote text", "path", textPath)
	}

	detail := fmt.Sprintf("(%dx%d, %dx%d tiles, %s)",
		src.Width(), src.Height(), a.TilesX(), a.TilesY(), time.Since(start).Round(time.Millisecond))
	return path, detail, nil
}

// fit resizes img to tile-aligned dimensions.
func fit(img image.Image, columns int) (*image.NRGBA, error) {
	if columns > 0 {
		return prepare.ScaleToColumns(img, columns)
	}
	return prepare.FitToTiles(img)
}

func writeText(path, text string) error {
	f, err := os.Create(path) //nolint:gosec // path is derived from user input intentionally
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, text); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
