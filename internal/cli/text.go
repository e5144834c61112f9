package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ascii"
)

func (c *CLI) textCommand() *cobra.Command {
	var (
		config  configFlags
		columns int
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "text <image>",
		Short: "Print ASCII art to the terminal",
		Long: `Print an image as ASCII art, one character per 8x8 tile.

The image is first resized to --columns characters. Output is colored with the
configured ASCII and background colors when the terminal supports it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := config.resolve(cmd)
			if err != nil {
				return err
			}
			cfg, err := preset.Config()
			if err != nil {
				return err
			}

			img, _, err := loadImage(args[0])
			if err != nil {
				return err
			}
			fitted, err := fit(img, columns)
			if err != nil {
				return err
			}

			p := ascii.NewPipeline()
			defer p.Close()
			a, err := p.Analyze(ascii.FromImage(fitted), cfg)
			if err != nil {
				return err
			}

			art := a.Text(preset.Runes())
			if !plain {
				art = artStyle(cfg).Render(art)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), art)
			return err
		},
	}

	config.register(cmd.Flags())
	cmd.Flags().IntVar(&columns, "columns", 80, "output width in characters (0: round down to a multiple of 8 pixels)")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")

	return cmd
}
