package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) presetCommand() *cobra.Command {
	var config configFlags

	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Print the effective configuration as a TOML preset",
		Long: `Print the configuration that render would use, as TOML.

Start from the defaults, or from --preset, and apply any flags. The output can
be saved and passed back with --preset.`,
		Example: `  asciirend preset > default.toml
  asciirend preset --sigma 1.2 --color-mode source > sketch.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.resolve(cmd)
			if err != nil {
				return err
			}
			if _, err := p.Config(); err != nil {
				return err
			}
			return p.Encode(cmd.OutOrStdout())
		},
	}

	config.register(cmd.Flags())
	return cmd
}
