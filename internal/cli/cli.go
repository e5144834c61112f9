// Package cli implements the asciirend command-line interface.
//
// # Commands
//
//   - render: convert images to ASCII-art PNGs (and optionally plain text)
//   - text: print ASCII art to the terminal
//   - preset: print the effective configuration as TOML
//
// # Configuration
//
// Every pipeline tunable has a flag. A TOML preset (--preset) supplies the
// starting values; flags given on the command line override it.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// enables the per-stage debug records of the ascii package.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ascii"
)

// appName is the application name used for display.
const appName = "asciirend"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level. The logger also
// receives the ascii package's records.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
	ascii.SetLogger(slog.New(c.Logger))
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "asciirend renders images as edge-aware ASCII art",
		Long:         `asciirend converts images into ASCII art on the CPU. Edges are drawn with oriented glyphs and flat regions with a brightness ramp.`,
		Version:      ascii.Version,
		SilenceUsage: true,
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.textCommand())
	root.AddCommand(c.presetCommand())

	return root
}
