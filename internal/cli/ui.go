package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/ascii"
)

var (
	colorGreen = lipgloss.Color("35")  // Green - success
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
)

const iconSuccess = "✓"

// printSuccess prints a success line with an optional dimmed detail.
func printSuccess(w io.Writer, msg, detail string) {
	line := styleIconSuccess.Render(iconSuccess) + " " + msg
	if detail != "" {
		line += " " + styleDim.Render(detail)
	}
	_, _ = fmt.Fprintln(w, line)
}

// artStyle colors terminal ASCII art with the configured colors.
func artStyle(cfg ascii.Config) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cfg.ASCIIColor().String())).
		Background(lipgloss.Color(cfg.BackgroundColor().String()))
}
