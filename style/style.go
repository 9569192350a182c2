// Package style holds small lipgloss helpers shared by the TUI and the CLI output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a render function that applies the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a render function that constrains output to max columns.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

var Title = func(s string) string {
	return Colored(color.Ivory, color.Indigo).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.Ivory, color.Red).Padding(0, 1).Render(s)
}

// Tag renders s as a padded colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Modal is the frame of the detail overlay.
func Modal(width int) lipgloss.Style {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ActiveBorderColor).
		Padding(1, 2).
		Width(width)
}

// Skeleton renders a placeholder bar of the given width.
func Skeleton(width int) string {
	if width < 1 {
		width = 1
	}

	return Colored(Surface, "").Render(strings.Repeat("░", width))
}
