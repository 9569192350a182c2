package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/auth"
	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/style"
)

// CheckToken exits with instructions when no TMDB token is configured.
func CheckToken() {
	if auth.Token().IsPresent() {
		return
	}

	printMissingTokenError()
	os.Exit(1)
}

func printMissingTokenError() {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing TMDB token", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("%s needs a TMDB API read access token to browse the catalog.", constant.App))

	hint := fmt.Sprintf(
		"\n\nStore one in the system keyring:\n  %s\nor set it in the config:\n  %s",
		style.New().Foreground(style.AccentColor).Bold(true).Render(constant.App+" auth set"),
		style.New().Foreground(style.AccentColor).Bold(true).Render(constant.App+" config set "+key.TMDBToken+" <token>"),
	)

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			hint,
		),
	))
}
