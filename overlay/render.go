package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/open"
	"github.com/marquee-cli/marquee/style"
	"github.com/muesli/reflow/wordwrap"
)

const (
	NoTrailerText = "No trailer available"
	minWidth      = 24
	// border and horizontal padding of style.Modal
	frameWidth = 6
)

// Render draws the overlay described by s in at most width columns.
// A closed overlay renders as the empty string.
func Render(s Snapshot, width int) string {
	if !s.IsOpen || s.Item == nil {
		return ""
	}

	width = max(width, minWidth)
	inner := width - frameWidth

	var body string
	if s.IsLoading {
		body = renderLoading(inner)
	} else {
		body = renderReady(s, inner)
	}

	return style.Modal(width - 2).Render(body)
}

func renderLoading(width int) string {
	lines := []string{
		style.Skeleton(width * 2 / 3),
		"",
		style.Skeleton(width / 3),
		"",
		style.Skeleton(width),
		style.Skeleton(width),
		style.Skeleton(width / 2),
		"",
		style.Faint("Loading..."),
	}

	return strings.Join(lines, "\n")
}

func renderReady(s Snapshot, width int) string {
	item := s.Item
	label := style.Fg(style.SecondaryColor)

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(
			wordwrap.String(catalog.DisplayTitle(item), width),
		),
		"",
		label("Release Date: ") + catalog.DisplayDate(item),
		"",
		wordwrap.String(catalog.DisplayOverview(item), width),
		"",
	}

	if rating, ok := catalog.DisplayRating(item).Get(); ok {
		lines = append(lines, label("Rating: ")+style.Fg(style.RatingColor)("★ "+rating))
	}

	if lang, ok := catalog.DisplayLanguage(item).Get(); ok {
		lines = append(lines, label("Language: ")+lang)
	}

	if genres, ok := catalog.DisplayGenres(item).Get(); ok {
		lines = append(lines, wordwrap.String(label("Genres: ")+genres, width))
	}

	if s.TrailerKey != "" {
		lines = append(lines, label("Watch Trailer: ")+style.Fg(style.LinkColor)(open.TrailerURL(s.TrailerKey)))
	} else {
		lines = append(lines, style.Faint(NoTrailerText))
	}

	return strings.Join(lines, "\n")
}
