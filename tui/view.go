package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/marquee-cli/marquee/util"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// lines taken by the featured banner above the browse list
const featuredHeight = 4

const maxOverlayWidth = 72

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case browseState:
		output = b.viewBrowse()
	case searchState:
		output = b.viewSearch()
	case resultsState:
		output = listExtraPaddingStyle.Render(b.resultsC.View())
	case favoritesState:
		output = listExtraPaddingStyle.Render(b.favoritesC.View())
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	if snap := b.machine.Snapshot(); snap.IsOpen {
		output = b.viewOverlay(snap)
	}

	return b.notifier.View(output)
}

// viewOverlay centers the overlay on the screen.
func (b *statefulBubble) viewOverlay(snap overlay.Snapshot) string {
	width := util.Min(maxOverlayWidth, util.Max(b.width, 0))
	body := overlay.Render(snap, width)

	if snap.Item != nil && b.favorites.IsFavorite(snap.Item.ID) {
		body = lipgloss.JoinVertical(lipgloss.Center, body, style.Fg(style.FavoriteColor)(icon.Get(icon.Favorite)+" in favorites"))
	}

	if b.width <= 0 || b.height <= 0 {
		return body
	}

	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, body)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewBrowse() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		paddingStyle.Render(b.viewFeatured()),
		listExtraPaddingStyle.Render(b.browseC.View()),
	)
}

// viewFeatured is the banner for the first item of the current list.
func (b *statefulBubble) viewFeatured() string {
	if b.loading {
		return b.spinnerC.View() + " " + b.progressStatus + "\n"
	}

	if b.featured == nil {
		return style.Faint("Nothing featured") + "\n"
	}

	title := style.Bold(catalog.DisplayTitle(b.featured))
	if year, ok := catalog.DisplayYear(b.featured).Get(); ok {
		title += " " + style.Faint("("+year+")")
	}

	var action string
	switch rec := b.resolver.Peek(b.featured.ID); rec.Status {
	case trailer.Found:
		action = style.Fg(color.Gold)(icon.Get(icon.Trailer) + " Play trailer (p)")
	case trailer.NotFound:
		action = style.Faint("No Trailer Available")
	default:
		action = style.Faint("Looking for a trailer...")
	}

	overview := truncate.StringWithTail(catalog.DisplayOverview(b.featured), uint(util.Max(b.width-2, 10)), "…")
	return strings.Join([]string{
		style.Tag(style.Base, style.Peach)("Featured") + " " + title,
		style.Faint(overview),
		action,
	}, "\n")
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok && suggestion != strings.ToLower(b.inputC.Value()) {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s (tab)", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Something went wrong:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
