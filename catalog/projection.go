package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Fallback texts for fields the source may omit.
const (
	FallbackTitle    = "Movie Title"
	FallbackDate     = "N/A"
	FallbackOverview = "No description available."
)

// DisplayTitle picks the first non-empty of title, name and FallbackTitle.
func DisplayTitle(item *Item) string {
	if item == nil {
		return FallbackTitle
	}

	return firstNonEmpty(item.Title, item.Name, FallbackTitle)
}

// DisplayDate picks the release date, then the first air date.
func DisplayDate(item *Item) string {
	if item == nil {
		return FallbackDate
	}

	return firstNonEmpty(item.ReleaseDate, item.FirstAirDate, FallbackDate)
}

func DisplayOverview(item *Item) string {
	if item == nil {
		return FallbackOverview
	}

	return firstNonEmpty(item.Overview, FallbackOverview)
}

// DisplayYear is the leading year of DisplayDate, if it has one.
func DisplayYear(item *Item) mo.Option[string] {
	date := DisplayDate(item)
	if len(date) < 4 || date == FallbackDate {
		return mo.None[string]()
	}

	return mo.Some(date[:4])
}

// DisplayRating formats a positive rating with at most one decimal, as "7.4/10".
// An unrated item has no rating line at all.
func DisplayRating(item *Item) mo.Option[string] {
	if item == nil || item.Rating <= 0 {
		return mo.None[string]()
	}

	rounded := math.Round(item.Rating*10) / 10
	return mo.Some(strconv.FormatFloat(rounded, 'f', -1, 64) + "/10")
}

// DisplayLanguage is the language code in upper case.
func DisplayLanguage(item *Item) mo.Option[string] {
	if item == nil || strings.TrimSpace(item.Language) == "" {
		return mo.None[string]()
	}

	return mo.Some(strings.ToUpper(strings.TrimSpace(item.Language)))
}

// DisplayGenres joins the genre names with commas.
func DisplayGenres(item *Item) mo.Option[string] {
	if item == nil {
		return mo.None[string]()
	}

	genres := lo.Compact(item.Genres)
	if len(genres) == 0 {
		return mo.None[string]()
	}

	return mo.Some(strings.Join(genres, ", "))
}

func firstNonEmpty(values ...string) string {
	v, _ := lo.Find(values, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
	return v
}
