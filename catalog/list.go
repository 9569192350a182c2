package catalog

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// List is one of the browsable catalog lists.
type List string

const (
	NowPlaying     List = "now_playing"
	Popular        List = "popular"
	TopRated       List = "top_rated"
	Upcoming       List = "upcoming"
	PopularSeries  List = "popular_series"
	TopRatedSeries List = "top_rated_series"
)

var lists = []List{NowPlaying, Popular, TopRated, Upcoming, PopularSeries, TopRatedSeries}

// Lists returns every list in browsing order.
func Lists() []List {
	return slices.Clone(lists)
}

// ListNames is Lists as strings, for flag completion and config validation.
func ListNames() []string {
	return lo.Map(lists, func(l List, _ int) string { return string(l) })
}

func ParseList(s string) (List, error) {
	l := List(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(lists, l) {
		return "", fmt.Errorf("unknown list %q, expected one of %s", s, strings.Join(ListNames(), ", "))
	}

	return l, nil
}

func (l List) Kind() Kind {
	if strings.HasSuffix(string(l), "_series") {
		return TV
	}

	return Movie
}

// Path is the TMDB endpoint serving the list.
func (l List) Path() string {
	return fmt.Sprintf("/%s/%s", l.Kind(), strings.TrimSuffix(string(l), "_series"))
}

// Title is the heading shown above the list.
func (l List) Title() string {
	words := strings.Split(string(l), "_")
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

// Next cycles through Lists.
func (l List) Next() List {
	_, i, ok := lo.FindIndexOf(lists, func(x List) bool { return x == l })
	if !ok {
		return lists[0]
	}

	return lists[(i+1)%len(lists)]
}
