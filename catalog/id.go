package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/marquee-cli/marquee/util"
)

// Kind separates movies from series. TMDB numbers them independently.
type Kind string

const (
	Movie Kind = "movie"
	TV    Kind = "tv"
)

func (k Kind) Valid() bool {
	return k == Movie || k == TV
}

// ID identifies an item across kinds, formatted as "<kind>/<tmdb id>".
type ID string

var ErrInvalidID = errors.New("invalid item id")

var idPattern = regexp.MustCompile(`^(?P<kind>movie|tv)/(?P<num>[1-9][0-9]*)$`)

func NewID(kind Kind, tmdbID int) ID {
	return ID(fmt.Sprintf("%s/%d", kind, tmdbID))
}

// ParseID accepts "movie/42", "tv/1399" and a bare number, which is taken to be a movie.
func ParseID(s string) (ID, error) {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return NewID(Movie, n), nil
	}

	if groups := util.ReGroups(idPattern, s); len(groups) == 2 {
		return ID(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidID, s)
}

func (id ID) parts() map[string]string {
	return util.ReGroups(idPattern, string(id))
}

// Kind is empty for malformed ids.
func (id ID) Kind() Kind {
	return Kind(id.parts()["kind"])
}

// TMDB is the numeric id on TMDB, or 0 for malformed ids.
func (id ID) TMDB() int {
	n, _ := strconv.Atoi(id.parts()["num"])
	return n
}

func (id ID) Valid() bool {
	return idPattern.MatchString(string(id))
}

func (id ID) String() string {
	return string(id)
}
