// Package catalog holds the items marquee shows and the pure functions that
// turn them into display text.
package catalog

import "github.com/marquee-cli/marquee/constant"

// Item is a movie or series as received from the catalog source. Items are
// never modified after they are built.
type Item struct {
	ID           ID       `json:"id"`
	Kind         Kind     `json:"kind"`
	Title        string   `json:"title,omitempty"`
	Name         string   `json:"name,omitempty"`
	Overview     string   `json:"overview,omitempty"`
	ReleaseDate  string   `json:"release_date,omitempty"`
	FirstAirDate string   `json:"first_air_date,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	PosterPath   string   `json:"poster_path,omitempty"`
	Genres       []string `json:"genres,omitempty"`
	Language     string   `json:"language,omitempty"`
}

// HasPoster reports whether the item carries a poster reference.
func (i *Item) HasPoster() bool {
	return i != nil && i.PosterPath != ""
}

// PosterURL is empty when the item has no poster.
func (i *Item) PosterURL() string {
	if !i.HasPoster() {
		return ""
	}

	return constant.ImageCDNURL + i.PosterPath
}
