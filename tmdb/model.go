package tmdb

import (
	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/lo"
)

type page struct {
	Page         int      `json:"page"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
	Results      []result `json:"results"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// result covers list entries, search hits and detail responses.
type result struct {
	ID               int     `json:"id"`
	MediaType        string  `json:"media_type"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	VoteAverage      float64 `json:"vote_average"`
	PosterPath       string  `json:"poster_path"`
	GenreIDs         []int   `json:"genre_ids"`
	Genres           []genre `json:"genres"`
	OriginalLanguage string  `json:"original_language"`
}

// item converts r, using names to translate genre ids. Detail responses
// already carry genre names.
func (r result) item(kind catalog.Kind, names map[int]string) *catalog.Item {
	if r.MediaType != "" {
		kind = catalog.Kind(r.MediaType)
	}

	genres := lo.Map(r.Genres, func(g genre, _ int) string { return g.Name })
	if len(genres) == 0 {
		genres = lo.FilterMap(r.GenreIDs, func(id int, _ int) (string, bool) {
			name, ok := names[id]
			return name, ok
		})
	}

	return &catalog.Item{
		ID:           catalog.NewID(kind, r.ID),
		Kind:         kind,
		Title:        r.Title,
		Name:         r.Name,
		Overview:     r.Overview,
		ReleaseDate:  r.ReleaseDate,
		FirstAirDate: r.FirstAirDate,
		Rating:       r.VoteAverage,
		PosterPath:   r.PosterPath,
		Genres:       genres,
		Language:     r.OriginalLanguage,
	}
}

func (r result) valid(kind catalog.Kind) bool {
	if r.MediaType != "" {
		kind = catalog.Kind(r.MediaType)
	}

	return r.ID > 0 && kind.Valid()
}
