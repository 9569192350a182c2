package inline

import (
	"encoding/json"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/open"
	"github.com/marquee-cli/marquee/trailer"
)

type Trailer struct {
	// Status is "found" or "not found".
	Status string `json:"status" jsonschema:"enum=found,enum=not found"`
	// Key is the YouTube video key.
	Key string `json:"key,omitempty"`
	URL string `json:"url,omitempty" jsonschema:"format=uri"`
}

type Entry struct {
	Item *catalog.Item `json:"item"`
	// Title, Date and Overview are what the detail overlay shows.
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Overview string   `json:"overview"`
	Favorite bool     `json:"favorite"`
	Trailer  *Trailer `json:"trailer,omitempty" jsonschema:"description=Present when trailers were requested"`
}

type Output struct {
	Query  string   `json:"query,omitempty"`
	List   string   `json:"list,omitempty"`
	Result []*Entry `json:"result"`
}

// newEntry leaves Trailer out when rec is nil.
func newEntry(item *catalog.Item, favorite bool, rec *trailer.Record) *Entry {
	e := &Entry{
		Item:     item,
		Title:    catalog.DisplayTitle(item),
		Date:     catalog.DisplayDate(item),
		Overview: catalog.DisplayOverview(item),
		Favorite: favorite,
	}

	if rec != nil {
		e.Trailer = trailerOf(*rec)
	}

	return e
}

func asJson(entries []*Entry, options *Options) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}

	output := &Output{Query: options.Query, Result: entries}
	if options.Query == "" {
		output.List = string(options.List)
	}

	return json.Marshal(output)
}

func trailerOf(rec trailer.Record) *Trailer {
	t := &Trailer{Status: rec.Status.String()}
	if rec.Status == trailer.Found {
		t.Key = rec.Key
		t.URL = open.TrailerURL(rec.Key)
	}

	return t
}
