package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/lo"
)

// Search looks up movies and series matching q. People and other result
// types are skipped.
func (c *Client) Search(ctx context.Context, q string, pageNum int) ([]*catalog.Item, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, nil
	}

	query := url.Values{
		"query":         {q},
		"page":          {strconv.Itoa(max(pageNum, 1))},
		"include_adult": {"false"},
	}

	body, err := c.get(ctx, "/search/multi", query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}

	var decoded page
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("search %q: decode: %w", q, err)
	}

	names := map[catalog.Kind]map[int]string{}
	for _, kind := range []catalog.Kind{catalog.Movie, catalog.TV} {
		names[kind] = c.genresOrEmpty(ctx, kind)
	}

	return lo.FilterMap(decoded.Results, func(r result, _ int) (*catalog.Item, bool) {
		kind := catalog.Kind(r.MediaType)
		if !kind.Valid() || !r.valid(kind) {
			return nil, false
		}
		return r.item(kind, names[kind]), true
	}), nil
}
