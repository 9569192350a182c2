package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/internal/cache"
	"github.com/samber/lo"
)

// List fetches one page of a catalog list. Pages are cached on disk for
// catalog.cache_ttl_hours. Entries that cannot be identified are dropped;
// entries without a poster are kept and left for the caller to filter.
func (c *Client) List(ctx context.Context, list catalog.List, pageNum int) ([]*catalog.Item, error) {
	pageNum = max(pageNum, 1)
	cacheKey := cache.Key("list", string(list), c.language, c.region, strconv.Itoa(pageNum))

	var items []*catalog.Item
	if cache.Read(cacheKey, &items) {
		return items, nil
	}

	query := url.Values{"page": {strconv.Itoa(pageNum)}}
	if c.region != "" {
		query.Set("region", c.region)
	}

	body, err := c.get(ctx, list.Path(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", list, err)
	}

	var decoded page
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("list %s: decode: %w", list, err)
	}

	kind := list.Kind()
	names := c.genresOrEmpty(ctx, kind)

	items = lo.FilterMap(decoded.Results, func(r result, _ int) (*catalog.Item, bool) {
		if !r.valid(kind) {
			return nil, false
		}
		return r.item(kind, names), true
	})

	if err := cache.Write(cacheKey, items); err != nil {
		c.logger.Warnf("cache list %s: %v", list, err)
	}

	return items, nil
}

// Item fetches the details of a single movie or series.
func (c *Client) Item(ctx context.Context, id catalog.ID) (*catalog.Item, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %q", catalog.ErrInvalidID, id)
	}

	body, err := c.get(ctx, "/"+id.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", id, err)
	}

	var decoded result
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("item %s: decode: %w", id, err)
	}

	// detail responses carry no media_type
	decoded.MediaType = ""
	return decoded.item(id.Kind(), nil), nil
}
