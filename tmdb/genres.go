package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/where"
	"github.com/metafates/gache"
)

// genre tables keyed by "<kind>:<language>"
var genreCacher = sync.OnceValue(func() *gache.Cache[map[string]map[int]string] {
	return gache.New[map[string]map[int]string](&gache.Options{
		Path:       where.Genres(),
		Lifetime:   7 * 24 * time.Hour,
		FileSystem: &filesystem.GacheFs{},
	})
})

var genreMu sync.Mutex

// Genres returns the genre id to name table for kind.
func (c *Client) Genres(ctx context.Context, kind catalog.Kind) (map[int]string, error) {
	tableKey := string(kind) + ":" + c.language

	genreMu.Lock()
	defer genreMu.Unlock()

	tables, expired, err := genreCacher().Get()
	if err != nil || expired || tables == nil {
		tables = make(map[string]map[int]string)
	}

	if table, ok := tables[tableKey]; ok {
		return table, nil
	}

	body, err := c.get(ctx, "/genre/"+string(kind)+"/list", nil)
	if err != nil {
		return nil, fmt.Errorf("genres: %w", err)
	}

	var decoded struct {
		Genres []genre `json:"genres"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("genres: decode: %w", err)
	}

	table := make(map[int]string, len(decoded.Genres))
	for _, g := range decoded.Genres {
		table[g.ID] = g.Name
	}

	tables[tableKey] = table
	if err := genreCacher().Set(tables); err != nil {
		c.logger.Warnf("cache genres: %v", err)
	}

	return table, nil
}

// genresOrEmpty never fails; a list without genre names is still useful.
func (c *Client) genresOrEmpty(ctx context.Context, kind catalog.Kind) map[int]string {
	table, err := c.Genres(ctx, kind)
	if err != nil {
		c.logger.With(log.Fields{"kind": kind}).Warnf("%v", err)
		return map[int]string{}
	}

	return table
}
