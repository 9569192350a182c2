// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/marquee-cli/marquee/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type ItemPicker func([]*catalog.Item) *catalog.Item

// Catalog is where inline mode reads items from.
type Catalog interface {
	List(ctx context.Context, list catalog.List, page int) ([]*catalog.Item, error)
	Search(ctx context.Context, query string, page int) ([]*catalog.Item, error)
}

// Favorites reports favorite membership for the output.
type Favorites interface {
	IsFavorite(id catalog.ID) bool
}

type Options struct {
	Out       io.Writer
	Catalog   Catalog
	Videos    trailer.Source
	Favorites Favorites

	// Query searches the catalog instead of reading List.
	Query string
	List  catalog.List
	Limit int

	Json        bool
	Trailers    bool
	RetryFailed bool
	ItemPicker  mo.Option[ItemPicker]
}

// ParseItemPicker turns a selector into a picker. Selectors are "first",
// "last", "exact" (the item titled like query) or a zero-based index.
func ParseItemPicker(description, query string) (ItemPicker, error) {
	switch description {
	case "first":
		return func(items []*catalog.Item) *catalog.Item {
			if len(items) == 0 {
				return nil
			}
			return items[0]
		}, nil
	case "last":
		return func(items []*catalog.Item) *catalog.Item {
			if len(items) == 0 {
				return nil
			}
			return items[len(items)-1]
		}, nil
	case "exact":
		return func(items []*catalog.Item) *catalog.Item {
			item, _ := lo.Find(items, func(i *catalog.Item) bool {
				return strings.EqualFold(catalog.DisplayTitle(i), strings.TrimSpace(query))
			})
			return item
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid item selector: %s", description)
	}

	return func(items []*catalog.Item) *catalog.Item {
		if len(items) == 0 {
			return nil
		}
		i := util.Min(idx, uint64(len(items)-1))
		return items[i]
	}, nil
}
