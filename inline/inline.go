package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/trailer"
	"golang.org/x/sync/errgroup"
)

// concurrency bounds the trailer lookups running at once.
const concurrency = 4

var logger = log.For("inline")

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Read the items from a search or a list.
	var (
		items []*catalog.Item
		err   error
	)
	if options.Query != "" {
		items, err = options.Catalog.Search(ctx, options.Query, 1)
	} else {
		items, err = options.Catalog.List(ctx, options.List, 1)
	}
	if err != nil {
		return err
	}

	if options.Limit > 0 && len(items) > options.Limit {
		items = items[:options.Limit]
	}

	// Step 2: Apply item selection if a picker is defined.
	if picker, ok := options.ItemPicker.Get(); ok {
		if choice := picker(items); choice != nil {
			items = []*catalog.Item{choice}
		} else {
			items = nil
		}
	}

	// Step 3: Resolve trailers concurrently.
	var records []*trailer.Record
	if options.Trailers && len(items) > 0 {
		records, err = resolveTrailers(ctx, items, options)
		if err != nil {
			return err
		}
	}

	entries := make([]*Entry, len(items))
	for i, item := range items {
		var rec *trailer.Record
		if records != nil {
			rec = records[i]
		}

		favorite := options.Favorites != nil && options.Favorites.IsFavorite(item.ID)
		entries[i] = newEntry(item, favorite, rec)
	}

	// Step 4: Dispatch the results to the configured output writer.
	if options.Json {
		return writeJson(options.Out, entries, options)
	}

	return writeText(options.Out, entries)
}

func resolveTrailers(ctx context.Context, items []*catalog.Item, options *Options) ([]*trailer.Record, error) {
	registry := catalog.NewRegistry()
	registry.Put(items...)

	resolver := trailer.NewResolver(options.Videos, registry, trailer.WithRetryFailed(options.RetryFailed))
	records := make([]*trailer.Record, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rec := resolver.Resolve(gctx, item.ID)
			records[i] = &rec
			logger.With(log.Fields{"id": item.ID, "status": rec.Status.String()}).Debugf("trailer resolved")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func writeJson(out io.Writer, entries []*Entry, options *Options) error {
	data, err := asJson(entries, options)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// writeText prints one tab separated line per entry: id, title, date and,
// when trailers were resolved, the trailer link.
func writeText(out io.Writer, entries []*Entry) error {
	for _, e := range entries {
		fields := []string{e.Item.ID.String(), e.Title, e.Date}

		if e.Trailer != nil {
			if e.Trailer.URL != "" {
				fields = append(fields, e.Trailer.URL)
			} else {
				fields = append(fields, overlay.NoTrailerText)
			}
		}

		if _, err := fmt.Fprintln(out, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}

	return nil
}
