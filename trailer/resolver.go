package trailer

import (
	"context"
	"errors"
	"sync"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/log"
	"golang.org/x/sync/singleflight"
)

// Source lists the videos of an item.
type Source interface {
	Videos(ctx context.Context, id catalog.ID) ([]Video, error)
}

// Lookup tells which ids belong to items loaded this session.
type Lookup interface {
	Get(id catalog.ID) (*catalog.Item, bool)
}

// Resolver turns ids into Records. Each id is fetched at most once at a
// time, and terminal answers are kept for the rest of the session.
// Fetch failures are reported as NotFound, never as errors.
type Resolver struct {
	source Source
	lookup Lookup

	mu    sync.RWMutex
	cache map[catalog.ID]Record
	group singleflight.Group

	retryFailed bool
	logger      log.Scope
}

// temporary is implemented by source errors that know whether a retry can
// help. Errors without it are treated as temporary.
type temporary interface {
	Temporary() bool
}

type Option func(*Resolver)

// WithRetryFailed leaves NotFound answers caused by a failed fetch out of
// the cache, so the next Resolve tries again.
func WithRetryFailed(retry bool) Option {
	return func(r *Resolver) {
		r.retryFailed = retry
	}
}

func NewResolver(source Source, lookup Lookup, opts ...Option) *Resolver {
	r := &Resolver{
		source: source,
		lookup: lookup,
		cache:  make(map[catalog.ID]Record),
		logger: log.For("trailer"),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Peek returns the cached record for id, or an Unresolved one.
func (r *Resolver) Peek(id catalog.ID) Record {
	if rec, ok := r.cached(id); ok {
		return rec
	}

	return Record{ID: id, Status: Unresolved}
}

// Resolve blocks until id has a terminal record. Run it off the UI loop.
// Cancelling ctx does not cancel a fetch in progress; its result still lands
// in the cache for the next caller.
func (r *Resolver) Resolve(ctx context.Context, id catalog.ID) Record {
	if rec, ok := r.cached(id); ok {
		return rec
	}

	if _, ok := r.lookup.Get(id); !ok {
		r.logger.With(log.Fields{"id": id}).Warnf("resolve requested for unknown item")
		return notFound(id)
	}

	detached := context.WithoutCancel(ctx)
	v, _, _ := r.group.Do(string(id), func() (any, error) {
		if rec, ok := r.cached(id); ok {
			return rec, nil
		}

		rec, failed := r.fetch(detached, id)
		if failed && r.retryFailed {
			return rec, nil
		}

		r.mu.Lock()
		r.cache[id] = rec
		r.mu.Unlock()
		return rec, nil
	})

	return v.(Record)
}

func (r *Resolver) fetch(ctx context.Context, id catalog.ID) (rec Record, failed bool) {
	logger := r.logger.With(log.Fields{"id": id})

	videos, err := r.source.Videos(ctx, id)
	if err != nil {
		var t temporary
		if errors.As(err, &t) && !t.Temporary() {
			logger.Debugf("no videos: %v", err)
			return notFound(id), false
		}

		logger.Warnf("fetch videos: %v", err)
		return notFound(id), true
	}

	video, ok := Select(videos).Get()
	if !ok {
		logger.Debugf("no trailer among %d videos", len(videos))
		return notFound(id), false
	}

	logger.Debugf("trailer %s", video.Key)
	return Record{ID: id, Status: Found, Key: video.Key}, false
}

func (r *Resolver) cached(id catalog.ID) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.cache[id]
	return rec, ok
}
