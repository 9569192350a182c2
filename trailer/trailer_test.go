package trailer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/marquee-cli/marquee/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeSource struct {
	calls  atomic.Int32
	gate   chan struct{}
	videos []Video
	err    error
}

func (f *fakeSource) Videos(ctx context.Context, _ catalog.ID) ([]Video, error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return f.videos, f.err
}

type finalError struct{}

func (finalError) Error() string   { return "404 not found" }
func (finalError) Temporary() bool { return false }

type transientError struct{}

func (transientError) Error() string   { return "503 service unavailable" }
func (transientError) Temporary() bool { return true }

var trailerVideo = Video{Key: "abc123", Site: "YouTube", Type: "Trailer"}

func registryWith(ids ...catalog.ID) *catalog.Registry {
	r := catalog.NewRegistry()
	for _, id := range ids {
		r.Put(&catalog.Item{ID: id, Kind: id.Kind(), Title: "Test Film", PosterPath: "/x.jpg"})
	}

	return r
}

func TestSelect(t *testing.T) {
	Convey("Select", t, func() {
		Convey("Should prefer a YouTube trailer", func() {
			v := Select([]Video{
				{Key: "teaser", Site: "YouTube", Type: "Teaser"},
				{Key: "vimeo", Site: "Vimeo", Type: "Trailer"},
				{Key: "trailer", Site: "YouTube", Type: "Trailer"},
			})
			So(v.MustGet().Key, ShouldEqual, "trailer")
		})

		Convey("Should fall back to the first YouTube video", func() {
			v := Select([]Video{
				{Key: "", Site: "YouTube", Type: "Trailer"},
				{Key: "clip", Site: "YouTube", Type: "Clip"},
			})
			So(v.MustGet().Key, ShouldEqual, "clip")
		})

		Convey("Should find nothing without YouTube keys", func() {
			So(Select(nil).IsAbsent(), ShouldBeTrue)
			So(Select([]Video{{Key: "x", Site: "Vimeo"}}).IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestResolver(t *testing.T) {
	id := catalog.NewID(catalog.Movie, 42)
	ctx := context.Background()

	Convey("Given a resolver over a working source", t, func() {
		src := &fakeSource{videos: []Video{trailerVideo}}
		r := NewResolver(src, registryWith(id))

		Convey("Peek should start unresolved", func() {
			So(r.Peek(id).Status, ShouldEqual, Unresolved)
			So(r.Peek(id).Terminal(), ShouldBeFalse)
		})

		Convey("Resolve should find the trailer and cache it", func() {
			rec := r.Resolve(ctx, id)
			So(rec.Status, ShouldEqual, Found)
			So(rec.Key, ShouldEqual, "abc123")

			So(r.Resolve(ctx, id), ShouldResemble, rec)
			So(r.Peek(id), ShouldResemble, rec)
			So(src.calls.Load(), ShouldEqual, 1)
		})

		Convey("Unknown ids should be NotFound without a fetch or a cache entry", func() {
			other := catalog.NewID(catalog.Movie, 7)
			So(r.Resolve(ctx, other).Status, ShouldEqual, NotFound)
			So(r.Peek(other).Status, ShouldEqual, Unresolved)
			So(src.calls.Load(), ShouldEqual, 0)
		})
	})

	Convey("Given concurrent resolves of one id", t, func() {
		src := &fakeSource{gate: make(chan struct{}), videos: []Video{trailerVideo}}
		r := NewResolver(src, registryWith(id))

		var wg sync.WaitGroup
		results := make([]Record, 8)
		for i := range results {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = r.Resolve(ctx, id)
			}()
		}

		// let every caller join the in-flight fetch
		time.Sleep(50 * time.Millisecond)
		close(src.gate)
		wg.Wait()

		Convey("Only one fetch should have been made", func() {
			So(src.calls.Load(), ShouldEqual, 1)
			for _, rec := range results {
				So(rec.Key, ShouldEqual, "abc123")
			}
		})
	})

	Convey("Given a failing source", t, func() {
		src := &fakeSource{err: errors.New("connection reset")}

		Convey("The failure should become a terminal NotFound", func() {
			r := NewResolver(src, registryWith(id))
			So(r.Resolve(ctx, id).Status, ShouldEqual, NotFound)
			So(r.Resolve(ctx, id).Status, ShouldEqual, NotFound)
			So(src.calls.Load(), ShouldEqual, 1)
		})

		Convey("With retries enabled the failure should not be cached", func() {
			r := NewResolver(src, registryWith(id), WithRetryFailed(true))
			So(r.Resolve(ctx, id).Status, ShouldEqual, NotFound)
			So(r.Peek(id).Status, ShouldEqual, Unresolved)

			src.err = nil
			src.videos = []Video{trailerVideo}
			So(r.Resolve(ctx, id).Status, ShouldEqual, Found)
			So(src.calls.Load(), ShouldEqual, 2)
		})
	})

	Convey("Given a source that reports the item does not exist", t, func() {
		src := &fakeSource{err: finalError{}}
		r := NewResolver(src, registryWith(id), WithRetryFailed(true))

		Convey("The answer should be cached even with retries enabled", func() {
			So(r.Resolve(ctx, id).Status, ShouldEqual, NotFound)
			So(r.Peek(id).Status, ShouldEqual, NotFound)
			So(r.Resolve(ctx, id).Status, ShouldEqual, NotFound)
			So(src.calls.Load(), ShouldEqual, 1)
		})
	})

	Convey("Given a source that is temporarily unavailable", t, func() {
		src := &fakeSource{err: fmt.Errorf("videos: %w", transientError{})}
		r := NewResolver(src, registryWith(id), WithRetryFailed(true))

		Convey("The answer should not be cached", func() {
			So(r.Resolve(ctx, id).Status, ShouldEqual, NotFound)
			So(r.Peek(id).Status, ShouldEqual, Unresolved)
		})
	})

	Convey("Given a source without trailers and retries enabled", t, func() {
		src := &fakeSource{videos: []Video{{Key: "x", Site: "Vimeo", Type: "Trailer"}}}
		r := NewResolver(src, registryWith(id), WithRetryFailed(true))

		Convey("A genuine miss should still be terminal", func() {
			So(r.Resolve(ctx, id).Status, ShouldEqual, NotFound)
			So(r.Peek(id).Status, ShouldEqual, NotFound)
		})
	})

	Convey("Given a caller that gives up", t, func() {
		src := &fakeSource{gate: make(chan struct{}), videos: []Video{trailerVideo}}
		r := NewResolver(src, registryWith(id))

		cancelled, cancel := context.WithCancel(ctx)
		done := make(chan Record)
		go func() { done <- r.Resolve(cancelled, id) }()

		time.Sleep(20 * time.Millisecond)
		cancel()
		close(src.gate)

		Convey("The fetch should still complete into the cache", func() {
			So((<-done).Status, ShouldEqual, Found)
			So(r.Peek(id).Key, ShouldEqual, "abc123")
		})
	})
}
