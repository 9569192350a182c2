package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/trailer"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

const (
	popularBody = `{"page":1,"total_pages":1,"results":[
		{"id":42,"title":"Test Film","poster_path":"/x.jpg","genre_ids":[18,99],"vote_average":7.25,"original_language":"en","release_date":"2024-01-02"},
		{"id":0,"title":"Broken"},
		{"id":43,"title":"No Poster"}
	]}`
	seriesBody  = `{"results":[{"id":1399,"name":"Thrones","first_air_date":"2011-04-17","poster_path":"/t.jpg","genre_ids":[18]}]}`
	movieGenres = `{"genres":[{"id":18,"name":"Drama"},{"id":28,"name":"Action"}]}`
	tvGenres    = `{"genres":[{"id":18,"name":"Drama"}]}`
	searchBody  = `{"results":[
		{"id":27205,"media_type":"movie","title":"Inception","poster_path":"/i.jpg","genre_ids":[28]},
		{"id":6193,"media_type":"person","name":"Leonardo DiCaprio"},
		{"id":1399,"media_type":"tv","name":"Thrones","poster_path":"/t.jpg"}
	]}`
	detailBody = `{"id":550,"title":"Fight Club","poster_path":"/f.jpg","genres":[{"id":18,"name":"Drama"}],"vote_average":8.4}`
	videosBody = `{"id":42,"results":[
		{"key":"teaser1","site":"YouTube","type":"Teaser","name":"Teaser","official":true},
		{"key":"trailer1","site":"YouTube","type":"Trailer","name":"Official Trailer","official":true}
	]}`
)

type fakeTMDB struct {
	*httptest.Server
	hits atomic.Int32
	auth atomic.Value
}

func newFakeTMDB() *fakeTMDB {
	f := &fakeTMDB{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		f.auth.Store(r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/movie/popular":
			_, _ = w.Write([]byte(popularBody))
		case "/tv/top_rated":
			_, _ = w.Write([]byte(seriesBody))
		case "/genre/movie/list":
			_, _ = w.Write([]byte(movieGenres))
		case "/genre/tv/list":
			_, _ = w.Write([]byte(tvGenres))
		case "/search/multi":
			if r.URL.Query().Get("query") != "inception" {
				_, _ = w.Write([]byte(`{"results":[]}`))
				return
			}
			_, _ = w.Write([]byte(searchBody))
		case "/movie/550":
			_, _ = w.Write([]byte(detailBody))
		case "/movie/42/videos":
			_, _ = w.Write([]byte(videosBody))
		case "/movie/44/videos":
			_, _ = w.Write([]byte(`<html>oops</html>`))
		case "/movie/45/videos":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	return f
}

func TestNew(t *testing.T) {
	Convey("Given no token anywhere", t, func() {
		viper.Set(key.TMDBToken, "")

		Convey("New should fail with ErrNoToken", func() {
			_, err := New()
			So(err, ShouldEqual, ErrNoToken)
		})

		Convey("An explicit token should be enough", func() {
			c, err := New(WithToken("t"))
			So(err, ShouldBeNil)
			So(c, ShouldNotBeNil)
		})
	})

	Convey("Given a configured token", t, func() {
		viper.Set(key.TMDBToken, "configured")
		defer viper.Set(key.TMDBToken, "")

		c, err := New()
		So(err, ShouldBeNil)
		So(c.token, ShouldEqual, "configured")
	})
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	Convey("Given a client pointed at a fake TMDB", t, func() {
		viper.Set(key.CatalogCacheTTLHours, 6)
		srv := newFakeTMDB()
		defer srv.Close()

		c, err := New(WithToken("secret"), WithBaseURL(srv.URL), WithLanguage("en-US"))
		So(err, ShouldBeNil)

		Convey("List should convert the page and cache it", func() {
			items, err := c.List(ctx, catalog.Popular, 1)
			So(err, ShouldBeNil)
			So(srv.auth.Load(), ShouldEqual, "Bearer secret")
			So(items, ShouldHaveLength, 2)

			film := items[0]
			So(film.ID, ShouldEqual, catalog.ID("movie/42"))
			So(film.Kind, ShouldEqual, catalog.Movie)
			So(film.Genres, ShouldResemble, []string{"Drama"})
			So(film.Rating, ShouldEqual, 7.25)
			So(items[1].HasPoster(), ShouldBeFalse)

			before := srv.hits.Load()
			again, err := c.List(ctx, catalog.Popular, 1)
			So(err, ShouldBeNil)
			So(again, ShouldHaveLength, 2)
			So(srv.hits.Load(), ShouldEqual, before)
		})

		Convey("Series lists should produce tv ids", func() {
			items, err := c.List(ctx, catalog.TopRatedSeries, 1)
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 1)
			So(items[0].ID, ShouldEqual, catalog.ID("tv/1399"))
			So(items[0].Genres, ShouldResemble, []string{"Drama"})
		})

		Convey("Unknown lists should fail with a status error", func() {
			_, err := c.List(ctx, catalog.Upcoming, 1)
			var status *StatusError
			So(errors.As(err, &status), ShouldBeTrue)
			So(status.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Search should keep movies and series only", func() {
			items, err := c.Search(ctx, "inception", 1)
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 2)
			So(items[0].ID, ShouldEqual, catalog.ID("movie/27205"))
			So(items[0].Genres, ShouldResemble, []string{"Action"})
			So(items[1].ID, ShouldEqual, catalog.ID("tv/1399"))

			none, err := c.Search(ctx, "   ", 1)
			So(err, ShouldBeNil)
			So(none, ShouldBeEmpty)
		})

		Convey("Item should read detail genres", func() {
			item, err := c.Item(ctx, catalog.NewID(catalog.Movie, 550))
			So(err, ShouldBeNil)
			So(item.Title, ShouldEqual, "Fight Club")
			So(item.Genres, ShouldResemble, []string{"Drama"})

			_, err = c.Item(ctx, "nope")
			So(err, ShouldWrap, catalog.ErrInvalidID)
		})

		Convey("Videos should keep the order TMDB returns", func() {
			videos, err := c.Videos(ctx, catalog.NewID(catalog.Movie, 42))
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
			So(videos[0].Key, ShouldEqual, "teaser1")
			So(trailer.Select(videos).MustGet().Key, ShouldEqual, "trailer1")
		})

		Convey("Malformed and failed video responses should be errors", func() {
			_, err := c.Videos(ctx, catalog.NewID(catalog.Movie, 44))
			So(err, ShouldWrap, errMalformedVideos)

			_, err = c.Videos(ctx, catalog.NewID(catalog.Movie, 45))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Invalid API key")
		})

		Convey("Resolving through the client should fail soft", func() {
			registry := catalog.NewRegistry()
			for _, n := range []int{42, 45} {
				registry.Put(&catalog.Item{ID: catalog.NewID(catalog.Movie, n), PosterPath: "/p.jpg"})
			}
			resolver := trailer.NewResolver(c, registry)

			So(resolver.Resolve(ctx, "movie/42").Key, ShouldEqual, "trailer1")
			So(resolver.Resolve(ctx, "movie/45").Status, ShouldEqual, trailer.NotFound)
		})
	})

	Convey("Status errors", t, func() {
		Convey("Server failures and rate limits are temporary", func() {
			So((&StatusError{Code: 503}).Temporary(), ShouldBeTrue)
			So((&StatusError{Code: 429}).Temporary(), ShouldBeTrue)
		})

		Convey("Other client errors are final", func() {
			So((&StatusError{Code: 404}).Temporary(), ShouldBeFalse)
			So((&StatusError{Code: 401}).Temporary(), ShouldBeFalse)
		})
	})

	Convey("videoLanguages", t, func() {
		So(videoLanguages("en-US"), ShouldEqual, "en,null")
		So(videoLanguages(""), ShouldEqual, "en,null")
		So(strings.Split(videoLanguages("de-DE"), ","), ShouldResemble, []string{"de", "en", "null"})
	})
}
