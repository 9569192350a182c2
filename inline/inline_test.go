package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/favorites"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeCatalog struct {
	items   []*catalog.Item
	results []*catalog.Item
}

func (f *fakeCatalog) List(context.Context, catalog.List, int) ([]*catalog.Item, error) {
	return f.items, nil
}

func (f *fakeCatalog) Search(context.Context, string, int) ([]*catalog.Item, error) {
	return f.results, nil
}

type fakeVideos map[catalog.ID][]trailer.Video

func (f fakeVideos) Videos(_ context.Context, id catalog.ID) ([]trailer.Video, error) {
	videos, ok := f[id]
	if !ok {
		return nil, errors.New("boom")
	}
	return videos, nil
}

func movie(n int, title string) *catalog.Item {
	return &catalog.Item{ID: catalog.NewID(catalog.Movie, n), Kind: catalog.Movie, Title: title, ReleaseDate: "2021-05-01"}
}

func TestWriteJsonResponse(t *testing.T) {
	Convey("writeJsonResponse", t, func() {
		Convey("Should produce valid JSON for empty item list", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldNotBeNil)
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a catalog list with one trailer", t, func() {
		dune, heat := movie(1, "Dune"), movie(2, "Heat")
		cat := &fakeCatalog{items: []*catalog.Item{dune, heat}, results: []*catalog.Item{heat}}
		videos := fakeVideos{dune.ID: {{Key: "abc", Site: "YouTube", Type: "Trailer"}}}

		var buf bytes.Buffer
		options := &Options{
			Out:       &buf,
			Catalog:   cat,
			Videos:    videos,
			Favorites: favorites.NewStore(heat),
			List:      catalog.Popular,
			Json:      true,
			Trailers:  true,
		}

		Convey("JSON output carries the trailer of each item", func() {
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.List, ShouldEqual, "popular")
			So(output.Result, ShouldHaveLength, 2)

			So(output.Result[0].Title, ShouldEqual, "Dune")
			So(output.Result[0].Trailer.Status, ShouldEqual, "found")
			So(output.Result[0].Trailer.URL, ShouldEqual, "https://www.youtube.com/watch?v=abc")
			So(output.Result[0].Favorite, ShouldBeFalse)

			So(output.Result[1].Trailer.Status, ShouldEqual, "not found")
			So(output.Result[1].Trailer.URL, ShouldBeEmpty)
			So(output.Result[1].Favorite, ShouldBeTrue)
		})

		Convey("Trailers are left out unless requested", func() {
			options.Trailers = false
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result[0].Trailer, ShouldBeNil)
		})

		Convey("A query searches instead of listing", func() {
			options.Query = "heat"
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "heat")
			So(output.List, ShouldBeEmpty)
			So(output.Result, ShouldHaveLength, 1)
		})

		Convey("A picker keeps a single item", func() {
			picker, err := ParseItemPicker("last", "")
			So(err, ShouldBeNil)
			options.ItemPicker = mo.Some(picker)
			options.Json = false

			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "movie/2\tHeat\t2021-05-01\tNo trailer available\n")
		})

		Convey("Text output has one line per item", func() {
			options.Json = false
			So(Run(context.Background(), options), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 2)
			So(lines[0], ShouldEqual, "movie/1\tDune\t2021-05-01\thttps://www.youtube.com/watch?v=abc")
		})

		Convey("Limit truncates the list", func() {
			options.Limit = 1
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
		})
	})
}

func TestParseItemPicker(t *testing.T) {
	Convey("Given some items", t, func() {
		items := []*catalog.Item{movie(1, "Dune"), movie(2, "Heat"), movie(3, "Alien")}

		Convey("first and last pick the ends", func() {
			first, _ := ParseItemPicker("first", "")
			last, _ := ParseItemPicker("last", "")
			So(first(items).Title, ShouldEqual, "Dune")
			So(last(items).Title, ShouldEqual, "Alien")
			So(first(nil), ShouldBeNil)
		})

		Convey("exact matches the query case-insensitively", func() {
			exact, _ := ParseItemPicker("exact", "heat ")
			So(exact(items).Title, ShouldEqual, "Heat")

			none, _ := ParseItemPicker("exact", "Ran")
			So(none(items), ShouldBeNil)
		})

		Convey("An index is clamped to the last item", func() {
			second, _ := ParseItemPicker("1", "")
			So(second(items).Title, ShouldEqual, "Heat")

			far, _ := ParseItemPicker("99", "")
			So(far(items).Title, ShouldEqual, "Alien")
		})

		Convey("Anything else is rejected", func() {
			_, err := ParseItemPicker("middle", "")
			So(err, ShouldNotBeNil)
		})
	})
}
