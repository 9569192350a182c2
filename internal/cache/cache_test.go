package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

type page struct {
	Titles []string `json:"titles"`
}

func TestCache(t *testing.T) {
	Convey("Given a six hour TTL", t, func() {
		viper.Set(key.CatalogCacheTTLHours, 6)

		Convey("Key should be stable and case insensitive", func() {
			So(Key("popular", "en-US", "1"), ShouldEqual, Key("POPULAR", "en-us", "1"))
			So(Key("popular", "1"), ShouldNotEqual, Key("top_rated", "1"))
		})

		Convey("A written entry should be read back", func() {
			k := Key("popular", "1")
			So(Write(k, page{Titles: []string{"Test Film"}}), ShouldBeNil)

			var got page
			So(Read(k, &got), ShouldBeTrue)
			So(got.Titles, ShouldResemble, []string{"Test Film"})
		})

		Convey("A missing entry should not be read", func() {
			var got page
			So(Read(Key("nothing"), &got), ShouldBeFalse)
		})

		Convey("An expired entry should be ignored and collected", func() {
			k := Key("upcoming", "1")
			So(Write(k, page{Titles: []string{"Old"}}), ShouldBeNil)

			path := filepath.Join(where.Lists(), k)
			old := time.Now().Add(-7 * time.Hour)
			lo.Must0(filesystem.API().Chtimes(path, old, old))

			var got page
			So(Read(k, &got), ShouldBeFalse)

			CollectGarbage()
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeFalse)
		})
	})

	Convey("Given caching is disabled", t, func() {
		viper.Set(key.CatalogCacheTTLHours, 0)
		defer viper.Set(key.CatalogCacheTTLHours, 6)

		Convey("Write should be a no-op", func() {
			k := Key("disabled")
			So(Write(k, page{}), ShouldBeNil)
			So(lo.Must(filesystem.API().Exists(filepath.Join(where.Lists(), k))), ShouldBeFalse)
		})
	})
}
