package query

import (
	"testing"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		So(Remember("dune", 1), ShouldBeNil)
		So(Remember("dune part two", 10), ShouldBeNil)

		Convey("Suggestions should be sorted by rank", func() {
			s := SuggestMany("dune")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, "dune part two")
		})

		Convey("Remembering again should reorder suggestions", func() {
			So(Remember("Dune", 100), ShouldBeNil)
			best, ok := Suggest("dun").Get()
			So(ok, ShouldBeTrue)
			So(best, ShouldEqual, "dune")
		})

		Convey("Blank queries should be ignored", func() {
			So(Remember("   ", 5), ShouldBeNil)
			So(SuggestMany(""), ShouldNotContain, "")
		})

		Convey("Nothing should be suggested when disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)
			So(Suggest("dune").IsAbsent(), ShouldBeTrue)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  INTERSTELLAR  "), ShouldEqual, "interstellar")
		})
	})
}
