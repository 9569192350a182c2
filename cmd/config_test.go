package cmd

import (
	"testing"

	"github.com/marquee-cli/marquee/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("Given raw config values", t, func() {
		Convey("Integers are parsed and must not be negative", func() {
			v, err := parseValue(key.OverlayMinLoading, []string{"250"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 250)

			_, err = parseValue(key.OverlayMinLoading, []string{"-1"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(key.OverlayMinLoading, []string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are parsed", func() {
			v, err := parseValue(key.TrailerRetryFailed, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("The default list must be a known list", func() {
			v, err := parseValue(key.CatalogDefaultList, []string{"Top_Rated"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "top_rated")

			_, err = parseValue(key.CatalogDefaultList, []string{"trending"})
			So(err, ShouldNotBeNil)
		})

		Convey("The icons variant must be known", func() {
			_, err := parseValue(key.IconsVariant, []string{"ascii"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestMasked(t *testing.T) {
	Convey("Given a token", t, func() {
		Convey("Only its last four characters are shown", func() {
			So(masked(key.TMDBToken, "abcdefgh"), ShouldEqual, "****efgh")
		})

		Convey("Other keys are printed as they are", func() {
			So(masked(key.TMDBLanguage, "en-US"), ShouldEqual, "en-US")
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("An unknown key suggests the closest one", t, func() {
		err := errUnknownKey("overlay.min_loadin")
		So(err.Error(), ShouldContainSubstring, key.OverlayMinLoading)
	})
}
