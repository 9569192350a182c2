package favorites

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPersistence(t *testing.T) {
	Convey("Given persistence is enabled", t, func() {
		viper.Set(key.FavoritesPersist, true)
		So(Save(NewStore()), ShouldBeNil)

		s, err := Open(nil)
		So(err, ShouldBeNil)
		So(s.Len(), ShouldEqual, 0)

		Convey("Changes should survive a reload", func() {
			s.Add(movie(42, "Test Film"))
			s.Add(&catalog.Item{ID: catalog.NewID(catalog.TV, 1399), Kind: catalog.TV, Name: "Thrones", PosterPath: "/t.jpg"})
			s.Remove(catalog.NewID(catalog.Movie, 42))

			reloaded, err := Load()
			So(err, ShouldBeNil)
			So(reloaded.Len(), ShouldEqual, 1)
			So(reloaded.IsFavorite(catalog.NewID(catalog.TV, 1399)), ShouldBeTrue)
			So(reloaded.Items()[0].Name, ShouldEqual, "Thrones")
		})
	})

	Convey("Given persistence is disabled", t, func() {
		viper.Set(key.FavoritesPersist, true)
		So(Save(NewStore(movie(1, "Saved"))), ShouldBeNil)

		viper.Set(key.FavoritesPersist, false)
		defer viper.Set(key.FavoritesPersist, true)

		Convey("Open should start empty and leave the file alone", func() {
			s, err := Open(nil)
			So(err, ShouldBeNil)
			So(s.Len(), ShouldEqual, 0)

			s.Add(movie(2, "Unsaved"))

			reloaded, err := Load()
			So(err, ShouldBeNil)
			So(reloaded.Len(), ShouldEqual, 1)
			So(reloaded.Items()[0].Title, ShouldEqual, "Saved")
		})
	})

	Convey("Given a corrupt favorites file", t, func() {
		viper.Set(key.FavoritesPersist, true)

		path := where.Favorites()
		So(filesystem.API().MkdirAll(filepath.Dir(path), 0755), ShouldBeNil)
		So(filesystem.API().WriteFile(path, []byte("{not json"), 0644), ShouldBeNil)

		var reported []error
		s, err := Open(func(err error) {
			reported = append(reported, err)
		})

		Convey("Open should start empty and keep the file aside", func() {
			So(errors.Is(err, ErrCorrupt), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(reported, ShouldBeEmpty)

			backup, err := filesystem.API().ReadFile(path + ".corrupt")
			So(err, ShouldBeNil)
			So(string(backup), ShouldEqual, "{not json")
		})

		Convey("Toggling afterwards should save without touching the copy", func() {
			s.Add(movie(7, "After"))

			backup, err := filesystem.API().ReadFile(path + ".corrupt")
			So(err, ShouldBeNil)
			So(string(backup), ShouldEqual, "{not json")

			reloaded, err := Load()
			So(err, ShouldBeNil)
			So(reloaded.Len(), ShouldEqual, 1)
			So(reloaded.IsFavorite(catalog.NewID(catalog.Movie, 7)), ShouldBeTrue)
		})
	})
}
