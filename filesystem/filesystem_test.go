package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the gache adapter on an in-memory backend", t, func() {
		SetMemMapFs()
		fs := GacheFs{}

		Convey("It creates directories and files through the backend", func() {
			So(fs.MkdirAll("/cache/marquee", os.ModePerm), ShouldBeNil)

			f, err := fs.OpenFile("/cache/marquee/favorites.json", os.O_CREATE|os.O_RDWR, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			exists, err := API().Exists("/cache/marquee/favorites.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})
	})
}
