package log

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

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup should not create a log file", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup should open today's log file", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)

			For("test").With(Fields{"id": "movie/1"}).Infof("hello %s", "world")
			contents := lo.Must(filesystem.API().ReadFile(path))
			So(string(contents), ShouldContainSubstring, "hello world")
			So(string(contents), ShouldContainSubstring, "component=test")
		})
	})
}

func TestScope(t *testing.T) {
	Convey("With should not mutate the parent scope", t, func() {
		parent := For("overlay")
		child := parent.With(Fields{"generation": 3})

		So(parent.fields, ShouldHaveLength, 1)
		So(child.fields, ShouldHaveLength, 2)
		So(child.fields["component"], ShouldEqual, "overlay")
	})
}
