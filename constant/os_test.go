package constant

import (
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlatform(t *testing.T) {
	Convey("Current should match the build target", t, func() {
		So(string(Current()), ShouldEqual, runtime.GOOS)
	})

	Convey("Unix", t, func() {
		So(Linux.Unix(), ShouldBeTrue)
		So(Darwin.Unix(), ShouldBeTrue)
		So(Android.Unix(), ShouldBeTrue)
		So(Windows.Unix(), ShouldBeFalse)
		So(Platform("plan9").Unix(), ShouldBeFalse)
	})
}
