package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifier(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var n Notifier

		Convey("It should show nothing initially", func() {
			So(n.View("content"), ShouldEqual, "content")
		})

		Convey("When a notification arrives", func() {
			cmd := n.Update(Notify("Added to favorites")())
			So(cmd, ShouldNotBeNil)
			So(n.Text(), ShouldEqual, "Added to favorites")
			So(n.View("a\nb"), ShouldStartWith, "a\nb  ")

			Convey("The matching clear message should remove it", func() {
				n.Update(clearMsg{at: n.notifiedAt})
				So(n.Text(), ShouldBeEmpty)
			})

			Convey("A stale clear message should not remove a newer one", func() {
				stale := clearMsg{at: n.notifiedAt}
				n.Update(Notify("Removed from favorites")())
				n.Update(stale)
				So(n.Text(), ShouldEqual, "Removed from favorites")
			})
		})
	})
}
