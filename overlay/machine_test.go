package overlay

import (
	"testing"
	"time"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/trailer"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func film(n int, title string) *catalog.Item {
	return &catalog.Item{ID: catalog.NewID(catalog.Movie, n), Kind: catalog.Movie, Title: title, PosterPath: "/x.jpg"}
}

func found(id catalog.ID, key string) trailer.Record {
	return trailer.Record{ID: id, Status: trailer.Found, Key: key}
}

func TestMachine(t *testing.T) {
	Convey("Given a closed overlay", t, func() {
		m := NewMachine()
		a, b := film(1, "A"), film(2, "B")

		So(m.State().Phase, ShouldEqual, Closed)
		So(m.Snapshot().IsOpen, ShouldBeFalse)
		So(m.MinLoading(), ShouldEqual, DefaultMinLoading)

		Convey("Opening an item shows it loading", func() {
			ticket := m.Open(a)
			So(ticket.Valid(), ShouldBeTrue)
			So(ticket.ID, ShouldEqual, a.ID)

			snap := m.Snapshot()
			So(snap.IsOpen, ShouldBeTrue)
			So(snap.IsLoading, ShouldBeTrue)
			So(snap.Item, ShouldEqual, a)

			Convey("The resolver alone does not finish loading", func() {
				So(m.Resolved(ticket, found(a.ID, "k")), ShouldBeTrue)
				So(m.State().Phase, ShouldEqual, Loading)

				Convey("The timer completes it", func() {
					So(m.TimerElapsed(ticket), ShouldBeTrue)
					So(m.State().Phase, ShouldEqual, Ready)
					So(m.Snapshot().TrailerKey, ShouldEqual, "k")
				})
			})

			Convey("The timer alone does not finish loading", func() {
				m.TimerElapsed(ticket)
				So(m.State().Phase, ShouldEqual, Loading)

				Convey("The resolver completes it", func() {
					m.Resolved(ticket, trailer.Record{ID: a.ID, Status: trailer.NotFound})
					So(m.State().Phase, ShouldEqual, Ready)
					So(m.Snapshot().TrailerKey, ShouldBeEmpty)
					So(m.Snapshot().IsLoading, ShouldBeFalse)
				})
			})

			Convey("Opening the same item again keeps the ticket", func() {
				So(m.Open(a), ShouldResemble, ticket)
				So(m.State().Phase, ShouldEqual, Loading)
			})

			Convey("Opening the same item once ready does not reload it", func() {
				m.Resolved(ticket, found(a.ID, "k"))
				m.TimerElapsed(ticket)
				So(m.Open(a), ShouldResemble, ticket)
				So(m.State().Phase, ShouldEqual, Ready)
			})

			Convey("A record for another id is rejected", func() {
				So(m.Resolved(ticket, found(b.ID, "wrong")), ShouldBeFalse)
			})

			Convey("The last open wins", func() {
				second := m.Open(b)
				So(second.Generation, ShouldBeGreaterThan, ticket.Generation)

				So(m.Resolved(ticket, found(a.ID, "stale")), ShouldBeFalse)
				So(m.TimerElapsed(ticket), ShouldBeFalse)
				So(m.State().Phase, ShouldEqual, Loading)
				So(m.State().Item, ShouldEqual, b)

				m.Resolved(second, found(b.ID, "fresh"))
				m.TimerElapsed(second)
				So(m.Snapshot().Item, ShouldEqual, b)
				So(m.Snapshot().TrailerKey, ShouldEqual, "fresh")
			})

			Convey("Closing drops late signals", func() {
				m.Close()
				So(m.Snapshot(), ShouldResemble, Snapshot{})
				So(m.Resolved(ticket, found(a.ID, "late")), ShouldBeFalse)
				So(m.TimerElapsed(ticket), ShouldBeFalse)
				So(m.State().Phase, ShouldEqual, Closed)
			})
		})

		Convey("Close then open round-trips", func() {
			first := m.Open(a)
			m.Close()
			again := m.Open(a)
			So(again.Generation, ShouldBeGreaterThan, first.Generation)
			So(m.State().Phase, ShouldEqual, Loading)
		})

		Convey("Opening nil is ignored", func() {
			So(m.Open(nil).Valid(), ShouldBeFalse)
			So(m.State().Phase, ShouldEqual, Closed)
		})
	})

	Convey("Minimum loading time", t, func() {
		So(NewMachine(WithMinLoading(-time.Second)).MinLoading(), ShouldEqual, 0)

		viper.Set(key.OverlayMinLoading, 1500)
		So(MinLoadingFromConfig(), ShouldEqual, 1500*time.Millisecond)
		viper.Set(key.OverlayMinLoading, -1)
		So(MinLoadingFromConfig(), ShouldEqual, 0)
		viper.Set(key.OverlayMinLoading, 1000)
	})
}
