package favorites

import (
	"sync"
	"testing"

	"github.com/marquee-cli/marquee/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func movie(n int, title string) *catalog.Item {
	return &catalog.Item{ID: catalog.NewID(catalog.Movie, n), Kind: catalog.Movie, Title: title, PosterPath: "/p.jpg"}
}

func TestStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		s := NewStore()
		item := movie(42, "Test Film")

		var changes []Change
		s.Subscribe(func(c Change) { changes = append(changes, c) })

		Convey("Adding an item makes it a favorite", func() {
			s.Add(item)
			So(s.IsFavorite(item.ID), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 1)
			So(changes, ShouldHaveLength, 1)
			So(changes[0].Op, ShouldEqual, Added)

			Convey("Adding it again changes nothing and notifies nobody", func() {
				s.Add(item)
				So(s.Len(), ShouldEqual, 1)
				So(s.Items(), ShouldHaveLength, 1)
				So(changes, ShouldHaveLength, 1)
			})

			Convey("Removing it clears membership", func() {
				s.Remove(item.ID)
				So(s.IsFavorite(item.ID), ShouldBeFalse)
				So(changes, ShouldHaveLength, 2)
				So(changes[1].Op, ShouldEqual, Removed)
				So(changes[1].Item, ShouldEqual, item)
			})
		})

		Convey("Removing an absent id is a no-op", func() {
			s.Remove(item.ID)
			So(s.Len(), ShouldEqual, 0)
			So(changes, ShouldBeEmpty)
		})

		Convey("Nil items are ignored", func() {
			s.Add(nil)
			So(s.Len(), ShouldEqual, 0)
			So(changes, ShouldBeEmpty)
		})

		Convey("Any id is accepted, whatever its format", func() {
			odd := &catalog.Item{ID: "garbage", Title: "Odd"}
			s.Add(odd)
			So(s.IsFavorite("garbage"), ShouldBeTrue)

			s.Add(odd)
			So(s.Len(), ShouldEqual, 1)
			So(changes, ShouldHaveLength, 1)

			s.Add(&catalog.Item{ID: "42", Title: "Bare"})
			So(s.IsFavorite("42"), ShouldBeTrue)

			s.Remove("garbage")
			So(s.IsFavorite("garbage"), ShouldBeFalse)
		})

		Convey("Items keep insertion order", func() {
			a, b, c := movie(1, "A"), movie(2, "B"), movie(3, "C")
			s.Add(b)
			s.Add(a)
			s.Add(c)
			s.Remove(a.ID)
			s.Add(a)
			So(s.Items(), ShouldResemble, []*catalog.Item{b, c, a})
		})

		Convey("Unsubscribed functions are not called", func() {
			calls := 0
			unsubscribe := s.Subscribe(func(Change) { calls++ })
			unsubscribe()
			unsubscribe()
			s.Add(item)
			So(calls, ShouldEqual, 0)
		})

		Convey("A subscriber may read the store", func() {
			var seen bool
			s.Subscribe(func(c Change) { seen = s.IsFavorite(c.Item.ID) })
			s.Add(item)
			So(seen, ShouldBeTrue)
		})
	})

	Convey("Concurrent adds of the same item notify once", t, func() {
		s := NewStore()
		item := movie(7, "Se7en")

		var mu sync.Mutex
		calls := 0
		s.Subscribe(func(Change) {
			mu.Lock()
			calls++
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for n := 0; n < 16; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Add(item)
			}()
		}
		wg.Wait()

		So(calls, ShouldEqual, 1)
		So(s.Len(), ShouldEqual, 1)
	})
}
