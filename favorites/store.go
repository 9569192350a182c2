// Package favorites keeps the set of items the user marked as favorite.
package favorites

import (
	"sync"

	"github.com/marquee-cli/marquee/catalog"
	"golang.org/x/exp/slices"
)

type Op int

const (
	Added Op = iota
	Removed
)

func (o Op) String() string {
	if o == Added {
		return "added"
	}

	return "removed"
}

// Change describes one membership change. For Removed, Item is the item
// that was stored.
type Change struct {
	Op   Op
	Item *catalog.Item
}

type subscriber struct {
	id int
	fn func(Change)
}

// Store is a set of items keyed by id. It is safe for concurrent use.
// Subscribers run synchronously, after the change is applied and before
// Add or Remove returns, and only when membership actually changed.
type Store struct {
	mu     sync.Mutex
	items  map[catalog.ID]*catalog.Item
	order  []catalog.ID
	subs   []subscriber
	nextID int
}

// NewStore returns a store holding items. No subscriber sees them.
func NewStore(items ...*catalog.Item) *Store {
	s := &Store{items: make(map[catalog.ID]*catalog.Item)}
	for _, item := range items {
		s.insert(item)
	}

	return s
}

func (s *Store) IsFavorite(id catalog.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.items[id]
	return ok
}

// Add is a no-op for an item that is already a favorite.
func (s *Store) Add(item *catalog.Item) {
	s.mu.Lock()
	added := s.insert(item)
	subs := s.subscribers()
	s.mu.Unlock()

	if added {
		notify(subs, Change{Op: Added, Item: item})
	}
}

// Remove is a no-op for an id that is not a favorite.
func (s *Store) Remove(id catalog.ID) {
	s.mu.Lock()
	item, ok := s.items[id]
	if ok {
		delete(s.items, id)
		s.order = slices.DeleteFunc(s.order, func(x catalog.ID) bool { return x == id })
	}
	subs := s.subscribers()
	s.mu.Unlock()

	if ok {
		notify(subs, Change{Op: Removed, Item: item})
	}
}

// Items returns the favorites in the order they were added.
func (s *Store) Items() []*catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*catalog.Item, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}

	return items
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Subscribe registers fn for future changes. Calling the returned function
// more than once is harmless.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
	}
}

// insert must be called with mu held.
func (s *Store) insert(item *catalog.Item) bool {
	if item == nil {
		return false
	}

	if _, ok := s.items[item.ID]; ok {
		return false
	}

	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return true
}

// subscribers must be called with mu held.
func (s *Store) subscribers() []subscriber {
	return slices.Clone(s.subs)
}

func notify(subs []subscriber, change Change) {
	for _, sub := range subs {
		sub.fn(change)
	}
}
