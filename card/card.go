// Package card binds one catalog item to the overlay and the favorites store.
package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/favorites"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/overlay"
)

// ErrNoPoster is returned for items that cannot be shown as a card.
var ErrNoPoster = errors.New("item has no poster")

type EventKind int

const (
	Activated EventKind = iota
	FavoriteToggled
)

// Event is emitted after a card action completes. Favorite is the
// membership after the action.
type Event struct {
	Kind     EventKind
	Item     *catalog.Item
	Ticket   overlay.Ticket
	Favorite bool
}

// Favorites is the part of favorites.Store a card uses.
type Favorites interface {
	IsFavorite(id catalog.ID) bool
	Add(item *catalog.Item)
	Remove(id catalog.ID)
}

// Overlay is the part of overlay.Machine a card uses.
type Overlay interface {
	Open(item *catalog.Item) overlay.Ticket
}

var (
	_ Favorites = (*favorites.Store)(nil)
	_ Overlay   = (*overlay.Machine)(nil)
)

type Card struct {
	item      *catalog.Item
	favorites Favorites
	overlay   Overlay
	listener  func(Event)
}

type Option func(*Card)

// WithListener receives every event of the card.
func WithListener(fn func(Event)) Option {
	return func(c *Card) {
		c.listener = fn
	}
}

// New refuses items without a poster so that no broken card is ever drawn.
func New(item *catalog.Item, favs Favorites, ov Overlay, opts ...Option) (*Card, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: nil item", ErrNoPoster)
	}

	if !item.HasPoster() {
		return nil, fmt.Errorf("%w: %s", ErrNoPoster, item.ID)
	}

	c := &Card{item: item, favorites: favs, overlay: ov}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Build makes cards for items, skipping the ones New rejects.
func Build(items []*catalog.Item, favs Favorites, ov Overlay, opts ...Option) []*Card {
	cards := make([]*Card, 0, len(items))
	for _, item := range items {
		if c, err := New(item, favs, ov, opts...); err == nil {
			cards = append(cards, c)
		}
	}

	return cards
}

func (c *Card) Item() *catalog.Item {
	return c.item
}

func (c *Card) IsFavorite() bool {
	return c.favorites.IsFavorite(c.item.ID)
}

// OnActivate opens the overlay for the card's item.
func (c *Card) OnActivate() overlay.Ticket {
	ticket := c.overlay.Open(c.item)
	c.emit(Event{Kind: Activated, Item: c.item, Ticket: ticket, Favorite: c.IsFavorite()})
	return ticket
}

// OnToggleFavorite flips membership and returns the new one. It never opens
// the overlay.
func (c *Card) OnToggleFavorite() bool {
	now := !c.IsFavorite()
	if now {
		c.favorites.Add(c.item)
	} else {
		c.favorites.Remove(c.item.ID)
	}

	c.emit(Event{Kind: FavoriteToggled, Item: c.item, Favorite: now})
	return now
}

// Title is the list line: favorite badge and display title.
func (c *Card) Title() string {
	badge := icon.Get(icon.NotFavorite)
	if c.IsFavorite() {
		badge = icon.Get(icon.Favorite)
	}

	title := catalog.DisplayTitle(c.item)
	if badge == "" {
		return title
	}

	return badge + " " + title
}

// Description is the secondary list line: year, rating and kind.
func (c *Card) Description() string {
	var parts []string

	if year, ok := catalog.DisplayYear(c.item).Get(); ok {
		parts = append(parts, year)
	}

	if rating, ok := catalog.DisplayRating(c.item).Get(); ok {
		parts = append(parts, "★ "+rating)
	}

	if c.item.Kind == catalog.TV {
		parts = append(parts, "Series")
	}

	return strings.Join(parts, " · ")
}

// FilterValue is the text list filtering matches against.
func (c *Card) FilterValue() string {
	return catalog.DisplayTitle(c.item)
}

func (c *Card) emit(e Event) {
	if c.listener != nil {
		c.listener(e)
	}
}
