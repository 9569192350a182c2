package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/card"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/favorites"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/open"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/query"
	"github.com/marquee-cli/marquee/trailer"
)

type listLoadedMsg struct {
	list  catalog.List
	items []*catalog.Item
}

type searchDoneMsg struct {
	query string
	items []*catalog.Item
}

type overlayResolvedMsg struct {
	ticket overlay.Ticket
	record trailer.Record
}

type overlayTimerMsg struct {
	ticket overlay.Ticket
}

type featuredResolvedMsg struct {
	record trailer.Record
}

var logger = log.For("tui")

func (b *statefulBubble) loadList(l catalog.List) tea.Cmd {
	return func() tea.Msg {
		items, err := b.catalog.List(b.ctx, l, 1)
		if err != nil {
			return fmt.Errorf("load %s: %w", l.Title(), err)
		}

		return listLoadedMsg{list: l, items: items}
	}
}

func (b *statefulBubble) searchCatalog(q string) tea.Cmd {
	return func() tea.Msg {
		items, err := b.catalog.Search(b.ctx, q, 1)
		if err != nil {
			return fmt.Errorf("search %q: %w", q, err)
		}

		return searchDoneMsg{query: q, items: items}
	}
}

// resolveTrailer delivers the first completion signal of t.
func (b *statefulBubble) resolveTrailer(t overlay.Ticket) tea.Cmd {
	return func() tea.Msg {
		return overlayResolvedMsg{ticket: t, record: b.resolver.Resolve(b.ctx, t.ID)}
	}
}

// overlayTimer delivers the second one, once the minimum loading time passed.
func (b *statefulBubble) overlayTimer(t overlay.Ticket) tea.Cmd {
	return tea.Tick(b.machine.MinLoading(), func(time.Time) tea.Msg {
		return overlayTimerMsg{ticket: t}
	})
}

func (b *statefulBubble) resolveFeatured(item *catalog.Item) tea.Cmd {
	return func() tea.Msg {
		return featuredResolvedMsg{record: b.resolver.Resolve(b.ctx, item.ID)}
	}
}

// showList replaces the browse list and picks the featured item.
func (b *statefulBubble) showList(msg listLoadedMsg) tea.Cmd {
	b.registry.Put(msg.items...)
	b.currentList = msg.list
	b.browseC.Title = msg.list.Title()

	items := b.cardItems(msg.items)
	cmd := b.browseC.SetItems(items)
	b.browseC.ResetSelected()

	b.featured = nil
	if len(items) > 0 {
		b.featured = items[0].(*listItem).card.Item()
		cmd = tea.Batch(cmd, b.resolveFeatured(b.featured))
	}

	logger.With(log.Fields{"list": msg.list, "items": len(items)}).Infof("list loaded")
	return cmd
}

func (b *statefulBubble) showResults(msg searchDoneMsg) tea.Cmd {
	b.registry.Put(msg.items...)
	b.lastQuery = msg.query
	b.resultsC.Title = fmt.Sprintf("Results for %q", msg.query)

	cmd := b.resultsC.SetItems(b.cardItems(msg.items))
	b.resultsC.ResetSelected()
	return cmd
}

func (b *statefulBubble) refreshFavorites() {
	_ = b.favoritesC.SetItems(b.cardItems(b.favorites.Items()))
}

// onFavoritesChange runs synchronously inside Update, whenever a card or
// the overlay toggles a favorite.
func (b *statefulBubble) onFavoritesChange(favorites.Change) {
	b.refreshFavorites()
}

// onCardEvent runs synchronously inside Update.
func (b *statefulBubble) onCardEvent(e card.Event) {
	switch e.Kind {
	case card.Activated:
		b.enqueue(tea.Batch(b.resolveTrailer(e.Ticket), b.overlayTimer(e.Ticket)))
	case card.FavoriteToggled:
		title := catalog.DisplayTitle(e.Item)
		if e.Favorite {
			b.enqueue(ui.Notify("Added " + title + " to favorites"))
		} else {
			b.enqueue(ui.Notify("Removed " + title + " from favorites"))
		}
	}
}

// activate opens the overlay for the selected card of l.
func (b *statefulBubble) activate(l *list.Model) {
	if c, ok := selectedCard(l); ok {
		c.OnActivate()
		b.keymap.overlayOpen = true
	}
}

func (b *statefulBubble) toggleFavorite(l *list.Model) {
	if c, ok := selectedCard(l); ok {
		c.OnToggleFavorite()
	}
}

// toggleOverlayFavorite toggles the item shown in the overlay.
func (b *statefulBubble) toggleOverlayFavorite() {
	item := b.machine.Snapshot().Item
	if item == nil {
		return
	}

	c, err := card.New(item, b.favorites, b.machine, card.WithListener(b.onCardEvent))
	if err != nil {
		return
	}

	c.OnToggleFavorite()
}

func (b *statefulBubble) closeOverlay() {
	b.machine.Close()
	b.keymap.overlayOpen = false
}

func (b *statefulBubble) watch(key string) tea.Cmd {
	if err := open.Trailer(key); err != nil {
		if errors.Is(err, open.ErrNoTrailer) {
			return ui.Notify("No trailer available")
		}

		logger.Errorf("open trailer: %v", err)
		return ui.Notify("Could not open the browser")
	}

	return ui.Notify("Opening " + open.TrailerURL(key))
}

func (b *statefulBubble) rememberQuery(q string) {
	if err := query.Remember(q, 1); err != nil {
		logger.Warnf("remember query: %v", err)
	}
}
