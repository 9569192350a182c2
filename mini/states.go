package mini

import (
	"fmt"

	"github.com/marquee-cli/marquee/card"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/open"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/query"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/marquee-cli/marquee/util"
	"github.com/spf13/viper"
)

type state int

const (
	listSelectState state = iota + 1
	searchState
	favoritesSelectState
	itemSelectState
	detailState
	quitState
)

const favoritesSelection = "favorites"

func (m *mini) handleListSelectState() error {
	title("Browse")
	b, list, err := menu(catalog.Lists(), catalog.List.Title, search, showFavorites, quit)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
		return nil
	case search.eq(b):
		m.newState(searchState)
		return nil
	case showFavorites.eq(b):
		m.newState(favoritesSelectState)
		return nil
	}

	selection := "list:" + string(list)
	if _, ok := m.cachedItems[selection]; !ok {
		erase := progress(fmt.Sprintf("Loading %s..", list.Title()))
		items, err := m.catalog.List(m.ctx, list, 1)
		erase()
		if err != nil {
			return err
		}

		m.registry.Put(items...)
		m.cachedItems[selection] = items
	}

	m.selection = selection
	m.newState(itemSelectState)
	return nil
}

func (m *mini) handleSearchState() error {
	var searchLoop func() error
	title("Search")

	searchLoop = func() error {
		in, err := getInput(func(s string) bool {
			return s != ""
		})
		if err != nil {
			return err
		}

		q := in.value

		erase := progress("Searching..")
		items, err := m.catalog.Search(m.ctx, q, 1)
		erase()
		if err != nil {
			return err
		}

		items = items[:util.Min(len(items), viper.GetInt(key.MiniSearchLimit))]
		if len(items) == 0 {
			fail("No search results found")
			return searchLoop()
		}

		if err := query.Remember(q, 1); err != nil {
			logger.Warnf("remember query: %v", err)
		}

		m.registry.Put(items...)
		m.selection = "search:" + q
		m.cachedItems[m.selection] = items
		m.newState(itemSelectState)
		return nil
	}

	return searchLoop()
}

func (m *mini) handleFavoritesSelectState() error {
	if m.favorites.Len() == 0 {
		fail("No favorites yet")
		m.previousState()
		return nil
	}

	m.selection = favoritesSelection
	m.newState(itemSelectState)
	return nil
}

// items returns what the current selection shows. Favorites are read from
// the store each time so removals show up right away.
func (m *mini) items() []*catalog.Item {
	if m.selection == favoritesSelection {
		return m.favorites.Items()
	}

	return m.cachedItems[m.selection]
}

func (m *mini) handleItemSelectState() error {
	cards := card.Build(m.items(), m.favorites, m.driver.Machine())
	if len(cards) == 0 {
		fail("Nothing to show")
		m.previousState()
		return nil
	}

	title(util.Quantify(len(cards), "title", "titles") + " >>")
	b, c, err := menu(cards, cardLabel, back, quit)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
		return nil
	case back.eq(b):
		m.previousState()
		return nil
	}

	m.selectedCard = c
	m.newState(detailState)
	return nil
}

func (m *mini) handleDetailState() error {
	c := m.selectedCard

	util.ClearScreen()
	st, err := m.showDetails(c)
	if err != nil {
		return err
	}

	binds := []*bind{addFavorite}
	if c.IsFavorite() {
		binds[0] = delFavorite
	}
	if st.Record.Status == trailer.Found {
		binds = append(binds, watch)
	}
	binds = append(binds, back, quit)

	b, _, err := menu([]string{}, func(s string) string { return s }, binds...)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.newState(quitState)
	case back.eq(b):
		m.driver.Machine().Close()
		m.previousState()
	case watch.eq(b):
		if err := open.Trailer(st.Record.Key); err != nil {
			fail(err.Error())
		}
	case addFavorite.eq(b), delFavorite.eq(b):
		if c.OnToggleFavorite() {
			fmt.Fprintln(m.out, icon.Get(icon.Favorite)+" Added to favorites")
		} else {
			fmt.Fprintln(m.out, icon.Get(icon.NotFavorite)+" Removed from favorites")
		}
	}

	return nil
}

// showDetails opens the overlay for c and prints it until it is ready.
// An overlay already ready for c is printed again without reopening.
func (m *mini) showDetails(c *card.Card) (overlay.State, error) {
	machine := m.driver.Machine()
	width := util.Min(m.width, 72)

	if st := machine.State(); st.Phase == overlay.Ready && st.Item.ID == c.Item().ID {
		fmt.Fprintln(m.out, overlay.Render(machine.Snapshot(), width))
		return st, nil
	}

	ticket := c.OnActivate()
	fmt.Fprintln(m.out, overlay.Render(machine.Snapshot(), width))

	select {
	case st, ok := <-m.driver.Follow(m.ctx, ticket):
		if !ok {
			return machine.State(), fmt.Errorf("overlay for %s was closed", c.Item().ID)
		}

		fmt.Fprintln(m.out, overlay.Render(machine.Snapshot(), width))
		return st, nil
	case <-m.ctx.Done():
		return machine.State(), m.ctx.Err()
	}
}

func cardLabel(c *card.Card) string {
	if d := c.Description(); d != "" {
		return c.Title() + " (" + d + ")"
	}

	return c.Title()
}
