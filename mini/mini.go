// Package mini implements a lightweight, prompt-driven browser for the catalog.
package mini

import (
	"context"
	"io"
	"os"

	"github.com/marquee-cli/marquee/card"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/favorites"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/tmdb"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/marquee-cli/marquee/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var (
	truncateAt = 100
	logger     = log.For("mini")
)

type Options struct {
	// Favorites starts from the favorites instead of the list menu.
	Favorites bool
}

// Catalog is where the items shown by mini mode come from.
type Catalog interface {
	List(ctx context.Context, list catalog.List, page int) ([]*catalog.Item, error)
	Search(ctx context.Context, query string, page int) ([]*catalog.Item, error)
}

type mini struct {
	width int
	out   io.Writer
	ctx   context.Context

	state         state
	statesHistory util.Stack[state]

	catalog   Catalog
	registry  *catalog.Registry
	favorites *favorites.Store
	driver    *overlay.Driver

	cachedItems map[string][]*catalog.Item

	selection    string
	selectedCard *card.Card
	detail       overlay.State
}

func newMini(ctx context.Context, cat Catalog, registry *catalog.Registry, store *favorites.Store, driver *overlay.Driver) *mini {
	return &mini{
		width:         truncateAt,
		out:           os.Stdout,
		ctx:           ctx,
		statesHistory: util.Stack[state]{},
		catalog:       cat,
		registry:      registry,
		favorites:     store,
		driver:        driver,
		cachedItems:   make(map[string][]*catalog.Item),
	}
}

func (m *mini) previousState() {
	m.setState(m.statesHistory.PopOr(listSelectState))
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	// favoritesSelectState only redirects, going back to it would loop
	if !lo.Contains([]state{favoritesSelectState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run prompts until the user quits or an error occurs.
func Run(options *Options) error {
	client, err := tmdb.New()
	if err != nil {
		return err
	}

	store, err := favorites.Open(func(err error) {
		fail("Favorites were not saved: " + err.Error())
	})
	if err != nil {
		logger.Errorf("%v", err)
	}

	registry := catalog.NewRegistry()
	registry.Put(store.Items()...)

	resolver := trailer.NewResolver(client, registry, trailer.WithRetryFailed(viper.GetBool(key.TrailerRetryFailed)))
	machine := overlay.NewMachine(overlay.WithMinLoading(overlay.MinLoadingFromConfig()))

	driver := overlay.NewDriver(machine, resolver, overlay.WithOnChange(func(st overlay.State) {
		logger.With(log.Fields{"id": st.Item.ID, "trailer": st.Record.Status.String()}).Debugf("overlay %s", st.Phase)
	}))

	m := newMini(context.Background(), client, registry, store, driver)
	m.state = listSelectState
	if options.Favorites {
		m.state = favoritesSelectState
	}

	if w, _, err := util.TerminalSize(); err == nil {
		m.width = w
		truncateAt = w
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case listSelectState:
		return m.handleListSelectState()
	case searchState:
		return m.handleSearchState()
	case favoritesSelectState:
		return m.handleFavoritesSelectState()
	case itemSelectState:
		return m.handleItemSelectState()
	case detailState:
		return m.handleDetailState()
	}

	return nil
}
