// Package tui is the interactive browser: catalog lists of cards, search,
// favorites and the detail overlay drawn on top of them.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/favorites"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/marquee-cli/marquee/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Catalog is where lists and search results come from.
type Catalog interface {
	List(ctx context.Context, list catalog.List, page int) ([]*catalog.Item, error)
	Search(ctx context.Context, query string, page int) ([]*catalog.Item, error)
}

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	spinnerC   spinner.Model
	inputC     textinput.Model
	browseC    list.Model
	resultsC   list.Model
	favoritesC list.Model
	helpC      help.Model

	catalog   Catalog
	registry  *catalog.Registry
	resolver  *trailer.Resolver
	favorites *favorites.Store
	machine   *overlay.Machine

	currentList catalog.List
	featured    *catalog.Item
	lastQuery   string

	// commands queued by callbacks that run inside Update
	pending []tea.Cmd

	progressStatus   string
	lastError        error
	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Notifier

	ctx     context.Context
	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if s, ok := b.statesHistory.Pop(); ok {
		b.setState(s)
	}
}

func (b *statefulBubble) enqueue(cmd tea.Cmd) {
	if cmd != nil {
		b.pending = append(b.pending, cmd)
	}
}

func (b *statefulBubble) flush() tea.Cmd {
	if len(b.pending) == 0 {
		return nil
	}

	cmd := tea.Batch(b.pending...)
	b.pending = nil
	return cmd
}

func (b *statefulBubble) lists() []*list.Model {
	return []*list.Model{&b.browseC, &b.resultsC, &b.favoritesC}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	// the featured banner sits above the browse list
	listHeight := height - yy

	for _, l := range b.lists() {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}
	b.browseC.SetSize(listWidth, listHeight-featuredHeight)

	b.inputC.Width = listWidth
	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.loading = true
	b.progressStatus = status
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.progressStatus = ""
}

// Backend is everything the TUI drives.
type Backend struct {
	Catalog   Catalog
	Registry  *catalog.Registry
	Resolver  *trailer.Resolver
	Favorites *favorites.Store
	Machine   *overlay.Machine
}

func newBubble(options *Options, backend Backend) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,

		catalog:   backend.Catalog,
		registry:  backend.Registry,
		resolver:  backend.Resolver,
		favorites: backend.Favorites,
		machine:   backend.Machine,

		currentList: options.List,
		notifier:    &ui.Notifier{},
		ctx:         context.Background(),
		options:     options,
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetFilteringEnabled(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search movies and series (v%s)", constant.Version)
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.browseC = makeList(options.List.Title(), style.AccentColor)
	bubble.browseC.SetStatusBarItemName("title", "titles")

	bubble.resultsC = makeList("Search Results", style.Lavender)
	bubble.resultsC.SetStatusBarItemName("result", "results")

	bubble.favoritesC = makeList("Favorites", style.Red)
	bubble.favoritesC.SetStatusBarItemName("favorite", "favorites")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.refreshFavorites()
	bubble.favorites.Subscribe(bubble.onFavoritesChange)

	return &bubble
}
