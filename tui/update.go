package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/query"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := b.update(msg)
	return model, tea.Batch(cmd, b.flush())
}

func (b *statefulBubble) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifyCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, notifyCmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		if !b.loading {
			return b, notifyCmd
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(notifyCmd, cmd)
	case overlayResolvedMsg:
		b.machine.Resolved(msg.ticket, msg.record)
		return b, notifyCmd
	case overlayTimerMsg:
		b.machine.TimerElapsed(msg.ticket)
		return b, notifyCmd
	case featuredResolvedMsg:
		// the banner reads the resolver cache; a redraw is enough
		return b, notifyCmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if b.machine.Snapshot().IsOpen {
			return b, tea.Batch(notifyCmd, b.updateOverlay(msg))
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case loadingState:
		cmd = b.updateLoading(msg)
	case browseState:
		cmd = b.updateBrowse(msg)
	case searchState:
		cmd = b.updateSearch(msg)
	case resultsState:
		cmd = b.updateCards(&b.resultsC, msg)
	case favoritesState:
		cmd = b.updateCards(&b.favoritesC, msg)
	case errorState:
		cmd = b.updateError(msg)
	}

	return b, tea.Batch(notifyCmd, cmd)
}

// updateOverlay handles keys while the overlay covers the screen.
func (b *statefulBubble) updateOverlay(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubblesKey.Matches(msg, b.keymap.closeOverlay):
		b.closeOverlay()
	case bubblesKey.Matches(msg, b.keymap.favorite):
		b.toggleOverlayFavorite()
	case bubblesKey.Matches(msg, b.keymap.watch):
		snap := b.machine.Snapshot()
		if snap.IsLoading {
			return nil
		}
		return b.watch(snap.TrailerKey)
	case bubblesKey.Matches(msg, b.keymap.quit):
		return tea.Quit
	}

	return nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case listLoadedMsg:
		b.stopLoading()
		cmd := b.showList(msg)
		b.newState(browseState)
		return cmd
	case searchDoneMsg:
		b.stopLoading()
		cmd := b.showResults(msg)
		b.newState(resultsState)
		return cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.back) && b.statesHistory.Len() > 0 {
			b.stopLoading()
			b.previousState()
		}
	}

	return nil
}

func (b *statefulBubble) updateBrowse(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case listLoadedMsg:
		b.stopLoading()
		return b.showList(msg)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.nextList):
			next := b.currentList.Next()
			b.browseC.Title = next.Title()
			return tea.Batch(b.startLoading("Loading "+next.Title()), b.loadList(next))
		case bubblesKey.Matches(msg, b.keymap.playFeatured):
			if b.featured == nil {
				return nil
			}
			return b.watch(b.resolver.Peek(b.featured.ID).Key)
		}
	}

	return b.updateCards(&b.browseC, msg)
}

// updateCards handles the keys shared by every list of cards.
func (b *statefulBubble) updateCards(l *list.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.details):
			b.activate(l)
			return nil
		case bubblesKey.Matches(msg, b.keymap.favorite):
			b.toggleFavorite(l)
			return nil
		case bubblesKey.Matches(msg, b.keymap.search):
			b.inputC.SetValue("")
			b.searchSuggestion = query.Suggest("")
			b.newState(searchState)
			return b.inputC.Focus()
		case bubblesKey.Matches(msg, b.keymap.favorites):
			if b.state != favoritesState {
				b.newState(favoritesState)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.back):
			l.ResetSelected()
			b.previousState()
			return nil
		}
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			q := strings.TrimSpace(b.inputC.Value())
			if q == "" {
				return nil
			}

			b.inputC.Blur()
			b.rememberQuery(q)
			b.newState(loadingState)
			return tea.Batch(b.startLoading("Searching "+q), b.searchCatalog(q))
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.searchSuggestion = query.Suggest(b.inputC.Value())
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.statesHistory.Len() == 0 {
				return tea.Quit
			}
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
	}

	return nil
}
