package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	b.setState(loadingState)
	return tea.Batch(
		textinput.Blink,
		b.startLoading("Loading "+b.currentList.Title()),
		b.loadList(b.currentList),
	)
}
