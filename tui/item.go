package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/marquee-cli/marquee/card"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/style"
	"github.com/spf13/viper"
)

// listItem shows a card in a bubbles list.
type listItem struct {
	card *card.Card
}

func (t *listItem) Title() string {
	return t.card.Title()
}

func (t *listItem) Description() string {
	description := t.card.Description()
	if viper.GetBool(key.TUIShowPosterURLs) {
		poster := style.Faint(t.card.Item().PosterURL())
		if description == "" {
			return poster
		}
		return description + "  " + poster
	}

	return description
}

func (t *listItem) FilterValue() string {
	return t.card.FilterValue()
}

// cardItems builds list items for items, dropping those without a poster.
func (b *statefulBubble) cardItems(items []*catalog.Item) []list.Item {
	cards := card.Build(items, b.favorites, b.machine, card.WithListener(b.onCardEvent))

	out := make([]list.Item, len(cards))
	for i, c := range cards {
		out[i] = &listItem{card: c}
	}

	return out
}

func selectedCard(l *list.Model) (*card.Card, bool) {
	item, ok := l.SelectedItem().(*listItem)
	if !ok || item == nil {
		return nil, false
	}

	return item.card, true
}
