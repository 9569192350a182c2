package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/favorites"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/tmdb"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/spf13/viper"
)

type Options struct {
	// List is shown first.
	List catalog.List
}

// Run starts the TUI and blocks until it exits.
func Run(options *Options) error {
	client, err := tmdb.New()
	if err != nil {
		return err
	}

	var program *tea.Program

	store, err := favorites.Open(func(err error) {
		if program != nil {
			go program.Send(ui.NotificationMsg("Favorites were not saved: " + err.Error()))
		}
	})
	if err != nil {
		logger.Errorf("%v", err)
	}

	registry := catalog.NewRegistry()
	registry.Put(store.Items()...)

	bubble := newBubble(options, Backend{
		Catalog:   client,
		Registry:  registry,
		Resolver:  trailer.NewResolver(client, registry, trailer.WithRetryFailed(viper.GetBool(key.TrailerRetryFailed))),
		Favorites: store,
		Machine:   overlay.NewMachine(overlay.WithMinLoading(overlay.MinLoadingFromConfig())),
	})

	program = tea.NewProgram(bubble, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
