// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount is the number of fields registered in config.Default.
const DefinedFieldsCount = 19

// TMDB access - credentials and locale used for every catalog request.
const (
	TMDBToken    = "tmdb.token"
	TMDBLanguage = "tmdb.language"
	TMDBRegion   = "tmdb.region"
)

// Catalog browsing.
const (
	CatalogDefaultList   = "catalog.default_list"
	CatalogCacheTTLHours = "catalog.cache_ttl_hours"
)

// Detail overlay and trailer resolution.
const (
	OverlayMinLoading  = "overlay.min_loading"
	TrailerRetryFailed = "trailer.retry_failed"
	FavoritesPersist   = "favorites.persist"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Minimalist (Mini) Mode - these keys configure the prompt-driven interface.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowPosterURLs     = "tui.show_poster_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
