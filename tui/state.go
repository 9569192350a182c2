package tui

type state int

const (
	loadingState state = iota
	errorState
	browseState
	searchState
	resultsState
	favoritesState
)

func (s state) String() string {
	switch s {
	case loadingState:
		return "loading"
	case errorState:
		return "error"
	case browseState:
		return "browse"
	case searchState:
		return "search"
	case resultsState:
		return "results"
	case favoritesState:
		return "favorites"
	default:
		return "unknown"
	}
}

// lists reports whether the state shows a list of cards.
func (s state) lists() bool {
	return s == browseState || s == resultsState || s == favoritesState
}
