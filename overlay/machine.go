// Package overlay controls the detail overlay opened from a card.
//
// The overlay is Closed, Loading an item, or Ready with the item and its
// trailer record. Loading only ends once the trailer is resolved and a
// minimum display time has passed, whichever comes last. Every Open starts
// a new generation; signals carrying an older generation are dropped, so the
// last opened item always wins.
package overlay

import (
	"sync"
	"time"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/spf13/viper"
)

// DefaultMinLoading is used when no minimum is configured.
const DefaultMinLoading = time.Second

// Phase is where the overlay is in its lifecycle.
type Phase int

const (
	Closed Phase = iota
	Loading
	Ready
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "closed"
	}
}

// Ticket identifies one Open. Both completion signals must carry it.
type Ticket struct {
	Generation uint64
	ID         catalog.ID
}

// Valid is false for the zero Ticket, which Open returns for a nil item.
func (t Ticket) Valid() bool {
	return t.Generation > 0
}

// State is a copy of the machine state. Record is only meaningful when Ready.
type State struct {
	Phase      Phase
	Item       *catalog.Item
	Record     trailer.Record
	Generation uint64
}

func (s State) Ticket() Ticket {
	if s.Phase == Closed || s.Item == nil {
		return Ticket{}
	}

	return Ticket{Generation: s.Generation, ID: s.Item.ID}
}

// Snapshot is what the renderer needs to draw the overlay.
type Snapshot struct {
	IsOpen     bool
	IsLoading  bool
	Item       *catalog.Item
	TrailerKey string
}

// Machine owns the overlay state. It is safe for concurrent use.
type Machine struct {
	mu         sync.Mutex
	state      State
	generation uint64
	resolved   *trailer.Record
	elapsed    bool
	minLoading time.Duration
}

type Option func(*Machine)

// WithMinLoading sets the minimum time the loading state is shown.
func WithMinLoading(d time.Duration) Option {
	return func(m *Machine) {
		m.minLoading = max(d, 0)
	}
}

// NewMachine returns a closed overlay.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{minLoading: DefaultMinLoading}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// MinLoadingFromConfig reads overlay.min_loading, given in milliseconds.
func MinLoadingFromConfig() time.Duration {
	ms := viper.GetInt(key.OverlayMinLoading)
	if ms < 0 {
		return 0
	}

	return time.Duration(ms) * time.Millisecond
}

// MinLoading is how long the caller should wait before sending TimerElapsed.
func (m *Machine) MinLoading() time.Duration {
	return m.minLoading
}

// Open shows item in the loading state and returns the ticket for its
// signals. Opening the item already shown keeps the current state and
// returns its ticket. A nil item is ignored.
func (m *Machine) Open(item *catalog.Item) Ticket {
	if item == nil {
		return Ticket{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase != Closed && m.state.Item.ID == item.ID {
		return m.state.Ticket()
	}

	m.generation++
	m.resolved = nil
	m.elapsed = false
	m.state = State{Phase: Loading, Item: item, Generation: m.generation}

	return m.state.Ticket()
}

// Resolved delivers the trailer record for t. It reports whether the
// signal was accepted.
func (m *Machine) Resolved(t Ticket, rec trailer.Record) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.current(t) || rec.ID != t.ID {
		return false
	}

	m.resolved = &rec
	m.advance()
	return true
}

// TimerElapsed reports that the minimum loading time of t has passed.
func (m *Machine) TimerElapsed(t Ticket) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.current(t) {
		return false
	}

	m.elapsed = true
	m.advance()
	return true
}

// Close hides the overlay from any state. Signals still in flight are
// dropped when they arrive.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	m.resolved = nil
	m.elapsed = false
	m.state = State{Phase: Closed, Generation: m.generation}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Snapshot returns what the overlay should render right now.
func (m *Machine) Snapshot() Snapshot {
	s := m.State()

	snap := Snapshot{
		IsOpen:    s.Phase != Closed,
		IsLoading: s.Phase == Loading,
		Item:      s.Item,
	}

	if s.Phase == Ready && s.Record.Status == trailer.Found {
		snap.TrailerKey = s.Record.Key
	}

	return snap
}

// current must be called with mu held.
func (m *Machine) current(t Ticket) bool {
	return t.Valid() && t.Generation == m.generation && m.state.Phase == Loading
}

// advance must be called with mu held.
func (m *Machine) advance() {
	if m.resolved == nil || !m.elapsed {
		return
	}

	m.state.Phase = Ready
	m.state.Record = *m.resolved
}
