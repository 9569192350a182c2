package overlay

import (
	"context"
	"sync"
	"time"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/trailer"
)

// Resolver is the part of trailer.Resolver the driver needs.
type Resolver interface {
	Resolve(ctx context.Context, id catalog.ID) trailer.Record
}

// Driver runs both completion signals of an Open on goroutines, for callers
// without an event loop of their own.
type Driver struct {
	machine  *Machine
	resolver Resolver
	after    func(time.Duration) <-chan time.Time
	onChange func(State)
}

type DriverOption func(*Driver)

// WithClock replaces time.After, mostly for tests.
func WithClock(after func(time.Duration) <-chan time.Time) DriverOption {
	return func(d *Driver) {
		d.after = after
	}
}

// WithOnChange registers fn to receive every state a Follow ends in.
func WithOnChange(fn func(State)) DriverOption {
	return func(d *Driver) {
		d.onChange = fn
	}
}

func NewDriver(machine *Machine, resolver Resolver, opts ...DriverOption) *Driver {
	d := &Driver{
		machine:  machine,
		resolver: resolver,
		after:    time.After,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Machine() *Machine {
	return d.machine
}

// Open opens item and follows the resulting ticket.
func (d *Driver) Open(ctx context.Context, item *catalog.Item) (Ticket, <-chan State) {
	t := d.machine.Open(item)
	return t, d.Follow(ctx, t)
}

// Follow resolves the trailer and waits out the minimum loading time for t,
// then sends the resulting state and closes the channel. Nothing is sent if
// another Open or a Close superseded t in the meantime.
func (d *Driver) Follow(ctx context.Context, t Ticket) <-chan State {
	out := make(chan State, 1)
	if !t.Valid() {
		close(out)
		return out
	}

	go func() {
		defer close(out)

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			d.machine.Resolved(t, d.resolver.Resolve(ctx, t.ID))
		}()

		go func() {
			defer wg.Done()
			select {
			case <-d.after(d.machine.MinLoading()):
				d.machine.TimerElapsed(t)
			case <-ctx.Done():
			}
		}()

		wg.Wait()

		state := d.machine.State()
		if state.Generation != t.Generation {
			return
		}

		if d.onChange != nil {
			d.onChange(state)
		}
		out <- state
	}()

	return out
}
