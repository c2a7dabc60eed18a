// Package monitor drives the decision engine on a fixed cadence,
// consuming feed snapshots and publishing value-copied updates for
// display.
package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/edgecount/edgecount/internal/count"
	"github.com/edgecount/edgecount/internal/engine"
	"github.com/edgecount/edgecount/internal/feed"
)

// Update is one display refresh. Everything is passed by value so
// consumers never share mutable state with the engine.
type Update struct {
	Recommendation engine.Recommendation
	Count          count.State
	Phase          engine.Phase
	// HasHand is set when Recommendation is meaningful for this cycle.
	HasHand bool
}

// Monitor owns the only goroutine that calls into the engine, which
// keeps the lock-free core safe.
type Monitor struct {
	eng      *engine.Engine
	interval time.Duration
	clock    quartz.Clock
	logger   *log.Logger
}

// New creates a monitor. The clock is injectable for tests; production
// callers pass quartz.NewReal().
func New(eng *engine.Engine, interval time.Duration, clock quartz.Clock, logger *log.Logger) *Monitor {
	return &Monitor{
		eng:      eng,
		interval: interval,
		clock:    clock,
		logger:   logger.WithPrefix("monitor"),
	}
}

// Run processes feed events on each tick until the context is
// cancelled. Snapshots arriving between ticks coalesce: only the most
// recent one is evaluated, matching the screen reader's refresh model.
// Engine errors are fatal to their cycle only; the cycle is logged and
// skipped.
func (m *Monitor) Run(ctx context.Context, events <-chan feed.Event, updates chan<- Update) error {
	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()

	var pending *feed.Event
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			pending = &ev

		case <-ticker.C:
			update := m.cycle(pending)
			pending = nil
			select {
			case updates <- update:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// cycle evaluates at most one snapshot and always refreshes the count
// display.
func (m *Monitor) cycle(pending *feed.Event) Update {
	update := Update{Phase: m.eng.Phase()}

	if pending != nil {
		switch {
		case pending.HandOver:
			m.eng.EndHand()
		default:
			rec, err := m.eng.Observe(pending.Snapshot)
			if err != nil {
				m.logger.Warn("skipping cycle", "error", err)
			} else {
				update.Recommendation = rec
				update.HasHand = true
			}
		}
		update.Phase = m.eng.Phase()
	}

	update.Count = m.eng.CountState()
	return update
}
