// Package count maintains the running card count for a shoe and
// derives the true count, penetration and player advantage from it.
package count

import (
	"math"

	"github.com/edgecount/edgecount/blackjack"
)

const (
	// decksRemainingFloor prevents the true-count denominator from
	// blowing up near the end of the shoe.
	decksRemainingFloor = 0.5

	// advantagePerTrueCount is the linear edge model: break-even near
	// true count +1, roughly half a percentage point per unit above.
	// This is a documented heuristic, not a simulation-backed figure.
	advantagePerTrueCount = 0.005
)

// State is an immutable snapshot of the counter, returned by value so
// display code never holds a mutable handle into the engine.
type State struct {
	System         System
	RunningCount   float64
	CardsSeen      int
	DecksRemaining float64
	TrueCount      float64
	Penetration    float64
	Advantage      float64
}

// Engine tracks the running count for one shoe. It performs no internal
// locking; callers invoking Update/Reset from multiple goroutines must
// serialize access themselves.
type Engine struct {
	system       System
	numDecks     int
	runningCount float64
	cardsSeen    int
}

// NewEngine creates a counter for a shoe of numDecks decks.
func NewEngine(system System, numDecks int) *Engine {
	return &Engine{system: system, numDecks: numDecks}
}

// Update adds one observed card to the count.
func (e *Engine) Update(r blackjack.Rank) error {
	v, err := e.system.PointValue(r)
	if err != nil {
		return err
	}
	e.runningCount += v
	e.cardsSeen++
	return nil
}

// UpdateAll counts a sequence of cards, stopping at the first invalid rank.
func (e *Engine) UpdateAll(ranks []blackjack.Rank) error {
	for _, r := range ranks {
		if err := e.Update(r); err != nil {
			return err
		}
	}
	return nil
}

// Reset zeroes the running count and cards seen together (new shoe).
func (e *Engine) Reset() {
	e.runningCount = 0
	e.cardsSeen = 0
}

// MaybeAutoReset resets the count if a shuffle was signalled or
// penetration reached threshold. Either condition alone is sufficient.
// Returns true when a reset happened.
func (e *Engine) MaybeAutoReset(shuffle bool, threshold float64) bool {
	if shuffle || e.Penetration() >= threshold {
		e.Reset()
		return true
	}
	return false
}

// RunningCount returns the current running count. Fractional only for
// the Halves system.
func (e *Engine) RunningCount() float64 {
	return e.runningCount
}

// CardsSeen returns the number of cards counted since the last reset.
func (e *Engine) CardsSeen() int {
	return e.cardsSeen
}

// DecksRemaining estimates the decks left in the shoe, floored at half
// a deck.
func (e *Engine) DecksRemaining() float64 {
	remaining := float64(e.numDecks) - float64(e.cardsSeen)/52
	return math.Max(remaining, decksRemainingFloor)
}

// TrueCount returns the running count normalized by decks remaining.
// Computed uniformly for all systems; for unbalanced systems (KO) the
// value is conventionally ignored by callers.
func (e *Engine) TrueCount() float64 {
	return e.runningCount / e.DecksRemaining()
}

// Penetration returns the fraction of the shoe already dealt, in [0,1].
func (e *Engine) Penetration() float64 {
	p := float64(e.cardsSeen) / float64(e.numDecks*52)
	return math.Min(math.Max(p, 0), 1)
}

// Advantage estimates the player edge from the true count using the
// linear model (true count - 1) * 0.5%.
func (e *Engine) Advantage() float64 {
	return (e.TrueCount() - 1) * advantagePerTrueCount
}

// ShouldWongOut reports whether the count is unfavorable enough to
// leave the table.
func (e *Engine) ShouldWongOut(threshold float64) bool {
	return e.TrueCount() <= threshold
}

// Snapshot returns the current state by value.
func (e *Engine) Snapshot() State {
	return State{
		System:         e.system,
		RunningCount:   e.runningCount,
		CardsSeen:      e.cardsSeen,
		DecksRemaining: e.DecksRemaining(),
		TrueCount:      e.TrueCount(),
		Penetration:    e.Penetration(),
		Advantage:      e.Advantage(),
	}
}
