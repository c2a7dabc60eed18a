// Package engine orchestrates counting, strategy resolution and bet
// sizing over observed table snapshots.
package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/edgecount/edgecount/blackjack"
	"github.com/edgecount/edgecount/internal/betting"
	"github.com/edgecount/edgecount/internal/count"
	"github.com/edgecount/edgecount/internal/strategy"
)

// Phase is the engine hand-tracking state.
type Phase int

const (
	// Idle means no hand is in progress.
	Idle Phase = iota
	// HandActive means cards have been observed for the current hand.
	HandActive
)

func (p Phase) String() string {
	if p == HandActive {
		return "hand_active"
	}
	return "idle"
}

// Counting configures the count engine behaviour.
type Counting struct {
	System    count.System
	Enabled   bool
	AutoReset bool
	// PenetrationThreshold triggers an auto reset when the dealt
	// fraction of the shoe reaches it.
	PenetrationThreshold float64
	// WongOutThreshold is the true count at or below which the engine
	// flags leaving the table. Only consulted when WongOut is set.
	WongOut          bool
	WongOutThreshold float64
}

// Engine consumes snapshots and produces recommendations. It owns the
// count engine; rules and betting configuration are immutable after
// construction. Not safe for concurrent use; the monitor serializes
// all calls.
type Engine struct {
	rules    blackjack.Rules
	bets     betting.Config
	counting Counting
	counter  *count.Engine
	logger   *log.Logger

	phase Phase
	// seen tracks, per hand, how many cards of each rank have already
	// been counted, so re-submitted snapshots never double-count.
	seenDealer map[blackjack.Rank]int
	seenPlayer map[blackjack.Rank]int
}

// New creates a decision engine. Configuration is validated eagerly so
// a misconfigured engine never produces a recommendation.
func New(rules blackjack.Rules, bets betting.Config, counting Counting, logger *log.Logger) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if err := bets.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		rules:      rules,
		bets:       bets,
		counting:   counting,
		counter:    count.NewEngine(counting.System, rules.NumDecks),
		logger:     logger.WithPrefix("engine"),
		seenDealer: map[blackjack.Rank]int{},
		seenPlayer: map[blackjack.Rank]int{},
	}, nil
}

// Observe processes one snapshot: counts newly seen cards, resolves the
// strategy action and sizes the bet. Re-submitting an identical
// snapshot is a no-op for the count.
func (e *Engine) Observe(snap Snapshot) (Recommendation, error) {
	if e.counting.Enabled && e.counting.AutoReset {
		if e.counter.MaybeAutoReset(snap.Shuffle, e.counting.PenetrationThreshold) {
			e.logger.Info("count reset", "shuffle", snap.Shuffle, "penetration_threshold", e.counting.PenetrationThreshold)
			e.endHand()
		}
	}

	if err := snap.Player.Validate(); err != nil {
		return Recommendation{}, fmt.Errorf("observe: player hand: %w", err)
	}
	if len(snap.Dealer) == 0 {
		return Recommendation{}, fmt.Errorf("observe: dealer upcard: %w", blackjack.ErrEmptyHand)
	}
	for _, r := range snap.Dealer {
		if !r.Valid() {
			return Recommendation{}, fmt.Errorf("observe: dealer hand: %w", blackjack.ErrInvalidRank)
		}
	}

	if e.phase == Idle {
		e.phase = HandActive
		e.logger.Debug("hand started", "player", snap.Player.String(), "dealer", snap.Dealer.String())
	}

	if e.counting.Enabled {
		if err := e.countNew(snap); err != nil {
			return Recommendation{}, err
		}
	}

	state := e.counter.Snapshot()
	ctx := strategy.Context{FromSplit: snap.FromSplit}
	if e.counting.Enabled {
		ctx.HasCount = true
		ctx.TrueCount = state.TrueCount
	}

	decision, err := strategy.Resolve(snap.Player, snap.Dealer[0], e.rules, ctx)
	if err != nil {
		return Recommendation{}, err
	}

	bets := e.bets
	if snap.Balance > 0 {
		bets.Bankroll = snap.Balance
	}
	bet, err := betting.Recommend(bets, state.TrueCount)
	if err != nil {
		return Recommendation{}, err
	}

	rec := Recommendation{
		Action:    decision.Action,
		Reason:    decision.Reason,
		BetAmount: bet.Amount,
		BetUnits:  bet.Units,
		BetReason: bet.Reason,
		Insurance: snap.Dealer[0].IsAce() && ctx.HasCount && strategy.OfferInsurance(state.TrueCount),
		TrueCount: state.TrueCount,
	}
	if e.counting.Enabled && e.counting.WongOut {
		rec.WongOut = betting.ShouldWongOut(state.TrueCount, e.counting.WongOutThreshold)
	}

	e.logger.Debug("recommendation",
		"action", rec.Action.String(),
		"reason", rec.Reason,
		"bet", rec.BetAmount,
		"true_count", fmt.Sprintf("%.2f", rec.TrueCount))
	return rec, nil
}

// countNew feeds cards into the counter that this hand has not counted
// yet, comparing per-rank multiplicities against what was already seen.
// Card order within a snapshot does not matter.
func (e *Engine) countNew(snap Snapshot) error {
	if err := e.countDelta(snap.Player, e.seenPlayer); err != nil {
		return err
	}
	return e.countDelta(snap.Dealer, e.seenDealer)
}

func (e *Engine) countDelta(hand blackjack.Hand, seen map[blackjack.Rank]int) error {
	current := map[blackjack.Rank]int{}
	for _, r := range hand {
		current[r]++
	}
	for r, n := range current {
		for i := seen[r]; i < n; i++ {
			if err := e.counter.Update(r); err != nil {
				return err
			}
		}
		if n > seen[r] {
			seen[r] = n
		}
	}
	return nil
}

// EndHand signals hand completion: the engine returns to idle and the
// per-hand dedup state is cleared. The count itself carries across
// hands until the shoe is shuffled.
func (e *Engine) EndHand() {
	e.endHand()
	e.logger.Debug("hand ended")
}

func (e *Engine) endHand() {
	e.phase = Idle
	e.seenDealer = map[blackjack.Rank]int{}
	e.seenPlayer = map[blackjack.Rank]int{}
}

// ResetCount zeroes the count (manual new-shoe signal).
func (e *Engine) ResetCount() {
	e.counter.Reset()
	e.endHand()
}

// Phase returns the current hand-tracking phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// CountState returns the current count as an immutable snapshot.
func (e *Engine) CountState() count.State {
	return e.counter.Snapshot()
}

// Rules returns the game rules the engine was built with.
func (e *Engine) Rules() blackjack.Rules {
	return e.rules
}
