package engine

import "github.com/edgecount/edgecount/blackjack"

// Snapshot is one observation of the table, as produced by the external
// screen-reader layer. Unknown cards (the dealer hole card before it is
// revealed) are simply absent from the slices.
type Snapshot struct {
	Dealer blackjack.Hand
	Player blackjack.Hand

	// Shuffle is set when the external layer detected a shuffle or a
	// new shoe.
	Shuffle bool

	// FromSplit marks a player hand created by splitting.
	FromSplit bool

	// Balance is the observed bankroll, if the feed reads it. Zero
	// means unknown and the configured bankroll is used.
	Balance float64
}

// Recommendation is the combined engine output for one decision cycle.
// Created fresh per cycle and never mutated afterwards.
type Recommendation struct {
	Action    blackjack.Action
	Reason    string
	BetAmount float64
	BetUnits  int
	BetReason string
	Insurance bool
	TrueCount float64
	WongOut   bool
}
