package blackjack

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is returned for rule parameters outside their domain.
var ErrInvalidRules = errors.New("invalid game rules")

// Rules is the immutable table of game-rule parameters. It is built
// once from configuration and shared read-only by every component.
type Rules struct {
	NumDecks         int
	DealerHitsSoft17 bool
	DoubleAfterSplit bool
	SurrenderAllowed bool
	BlackjackPayout  float64
	ResplitAces      bool
	MaxSplits        int
}

// DefaultRules returns the common six-deck shoe game.
func DefaultRules() Rules {
	return Rules{
		NumDecks:         6,
		DealerHitsSoft17: true,
		DoubleAfterSplit: true,
		SurrenderAllowed: false,
		BlackjackPayout:  1.5,
		ResplitAces:      false,
		MaxSplits:        3,
	}
}

// Validate checks rule parameters.
func (r Rules) Validate() error {
	if r.NumDecks <= 0 {
		return fmt.Errorf("%w: num_decks must be positive, got %d", ErrInvalidRules, r.NumDecks)
	}
	if r.BlackjackPayout <= 0 {
		return fmt.Errorf("%w: blackjack_payout must be positive, got %v", ErrInvalidRules, r.BlackjackPayout)
	}
	if r.MaxSplits < 0 {
		return fmt.Errorf("%w: max_splits cannot be negative, got %d", ErrInvalidRules, r.MaxSplits)
	}
	return nil
}

// TotalCards returns the number of cards in a fresh shoe.
func (r Rules) TotalCards() int {
	return r.NumDecks * 52
}
