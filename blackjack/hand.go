package blackjack

import (
	"errors"
	"strings"
)

// ErrEmptyHand is returned when an operation needs at least one card.
var ErrEmptyHand = errors.New("hand has no cards")

// Hand is an ordered sequence of card ranks as observed at the table.
type Hand []Rank

// ParseHand parses a hand from rank symbols.
func ParseHand(symbols ...string) (Hand, error) {
	ranks, err := ParseRanks(symbols)
	if err != nil {
		return nil, err
	}
	return Hand(ranks), nil
}

// Validate checks that the hand is non-empty and every rank is in the
// 13-symbol domain.
func (h Hand) Validate() error {
	if len(h) == 0 {
		return ErrEmptyHand
	}
	for _, r := range h {
		if !r.Valid() {
			return ErrInvalidRank
		}
	}
	return nil
}

// Total returns the best blackjack total: aces count 11 unless that
// busts the hand, in which case they demote to 1 one at a time.
func (h Hand) Total() int {
	total := 0
	aces := 0
	for _, r := range h {
		if r.IsAce() {
			aces++
		}
		total += r.Value()
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsSoft returns true when the hand contains an ace still counted as 11.
func (h Hand) IsSoft() bool {
	total := 0
	aces := 0
	for _, r := range h {
		if r.IsAce() {
			aces++
		}
		total += r.Value()
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return aces > 0
}

// IsPair returns true for exactly two cards of equal rank. Ten-value
// cards pair with each other (K,10 is a pair of tens for split purposes).
func (h Hand) IsPair() bool {
	if len(h) != 2 {
		return false
	}
	if h[0] == h[1] {
		return true
	}
	return h[0].IsTenValue() && h[1].IsTenValue()
}

// PairRank returns the normalized rank of a pair (face cards map to
// Ten). Returns false if the hand is not a pair.
func (h Hand) PairRank() (Rank, bool) {
	if !h.IsPair() {
		return 0, false
	}
	r := h[0]
	if r.IsTenValue() {
		r = Ten
	}
	return r, true
}

// IsBlackjack returns true for a two-card 21.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Total() == 21
}

// IsBust returns true when the best total exceeds 21.
func (h Hand) IsBust() bool {
	return h.Total() > 21
}

// String renders the hand in feed notation, e.g. "10 6".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, r := range h {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
