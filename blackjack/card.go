// Package blackjack provides the card rank domain, hand arithmetic and
// action vocabulary shared by the counting, strategy and betting layers.
package blackjack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRank is returned when a rank symbol is outside the 13-card domain.
var ErrInvalidRank = errors.New("invalid card rank")

// Rank represents a card rank. Suits are irrelevant to counting and
// strategy, so ranks are the whole card domain here.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the table notation for a rank ("2".."10", "J", "Q", "K", "A").
func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return fmt.Sprintf("%d", int(r))
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether r is one of the 13 rank symbols.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Value returns the blackjack value of the rank. Aces count 11 here;
// Hand arithmetic demotes them to 1 as needed.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

// IsAce returns true if the rank is an Ace.
func (r Rank) IsAce() bool {
	return r == Ace
}

// IsTenValue returns true for 10, J, Q and K.
func (r Rank) IsTenValue() bool {
	return r >= Ten && r <= King
}

// ParseRank parses a rank symbol as produced by the screen-reader feed:
// "2".."10", "J", "Q", "K", "A" (case-insensitive, "T" accepted for 10).
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
}

// ParseRanks parses a slice of rank symbols, failing on the first
// invalid one.
func ParseRanks(symbols []string) ([]Rank, error) {
	ranks := make([]Rank, 0, len(symbols))
	for _, s := range symbols {
		r, err := ParseRank(s)
		if err != nil {
			return nil, err
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}
