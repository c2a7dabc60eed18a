// Package shoe simulates a multi-deck dealing shoe with a cut card,
// used by the drill and simulate commands.
package shoe

import (
	rand "math/rand/v2"

	"github.com/edgecount/edgecount/blackjack"
)

// Shoe is a shuffled multi-deck shoe. Dealing past the cut card marks
// the shoe as needing a shuffle, the same signal a live table gives.
type Shoe struct {
	cards       []blackjack.Rank
	dealt       int
	numDecks    int
	penetration float64
	rng         *rand.Rand
}

// New creates a shuffled shoe of numDecks decks with the cut card at
// the given penetration fraction. The seed makes drills reproducible.
func New(numDecks int, penetration float64, seed int64) *Shoe {
	s := &Shoe{
		numDecks:    numDecks,
		penetration: penetration,
		rng:         rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
	s.Shuffle()
	return s
}

// Shuffle rebuilds and reshuffles the full shoe.
func (s *Shoe) Shuffle() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for suit := 0; suit < 4; suit++ {
			for r := blackjack.Two; r <= blackjack.Ace; r++ {
				s.cards = append(s.cards, r)
			}
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.dealt = 0
}

// Deal removes and returns the next card. Returns false when the shoe
// is exhausted.
func (s *Shoe) Deal() (blackjack.Rank, bool) {
	if s.dealt >= len(s.cards) {
		return 0, false
	}
	card := s.cards[s.dealt]
	s.dealt++
	return card, true
}

// DealN deals up to n cards.
func (s *Shoe) DealN(n int) []blackjack.Rank {
	out := make([]blackjack.Rank, 0, n)
	for i := 0; i < n; i++ {
		card, ok := s.Deal()
		if !ok {
			break
		}
		out = append(out, card)
	}
	return out
}

// NeedsShuffle reports whether the cut card has been reached.
func (s *Shoe) NeedsShuffle() bool {
	return float64(s.dealt) >= float64(len(s.cards))*s.penetration
}

// CardsDealt returns how many cards have left the shoe.
func (s *Shoe) CardsDealt() int {
	return s.dealt
}

// CardsRemaining returns how many cards are still in the shoe.
func (s *Shoe) CardsRemaining() int {
	return len(s.cards) - s.dealt
}
