package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgecount/edgecount/blackjack"
)

func h(ranks ...blackjack.Rank) blackjack.Hand {
	return blackjack.Hand(ranks)
}

func dealerUpcards() []blackjack.Rank {
	return []blackjack.Rank{
		blackjack.Two, blackjack.Three, blackjack.Four, blackjack.Five,
		blackjack.Six, blackjack.Seven, blackjack.Eight, blackjack.Nine,
		blackjack.Ten, blackjack.Jack, blackjack.Queen, blackjack.King,
		blackjack.Ace,
	}
}

func TestHardSeventeenPlusAlwaysStands(t *testing.T) {
	rules := blackjack.DefaultRules()
	hands := []blackjack.Hand{
		h(blackjack.Ten, blackjack.Seven),
		h(blackjack.Ten, blackjack.Nine),
		h(blackjack.Ten, blackjack.Six, blackjack.Two),
		h(blackjack.King, blackjack.Queen), // hard 20 pair falls through
	}
	counts := []Context{
		{},
		{HasCount: true, TrueCount: -5},
		{HasCount: true, TrueCount: 4},
	}
	for _, hand := range hands {
		for _, up := range dealerUpcards() {
			for _, ctx := range counts {
				// pair-of-tens split deviation needs TC >= 5, excluded here
				d, err := Resolve(hand, up, rules, ctx)
				require.NoError(t, err)
				assert.Equal(t, blackjack.Stand, d.Action, "hand %s vs %s ctx %+v", hand, up, ctx)
			}
		}
	}
}

func TestHardEightOrLessAlwaysHits(t *testing.T) {
	rules := blackjack.DefaultRules()
	hands := []blackjack.Hand{
		h(blackjack.Two, blackjack.Three),
		h(blackjack.Two, blackjack.Four),
		h(blackjack.Three, blackjack.Five),
		h(blackjack.Two, blackjack.Two, blackjack.Four),
	}
	for _, hand := range hands {
		for _, up := range dealerUpcards() {
			d, err := Resolve(hand, up, rules, Context{})
			require.NoError(t, err)
			assert.Equal(t, blackjack.Hit, d.Action, "hand %s vs %s", hand, up)
		}
	}
}

func TestPairOfEightsAlwaysSplits(t *testing.T) {
	rules := blackjack.DefaultRules()
	for _, up := range dealerUpcards() {
		for _, ctx := range []Context{{}, {HasCount: true, TrueCount: 2}} {
			d, err := Resolve(h(blackjack.Eight, blackjack.Eight), up, rules, ctx)
			require.NoError(t, err)
			assert.Equal(t, blackjack.Split, d.Action, "8,8 vs %s ctx %+v", up, ctx)
		}
	}
}

func TestSixteenVsTenIndexBoundary(t *testing.T) {
	rules := blackjack.DefaultRules()
	hand := h(blackjack.Ten, blackjack.Six)

	d, err := Resolve(hand, blackjack.Ten, rules, Context{HasCount: true, TrueCount: -1})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, d.Action)

	d, err = Resolve(hand, blackjack.Ten, rules, Context{HasCount: true, TrueCount: 0})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Stand, d.Action, "boundary is inclusive on the >= 0 side")
	assert.Contains(t, d.Reason, "16 vs 10")
	assert.Contains(t, d.Reason, "index play")
}

func TestSixteenVsTenWithoutCountFollowsBasicStrategy(t *testing.T) {
	rules := blackjack.DefaultRules()
	d, err := Resolve(h(blackjack.Ten, blackjack.Six), blackjack.Ten, rules, Context{})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, d.Action, "no count supplied disables index plays")
}

func TestModerateCountTurnsSixteenIntoStand(t *testing.T) {
	rules := blackjack.Rules{
		NumDecks:         6,
		DealerHitsSoft17: true,
		DoubleAfterSplit: true,
		SurrenderAllowed: false,
		BlackjackPayout:  1.5,
	}
	d, err := Resolve(h(blackjack.Ten, blackjack.Six), blackjack.Ten, rules, Context{HasCount: true, TrueCount: 0})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Stand, d.Action)
	assert.Contains(t, d.Reason, "16 vs 10")
}

func TestSurrenderTable(t *testing.T) {
	rules := blackjack.DefaultRules()
	rules.SurrenderAllowed = true

	tests := []struct {
		name   string
		hand   blackjack.Hand
		dealer blackjack.Rank
		want   blackjack.Action
	}{
		{"16 vs 9 surrenders", h(blackjack.Ten, blackjack.Six), blackjack.Nine, blackjack.Surrender},
		{"16 vs 10 surrenders", h(blackjack.Ten, blackjack.Six), blackjack.Ten, blackjack.Surrender},
		{"16 vs A surrenders", h(blackjack.Ten, blackjack.Six), blackjack.Ace, blackjack.Surrender},
		{"15 vs 10 surrenders", h(blackjack.Ten, blackjack.Five), blackjack.Ten, blackjack.Surrender},
		{"15 vs 9 does not", h(blackjack.Ten, blackjack.Five), blackjack.Nine, blackjack.Hit},
		{"14 vs 10 does not", h(blackjack.Ten, blackjack.Four), blackjack.Ten, blackjack.Hit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Resolve(tt.hand, tt.dealer, rules, Context{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Action)
		})
	}
}

func TestSurrenderRequiresTwoCardHardHand(t *testing.T) {
	rules := blackjack.DefaultRules()
	rules.SurrenderAllowed = true

	d, err := Resolve(h(blackjack.Five, blackjack.Five, blackjack.Six), blackjack.Ten, rules, Context{})
	require.NoError(t, err)
	assert.NotEqual(t, blackjack.Surrender, d.Action, "three-card 16 cannot surrender")

	d, err = Resolve(h(blackjack.Ace, blackjack.Five), blackjack.Ten, rules, Context{})
	require.NoError(t, err)
	assert.NotEqual(t, blackjack.Surrender, d.Action, "soft 16 never surrenders")
}

func TestDeviationOverridesSurrender(t *testing.T) {
	rules := blackjack.DefaultRules()
	rules.SurrenderAllowed = true

	d, err := Resolve(h(blackjack.Ten, blackjack.Six), blackjack.Ten, rules, Context{HasCount: true, TrueCount: 1})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Stand, d.Action, "16 vs 10 stands at TC >= 0 even when surrender is allowed")
}

func TestFivesAndTensNeverSplit(t *testing.T) {
	rules := blackjack.DefaultRules()

	d, err := Resolve(h(blackjack.Five, blackjack.Five), blackjack.Six, rules, Context{})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Double, d.Action, "5,5 plays as hard 10")

	d, err = Resolve(h(blackjack.Ten, blackjack.Ten), blackjack.Six, rules, Context{})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Stand, d.Action, "10,10 plays as hard 20")
}

func TestTenPairSplitDeviation(t *testing.T) {
	rules := blackjack.DefaultRules()

	d, err := Resolve(h(blackjack.Ten, blackjack.King), blackjack.Six, rules, Context{HasCount: true, TrueCount: 5})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Split, d.Action)
	assert.Contains(t, d.Reason, "10,10 vs 6")

	d, err = Resolve(h(blackjack.Ten, blackjack.King), blackjack.Six, rules, Context{HasCount: true, TrueCount: 4})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Stand, d.Action, "below threshold the pair plays as hard 20")
}

func TestSoftTotals(t *testing.T) {
	rules := blackjack.DefaultRules()
	tests := []struct {
		name   string
		hand   blackjack.Hand
		dealer blackjack.Rank
		want   blackjack.Action
	}{
		{"soft 18 vs 9 hits", h(blackjack.Ace, blackjack.Seven), blackjack.Nine, blackjack.Hit},
		{"soft 18 vs 2 stands", h(blackjack.Ace, blackjack.Seven), blackjack.Two, blackjack.Stand},
		{"soft 18 vs 5 doubles", h(blackjack.Ace, blackjack.Seven), blackjack.Five, blackjack.Double},
		{"soft 19 stands", h(blackjack.Ace, blackjack.Eight), blackjack.Six, blackjack.Stand},
		{"soft 13 vs 5 doubles", h(blackjack.Ace, blackjack.Two), blackjack.Five, blackjack.Double},
		{"soft 13 vs 4 hits", h(blackjack.Ace, blackjack.Two), blackjack.Four, blackjack.Hit},
		{"soft 17 vs 3 doubles", h(blackjack.Ace, blackjack.Six), blackjack.Three, blackjack.Double},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Resolve(tt.hand, tt.dealer, rules, Context{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Action)
		})
	}
}

func TestDoubleDowngradesToHit(t *testing.T) {
	rules := blackjack.DefaultRules()

	// Three cards: no double.
	d, err := Resolve(h(blackjack.Ace, blackjack.Two, blackjack.Four), blackjack.Five, rules, Context{})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, d.Action, "soft 17 with three cards cannot double")

	d, err = Resolve(h(blackjack.Three, blackjack.Four, blackjack.Four), blackjack.Six, rules, Context{})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, d.Action, "hard 11 with three cards cannot double")

	// Split hand without DAS: no double.
	noDAS := rules
	noDAS.DoubleAfterSplit = false
	d, err = Resolve(h(blackjack.Six, blackjack.Five), blackjack.Six, noDAS, Context{FromSplit: true})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, d.Action, "no double after split")

	d, err = Resolve(h(blackjack.Six, blackjack.Five), blackjack.Six, rules, Context{FromSplit: true})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Double, d.Action, "DAS allows the double")
}

func TestMoreDeviations(t *testing.T) {
	rules := blackjack.DefaultRules()
	tests := []struct {
		name string
		hand blackjack.Hand
		up   blackjack.Rank
		tc   float64
		want blackjack.Action
	}{
		{"12 vs 2 stands at TC 3", h(blackjack.Ten, blackjack.Two), blackjack.Two, 3, blackjack.Stand},
		{"12 vs 2 hits at TC 2", h(blackjack.Ten, blackjack.Two), blackjack.Two, 2, blackjack.Hit},
		{"9 vs 2 doubles at TC 1", h(blackjack.Five, blackjack.Four), blackjack.Two, 1, blackjack.Double},
		{"9 vs 2 hits at TC 0", h(blackjack.Five, blackjack.Four), blackjack.Two, 0, blackjack.Hit},
		{"10 vs A doubles at TC 4", h(blackjack.Six, blackjack.Four), blackjack.Ace, 4, blackjack.Double},
		{"16 vs 9 stands at TC 5", h(blackjack.Ten, blackjack.Six), blackjack.Nine, 5, blackjack.Stand},
		{"15 vs 10 stands at TC 4", h(blackjack.Ten, blackjack.Five), blackjack.Ten, 4, blackjack.Stand},
		{"15 vs 10 hits at TC 3", h(blackjack.Ten, blackjack.Five), blackjack.Ten, 3, blackjack.Hit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Resolve(tt.hand, tt.up, rules, Context{HasCount: true, TrueCount: tt.tc})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Action, d.Reason)
		})
	}
}

func TestSoftHandsSkipHardDeviations(t *testing.T) {
	rules := blackjack.DefaultRules()

	// Soft 16 (A,5) vs 10 at a high count: the hard 16 vs 10 play must
	// not apply to a soft hand.
	d, err := Resolve(h(blackjack.Ace, blackjack.Five), blackjack.Ten, rules, Context{HasCount: true, TrueCount: 3})
	require.NoError(t, err)
	assert.Equal(t, blackjack.Hit, d.Action)
}

func TestResolveValidatesInput(t *testing.T) {
	rules := blackjack.DefaultRules()

	_, err := Resolve(blackjack.Hand{}, blackjack.Ten, rules, Context{})
	require.ErrorIs(t, err, blackjack.ErrEmptyHand)

	_, err = Resolve(h(blackjack.Ten, blackjack.Rank(42)), blackjack.Ten, rules, Context{})
	require.ErrorIs(t, err, blackjack.ErrInvalidRank)

	_, err = Resolve(h(blackjack.Ten, blackjack.Six), blackjack.Rank(0), rules, Context{})
	require.ErrorIs(t, err, blackjack.ErrInvalidRank)
}

func TestOfferInsurance(t *testing.T) {
	assert.False(t, OfferInsurance(2.9))
	assert.True(t, OfferInsurance(3))
	assert.True(t, OfferInsurance(5))
}

func TestReasonNamesBranch(t *testing.T) {
	rules := blackjack.DefaultRules()

	d, err := Resolve(h(blackjack.Eight, blackjack.Eight), blackjack.Ten, rules, Context{})
	require.NoError(t, err)
	assert.Contains(t, d.Reason, "pair of 8s")

	d, err = Resolve(h(blackjack.Ten, blackjack.Nine), blackjack.Two, rules, Context{})
	require.NoError(t, err)
	assert.Contains(t, d.Reason, "always stand")

	d, err = Resolve(h(blackjack.Ace, blackjack.Seven), blackjack.Nine, rules, Context{})
	require.NoError(t, err)
	assert.Contains(t, d.Reason, "soft 18")
}
