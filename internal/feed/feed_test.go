package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgecount/edgecount/blackjack"
)

func TestDecodeSnapshot(t *testing.T) {
	ev, err := decode([]byte(`{
		"dealer": ["A", "?"],
		"player": ["10", "6"],
		"shuffle": false,
		"balance": 850.5
	}`))
	require.NoError(t, err)

	assert.Equal(t, blackjack.Hand{blackjack.Ace}, ev.Snapshot.Dealer, "unknown hole card is dropped")
	assert.Equal(t, blackjack.Hand{blackjack.Ten, blackjack.Six}, ev.Snapshot.Player)
	assert.False(t, ev.Snapshot.Shuffle)
	assert.Equal(t, 850.5, ev.Snapshot.Balance)
	assert.False(t, ev.HandOver)
}

func TestDecodeShuffleAndHandOver(t *testing.T) {
	ev, err := decode([]byte(`{"dealer": [], "player": [], "shuffle": true, "hand_over": true}`))
	require.NoError(t, err)
	assert.True(t, ev.Snapshot.Shuffle)
	assert.True(t, ev.HandOver)
	assert.Empty(t, ev.Snapshot.Player)
}

func TestDecodeSkipsEmptyMarkers(t *testing.T) {
	ev, err := decode([]byte(`{"dealer": ["?", ""], "player": ["K", "", "Q"]}`))
	require.NoError(t, err)
	assert.Empty(t, ev.Snapshot.Dealer)
	assert.Equal(t, blackjack.Hand{blackjack.King, blackjack.Queen}, ev.Snapshot.Player)
}

func TestDecodeRejectsBadInput(t *testing.T) {
	_, err := decode([]byte(`not json`))
	require.Error(t, err)

	_, err = decode([]byte(`{"player": ["joker"]}`))
	require.ErrorIs(t, err, blackjack.ErrInvalidRank)
}

func TestDecodeFromSplit(t *testing.T) {
	ev, err := decode([]byte(`{"dealer": ["9"], "player": ["8", "3"], "from_split": true}`))
	require.NoError(t, err)
	assert.True(t, ev.Snapshot.FromSplit)
}
