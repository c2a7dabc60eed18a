// Package strategy resolves basic-strategy actions for a hand against a
// dealer upcard, with count-indexed deviations layered on top.
package strategy

import "github.com/edgecount/edgecount/blackjack"

// tableKey addresses a strategy cell: player total (or pair rank value)
// against dealer upcard value. Dealer ace is 11.
type tableKey struct {
	player int
	dealer int
}

// row expands one player total across a set of dealer upcards.
func row(dst map[tableKey]blackjack.Action, player int, action blackjack.Action, dealers ...int) {
	for _, d := range dealers {
		dst[tableKey{player, d}] = action
	}
}

var allDealers = []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

// hardTable covers hard totals 9-16. Totals <= 8 always hit and
// totals >= 17 always stand, so they never reach the table.
var hardTable = buildHardTable()

func buildHardTable() map[tableKey]blackjack.Action {
	t := make(map[tableKey]blackjack.Action)

	row(t, 9, blackjack.Double, 3, 4, 5, 6)
	row(t, 9, blackjack.Hit, 2, 7, 8, 9, 10, 11)

	row(t, 10, blackjack.Double, 2, 3, 4, 5, 6, 7, 8, 9)
	row(t, 10, blackjack.Hit, 10, 11)

	row(t, 11, blackjack.Double, allDealers...)

	row(t, 12, blackjack.Stand, 4, 5, 6)
	row(t, 12, blackjack.Hit, 2, 3, 7, 8, 9, 10, 11)

	for total := 13; total <= 16; total++ {
		row(t, total, blackjack.Stand, 2, 3, 4, 5, 6)
		row(t, total, blackjack.Hit, 7, 8, 9, 10, 11)
	}
	return t
}

// softTable covers soft totals 13-18. Soft 19+ always stands.
var softTable = buildSoftTable()

func buildSoftTable() map[tableKey]blackjack.Action {
	t := make(map[tableKey]blackjack.Action)

	for total := 13; total <= 14; total++ {
		row(t, total, blackjack.Double, 5, 6)
		row(t, total, blackjack.Hit, 2, 3, 4, 7, 8, 9, 10, 11)
	}
	for total := 15; total <= 16; total++ {
		row(t, total, blackjack.Double, 4, 5, 6)
		row(t, total, blackjack.Hit, 2, 3, 7, 8, 9, 10, 11)
	}

	row(t, 17, blackjack.Double, 3, 4, 5, 6)
	row(t, 17, blackjack.Hit, 2, 7, 8, 9, 10, 11)

	row(t, 18, blackjack.Double, 3, 4, 5, 6)
	row(t, 18, blackjack.Stand, 2, 7, 8)
	row(t, 18, blackjack.Hit, 9, 10, 11)

	return t
}

// pairTable covers splittable pairs keyed by normalized pair rank value.
// 5,5 and 10,10 are deliberately absent: they fall through and resolve
// as hard 10 and hard 20.
var pairTable = buildPairTable()

func buildPairTable() map[tableKey]blackjack.Action {
	t := make(map[tableKey]blackjack.Action)

	row(t, 2, blackjack.Split, 2, 3, 4, 5, 6, 7)
	row(t, 3, blackjack.Split, 2, 3, 4, 5, 6, 7)
	row(t, 4, blackjack.Split, 5, 6)
	row(t, 6, blackjack.Split, 2, 3, 4, 5, 6)
	row(t, 7, blackjack.Split, 2, 3, 4, 5, 6, 7)
	row(t, 8, blackjack.Split, allDealers...)
	row(t, 9, blackjack.Split, 2, 3, 4, 5, 6, 8, 9)
	row(t, 11, blackjack.Split, allDealers...)

	return t
}

// surrenderTable lists the late-surrender cells: two-card hard totals
// against specific upcards.
var surrenderTable = map[tableKey]bool{
	{16, 9}:  true,
	{16, 10}: true,
	{16, 11}: true,
	{15, 10}: true,
}

// dealerValue converts an upcard rank to its table column (ace = 11).
func dealerValue(r blackjack.Rank) int {
	return r.Value()
}
