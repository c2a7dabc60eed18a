package strategy

import "github.com/edgecount/edgecount/blackjack"

// deviation is one count-indexed departure from basic strategy. The
// play fires when the true count is at or above Threshold.
type deviation struct {
	Threshold float64
	Action    blackjack.Action
	Name      string
}

// insuranceThreshold is the true count at or above which insurance
// becomes a positive-expectation bet.
const insuranceThreshold = 3.0

// deviationTable holds the Illustrious-18-style index plays, keyed by
// (hard player total, dealer upcard value). Applied as an override
// layer before the base table lookup, and only when the caller
// supplied a true count.
var deviationTable = map[tableKey]deviation{
	{16, 10}: {0, blackjack.Stand, "16 vs 10"},
	{16, 9}:  {5, blackjack.Stand, "16 vs 9"},
	{15, 10}: {4, blackjack.Stand, "15 vs 10"},
	{12, 2}:  {3, blackjack.Stand, "12 vs 2"},
	{12, 3}:  {3, blackjack.Stand, "12 vs 3"},
	{10, 10}: {4, blackjack.Double, "10 vs 10"},
	{10, 11}: {4, blackjack.Double, "10 vs A"},
	{9, 2}:   {1, blackjack.Double, "9 vs 2"},
}

// tenSplitDeviations covers splitting a pair of tens into a weak dealer
// upcard at very high counts. Kept separate from deviationTable because
// it needs pair context, not just the hard total.
var tenSplitDeviations = map[int]deviation{
	5: {5, blackjack.Split, "10,10 vs 5"},
	6: {5, blackjack.Split, "10,10 vs 6"},
}

// OfferInsurance reports whether insurance is worth taking at the
// given true count.
func OfferInsurance(trueCount float64) bool {
	return trueCount >= insuranceThreshold
}
