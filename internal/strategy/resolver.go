package strategy

import (
	"fmt"

	"github.com/edgecount/edgecount/blackjack"
)

// Context carries per-decision facts the resolver cannot derive from
// the hand itself.
type Context struct {
	// TrueCount is the current true count; only consulted when
	// HasCount is set. Absent count means no index-play deviations.
	TrueCount float64
	HasCount  bool

	// FromSplit marks a hand created by splitting a pair. Doubling on
	// such hands depends on the double-after-split rule.
	FromSplit bool
}

// Decision is the resolver output: an action plus the table branch
// that produced it.
type Decision struct {
	Action blackjack.Action
	Reason string
}

// Resolve returns the optimal action for a hand against a dealer
// upcard. Pure function: same inputs, same output.
//
// Resolution order, first match wins: index-play deviations, late
// surrender, pair split, soft totals, hard totals.
func Resolve(hand blackjack.Hand, dealer blackjack.Rank, rules blackjack.Rules, ctx Context) (Decision, error) {
	if err := hand.Validate(); err != nil {
		return Decision{}, fmt.Errorf("resolve: %w", err)
	}
	if !dealer.Valid() {
		return Decision{}, fmt.Errorf("resolve: dealer upcard: %w", blackjack.ErrInvalidRank)
	}

	up := dealerValue(dealer)
	total := hand.Total()
	soft := hand.IsSoft()

	// Index plays override everything, including surrender. They are
	// keyed on hard totals, so soft hands skip them, and a pair the
	// split table already claims (8,8 under a hard-16 count) keeps its
	// split.
	if ctx.HasCount {
		if hand.IsPair() {
			if pr, _ := hand.PairRank(); pr == blackjack.Ten {
				if dev, ok := tenSplitDeviations[up]; ok && ctx.TrueCount >= dev.Threshold {
					return deviationDecision(dev, hand, rules, ctx), nil
				}
			}
		}
		if !soft && !splitsByTable(hand, up) {
			if dev, ok := deviationTable[tableKey{total, up}]; ok && ctx.TrueCount >= dev.Threshold {
				return deviationDecision(dev, hand, rules, ctx), nil
			}
		}
	}

	// Late surrender: two-card hard 15/16 against the listed upcards.
	if rules.SurrenderAllowed && len(hand) == 2 && !soft && !ctx.FromSplit {
		if surrenderTable[tableKey{total, up}] {
			return Decision{
				Action: blackjack.Surrender,
				Reason: fmt.Sprintf("hard %d vs %s: late surrender", total, dealer),
			}, nil
		}
	}

	// Pair splits. 5,5 and 10,10 have no table entry and fall through
	// to the hard-total rows for 10 and 20.
	if hand.IsPair() {
		pr, _ := hand.PairRank()
		if action, ok := pairTable[tableKey{pr.Value(), up}]; ok && action == blackjack.Split {
			return Decision{
				Action: blackjack.Split,
				Reason: fmt.Sprintf("pair of %ss vs %s: split", pr, dealer),
			}, nil
		}
	}

	if soft {
		if total >= 19 {
			return Decision{
				Action: blackjack.Stand,
				Reason: fmt.Sprintf("soft %d: always stand", total),
			}, nil
		}
		action := softTable[tableKey{total, up}]
		action, note := downgradeDouble(action, hand, rules, ctx)
		return Decision{
			Action: action,
			Reason: fmt.Sprintf("soft %d vs %s: %s%s", total, dealer, verb(action), note),
		}, nil
	}

	if total <= 8 {
		return Decision{
			Action: blackjack.Hit,
			Reason: fmt.Sprintf("hard %d: always hit", total),
		}, nil
	}
	if total >= 17 {
		return Decision{
			Action: blackjack.Stand,
			Reason: fmt.Sprintf("hard %d: always stand", total),
		}, nil
	}

	action := hardTable[tableKey{total, up}]
	action, note := downgradeDouble(action, hand, rules, ctx)
	return Decision{
		Action: action,
		Reason: fmt.Sprintf("hard %d vs %s: %s%s", total, dealer, verb(action), note),
	}, nil
}

// splitsByTable reports whether the base pair table resolves the hand
// to a split.
func splitsByTable(hand blackjack.Hand, up int) bool {
	if !hand.IsPair() {
		return false
	}
	pr, _ := hand.PairRank()
	return pairTable[tableKey{pr.Value(), up}] == blackjack.Split
}

// deviationDecision applies the double-downgrade rules to an index play
// and formats its reason.
func deviationDecision(dev deviation, hand blackjack.Hand, rules blackjack.Rules, ctx Context) Decision {
	action, note := downgradeDouble(dev.Action, hand, rules, ctx)
	return Decision{
		Action: action,
		Reason: fmt.Sprintf("%s: %s (index play, TC >= %g)%s", dev.Name, verb(action), dev.Threshold, note),
	}
}

// downgradeDouble turns DOUBLE into HIT when doubling is unavailable:
// more than two cards, or a split hand without double-after-split.
func downgradeDouble(action blackjack.Action, hand blackjack.Hand, rules blackjack.Rules, ctx Context) (blackjack.Action, string) {
	if action != blackjack.Double {
		return action, ""
	}
	if len(hand) > 2 {
		return blackjack.Hit, " (double unavailable after hitting)"
	}
	if ctx.FromSplit && !rules.DoubleAfterSplit {
		return blackjack.Hit, " (no double after split)"
	}
	return blackjack.Double, ""
}

func verb(a blackjack.Action) string {
	switch a {
	case blackjack.Hit:
		return "hit"
	case blackjack.Stand:
		return "stand"
	case blackjack.Double:
		return "double"
	case blackjack.Split:
		return "split"
	case blackjack.Surrender:
		return "surrender"
	default:
		return "unknown"
	}
}
