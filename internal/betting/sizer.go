// Package betting sizes bets from the true count using a fractional
// Kelly model clamped to the table limits.
package betting

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned for bet parameters outside their domain.
var ErrInvalidConfig = errors.New("invalid betting configuration")

// defaultVariance approximates the per-hand variance of blackjack.
const defaultVariance = 1.3

// advantagePerTrueCount mirrors the count engine's linear edge model.
const advantagePerTrueCount = 0.005

// Config holds the bankroll and table parameters for bet sizing.
type Config struct {
	Bankroll      float64
	MinBet        float64
	MaxBet        float64
	KellyFraction float64
	// SpreadRatio caps the bet at SpreadRatio units when positive.
	SpreadRatio int
	// Variance overrides the default blackjack variance when positive.
	Variance float64
}

// Validate checks the betting parameters.
func (c Config) Validate() error {
	if c.Bankroll <= 0 {
		return fmt.Errorf("%w: bankroll must be positive, got %v", ErrInvalidConfig, c.Bankroll)
	}
	if c.MinBet <= 0 {
		return fmt.Errorf("%w: min_bet must be positive, got %v", ErrInvalidConfig, c.MinBet)
	}
	if c.MaxBet <= 0 {
		return fmt.Errorf("%w: max_bet must be positive, got %v", ErrInvalidConfig, c.MaxBet)
	}
	if c.MinBet > c.MaxBet {
		return fmt.Errorf("%w: min_bet %v exceeds max_bet %v", ErrInvalidConfig, c.MinBet, c.MaxBet)
	}
	if c.KellyFraction <= 0 || c.KellyFraction > 1 {
		return fmt.Errorf("%w: kelly_fraction must be in (0,1], got %v", ErrInvalidConfig, c.KellyFraction)
	}
	return nil
}

// Bet is a sizing recommendation.
type Bet struct {
	Amount float64
	Units  int
	Reason string
}

// Recommend returns the bet for the given true count. Deterministic:
// identical inputs always yield identical output.
//
// The edge is floored at zero so a negative count never pushes the bet
// below the table minimum; the Kelly bet is clamped to [MinBet, MaxBet].
func Recommend(cfg Config, trueCount float64) (Bet, error) {
	if err := cfg.Validate(); err != nil {
		return Bet{}, err
	}

	variance := cfg.Variance
	if variance <= 0 {
		variance = defaultVariance
	}

	advantage := math.Max(0, (trueCount-1)*advantagePerTrueCount)
	if advantage == 0 {
		return Bet{
			Amount: cfg.MinBet,
			Units:  1,
			Reason: fmt.Sprintf("no edge at TC %.1f: bet minimum", trueCount),
		}, nil
	}

	amount := cfg.Bankroll * (advantage / variance) * cfg.KellyFraction
	amount = math.Min(math.Max(amount, cfg.MinBet), cfg.MaxBet)

	units := int(math.Round(amount / cfg.MinBet))
	if units < 1 {
		units = 1
	}
	if cfg.SpreadRatio > 0 && units > cfg.SpreadRatio {
		units = cfg.SpreadRatio
		amount = math.Min(float64(units)*cfg.MinBet, cfg.MaxBet)
	}

	return Bet{
		Amount: amount,
		Units:  units,
		Reason: fmt.Sprintf("edge %.2f%% at TC %.1f: %d unit Kelly bet", advantage*100, trueCount, units),
	}, nil
}

// ShouldWongOut reports whether the true count has fallen to or below
// the leave-the-table threshold.
func ShouldWongOut(trueCount, threshold float64) bool {
	return trueCount <= threshold
}
