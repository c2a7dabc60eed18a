package count

import (
	"errors"
	"fmt"
	"strings"

	"github.com/edgecount/edgecount/blackjack"
)

// ErrUnknownSystem is returned for an unrecognized counting system name.
var ErrUnknownSystem = errors.New("unknown counting system")

// System identifies a card counting system.
type System int

const (
	HiLo System = iota
	KO
	OmegaII
	Halves
)

// String returns the config-file name of the system.
func (s System) String() string {
	switch s {
	case HiLo:
		return "hi_lo"
	case KO:
		return "ko"
	case OmegaII:
		return "omega_ii"
	case Halves:
		return "halves"
	default:
		return "unknown"
	}
}

// Balanced reports whether the system sums to zero over a full deck.
// KO is unbalanced; its true count is still computed but callers
// conventionally ignore it.
func (s System) Balanced() bool {
	return s != KO
}

// ParseSystem parses a system name as it appears in configuration.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hi_lo", "hilo", "hi-lo":
		return HiLo, nil
	case "ko":
		return KO, nil
	case "omega_ii", "omega2", "omega-ii":
		return OmegaII, nil
	case "halves":
		return Halves, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
}

// pointValues holds per-rank point values for one system, indexed by
// blackjack.Rank. Halves needs fractional values, so everything is float64.
type pointValues [blackjack.Ace + 1]float64

var systemValues = map[System]pointValues{
	HiLo: buildValues(map[blackjack.Rank]float64{
		blackjack.Two: 1, blackjack.Three: 1, blackjack.Four: 1, blackjack.Five: 1, blackjack.Six: 1,
		blackjack.Seven: 0, blackjack.Eight: 0, blackjack.Nine: 0,
		blackjack.Ten: -1, blackjack.Jack: -1, blackjack.Queen: -1, blackjack.King: -1, blackjack.Ace: -1,
	}),
	KO: buildValues(map[blackjack.Rank]float64{
		blackjack.Two: 1, blackjack.Three: 1, blackjack.Four: 1, blackjack.Five: 1, blackjack.Six: 1, blackjack.Seven: 1,
		blackjack.Eight: 0, blackjack.Nine: 0,
		blackjack.Ten: -1, blackjack.Jack: -1, blackjack.Queen: -1, blackjack.King: -1, blackjack.Ace: -1,
	}),
	OmegaII: buildValues(map[blackjack.Rank]float64{
		blackjack.Two: 1, blackjack.Three: 1, blackjack.Seven: 1,
		blackjack.Four: 2, blackjack.Five: 2, blackjack.Six: 2,
		blackjack.Nine: -1,
		blackjack.Ten:  -2, blackjack.Jack: -2, blackjack.Queen: -2, blackjack.King: -2,
		blackjack.Eight: 0, blackjack.Ace: 0,
	}),
	Halves: buildValues(map[blackjack.Rank]float64{
		blackjack.Two: 1, blackjack.Three: 1, blackjack.Six: 1,
		blackjack.Four: 1.5, blackjack.Five: 1.5,
		blackjack.Seven: 0.5,
		blackjack.Eight: 0, blackjack.Ace: 0,
		blackjack.Nine: -0.5,
		blackjack.Ten:  -1, blackjack.Jack: -1, blackjack.Queen: -1, blackjack.King: -1,
	}),
}

func buildValues(m map[blackjack.Rank]float64) pointValues {
	var pv pointValues
	for r, v := range m {
		pv[r] = v
	}
	return pv
}

// PointValue returns the point value of a rank under the system.
func (s System) PointValue(r blackjack.Rank) (float64, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("%w: rank %d", blackjack.ErrInvalidRank, int(r))
	}
	return systemValues[s][r], nil
}
