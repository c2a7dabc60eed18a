package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/edgecount/edgecount/blackjack"
	"github.com/edgecount/edgecount/internal/config"
	"github.com/edgecount/edgecount/internal/engine"
	"github.com/edgecount/edgecount/internal/shoe"
)

// SimulateCmd deals rounds from a simulated shoe through the decision
// engine and reports what the advisor would have done.
type SimulateCmd struct {
	Rounds int    `default:"1000" help:"Number of rounds to simulate"`
	Seed   int64  `help:"RNG seed (0 for time-based)"`
	Config string `short:"c" default:"edgecount.hcl" help:"Path to config file"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cfg.Monitor.LogLevel, c.Debug)

	counting, err := cfg.CountingConfig()
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg.GameRules(), cfg.BettingConfig(), counting, logger)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := shoe.New(cfg.Rules.NumDecks, cfg.Counting.PenetrationThreshold, seed)
	logger.Info("simulating", "rounds", c.Rounds, "seed", seed, "system", cfg.Counting.System)

	actions := map[blackjack.Action]int{}
	var (
		deviations int
		shuffles   int
		maxTC      float64
		minTC      float64
		totalBet   float64
		maxUnits   int
	)

	for round := 0; round < c.Rounds; round++ {
		shuffled := false
		if s.NeedsShuffle() {
			s.Shuffle()
			shuffled = true
			shuffles++
		}

		player := blackjack.Hand(s.DealN(2))
		upcard, ok := s.Deal()
		if !ok {
			break
		}
		hole, ok := s.Deal()
		if !ok {
			break
		}

		rec, err := eng.Observe(engine.Snapshot{
			Dealer:  blackjack.Hand{upcard},
			Player:  player,
			Shuffle: shuffled,
		})
		if err != nil {
			return err
		}

		actions[rec.Action]++
		if strings.Contains(rec.Reason, "index play") {
			deviations++
		}
		if rec.TrueCount > maxTC {
			maxTC = rec.TrueCount
		}
		if rec.TrueCount < minTC {
			minTC = rec.TrueCount
		}
		totalBet += rec.BetAmount
		if rec.BetUnits > maxUnits {
			maxUnits = rec.BetUnits
		}

		// Reveal the hole card so the count stays honest, then close
		// the round.
		if _, err := eng.Observe(engine.Snapshot{
			Dealer: blackjack.Hand{upcard, hole},
			Player: player,
		}); err != nil {
			return err
		}
		eng.EndHand()
	}

	state := eng.CountState()
	fmt.Printf("rounds:      %d (%d shuffles)\n", c.Rounds, shuffles)
	fmt.Printf("actions:")
	for _, a := range []blackjack.Action{blackjack.Hit, blackjack.Stand, blackjack.Double, blackjack.Split, blackjack.Surrender} {
		if actions[a] > 0 {
			fmt.Printf(" %s=%d", a, actions[a])
		}
	}
	fmt.Println()
	fmt.Printf("index plays: %d\n", deviations)
	fmt.Printf("true count:  min %.1f, max %.1f, final %.2f\n", minTC, maxTC, state.TrueCount)
	fmt.Printf("bets:        avg $%.2f, max spread %d units\n", totalBet/float64(c.Rounds), maxUnits)
	return nil
}
