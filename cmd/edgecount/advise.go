package main

import (
	"fmt"

	"github.com/edgecount/edgecount/blackjack"
	"github.com/edgecount/edgecount/internal/betting"
	"github.com/edgecount/edgecount/internal/config"
	"github.com/edgecount/edgecount/internal/strategy"
)

// AdviseCmd prints a one-shot recommendation for a hand.
type AdviseCmd struct {
	Hand      []string `arg:"" help:"Player cards, e.g. 10 6"`
	Dealer    string   `short:"d" required:"" help:"Dealer upcard"`
	TrueCount *float64 `short:"t" help:"Current true count (omit for straight basic strategy)"`
	FromSplit bool     `help:"Hand came from splitting a pair"`
	Config    string   `short:"c" default:"edgecount.hcl" help:"Path to config file"`
}

func (c *AdviseCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	hand, err := blackjack.ParseHand(c.Hand...)
	if err != nil {
		return err
	}
	dealer, err := blackjack.ParseRank(c.Dealer)
	if err != nil {
		return fmt.Errorf("dealer upcard: %w", err)
	}

	ctx := strategy.Context{FromSplit: c.FromSplit}
	if c.TrueCount != nil {
		ctx.HasCount = true
		ctx.TrueCount = *c.TrueCount
	}

	decision, err := strategy.Resolve(hand, dealer, cfg.GameRules(), ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s vs %s: %s\n", hand, dealer, decision.Action)
	fmt.Printf("  %s\n", decision.Reason)

	if c.TrueCount != nil {
		bet, err := betting.Recommend(cfg.BettingConfig(), *c.TrueCount)
		if err != nil {
			return err
		}
		fmt.Printf("  bet $%.2f (%d units): %s\n", bet.Amount, bet.Units, bet.Reason)
		if dealer.IsAce() && strategy.OfferInsurance(*c.TrueCount) {
			fmt.Println("  take insurance")
		}
	}
	return nil
}
