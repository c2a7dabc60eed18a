// Package config loads the advisor configuration from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/edgecount/edgecount/blackjack"
	"github.com/edgecount/edgecount/internal/betting"
	"github.com/edgecount/edgecount/internal/count"
	"github.com/edgecount/edgecount/internal/engine"
)

// ErrInvalid wraps configuration validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete advisor configuration.
type Config struct {
	Rules    RulesBlock    `hcl:"rules,block"`
	Betting  BettingBlock  `hcl:"betting,block"`
	Counting CountingBlock `hcl:"counting,block"`
	Monitor  MonitorBlock  `hcl:"monitor,block"`
}

// RulesBlock mirrors the table rules.
type RulesBlock struct {
	NumDecks         int     `hcl:"num_decks,optional"`
	DealerHitsSoft17 bool    `hcl:"dealer_hits_soft_17,optional"`
	DoubleAfterSplit bool    `hcl:"double_after_split,optional"`
	SurrenderAllowed bool    `hcl:"surrender_allowed,optional"`
	BlackjackPayout  float64 `hcl:"blackjack_payout,optional"`
	ResplitAces      bool    `hcl:"resplit_aces,optional"`
	MaxSplits        int     `hcl:"max_splits,optional"`
}

// BettingBlock mirrors the bankroll and bet spread settings.
type BettingBlock struct {
	Bankroll      float64 `hcl:"bankroll,optional"`
	MinBet        float64 `hcl:"min_bet,optional"`
	MaxBet        float64 `hcl:"max_bet,optional"`
	KellyFraction float64 `hcl:"kelly_fraction,optional"`
	SpreadRatio   int     `hcl:"spread_ratio,optional"`
}

// CountingBlock mirrors the card counting settings.
type CountingBlock struct {
	System               string  `hcl:"system,optional"`
	Enabled              bool    `hcl:"enabled,optional"`
	AutoReset            bool    `hcl:"auto_reset,optional"`
	PenetrationThreshold float64 `hcl:"penetration_threshold,optional"`
	WongOut              bool    `hcl:"wong_out,optional"`
	WongOutThreshold     float64 `hcl:"wong_out_threshold,optional"`
}

// MonitorBlock configures the watch loop and feed connection.
type MonitorBlock struct {
	FeedURL         string `hcl:"feed_url,optional"`
	IntervalSeconds int    `hcl:"interval_seconds,optional"`
	LogLevel        string `hcl:"log_level,optional"`
}

// Default returns the advisor defaults: a six-deck H17 game, half
// Kelly, Hi-Lo counting with auto reset at 75% penetration.
func Default() *Config {
	return &Config{
		Rules: RulesBlock{
			NumDecks:         6,
			DealerHitsSoft17: true,
			DoubleAfterSplit: true,
			SurrenderAllowed: false,
			BlackjackPayout:  1.5,
			ResplitAces:      false,
			MaxSplits:        3,
		},
		Betting: BettingBlock{
			Bankroll:      1000,
			MinBet:        10,
			MaxBet:        500,
			KellyFraction: 0.5,
			SpreadRatio:   10,
		},
		Counting: CountingBlock{
			System:               "hi_lo",
			Enabled:              true,
			AutoReset:            true,
			PenetrationThreshold: 0.75,
			WongOut:              false,
			WongOutThreshold:     -1,
		},
		Monitor: MonitorBlock{
			FeedURL:         "ws://localhost:8089/state",
			IntervalSeconds: 2,
			LogLevel:        "info",
		},
	}
}

// Load reads configuration from filename. A missing file yields the
// defaults; a present file is decoded and missing values are filled
// from the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()

	if c.Rules.NumDecks == 0 {
		c.Rules.NumDecks = d.Rules.NumDecks
	}
	if c.Rules.BlackjackPayout == 0 {
		c.Rules.BlackjackPayout = d.Rules.BlackjackPayout
	}
	if c.Rules.MaxSplits == 0 {
		c.Rules.MaxSplits = d.Rules.MaxSplits
	}

	if c.Betting.Bankroll == 0 {
		c.Betting.Bankroll = d.Betting.Bankroll
	}
	if c.Betting.MinBet == 0 {
		c.Betting.MinBet = d.Betting.MinBet
	}
	if c.Betting.MaxBet == 0 {
		c.Betting.MaxBet = d.Betting.MaxBet
	}
	if c.Betting.KellyFraction == 0 {
		c.Betting.KellyFraction = d.Betting.KellyFraction
	}
	if c.Betting.SpreadRatio == 0 {
		c.Betting.SpreadRatio = d.Betting.SpreadRatio
	}

	if c.Counting.System == "" {
		c.Counting.System = d.Counting.System
	}
	if c.Counting.PenetrationThreshold == 0 {
		c.Counting.PenetrationThreshold = d.Counting.PenetrationThreshold
	}
	if c.Counting.WongOutThreshold == 0 {
		c.Counting.WongOutThreshold = d.Counting.WongOutThreshold
	}

	if c.Monitor.FeedURL == "" {
		c.Monitor.FeedURL = d.Monitor.FeedURL
	}
	if c.Monitor.IntervalSeconds == 0 {
		c.Monitor.IntervalSeconds = d.Monitor.IntervalSeconds
	}
	if c.Monitor.LogLevel == "" {
		c.Monitor.LogLevel = d.Monitor.LogLevel
	}
}

// Validate checks every block.
func (c *Config) Validate() error {
	if err := c.GameRules().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.BettingConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := count.ParseSystem(c.Counting.System); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Counting.PenetrationThreshold <= 0 || c.Counting.PenetrationThreshold > 1 {
		return fmt.Errorf("%w: penetration_threshold must be in (0,1], got %v", ErrInvalid, c.Counting.PenetrationThreshold)
	}
	if c.Monitor.IntervalSeconds <= 0 {
		return fmt.Errorf("%w: interval_seconds must be positive, got %d", ErrInvalid, c.Monitor.IntervalSeconds)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Monitor.LogLevel] {
		return fmt.Errorf("%w: invalid log level: %s", ErrInvalid, c.Monitor.LogLevel)
	}
	return nil
}

// GameRules converts the rules block to the domain type.
func (c *Config) GameRules() blackjack.Rules {
	return blackjack.Rules{
		NumDecks:         c.Rules.NumDecks,
		DealerHitsSoft17: c.Rules.DealerHitsSoft17,
		DoubleAfterSplit: c.Rules.DoubleAfterSplit,
		SurrenderAllowed: c.Rules.SurrenderAllowed,
		BlackjackPayout:  c.Rules.BlackjackPayout,
		ResplitAces:      c.Rules.ResplitAces,
		MaxSplits:        c.Rules.MaxSplits,
	}
}

// BettingConfig converts the betting block to the sizer configuration.
func (c *Config) BettingConfig() betting.Config {
	return betting.Config{
		Bankroll:      c.Betting.Bankroll,
		MinBet:        c.Betting.MinBet,
		MaxBet:        c.Betting.MaxBet,
		KellyFraction: c.Betting.KellyFraction,
		SpreadRatio:   c.Betting.SpreadRatio,
	}
}

// CountingConfig converts the counting block to the engine settings.
// Validate must have passed for the system name to parse.
func (c *Config) CountingConfig() (engine.Counting, error) {
	system, err := count.ParseSystem(c.Counting.System)
	if err != nil {
		return engine.Counting{}, err
	}
	return engine.Counting{
		System:               system,
		Enabled:              c.Counting.Enabled,
		AutoReset:            c.Counting.AutoReset,
		PenetrationThreshold: c.Counting.PenetrationThreshold,
		WongOut:              c.Counting.WongOut,
		WongOutThreshold:     c.Counting.WongOutThreshold,
	}, nil
}
