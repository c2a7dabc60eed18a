package main

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/edgecount/edgecount/internal/config"
	"github.com/edgecount/edgecount/internal/engine"
	"github.com/edgecount/edgecount/internal/feed"
	"github.com/edgecount/edgecount/internal/monitor"
	"github.com/edgecount/edgecount/internal/tui"
)

// WatchCmd runs the live advisor: feed -> monitor -> overlay.
type WatchCmd struct {
	Config  string `short:"c" default:"edgecount.hcl" help:"Path to config file"`
	FeedURL string `help:"Screen reader feed URL (overrides config)"`
	Debug   bool   `help:"Enable debug logging"`
}

func (c *WatchCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.FeedURL != "" {
		cfg.Monitor.FeedURL = c.FeedURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cfg.Monitor.LogLevel, c.Debug)
	setupColors()

	counting, err := cfg.CountingConfig()
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg.GameRules(), cfg.BettingConfig(), counting, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := feed.NewClient(cfg.Monitor.FeedURL, logger)
	if err := client.Connect(ctx); err != nil {
		return err
	}

	interval := time.Duration(cfg.Monitor.IntervalSeconds) * time.Second
	mon := monitor.New(eng, interval, quartz.NewReal(), logger)

	events := make(chan feed.Event, 1)
	updates := make(chan monitor.Update, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.Run(ctx, events)
	})
	g.Go(func() error {
		defer close(updates)
		return mon.Run(ctx, events, updates)
	})
	g.Go(func() error {
		defer cancel()
		program := tea.NewProgram(tui.NewOverlay(updates, logger), tea.WithAltScreen())
		_, err := program.Run()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
