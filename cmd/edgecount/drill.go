package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edgecount/edgecount/internal/count"
	"github.com/edgecount/edgecount/internal/shoe"
	"github.com/edgecount/edgecount/internal/tui"
)

// DrillCmd runs the interactive counting drill.
type DrillCmd struct {
	Decks       int     `default:"6" help:"Number of decks in the shoe"`
	System      string  `default:"hi_lo" help:"Counting system: hi_lo, ko, omega_ii, halves"`
	Penetration float64 `default:"0.75" help:"Cut card position as a fraction of the shoe"`
	Seed        int64   `help:"RNG seed (0 for time-based)"`
}

func (c *DrillCmd) Run() error {
	system, err := count.ParseSystem(c.System)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	setupColors()
	s := shoe.New(c.Decks, c.Penetration, seed)
	program := tea.NewProgram(tui.NewDrill(s, system, c.Decks))
	_, err = program.Run()
	return err
}
