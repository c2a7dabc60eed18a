// Package tui renders the live advisor overlay and the counting drill.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/edgecount/edgecount/internal/monitor"
)

// UpdateMsg carries one monitor refresh into the Bubble Tea loop.
type UpdateMsg monitor.Update

// Overlay is the Bubble Tea model for the live advisor display.
type Overlay struct {
	logger  *log.Logger
	updates <-chan monitor.Update

	last    monitor.Update
	hasData bool
	width   int
	height  int
}

// NewOverlay creates the overlay model reading refreshes from updates.
func NewOverlay(updates <-chan monitor.Update, logger *log.Logger) *Overlay {
	return &Overlay{
		logger:  logger.WithPrefix("tui"),
		updates: updates,
	}
}

// Init starts listening for monitor updates.
func (m *Overlay) Init() tea.Cmd {
	return m.waitForUpdate()
}

// waitForUpdate returns a command that delivers the next monitor refresh.
func (m *Overlay) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.updates
		if !ok {
			return tea.Quit()
		}
		return UpdateMsg(update)
	}
}

// Update handles messages.
func (m *Overlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateMsg:
		m.last = monitor.Update(msg)
		m.hasData = true
		return m, m.waitForUpdate()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the overlay panels.
func (m *Overlay) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("edgecount"))
	b.WriteString("\n\n")

	if !m.hasData {
		b.WriteString(ReasonStyle.Render("waiting for screen reader feed..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.actionPanel())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.countPanel(), " ", m.betPanel()))
	b.WriteString("\n")
	b.WriteString(ReasonStyle.Render("q to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Overlay) actionPanel() string {
	var lines []string
	if m.last.HasHand {
		rec := m.last.Recommendation
		lines = append(lines, ActionStyle.Render(rec.Action.String()))
		lines = append(lines, ReasonStyle.Render(rec.Reason))
		if rec.Insurance {
			lines = append(lines, WarningStyle.Render("TAKE INSURANCE"))
		}
		if rec.WongOut {
			lines = append(lines, NegativeStyle.Render("WONG OUT: count is unfavorable"))
		}
	} else {
		lines = append(lines, LabelStyle.Render(fmt.Sprintf("no hand in progress (%s)", m.last.Phase)))
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Overlay) countPanel() string {
	c := m.last.Count
	tcStyle := PositiveStyle
	if c.TrueCount < 0 {
		tcStyle = NegativeStyle
	}
	lines := []string{
		HandStyle.Render("Count"),
		fmt.Sprintf("%s %s", LabelStyle.Render("running:"), tcStyle.Render(fmt.Sprintf("%+.1f", c.RunningCount))),
		fmt.Sprintf("%s %s", LabelStyle.Render("true:"), tcStyle.Render(fmt.Sprintf("%+.2f", c.TrueCount))),
		fmt.Sprintf("%s %.1f", LabelStyle.Render("decks left:"), c.DecksRemaining),
		fmt.Sprintf("%s %.0f%%", LabelStyle.Render("penetration:"), c.Penetration*100),
		fmt.Sprintf("%s %+.2f%%", LabelStyle.Render("edge:"), c.Advantage*100),
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Overlay) betPanel() string {
	lines := []string{HandStyle.Render("Bet")}
	if m.last.HasHand {
		rec := m.last.Recommendation
		lines = append(lines,
			fmt.Sprintf("%s $%.2f", LabelStyle.Render("amount:"), rec.BetAmount),
			fmt.Sprintf("%s %d", LabelStyle.Render("units:"), rec.BetUnits),
			ReasonStyle.Render(rec.BetReason),
		)
	} else {
		lines = append(lines, ReasonStyle.Render("waiting for hand"))
	}
	return PanelStyle.Render(strings.Join(lines, "\n"))
}
