package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/edgecount/edgecount/blackjack"
	"github.com/edgecount/edgecount/internal/count"
	"github.com/edgecount/edgecount/internal/shoe"
)

// Drill is the Bubble Tea model for counting practice: deal cards from
// a simulated shoe, keep the count in your head, check yourself.
type Drill struct {
	shoe    *shoe.Shoe
	counter *count.Engine
	input   textinput.Model

	dealt     []blackjack.Rank
	checked   bool
	lastGuess float64
	correct   int
	attempts  int
	quitting  bool
}

// NewDrill creates a counting drill over the given shoe and system.
func NewDrill(s *shoe.Shoe, system count.System, numDecks int) *Drill {
	ti := textinput.New()
	ti.Placeholder = "running count"
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 16
	ti.Prompt = "> "

	return &Drill{
		shoe:    s,
		counter: count.NewEngine(system, numDecks),
		input:   ti,
	}
}

// Init starts the input cursor blink.
func (m *Drill) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys: tab deals the next card, enter checks the typed
// count, q quits.
func (m *Drill) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			m.dealCard()
			return m, nil

		case "enter":
			m.checkGuess()
			return m, nil
		}
		if msg.String() == "q" && m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Drill) dealCard() {
	if m.shoe.NeedsShuffle() {
		m.shoe.Shuffle()
		m.counter.Reset()
		m.dealt = m.dealt[:0]
	}
	card, ok := m.shoe.Deal()
	if !ok {
		return
	}
	m.dealt = append(m.dealt, card)
	m.counter.Update(card)
	m.checked = false
}

func (m *Drill) checkGuess() {
	guess, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
	if err != nil {
		return
	}
	m.lastGuess = guess
	m.checked = true
	m.attempts++
	if guess == m.counter.RunningCount() {
		m.correct++
	}
	m.input.SetValue("")
}

// View renders the drill.
func (m *Drill) View() string {
	if m.quitting {
		return fmt.Sprintf("drill over: %d/%d correct\n", m.correct, m.attempts)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("counting drill"))
	b.WriteString("\n\n")

	recent := m.dealt
	if len(recent) > 12 {
		recent = recent[len(recent)-12:]
	}
	cards := make([]string, len(recent))
	for i, r := range recent {
		cards[i] = r.String()
	}
	b.WriteString(HandStyle.Render(strings.Join(cards, " ")))
	b.WriteString("\n\n")

	state := m.counter.Snapshot()
	b.WriteString(LabelStyle.Render(fmt.Sprintf("cards dealt: %d   penetration: %.0f%%", state.CardsSeen, state.Penetration*100)))
	b.WriteString("\n\n")

	if m.checked {
		actual := m.counter.RunningCount()
		if m.lastGuess == actual {
			b.WriteString(PositiveStyle.Render(fmt.Sprintf("correct: running count is %+.1f", actual)))
		} else {
			b.WriteString(NegativeStyle.Render(fmt.Sprintf("off: you said %+.1f, count is %+.1f", m.lastGuess, actual)))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(ReasonStyle.Render(fmt.Sprintf("tab deals, enter checks, esc quits  (%d/%d correct)", m.correct, m.attempts)))
	b.WriteString("\n")
	return b.String()
}
