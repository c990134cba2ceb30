// Package tui renders an interactive three card poker table on the
// terminal. All game logic stays in the session; the model only collects
// input and renders session state.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/threecardpoker/internal/deck"
	"github.com/lox/threecardpoker/internal/evaluator"
	"github.com/lox/threecardpoker/internal/game"
)

// Model is the Bubble Tea model for the table
type Model struct {
	session *game.Session
	logger  *log.Logger

	betInput textinput.Model
	errMsg   string
	gameOver bool
	quitting bool
	width    int
}

// New creates a table model around an existing session
func New(session *game.Session, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "ante [pair plus], e.g. 10 5"
	ti.Prompt = "bet> "
	ti.PromptStyle = BalanceStyle
	ti.CharLimit = 20
	ti.Width = 30
	ti.Focus()

	return &Model{
		session:  session,
		logger:   logger.WithPrefix("tui"),
		betInput: ti,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.gameOver {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.session.State() {
		case game.StateAwaitingBet:
			return m.updateAwaitingBet(msg)
		case game.StateHandDealt:
			return m.updateHandDealt(msg)
		case game.StateSettled:
			return m.updateSettled(msg)
		}
	}

	return m, nil
}

func (m *Model) updateAwaitingBet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		ante, pairPlus, err := parseBets(m.betInput.Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if _, err := m.session.PlaceBet(ante, pairPlus); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.betInput.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

func (m *Model) updateHandDealt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p":
		if _, err := m.session.Play(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
	case "f":
		if _, err := m.session.Fold(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
	}
	return m, nil
}

func (m *Model) updateSettled(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "n":
		if err := m.nextRound(); err != nil {
			return m, nil
		}
		m.betInput.Focus()
	case "r":
		// Same bet again: advance the round then repeat the last stakes
		if err := m.nextRound(); err != nil {
			return m, nil
		}
		if _, err := m.session.Rebet(); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, nil
}

func (m *Model) nextRound() error {
	err := m.session.NextRound()
	switch {
	case errors.Is(err, game.ErrGameOver):
		m.gameOver = true
		return err
	case err != nil:
		m.errMsg = err.Error()
		return err
	}
	m.errMsg = ""
	return nil
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Three Card Poker"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s   %s %d\n\n",
		LabelStyle.Render("Balance:"),
		BalanceStyle.Render(fmt.Sprintf("$%d", m.session.Balance())),
		LabelStyle.Render("Round:"),
		m.session.Round())

	state := m.session.State()
	switch {
	case m.gameOver:
		b.WriteString(LoseStyle.Render("No money! Game over."))
		b.WriteString("\n\n")
		b.WriteString(HelpStyle.Render("press any key to leave the table"))
	case state == game.StateAwaitingBet:
		b.WriteString(m.betInput.View())
		b.WriteString("\n\n")
		limits := m.session.Limits()
		b.WriteString(HelpStyle.Render(fmt.Sprintf(
			"ante $%d-$%d, pair plus up to $%d • enter to deal • q to quit",
			limits.AnteMin, limits.AnteMax, limits.PairPlusMax)))
	case state == game.StateHandDealt:
		b.WriteString(m.renderTable(false))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("p to play (doubles your ante) • f to fold"))
	case state == game.StateSettled:
		b.WriteString(m.renderTable(true))
		b.WriteString("\n")
		b.WriteString(m.renderResult())
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("n for next round • r for same bet again • q to quit"))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderTable(revealDealer bool) string {
	var b strings.Builder

	result := m.session.LastResult()
	bets := m.session.Bets()
	if result != nil && m.session.State() == game.StateSettled {
		bets = result.Bets
	}

	b.WriteString(LabelStyle.Render("Dealer:  "))
	if revealDealer && result != nil && !result.Folded {
		b.WriteString(renderHand(result.DealerHand.Cards()))
		fmt.Fprintf(&b, "  %s", LabelStyle.Render(result.DealerCategory.String()))
	} else {
		b.WriteString(HiddenCardStyle.Render("🂠 🂠 🂠"))
	}
	b.WriteString("\n")

	b.WriteString(LabelStyle.Render("You:     "))
	b.WriteString(renderHand(m.session.PlayerHand().Cards()))
	if result != nil && m.session.State() == game.StateSettled {
		fmt.Fprintf(&b, "  %s", LabelStyle.Render(result.PlayerCategory.String()))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s $%d   %s $%d   %s $%d\n",
		LabelStyle.Render("Ante:"), bets.Ante,
		LabelStyle.Render("Pair Plus:"), bets.PairPlus,
		LabelStyle.Render("Play:"), bets.Play)
	return b.String()
}

func (m *Model) renderResult() string {
	result := m.session.LastResult()
	if result == nil {
		return ""
	}

	if result.Folded {
		return LoseStyle.Render(fmt.Sprintf("Folded: %+d", result.NetProfit))
	}

	var b strings.Builder
	if !result.DealerQualified {
		b.WriteString(PushStyle.Render("Dealer does not qualify"))
		b.WriteString("\n")
	}

	var style lipgloss.Style
	switch {
	case result.NetProfit > 0:
		style = WinStyle
	case result.NetProfit < 0:
		style = LoseStyle
	default:
		style = PushStyle
	}
	headline := fmt.Sprintf("%s wins  (net %+d)", result.Winner, result.NetProfit)
	if result.Winner == evaluator.Tie {
		headline = fmt.Sprintf("Push  (net %+d)", result.NetProfit)
	}
	fmt.Fprintf(&b, "%s\n", style.Render(headline))
	fmt.Fprintf(&b, "%s ante $%d • pair plus $%d • play $%d\n",
		LabelStyle.Render("Returned:"),
		result.Winnings.Ante, result.Winnings.PairPlus, result.Winnings.Play)
	return b.String()
}

func renderHand(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.IsRed() {
			parts = append(parts, RedCardStyle.Render(c.String()))
		} else {
			parts = append(parts, BlackCardStyle.Render(c.String()))
		}
	}
	return strings.Join(parts, " ")
}

// parseBets parses "ante" or "ante pairplus" from the bet input
func parseBets(input string) (ante, pairPlus int, err error) {
	fields := strings.Fields(input)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, 0, fmt.Errorf("enter an ante and an optional pair plus bet")
	}
	ante, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ante %q", fields[0])
	}
	if len(fields) == 2 {
		pairPlus, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid pair plus bet %q", fields[1])
		}
	}
	return ante, pairPlus, nil
}
