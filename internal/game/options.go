package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/threecardpoker/internal/deck"
	"github.com/lox/threecardpoker/internal/payout"
)

// Limits bounds the wagers a session accepts
type Limits struct {
	AnteMin     int
	AnteMax     int
	PairPlusMax int
	MinBalance  int
}

// DefaultLimits returns the house bet bounds
func DefaultLimits() Limits {
	return Limits{
		AnteMin:     1,
		AnteMax:     50000,
		PairPlusMax: 5000,
		MinBalance:  10,
	}
}

// DefaultStartingBalance is the bankroll a session starts with unless
// configured otherwise
const DefaultStartingBalance = 1000

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRecorder sets the audit recorder for settled rounds
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithRNG sets the random source used to shuffle decks
func WithRNG(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithDeck replaces the session's deck, typically with a stacked deck for
// deterministic scenarios
func WithDeck(d *deck.Deck) Option {
	return func(s *Session) { s.deck = d }
}

// WithBalance sets the starting balance
func WithBalance(balance int) Option {
	return func(s *Session) { s.balance = balance }
}

// WithLimits sets the bet bounds
func WithLimits(l Limits) Option {
	return func(s *Session) { s.limits = l }
}

// WithPayouts sets the payout table
func WithPayouts(t payout.Table) Option {
	return func(s *Session) { s.table = t }
}
