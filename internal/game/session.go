// Package game orchestrates a single-table three card poker session:
// bet placement, dealing, the play/fold decision, settlement and balance
// tracking. All game state lives here; callers only render it.
package game

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/qmuntal/stateless"

	"github.com/lox/threecardpoker/internal/deck"
	"github.com/lox/threecardpoker/internal/evaluator"
	"github.com/lox/threecardpoker/internal/payout"
)

// State identifies where a session is in the round lifecycle
type State string

const (
	StateAwaitingBet State = "AwaitingBet"
	StateHandDealt   State = "HandDealt"
	StateSettled     State = "Settled"
	StateGameOver    State = "GameOver"
)

const (
	triggerDeal      = "Deal"
	triggerPlay      = "Play"
	triggerFold      = "Fold"
	triggerNextRound = "NextRound"
	triggerBust      = "Bust"
)

// Session holds all state for one player against the house
type Session struct {
	logger   *log.Logger
	sm       *stateless.StateMachine
	rng      *rand.Rand
	deck     *deck.Deck
	table    payout.Table
	limits   Limits
	recorder Recorder

	balance      int
	round        int
	bets         payout.Bets
	lastAnte     int
	lastPairPlus int
	playerHand   evaluator.Hand
	dealerHand   evaluator.Hand
	lastResult   *RoundResult
}

// NewSession creates a session ready to accept the first bet
func NewSession(opts ...Option) *Session {
	s := &Session{
		logger:   log.New(io.Discard),
		table:    payout.Default(),
		limits:   DefaultLimits(),
		recorder: NopRecorder{},
		balance:  DefaultStartingBalance,
		round:    1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.deck == nil {
		s.deck = deck.New(s.rng)
	}
	s.configureStateMachine()
	return s
}

func (s *Session) configureStateMachine() {
	sm := stateless.NewStateMachine(StateAwaitingBet)
	sm.OnTransitioning(func(_ context.Context, t stateless.Transition) {
		s.logger.Debug("state transition", "from", t.Source, "to", t.Destination, "trigger", t.Trigger)
	})
	sm.Configure(StateAwaitingBet).
		Permit(triggerDeal, StateHandDealt)
	sm.Configure(StateHandDealt).
		Permit(triggerPlay, StateSettled).
		Permit(triggerFold, StateSettled)
	sm.Configure(StateSettled).
		Permit(triggerNextRound, StateAwaitingBet).
		Permit(triggerBust, StateGameOver)
	s.sm = sm
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.sm.MustState().(State)
}

// Balance returns the current balance
func (s *Session) Balance() int {
	return s.balance
}

// Round returns the current round number, starting at 1
func (s *Session) Round() int {
	return s.round
}

// PlayerHand returns the hand dealt this round
func (s *Session) PlayerHand() evaluator.Hand {
	return s.playerHand
}

// LastResult returns the most recent settlement, nil before the first
func (s *Session) LastResult() *RoundResult {
	return s.lastResult
}

// Bets returns the stakes committed to the current round
func (s *Session) Bets() payout.Bets {
	return s.bets
}

// Limits returns the session's bet bounds
func (s *Session) Limits() Limits {
	return s.limits
}

// PlaceBet commits the ante and optional pair plus stakes and deals the
// player's hand. The dealer's hand stays undrawn until Play.
func (s *Session) PlaceBet(ante, pairPlus int) (evaluator.Hand, error) {
	if st := s.State(); st != StateAwaitingBet {
		return evaluator.Hand{}, fmt.Errorf("%w: cannot place bet in state %s", ErrInvalidStateTransition, st)
	}
	if ante < s.limits.AnteMin || ante > s.limits.AnteMax {
		return evaluator.Hand{}, fmt.Errorf("%w: ante %d outside %d-%d", ErrInvalidBetAmount, ante, s.limits.AnteMin, s.limits.AnteMax)
	}
	if pairPlus < 0 || pairPlus > s.limits.PairPlusMax {
		return evaluator.Hand{}, fmt.Errorf("%w: pair plus %d outside 0-%d", ErrInvalidBetAmount, pairPlus, s.limits.PairPlusMax)
	}
	if ante+pairPlus > s.balance {
		return evaluator.Hand{}, fmt.Errorf("%w: stake %d exceeds balance %d", ErrInsufficientBalance, ante+pairPlus, s.balance)
	}

	cards, err := s.deck.Draw(evaluator.HandSize)
	if err != nil {
		return evaluator.Hand{}, err
	}
	s.playerHand = evaluator.NewHand(cards)
	s.bets = payout.Bets{Ante: ante, PairPlus: pairPlus}
	s.lastAnte, s.lastPairPlus = ante, pairPlus

	if err := s.sm.Fire(triggerDeal); err != nil {
		return evaluator.Hand{}, fmt.Errorf("%w: %v", ErrInvalidStateTransition, err)
	}
	s.logger.Debug("hand dealt", "round", s.round, "hand", s.playerHand, "ante", ante, "pair_plus", pairPlus)
	return s.playerHand, nil
}

// Rebet places the previous round's bets again
func (s *Session) Rebet() (evaluator.Hand, error) {
	if s.lastAnte == 0 {
		return evaluator.Hand{}, fmt.Errorf("%w: no previous bet to repeat", ErrInvalidBetAmount)
	}
	return s.PlaceBet(s.lastAnte, s.lastPairPlus)
}

// Play places the Play bet (equal to the ante), reveals the dealer's hand
// and settles all three wagers.
func (s *Session) Play() (*RoundResult, error) {
	if st := s.State(); st != StateHandDealt {
		return nil, fmt.Errorf("%w: cannot play in state %s", ErrInvalidStateTransition, st)
	}
	// The play stake must fit in the balance so it can never go negative;
	// a player who cannot cover it may still fold.
	if s.bets.Total()+s.bets.Ante > s.balance {
		return nil, fmt.Errorf("%w: cannot cover play bet of %d", ErrInsufficientBalance, s.bets.Ante)
	}
	s.bets.Play = s.bets.Ante

	cards, err := s.deck.Draw(evaluator.HandSize)
	if err != nil {
		return nil, err
	}
	s.dealerHand = evaluator.NewHand(cards)

	playerCat := evaluator.Evaluate(s.playerHand)
	dealerCat := evaluator.Evaluate(s.dealerHand)
	qualified := evaluator.Qualifies(s.dealerHand)
	winner := evaluator.Compare(s.playerHand, s.dealerHand)
	if !qualified {
		// A non-qualifying dealer cannot contest the ante and play bets
		winner = evaluator.Player
	}

	winnings := payout.Settle(s.bets, playerCat, winner, qualified, s.table)
	net := winnings.Total() - s.bets.Total()
	s.balance += net

	result := &RoundResult{
		Round:           s.round,
		Winner:          winner,
		DealerQualified: qualified,
		PlayerHand:      s.playerHand,
		DealerHand:      s.dealerHand,
		PlayerCategory:  playerCat,
		DealerCategory:  dealerCat,
		Bets:            s.bets,
		Winnings:        winnings,
		NetProfit:       net,
		Balance:         s.balance,
	}
	s.settle(result, triggerPlay)

	s.logger.Info("round settled",
		"round", s.round,
		"winner", winner,
		"qualified", qualified,
		"player", playerCat,
		"dealer", dealerCat,
		"net", net,
		"balance", s.balance)
	return result, nil
}

// Fold forfeits the ante and pair plus stakes without revealing the
// dealer's hand. The play bet is never placed.
func (s *Session) Fold() (*RoundResult, error) {
	if st := s.State(); st != StateHandDealt {
		return nil, fmt.Errorf("%w: cannot fold in state %s", ErrInvalidStateTransition, st)
	}

	net := -s.bets.Total()
	s.balance += net

	result := &RoundResult{
		Round:          s.round,
		Folded:         true,
		PlayerHand:     s.playerHand,
		PlayerCategory: evaluator.Evaluate(s.playerHand),
		Bets:           s.bets,
		NetProfit:      net,
		Balance:        s.balance,
	}
	s.settle(result, triggerFold)

	s.logger.Info("folded", "round", s.round, "net", net, "balance", s.balance)
	return result, nil
}

func (s *Session) settle(result *RoundResult, trigger string) {
	s.lastResult = result
	// Permitted by construction: both settle triggers leave HandDealt
	_ = s.sm.Fire(trigger)
	if err := s.recorder.Record(result.Round, result); err != nil {
		s.logger.Error("failed to record round", "error", err, "round", result.Round)
	}
}

// NextRound resets bets and reshuffles a fresh deck for the next round.
// Returns ErrGameOver, and moves the session to its terminal state, when
// the balance is below the minimum playable threshold.
func (s *Session) NextRound() error {
	if st := s.State(); st != StateSettled {
		return fmt.Errorf("%w: cannot start next round in state %s", ErrInvalidStateTransition, st)
	}
	if s.balance < s.limits.MinBalance {
		_ = s.sm.Fire(triggerBust)
		s.logger.Info("game over", "balance", s.balance, "minimum", s.limits.MinBalance)
		return fmt.Errorf("%w: balance %d below minimum %d", ErrGameOver, s.balance, s.limits.MinBalance)
	}

	s.round++
	s.bets = payout.Bets{}
	s.playerHand = evaluator.Hand{}
	s.dealerHand = evaluator.Hand{}
	s.deck.Reset()

	if err := s.sm.Fire(triggerNextRound); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStateTransition, err)
	}
	return nil
}
