// Package simulator runs Monte Carlo rounds of three card poker to
// estimate strategy performance and house edge.
package simulator

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/threecardpoker/internal/evaluator"
	"github.com/lox/threecardpoker/internal/game"
	"github.com/lox/threecardpoker/internal/payout"
	"github.com/lox/threecardpoker/internal/randutil"
)

// Config controls a simulation run
type Config struct {
	Rounds   int
	Workers  int // 0 means one per CPU
	Seed     int64
	Ante     int
	PairPlus int
	Strategy Strategy
	Payouts  payout.Table
	Logger   *log.Logger
}

// Results aggregates outcomes across all simulated rounds
type Results struct {
	Rounds          int
	PlayerWins      int
	DealerWins      int
	Ties            int
	Folds           int
	DealerNoQualify int
	Staked          int
	Returned        int
	Net             int
	Categories      [evaluator.NumCategories]int // player hand category frequencies
}

func (r *Results) add(res *game.RoundResult) {
	r.Rounds++
	r.Staked += res.Bets.Total()
	r.Returned += res.Winnings.Total()
	r.Net += res.NetProfit
	r.Categories[res.PlayerCategory]++

	if res.Folded {
		r.Folds++
		return
	}
	if !res.DealerQualified {
		r.DealerNoQualify++
	}
	switch res.Winner {
	case evaluator.Player:
		r.PlayerWins++
	case evaluator.Dealer:
		r.DealerWins++
	case evaluator.Tie:
		r.Ties++
	}
}

func (r *Results) merge(o *Results) {
	r.Rounds += o.Rounds
	r.PlayerWins += o.PlayerWins
	r.DealerWins += o.DealerWins
	r.Ties += o.Ties
	r.Folds += o.Folds
	r.DealerNoQualify += o.DealerNoQualify
	r.Staked += o.Staked
	r.Returned += o.Returned
	r.Net += o.Net
	for i := range r.Categories {
		r.Categories[i] += o.Categories[i]
	}
}

// HouseEdge returns the house's take as a fraction of total amount staked
func (r *Results) HouseEdge() float64 {
	if r.Staked == 0 {
		return 0
	}
	return float64(-r.Net) / float64(r.Staked)
}

// Run simulates cfg.Rounds independent rounds, split across workers.
// Each worker plays its own session with a deterministically derived seed,
// so a fixed cfg.Seed and worker count reproduces results exactly.
func Run(cfg Config) (*Results, error) {
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	if cfg.Strategy == nil {
		cfg.Strategy = QueenSixFour{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	var zero payout.Table
	if cfg.Payouts == zero {
		cfg.Payouts = payout.Default()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Rounds {
		workers = cfg.Rounds
	}

	cfg.Logger.Info("starting simulation",
		"rounds", cfg.Rounds,
		"workers", workers,
		"strategy", cfg.Strategy.Name(),
		"ante", cfg.Ante,
		"pair_plus", cfg.PairPlus)

	perWorker := cfg.Rounds / workers
	remainder := cfg.Rounds % workers

	results := make([]Results, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		rounds := perWorker
		if i < remainder {
			rounds++
		}
		seed := cfg.Seed + int64(i)
		out := &results[i]
		g.Go(func() error {
			return runWorker(cfg, seed, rounds, out)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Results{}
	for i := range results {
		total.merge(&results[i])
	}
	return total, nil
}

func runWorker(cfg Config, seed int64, rounds int, out *Results) error {
	// Bankroll large enough that the session can never bust mid-run
	bankroll := rounds*(2*cfg.Ante+cfg.PairPlus) + game.DefaultStartingBalance

	s := game.NewSession(
		game.WithRNG(randutil.New(seed)),
		game.WithBalance(bankroll),
		game.WithPayouts(cfg.Payouts),
	)

	for i := 0; i < rounds; i++ {
		hand, err := s.PlaceBet(cfg.Ante, cfg.PairPlus)
		if err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}

		var res *game.RoundResult
		if cfg.Strategy.Play(hand) {
			res, err = s.Play()
		} else {
			res, err = s.Fold()
		}
		if err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
		out.add(res)

		if err := s.NextRound(); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return nil
}
