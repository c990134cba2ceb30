package main

import (
	"fmt"

	"github.com/lox/threecardpoker/internal/config"
	"github.com/lox/threecardpoker/internal/evaluator"
	"github.com/lox/threecardpoker/internal/simulator"
)

type SimulateCmd struct {
	Rounds   int    `default:"100000" help:"Number of rounds to simulate"`
	Workers  int    `default:"0" help:"Parallel workers (0 = one per CPU)"`
	Seed     int64  `default:"1" help:"Base RNG seed"`
	Ante     int    `default:"10" help:"Ante bet per round"`
	PairPlus int    `default:"0" help:"Pair Plus bet per round"`
	Strategy string `default:"q64" enum:"q64,always,fold" help:"Play/fold strategy"`
	Config   string `default:"game.hcl" help:"Path to game configuration (HCL)"`
	Debug    bool   `short:"d" help:"Debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	strategy, err := simulator.StrategyByName(c.Strategy)
	if err != nil {
		return err
	}

	results, err := simulator.Run(simulator.Config{
		Rounds:   c.Rounds,
		Workers:  c.Workers,
		Seed:     c.Seed,
		Ante:     c.Ante,
		PairPlus: c.PairPlus,
		Strategy: strategy,
		Payouts:  cfg.PayoutTable(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	printResults(results, strategy.Name())
	return nil
}

func printResults(r *simulator.Results, strategy string) {
	pct := func(n int) float64 {
		return 100 * float64(n) / float64(r.Rounds)
	}

	fmt.Printf("Simulated %d rounds (strategy: %s)\n\n", r.Rounds, strategy)
	fmt.Printf("  Player wins:         %8d (%.2f%%)\n", r.PlayerWins, pct(r.PlayerWins))
	fmt.Printf("  Dealer wins:         %8d (%.2f%%)\n", r.DealerWins, pct(r.DealerWins))
	fmt.Printf("  Ties:                %8d (%.2f%%)\n", r.Ties, pct(r.Ties))
	fmt.Printf("  Folds:               %8d (%.2f%%)\n", r.Folds, pct(r.Folds))
	fmt.Printf("  Dealer no-qualify:   %8d (%.2f%%)\n\n", r.DealerNoQualify, pct(r.DealerNoQualify))

	fmt.Println("Player hand categories:")
	for i := len(evaluator.Categories) - 1; i >= 0; i-- {
		cat := evaluator.Categories[i]
		n := r.Categories[cat]
		fmt.Printf("  %-18s %8d (%.3f%%)\n", cat, n, pct(n))
	}

	fmt.Printf("\n  Total staked:   %12d\n", r.Staked)
	fmt.Printf("  Total returned: %12d\n", r.Returned)
	fmt.Printf("  Net:            %+12d\n", r.Net)
	fmt.Printf("  House edge:     %11.3f%%\n", 100*r.HouseEdge())
}
