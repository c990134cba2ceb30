package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/threecardpoker/internal/config"
	"github.com/lox/threecardpoker/internal/game"
	"github.com/lox/threecardpoker/internal/randutil"
	"github.com/lox/threecardpoker/internal/tui"
)

type PlayCmd struct {
	Config   string `default:"game.hcl" help:"Path to game configuration (HCL)"`
	Balance  int    `default:"0" help:"Override the starting balance"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	AuditLog string `default:"game.log" help:"Append per-round audit records to this file (empty to disable)"`
	Debug    bool   `short:"d" help:"Debug logging"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	balance := cfg.Game.StartingBalance
	if c.Balance > 0 {
		balance = c.Balance
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var recorder game.Recorder = game.NopRecorder{}
	if c.AuditLog != "" {
		f, err := os.OpenFile(c.AuditLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening audit log: %w", err)
		}
		defer f.Close()
		recorder = game.NewLogRecorder(f, nil)
	}

	session := game.NewSession(
		game.WithLogger(logger),
		game.WithRNG(randutil.New(seed)),
		game.WithBalance(balance),
		game.WithLimits(cfg.Limits()),
		game.WithPayouts(cfg.PayoutTable()),
		game.WithRecorder(recorder),
	)

	logger.Debug("starting table", "balance", balance, "seed", seed)
	p := tea.NewProgram(tui.New(session, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
