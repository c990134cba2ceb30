// Package config loads table rules from an HCL file: bet bounds, starting
// balance, and payout overrides. A missing file yields the house defaults.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/threecardpoker/internal/evaluator"
	"github.com/lox/threecardpoker/internal/game"
	"github.com/lox/threecardpoker/internal/payout"
)

// Config represents the complete game configuration
type Config struct {
	Game    GameSettings   `hcl:"game,block"`
	Payouts []PayoutConfig `hcl:"payout,block"`
}

// GameSettings contains table-level rules
type GameSettings struct {
	StartingBalance int `hcl:"starting_balance,optional"`
	AnteMin         int `hcl:"ante_min,optional"`
	AnteMax         int `hcl:"ante_max,optional"`
	PairPlusMax     int `hcl:"pair_plus_max,optional"`
	MinBalance      int `hcl:"min_balance,optional"`
}

// PayoutConfig overrides the payout multipliers for one hand category
type PayoutConfig struct {
	Category string `hcl:"category,label"`
	Ante     int    `hcl:"ante"`
	Play     int    `hcl:"play"`
	PairPlus int    `hcl:"pair_plus"`
}

// Default returns the house configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StartingBalance: 1000,
			AnteMin:         1,
			AnteMax:         50000,
			PairPlusMax:     5000,
			MinBalance:      10,
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	def := Default()
	if config.Game.StartingBalance == 0 {
		config.Game.StartingBalance = def.Game.StartingBalance
	}
	if config.Game.AnteMin == 0 {
		config.Game.AnteMin = def.Game.AnteMin
	}
	if config.Game.AnteMax == 0 {
		config.Game.AnteMax = def.Game.AnteMax
	}
	if config.Game.PairPlusMax == 0 {
		config.Game.PairPlusMax = def.Game.PairPlusMax
	}
	if config.Game.MinBalance == 0 {
		config.Game.MinBalance = def.Game.MinBalance
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.AnteMin < 1 {
		return fmt.Errorf("ante_min must be at least 1, got %d", c.Game.AnteMin)
	}
	if c.Game.AnteMax < c.Game.AnteMin {
		return fmt.Errorf("ante_max %d is below ante_min %d", c.Game.AnteMax, c.Game.AnteMin)
	}
	if c.Game.PairPlusMax < 0 {
		return fmt.Errorf("pair_plus_max must not be negative, got %d", c.Game.PairPlusMax)
	}
	if c.Game.StartingBalance < c.Game.MinBalance {
		return fmt.Errorf("starting_balance %d is below min_balance %d", c.Game.StartingBalance, c.Game.MinBalance)
	}

	for _, p := range c.Payouts {
		if _, ok := evaluator.ParseCategory(p.Category); !ok {
			return fmt.Errorf("payout block: unknown category %q", p.Category)
		}
		if p.Ante < 0 || p.Play < 0 || p.PairPlus < 0 {
			return fmt.Errorf("payout %q: multipliers must not be negative", p.Category)
		}
	}
	return nil
}

// Limits returns the configured bet bounds
func (c *Config) Limits() game.Limits {
	return game.Limits{
		AnteMin:     c.Game.AnteMin,
		AnteMax:     c.Game.AnteMax,
		PairPlusMax: c.Game.PairPlusMax,
		MinBalance:  c.Game.MinBalance,
	}
}

// PayoutTable builds the payout table: the house defaults with any
// configured category overrides applied.
func (c *Config) PayoutTable() payout.Table {
	table := payout.Default()
	for _, p := range c.Payouts {
		cat, ok := evaluator.ParseCategory(p.Category)
		if !ok {
			continue // Validate rejects these before we get here
		}
		table.Ante[cat] = p.Ante
		table.Play[cat] = p.Play
		table.PairPlus[cat] = p.PairPlus
	}
	return table
}
