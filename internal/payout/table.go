// Package payout settles the three wagers of a round against a multiplier
// table. Tables are fixed-size arrays indexed by hand category, so an
// unknown category is a zero multiplier rather than a runtime lookup miss.
package payout

import "github.com/lox/threecardpoker/internal/evaluator"

// Multipliers maps each hand category to a payout multiplier
type Multipliers [evaluator.NumCategories]int

// Table holds the three independent payout schedules. Ante and Play
// multipliers are bonus odds paid on top of the returned stake; Pair Plus
// multipliers are paid on the stake alone, which is lost on High Card.
type Table struct {
	Ante     Multipliers
	Play     Multipliers
	PairPlus Multipliers
}

// Default returns the house payout table
func Default() Table {
	var t Table
	for _, c := range evaluator.Categories {
		t.Ante[c] = 1
		t.Play[c] = 1
	}
	t.Ante[evaluator.Straight] = 2
	t.Ante[evaluator.ThreeOfAKind] = 4
	t.Ante[evaluator.StraightFlush] = 5

	t.PairPlus[evaluator.HighCard] = 0
	t.PairPlus[evaluator.Pair] = 1
	t.PairPlus[evaluator.Flush] = 4
	t.PairPlus[evaluator.Straight] = 6
	t.PairPlus[evaluator.ThreeOfAKind] = 25
	t.PairPlus[evaluator.StraightFlush] = 40
	return t
}
