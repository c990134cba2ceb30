package simulator

import (
	"fmt"

	"github.com/lox/threecardpoker/internal/deck"
	"github.com/lox/threecardpoker/internal/evaluator"
)

// Strategy decides whether to play or fold a dealt hand
type Strategy interface {
	Name() string
	Play(hand evaluator.Hand) bool
}

// AlwaysPlay plays every hand
type AlwaysPlay struct{}

func (AlwaysPlay) Name() string             { return "always" }
func (AlwaysPlay) Play(evaluator.Hand) bool { return true }

// AlwaysFold folds every hand; useful as a baseline for the cost of the
// forfeited stakes.
type AlwaysFold struct{}

func (AlwaysFold) Name() string             { return "fold" }
func (AlwaysFold) Play(evaluator.Hand) bool { return false }

// QueenSixFour is the standard basic strategy: play Q-6-4 or better,
// fold anything weaker.
type QueenSixFour struct{}

func (QueenSixFour) Name() string { return "q64" }

func (QueenSixFour) Play(hand evaluator.Hand) bool {
	if evaluator.Evaluate(hand) > evaluator.HighCard {
		return true
	}
	threshold := [3]deck.Rank{deck.Queen, deck.Six, deck.Four}
	for i, c := range hand {
		if c.Rank > threshold[i] {
			return true
		}
		if c.Rank < threshold[i] {
			return false
		}
	}
	return true // exactly Q-6-4
}

// StrategyByName resolves a strategy from its CLI name
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "always":
		return AlwaysPlay{}, nil
	case "fold":
		return AlwaysFold{}, nil
	case "q64":
		return QueenSixFour{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want always, fold or q64)", name)
	}
}
