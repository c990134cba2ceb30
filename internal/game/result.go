package game

import (
	"fmt"

	"github.com/lox/threecardpoker/internal/evaluator"
	"github.com/lox/threecardpoker/internal/payout"
)

// RoundResult is the immutable outcome of one settled round. On a fold
// only Folded, Bets, NetProfit and Balance are meaningful; no dealer hand
// was ever drawn.
type RoundResult struct {
	Round           int
	Folded          bool
	Winner          evaluator.Winner
	DealerQualified bool
	PlayerHand      evaluator.Hand
	DealerHand      evaluator.Hand
	PlayerCategory  evaluator.Category
	DealerCategory  evaluator.Category
	Bets            payout.Bets
	Winnings        payout.Winnings
	NetProfit       int
	Balance         int
}

// String returns a one-line summary for display and logs
func (r *RoundResult) String() string {
	if r.Folded {
		return fmt.Sprintf("round %d: folded, net %+d, balance %d", r.Round, r.NetProfit, r.Balance)
	}
	if r.Winner == evaluator.Tie {
		return fmt.Sprintf("round %d: push (%s vs %s), net %+d, balance %d",
			r.Round, r.PlayerCategory, r.DealerCategory, r.NetProfit, r.Balance)
	}
	return fmt.Sprintf("round %d: %s wins (%s vs %s), net %+d, balance %d",
		r.Round, r.Winner, r.PlayerCategory, r.DealerCategory, r.NetProfit, r.Balance)
}
