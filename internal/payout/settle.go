package payout

import "github.com/lox/threecardpoker/internal/evaluator"

// Bets holds the stakes committed to a round. Play is zero until the
// player elects to continue past the deal.
type Bets struct {
	Ante     int
	PairPlus int
	Play     int
}

// Total returns the full amount staked
func (b Bets) Total() int {
	return b.Ante + b.PairPlus + b.Play
}

// Winnings holds the amount returned per bet, stake included where the
// bet pays or pushes. A zero entry means the stake is lost.
type Winnings struct {
	Ante     int
	PairPlus int
	Play     int
}

// Total returns the full amount returned to the player
func (w Winnings) Total() int {
	return w.Ante + w.PairPlus + w.Play
}

// Settle computes the winnings for a played-out round. The winner passed
// in is the settlement winner: a non-qualifying dealer has already been
// forced to a Player result by the caller.
//
// Pair Plus settles on the player's hand alone, regardless of winner or
// qualification. Ante and Play pay full table odds only against a
// qualifying dealer; otherwise the Ante pays even money and the Play
// stake is returned.
func Settle(bets Bets, playerCat evaluator.Category, winner evaluator.Winner, dealerQualified bool, t Table) Winnings {
	w := Winnings{
		PairPlus: bets.PairPlus * t.PairPlus[playerCat],
	}

	switch winner {
	case evaluator.Player:
		if dealerQualified {
			w.Ante = bets.Ante * (t.Ante[playerCat] + 1)
			w.Play = bets.Play * (t.Play[playerCat] + 1)
		} else {
			w.Ante = bets.Ante * 2
			w.Play = bets.Play
		}
	case evaluator.Tie:
		// Both stakes push
		w.Ante = bets.Ante
		w.Play = bets.Play
	case evaluator.Dealer:
		// Ante and Play stakes are lost
	}

	return w
}
