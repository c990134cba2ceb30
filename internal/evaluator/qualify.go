package evaluator

import "github.com/lox/threecardpoker/internal/deck"

// Qualifies reports whether the dealer's hand is strong enough to contest
// the Ante and Play bets: anything above High Card, or High Card with a
// Jack-high or better. Pair Plus settlement never consults this gate.
func Qualifies(dealer Hand) bool {
	if Evaluate(dealer) > HighCard {
		return true
	}
	return dealer.HighCard().Rank >= deck.Jack
}
