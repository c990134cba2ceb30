package evaluator

import "github.com/lox/threecardpoker/internal/deck"

// Winner identifies which side won a comparison
type Winner int

const (
	Tie Winner = iota
	Player
	Dealer
)

// String returns the readable name of the winner
func (w Winner) String() string {
	switch w {
	case Player:
		return "Player"
	case Dealer:
		return "Dealer"
	default:
		return "Tie"
	}
}

// Compare ranks the player's hand against the dealer's. A higher category
// wins outright; equal categories fall through to rank tie-breaks.
func Compare(player, dealer Hand) Winner {
	playerCat := Evaluate(player)
	dealerCat := Evaluate(dealer)

	if playerCat > dealerCat {
		return Player
	}
	if playerCat < dealerCat {
		return Dealer
	}

	if playerCat == Pair {
		return comparePairs(player, dealer)
	}
	return compareRanks(tiebreakRanks(player), tiebreakRanks(dealer))
}

// tiebreakRanks returns the hand's rank values in descending order for
// positional comparison. The A-2-3 straight demotes its ace to 1 so the
// wheel compares below every other straight instead of sorting ace-high.
func tiebreakRanks(h Hand) [HandSize]int {
	if isAceLowStraight(h) {
		return [HandSize]int{3, 2, 1}
	}
	return [HandSize]int{h[0].Value(), h[1].Value(), h[2].Value()}
}

// comparePairs breaks ties between two pair hands: paired rank first,
// then the singleton kicker.
func comparePairs(player, dealer Hand) Winner {
	pPair, pKicker := splitPair(player)
	dPair, dKicker := splitPair(dealer)

	if pPair != dPair {
		if pPair > dPair {
			return Player
		}
		return Dealer
	}
	if pKicker != dKicker {
		if pKicker > dKicker {
			return Player
		}
		return Dealer
	}
	return Tie
}

// splitPair returns the paired rank and the kicker rank of a pair hand.
// The hand is sorted, so the pair is either the top two or bottom two cards.
func splitPair(h Hand) (pair, kicker deck.Rank) {
	if h[0].Rank == h[1].Rank {
		return h[0].Rank, h[2].Rank
	}
	return h[1].Rank, h[0].Rank
}

func compareRanks(player, dealer [HandSize]int) Winner {
	for i := range player {
		if player[i] > dealer[i] {
			return Player
		}
		if player[i] < dealer[i] {
			return Dealer
		}
	}
	return Tie
}
