package evaluator

import "github.com/lox/threecardpoker/internal/deck"

// Evaluate classifies a hand into its category. Checks run in strict
// precedence order so every hand lands in exactly one category.
func Evaluate(h Hand) Category {
	straight := isStraight(h)
	flush := isFlush(h)

	switch {
	case straight && flush:
		return StraightFlush
	case h[0].Rank == h[1].Rank && h[1].Rank == h[2].Rank:
		return ThreeOfAKind
	case straight:
		return Straight
	case flush:
		return Flush
	case h[0].Rank == h[1].Rank || h[1].Rank == h[2].Rank:
		// Hand is sorted, so a pair is always adjacent
		return Pair
	default:
		return HighCard
	}
}

// isStraight reports whether the three ranks form a consecutive run.
// A-2-3 counts as a straight (the lowest one) even though the ace
// otherwise ranks high.
func isStraight(h Hand) bool {
	// Hand is sorted descending: h[0] high, h[2] low
	if h[0].Rank == deck.Ace && h[1].Rank == deck.Three && h[2].Rank == deck.Two {
		return true
	}
	return h[0].Rank == h[1].Rank+1 && h[1].Rank == h[2].Rank+1
}

// isFlush reports whether all three cards share a suit
func isFlush(h Hand) bool {
	return h[0].Suit == h[1].Suit && h[1].Suit == h[2].Suit
}

// isAceLowStraight reports whether the hand is the A-2-3 wheel
func isAceLowStraight(h Hand) bool {
	return h[0].Rank == deck.Ace && h[1].Rank == deck.Three && h[2].Rank == deck.Two
}
