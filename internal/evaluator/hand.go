// Package evaluator classifies and compares three card poker hands.
//
// Category ordering follows the three card game, not five card poker:
// High Card < Pair < Flush < Straight < Three of a Kind < Straight Flush.
// Straights outrank flushes because sequential cards are rarer than suited
// ones when only three are dealt.
package evaluator

import (
	"sort"
	"strings"

	"github.com/lox/threecardpoker/internal/deck"
)

// HandSize is the number of cards in a three card poker hand
const HandSize = 3

// Hand is a three card hand, kept sorted by descending rank
type Hand [HandSize]deck.Card

// NewHand builds a hand from exactly three cards, sorting them by
// descending rank so downstream comparison and display are deterministic.
func NewHand(cards []deck.Card) Hand {
	var h Hand
	copy(h[:], cards)
	sort.Slice(h[:], func(i, j int) bool {
		return h[i].Rank > h[j].Rank
	})
	return h
}

// Cards returns the hand as a slice for display
func (h Hand) Cards() []deck.Card {
	return h[:]
}

// HighCard returns the highest ranked card in the hand
func (h Hand) HighCard() deck.Card {
	return h[0]
}

// String returns the hand as space-separated cards (e.g. "A♠ K♠ Q♠")
func (h Hand) String() string {
	parts := make([]string, HandSize)
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
