package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrInsufficientCards is returned when a draw asks for more cards than
// remain. In normal play at most six cards leave a fresh deck per round,
// so seeing this error means a broken invariant, not a recoverable state.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck shuffled with the provided RNG
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.Reset()
	return d
}

// NewStacked creates a deck whose successive draws return the given cards
// in order. Used by tests and forced scenarios; the remainder of the deck
// is empty.
func NewStacked(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Reset restores the deck to a full shuffled 52-card deck
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.shuffle()
}

// shuffle randomizes the order of cards using Fisher-Yates
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns n cards from the top of the deck
func (d *Deck) Draw(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(d.cards))
	}
	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		cards[i] = d.cards[len(d.cards)-1]
		d.cards = d.cards[:len(d.cards)-1]
	}
	return cards, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
