package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareCategoryOrder(t *testing.T) {
	// Ascending strength: each hand must beat every hand before it
	ladder := []struct {
		name  string
		cards string
	}{
		{"high card", "9c4d2h"},
		{"pair", "2s2d4c"},
		{"flush", "Kh9h2h"},
		{"straight", "2c3d4h"},
		{"three of a kind", "5h5d5c"},
		{"straight flush", "2h3h4h"},
	}

	for i := 1; i < len(ladder); i++ {
		for j := 0; j < i; j++ {
			stronger, weaker := hand(ladder[i].cards), hand(ladder[j].cards)
			assert.Equal(t, Player, Compare(stronger, weaker),
				"%s should beat %s", ladder[i].name, ladder[j].name)
			assert.Equal(t, Dealer, Compare(weaker, stronger),
				"%s should lose to %s", ladder[j].name, ladder[i].name)
		}
	}
}

func TestCompareTiebreaks(t *testing.T) {
	tests := []struct {
		name     string
		player   string
		dealer   string
		expected Winner
	}{
		{"high card first rank wins", "Ah9d2c", "Kh9d2s", Player},
		{"high card second rank decides", "Ah9d2c", "Ah8d2s", Player},
		{"high card third rank decides", "Ah9d3c", "As9h2s", Player},
		{"high card exact tie", "Ah9d3c", "As9h3s", Tie},
		{"higher pair wins", "QsQd4c", "JsJd9c", Player},
		{"equal pair kicker decides", "QsQdAc", "QhQc9s", Player},
		{"equal pair equal kicker ties", "QsQdAc", "QhQcAd", Tie},
		{"pair rank beats kicker size", "3s3d2c", "2h2dAc", Player},
		{"higher straight wins", "9h8dTc", "4c5d6h", Player},
		{"higher flush wins", "Ah9h2h", "Ks9s3s", Player},
		{"higher trips win", "9h9d9c", "8h8d8c", Player},
		{"higher straight flush wins", "AsKsQs", "KhQhJh", Player},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compare(hand(tt.player), hand(tt.dealer)))
		})
	}
}

func TestAceLowStraightComparesLowest(t *testing.T) {
	wheel := hand("As2d3c")
	assert.Equal(t, Straight, Evaluate(wheel))

	// The lowest straight loses to the next one up
	assert.Equal(t, Dealer, Compare(wheel, hand("2c3d4h")))
	assert.Equal(t, Player, Compare(hand("2c3d4h"), wheel))

	// But it still beats any non-straight, non-flush hand
	assert.Equal(t, Player, Compare(wheel, hand("AhAdKc")), "wheel beats pair of aces")
	assert.Equal(t, Player, Compare(wheel, hand("AhKd9c")), "wheel beats ace high")

	// Straights outrank flushes in the three card game
	assert.Equal(t, Player, Compare(wheel, hand("Kh9h2h")), "wheel beats flush")
}

func TestAceLowStraightFlushComparesLowest(t *testing.T) {
	wheelFlush := hand("Ah2h3h")
	assert.Equal(t, StraightFlush, Evaluate(wheelFlush))
	assert.Equal(t, Dealer, Compare(wheelFlush, hand("2s3s4s")))
	assert.Equal(t, Player, Compare(wheelFlush, hand("AsAdAc")), "lowest straight flush beats trip aces")
}

func TestWinnerString(t *testing.T) {
	assert.Equal(t, "Player", Player.String())
	assert.Equal(t, "Dealer", Dealer.String())
	assert.Equal(t, "Tie", Tie.String())
}
