package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAlwaysFoldLosesEveryStake(t *testing.T) {
	results, err := Run(Config{
		Rounds:   200,
		Workers:  2,
		Seed:     1,
		Ante:     10,
		PairPlus: 5,
		Strategy: AlwaysFold{},
	})
	require.NoError(t, err)

	assert.Equal(t, 200, results.Rounds)
	assert.Equal(t, 200, results.Folds)
	assert.Equal(t, 0, results.PlayerWins+results.DealerWins+results.Ties)
	assert.Equal(t, 200*15, results.Staked)
	assert.Equal(t, 0, results.Returned)
	assert.Equal(t, -200*15, results.Net)
	assert.InDelta(t, 1.0, results.HouseEdge(), 1e-9)
}

func TestRunOutcomesArePartitioned(t *testing.T) {
	results, err := Run(Config{
		Rounds:   500,
		Workers:  4,
		Seed:     42,
		Ante:     10,
		Strategy: AlwaysPlay{},
	})
	require.NoError(t, err)

	assert.Equal(t, 500, results.Rounds)
	assert.Equal(t, 0, results.Folds)
	assert.Equal(t, 500, results.PlayerWins+results.DealerWins+results.Ties)

	categoryTotal := 0
	for _, n := range results.Categories {
		categoryTotal += n
	}
	assert.Equal(t, 500, categoryTotal, "every round classified exactly once")
}

func TestRunIsSeedDeterministic(t *testing.T) {
	cfg := Config{
		Rounds:   300,
		Workers:  3,
		Seed:     7,
		Ante:     5,
		PairPlus: 5,
		Strategy: QueenSixFour{},
	}

	a, err := Run(cfg)
	require.NoError(t, err)
	b, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunRejectsNonPositiveRounds(t *testing.T) {
	_, err := Run(Config{Rounds: 0})
	assert.Error(t, err)
}
