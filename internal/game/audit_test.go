package game

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/threecardpoker/internal/deck"
)

func TestLogRecorderPlayedRound(t *testing.T) {
	var buf bytes.Buffer
	clock := quartz.NewMock(t)
	rec := NewLogRecorder(&buf, clock)

	cards := append(deck.MustParseCards("AsKsQs"), deck.MustParseCards("7h7d2c")...)
	s := NewSession(
		WithBalance(1000),
		WithDeck(deck.NewStacked(cards...)),
		WithRecorder(rec),
	)

	_, err := s.PlaceBet(10, 5)
	require.NoError(t, err)
	_, err = s.Play()
	require.NoError(t, err)

	line := strings.TrimSuffix(buf.String(), "\n")
	require.NotEmpty(t, line)
	assert.True(t, strings.HasPrefix(line, clock.Now().UTC().Format(time.RFC3339)), "line starts with timestamp: %s", line)
	assert.Contains(t, line, "round=1")
	assert.Contains(t, line, "result=Player")
	assert.Contains(t, line, "qualified=true")
	assert.Contains(t, line, `player="A♠ K♠ Q♠"`)
	assert.Contains(t, line, `player_category="Straight Flush"`)
	assert.Contains(t, line, `dealer="7♥ 7♦ 2♣"`)
	assert.Contains(t, line, "ante=10")
	assert.Contains(t, line, "pair_plus=5")
	assert.Contains(t, line, "play=10")
	assert.Contains(t, line, "ante_win=60")
	assert.Contains(t, line, "pair_plus_win=200")
	assert.Contains(t, line, "play_win=20")
	assert.Contains(t, line, "net=255")
	assert.Contains(t, line, "balance=1255")
	assert.False(t, strings.Contains(line, "\n"), "one line per round")
}

func TestLogRecorderFoldedRound(t *testing.T) {
	var buf bytes.Buffer
	rec := NewLogRecorder(&buf, quartz.NewMock(t))

	cards := deck.MustParseCards("9c4d2h")
	s := NewSession(
		WithBalance(500),
		WithDeck(deck.NewStacked(cards...)),
		WithRecorder(rec),
	)

	_, err := s.PlaceBet(15, 5)
	require.NoError(t, err)
	_, err = s.Fold()
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, "result=fold")
	assert.Contains(t, line, `player="9♣ 4♦ 2♥"`)
	assert.Contains(t, line, "net=-20")
	assert.Contains(t, line, "balance=480")
	assert.NotContains(t, line, "dealer=", "no dealer hand on fold")
}

func TestLogRecorderUsesRealClockByDefault(t *testing.T) {
	var buf bytes.Buffer
	rec := NewLogRecorder(&buf, nil)

	err := rec.Record(1, &RoundResult{Round: 1, Folded: true})
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}
