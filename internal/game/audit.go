package game

import (
	"fmt"
	"io"
	"time"

	"github.com/coder/quartz"
)

// Recorder receives each settled round for persistence. The session never
// touches a file itself; the caller decides where records go.
type Recorder interface {
	Record(round int, result *RoundResult) error
}

// NopRecorder discards all records
type NopRecorder struct{}

func (NopRecorder) Record(int, *RoundResult) error { return nil }

// LogRecorder writes one line-oriented audit record per round: timestamp,
// round number, hands as rank+suit strings, bets, winnings and balance.
type LogRecorder struct {
	w     io.Writer
	clock quartz.Clock
}

// NewLogRecorder creates a recorder writing to w. A nil clock uses the
// real clock; tests inject a quartz mock for stable timestamps.
func NewLogRecorder(w io.Writer, clock quartz.Clock) *LogRecorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &LogRecorder{w: w, clock: clock}
}

// Record writes the audit line for one round
func (r *LogRecorder) Record(round int, res *RoundResult) error {
	ts := r.clock.Now().UTC().Format(time.RFC3339)

	var err error
	if res.Folded {
		_, err = fmt.Fprintf(r.w,
			"%s round=%d result=fold player=%q category=%q ante=%d pair_plus=%d net=%d balance=%d\n",
			ts, round, res.PlayerHand, res.PlayerCategory,
			res.Bets.Ante, res.Bets.PairPlus, res.NetProfit, res.Balance)
	} else {
		_, err = fmt.Fprintf(r.w,
			"%s round=%d result=%s qualified=%t player=%q player_category=%q dealer=%q dealer_category=%q ante=%d pair_plus=%d play=%d ante_win=%d pair_plus_win=%d play_win=%d net=%d balance=%d\n",
			ts, round, res.Winner, res.DealerQualified,
			res.PlayerHand, res.PlayerCategory, res.DealerHand, res.DealerCategory,
			res.Bets.Ante, res.Bets.PairPlus, res.Bets.Play,
			res.Winnings.Ante, res.Winnings.PairPlus, res.Winnings.Play,
			res.NetProfit, res.Balance)
	}
	return err
}
