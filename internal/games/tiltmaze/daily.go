package tiltmaze

import (
	"fmt"
	"time"
)

// DailySeed derives the shared puzzle seed for a calendar date. Every player
// on the same UTC date gets the same maze, so the encoding (YYYYMMDD as an
// integer) must never change.
func DailySeed(t time.Time) int32 {
	u := t.UTC()
	return int32(u.Year()*10000 + int(u.Month())*100 + u.Day())
}

// DailyDate renders a daily seed back into its "2006-01-02" date string.
func DailyDate(seed int32) string {
	return fmt.Sprintf("%04d-%02d-%02d", seed/10000, seed/100%100, seed%100)
}

// DailyResult summarizes a finished attempt for persistence. The platform
// reads it when the run ends; the game itself never touches storage.
type DailyResult struct {
	Date   string
	Seed   int32
	Ticks  int
	Deaths int
	Won    bool
	Score  int
}

// IsDaily reports whether this instance plays the shared daily puzzle.
func (g *Game) IsDaily() bool {
	return g.mode == ModeDaily
}

// Result returns the current attempt's summary.
func (g *Game) Result() DailyResult {
	return DailyResult{
		Date:   DailyDate(g.seed),
		Seed:   g.seed,
		Ticks:  int(g.tick),
		Deaths: g.deaths,
		Won:    g.won,
		Score:  g.score,
	}
}
