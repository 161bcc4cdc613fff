package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveScore("tiltmaze_free", score); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	top, err := store.TopScores("tiltmaze_free", 2)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].Score != 300 || top[1].Score != 200 {
		t.Errorf("ordering wrong: %d, %d", top[0].Score, top[1].Score)
	}

	high, err := store.HighScore("tiltmaze_free")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore = %d, want 300", high)
	}
}

func TestScoresIsolatedByGame(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tiltmaze", 500)
	store.SaveScore("tiltmaze_free", 900)

	high, err := store.HighScore("tiltmaze")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 500 {
		t.Errorf("HighScore = %d, want 500", high)
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tiltmaze")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore on empty table = %d, want 0", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tiltmaze", 100)
	store.SaveScore("tiltmaze_free", 200)

	if err := store.ClearScores("tiltmaze"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	high, _ := store.HighScore("tiltmaze")
	if high != 0 {
		t.Error("scores not cleared")
	}
	high, _ = store.HighScore("tiltmaze_free")
	if high != 200 {
		t.Error("ClearScores removed another game's scores")
	}
}

func TestDailyRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []DailyRun{
		{Date: "2026-08-23", Seed: 20260823, Ticks: 900, Deaths: 2, Won: true, Score: 5650},
		{Date: "2026-08-23", Seed: 20260823, Ticks: 1400, Deaths: 5, Won: false, Score: 0},
		{Date: "2026-08-23", Seed: 20260823, Ticks: 700, Deaths: 0, Won: true, Score: 5700},
	}
	for _, run := range runs {
		if _, err := store.SaveDailyRun(run); err != nil {
			t.Fatalf("SaveDailyRun: %v", err)
		}
	}

	got, err := store.RunsForDate("2026-08-23")
	if err != nil {
		t.Fatalf("RunsForDate: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d runs, want 3", len(got))
	}
	if got[0].Score != 5700 {
		t.Errorf("best first: got score %d, want 5700", got[0].Score)
	}

	best, err := store.BestRunForDate("2026-08-23")
	if err != nil {
		t.Fatalf("BestRunForDate: %v", err)
	}
	if best == nil || best.Score != 5700 || best.Deaths != 0 {
		t.Errorf("best run = %+v, want the clean 5700 win", best)
	}
}

func TestBestRunForDateUnsolved(t *testing.T) {
	store := openTestStore(t)

	store.SaveDailyRun(DailyRun{Date: "2026-08-23", Seed: 20260823, Won: false})

	best, err := store.BestRunForDate("2026-08-23")
	if err != nil {
		t.Fatalf("BestRunForDate: %v", err)
	}
	if best != nil {
		t.Errorf("best = %+v, want nil for an unsolved day", best)
	}
}

func TestRecentDailyRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveDailyRun(DailyRun{Date: "2026-08-23", Seed: 20260823, Won: true, Score: i})
	}

	recent, err := store.RecentDailyRuns(3)
	if err != nil {
		t.Fatalf("RecentDailyRuns: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("got %d runs, want 3", len(recent))
	}
}

func TestSolvedStreak(t *testing.T) {
	store := openTestStore(t)

	// Three consecutive solved days, then a gap.
	for _, date := range []string{"2026-08-21", "2026-08-22", "2026-08-23"} {
		store.SaveDailyRun(DailyRun{Date: date, Won: true, Score: 100})
	}
	store.SaveDailyRun(DailyRun{Date: "2026-08-19", Won: true, Score: 100})

	streak, err := store.SolvedStreak("2026-08-23")
	if err != nil {
		t.Fatalf("SolvedStreak: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}

	// A day with only losing attempts breaks the streak.
	streak, err = store.SolvedStreak("2026-08-19")
	if err != nil {
		t.Fatalf("SolvedStreak: %v", err)
	}
	if streak != 1 {
		t.Errorf("streak ending at gap = %d, want 1", streak)
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 200, 300} {
		store.SaveScore("tiltmaze", score)
	}

	stats, err := store.GetGameStats("tiltmaze")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 300 || stats.TotalScore != 600 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}
