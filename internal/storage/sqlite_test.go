package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("bricker", 120, false); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("bricker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() after reopen = %d, expected 120", high)
	}
}

func TestStoreTopScoresOrderAndGameFilter(t *testing.T) {
	store := openTemp(t)

	for _, s := range []int{100, 50, 400} {
		if _, err := store.SaveScore("bricker", s, false); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("bricker_chaos", 900, true); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("bricker", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{400, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "bricker" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("bricker", i*10, false); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("bricker", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}

	scores, err = store.TopScores("bricker", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("non-positive limit should default to 10, got %d", len(scores))
	}

	all, err := store.AllScores("bricker")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 15 {
		t.Errorf("Expected 15 scores, got %d", len(all))
	}
}

func TestStoreWonFlagRoundTrips(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore("bricker", 400, true); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("bricker", 30, false); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("bricker", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if !scores[0].Won || scores[1].Won {
		t.Errorf("won flags = %v, %v; expected true, false", scores[0].Won, scores[1].Won)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("bricker")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() with no runs = %d, expected 0", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("bricker", 100, false)
	store.SaveScore("bricker_chaos", 200, false)

	if err := store.ClearScores("bricker"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("bricker", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	scores, _ = store.TopScores("bricker_chaos", 10)
	if len(scores) != 1 {
		t.Errorf("ClearScores should not touch other games, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("bricker", 100, true)
	store.SaveScore("bricker", 50, false)
	store.SaveScore("bricker", 30, false)
	store.SaveScore("bricker_chaos", 70, false)

	stats, err := store.GetGameStats("bricker")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 1 || stats.HighScore != 100 || stats.TotalScore != 180 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 60 {
		t.Errorf("AvgScore = %v, expected 60", stats.AvgScore)
	}
	if rate := stats.WinRate(); rate < 0.33 || rate > 0.34 {
		t.Errorf("WinRate() = %v", rate)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["bricker_chaos"].GamesCount != 1 || all["bricker_chaos"].HighScore != 70 {
		t.Errorf("chaos stats = %+v", all["bricker_chaos"])
	}
}

func TestStoreGameStatsEmpty(t *testing.T) {
	store := openTemp(t)

	stats, err := store.GetGameStats("bricker")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() || stats.WinRate() != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}
