package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("crush", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("crush_moves", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("crush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %d, want %d", i, scores[i].Score, w)
		}
	}

	movesScores, err := store.TopScores("crush_moves", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(movesScores) != 1 {
		t.Errorf("Expected 1 crush_moves score, got %d", len(movesScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("crush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("crush", 100)
	store.SaveScore("crush", 300)
	store.SaveScore("crush", 200)

	high, err = store.HighScore("crush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("crush", 100)
	store.SaveScore("crush", 200)
	store.SaveScore("crush_moves", 300)

	if err := store.ClearScores("crush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	crushScores, _ := store.TopScores("crush", 10)
	if len(crushScores) != 0 {
		t.Errorf("Expected 0 crush scores after clear, got %d", len(crushScores))
	}

	movesScores, _ := store.TopScores("crush_moves", 10)
	if len(movesScores) != 1 {
		t.Errorf("crush_moves scores should not be affected by clearing crush")
	}
}

func TestStoreSaveAndQueryRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{GameID: "crush", Player: "alice", Score: 900, MovesUsed: 14, LongestChain: 4, TilesCleared: 87, Seed: 42},
		{GameID: "crush", Player: "bob", Score: 300, MovesUsed: 6, LongestChain: 2, TilesCleared: 30, Seed: 7},
		{GameID: "crush_moves", Player: "alice", Score: 500, MovesUsed: 20, LongestChain: 3, TilesCleared: 55, Seed: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("crush", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 crush runs, got %d", len(recent))
	}
	for _, r := range recent {
		if r.GameID != "crush" {
			t.Errorf("RecentRuns returned run for %q", r.GameID)
		}
	}

	aliceRuns, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(aliceRuns) != 2 {
		t.Errorf("Expected 2 runs for alice, got %d", len(aliceRuns))
	}

	chain, err := store.LongestChain("crush")
	if err != nil {
		t.Fatalf("LongestChain() failed: %v", err)
	}
	if chain != 4 {
		t.Errorf("LongestChain = %d, want 4", chain)
	}
}

func TestStoreLongestChainEmpty(t *testing.T) {
	store := openTestStore(t)

	chain, err := store.LongestChain("crush")
	if err != nil {
		t.Fatalf("LongestChain() failed: %v", err)
	}
	if chain != 0 {
		t.Errorf("LongestChain on empty table = %d, want 0", chain)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("crush", 100)
	store.SaveScore("crush", 300)

	stats, err := store.GetGameStats("crush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
