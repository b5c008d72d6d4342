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

	runs := []RunEntry{
		{GameID: "cave", Score: 100, Diamonds: 1, Outcome: OutcomeCrushed, Duration: 45},
		{GameID: "cave", Score: 1200, Diamonds: 12, Outcome: OutcomeWon, Duration: 230},
		{GameID: "cave", Score: 400, Diamonds: 4, Outcome: OutcomeTimeout, Duration: 300},
		{GameID: "cave_sprint", Score: 800, Diamonds: 8, Outcome: OutcomeWon, Duration: 90},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("cave", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 cave runs, got %d", len(top))
	}

	// Should be sorted by score descending
	if top[0].Score != 1200 || top[1].Score != 400 || top[2].Score != 100 {
		t.Errorf("Runs not sorted by score: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Outcome != OutcomeWon || top[0].Diamonds != 12 {
		t.Errorf("Run fields not round-tripped: %+v", top[0])
	}

	sprint, err := store.TopRuns("cave_sprint", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(sprint) != 1 {
		t.Errorf("Expected 1 sprint run, got %d", len(sprint))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{GameID: "cave", Score: (i + 1) * 100, Outcome: OutcomeCrushed})
	}

	top, err := store.TopRuns("cave", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("cave")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty game, got %d", high)
	}

	store.SaveRun(RunEntry{GameID: "cave", Score: 100, Outcome: OutcomeCrushed})
	store.SaveRun(RunEntry{GameID: "cave", Score: 300, Outcome: OutcomeWon})
	store.SaveRun(RunEntry{GameID: "cave", Score: 200, Outcome: OutcomeTimeout})

	high, err = store.HighScore("cave")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{GameID: "cave", Score: 100, Outcome: OutcomeCrushed})
	store.SaveRun(RunEntry{GameID: "cave", Score: 300, Outcome: OutcomeWon})
	store.SaveRun(RunEntry{GameID: "cave", Score: 200, Outcome: OutcomeWon})

	stats, err := store.Stats("cave")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("RunCount = %d, want 3", stats.RunCount)
	}
	if stats.WinCount != 2 {
		t.Errorf("WinCount = %d, want 2", stats.WinCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{GameID: "cave", Score: 100, Outcome: OutcomeCrushed})
	store.SaveRun(RunEntry{GameID: "cave_sprint", Score: 200, Outcome: OutcomeWon})
	store.SaveRun(RunEntry{GameID: "cave", Score: 300, Outcome: OutcomeWon})

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].Score != 300 {
		t.Errorf("Most recent run has score %d, want 300", recent[0].Score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{GameID: "cave", Score: 100, Outcome: OutcomeCrushed})
	store.SaveRun(RunEntry{GameID: "cave", Score: 200, Outcome: OutcomeWon})
	store.SaveRun(RunEntry{GameID: "cave_sprint", Score: 300, Outcome: OutcomeWon})

	if err := store.ClearRuns("cave"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	caveRuns, _ := store.TopRuns("cave", 10)
	if len(caveRuns) != 0 {
		t.Errorf("Expected 0 cave runs after clear, got %d", len(caveRuns))
	}
	sprintRuns, _ := store.TopRuns("cave_sprint", 10)
	if len(sprintRuns) != 1 {
		t.Errorf("Sprint runs should not be affected by clearing cave")
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
