package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRun(t *testing.T, store *Store, run Run) int64 {
	t.Helper()
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
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

	saveRun(t, store, Run{SessionID: "s1", Pack: "default", Player: "ann", Score: 5, Level: 2, Outcome: OutcomeGameOver})
	saveRun(t, store, Run{SessionID: "s1", Pack: "default", Player: "ann", Score: -3, Level: 1, Outcome: OutcomeGameOver})
	saveRun(t, store, Run{SessionID: "s2", Pack: "default", Player: "bob", Score: 12, Level: 4, Outcome: OutcomeCompleted})

	// Different pack
	saveRun(t, store, Run{SessionID: "s2", Pack: "animals", Player: "bob", Score: 40, Level: 10, Outcome: OutcomeCompleted})

	runs, err := store.TopRuns("default", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending, negative scores included
	if runs[0].Score != 12 || runs[1].Score != 5 || runs[2].Score != -3 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	top := runs[0]
	if top.Player != "bob" || top.Level != 4 || top.Outcome != OutcomeCompleted || top.SessionID != "s2" {
		t.Errorf("Top run fields not round-tripped: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	animalRuns, err := store.TopRuns("animals", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(animalRuns) != 1 {
		t.Errorf("Expected 1 animals run, got %d", len(animalRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveRun(t, store, Run{SessionID: "s", Pack: "test", Score: (i + 1) * 10, Level: 1, Outcome: OutcomeGameOver})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 50, 40, 30 (top 3)
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	// Non-positive limit falls back to 10
	runs, err = store.TopRuns("test", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected all 5 runs with default limit, got %d", len(runs))
	}
}

func TestStoreTopRunsTieBreak(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, Run{SessionID: "a", Pack: "p", Score: 3, Level: 1, Outcome: OutcomeGameOver})
	saveRun(t, store, Run{SessionID: "b", Pack: "p", Score: 3, Level: 2, Outcome: OutcomeGameOver})

	runs, err := store.TopRuns("p", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].SessionID != "b" {
		t.Errorf("Equal scores should rank the higher level first, got %+v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, ok, err := store.HighScore("default")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if ok || high != 0 {
		t.Errorf("Expected no high score for empty pack, got %d (ok=%v)", high, ok)
	}

	saveRun(t, store, Run{SessionID: "s", Pack: "default", Score: -2, Level: 1, Outcome: OutcomeGameOver})
	saveRun(t, store, Run{SessionID: "s", Pack: "default", Score: -1, Level: 1, Outcome: OutcomeGameOver})

	high, ok, err = store.HighScore("default")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if !ok || high != -1 {
		t.Errorf("Expected high score of -1, got %d (ok=%v)", high, ok)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, Run{SessionID: "s", Pack: "default", Score: 1, Level: 1, Outcome: OutcomeGameOver})
	saveRun(t, store, Run{SessionID: "s", Pack: "default", Score: 2, Level: 1, Outcome: OutcomeGameOver})
	saveRun(t, store, Run{SessionID: "s", Pack: "animals", Score: 3, Level: 1, Outcome: OutcomeGameOver})

	// Clear only the default pack
	if err := store.ClearRuns("default"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("default", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 default runs after clear, got %d", len(runs))
	}

	animalRuns, _ := store.TopRuns("animals", 10)
	if len(animalRuns) != 1 {
		t.Errorf("Animals runs should not be affected by clearing default")
	}
}

func TestStoreSessionRuns(t *testing.T) {
	store := openTestStore(t)

	first := saveRun(t, store, Run{SessionID: "me", Pack: "default", Score: 1, Level: 1, Outcome: OutcomeGameOver})
	saveRun(t, store, Run{SessionID: "other", Pack: "default", Score: 9, Level: 3, Outcome: OutcomeGameOver})
	second := saveRun(t, store, Run{SessionID: "me", Pack: "animals", Score: 4, Level: 2, Outcome: OutcomeAbandoned})

	runs, err := store.SessionRuns("me")
	if err != nil {
		t.Fatalf("SessionRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for session, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("SessionRuns should be newest first, got %+v", runs)
	}
}

func TestStorePackStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetPackStats("default")
	if err != nil {
		t.Fatalf("GetPackStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	saveRun(t, store, Run{SessionID: "s", Pack: "default", Score: 4, Level: 2, Outcome: OutcomeGameOver})
	saveRun(t, store, Run{SessionID: "s", Pack: "default", Score: 10, Level: 12, Outcome: OutcomeCompleted})
	saveRun(t, store, Run{SessionID: "s", Pack: "animals", Score: 1, Level: 1, Outcome: OutcomeAbandoned})

	stats, err = store.GetPackStats("default")
	if err != nil {
		t.Fatalf("GetPackStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 10 || stats.AvgScore != 7 || stats.BestLevel != 12 || stats.Completed != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	all, err := store.GetAllPackStats()
	if err != nil {
		t.Fatalf("GetAllPackStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 packs, got %d", len(all))
	}
	if all["animals"].RunsCount != 1 || all["animals"].Completed != 0 {
		t.Errorf("Unexpected animals stats: %+v", all["animals"])
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.hangman/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".hangman", "scores.db")); err != nil {
		t.Errorf("Database should be created under HOME: %v", err)
	}
}

func TestRecorderRecord(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, nil, "sess", "default", "ann")

	g := hangman.New([]string{"GO"})
	g.GuessLetter("g")
	g.GuessLetter("x")
	rec.Record(g.Snapshot(), OutcomeAbandoned)

	g.GuessLetter("o")
	g.AdvanceLevel()
	rec.Record(g.Snapshot(), OutcomeCompleted)

	runs, err := store.SessionRuns("sess")
	if err != nil {
		t.Fatalf("SessionRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	completed, abandoned := runs[0], runs[1]
	if completed.Outcome != OutcomeCompleted || completed.Level != 1 || completed.Score != 1 {
		t.Errorf("Unexpected completed run: %+v", completed)
	}
	if abandoned.Outcome != OutcomeAbandoned || abandoned.Level != 1 || abandoned.Score != 0 {
		t.Errorf("Unexpected abandoned run: %+v", abandoned)
	}
	if completed.Player != "ann" || completed.Pack != "default" {
		t.Errorf("Recorder should stamp player and pack: %+v", completed)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, nil, "sess", "default", "ann")
	// Must not panic
	rec.Record(hangman.New([]string{"GO"}).Snapshot(), OutcomeGameOver)
}
