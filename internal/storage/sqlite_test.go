package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	id, err := store.SaveResult(MatchRecord{
		LeftDriver:  "human",
		RightDriver: "cpu",
		LeftScore:   5,
		RightScore:  3,
		Winner:      WinnerLeft,
		WinScore:    5,
		Duration:    95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveResult() should assign a match ID")
	}

	rec, err := store.ResultByID(id)
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("ResultByID() returned nil")
	}
	if rec.LeftScore != 5 || rec.RightScore != 3 || rec.Winner != WinnerLeft {
		t.Errorf("stored record = %+v", rec)
	}
	if rec.Duration != 95*time.Second {
		t.Errorf("Duration = %v, expected 95s", rec.Duration)
	}
	if rec.LeftDriver != "human" || rec.RightDriver != "cpu" {
		t.Errorf("drivers = %s/%s", rec.LeftDriver, rec.RightDriver)
	}
}

func TestStoreResultByIDMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.ResultByID("nope")
	if err != nil {
		t.Fatalf("ResultByID() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil for a missing match, got %+v", rec)
	}
}

func TestStoreRejectsNoWinner(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(MatchRecord{LeftScore: 1}); err == nil {
		t.Error("SaveResult() should reject a match without a winner")
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)
	rec := MatchRecord{MatchID: "fixed", Winner: WinnerRight, WinScore: 1, RightScore: 1}

	if _, err := store.SaveResult(rec); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(rec); err == nil {
		t.Error("duplicate match ID should fail")
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		winner := WinnerLeft
		if i%2 == 1 {
			winner = WinnerRight
		}
		_, err := store.SaveResult(MatchRecord{
			LeftDriver:  "cpu",
			RightDriver: "cpu",
			LeftScore:   i,
			Winner:      winner,
			WinScore:    5,
		})
		if err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}

	// Newest first
	if recent[0].LeftScore != 4 || recent[2].LeftScore != 2 {
		t.Errorf("unexpected order: %d, %d, %d", recent[0].LeftScore, recent[1].LeftScore, recent[2].LeftScore)
	}
}

func TestStoreWinTotals(t *testing.T) {
	store := openTestStore(t)

	totals, err := store.WinTotals()
	if err != nil {
		t.Fatalf("WinTotals() failed: %v", err)
	}
	if totals.Matches != 0 || !totals.LastPlayed.IsZero() {
		t.Errorf("empty store totals = %+v", totals)
	}

	for _, w := range []int{WinnerLeft, WinnerLeft, WinnerRight} {
		if _, err := store.SaveResult(MatchRecord{Winner: w, WinScore: 1}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	totals, err = store.WinTotals()
	if err != nil {
		t.Fatalf("WinTotals() failed: %v", err)
	}
	if totals.Matches != 3 || totals.LeftWins != 2 || totals.RightWins != 1 {
		t.Errorf("totals = %+v", totals)
	}
	if totals.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(MatchRecord{Winner: WinnerLeft, WinScore: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no results after clear, got %d", len(recent))
	}
}
