package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/core"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLookup(t *testing.T) {
	store := openTestStore(t)

	want := core.MatchSummary{ID: "m-1", Winner: 2, Score1: 1, Score2: 3, Rounds: 4}
	id, err := store.SaveMatch(want)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveMatch() id = %d, expected positive", id)
	}

	got, err := store.MatchByID("m-1")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got.Summary() != want {
		t.Errorf("MatchByID() = %+v, expected %+v", got.Summary(), want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreMatchNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.MatchByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("MatchByID() error = %v, expected ErrNotFound", err)
	}
}

func TestStoreRejectsBadSummaries(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		m    core.MatchSummary
	}{
		{"no id", core.MatchSummary{Winner: 1, Score1: 3}},
		{"no winner", core.MatchSummary{ID: "x"}},
		{"winner out of range", core.MatchSummary{ID: "y", Winner: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.SaveMatch(tc.m); err == nil {
				t.Error("SaveMatch() should fail")
			}
		})
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)

	m := core.MatchSummary{ID: "dup", Winner: 1, Score1: 3, Rounds: 3}
	if _, err := store.SaveMatch(m); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(m); err == nil {
		t.Error("Saving the same match twice should fail")
	}
}

func TestStoreRecentMatchesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		m := core.MatchSummary{ID: fmt.Sprintf("m-%02d", i), Winner: 1 + i%2, Score1: 3, Score2: 1, Rounds: 4}
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(5)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("Expected 5 matches, got %d", len(recent))
	}
	// Same-second inserts fall back to id ordering
	if recent[0].MatchID != "m-14" || recent[4].MatchID != "m-10" {
		t.Errorf("Expected newest first, got %s .. %s", recent[0].MatchID, recent[4].MatchID)
	}

	all, err := store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 10 {
		t.Errorf("Default limit should be 10, got %d", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.Matches != 0 || empty.AvgRounds() != 0 {
		t.Errorf("Empty stats = %+v, expected zero", empty)
	}

	matches := []core.MatchSummary{
		{ID: "a", Winner: 1, Score1: 3, Score2: 0, Rounds: 3},
		{ID: "b", Winner: 2, Score1: 2, Score2: 3, Rounds: 5},
		{ID: "c", Winner: 1, Score1: 3, Score2: 1, Rounds: 4},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	st, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if st.Matches != 3 {
		t.Errorf("Matches = %d, expected 3", st.Matches)
	}
	if st.Player1Wins != 2 || st.Player2Wins != 1 {
		t.Errorf("Wins = %d/%d, expected 2/1", st.Player1Wins, st.Player2Wins)
	}
	if st.LongestGame != 5 {
		t.Errorf("LongestGame = %d, expected 5", st.LongestGame)
	}
	if st.AvgRounds() != 4 {
		t.Errorf("AvgRounds() = %f, expected 4", st.AvgRounds())
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(core.MatchSummary{ID: "a", Winner: 1, Score1: 3, Rounds: 3}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected empty history after clear, got %d", len(recent))
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
