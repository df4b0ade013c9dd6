package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)
	session := NewSessionID()

	entries := []ScoreEntry{
		{GameID: "hexic", Score: 150, Moves: 12, SessionID: session},
		{GameID: "hexic", Score: 45, Moves: 3, SessionID: session},
		{GameID: "hexic", Score: 600, Moves: 40, SessionID: session},
		{GameID: "hexic_zen", Score: 900, Moves: 70},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("hexic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	expected := []int{600, 150, 45}
	for i, s := range scores {
		if s.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, s.Score, expected[i])
		}
		if s.SessionID != session {
			t.Errorf("scores[%d] session = %q, expected %q", i, s.SessionID, session)
		}
	}
	if scores[0].Moves != 40 {
		t.Errorf("moves = %d, expected 40", scores[0].Moves)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}

	zen, err := store.TopScores("hexic_zen", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(zen) != 1 || zen[0].Score != 900 {
		t.Errorf("zen scores = %+v", zen)
	}
}

func TestStoreSaveScoreRequiresGameID(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveScore() without game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore(ScoreEntry{GameID: "hexic", Score: i * 15}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("hexic", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 19*15 {
		t.Errorf("best score = %d, expected %d", scores[0].Score, 19*15)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("hexic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty table, got %d", high)
	}

	store.SaveScore(ScoreEntry{GameID: "hexic", Score: 300})
	store.SaveScore(ScoreEntry{GameID: "hexic", Score: 750})

	if high, _ = store.HighScore("hexic"); high != 750 {
		t.Errorf("HighScore() = %d, expected 750", high)
	}

	if err := store.ClearScores("hexic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ = store.HighScore("hexic"); high != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore(ScoreEntry{GameID: "hexic", Score: 100, Moves: 10})
	store.SaveScore(ScoreEntry{GameID: "hexic", Score: 300, Moves: 30})

	stats, err := store.GameStats("hexic")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalMoves != 40 {
		t.Errorf("GameStats() = %+v", stats)
	}

	empty, err := store.GameStats("hexic_zen")
	if err != nil {
		t.Fatalf("GameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(RunRecord{GameID: "hexic", Seed: 42, Moves: 80, Score: 1230, Exploded: 82, EndReason: "bomb"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a uuid: %v", id, err)
	}

	runs, err := store.RecentRuns("hexic", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Seed != 42 || r.Score != 1230 || r.EndReason != "bomb" {
		t.Errorf("run = %+v", r)
	}

	if _, err := store.SaveRun(RunRecord{ID: id, GameID: "hexic", EndReason: "limit"}); err == nil {
		t.Error("duplicate run id should fail")
	}
}
